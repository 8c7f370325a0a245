package cloudio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/pcview"
)

// DecodeXYZ reads "x y z" or "x y z r g b" lines separated by spaces,
// tabs or commas. Blank lines and lines starting with '#' are skipped.
// Colors may be given in [0, 1] or 0-255; the latter is detected when any
// channel exceeds 1. Lines without color get no color, and Load fills them.
func DecodeXYZ(r io.Reader) (*pcview.PointCloud, error) {
	pc := pcview.NewPointCloud(0)
	var colors []pcview.Color3
	colored := true

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || s[0] == '#' {
			continue
		}
		fields := strings.FieldsFunc(s, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		})
		if len(fields) != 3 && len(fields) != 6 {
			return nil, fmt.Errorf("line %d: want 3 or 6 values, got %d", line, len(fields))
		}

		var v [6]float64
		for i, f := range fields {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			v[i] = x
		}
		pc.Points = append(pc.Points, pcview.V3(v[0], v[1], v[2]))
		if len(fields) == 6 {
			colors = append(colors, pcview.RGB(v[3], v[4], v[5]))
		} else {
			colored = false
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if colored && len(colors) == len(pc.Points) {
		normalizeColors(colors)
		pc.Colors = colors
	}
	return pc, nil
}
