package cloudio

import (
	"errors"
	"io"

	"github.com/EliCDavis/polyform/formats/ply"
	"github.com/EliCDavis/polyform/modeling"

	"github.com/gogpu/pcview"
)

var errNoPositions = errors.New("no vertex positions")

// DecodePLY reads an ASCII or binary PLY file. Only vertex positions and
// vertex colors are used; faces, if any, are ignored.
func DecodePLY(r io.Reader) (*pcview.PointCloud, error) {
	mesh, err := ply.ReadMesh(r)
	if err != nil {
		return nil, err
	}

	view := mesh.View()
	positions, ok := view.Float3Data[modeling.PositionAttribute]
	if !ok {
		return nil, errNoPositions
	}
	colors := view.Float3Data[modeling.ColorAttribute]

	pc := pcview.NewPointCloud(len(positions))
	for _, p := range positions {
		pc.Points = append(pc.Points, pcview.V3(p.X(), p.Y(), p.Z()))
	}
	if len(colors) == len(positions) {
		for _, c := range colors {
			pc.Colors = append(pc.Colors, pcview.RGB(c.X(), c.Y(), c.Z()))
		}
		normalizeColors(pc.Colors)
	}
	return pc, nil
}
