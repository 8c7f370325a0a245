package pcview

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/pcview/text"
)

// LabelMargin is the fraction of the box size the label sits below Min.
const LabelMargin = 0.1

// LabelAnchor returns the label position for a frame with bounds b:
// Min - (Max - Min) * LabelMargin, just outside the box's minimum corner.
// An empty box yields the origin.
func LabelAnchor(b Box3) Vec3 {
	if b.IsEmpty() {
		return Vec3{}
	}
	return b.Min.Sub(b.Size().Mul(LabelMargin))
}

// LabelText formats the frame label. The filename is NFC-normalized so that
// decomposed names (as some file systems store them) rasterize accents as
// single glyphs.
func LabelText(index int, filename string) string {
	return fmt.Sprintf("idx: %d | file: %s", index, norm.NFC.String(filename))
}

// Projector projects text with a fixed font face.
type Projector struct {
	face text.Face
}

// NewProjector resolves the font descriptor and builds a face of the given
// size. See text.ResolveFontSource for accepted descriptors. Failures are
// returned as *ConfigurationError.
func NewProjector(descriptor string, size float64) (*Projector, error) {
	if !(size > 0) {
		return nil, &ConfigurationError{Op: "font size", Err: text.ErrInvalidSize}
	}
	src, err := text.ResolveFontSource(descriptor)
	if err != nil {
		return nil, &ConfigurationError{Op: "resolve font", Err: err}
	}
	Logger().Info("pcview: font resolved", "descriptor", descriptor, "family", src.Name(), "size", size)
	return NewProjectorFromFace(src.Face(size)), nil
}

// NewProjectorFromFace wraps an existing face.
func NewProjectorFromFace(face text.Face) *Projector {
	return &Projector{face: face}
}

// Face returns the projector's font face.
func (p *Projector) Face() text.Face {
	return p.face
}

// Project is Project with the projector's face.
func (p *Projector) Project(s string, anchor Vec3, opts ...ProjectOption) (*PointCloud, error) {
	return Project(p.face, s, anchor, opts...)
}

// Label builds the label cloud for a frame: LabelText(index, filename)
// placed at LabelAnchor(frame.Bounds()).
func (p *Projector) Label(frame *PointCloud, index int, filename string, opts ...ProjectOption) (*PointCloud, error) {
	return p.Project(LabelText(index, filename), LabelAnchor(frame.Bounds()), opts...)
}

// Annotate returns a new cloud holding frame's points followed by its label.
// The frame itself is not modified.
func (p *Projector) Annotate(frame *PointCloud, index int, filename string, opts ...ProjectOption) (*PointCloud, error) {
	label, err := p.Label(frame, index, filename, opts...)
	if err != nil {
		return nil, err
	}
	return Concat(frame, label), nil
}
