package pcview

import (
	"errors"
	"math"

	"github.com/gogpu/pcview/text"
)

const (
	// PixelsPerUnit is how many bitmap pixels make one scene unit.
	PixelsPerUnit = 100.0

	// ForegroundThreshold separates glyph pixels from background: a pixel
	// whose red channel is below it becomes a point.
	ForegroundThreshold = 128

	// DegenerateAxisEpsilon is the shortest rotation axis considered usable.
	// When the facing direction is parallel or anti-parallel to +Z the axis
	// (0,0,1) x direction vanishes and +Z is used instead. For the
	// anti-parallel case this is an approximation: the result is a half
	// turn about +Z, which keeps the text facing +Z rather than -Z.
	DegenerateAxisEpsilon = 1e-6
)

var errNilFace = errors.New("no font face")

// ProjectOption configures Project.
type ProjectOption func(*projectConfig)

type projectConfig struct {
	direction Vec3
	degrees   float64
}

func defaultProjectConfig() projectConfig {
	return projectConfig{direction: UnitZ}
}

// WithDirection sets the normal the text plane faces after rotation.
// The default is +Z, which leaves the plane unrotated. Non-unit vectors are
// normalized; the zero vector is rejected by Project.
func WithDirection(d Vec3) ProjectOption {
	return func(c *projectConfig) {
		c.direction = d
	}
}

// WithInPlaneDegrees adds a spin of the text about its facing direction.
func WithInPlaneDegrees(deg float64) ProjectOption {
	return func(c *projectConfig) {
		c.degrees = deg
	}
}

// Project renders s with face and returns it as a point cloud placed at anchor.
//
// Every glyph pixel of the rasterized text becomes one point: pixel (row, col)
// maps to (row, col, 0) / PixelsPerUnit, in row-major order, colored with the
// pixel's RGB. The plane is then rotated by LabelRotation and translated by
// anchor. Background pixels produce no points, so text without visible glyphs
// (" ") yields an empty cloud and no error.
//
// Errors are *PreconditionError for bad arguments (empty text, zero or
// non-finite direction, non-finite anchor or angle) and *ConfigurationError
// when the face cannot be rasterized (nil face, closed source, size <= 0).
func Project(face text.Face, s string, anchor Vec3, opts ...ProjectOption) (*PointCloud, error) {
	cfg := defaultProjectConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if s == "" {
		return nil, &PreconditionError{Field: "text", Reason: "empty string"}
	}
	if !cfg.direction.IsFinite() || cfg.direction.IsZero() {
		return nil, &PreconditionError{Field: "direction", Reason: "must be a finite non-zero vector"}
	}
	if !anchor.IsFinite() {
		return nil, &PreconditionError{Field: "anchor", Reason: "must be finite"}
	}
	if !isFinite(cfg.degrees) {
		return nil, &PreconditionError{Field: "in-plane degrees", Reason: "must be finite"}
	}
	if face == nil {
		return nil, &ConfigurationError{Op: "rasterize text", Err: errNilFace}
	}

	bm, err := text.Rasterize(face, s)
	if err != nil {
		return nil, &ConfigurationError{Op: "rasterize text", Err: err}
	}

	pc := glyphCloud(bm)
	pc.Transform(TransformMatrix(LabelRotation(cfg.direction, cfg.degrees), anchor))

	Logger().Debug("pcview: projected text",
		"text", s,
		"points", pc.Len(),
		"bitmap", [2]int{bm.Width, bm.Height},
		"anchor", anchor)
	return pc, nil
}

// glyphCloud turns the dark pixels of bm into points in the XY plane.
func glyphCloud(bm *text.Bitmap) *PointCloud {
	pc := NewPointCloud(0)
	for row := 0; row < bm.Height; row++ {
		for col := 0; col < bm.Width; col++ {
			r, g, b := bm.RGB(row, col)
			if r >= ForegroundThreshold {
				continue
			}
			pc.Append(
				Vec3{X: float64(row) / PixelsPerUnit, Y: float64(col) / PixelsPerUnit},
				RGB8(r, g, b),
			)
		}
	}
	return pc
}

// LabelRotation returns the rotation that turns the text plane normal +Z
// onto direction, composed with a spin of degrees about direction.
//
// The composition is alignment * spin: the spin about direction is applied
// to the unaligned plane first, then the plane is aligned.
func LabelRotation(direction Vec3, degrees float64) Quat {
	direction = direction.Normalize()

	axis := UnitZ.Cross(direction)
	if axis.Length() < DegenerateAxisEpsilon {
		axis = UnitZ
	}
	angle := math.Acos(math.Max(-1, math.Min(1, direction.Z)))

	align := QuatFromAxisAngle(axis, angle)
	spin := QuatFromAxisDegrees(direction, degrees)
	return align.Mul(spin)
}
