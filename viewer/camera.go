package viewer

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/gogpu/pcview"
)

const (
	// CellAspect is the height of a terminal cell divided by its width.
	CellAspect = 2.0

	// FitFill is the share of the viewport a fitted frame spans.
	FitFill = 0.9

	// RotateStep is the camera rotation per arrow key, in radians.
	RotateStep = 0.15

	// ZoomStep is the zoom factor per +/- key.
	ZoomStep = 1.25
)

// ErrInvalidView is returned for camera view files that cannot be used.
var ErrInvalidView = errors.New("viewer: invalid camera view")

// Camera is an orthographic camera. Camera space has x to the right,
// y down and z pointing away from the viewer, as in Open3D.
type Camera struct {
	// Yaw and Pitch rotate the view about the camera's y and x axes,
	// in radians, after Base.
	Yaw, Pitch float64

	// Zoom is the number of cell rows per world unit.
	Zoom float64

	// Center is the world point shown in the middle of the viewport.
	Center pcview.Vec3

	// Base is the world to camera rotation.
	Base pcview.Matrix4

	zoomSet, centerSet bool
}

// DefaultCamera looks down the -Z axis with +Y up.
func DefaultCamera() Camera {
	return Camera{
		Zoom: 1,
		Base: pcview.RotationMatrix(pcview.QuatFromAxisDegrees(pcview.V3(1, 0, 0), 180)),
	}
}

// View returns the world to camera rotation including yaw and pitch.
func (c Camera) View() pcview.Matrix4 {
	q := pcview.QuatFromAxisAngle(pcview.V3(1, 0, 0), c.Pitch).
		Mul(pcview.QuatFromAxisAngle(pcview.V3(0, 1, 0), c.Yaw))
	return pcview.RotationMatrix(q).Multiply(c.Base)
}

// Fit centers the camera on b and scales it so b fits a cols x rows
// viewport. Zoom and Center fixed by a view file or by the user are kept.
func (c *Camera) Fit(b pcview.Box3, cols, rows int) {
	if b.IsEmpty() || cols <= 0 || rows <= 0 {
		return
	}
	if !c.centerSet {
		c.Center = b.Center()
	}
	if !c.zoomSet {
		extent := b.Size().Length()
		if extent == 0 {
			extent = 1
		}
		c.Zoom = FitFill * math.Min(float64(cols)/CellAspect, float64(rows)) / extent
	}
}

// Project maps a world point to a cell and its depth in camera space.
// Smaller depth is nearer.
func (c Camera) Project(p pcview.Vec3, cols, rows int) (x, y int, depth float64) {
	return c.project(c.View(), p, cols, rows)
}

func (c Camera) project(view pcview.Matrix4, p pcview.Vec3, cols, rows int) (x, y int, depth float64) {
	v := view.TransformVector(p.Sub(c.Center))
	x = int(math.Floor(float64(cols)/2 + v.X*c.Zoom*CellAspect))
	y = int(math.Floor(float64(rows)/2 + v.Y*c.Zoom))
	return x, y, v.Z
}

// Orbit rotates the camera.
func (c *Camera) Orbit(dyaw, dpitch float64) {
	c.Yaw += dyaw
	c.Pitch += dpitch
}

// ZoomBy scales the zoom by f and keeps it across frames.
func (c *Camera) ZoomBy(f float64) {
	if f > 0 {
		c.Zoom *= f
		c.zoomSet = true
	}
}

// viewFile is the JSON form of a camera. Extrinsic is a column-major 4x4
// world to camera matrix, which makes Open3D pinhole camera files readable.
// Zoom and Center are only written by this package.
type viewFile struct {
	ClassName string       `json:"class_name,omitempty"`
	Extrinsic []float64    `json:"extrinsic"`
	Zoom      float64      `json:"zoom,omitempty"`
	Center    *pcview.Vec3 `json:"center,omitempty"`
}

const viewClassName = "PinholeCameraParameters"

// LoadCamera reads a camera view file. The rotation of the extrinsic is
// the view orientation, and the camera position it encodes becomes the
// view center; an explicit center overrides it. Zoom is used when present
// and fitted per frame otherwise.
func LoadCamera(path string) (Camera, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Camera{}, fmt.Errorf("viewer: reading camera view: %w", err)
	}
	var f viewFile
	if err := json.Unmarshal(data, &f); err != nil {
		return Camera{}, fmt.Errorf("%w: %s: %w", ErrInvalidView, path, err)
	}
	if len(f.Extrinsic) != 16 {
		return Camera{}, fmt.Errorf("%w: %s: extrinsic has %d values, want 16", ErrInvalidView, path, len(f.Extrinsic))
	}
	for _, v := range f.Extrinsic {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Camera{}, fmt.Errorf("%w: %s: non-finite extrinsic", ErrInvalidView, path)
		}
	}

	// Extrinsic and Matrix4 are both column-major.
	c := DefaultCamera()
	for col := 0; col < 3; col++ {
		for r := 0; r < 3; r++ {
			c.Base[col*4+r] = f.Extrinsic[col*4+r]
		}
	}

	// The extrinsic maps p to R*p + t, so the camera sits at -R^T * t.
	t := pcview.V3(f.Extrinsic[12], f.Extrinsic[13], f.Extrinsic[14])
	c.Center = c.Base.Transpose().TransformVector(t).Neg()
	c.centerSet = true
	if f.Center != nil && f.Center.IsFinite() {
		c.Center = *f.Center
	}

	if f.Zoom > 0 {
		c.Zoom = f.Zoom
		c.zoomSet = true
	}
	return c, nil
}

// SaveCamera writes c as a view file that LoadCamera restores exactly.
func SaveCamera(path string, c Camera) error {
	view := c.View()
	view.SetTranslation(view.TransformVector(c.Center).Neg())
	ext := view[:]

	center := c.Center
	data, err := json.MarshalIndent(viewFile{
		ClassName: viewClassName,
		Extrinsic: ext,
		Zoom:      c.Zoom,
		Center:    &center,
	}, "", "\t")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("viewer: writing camera view: %w", err)
	}
	return nil
}
