package pcview

import "fmt"

// PointCloud is an ordered set of points with a parallel set of colors.
// Points[i] is drawn with Colors[i]; the two slices always have the same length.
type PointCloud struct {
	Points []Vec3
	Colors []Color3
}

// NewPointCloud returns an empty cloud with room for n points.
func NewPointCloud(n int) *PointCloud {
	return &PointCloud{
		Points: make([]Vec3, 0, n),
		Colors: make([]Color3, 0, n),
	}
}

// Len returns the number of points.
func (pc *PointCloud) Len() int {
	if pc == nil {
		return 0
	}
	return len(pc.Points)
}

// Append adds a point with its color.
func (pc *PointCloud) Append(p Vec3, c Color3) {
	pc.Points = append(pc.Points, p)
	pc.Colors = append(pc.Colors, c)
}

// Validate reports an error if the point and color slices disagree in length.
func (pc *PointCloud) Validate() error {
	if len(pc.Points) != len(pc.Colors) {
		return fmt.Errorf("pcview: point cloud has %d points but %d colors", len(pc.Points), len(pc.Colors))
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the points.
// An empty cloud returns an empty box.
func (pc *PointCloud) Bounds() Box3 {
	b := EmptyBox3()
	if pc == nil {
		return b
	}
	for _, p := range pc.Points {
		b = b.ExpandByPoint(p)
	}
	return b
}

// Transform applies m to every point in place. Colors are unchanged.
func (pc *PointCloud) Transform(m Matrix4) {
	for i, p := range pc.Points {
		pc.Points[i] = m.TransformPoint(p)
	}
}

// Clone returns a deep copy of the cloud.
func (pc *PointCloud) Clone() *PointCloud {
	out := &PointCloud{
		Points: make([]Vec3, len(pc.Points)),
		Colors: make([]Color3, len(pc.Colors)),
	}
	copy(out.Points, pc.Points)
	copy(out.Colors, pc.Colors)
	return out
}

// Concat returns a new cloud holding the points of all given clouds in order.
// Nil clouds are skipped. The inputs are not modified.
func Concat(clouds ...*PointCloud) *PointCloud {
	n := 0
	for _, c := range clouds {
		n += c.Len()
	}
	out := NewPointCloud(n)
	for _, c := range clouds {
		if c == nil {
			continue
		}
		out.Points = append(out.Points, c.Points...)
		out.Colors = append(out.Colors, c.Colors...)
	}
	return out
}
