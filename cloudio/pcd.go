package cloudio

import (
	"io"

	"github.com/seqsense/pcgol/pc"

	"github.com/gogpu/pcview"
)

// DecodePCD reads a PCD file (ascii, binary or binary_compressed).
// Only the x, y and z fields are used; points get the default color.
func DecodePCD(r io.Reader) (*pcview.PointCloud, error) {
	pp, err := pc.Unmarshal(r)
	if err != nil {
		return nil, err
	}

	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, err
	}

	cloud := pcview.NewPointCloud(pp.Points)
	for ; it.IsValid(); it.Incr() {
		v := it.Vec3()
		cloud.Points = append(cloud.Points, pcview.V3(float64(v[0]), float64(v[1]), float64(v[2])))
	}
	return cloud, nil
}
