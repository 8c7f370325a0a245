// Package pcview plays back point-cloud frames with a text label burned
// into each frame as colored points.
//
// # Overview
//
// The heart of the package is [Project], which turns a string into a
// [PointCloud]: the text is rasterized with a font face from the text
// sub-package, every dark pixel becomes a point in the XY plane at
// [PixelsPerUnit] pixels per scene unit, and the resulting plane is rotated
// to face a direction and moved to an anchor point.
//
//	src, err := text.ResolveFontSource("goregular")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	label, err := pcview.Project(src.Face(16), "idx: 0 | file: a.ply",
//	    pcview.LabelAnchor(frame.Bounds()))
//	combined := pcview.Concat(frame, label)
//
// # Sub-packages
//
//   - text: font resolution and rasterization to an RGB bitmap
//   - cloudio: decoding PLY, PCD and XYZ frames, listing frame directories
//   - playback: frame building and the auto-play / key-driven loops
//   - viewer: terminal renderer and keyboard input
//   - config: configuration defaults and TOML/YAML loading
//
// # Coordinate System
//
// Right-handed. Text is laid out with pixel rows along +X and pixel
// columns along +Y, facing +Z before rotation.
package pcview
