// Package cloudio decodes point-cloud frames and lists frame directories.
//
// Supported formats, chosen by file extension:
//
//   - .ply: via github.com/EliCDavis/polyform/formats/ply
//   - .pcd: via github.com/seqsense/pcgol/pc
//   - .xyz: whitespace separated "x y z [r g b]" lines
//
// Additional formats can be added with RegisterFormat.
package cloudio
