// Package viewer renders point cloud frames in a terminal and turns
// terminal input into playback events.
//
// Points are projected orthographically onto character cells using a
// [Camera]. The camera is fitted to each frame's bounds unless a view file
// fixes it; a view file is either written by the viewer itself (key p) or
// an Open3D pinhole camera parameters file.
//
// Keys:
//
//	space        advance (playback.AdvanceKey)
//	q, Esc, ^C   quit
//	arrows       rotate the camera
//	+ / -        zoom
//	r            reset the camera
//	p            save the current view to a ScreenCamera_*.json file
package viewer
