// Package playback steps through a directory of point-cloud frames.
//
// A Builder turns a frame index into a Frame: the decoded cloud with its
// "idx | file" label projected below the cloud's bounding box. A Player
// hands frames to a Renderer either on a timer (RunAuto) or when the
// advance key is pressed (RunKeys). Input and rendering are interfaces;
// the viewer package provides a terminal implementation of both.
package playback
