// Package audio derives per-stream audio facts from probe output.
//
// This package depends only on internal/media/ffprobe and could be extracted
// as a standalone library alongside ffprobe.
package audio
