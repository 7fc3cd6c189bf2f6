// Package validate answers "is this file really the format it claims to
// be". Container checks read magic bytes directly; the MP3 check decodes
// the file through ffmpeg and judges the normalized diagnostic output.
//
// A negative answer is a value carrying a human-readable detail string,
// never an error. Errors are reserved for I/O and setup failures.
package validate
