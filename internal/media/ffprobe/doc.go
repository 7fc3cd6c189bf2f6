// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Stream: individual audio/video stream properties
//   - Format: container-level metadata (duration, size, bitrate)
//
// Primary entry points:
//   - Inspect: executes ffprobe and returns a parsed Result
//   - Client: binds Inspect to the staged ffprobe binary
//
// Probing a file that yields zero streams is a failure, not an empty result;
// every successful Result carries at least one stream.
package ffprobe
