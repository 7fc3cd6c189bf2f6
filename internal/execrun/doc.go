// Package execrun is the execution boundary for external tools.
//
// The Runner launches a staged executable with an argument vector, captures
// both output streams, and reports the exit status without interpreting it:
// ffmpeg is known to exit zero on recoverable warnings and non-zero on
// cosmetic issues, so success is judged by callers from stderr content and
// output size. Arguments are passed directly to the process (never through a
// shell); the quoting helpers exist for safe splitting of user-supplied
// parameter strings and for rendering diagnostic command lines.
package execrun
