// Package staging guarantees runnable copies of the bundled external tools.
//
// Write-restricted runtimes ship ffmpeg/ffprobe in a read-only asset
// directory that cannot be executed in place. The Stager copies each tool
// into a writable slot on first use, marks it executable, and memoizes the
// resulting path for the process lifetime. Staged paths are re-checked for
// existence before reuse so out-of-band temp cleanup triggers a re-stage
// instead of a spawn failure.
package staging
