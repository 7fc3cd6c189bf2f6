package transcode

// InputSpec describes the source side of an ffmpeg invocation.
type InputSpec struct {
	// Path is the source file. It must reference an existing regular file.
	Path string
	// Args are raw parameters placed before -i, e.g. decoder selection.
	Args []string
}

// OutputSpec describes the destination side of an ffmpeg invocation.
// Exactly one of Path or Postfix should be set; leaving both empty is
// an error for Convert (decode-only passes go through RunNull instead).
type OutputSpec struct {
	// Path is an explicit destination. The caller owns the file and no
	// overwrite flag is added, so ffmpeg refuses to clobber it.
	Path string
	// Postfix selects a generated destination: a fresh uniquely named
	// file with this suffix under the configured output directory.
	Postfix string
	// Args are raw parameters placed after rate negotiation and before
	// the destination.
	Args []string

	// MatchInputRates enables rate negotiation from source metadata.
	MatchInputRates bool
	// ForceSampleRate, ForceBitRate and ForceCodec override the
	// negotiated values when non-zero. They only apply when
	// MatchInputRates is set.
	ForceSampleRate int
	ForceBitRate    int
	ForceCodec      string
}

// Result is the outcome of a Convert call. Err is nil only when the
// destination holds at least one byte; stdout, stderr and the rendered
// command line are captured regardless so callers can inspect them.
type Result struct {
	Err        error
	OutputFile string
	Size       int64
	Stdout     string
	Stderr     string
	Command    string
}
