// Package transcode assembles and executes ffmpeg invocations.
//
// The Orchestrator turns an InputSpec/OutputSpec pair into a full argument
// vector, resolves the destination (explicit path, generated path, or none
// for decode-only passes), negotiates output rate parameters from source
// metadata when requested, runs the staged ffmpeg, and judges success from
// the produced file size rather than the process exit code.
//
// Argument order is fixed: input parameters, -i, input path, negotiated rate
// parameters, output parameters, then the destination, with -y inserted only
// when the destination was generated (the freshly allocated placeholder file
// already exists, so ffmpeg needs explicit overwrite permission).
package transcode
