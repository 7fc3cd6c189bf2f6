// Package main hosts the ffslot CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the conversion, probing,
// validation and staging operations of the internal packages. It
// centralizes configuration resolution and logger construction so
// subcommands can focus on flags and output formatting.
package main
