package validate

import (
	"regexp"
	"strings"
)

// Decode-pass stderr contains noise that does not indicate a broken
// file. The normalization below is an ordered strip pipeline; its output
// is compared against the empty string to decide validity, so the rules
// must stay stable.
var (
	// id3v2 tag chatter from the decoder, harmless.
	bomWarning       = "Incorrect BOM value"
	frameReadWarning = regexp.MustCompile(`Error reading frame \d+, skipped`)

	codecTag       = regexp.MustCompile(`\[[^\[\]]+ @ 0x[0-9a-fA-F]+\] ?`)
	repeatedNotice = regexp.MustCompile(`\s*(Last message )?repeated \d+ times\.?\s*`)
	decodePrefix   = regexp.MustCompile(`Error while decoding stream #\d+:\d+: `)
)

// NormalizeDecodeLog reduces raw decode-pass stderr to the diagnostics
// that matter: benign warnings are dropped, per-line decoration (the
// input path prefix at line start, codec tags with heap addresses,
// repeat counters, stream-decode prefixes) is stripped, and the
// survivors are trimmed, deduplicated and joined with newlines. An empty
// return means the decoder had nothing real to complain about.
func NormalizeDecodeLog(raw, inputPath string) string {
	var kept []string
	seen := make(map[string]bool)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.Contains(line, bomWarning) || frameReadWarning.MatchString(line) {
			continue
		}
		line = strings.TrimPrefix(line, inputPath+": ")
		line = codecTag.ReplaceAllString(line, "")
		line = repeatedNotice.ReplaceAllString(line, "")
		line = decodePrefix.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
