package transcode

import (
	"context"
	"strconv"
	"strings"

	"ffslot/internal/media/ffprobe"
	"ffslot/internal/services"
)

// Fallback parameters appended when source rate negotiation fails. The
// values look unit-swapped for audio, but downstream consumers depend on
// these exact flags being emitted on the fallback path, so they stay.
const (
	fallbackSampleRate = 320000
	fallbackBitRate    = 48000
)

// FallbackRateParams returns the rate flags used when the source cannot
// be probed or carries no usable sample rate.
func FallbackRateParams() []string {
	return []string{
		"-ar", strconv.Itoa(fallbackSampleRate),
		"-b:a", strconv.Itoa(fallbackBitRate),
	}
}

// RateGenerator resolves the sample-rate, bit-rate and codec parameters
// for one invocation. Floors cap the source values without ever raising
// them; forced values win over everything else.
type RateGenerator struct {
	floorSampleRate int
	floorBitRate    int

	forceSampleRate int
	forceBitRate    int
	forceCodec      string

	sourceSampleRate int
	sourceBitRate    int
	sourceCodec      string
}

func NewRateGenerator() *RateGenerator {
	return &RateGenerator{}
}

// SetFloorSampleRate caps the effective sample rate. Zero disables the cap.
func (g *RateGenerator) SetFloorSampleRate(hz int) { g.floorSampleRate = hz }

// SetFloorBitRate caps the effective bit rate. Zero disables the cap.
func (g *RateGenerator) SetFloorBitRate(bps int) { g.floorBitRate = bps }

// ForceSampleRate pins the emitted sample rate regardless of source or floor.
func (g *RateGenerator) ForceSampleRate(hz int) { g.forceSampleRate = hz }

// ForceBitRate pins the emitted bit rate regardless of source or floor.
func (g *RateGenerator) ForceBitRate(bps int) { g.forceBitRate = bps }

// ForceCodec pins the emitted codec for uncompressed targets, skipping
// endianness matching.
func (g *RateGenerator) ForceCodec(name string) { g.forceCodec = name }

// MatchSource probes path and records the first stream's sample rate, bit
// rate and codec for later resolution. A probe failure or a first stream
// without a sample rate is an error; callers fall back to
// FallbackRateParams in that case.
func (g *RateGenerator) MatchSource(ctx context.Context, prober ffprobe.Prober, path string) error {
	result, err := prober.Probe(ctx, path)
	if err != nil {
		return err
	}
	first := result.FirstStream()
	if strings.TrimSpace(first.SampleRate) == "" {
		return services.Wrap(services.ErrProbeParse, "transcode", "match source",
			"first stream carries no sample rate: "+path, nil)
	}
	g.sourceSampleRate = first.SampleRateHz()
	g.sourceBitRate = first.BitRateBPS()
	g.sourceCodec = first.CodecName
	return nil
}

// Params resolves the flags for targetFormat, a lowercase extension such
// as "mp3" or "wav". Compressed targets and non-PCM sources get rate
// flags only; a PCM source headed for an uncompressed container keeps its
// codec with the endianness flipped to match the container's byte order.
func (g *RateGenerator) Params(targetFormat string) []string {
	sampleRate := effectiveRate(g.forceSampleRate, g.floorSampleRate, g.sourceSampleRate)
	bitRate := effectiveRate(g.forceBitRate, g.floorBitRate, g.sourceBitRate)

	if !isUncompressedTarget(targetFormat) || !isPCMCodec(g.sourceCodec) {
		args := []string{"-ar", strconv.Itoa(sampleRate)}
		if bitRate > 0 {
			args = append(args, "-b:a", strconv.Itoa(bitRate))
		}
		return args
	}

	codec := g.forceCodec
	if codec == "" {
		codec = matchEndianness(g.sourceCodec, targetFormat)
	}
	return []string{"-ar", strconv.Itoa(sampleRate), "-c:a", codec}
}

// effectiveRate picks force when set, otherwise the source capped by the
// floor. A missing source value falls through to the floor alone.
func effectiveRate(force, floor, source int) int {
	if force > 0 {
		return force
	}
	if floor <= 0 {
		return source
	}
	if source <= 0 || source > floor {
		return floor
	}
	return source
}

func isUncompressedTarget(format string) bool {
	switch format {
	case "wav", "aiff", "aif", "au":
		return true
	}
	return false
}

func isPCMCodec(codec string) bool {
	return strings.HasPrefix(codec, "pcm_")
}

// matchEndianness flips the trailing byte-order marker of a PCM codec
// name so the stream copies cleanly into the target container: WAV is
// little-endian, AIFF is big-endian.
func matchEndianness(codec, targetFormat string) string {
	switch targetFormat {
	case "wav":
		if strings.HasSuffix(codec, "be") {
			return strings.TrimSuffix(codec, "be") + "le"
		}
	case "aiff", "aif":
		if strings.HasSuffix(codec, "le") {
			return strings.TrimSuffix(codec, "le") + "be"
		}
	}
	return codec
}
