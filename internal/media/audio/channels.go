package audio

import (
	"context"

	"ffslot/internal/media/ffprobe"
	"ffslot/internal/services"
)

// ChannelCount probes path and returns the channel count of its first
// stream. Probe failures propagate unchanged; a stream without a positive
// channel count is a probe data failure, not a zero result.
func ChannelCount(ctx context.Context, prober ffprobe.Prober, path string) (int, error) {
	result, err := prober.Probe(ctx, path)
	if err != nil {
		return 0, err
	}
	first := result.FirstStream()
	if first.Channels <= 0 {
		return 0, services.Wrap(services.ErrProbeParse, "audio", "channels", "first stream carries no channel count: "+path, nil)
	}
	return first.Channels, nil
}
