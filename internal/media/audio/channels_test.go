package audio_test

import (
	"context"
	"errors"
	"testing"

	"ffslot/internal/media/audio"
	"ffslot/internal/media/ffprobe"
	"ffslot/internal/services"
)

type fakeProber struct {
	result ffprobe.Result
	err    error
}

func (f fakeProber) Probe(context.Context, string) (ffprobe.Result, error) {
	return f.result, f.err
}

func TestChannelCount(t *testing.T) {
	prober := fakeProber{result: ffprobe.Result{
		Streams: []ffprobe.Stream{{CodecType: "audio", Channels: 2}},
	}}
	got, err := audio.ChannelCount(context.Background(), prober, "/tmp/stereo.wav")
	if err != nil {
		t.Fatalf("ChannelCount failed: %v", err)
	}
	if got != 2 {
		t.Fatalf("ChannelCount = %d, want 2", got)
	}
}

func TestChannelCountPropagatesProbeError(t *testing.T) {
	probeErr := services.Wrap(services.ErrProbeParse, "ffprobe", "parse", "no streams", nil)
	_, err := audio.ChannelCount(context.Background(), fakeProber{err: probeErr}, "/tmp/x")
	if !errors.Is(err, services.ErrProbeParse) {
		t.Fatalf("expected probe error to propagate, got %v", err)
	}
}

func TestChannelCountMissingField(t *testing.T) {
	prober := fakeProber{result: ffprobe.Result{
		Streams: []ffprobe.Stream{{CodecType: "audio"}},
	}}
	_, err := audio.ChannelCount(context.Background(), prober, "/tmp/x")
	if err == nil {
		t.Fatal("expected error for missing channel count")
	}
	if !errors.Is(err, services.ErrProbeParse) {
		t.Fatalf("expected probe parse marker, got %v", err)
	}
}
