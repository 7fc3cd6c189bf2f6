package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"ffslot/internal/execrun"
	"ffslot/internal/services"
)

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// Stream describes a single stream in the media container. ffprobe reports
// several numeric fields as strings; accessors convert on demand.
type Stream struct {
	Index      int    `json:"index"`
	CodecName  string `json:"codec_name"`
	CodecType  string `json:"codec_type"`
	Duration   string `json:"duration"`
	BitRate    string `json:"bit_rate"`
	SampleRate string `json:"sample_rate"`
	Channels   int    `json:"channels"`
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	Filename   string `json:"filename"`
	NBStreams  int    `json:"nb_streams"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
	BitRate    string `json:"bit_rate"`
	FormatName string `json:"format_name"`
}

// SampleRateHz returns the stream sample rate in Hz, or 0 when unavailable.
func (s Stream) SampleRateHz() int {
	return parseInt(s.SampleRate)
}

// BitRateBPS returns the stream bit rate in bits per second, or 0 when
// unavailable.
func (s Stream) BitRateBPS() int {
	return parseInt(s.BitRate)
}

// FirstStream returns the first stream of the result. Parsing guarantees at
// least one stream, so this never fails on an Inspect-produced Result.
func (r Result) FirstStream() Stream {
	if len(r.Streams) == 0 {
		return Stream{}
	}
	return r.Streams[0]
}

// StreamCount returns the number of streams discovered.
func (r Result) StreamCount() int {
	return len(r.Streams)
}

// CommandRunner executes an external tool and captures its output.
// *execrun.Runner satisfies it, which keeps probe invocations under the
// same configured process deadline as every other tool run.
type CommandRunner interface {
	Run(ctx context.Context, path string, args []string) execrun.Result
}

// Inspect executes ffprobe against the provided path and decodes the JSON
// response. Each call re-invokes the tool; results are never cached.
func Inspect(ctx context.Context, runner CommandRunner, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("ffprobe inspect: empty path")
	}

	run := runner.Run(ctx, binary, []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	})
	if run.Err != nil {
		detail := strings.TrimSpace(run.Stderr)
		return Result{}, services.Wrap(services.ErrProbeParse, "ffprobe", "inspect", detail, run.Err)
	}

	return ParseJSON(path, []byte(run.Stdout))
}

// ParseJSON converts raw ffprobe JSON output into a Result. Exported for
// testing without a real ffprobe binary.
func ParseJSON(path string, data []byte) (Result, error) {
	var result Result
	if err := json.Unmarshal(data, &result); err != nil {
		return Result{}, services.Wrap(services.ErrProbeParse, "ffprobe", "parse", path, err)
	}
	if len(result.Streams) == 0 {
		return Result{}, services.Wrap(services.ErrProbeParse, "ffprobe", "parse", "no streams in "+path, nil)
	}
	return result, nil
}

// Prober abstracts probing so higher layers can be tested without binaries.
type Prober interface {
	Probe(ctx context.Context, path string) (Result, error)
}

// BinaryResolver returns the path of the ffprobe executable to invoke,
// staging it first when necessary.
type BinaryResolver func(ctx context.Context) (string, error)

// Client binds Inspect to a resolved (staged) ffprobe binary executed
// through the shared runner.
type Client struct {
	resolve BinaryResolver
	runner  CommandRunner
}

// NewClient constructs a Client from a binary resolver and a runner.
func NewClient(resolve BinaryResolver, runner CommandRunner) *Client {
	return &Client{resolve: resolve, runner: runner}
}

// Probe resolves the ffprobe binary and inspects path.
func (c *Client) Probe(ctx context.Context, path string) (Result, error) {
	binary, err := c.resolve(ctx)
	if err != nil {
		return Result{}, err
	}
	return Inspect(ctx, c.runner, binary, path)
}

var _ Prober = (*Client)(nil)

func parseInt(value string) int {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0
	}
	if parsed, err := strconv.Atoi(cleaned); err == nil {
		return parsed
	}
	return 0
}
