package config

const (
	defaultAssetDir       = "/opt/bin"
	defaultStagingDir     = "/tmp/ffslot/bin"
	defaultJournalPath    = "/tmp/ffslot/journal.db"
	defaultFFmpegTool     = "ffmpeg"
	defaultFFprobeTool    = "ffprobe"
	defaultTimeoutSeconds = 900
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			AssetDir:    defaultAssetDir,
			StagingDir:  defaultStagingDir,
			JournalPath: defaultJournalPath,
		},
		Tools: Tools{
			FFmpeg:         defaultFFmpegTool,
			FFprobe:        defaultFFprobeTool,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
