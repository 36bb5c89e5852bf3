package config

const (
	defaultDataDir       = "~/.local/share/garmin-dev"
	defaultLogDir        = "~/.local/share/garmin-dev/logs"
	defaultDevice        = "fenix7"
	defaultOutputFormat  = "xml"
	defaultAppName       = "Garmin App"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultRetentionDays = 90
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Capture: Capture{
			DefaultDevice: defaultDevice,
			OutputFormat:  defaultOutputFormat,
			AppName:       defaultAppName,
		},
		History: History{
			Enabled:       true,
			RetentionDays: defaultRetentionDays,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
