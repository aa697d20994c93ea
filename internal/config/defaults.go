package config

const (
	defaultSettingsPath = "~/.config/dartdecode/settings.toml"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// DefaultSettings returns Settings populated with repository defaults.
func DefaultSettings() Settings {
	return Settings{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
