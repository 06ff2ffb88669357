package settings

const (
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
	defaultTableStyle = "rounded"
	defaultColor      = "auto"
)

// Default returns Settings populated with repository defaults.
func Default() Settings {
	return Settings{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Output: Output{
			TableStyle: defaultTableStyle,
			Color:      defaultColor,
		},
	}
}
