package logger

// Config holds logger settings.
type Config struct {
	// Level is the minimum level to log. "debug" also switches to the
	// development configuration.
	Level string `mapstructure:"level" default:"info"`
	// Format is the output encoding, "json" or "console".
	Format string `mapstructure:"format" default:"json"`
}
