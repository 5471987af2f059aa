package config

// Color constants for logging
const (
	ColorBlue    = "\033[34m"
	ColorGreen   = "\033[32m"
	ColorMagenta = "\033[35m"
	ColorPurple  = "\033[95m"
	ColorCyan    = "\033[36m"
	ColorReset   = "\033[0m"
)
