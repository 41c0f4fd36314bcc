package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to track file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagDivisions  = flag.Int("divisions", 0, "Override track divisions")
	flagStyle      = flag.String("style", "", "Override track style")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit track file path if provided via --config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagDivisions > 0 {
		cfg.Track.Divisions = *flagDivisions
	}
	if *flagStyle != "" {
		cfg.Track.Style = *flagStyle
	}
	if *flagWidth > 0 {
		cfg.Viewer.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Viewer.Height = *flagHeight
	}
	if *flagFullscreen {
		cfg.Viewer.Fullscreen = true
	}
}
