package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagData     = flag.String("data", "", "Extra resource directory (highest priority)")
	flagPack     = flag.String("pack", "", "Extra resource archive")
	flagEncoding = flag.String("encoding", "", "Text encoding of resource files")
	flagRagged   = flag.String("ragged", "", "Ragged row policy: truncate, strict or pad")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagData != "" {
		cfg.Resources.Dirs = append(cfg.Resources.Dirs, *flagData)
	}
	if *flagPack != "" {
		cfg.Resources.Packs = append(cfg.Resources.Packs, *flagPack)
	}
	if *flagEncoding != "" {
		cfg.Resources.Encoding = *flagEncoding
	}
	if *flagRagged != "" {
		cfg.Parser.Ragged = *flagRagged
	}
}
