// omch parses text resources into typed values and builds resource archives.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Owmacohe/OMCHTools/internal/config"
	"github.com/Owmacohe/OMCHTools/internal/logger"
	"github.com/Owmacohe/OMCHTools/pkg/resource"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg, config.Args(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

// run dispatches a command. args[0] is the command name.
func run(cfg *config.Config, args []string, out io.Writer) error {
	if len(args) < 1 {
		printUsage(out)
		return errUsage
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "pack":
		return cmdPack(args, out)
	case "list", "ls":
		return cmdList(args, out)
	case "config":
		return cmdConfig(cfg, args, out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	}

	cmd, ok := parseCommands[command]
	if !ok {
		printUsage(out)
		return fmt.Errorf("unknown command: %s", command)
	}

	mgr, err := newManager(cfg)
	if err != nil {
		return err
	}
	defer func() {
		hits, misses := mgr.Stats()
		logger.Debug("resource cache", zap.Int("hits", hits), zap.Int("misses", misses))
		if err := mgr.Close(); err != nil {
			logger.Warn("closing resources", zap.Error(err))
		}
	}()

	return cmd(cfg, mgr, args, out)
}

// newManager builds the resource search stack: packs first, then loose
// directories on top so they override packed files.
func newManager(cfg *config.Config) (*resource.Manager, error) {
	mgr := resource.NewManager(
		resource.WithExtensions(cfg.Resources.Extensions...),
		resource.WithLogger(logger.Named("resource")),
	)
	for _, p := range cfg.Resources.Packs {
		if err := mgr.AddPack(p); err != nil {
			mgr.Close()
			return nil, err
		}
	}
	for _, d := range cfg.Resources.Dirs {
		if err := mgr.AddDir(d); err != nil {
			mgr.Close()
			return nil, err
		}
	}
	return mgr, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `omch - typed text resource utility

Usage:
  omch [global flags] <command> [args]

Commands:
  lines <name>                     Print rows as strings
  ints <name>                      Parse one integer per row
  floats <name>                    Parse one float per row
  vectors <name> [-d ,]            Parse one 3D vector per row
  grid <name> [-d ,]               Parse a string grid
  intgrid <name> [-d ,]            Parse an integer grid
  floatgrid <name> [-d ,]          Parse a float grid
  vgrid <name> [-d ,] [-i ;]       Parse a grid of 3D vectors
  pack <out.pack> <dir>            Build an archive from a directory
  list <file.pack>                 List archive entries
  config [path]                    Write the effective config (default: user config dir)

Global flags:
  -config <file>    Config file (default ./omch.yaml, then user config dir)
  -debug            Enable debug logging
  -data <dir>       Extra resource directory (highest priority)
  -pack <file>      Extra resource archive
  -encoding <name>  Resource text encoding (utf-8, utf-16, euc-kr, shift-jis, ...)
  -ragged <policy>  Ragged row policy: truncate, strict or pad

Examples:
  omch ints levels
  omch -data ./maps vgrid spawn -d , -i ;
  omch pack data.pack ./data
  omch -pack data.pack floatgrid heights`)
}
