// Package cli provides the command-line interface for timeruler.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/timeruler/internal/config"
	"github.com/ja-he/timeruler/internal/ruler"
)

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	TuiCommand      TuiCommand      `command:"tui" subcommands-optional:"true"`
	SnapshotCommand SnapshotCommand `command:"snapshot" subcommands-optional:"true"`
	VersionCommand  VersionCommand  `command:"version" subcommands-optional:"true"`
}

var Opts CommandLineOpts

// RulerFlags are the ruler options that can be set on the command line,
// overriding those in the config file.
type RulerFlags struct {
	Duration *int `long:"duration" description:"the last time value to label, also bounding the drag position" value-name:"<px>"`
	Offset   *int `long:"offset" description:"the resting left offset of the ruler" value-name:"<px>"`
	Height   *int `long:"height" description:"the height of the ruler's canvas" value-name:"<px>"`
}

// apply returns the given options with every flag that was set overriding
// the respective option.
func (f RulerFlags) apply(opts ruler.Options) ruler.Options {
	if f.Duration != nil {
		opts.TimelineDuration = f.Duration
	}
	if f.Offset != nil {
		opts.OffsetLeft = f.Offset
	}
	if f.Height != nil {
		opts.CanvasHeight = f.Height
	}
	return opts
}

// themeFromFlag returns the colorscheme type for a theme flag value, where
// dark is the default.
func themeFromFlag(theme string) config.ColorschemeType {
	switch theme {
	case "light":
		return config.Light
	case "dark":
		return config.Dark
	default:
		return config.Dark
	}
}

// baseDirPath returns the directory timeruler reads its config from, which is
// '$TIMERULER_HOME' if set and '$HOME/.config/timeruler' otherwise.
func baseDirPath() string {
	timerulerHome := os.Getenv("TIMERULER_HOME")
	if timerulerHome == "" {
		return os.Getenv("HOME") + "/.config/timeruler"
	}
	return strings.TrimRight(timerulerHome, "/")
}

// loadConfig reads the config file from the base directory and augments the
// defaults for the given theme with it.
// A missing or unreadable config file is not an error, the defaults are used.
func loadConfig(theme config.ColorschemeType) (config.Config, error) {
	configPath := baseDirPath() + "/" + "config.yaml"
	yamlData, err := os.ReadFile(configPath)
	if err != nil {
		log.Warn().Err(err).Str("file", configPath).Msg("can't read config file, using defaults")
		yamlData = make([]byte, 0)
	}
	configData, err := config.ParseConfigAugmentDefaults(theme, yamlData)
	if err != nil {
		return config.Config{}, fmt.Errorf("can't parse config data (%w)", err)
	}
	return configData, nil
}
