package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/timeruler/internal/control"
	"github.com/ja-he/timeruler/internal/potatolog"
	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/tui"
)

// Flags for the `tui` command line command, for `go-flags` to parse command
// line args into.
type TuiCommand struct {
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`

	Ruler RulerFlags `group:"Ruler Options"`
}

// Executes the tui command.
// (This gets called by `go-flags` when `tui` is provided on the command line)
func (command *TuiCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Fatal().Err(err).Str("file", command.LogOutputFile).Msg("could not open file for logging")
		}
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, potatolog.GlobalMemoryLogReaderWriter)
	} else {
		logWriter = potatolog.GlobalMemoryLogReaderWriter
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	configData, err := loadConfig(themeFromFlag(command.Theme))
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't load config")
	}

	stylesheet, err := styling.NewStylesheetFromConfig(configData.Stylesheet)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't construct stylesheet")
	}

	screenHandler, err := tui.NewTUIScreenHandler()
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't set up screen")
	}

	controller, err := control.NewController(
		screenHandler,
		command.Ruler.apply(configData.Ruler.Options()),
		configData.Keys,
		*stylesheet,
		potatolog.GlobalMemoryLogReaderWriter,
	)
	if err != nil {
		screenHandler.Fini()
		stderrLogger.Fatal().Err(err).Msg("can't set up TUI")
	}

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	controller.Run()
	return nil
}
