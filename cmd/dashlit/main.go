package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/dashlit/internal/cli"
	"github.com/julianstephens/dashlit/internal/cli/finances"
	"github.com/julianstephens/dashlit/internal/cli/goals"
	"github.com/julianstephens/dashlit/internal/cli/notes"
	"github.com/julianstephens/dashlit/internal/cli/system"
	"github.com/julianstephens/dashlit/internal/cli/wellness"
	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/dashboard"
	"github.com/julianstephens/dashlit/internal/errors"
	"github.com/julianstephens/dashlit/internal/logger"
)

var CLI struct {
	Version       kong.VersionFlag
	Config        string `help:"Store path. A .json path uses the JSON file store, :memory: keeps data for this run only." env:"DASHLIT_CONFIG" default:"${default_config}"`
	Debug         bool   `help:"Enable debug logging to stderr." env:"DASHLIT_DEBUG"`
	ThemeFallback string `help:"Theme to use when none is saved (auto asks the terminal)." env:"DASHLIT_THEME_FALLBACK" enum:"auto,light,dark" default:"auto"`

	Tui     system.TuiCmd       `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Init    system.InitCmd      `cmd:"" help:"Initialize dashlit storage."`
	Status  system.StatusCmd    `cmd:"" help:"Show a one-screen summary."`
	Goal    goals.GoalCmd       `cmd:"" help:"Manage daily goals."`
	Note    notes.NoteCmd       `cmd:"" help:"Show or replace the note."`
	Finance finances.FinanceCmd `cmd:"" help:"Track income and expenses."`
	Health  wellness.HealthCmd  `cmd:"" help:"Track water, steps and sleep."`
	Mood    wellness.MoodCmd    `cmd:"" help:"Track today's mood."`
	Theme   system.ThemeCmd     `cmd:"" help:"Show or change the color theme."`
	Backup  system.BackupCmd    `cmd:"" help:"Create, list and restore store backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("A personal dashboard for goals, notes, finances and wellbeing"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	)

	configPath, err := cli.ExpandPath(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}

	command := ctx.Command()
	interactive := command == "tui"

	logDir := filepath.Dir(configPath)
	if configPath == constants.MemoryConfigPath {
		logDir = os.TempDir()
	}
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug && !interactive,
		ConfigDir: logDir,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
		logger.InitWriter(os.Stderr, CLI.Debug)
	}
	defer logger.Close()

	fallback, err := cli.ParseThemeFallback(CLI.ThemeFallback)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := cli.NewContext(cli.NewProvider(configPath), dashboard.Options{System: fallback})
	defer appCtx.Provider.Close()

	// init manages the store lifecycle itself
	if command != "init" {
		appCtx.Open()
		if appCtx.Degraded && !interactive {
			fmt.Fprintf(os.Stderr, "Warning: could not open %s, changes will not be saved\n", configPath)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		appCtx.Provider.Close()
		errors.Fatal(err)
	}
}
