package system

import (
	"github.com/julianstephens/dashlit/internal/cli"
	"github.com/julianstephens/dashlit/internal/models"
)

type ThemeShowCmd struct{}

func (c *ThemeShowCmd) Run(ctx *cli.Context) error {
	ctx.Println(ctx.Dashboard().Theme.Current())
	return nil
}

type ThemeToggleCmd struct{}

func (c *ThemeToggleCmd) Run(ctx *cli.Context) error {
	pref := ctx.Dashboard().Theme
	if err := pref.Toggle(); err != nil {
		return err
	}
	ctx.Printf("Theme set to %s\n", pref.Current())
	return nil
}

type ThemeSetCmd struct {
	Theme string `arg:"" help:"light or dark."`
}

func (c *ThemeSetCmd) Run(ctx *cli.Context) error {
	t, err := models.ParseTheme(c.Theme)
	if err != nil {
		return err
	}
	pref := ctx.Dashboard().Theme
	if err := pref.Set(t); err != nil {
		return err
	}
	ctx.Printf("Theme set to %s\n", pref.Current())
	return nil
}

// ThemeCmd groups the theme subcommands
type ThemeCmd struct {
	Show   ThemeShowCmd   `cmd:"" help:"Show the active theme." default:"1"`
	Toggle ThemeToggleCmd `cmd:"" help:"Switch between light and dark."`
	Set    ThemeSetCmd    `cmd:"" help:"Set the theme explicitly."`
}
