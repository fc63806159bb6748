package system

import (
	"github.com/dustin/go-humanize"

	"github.com/julianstephens/dashlit/internal/cli"
	"github.com/julianstephens/dashlit/internal/ledger"
	"github.com/julianstephens/dashlit/internal/logger"
)

type StatusCmd struct {
	Keys bool `help:"Also list the stored keys and their sizes."`
}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	s := ctx.Dashboard().Summary()

	ctx.Printf("Storage:  %s\n", ctx.Provider.GetConfigPath())
	if ctx.Degraded {
		ctx.Println("          (session only, the configured store could not be opened)")
	}
	ctx.Printf("Goals:    %d/%d done\n", s.GoalsDone, s.GoalsTotal)
	ctx.Printf("Note:     %d characters\n", s.NoteLength)
	ctx.Printf("Balance:  %s (%d transactions)\n", ledger.FormatSigned(s.Balance), s.Transactions)
	ctx.Printf("Water:    %d cups\n", s.Health.Water)
	ctx.Printf("Steps:    %s\n", humanize.Comma(int64(s.Health.Steps)))
	ctx.Printf("Sleep:    %.1f h\n", s.Health.Sleep)
	ctx.Printf("Mood:     %s %s\n", s.Mood.Value, s.Mood.Value.Name())

	source := "system"
	if s.ThemeStored {
		source = "saved"
	}
	ctx.Printf("Theme:    %s (%s)\n", s.Theme, source)

	if path := logger.Path(); path != "" {
		ctx.Printf("Log:      %s\n", path)
	}

	if c.Keys {
		keys, err := ctx.Provider.Keys()
		if err != nil {
			return err
		}
		ctx.Println("\nStored keys:")
		for _, k := range keys {
			raw, _ := ctx.Dashboard().Store().Raw(k)
			ctx.Printf("  %-10s %s\n", k, humanize.Bytes(uint64(len(raw))))
		}
	}
	return nil
}
