package wellness

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/dashlit/internal/cli"
	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/models"
)

type HealthShowCmd struct{}

func (c *HealthShowCmd) Run(ctx *cli.Context) error {
	snap := ctx.Dashboard().Health.Snapshot()
	ctx.Printf("Water: %d cups\n", snap.Metrics.Water)
	ctx.Printf("Steps: %s\n", humanize.Comma(int64(snap.Metrics.Steps)))
	ctx.Printf("Sleep: %.1f h\n", snap.Metrics.Sleep)
	ctx.Printf("Mood:  %s %s\n", snap.Mood.Value, snap.Mood.Value.Name())
	if snap.Mood.Note != "" {
		ctx.Printf("Note:  %s\n", snap.Mood.Note)
	}
	return nil
}

type WaterCmd struct {
	Down bool `short:"d" help:"Remove a cup instead of adding one."`
}

func (c *WaterCmd) Run(ctx *cli.Context) error {
	h := ctx.Dashboard().Health
	var err error
	if c.Down {
		err = h.DecrementWater()
	} else {
		err = h.IncrementWater()
	}
	if err != nil {
		return err
	}
	ctx.Printf("Water: %d cups\n", h.Metrics().Water)
	return nil
}

type StepsCmd struct {
	Delta int  `arg:"" optional:"" help:"Steps to add (default 500)."`
	Down  bool `short:"d" help:"Subtract instead of add."`
}

func (c *StepsCmd) Run(ctx *cli.Context) error {
	h := ctx.Dashboard().Health
	var err error
	if c.Down {
		err = h.DecrementSteps(c.Delta)
	} else {
		err = h.IncrementSteps(c.Delta)
	}
	if err != nil {
		return err
	}
	ctx.Printf("Steps: %s\n", humanize.Comma(int64(h.Metrics().Steps)))
	return nil
}

type SleepCmd struct {
	Hours float64 `arg:"" help:"Hours slept, 0 to 12."`
}

func (c *SleepCmd) Validate() error {
	// written as a positive range check so NaN fails it
	if !(c.Hours >= constants.MinSleepHours && c.Hours <= constants.MaxSleepHours) {
		return fmt.Errorf("sleep must be between %.0f and %.0f hours", constants.MinSleepHours, constants.MaxSleepHours)
	}
	return nil
}

func (c *SleepCmd) Run(ctx *cli.Context) error {
	if err := c.Validate(); err != nil {
		return err
	}
	h := ctx.Dashboard().Health
	if err := h.SetSleep(c.Hours); err != nil {
		return err
	}
	ctx.Printf("Sleep: %.1f h\n", h.Metrics().Sleep)
	return nil
}

// HealthCmd groups the health subcommands
type HealthCmd struct {
	Show  HealthShowCmd `cmd:"" help:"Show today's health record." default:"1"`
	Water WaterCmd      `cmd:"" help:"Add or remove a cup of water."`
	Steps StepsCmd      `cmd:"" help:"Add or subtract steps."`
	Sleep SleepCmd      `cmd:"" help:"Record hours slept."`
}

type MoodSetCmd struct {
	Mood string `arg:"" help:"Mood as an emoji, a name (low, down, neutral, good, great) or 1-5."`
}

func (c *MoodSetCmd) Run(ctx *cli.Context) error {
	mood, ok := models.ParseMood(c.Mood)
	if !ok {
		return fmt.Errorf("unknown mood %q", c.Mood)
	}
	h := ctx.Dashboard().Health
	if err := h.SetMood(mood); err != nil {
		return err
	}
	ctx.Printf("Mood: %s %s\n", mood, mood.Name())
	return nil
}

type MoodNoteCmd struct {
	Text []string `arg:"" optional:"" help:"Note text. Omit to clear."`
}

func (c *MoodNoteCmd) Run(ctx *cli.Context) error {
	note := strings.Join(c.Text, " ")
	if err := ctx.Dashboard().Health.SetMoodNote(note); err != nil {
		return err
	}
	if note == "" {
		ctx.Println("Cleared mood note")
	} else {
		ctx.Println("Saved mood note")
	}
	return nil
}

// MoodCmd groups the mood subcommands
type MoodCmd struct {
	Set  MoodSetCmd  `cmd:"" help:"Pick today's mood."`
	Note MoodNoteCmd `cmd:"" help:"Set the mood note."`
}
