package goals

import (
	"errors"
	"strings"

	"github.com/julianstephens/dashlit/internal/cli"
	"github.com/julianstephens/dashlit/internal/models"
)

type GoalAddCmd struct {
	Text []string `arg:"" help:"Goal text."`
}

func (c *GoalAddCmd) Run(ctx *cli.Context) error {
	g, err := ctx.Dashboard().Goals.Add(strings.Join(c.Text, " "))
	if err != nil {
		return err
	}
	if g.ID == "" {
		return errors.New("goal text cannot be empty")
	}
	ctx.Printf("Added goal: %s\n", g.Text)
	return nil
}

type GoalListCmd struct {
	IDs bool `help:"Show goal ids."`
}

func (c *GoalListCmd) Run(ctx *cli.Context) error {
	list := ctx.Dashboard().Goals
	goals := list.Snapshot()
	if len(goals) == 0 {
		ctx.Println("No goals yet.")
		return nil
	}

	for i, g := range goals {
		mark := " "
		if g.Done {
			mark = "x"
		}
		if c.IDs {
			ctx.Printf("%2d. [%s] %s  (%s)\n", i+1, mark, g.Text, g.ID)
		} else {
			ctx.Printf("%2d. [%s] %s\n", i+1, mark, g.Text)
		}
	}
	done, total := list.Counts()
	ctx.Printf("\n%d/%d done\n", done, total)
	return nil
}

type GoalToggleCmd struct {
	Ref string `arg:"" help:"Goal number, id, or id prefix."`
}

func (c *GoalToggleCmd) Run(ctx *cli.Context) error {
	list := ctx.Dashboard().Goals
	id, err := cli.ResolveRef(c.Ref, goalIDs(list.Snapshot()))
	if err != nil {
		return err
	}
	if err := list.Toggle(id); err != nil {
		return err
	}
	g, _ := list.Find(id)
	state := "open"
	if g.Done {
		state = "done"
	}
	ctx.Printf("Marked %q %s\n", g.Text, state)
	return nil
}

type GoalRemoveCmd struct {
	Ref string `arg:"" help:"Goal number, id, or id prefix."`
}

func (c *GoalRemoveCmd) Run(ctx *cli.Context) error {
	list := ctx.Dashboard().Goals
	id, err := cli.ResolveRef(c.Ref, goalIDs(list.Snapshot()))
	if err != nil {
		return err
	}
	g, _ := list.Find(id)
	if err := list.Remove(id); err != nil {
		return err
	}
	ctx.Printf("Removed goal: %s\n", g.Text)
	return nil
}

// GoalCmd groups the goal subcommands
type GoalCmd struct {
	Add    GoalAddCmd    `cmd:"" help:"Add a goal."`
	List   GoalListCmd   `cmd:"" help:"List goals, newest first." default:"1"`
	Toggle GoalToggleCmd `cmd:"" help:"Mark a goal done or open."`
	Remove GoalRemoveCmd `cmd:"" help:"Delete a goal."`
}

func goalIDs(goals []models.Goal) []string {
	ids := make([]string, len(goals))
	for i, g := range goals {
		ids[i] = g.ID
	}
	return ids
}
