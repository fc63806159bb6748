package notes

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julianstephens/dashlit/internal/cli"
)

type NoteShowCmd struct{}

func (c *NoteShowCmd) Run(ctx *cli.Context) error {
	note := ctx.Dashboard().Notes.Saved()
	if note == "" {
		ctx.Println("(empty)")
		return nil
	}
	ctx.Println(note)
	return nil
}

type NoteSetCmd struct {
	Text  []string `arg:"" optional:"" help:"New note text. Use - to read from stdin."`
	Clear bool     `help:"Save an empty note."`

	Stdin io.Reader `kong:"-"`
}

func (c *NoteSetCmd) Run(ctx *cli.Context) error {
	var text string
	switch {
	case c.Clear:
	case len(c.Text) == 1 && c.Text[0] == "-":
		in := c.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("failed to read note from stdin: %w", err)
		}
		text = strings.TrimRight(string(data), "\n")
	case len(c.Text) > 0:
		text = strings.Join(c.Text, " ")
	default:
		return fmt.Errorf("no note text given (use --clear to empty the note)")
	}

	notes := ctx.Dashboard().Notes
	notes.Edit(text)
	if err := notes.Save(); err != nil {
		return err
	}
	ctx.Printf("Saved note (%d characters)\n", len([]rune(text)))
	return nil
}

// NoteCmd groups the note subcommands
type NoteCmd struct {
	Show NoteShowCmd `cmd:"" help:"Print the saved note." default:"1"`
	Set  NoteSetCmd  `cmd:"" help:"Replace the saved note."`
}
