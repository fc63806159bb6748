package system

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/dashlit/internal/cli"
	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Delete the existing store before initializing."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	path := ctx.Provider.GetConfigPath()

	if c.Force && path != constants.MemoryConfigPath {
		if _, err := os.Stat(path); err == nil {
			// close first so sqlite releases the file
			if err := ctx.Provider.Close(); err != nil {
				return fmt.Errorf("failed to close existing store: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing store: %w", err)
			}
			ctx.Printf("Deleted existing store at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing store: %w", err)
		}
	}

	if err := ctx.Provider.Init(); err != nil {
		if errors.Is(err, storage.ErrAlreadyInitialized) {
			ctx.Printf("Storage already initialized at: %s (use --force to reset)\n", path)
			return nil
		}
		return err
	}
	ctx.Reset()
	ctx.Printf("Initialized %s storage at: %s\n", constants.AppName, path)
	return nil
}
