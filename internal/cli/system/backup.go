package system

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/dashlit/internal/backup"
	"github.com/julianstephens/dashlit/internal/cli"
	"github.com/julianstephens/dashlit/internal/logger"
)

func backupManager(ctx *cli.Context) (*backup.Manager, error) {
	if ctx.Degraded {
		return nil, errors.New("the configured store could not be opened, nothing to back up")
	}
	return backup.NewManager(ctx.Provider.GetConfigPath()), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	path, err := mgr.Create()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	ctx.Printf("✓ Backup created: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		ctx.Println("No backups found.")
		ctx.Printf("Backups are stored in: %s\n", mgr.Dir())
		return nil
	}

	for _, b := range backups {
		ctx.Printf("  %s  %s  (%s, %s)\n",
			b.Timestamp.Format("2006-01-02 15:04:05"),
			filepath.Base(b.Path),
			humanize.Bytes(uint64(b.Size)),
			humanize.Time(b.Timestamp),
		)
	}
	ctx.Printf("\nBackup directory: %s\n", mgr.Dir())
	return nil
}

type BackupRestoreCmd struct {
	File string `arg:"" help:"Path or file name of the backup to restore."`
	Yes  bool   `short:"y" help:"Do not ask for confirmation."`

	Stdin io.Reader `kong:"-"`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	path, err := mgr.Resolve(c.File)
	if err != nil {
		return err
	}

	if !c.Yes {
		ctx.Println("This replaces the current store with the backup.")
		ctx.Println("A backup of the current store is created first.")
		ctx.Printf("\nRestore from: %s\n", filepath.Base(path))
		ctx.Printf("Continue? [y/N]: ")

		in := c.Stdin
		if in == nil {
			in = os.Stdin
		}
		response, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if r := strings.ToLower(strings.TrimSpace(response)); r != "y" && r != "yes" {
			ctx.Println("Restore cancelled.")
			return nil
		}
	}

	if err := ctx.Provider.Close(); err != nil {
		logger.Warn("failed to close store before restore", "error", err)
	}
	previous, restoreErr := mgr.Restore(path)
	// reopen either way so the rest of the session keeps a usable store
	if err := ctx.Provider.Load(); err != nil {
		return errors.Join(restoreErr, fmt.Errorf("failed to reopen store: %w", err))
	}
	ctx.Reset()
	if restoreErr != nil {
		return fmt.Errorf("restore failed: %w", restoreErr)
	}

	if previous != "" {
		ctx.Printf("Previous store saved as: %s\n", filepath.Base(previous))
	}
	ctx.Println("✓ Store restored.")
	return nil
}

// BackupCmd groups the backup subcommands
type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Back up the store now." default:"1"`
	List    BackupListCmd    `cmd:"" help:"List backups, newest first."`
	Restore BackupRestoreCmd `cmd:"" help:"Replace the store with a backup."`
}
