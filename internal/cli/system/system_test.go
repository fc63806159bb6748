package system

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/dashlit/internal/cli"
	"github.com/julianstephens/dashlit/internal/cli/clitest"
	"github.com/julianstephens/dashlit/internal/models"
	"github.com/julianstephens/dashlit/internal/storage/jsonfile"
	"github.com/julianstephens/dashlit/internal/storage/sqlite"
)

func setupInitContext(t *testing.T, name string) (*cli.Context, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	ctx := cli.NewContext(cli.NewProvider(path), clitest.Options())
	ctx.Out = &strings.Builder{}
	t.Cleanup(func() { _ = ctx.Provider.Close() })
	return ctx, path
}

func TestInitCmd_Success(t *testing.T) {
	ctx, path := setupInitContext(t, "test.db")

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init command failed: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("database file was not created at %s", path)
	}
}

func TestInitCmd_Idempotent(t *testing.T) {
	for _, name := range []string{"test.db", "test.json"} {
		t.Run(name, func(t *testing.T) {
			ctx, _ := setupInitContext(t, name)
			if err := (&InitCmd{}).Run(ctx); err != nil {
				t.Fatalf("first init failed: %v", err)
			}
			if _, err := ctx.Dashboard().Goals.Add("Read"); err != nil {
				t.Fatal(err)
			}
			if err := (&InitCmd{}).Run(ctx); err != nil {
				t.Errorf("second init failed: %v", err)
			}
			ctx.Reset()
			if len(ctx.Dashboard().Goals.Snapshot()) != 1 {
				t.Error("init without --force must keep existing data")
			}
		})
	}
}

func TestInitCmd_ForceDeletesExisting(t *testing.T) {
	ctx, path := setupInitContext(t, "test.db")
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := ctx.Dashboard().Goals.Add("Read"); err != nil {
		t.Fatal(err)
	}

	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("force init failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("database should be recreated: %v", err)
	}
	if got := ctx.Dashboard().Goals.Snapshot(); len(got) != 0 {
		t.Errorf("goals after --force = %+v, want none", got)
	}
}

func TestInitCmd_ForceJSON(t *testing.T) {
	ctx, path := setupInitContext(t, "test.json")
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	_ = ctx.Dashboard().Theme.Toggle()

	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("force init failed: %v", err)
	}
	reopened := jsonfile.NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatal(err)
	}
	if keys, _ := reopened.Keys(); len(keys) != 0 {
		t.Errorf("keys after --force = %v", keys)
	}
}

func TestStatusCmd(t *testing.T) {
	ctx, out := clitest.NewContext(t)
	d := ctx.Dashboard()
	g, _ := d.Goals.Add("Read")
	_, _ = d.Goals.Add("Run")
	_ = d.Goals.Toggle(g.ID)
	_, _ = d.Ledger.Add("Salary", "1000")
	_, _ = d.Ledger.Add("Coffee", "-3.5")
	_ = d.Health.IncrementSteps(12000)

	if err := (&StatusCmd{Keys: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"1/2 done",
		"+996.50 (2 transactions)",
		"12,000",
		"🙂 good",
		"light (system)",
		"finances",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("status output missing %q:\n%s", want, out.String())
		}
	}
}

func TestThemeCmds(t *testing.T) {
	ctx, out := clitest.NewContext(t)

	if err := (&ThemeShowCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != "light" {
		t.Errorf("theme show = %q", out.String())
	}

	if err := (&ThemeToggleCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	clitest.Reload(ctx, out)
	if ctx.Dashboard().Theme.Current() != models.ThemeDark {
		t.Error("toggle should persist dark")
	}

	if err := (&ThemeSetCmd{Theme: "Light"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&ThemeSetCmd{Theme: "sepia"}).Run(ctx); err == nil {
		t.Error("invalid theme should be rejected")
	}

	store := ctx.Provider.(*sqlite.Store)
	raw, _ := store.Get("theme")
	if string(raw) != `"light"` {
		t.Errorf("stored theme = %s", raw)
	}
}
