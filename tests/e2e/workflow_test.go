package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestEndToEndWorkflow(t *testing.T) {
	// Allow overriding bin dir via env var, default to ../../bin (relative to tests/e2e)
	binDir := os.Getenv("DASHLIT_BIN_DIR")
	if binDir == "" {
		binDir = filepath.Join("..", "..", "bin")
	}
	binDir, _ = filepath.Abs(binDir)
	cliPath := filepath.Join(binDir, "dashlit")
	if _, err := os.Stat(cliPath); os.IsNotExist(err) {
		t.Skipf("CLI binary not found at %s. Build it first with: go build -o bin/dashlit ./cmd/dashlit", cliPath)
	}

	tempDir := t.TempDir()
	for _, backend := range []string{"dashlit.db", "dashlit.json"} {
		t.Run(backend, func(t *testing.T) {
			env := cleanEnv(tempDir, filepath.Join(tempDir, backend))

			out := runCmd(t, cliPath, env, "init")
			if !strings.Contains(out, "Initialized dashlit storage") {
				t.Errorf("init output = %q", out)
			}

			runCmd(t, cliPath, env, "goal", "add", "Stretch")
			runCmd(t, cliPath, env, "goal", "add", "Water", "the", "plants")
			runCmd(t, cliPath, env, "goal", "toggle", "1")
			runCmd(t, cliPath, env, "note", "set", "pick", "up", "parcel")
			runCmd(t, cliPath, env, "finance", "add", "Salary", "2500")
			runCmd(t, cliPath, env, "finance", "add", "--expense", "Groceries", "54.20")
			runCmd(t, cliPath, env, "health", "water")
			runCmd(t, cliPath, env, "health", "steps", "4000")
			runCmd(t, cliPath, env, "health", "sleep", "7.5")
			runCmd(t, cliPath, env, "mood", "set", "great")
			runCmd(t, cliPath, env, "theme", "set", "dark")

			status := runCmd(t, cliPath, env, "status")
			for _, want := range []string{
				"Goals:    1/2 done",
				"Note:     14 characters",
				"Balance:  +2445.80 (2 transactions)",
				"Water:    1 cups",
				"Steps:    4,000",
				"Sleep:    7.5 h",
				"great",
				"Theme:    dark (saved)",
			} {
				if !strings.Contains(status, want) {
					t.Errorf("status missing %q:\n%s", want, status)
				}
			}

			list := runCmd(t, cliPath, env, "goal", "list")
			if !strings.Contains(list, "[x] Water the plants") {
				t.Errorf("goal list = %q", list)
			}

			// a rejected command must not touch stored state
			cmd := exec.Command(cliPath, "health", "sleep", "13")
			cmd.Env = env
			if out, err := cmd.CombinedOutput(); err == nil {
				t.Errorf("sleep 13 should fail, got: %s", out)
			}
			if out := runCmd(t, cliPath, env, "health"); !strings.Contains(out, "Sleep: 7.5 h") {
				t.Errorf("health output = %q", out)
			}
		})
	}
}

func cleanEnv(home, config string) []string {
	var env []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "HOME=") || strings.HasPrefix(e, "DASHLIT_") {
			continue
		}
		env = append(env, e)
	}
	return append(env,
		fmt.Sprintf("HOME=%s", home),
		fmt.Sprintf("DASHLIT_CONFIG=%s", config),
		"DASHLIT_THEME_FALLBACK=light",
	)
}

func runCmd(t *testing.T, path string, env []string, args ...string) string {
	t.Helper()
	cmd := exec.Command(path, args...)
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Command %s %v failed: %v\nOutput: %s", path, args, err, out)
	}
	return string(out)
}
