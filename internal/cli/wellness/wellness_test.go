package wellness

import (
	"math"
	"strings"
	"testing"

	"github.com/julianstephens/dashlit/internal/cli/clitest"
	"github.com/julianstephens/dashlit/internal/models"
)

func TestHealthCmds(t *testing.T) {
	ctx, out := clitest.NewContext(t)

	if err := (&WaterCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&WaterCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&WaterCmd{Down: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&StepsCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&StepsCmd{Delta: 2500}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&StepsCmd{Delta: 10000, Down: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&SleepCmd{Hours: 6.5}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	clitest.Reload(ctx, out)
	if err := (&HealthShowCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	want := "Water: 1 cups\nSteps: 0\nSleep: 6.5 h\nMood:  🙂 good\n"
	if out.String() != want {
		t.Errorf("show output =\n%q\nwant\n%q", out.String(), want)
	}
}

func TestSleepRange(t *testing.T) {
	ctx, _ := clitest.NewContext(t)
	for _, h := range []float64{-1, 12.5, math.NaN(), math.Inf(1)} {
		if err := (&SleepCmd{Hours: h}).Run(ctx); err == nil {
			t.Errorf("sleep %v should be rejected", h)
		}
	}
	if got := ctx.Dashboard().Health.Metrics().Sleep; got != 8 {
		t.Errorf("rejected values changed sleep to %v", got)
	}
	for _, h := range []float64{0, 12} {
		if err := (&SleepCmd{Hours: h}).Run(ctx); err != nil {
			t.Errorf("sleep %v: %v", h, err)
		}
	}
}

func TestMoodCmds(t *testing.T) {
	ctx, out := clitest.NewContext(t)

	for _, in := range []string{"great", "5", "😄"} {
		if err := (&MoodSetCmd{Mood: in}).Run(ctx); err != nil {
			t.Errorf("mood set %q: %v", in, err)
		}
	}
	if err := (&MoodSetCmd{Mood: "ecstatic"}).Run(ctx); err == nil {
		t.Error("unknown mood should be rejected")
	}
	if err := (&MoodNoteCmd{Text: []string{"long", "walk"}}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	clitest.Reload(ctx, out)
	mood := ctx.Dashboard().Health.Mood()
	if mood.Value != models.MoodGreat || mood.Note != "long walk" {
		t.Errorf("Mood() = %+v", mood)
	}

	if err := (&MoodNoteCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Cleared") {
		t.Errorf("output = %q", out.String())
	}
}
