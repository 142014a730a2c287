package term

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"life-torus/internal/config"
	"life-torus/internal/driver"
	"life-torus/pkg/life"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)
	return s
}

func runeAt(cells []tcell.SimCell, w, x, y int) rune {
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestPresenterDrawsGlyphs(t *testing.T) {
	s := newSimScreen(t, 6, 4)
	defer s.Fini()

	g, err := life.Parse(`
#...
.##.
...#
`)
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Glyph = "@"
	if err := NewPresenter(s, cfg).Render(g); err != nil {
		t.Fatal(err)
	}

	cells, w, h := s.GetContents()
	if w != 6 || h != 4 {
		t.Fatalf("screen size %dx%d", w, h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := ' '
			if x < 4 && y < 3 && g.Alive(x, y) {
				want = '@'
			}
			if got := runeAt(cells, w, x, y); got != want {
				t.Fatalf("(%d,%d) = %q, expected %q", x, y, got, want)
			}
		}
	}
}

func TestPresenterClipsToScreen(t *testing.T) {
	s := newSimScreen(t, 2, 2)
	defer s.Fini()

	g, err := life.New(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Randomize(1, nil); err != nil {
		t.Fatal(err)
	}
	if err := NewPresenter(s, config.Default()).Render(g); err != nil {
		t.Fatal(err)
	}
	cells, w, h := s.GetContents()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if runeAt(cells, w, x, y) != '█' {
				t.Fatalf("(%d,%d) not drawn", x, y)
			}
		}
	}
}

func TestKeysQuitOnKeyPress(t *testing.T) {
	for _, key := range []struct {
		k tcell.Key
		r rune
	}{
		{tcell.KeyRune, 'q'},
		{tcell.KeyRune, 'Q'},
		{tcell.KeyEscape, 0},
		{tcell.KeyCtrlC, 0},
	} {
		s := newSimScreen(t, 4, 4)
		keys := NewKeys(context.Background())
		done := make(chan struct{})
		go func() {
			keys.Pump(s)
			close(done)
		}()

		s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
		s.InjectKey(key.k, key.r, tcell.ModNone)
		deadline := time.Now().Add(2 * time.Second)
		for !keys.Terminated() {
			if time.Now().After(deadline) {
				t.Fatalf("key %v/%q did not terminate", key.k, key.r)
			}
			time.Sleep(time.Millisecond)
		}

		s.Fini()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("pump did not exit after Fini")
		}
	}
}

func TestKeysFollowContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	keys := NewKeys(ctx)
	if keys.Terminated() {
		t.Fatal("terminated before cancel")
	}
	cancel()
	if !keys.Terminated() {
		t.Fatal("cancel did not terminate")
	}
}

func newTestBackend(t *testing.T, cfg config.Config) *Backend {
	t.Helper()
	b := New(cfg)
	b.log = log.New(io.Discard, "", 0)
	b.newScreen = func() (tcell.Screen, error) {
		return tcell.NewSimulationScreen("UTF-8"), nil
	}
	return b
}

func TestBackendRunsToLimit(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 5, 5
	cfg.Interval = 0
	cfg.Generations = 4

	g, err := life.Parse(`
.....
.....
.###.
.....
.....
`)
	if err != nil {
		t.Fatal(err)
	}
	if err := newTestBackend(t, cfg).Run(context.Background(), g); err != nil {
		t.Fatal(err)
	}
	if g.Generation() != 4 {
		t.Fatalf("generation = %d, expected 4", g.Generation())
	}
}

func TestBackendStopsOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 3, 3
	cfg.Interval = 0

	g, err := life.New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := newTestBackend(t, cfg).Run(ctx, g); err != nil {
		t.Fatal(err)
	}
	// The loop polls after the first advance.
	if g.Generation() != 1 {
		t.Fatalf("generation = %d, expected 1", g.Generation())
	}
}

func TestRegistered(t *testing.T) {
	if _, ok := driver.Lookup("term"); !ok {
		t.Fatal("term backend not registered")
	}
}
