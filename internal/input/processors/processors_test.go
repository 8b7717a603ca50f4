package processors_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/timeruler/internal/input"
	"github.com/ja-he/timeruler/internal/input/processors"
)

func TestModalInputProcessor(t *testing.T) {
	x := input.Key{Key: tcell.KeyRune, Ch: 'x'}
	y := input.Key{Key: tcell.KeyRune, Ch: 'y'}
	z := input.Key{Key: tcell.KeyRune, Ch: 'z'}

	t.Run("captures per active processor", func(t *testing.T) {
		base := fakeProcessor{}
		m := processors.NewModalInputProcessor(&base)
		if m.CapturesInput() {
			t.Error("captures input initially")
		}
		base.captures = true
		if !m.CapturesInput() {
			t.Error("does not capture input although base does")
		}
		m.ApplyModalOverlay(&fakeProcessor{})
		if m.CapturesInput() {
			t.Error("captures input although overlay does not")
		}
	})

	t.Run("overlay stack", func(t *testing.T) {
		a := fakeProcessor{accepts: map[input.Key]bool{x: true}}
		b := fakeProcessor{accepts: map[input.Key]bool{y: true}}
		c := fakeProcessor{accepts: map[input.Key]bool{z: true}}
		m := processors.NewModalInputProcessor(&a)

		expect := func(name string, expected [3]bool) {
			t.Helper()
			actual := [3]bool{m.ProcessInput(x), m.ProcessInput(y), m.ProcessInput(z)}
			if actual != expected {
				t.Errorf("%s: expected %v, got %v", name, expected, actual)
			}
		}

		expect("base", [3]bool{true, false, false})

		if idx := m.ApplyModalOverlay(&b); idx != 0 {
			t.Error("first overlay has index", idx)
		}
		if idx := m.ApplyModalOverlay(&c); idx != 1 {
			t.Error("second overlay has index", idx)
		}
		expect("c on top", [3]bool{false, false, true})

		if err := m.PopModalOverlay(); err != nil {
			t.Error(err)
		}
		expect("b on top", [3]bool{false, true, false})
		if err := m.PopModalOverlay(); err != nil {
			t.Error(err)
		}
		expect("base again", [3]bool{true, false, false})
		if err := m.PopModalOverlay(); err == nil {
			t.Error("popping empty stack did not error")
		}

		m.ApplyModalOverlay(&b)
		m.ApplyModalOverlay(&c)
		m.ApplyModalOverlay(&a)
		m.PopModalOverlays(1000)
		expect("no-op pop", [3]bool{true, false, false})
		m.PopModalOverlays(1)
		expect("b at 0", [3]bool{false, true, false})
		m.PopModalOverlays(0)
		expect("all popped", [3]bool{true, false, false})
	})

	t.Run("help of active processor", func(t *testing.T) {
		m := processors.NewModalInputProcessor(&fakeProcessor{help: input.Help{"q": "quit"}})
		if h := m.GetHelp(); len(h) != 1 || h["q"] != "quit" {
			t.Error("unexpected base help:", h)
		}
		m.ApplyModalOverlay(&fakeProcessor{help: input.Help{"<esc>": "close", "?": "close"}})
		if h := m.GetHelp(); len(h) != 2 || h["<esc>"] != "close" {
			t.Error("unexpected overlay help:", h)
		}
	})
}

type fakeProcessor struct {
	captures bool
	accepts  map[input.Key]bool
	help     input.Help
}

func (f *fakeProcessor) CapturesInput() bool           { return f.captures }
func (f *fakeProcessor) ProcessInput(k input.Key) bool { return f.accepts[k] }
func (f *fakeProcessor) GetHelp() input.Help           { return f.help }
