package viewer

import (
	"strings"
	"testing"

	"glint/hal"
	"glint/modules"
)

type testHAL struct {
	fb  *testFB
	kbd *testKeyboard
	log *testLogger
}

func newTestHAL() *testHAL {
	return &testHAL{
		fb:  newTestFB(64, 64),
		kbd: &testKeyboard{ch: make(chan hal.KeyEvent, 16)},
		log: &testLogger{},
	}
}

func (h *testHAL) Logger() hal.Logger   { return h.log }
func (h *testHAL) Display() hal.Display { return testDisplay{fb: h.fb} }
func (h *testHAL) Input() hal.Input     { return testInput{kbd: h.kbd} }

type testDisplay struct{ fb *testFB }

func (d testDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type testInput struct{ kbd *testKeyboard }

func (in testInput) Keyboard() hal.Keyboard { return in.kbd }

type testKeyboard struct{ ch chan hal.KeyEvent }

func (k *testKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type testLogger struct{ lines []string }

func (l *testLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *testLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func press(code hal.KeyCode) hal.KeyEvent { return hal.KeyEvent{Code: code, Press: true} }

func TestStepPresents(t *testing.T) {
	h := newTestHAL()
	app := New(h, nil)
	if err := app.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if h.fb.presented == 0 {
		t.Fatalf("frame not presented")
	}
}

func TestTabSwitchesSelection(t *testing.T) {
	h := newTestHAL()
	app := New(h, nil)
	if app.sel != 0 {
		t.Fatalf("initial selection: %d", app.sel)
	}
	h.kbd.ch <- press(hal.KeyTab)
	if err := app.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if app.sel != 1 {
		t.Fatalf("selection after tab: %d", app.sel)
	}
}

func TestScaleAndRotateKeepLengthRatio(t *testing.T) {
	h := newTestHAL()
	app := New(h, nil)
	before := app.a

	h.kbd.ch <- press(hal.KeyUp)
	if err := app.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if got, want := app.a, before.Scale(scaleStep); got != want {
		t.Fatalf("scale: got %v want %v", got, want)
	}

	// Rotation preserves length.
	lenBefore := app.a
	h.kbd.ch <- press(hal.KeyLeft)
	if err := app.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if app.a == lenBefore {
		t.Fatalf("rotate did nothing")
	}
}

func TestMixParamAndReset(t *testing.T) {
	h := newTestHAL()
	app := New(h, nil)

	h.kbd.ch <- hal.KeyEvent{Press: true, Rune: '+'}
	if err := app.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if app.mixT != 0.5+mixStep {
		t.Fatalf("mixT: got %v", app.mixT)
	}

	h.kbd.ch <- hal.KeyEvent{Press: true, Rune: 'z'}
	if err := app.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if app.mixT != 0.5 {
		t.Fatalf("reset mixT: got %v", app.mixT)
	}
}

func TestStatusLogging(t *testing.T) {
	h := newTestHAL()
	reg := modules.NewRegistry()
	if err := modules.RegisterBuiltins(reg); err != nil {
		t.Fatalf("builtins: %v", err)
	}
	app := New(h, reg)

	h.kbd.ch <- hal.KeyEvent{Press: true, Rune: 'p'}
	if err := app.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if len(h.log.lines) != 1 {
		t.Fatalf("log lines: %d", len(h.log.lines))
	}
	if !strings.Contains(h.log.lines[0], "a=(") {
		t.Fatalf("status line: %q", h.log.lines[0])
	}

	if got := app.headerText(); !strings.Contains(got, "vec2") {
		t.Fatalf("header: %q", got)
	}
}
