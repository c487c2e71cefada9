package app

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

type nopCallbacks struct{}

func (nopCallbacks) Init(*App) error    { return nil }
func (nopCallbacks) Frame(*App) error   { return nil }
func (nopCallbacks) Cleanup(*App)       {}
func (nopCallbacks) Event(*App, *Event) {}

func TestMainWithFlagsAndConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "sample.toml")
	if err := os.WriteFile(cfg, []byte("width = 1000\nsample_count = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvHeight, "700")
	defer SetVerbose(false)

	var got Desc
	run := func(d Desc, _ Callbacks) error {
		got = d
		return nil
	}
	var stderr bytes.Buffer
	args := []string{"-config", cfg, "-env", filepath.Join(dir, "none.env"), "-frames", "3", "-v"}
	code := mainWith(args, &stderr, Desc{Width: 640, Height: 480, WindowTitle: "t"}, nopCallbacks{}, run)
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr.String())
	}
	if got.Width != 1000 || got.Height != 700 || got.SampleCount != 2 || got.MaxFrames != 3 {
		t.Errorf("desc = %+v", got)
	}
	if appLogLevel.Level() != slog.LevelDebug {
		t.Error("-v did not enable debug logging")
	}
}

func TestMainWithExitCodes(t *testing.T) {
	var stderr bytes.Buffer
	ok := func(Desc, Callbacks) error { return nil }
	if code := mainWith([]string{"-bogus"}, &stderr, Desc{}, nopCallbacks{}, ok); code != 2 {
		t.Errorf("bad flag: exit %d, want 2", code)
	}
	missing := filepath.Join(t.TempDir(), "missing.toml")
	if code := mainWith([]string{"-config", missing}, &stderr, Desc{}, nopCallbacks{}, ok); code != 1 {
		t.Errorf("missing config: exit %d, want 1", code)
	}
	fail := func(Desc, Callbacks) error { return errors.New("no display") }
	if code := mainWith(nil, &stderr, Desc{}, nopCallbacks{}, fail); code != 1 {
		t.Errorf("run error: exit %d, want 1", code)
	}
}
