package main

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Flone-dnb/system-wide-key-state/config"
	"github.com/Flone-dnb/system-wide-key-state/keycode"
	"github.com/Flone-dnb/system-wide-key-state/platform"
	"github.com/Flone-dnb/system-wide-key-state/storage"
)

func writeConfig(t *testing.T, storageDir string) string {
	t.Helper()

	cfg := config.Default()
	cfg.Log.Level = "error"
	cfg.Storage.Dir = storageDir
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.Save(path, cfg); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd(new(slog.LevelVar))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNamesCommand(t *testing.T) {
	out, err := run(t, "--config", writeConfig(t, ""), "names")
	if err != nil {
		t.Fatalf("names failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(keycode.All())+1 {
		t.Fatalf("Expected %d lines, got %d", len(keycode.All())+1, len(lines))
	}
	if !strings.HasPrefix(lines[1], "Back Space") {
		t.Errorf("Expected Back Space first, got %q", lines[1])
	}
	if platform.Supported && strings.Contains(out, " -\n") {
		t.Error("Expected every key to have a native code")
	}
}

func TestQueryRejectsUnknownKey(t *testing.T) {
	_, err := run(t, "--config", writeConfig(t, ""), "query", "Hyper")
	if err == nil {
		t.Fatal("Expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "unknown key") {
		t.Errorf("Unexpected error %v", err)
	}
}

func TestHistoryAndStatsCommands(t *testing.T) {
	dir := t.TempDir()

	db, err := storage.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	readings := []platform.Reading{
		{Key: keycode.Esc, Pressed: true, Time: time.Now()},
		{Key: keycode.KeyT, Pressed: false, Time: time.Now()},
	}
	if err := db.SaveSamples(samplesFromReadings(readings, "cli")); err != nil {
		t.Fatal(err)
	}
	db.Close()

	path := writeConfig(t, dir)

	out, err := run(t, "--config", path, "history", "--key", "esc")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.Contains(lines[1], "Esc") {
		t.Errorf("Unexpected history output:\n%s", out)
	}

	out, err = run(t, "--config", path, "stats", "--days", "1")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if !strings.Contains(out, "2 samples, 1 pressed, 2 keys") {
		t.Errorf("Unexpected stats output:\n%s", out)
	}
}

func TestResolveKeysFromConfig(t *testing.T) {
	a := &app{cfg: config.Default()}
	a.cfg.Query.Keys = []string{"Ctrl", "f1"}

	keys, err := a.resolveKeys(nil)
	if err != nil {
		t.Fatalf("resolveKeys failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != keycode.Ctrl || keys[1] != keycode.F1 {
		t.Errorf("Unexpected keys %v", keys)
	}

	keys, err = a.resolveKeys([]string{"Space"})
	if err != nil {
		t.Fatalf("resolveKeys failed: %v", err)
	}
	if len(keys) != 1 || keys[0] != keycode.Space {
		t.Errorf("Unexpected keys %v", keys)
	}
}

func TestPrintReadings(t *testing.T) {
	var buf bytes.Buffer
	printReadings(&buf, []platform.Reading{
		{Key: keycode.Shift, Pressed: true},
		{Key: keycode.ArrowLeft},
	})

	want := "Shift       pressed\nArrow Left  released\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestSamplesFromReadings(t *testing.T) {
	now := time.Now()
	samples := samplesFromReadings([]platform.Reading{{Key: keycode.Esc, Pressed: true, Time: now}}, "cli")

	if len(samples) != 1 {
		t.Fatalf("Expected 1 sample, got %d", len(samples))
	}
	s := samples[0]
	if s.KeyName != "Esc" || !s.Pressed || s.Source != "cli" || !s.Timestamp.Equal(now) {
		t.Errorf("Unexpected sample %+v", s)
	}
	if code, ok := platform.NativeCode(keycode.Esc); ok && s.NativeCode != code {
		t.Errorf("Expected native code 0x%x, got 0x%x", code, s.NativeCode)
	}
}

func TestStatsRejectsNegativeDays(t *testing.T) {
	dir := t.TempDir()

	db, err := storage.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	readings := []platform.Reading{{Key: keycode.Esc, Pressed: true, Time: time.Now()}}
	if err := db.SaveSamples(samplesFromReadings(readings, "cli")); err != nil {
		t.Fatal(err)
	}
	db.Close()

	_, err = run(t, "--config", writeConfig(t, dir), "stats", "--days", "-1", "--prune")
	if err == nil {
		t.Fatal("Expected error for negative --days")
	}

	db, err = storage.Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	count, err := db.CountSamples()
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("Expected samples to survive, got %d", count)
	}
}

func TestServeRequiresWebEnabled(t *testing.T) {
	_, err := run(t, "--config", writeConfig(t, ""), "serve")
	if !errors.Is(err, errWebDisabled) {
		t.Errorf("Expected errWebDisabled, got %v", err)
	}
}

func TestLoadConfigResolvesDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Setenv("AppData", home)

	a := &app{logLevel: new(slog.LevelVar)}
	if err := a.loadConfig(); err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	want, err := config.Path()
	if err != nil {
		t.Fatal(err)
	}
	if a.configPath != want {
		t.Errorf("Expected config path %s, got %q", want, a.configPath)
	}
	if !strings.HasPrefix(a.configPath, home) {
		t.Errorf("Expected config path under %s, got %s", home, a.configPath)
	}
}
