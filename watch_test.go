package vapesort

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigWatcherPollWithoutChanges(t *testing.T) {
	path := writeConfig(t, "fall_speed: 1\n")
	cw, err := WatchConfig(path)
	if err != nil {
		t.Fatalf("WatchConfig: %v", err)
	}
	defer cw.Close()

	cfg, err := cw.Poll()
	if err != nil || cfg != nil {
		t.Fatalf("Poll = %v, %v; want nothing", cfg, err)
	}
}

func TestConfigWatcherReloadsOnReplace(t *testing.T) {
	path := writeConfig(t, "fall_speed: 1\n")
	cw, err := WatchConfig(path)
	if err != nil {
		t.Fatalf("WatchConfig: %v", err)
	}
	defer cw.Close()

	// Replace by rename so the reload never sees a half-written file.
	tmp := filepath.Join(filepath.Dir(path), "config.yaml.tmp")
	if err := os.WriteFile(tmp, []byte("fall_speed: 3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("rename: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		cfg, err := cw.Poll()
		if err != nil {
			t.Fatalf("Poll: %v", err)
		}
		if cfg != nil {
			if cfg.FallSpeed != 3 {
				t.Fatalf("fall speed = %v, want 3", cfg.FallSpeed)
			}
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("no reload observed")
}

func replaceConfig(t *testing.T, path, body string) {
	t.Helper()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("rename: %v", err)
	}
}

func TestConfigWatcherKeepsLastOfQuickWrites(t *testing.T) {
	path := writeConfig(t, "fall_speed: 1\n")
	cw, err := WatchConfig(path)
	if err != nil {
		t.Fatalf("WatchConfig: %v", err)
	}
	defer cw.Close()

	replaceConfig(t, path, "fall_speed: 2\n")
	replaceConfig(t, path, "fall_speed: 4\n")

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		cfg, err := cw.Poll()
		if err != nil {
			t.Fatalf("Poll: %v", err)
		}
		if cfg != nil && cfg.FallSpeed == 4 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("last write never reloaded")
}

func TestConfigWatcherErrorDoesNotDropChange(t *testing.T) {
	path := writeConfig(t, "fall_speed: 3\n")
	cw, err := WatchConfig(path)
	if err != nil {
		t.Fatalf("WatchConfig: %v", err)
	}
	defer cw.Close()

	cw.Events <- cw.path
	cw.Errors <- errors.New("event queue overflow")

	cfg, err := cw.Poll()
	if err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if cfg == nil || cfg.FallSpeed != 3 {
		t.Fatalf("change lost: %+v", cfg)
	}
}

func TestConfigWatcherIgnoresOtherFiles(t *testing.T) {
	path := writeConfig(t, "fall_speed: 1\n")
	cw, err := WatchConfig(path)
	if err != nil {
		t.Fatalf("WatchConfig: %v", err)
	}
	defer cw.Close()

	other := filepath.Join(filepath.Dir(path), "notes.txt")
	if err := os.WriteFile(other, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	time.Sleep(200 * time.Millisecond)
	if cfg, err := cw.Poll(); err != nil || cfg != nil {
		t.Fatalf("Poll = %v, %v; want nothing", cfg, err)
	}
}

func TestConfigWatcherCloseTwice(t *testing.T) {
	path := writeConfig(t, "fall_speed: 1\n")
	cw, err := WatchConfig(path)
	if err != nil {
		t.Fatalf("WatchConfig: %v", err)
	}
	if err := cw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := cw.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
