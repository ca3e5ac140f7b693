package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/wricardo/mcp-training/fifteen/game/puzzle"
)

func createValidConfig(name string) *puzzle.GameConfig {
	config := puzzle.DefaultGameConfig()
	config.Name = name
	config.Description = "Test configuration"
	return config
}

func writeConfigFile(t *testing.T, dir, name string, config any) {
	t.Helper()
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".json"), data, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
}

func TestNewManager(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := NewManager(filepath.Join(t.TempDir(), "nope"))
		if err == nil {
			t.Fatal("Expected error for missing directory")
		}
	})

	t.Run("classic becomes default", func(t *testing.T) {
		dir := t.TempDir()
		writeConfigFile(t, dir, "alpha", createValidConfig("Alpha"))
		writeConfigFile(t, dir, "classic", createValidConfig("Classic"))

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if got := manager.GetDefault().Name; got != "Classic" {
			t.Errorf("Expected default Classic, got %s", got)
		}
	})

	t.Run("first valid config becomes default", func(t *testing.T) {
		dir := t.TempDir()
		writeConfigFile(t, dir, "zeta", createValidConfig("Zeta"))
		writeConfigFile(t, dir, "beta", createValidConfig("Beta"))

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if got := manager.GetDefault().Name; got != "Beta" {
			t.Errorf("Expected default Beta, got %s", got)
		}
	})

	t.Run("empty directory falls back to built-in", func(t *testing.T) {
		manager, err := NewManager(t.TempDir())
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager.GetDefault() == nil {
			t.Fatal("Expected a default config")
		}
		if err := puzzle.ValidateGameConfig(manager.GetDefault()); err != nil {
			t.Errorf("Built-in default should be valid: %v", err)
		}
	})
}

func TestManager_LoadConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "good", createValidConfig("Good"))
	writeConfigFile(t, dir, "bad", map[string]string{"name": "Bad"})
	if err := os.WriteFile(filepath.Join(dir, "garbled.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{"valid config", "good", nil},
		{"valid config with extension", "good.json", nil},
		{"missing config", "missing", ErrConfigNotFound},
		{"failing validation", "bad", ErrInvalidConfig},
		{"unparseable", "garbled", ErrInvalidConfig},
		{"path traversal", "../good", ErrConfigNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := manager.LoadConfig(tt.id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if config.Name != "Good" {
				t.Errorf("Expected Good, got %s", config.Name)
			}
		})
	}
}

func TestManager_ListConfigs(t *testing.T) {
	dir := t.TempDir()
	pinned := createValidConfig("Pinned")
	pinned.StartBoard = puzzle.SolvedBoard().String()
	pinned.ShufflePolicy = puzzle.ShuffleSolvable
	writeConfigFile(t, dir, "pinned", pinned)
	writeConfigFile(t, dir, "classic", createValidConfig("Classic"))
	writeConfigFile(t, dir, "invalid", map[string]string{"name": "x"})
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644); err != nil {
		t.Fatal(err)
	}

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	configs, err := manager.ListConfigs()
	if err != nil {
		t.Fatalf("ListConfigs failed: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("Expected 2 valid configs, got %d", len(configs))
	}
	if configs[0].ConfigID != "classic" || configs[1].ConfigID != "pinned" {
		t.Errorf("Expected sorted ids [classic pinned], got [%s %s]", configs[0].ConfigID, configs[1].ConfigID)
	}
	if !configs[1].PinnedStart {
		t.Error("Expected pinned config to report a pinned start")
	}
	if configs[1].ShufflePolicy != "solvable" {
		t.Errorf("Expected solvable policy, got %s", configs[1].ShufflePolicy)
	}
}

func TestManager_SaveConfig(t *testing.T) {
	dir := t.TempDir()
	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	if err := manager.SaveConfig("new", createValidConfig("New"), false); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "new.json")); err != nil {
		t.Fatalf("Expected file on disk: %v", err)
	}

	// A fresh manager reads it back from disk
	other, err := NewManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := other.LoadConfig("new")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Name != "New" {
		t.Errorf("Expected New, got %s", loaded.Name)
	}

	invalid := createValidConfig("Invalid")
	invalid.ShufflePolicy = "sorted"
	if err := manager.SaveConfig("invalid", invalid, false); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
	if err := manager.SaveConfig("../escape", createValidConfig("Escape"), false); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for bad id, got %v", err)
	}
}

func TestManager_SaveConfigKeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	if err := manager.SaveConfig("classic", createValidConfig("First"), false); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	err = manager.SaveConfig("classic.json", createValidConfig("Second"), false)
	if !errors.Is(err, ErrConfigExists) {
		t.Fatalf("Expected ErrConfigExists, got %v", err)
	}
	loaded, err := manager.LoadConfig("classic")
	if err != nil || loaded.Name != "First" {
		t.Fatalf("Expected the first config to survive, got %v (%v)", loaded, err)
	}

	if err := manager.SaveConfig("classic", createValidConfig("Third"), true); err != nil {
		t.Fatalf("SaveConfig with overwrite failed: %v", err)
	}
	fresh, err := NewManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	loaded, err = fresh.LoadConfig("classic")
	if err != nil || loaded.Name != "Third" {
		t.Fatalf("Expected the overwritten config on disk, got %v (%v)", loaded, err)
	}
}

func TestManager_SetDefaultAndRefresh(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "classic", createValidConfig("Classic"))
	writeConfigFile(t, dir, "other", createValidConfig("Other"))

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := manager.SetDefault("other"); err != nil {
		t.Fatalf("SetDefault failed: %v", err)
	}
	if manager.GetDefault().Name != "Other" {
		t.Errorf("Expected Other as default")
	}
	if err := manager.SetDefault("missing"); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Expected ErrConfigNotFound, got %v", err)
	}

	// Edit on disk, then refresh
	writeConfigFile(t, dir, "classic", createValidConfig("Classic v2"))
	manager.RefreshCache()
	if manager.GetDefault().Name != "Classic v2" {
		t.Errorf("Expected refreshed default, got %s", manager.GetDefault().Name)
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "classic", createValidConfig("Classic"))
	manager, err := NewManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := manager.LoadConfig("classic"); err != nil {
				t.Errorf("LoadConfig failed: %v", err)
			}
			manager.GetDefault()
		}()
	}
	wg.Wait()
}

func TestRepositoryConfigsAreValid(t *testing.T) {
	manager, err := NewManager(filepath.Join("..", "..", "configs"))
	if err != nil {
		t.Skipf("configs directory not available: %v", err)
	}

	configs, err := manager.ListConfigs()
	if err != nil {
		t.Fatal(err)
	}
	if len(configs) < 3 {
		t.Errorf("Expected at least 3 bundled configs, got %d", len(configs))
	}
}
