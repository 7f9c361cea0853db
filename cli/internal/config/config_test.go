package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_Path(t *testing.T) {
	path, err := Path()
	if err != nil {
		t.Fatalf("Path() returned error: %v", err)
	}

	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		t.Fatalf("UserConfigDir() returned error: %v", err)
	}

	if filepath.Base(path) != fileName {
		t.Errorf("expected filename %s, got %s", fileName, filepath.Base(path))
	}
	if filepath.Dir(path) != filepath.Join(userConfigDir, dirName) {
		t.Errorf("expected path dir %s, got %s", filepath.Join(userConfigDir, dirName), filepath.Dir(path))
	}
}

func TestConfig_LoadAndSave(t *testing.T) {
	path, _ := Path()
	configDir := filepath.Dir(path)

	originalData, _ := os.ReadFile(path)
	defer func() {
		if originalData != nil {
			_ = os.MkdirAll(configDir, 0755)
			_ = os.WriteFile(path, originalData, 0600)
		} else {
			_ = os.Remove(path)
		}
	}()

	t.Run("returns default config when file does not exist", func(t *testing.T) {
		_ = os.Remove(path)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned error: %v", err)
		}
		if cfg.ServerURL != DefaultURL {
			t.Errorf("expected ServerURL %s, got %s", DefaultURL, cfg.ServerURL)
		}
		if cfg.HasToken() {
			t.Error("expected no token in default config")
		}
	})

	t.Run("round-trips through Save and Load", func(t *testing.T) {
		saved := &Config{
			ServerURL: "https://notes.example.com",
			Token:     "test-token-123",
		}
		if err := Save(saved); err != nil {
			t.Fatalf("Save() returned error: %v", err)
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned error: %v", err)
		}
		if cfg.ServerURL != saved.ServerURL {
			t.Errorf("expected ServerURL %s, got %s", saved.ServerURL, cfg.ServerURL)
		}
		if cfg.Token != saved.Token {
			t.Errorf("expected Token %s, got %s", saved.Token, cfg.Token)
		}
	})

	t.Run("sets restrictive file permissions", func(t *testing.T) {
		if err := Save(&Config{ServerURL: DefaultURL, Token: "perm-test"}); err != nil {
			t.Fatalf("Save() returned error: %v", err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("failed to stat config file: %v", err)
		}
		if info.Mode().Perm() != os.FileMode(filePerms) {
			t.Errorf("expected file permissions %o, got %o", filePerms, info.Mode().Perm())
		}
	})

	t.Run("uses default URL when server_url is empty", func(t *testing.T) {
		_ = os.MkdirAll(configDir, 0755)
		data := `{"server_url": "", "token": "test-token"}`
		if err := os.WriteFile(path, []byte(data), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned error: %v", err)
		}
		if cfg.ServerURL != DefaultURL {
			t.Errorf("expected ServerURL to default to %s, got %s", DefaultURL, cfg.ServerURL)
		}
	})

	t.Run("Clear removes the file and tolerates a missing one", func(t *testing.T) {
		if err := Save(&Config{ServerURL: DefaultURL, Token: "clear-test"}); err != nil {
			t.Fatalf("Save() returned error: %v", err)
		}
		if err := Clear(); err != nil {
			t.Fatalf("Clear() returned error: %v", err)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("expected config file to be deleted")
		}
		if err := Clear(); err != nil {
			t.Errorf("expected Clear() to return nil for missing file, got %v", err)
		}
	})
}

func TestConfig_HasToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"empty token", "", false},
		{"has token", "abc123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Token: tt.token}
			if got := cfg.HasToken(); got != tt.want {
				t.Errorf("Config.HasToken() = %v, want %v", got, tt.want)
			}
		})
	}
}
