// Package store persists the client's only durable state: which server to
// talk to and the session established by login. Everything else the client
// shows is scratch state refetched on demand.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	// ServerURL is the rotation service base URL (no /api suffix).
	ServerURL string `json:"serverUrl,omitempty"`

	// Session is the cookie established by login, as "name=value".
	Session string `json:"session,omitempty"`

	// Username is the display name reported at login. Presentation only:
	// any authorization decision is the service's, re-validated per request.
	Username string `json:"username,omitempty"`
}

func (c *Config) LoggedIn() bool {
	return c != nil && strings.TrimSpace(c.Session) != ""
}

// ClearSession drops the stored session without touching the server URL.
func (c *Config) ClearSession() {
	c.Session = ""
	c.Username = ""
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.rota).
	if v := strings.TrimSpace(os.Getenv("ROTA_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".rota"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func LoadConfig() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

func SaveConfig(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	// The file holds the session cookie, so keep it private. A unique temp
	// file + rename avoids corruption when CLI and TUI write concurrently.
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}
