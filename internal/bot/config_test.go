package bot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Remphph/Track-bot/internal/config"
)

func validAppConfig() *Config {
	return &Config{
		Config: config.Config{
			Telegram: config.TelegramConfig{
				Token:   "123:abc",
				RunMode: "longpoll",
			},
		},
		Dispatch: DispatchConfig{ManagerGroupID: -1001234567890},
	}
}

func TestLoadFile(t *testing.T) {
	data := `
telegram:
  token: "123:abc"
  run_mode: longpoll
dispatch:
  manager_group_id: -1001234567890
session:
  ttl_minutes: 5
labels:
  settings: "Options"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Telegram.Token != "123:abc" {
		t.Fatalf("token = %q", cfg.Telegram.Token)
	}
	if cfg.Dispatch.ManagerGroupID != -1001234567890 {
		t.Fatalf("manager group = %d", cfg.Dispatch.ManagerGroupID)
	}
	if cfg.Session.TTLMinutes != 5 {
		t.Fatalf("ttl = %d", cfg.Session.TTLMinutes)
	}
	if cfg.Labels.Settings != "Options" || cfg.Labels.Back != "Back" {
		t.Fatalf("labels = %+v", cfg.Labels)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := validAppConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}

	if cfg.Session.TTLMinutes != defaultSessionTTLMinutes {
		t.Fatalf("ttl = %d", cfg.Session.TTLMinutes)
	}
	if len(cfg.Labels.TaskTypes) != 7 {
		t.Fatalf("task types = %v", cfg.Labels.TaskTypes)
	}
	if cfg.Labels.SendData != "Send Data" || cfg.Labels.Back != "Back" {
		t.Fatalf("labels = %+v", cfg.Labels)
	}
}

func TestNormalizeRequiresManagerGroup(t *testing.T) {
	cfg := validAppConfig()
	cfg.Dispatch.ManagerGroupID = 0
	err := Normalize(cfg)
	if err == nil || !strings.Contains(err.Error(), "manager_group_id") {
		t.Fatalf("err = %v", err)
	}
}

func TestNormalizeRejectsBadSession(t *testing.T) {
	cfg := validAppConfig()
	cfg.Session.TTLMinutes = -5
	if err := Normalize(cfg); err == nil {
		t.Fatal("negative ttl accepted")
	}
}

func TestNormalizeKeepsCustomLabels(t *testing.T) {
	cfg := validAppConfig()
	cfg.Labels.TaskTypes = []string{"Refuel"}
	cfg.Labels.Settings = "Options"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(cfg.Labels.TaskTypes) != 1 || cfg.Labels.TaskTypes[0] != "Refuel" {
		t.Fatalf("task types = %v", cfg.Labels.TaskTypes)
	}
	if cfg.Labels.Settings != "Options" {
		t.Fatalf("settings label = %q", cfg.Labels.Settings)
	}
	// untouched labels still default
	if cfg.Labels.EditProfile != "Edit Profile" {
		t.Fatalf("edit label = %q", cfg.Labels.EditProfile)
	}
}
