package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Http.Port != 5005 {
		t.Errorf("expected port 5005, got %d", config.Http.Port)
	}
	if config.ML.ModelType != "logistic_regression" || config.ML.ModelPath != "model.json" {
		t.Errorf("unexpected model defaults: %+v", config.ML)
	}
	if config.ML.CacheSize != 0 {
		t.Errorf("expected cache disabled by default, got %d", config.ML.CacheSize)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
http:
  port: 6006
ml:
  model_type: decision_tree
  model_path: /srv/models/tree.json
  cache_size: 512
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	config, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Http.Port != 6006 {
		t.Errorf("expected port 6006, got %d", config.Http.Port)
	}
	if config.Http.Timeout != 30*time.Second {
		t.Errorf("expected default timeout, got %v", config.Http.Timeout)
	}
	if config.ML.ModelType != "decision_tree" || config.ML.CacheSize != 512 {
		t.Errorf("unexpected ml section: %+v", config.ML)
	}
	if config.Log.Level != "debug" || config.Log.MaxBackups != 3 {
		t.Errorf("unexpected log section: %+v", config.Log)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	config, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Http.Port != 5005 {
		t.Errorf("expected port 5005, got %d", config.Http.Port)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":       "http: [",
		"bad port":       "http:\n  port: 70000\n",
		"negative cache": "ml:\n  cache_size: -1\n",
		"empty model":    "ml:\n  model_path: \"\"\n",
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
