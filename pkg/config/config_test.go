package config

import (
	"errors"
	"reflect"
	"testing"
)

func testConfig() *MapConfig {
	return &MapConfig{values: map[string]any{
		"app": map[string]any{
			"name":  "eventflow-demo",
			"debug": true,
			"port":  8080,
		},
		"log": map[string]any{
			"level": "trace",
			"json":  "false",
		},
	}}
}

func TestMapConfig_Has(t *testing.T) {
	cfg := testConfig()

	if !cfg.Has("app.name") {
		t.Error("expected app.name to exist")
	}
	if cfg.Has("app.missing") {
		t.Error("expected app.missing not to exist")
	}
	if cfg.Has("app.name.deeper") {
		t.Error("expected traversal through a scalar to fail")
	}
}

func TestMapConfig_GetString(t *testing.T) {
	cfg := testConfig()

	if got := cfg.GetString("app.name"); got != "eventflow-demo" {
		t.Errorf("unexpected value: %q", got)
	}
	if got := cfg.GetString("app.port"); got != "8080" {
		t.Errorf("expected stringified int, got %q", got)
	}
	if got := cfg.GetString("missing", "fallback"); got != "fallback" {
		t.Errorf("expected default, got %q", got)
	}
}

func TestMapConfig_GetInt(t *testing.T) {
	cfg := testConfig()

	if got := cfg.GetInt("app.port"); got != 8080 {
		t.Errorf("unexpected value: %d", got)
	}
	if got := cfg.GetInt("app.name", 42); got != 42 {
		t.Errorf("expected default for non-numeric value, got %d", got)
	}
	if got := cfg.GetInt("missing", 7); got != 7 {
		t.Errorf("expected default, got %d", got)
	}
}

func TestMapConfig_GetBool(t *testing.T) {
	cfg := testConfig()

	if !cfg.GetBool("app.debug") {
		t.Error("expected app.debug to be true")
	}
	if cfg.GetBool("log.json") {
		t.Error("expected string \"false\" to read as false")
	}
	if !cfg.GetBool("missing", true) {
		t.Error("expected default")
	}
}

func TestMapConfig_GetSub(t *testing.T) {
	cfg := testConfig()

	sub, ok := cfg.GetSub("log")
	if !ok {
		t.Fatal("expected log subsection")
	}
	if got := sub.GetString("level"); got != "trace" {
		t.Errorf("unexpected value: %q", got)
	}

	if _, ok = cfg.GetSub("app.name"); ok {
		t.Error("expected no subsection for a scalar")
	}
}

func TestMapConfig_AllIsDetached(t *testing.T) {
	cfg := testConfig()

	all := cfg.All()
	delete(all, "app")

	if !cfg.Has("app.name") {
		t.Error("expected registry to survive mutation of All result")
	}
}

func TestNewMapConfig_NilValues(t *testing.T) {
	cfg := NewMapConfig(nil)

	if cfg.Has("anything") {
		t.Error("expected empty config")
	}
	if got := cfg.All(); !reflect.DeepEqual(got, map[string]any{}) {
		t.Errorf("expected empty map, got %v", got)
	}
}

type stubLoader struct {
	values map[string]any
	err    error
}

func (s *stubLoader) Load() (map[string]any, error) {
	return s.values, s.err
}

func TestNew_FirstLoaderWins(t *testing.T) {
	failing := &stubLoader{err: ErrNoConfigSource}
	working := &stubLoader{values: map[string]any{"app": map[string]any{"name": "demo"}}}

	cfg, err := New(failing, working)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := cfg.GetString("app.name"); got != "demo" {
		t.Errorf("unexpected value: %q", got)
	}
}

func TestNew_AllLoadersFail(t *testing.T) {
	_, err := New(&stubLoader{err: ErrNoConfigSource})
	if !errors.Is(err, ErrNoConfigSource) {
		t.Errorf("expected ErrNoConfigSource, got %v", err)
	}
}
