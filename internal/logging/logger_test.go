package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chronos-tachyon/grin/internal/config"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

func newConfig(t *testing.T, value map[string]any) *config.Conf {
	t.Helper()
	k := koanf.New(".")
	conf := &config.Conf{Koanf: k}
	if err := conf.Load(confmap.Provider(value, "."), nil); err != nil {
		t.Fatal(err)
	}
	return conf
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(newConfig(t, map[string]any{"logger.level": "warn"}), &buf)
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected info to be filtered out: %s", out)
	}
	if !strings.Contains(out, `"message":"shown"`) || !strings.Contains(out, `"name":"grin"`) {
		t.Errorf("expected a JSON warn line: %s", out)
	}
}

func TestNewLogger_BadLevel(t *testing.T) {
	var buf bytes.Buffer
	if _, err := newLogger(newConfig(t, map[string]any{"logger.level": "loud"}), &buf); err == nil {
		t.Errorf("expected an error for an unknown level")
	}
}

func TestNewLogger_Prettier(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(newConfig(t, map[string]any{"logger.prettier": true}), &buf)
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	logger.Info().Msg("hello")
	if out := buf.String(); strings.HasPrefix(out, "{") || !strings.Contains(out, "hello") {
		t.Errorf("expected console output: %s", out)
	}
}
