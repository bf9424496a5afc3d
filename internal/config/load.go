package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// EnvPrefix marks the environment variables read by New.
const EnvPrefix = "GRIN_"

// Path is the optional YAML file layered over the defaults.
type Path string

var defaults = map[string]any{
	"logger.level":       "info",
	"logger.prettier":    false,
	"logger.time-format": time.RFC3339,
	"io.buffer-size":     64 * 1024,
	"metrics.prefix":     "grin_",
	"metrics.textfile":   "",
}

// New loads the defaults, then the YAML file at path (if any), then GRIN_*
// environment variables, each layer overriding the previous one.
func New(path Path) (*Conf, error) {
	k := koanf.New(".")
	conf := &Conf{Koanf: k}

	if err := conf.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, "loading default config")
	}

	if path != "" {
		if _, err := os.Stat(string(path)); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
		if err := conf.Load(file.Provider(string(path)), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "loading config %s", path)
		}
	}

	// GRIN_LOGGER_LEVEL -> logger.level
	if err := conf.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(key, "_", ".", -1)
	}), nil); err != nil {
		return nil, errors.Wrap(err, "loading environment")
	}

	return conf, nil
}
