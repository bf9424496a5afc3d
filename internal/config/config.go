package config

import (
	"github.com/knadh/koanf/v2"
)

// Conf wraps a koanf instance with getters that fall back to a default value
// when a key is not set.
type Conf struct {
	*koanf.Koanf
}

// Bool returns the bool at path, or the first default if path is not set.
func (c *Conf) Bool(path string, defaultValues ...bool) bool {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.Bool(path)
}

// String returns the string at path, or the first default if path is not set.
func (c *Conf) String(path string, defaultValues ...string) string {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.String(path)
}

// Int returns the int at path, or the first default if path is not set.
func (c *Conf) Int(path string, defaultValues ...int) int {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.Int(path)
}
