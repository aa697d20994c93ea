package config

import (
	"fmt"
	"strings"
)

// Validate ensures every required path is present. The error lists all
// missing fields, not just the first.
func (c *Config) Validate() error {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"TokenBasePath", c.TokenBasePath},
		{"DartFolderPath", c.DartFolderPath},
		{"GloggPath", c.GloggPath},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrIncomplete, strings.Join(missing, ", "))
	}
	return nil
}
