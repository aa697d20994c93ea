package config

import (
	"fmt"
	"strings"
)

func (c *Config) trim() {
	c.TokenBasePath = strings.TrimSpace(c.TokenBasePath)
	c.DartFolderPath = strings.TrimSpace(c.DartFolderPath)
	c.GloggPath = strings.TrimSpace(c.GloggPath)
}

func (c *Config) normalize() error {
	var err error
	if c.TokenBasePath, err = expandPath(c.TokenBasePath); err != nil {
		return fmt.Errorf("TokenBasePath: %w", err)
	}
	if c.DartFolderPath, err = expandPath(c.DartFolderPath); err != nil {
		return fmt.Errorf("DartFolderPath: %w", err)
	}
	// A bare viewer name is looked up on PATH at launch time, so only
	// expand values that look like paths.
	if strings.ContainsAny(c.GloggPath, `/\~`) {
		if c.GloggPath, err = expandPath(c.GloggPath); err != nil {
			return fmt.Errorf("GloggPath: %w", err)
		}
	}
	return nil
}
