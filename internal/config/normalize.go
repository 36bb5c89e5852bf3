package config

import (
	"os"
	"strings"
)

// normalize expands paths and canonicalizes token casing so the rest of
// the codebase never re-trims config values.
func (c *Config) normalize() error {
	var err error
	if c.Paths.DataDir, err = expandPath(strings.TrimSpace(c.Paths.DataDir)); err != nil {
		return err
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return err
	}

	if root := strings.TrimSpace(c.SDK.Root); root != "" {
		if c.SDK.Root, err = expandPath(root); err != nil {
			return err
		}
	} else {
		c.SDK.Root = ""
	}

	c.Capture.DefaultDevice = strings.ToLower(strings.TrimSpace(c.Capture.DefaultDevice))
	c.Capture.OutputFormat = strings.ToLower(strings.TrimSpace(c.Capture.OutputFormat))
	c.Capture.AppName = strings.TrimSpace(c.Capture.AppName)

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	if env := strings.TrimSpace(os.Getenv("CONNECTIQ_SDK")); env != "" && c.SDK.Root == "" {
		if c.SDK.Root, err = expandPath(env); err != nil {
			return err
		}
	}

	return nil
}
