// Package config loads, validates, and normalizes garmin-dev
// configuration from TOML files.
package config
