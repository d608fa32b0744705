// Package config provides configuration and validation for linekit's
// query engine.
package config

import "fmt"

const (
	defaultDelim    = '\t'
	defaultKeyField = 1
)

// Config holds the query engine parameters. The zero value is usable
// after FillDefaults.
type Config struct {
	// Delim is the single-byte field delimiter within a record.
	Delim byte
	// KeyField is the 1-based index of the sort key field.
	KeyField int
	// Exact matches the entire key field instead of its prefix.
	Exact bool
}

// DefaultConfig returns a Config populated with default values:
// tab-delimited fields, first field as key, prefix matching.
func DefaultConfig() *Config {
	return &Config{
		Delim:    defaultDelim,
		KeyField: defaultKeyField,
	}
}

// FillDefaults sets any zero-value fields to their default values.
func (c *Config) FillDefaults() {
	if c.Delim == 0 {
		c.Delim = defaultDelim
	}
	if c.KeyField == 0 {
		c.KeyField = defaultKeyField
	}
}

// Validate reports configuration errors.
func (c *Config) Validate() error {
	if c.KeyField < 1 {
		return fmt.Errorf("key field must be 1 or greater, got %d", c.KeyField)
	}
	return nil
}
