package council

import "fmt"

// Config is a serialisable representation of the council configuration. It
// can be populated from JSON, YAML, environment variables, etc. The
// zero-value is useful – all nested fields inherit their package defaults.
type Config struct {
	Events EventsConfig `json:"events" yaml:"events"`

	// RulesURL optionally points at a YAML rule-set document loaded on
	// Service.Init; when empty the stock rule set applies.
	RulesURL string `json:"rulesURL,omitempty" yaml:"rulesURL,omitempty"`
}

// EventsConfig controls the in-memory event queue.
type EventsConfig struct {
	QueueBuffer int `json:"queueBuffer" yaml:"queueBuffer"`
}

// DefaultConfig returns a Config populated with the same defaults the
// constructors use. Callers may modify the returned struct before passing it
// to New via WithConfig.
func DefaultConfig() *Config {
	return &Config{
		Events: EventsConfig{QueueBuffer: 100},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Events.QueueBuffer < 0 {
		return fmt.Errorf("events.queueBuffer must be >= 0")
	}
	return nil
}
