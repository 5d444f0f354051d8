package config

import "fmt"

// ConfigError reports a missing, unparsable or out-of-range parameter.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Field != "" && e.Value != "":
		return fmt.Sprintf("config %s=%q: %v", e.Field, e.Value, e.Err)
	case e.Field != "":
		return fmt.Sprintf("config %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config: %v", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
