// Package timex provides a time.Duration wrapper that unmarshals from JSON
// either as a Go duration string ("15s", "2m") or as integer nanoseconds.
package timex

import (
	"encoding/json"
	"fmt"
	"time"
)

// Duration wraps time.Duration for JSON configuration files.
type Duration struct {
	time.Duration
}

// UnmarshalJSON accepts "15s"-style strings or raw nanosecond numbers.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
	default:
		return fmt.Errorf("invalid duration type %T", v)
	}
	return nil
}

// MarshalJSON renders the duration in its string form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Duration.String())
}
