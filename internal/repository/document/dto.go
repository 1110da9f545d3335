package document

import (
	"encoding/json"
	"fmt"
)

// Hash field values are JSON-encoded so multi-valued fields survive the
// round trip: a single value is stored as a JSON string, multiple values
// as a JSON array.

func encodeValues(values []string) (string, error) {
	var (
		b   []byte
		err error
	)
	if len(values) == 1 {
		b, err = json.Marshal(values[0])
	} else {
		b, err = json.Marshal(values)
	}
	if err != nil {
		return "", fmt.Errorf("marshal field values: %w", err)
	}
	return string(b), nil
}

func decodeValues(raw string) []string {
	var many []string
	if err := json.Unmarshal([]byte(raw), &many); err == nil {
		return many
	}
	var one string
	if err := json.Unmarshal([]byte(raw), &one); err == nil {
		return []string{one}
	}
	// Not JSON: treat as a plain stored value.
	return []string{raw}
}
