package repositories

import (
	"encoding/json"
	"fmt"
)

// marshalStringList encodes a string slice for a JSON column.
// nil encodes as an empty array so the column is never NULL.
func marshalStringList(values []string) ([]byte, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal string list: %w", err)
	}
	return data, nil
}

// unmarshalStringList decodes a JSON column into a string slice.
// NULL and empty values decode as an empty slice.
func unmarshalStringList(data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to unmarshal string list: %w", err)
	}
	return values, nil
}
