package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Bucket is one known external source from the registry.
// Name doubles as the submodule path inside the working tree.
type Bucket struct {
	Name string
	URL  string
}

// Registry is the desired-state registry of known buckets. Buckets are kept
// in the order the registry file declares them: that order drives
// reconciliation, and therefore determines which entries were already
// processed when a run aborts.
type Registry struct {
	Buckets []Bucket
}

// UnmarshalJSON decodes a JSON object of name -> URL pairs while preserving
// the key order of the source document. A plain map would lose that order.
func (r *Registry) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))

	tok, err := decoder.Token()
	if err != nil {
		return fmt.Errorf("failed to decode registry: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("registry must be a JSON object, got %v", tok)
	}

	for decoder.More() {
		keyTok, keyErr := decoder.Token()
		if keyErr != nil {
			return fmt.Errorf("failed to decode registry key: %w", keyErr)
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("registry key must be a string, got %v", keyTok)
		}

		var url string
		if valueErr := decoder.Decode(&url); valueErr != nil {
			return fmt.Errorf("bucket %q: URL must be a string: %w", name, valueErr)
		}

		r.Buckets = append(r.Buckets, Bucket{Name: name, URL: url})
	}

	if _, err = decoder.Token(); err != nil {
		return fmt.Errorf("failed to decode registry: %w", err)
	}

	return nil
}

// Len returns the number of buckets in the registry.
func (r *Registry) Len() int {
	return len(r.Buckets)
}
