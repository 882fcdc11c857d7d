package testutil

import (
	"encoding/json"
	"testing"
)

func TestSessionFixtures_AreValidJSON(t *testing.T) {
	fixtures := []struct {
		name   string
		json   string
		solves int
	}{
		{"SessionFileV1", SessionFileV1, 3},
		{"EmptySessionFileV1", EmptySessionFileV1, 0},
		{"FutureSessionFile", FutureSessionFile, 0},
		{"InvalidRecordSessionFile", InvalidRecordSessionFile, 2},
	}

	for _, f := range fixtures {
		t.Run(f.name, func(t *testing.T) {
			var file struct {
				Version int              `json:"version"`
				Solves  []map[string]any `json:"solves"`
			}
			if err := json.Unmarshal([]byte(f.json), &file); err != nil {
				t.Fatalf("%s is not valid JSON: %v", f.name, err)
			}
			if len(file.Solves) != f.solves {
				t.Errorf("%s has %d solves, want %d", f.name, len(file.Solves), f.solves)
			}
		})
	}
}
