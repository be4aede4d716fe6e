package ticketio

import (
	"encoding/json"
	"os"
	"sort"
	"time"
)

// Manifest tracks the runs currently on disk.
type Manifest struct {
	Runs          []string  `json:"runs"`
	LastWritten   time.Time `json:"lastWritten"`
	RetentionRuns int       `json:"retentionRuns"`
}

func readManifest(path string) (Manifest, error) {
	var m Manifest
	raw, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func writeManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}

func containsRun(runs []string, run string) bool {
	for _, r := range runs {
		if r == run {
			return true
		}
	}
	return false
}

func sortRuns(runs []string) {
	sort.Strings(runs)
}
