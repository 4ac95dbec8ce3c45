package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry records one rendered frame in the output manifest.
type ManifestEntry struct {
	Frame int    `json:"frame"`
	Image string `json:"image"`
}

// WriteManifest writes manifest.json listing the successfully rendered
// frames, with image paths relative to the manifest's directory.
func WriteManifest(path string, results []Result) error {
	var entries []ManifestEntry
	dir := filepath.Dir(path)
	for _, r := range results {
		if !r.Success {
			continue
		}
		rel, err := filepath.Rel(dir, r.Path)
		if err != nil {
			rel = r.Path
		}
		entries = append(entries, ManifestEntry{Frame: r.Frame, Image: rel})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
