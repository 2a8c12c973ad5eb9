package feed

import (
	"encoding/json"
	"os"

	"foodsync/internal/model"
)

// WriteSnapshot dumps the partitioned feed to a JSON file so operators can
// inspect exactly what a run fed into the catalog. Best-effort side output;
// the caller only logs a failure.
func WriteSnapshot(path string, buckets []model.Bucket) error {
	data, err := json.MarshalIndent(buckets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
