package cmd

import (
	"fmt"
	"os"

	"github.com/FabioCubas101/tfm-ai-api/internal/tourism"
)

// runValidate loads and validates the tourism dataset file, reporting
// the record count on success. The file path comes from the first
// positional argument or TFM_DATA_FILE.
func runValidate() error {
	path := os.Getenv("TFM_DATA_FILE")
	if len(os.Args) > 2 {
		path = os.Args[2]
	}
	if path == "" {
		path = "data/tourism_data.json"
	}

	store, err := tourism.LoadStore(path)
	if err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}

	fmt.Printf("%s: OK (%d records)\n", path, store.Len())
	return nil
}
