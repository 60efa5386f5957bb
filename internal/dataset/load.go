package dataset

import (
	"fmt"
	"os"

	"github.com/ratnesh149/raginators-hybrid/internal/domain/candidate"
)

// LoadFile decodes a record set from path, choosing the format by extension,
// and returns a validated store over it.
func LoadFile(path string) (*candidate.Store, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	records, err := Decode(file, format)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}

	store, err := candidate.NewStore(records)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}
	return store, nil
}
