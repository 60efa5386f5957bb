// Package dataset provides the built-in sample candidate records and the tabular
// encodings used to move record sets in and out of the process.
package dataset

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/ratnesh149/raginators-hybrid/internal/domain/candidate"
)

//go:embed candidates.yaml
var embeddedCandidates []byte

// defaultStore is built once at package initialization and never reassigned.
var defaultStore = mustLoad(embeddedCandidates)

// mustLoad builds a store from YAML record data and panics if any record is
// malformed, so a bad built-in set stops the process at startup.
func mustLoad(data []byte) *candidate.Store {
	records, err := Decode(bytes.NewReader(data), FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("dataset: decode candidates: %v", err))
	}
	store, err := candidate.NewStore(records)
	if err != nil {
		panic(fmt.Sprintf("dataset: candidates: %v", err))
	}
	return store
}

// Default returns the store holding the built-in sample records.
func Default() *candidate.Store {
	return defaultStore
}

// All returns the built-in sample records in declaration order.
func All() []candidate.Record {
	return defaultStore.All()
}

// Get looks up a built-in sample record by id.
func Get(id string) (candidate.Record, bool) {
	return defaultStore.Get(id)
}
