package candidate

import (
	"slices"
	"sort"
)

// Store holds a fixed, ordered set of candidate records.
// It is never modified after NewStore returns, so concurrent readers need no locking.
type Store struct {
	records []Record
	byID    map[string]int
}

// NewStore validates records and builds a read-only store over a private copy of them.
func NewStore(records []Record) (*Store, error) {
	if err := ValidateRecords(records); err != nil {
		return nil, err
	}

	owned := slices.Clone(records)
	byID := make(map[string]int, len(owned))
	for i, rec := range owned {
		byID[rec.ID] = i
	}

	return &Store{records: owned, byID: byID}, nil
}

// All returns every record in declaration order.
// The slice is a copy; changing it does not affect the store.
func (s *Store) All() []Record {
	return slices.Clone(s.records)
}

// Get returns the record with the given id. A miss is reported by ok == false.
func (s *Store) Get(id string) (Record, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Record{}, false
	}
	return s.records[i], true
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Summarize counts decisions and roles. topRoles <= 0 keeps every role.
func (s *Store) Summarize(topRoles int) Summary {
	decisions := make(map[Decision]int, len(Decisions))
	for _, d := range Decisions {
		decisions[d] = 0
	}

	roleCounts := make(map[string]int)
	for _, rec := range s.records {
		decisions[rec.Decision]++
		roleCounts[rec.Role]++
	}

	roles := make([]RoleCount, 0, len(roleCounts))
	for role, count := range roleCounts {
		roles = append(roles, RoleCount{Role: role, Count: count})
	}
	sort.Slice(roles, func(i, j int) bool {
		if roles[i].Count != roles[j].Count {
			return roles[i].Count > roles[j].Count
		}
		return roles[i].Role < roles[j].Role
	})
	if topRoles > 0 && len(roles) > topRoles {
		roles = roles[:topRoles]
	}

	return Summary{
		Total:     len(s.records),
		Decisions: decisions,
		Roles:     roles,
	}
}
