package mocks

import (
	"github.com/ratnesh149/raginators-hybrid/internal/domain/candidate"
	"github.com/stretchr/testify/mock"
)

// CandidateService is a mock for mcp.CandidateService.
type CandidateService struct {
	mock.Mock
}

func (m *CandidateService) All() []candidate.Record {
	args := m.Called()
	if list, ok := args.Get(0).([]candidate.Record); ok {
		return list
	}
	return nil
}

func (m *CandidateService) Get(id string) (candidate.Record, bool) {
	args := m.Called(id)
	return args.Get(0).(candidate.Record), args.Bool(1)
}

func (m *CandidateService) Summarize(topRoles int) candidate.Summary {
	args := m.Called(topRoles)
	return args.Get(0).(candidate.Summary)
}
