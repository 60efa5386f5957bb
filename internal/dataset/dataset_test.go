package dataset_test

import (
	"testing"

	"github.com/ratnesh149/raginators-hybrid/internal/dataset"
	"github.com/ratnesh149/raginators-hybrid/internal/domain/candidate"
	"github.com/stretchr/testify/require"
)

var declaredIDs = []string{
	"jasojo159",
	"marsmith001",
	"johndoe123",
	"sarahwilson456",
	"mikebrown789",
	"emilydavis321",
	"davidlee654",
	"lisachen987",
	"alexchen456",
	"rachelgreen789",
	"tomwilson321",
	"jenniferwang654",
	"kevinbrown987",
	"amandasmith123",
}

func TestDefault_DeclarationOrder(t *testing.T) {
	all := dataset.All()
	ids := make([]string, 0, len(all))
	for _, rec := range all {
		ids = append(ids, rec.ID)
	}
	require.Equal(t, declaredIDs, ids)
	require.Equal(t, all, dataset.All())
}

func TestDefault_RecordInvariants(t *testing.T) {
	seen := map[string]bool{}
	for _, rec := range dataset.All() {
		require.Contains(t, candidate.Decisions, rec.Decision, rec.ID)
		require.False(t, seen[rec.ID], "duplicate id %s", rec.ID)
		seen[rec.ID] = true

		require.NotEmpty(t, rec.Name, rec.ID)
		require.NotEmpty(t, rec.Role, rec.ID)
		require.NotEmpty(t, rec.Resume, rec.ID)
		require.NotEmpty(t, rec.ReasonForDecision, rec.ID)
		require.NotEmpty(t, rec.Transcript, rec.ID)
		require.NotEmpty(t, rec.JobDescription, rec.ID)
	}
	require.Len(t, dataset.All(), len(seen))
	require.Equal(t, len(seen), dataset.Default().Len())
}

func TestDefault_RoundTripByID(t *testing.T) {
	for _, rec := range dataset.All() {
		got, ok := dataset.Get(rec.ID)
		require.True(t, ok, rec.ID)
		require.Equal(t, rec, got)
	}
}

func TestDefault_KnownRecords(t *testing.T) {
	john, ok := dataset.Get("johndoe123")
	require.True(t, ok)
	require.Equal(t, "John Doe", john.Name)
	require.Equal(t, "Software Engineer", john.Role)
	require.Equal(t, candidate.DecisionSelect, john.Decision)

	lisa, ok := dataset.Get("lisachen987")
	require.True(t, ok)
	require.Equal(t, "Marketing Manager", lisa.Role)
	require.Equal(t, candidate.DecisionReject, lisa.Decision)

	_, ok = dataset.Get("nonexistent000")
	require.False(t, ok)
}

func TestDefault_MultilineTextPreserved(t *testing.T) {
	rec, ok := dataset.Get("jasojo159")
	require.True(t, ok)
	require.Contains(t, rec.Resume, "Jason Jones\nE-commerce Specialist\n\nContact Information:")
	require.Equal(t, "Lacked leadership skills for a senior position.", rec.ReasonForDecision)
}

func TestDefault_Summary(t *testing.T) {
	summary := dataset.Default().Summarize(5)
	require.Equal(t, 14, summary.Total)
	require.Equal(t, 9, summary.Decisions[candidate.DecisionSelect])
	require.Equal(t, 5, summary.Decisions[candidate.DecisionReject])
	require.Len(t, summary.Roles, 5)
	require.Equal(t, candidate.RoleCount{Role: "Backend Engineer", Count: 1}, summary.Roles[0])
}

func TestDefault_AllIsDefensiveCopy(t *testing.T) {
	all := dataset.All()
	all[0].Decision = candidate.DecisionSelect
	all[0].Name = "mutated"

	rec, ok := dataset.Get("jasojo159")
	require.True(t, ok)
	require.Equal(t, "Jason Jones", rec.Name)
	require.Equal(t, candidate.DecisionReject, rec.Decision)
}
