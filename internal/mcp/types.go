package mcp

import "github.com/ratnesh149/raginators-hybrid/internal/domain/candidate"

type ListCandidatesParams struct{}

type ListCandidatesResponse struct {
	Candidates []candidate.Record `json:"candidates"`
	Total      int                `json:"total"`
}

type GetCandidateParams struct {
	ID string `json:"id" jsonschema:"candidate id, for example johndoe123"`
}

// GetCandidateResponse reports a lookup. A miss is Found == false, not an error.
type GetCandidateResponse struct {
	Found     bool              `json:"found"`
	Candidate *candidate.Record `json:"candidate,omitempty"`
}

type SummarizeCandidatesParams struct {
	TopRoles int `json:"top_roles,omitempty" jsonschema:"number of roles to include, most common first (default 5)"`
}

type ExportCandidatesParams struct {
	Format string `json:"format" jsonschema:"csv, json, or yaml"`
}

type ExportCandidatesResponse struct {
	Format  string `json:"format"`
	Count   int    `json:"count"`
	Content string `json:"content"`
}
