package mcp

import (
	"context"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/ratnesh149/raginators-hybrid/internal/dataset"
	"github.com/ratnesh149/raginators-hybrid/internal/domain/candidate"
)

const defaultTopRoles = 5

func registerTools(server *sdkmcp.Server, svc CandidateService) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_candidates",
		Description: "List every candidate record in declaration order",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, _ ListCandidatesParams) (*sdkmcp.CallToolResult, ListCandidatesResponse, error) {
		records := svc.All()
		if records == nil {
			records = []candidate.Record{}
		}
		return nil, ListCandidatesResponse{Candidates: records, Total: len(records)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_candidate",
		Description: "Get one candidate record by id; found is false when the id is unknown",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, in GetCandidateParams) (*sdkmcp.CallToolResult, GetCandidateResponse, error) {
		if strings.TrimSpace(in.ID) == "" {
			return nil, GetCandidateResponse{}, toolError(candidate.ErrMissingID)
		}
		rec, ok := svc.Get(in.ID)
		if !ok {
			return nil, GetCandidateResponse{Found: false}, nil
		}
		return nil, GetCandidateResponse{Found: true, Candidate: &rec}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "summarize_candidates",
		Description: "Count candidates by decision and by role",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, in SummarizeCandidatesParams) (*sdkmcp.CallToolResult, candidate.Summary, error) {
		top := in.TopRoles
		if top <= 0 {
			top = defaultTopRoles
		}
		return nil, svc.Summarize(top), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "export_candidates",
		Description: "Render every candidate record as csv, json, or yaml text",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, in ExportCandidatesParams) (*sdkmcp.CallToolResult, ExportCandidatesResponse, error) {
		format, err := dataset.ParseFormat(in.Format)
		if err != nil {
			return nil, ExportCandidatesResponse{}, toolError(err)
		}

		records := svc.All()
		var sb strings.Builder
		if err := dataset.Encode(&sb, format, records); err != nil {
			return nil, ExportCandidatesResponse{}, toolError(err)
		}
		return nil, ExportCandidatesResponse{
			Format:  string(format),
			Count:   len(records),
			Content: sb.String(),
		}, nil
	})
}
