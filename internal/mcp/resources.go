package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/ratnesh149/raginators-hybrid/internal/dataset"
)

const serverInstructions = `This server exposes a fixed, read-only set of candidate interview records.

Each record has: id, name, role, resume, decision (select | reject), reasonForDecision,
transcript, jobDescription. Records keep their declaration order.

- list_candidates: every record, in order.
- get_candidate(id): one record; found=false when the id is unknown.
- summarize_candidates(top_roles?): decision counts and most common roles.
- export_candidates(format): the whole set as csv, json, or yaml text.

Resources: candidates://all (JSON array) and candidates://{id} (one record).`

const (
	resourceScheme = "candidates://"
	allCandidates  = resourceScheme + "all"
	jsonMIME       = "application/json"
)

func registerResources(server *sdkmcp.Server, svc CandidateService) {
	server.AddResource(&sdkmcp.Resource{
		URI:         allCandidates,
		Name:        "candidates",
		Title:       "All candidates",
		Description: "Every candidate record as a JSON array, in declaration order",
		MIMEType:    jsonMIME,
	}, func(_ context.Context, _ *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
		var buf bytes.Buffer
		if err := dataset.Encode(&buf, dataset.FormatJSON, svc.All()); err != nil {
			return nil, fmt.Errorf("encode candidates: %w", err)
		}
		return &sdkmcp.ReadResourceResult{
			Contents: []*sdkmcp.ResourceContents{{
				URI:      allCandidates,
				MIMEType: jsonMIME,
				Text:     buf.String(),
			}},
		}, nil
	})

	server.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: resourceScheme + "{id}",
		Name:        "candidate",
		Title:       "Candidate by id",
		Description: "A single candidate record as JSON",
		MIMEType:    jsonMIME,
	}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
		uri := req.Params.URI
		rec, ok := svc.Get(strings.TrimPrefix(uri, resourceScheme))
		if !ok {
			return nil, sdkmcp.ResourceNotFoundError(uri)
		}
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode candidate: %w", err)
		}
		return &sdkmcp.ReadResourceResult{
			Contents: []*sdkmcp.ResourceContents{{
				URI:      uri,
				MIMEType: jsonMIME,
				Text:     string(data),
			}},
		}, nil
	})
}
