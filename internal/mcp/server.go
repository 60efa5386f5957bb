package mcp

import (
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/ratnesh149/raginators-hybrid/internal/domain/candidate"
)

// CandidateService defines the read-only record operations exposed over MCP.
type CandidateService interface {
	All() []candidate.Record
	Get(id string) (candidate.Record, bool)
	Summarize(topRoles int) candidate.Summary
}

// Config contains server configuration.
type Config struct {
	Name       string
	Version    string
	Candidates CandidateService
	Logger     *slog.Logger
}

// NewServer creates an MCP server exposing the candidate records as resources and tools.
func NewServer(cfg Config) *sdkmcp.Server {
	name := cfg.Name
	if name == "" {
		name = "candidates"
	}
	version := cfg.Version
	if version == "" {
		version = "0.1.0"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    name,
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerResources(server, cfg.Candidates)
	registerTools(server, cfg.Candidates)

	return server
}
