package integration_test

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// TestStdioProtocolCompliance runs the built server binary over stdio with the SDK client.
func TestStdioProtocolCompliance(t *testing.T) {
	binaryPath := "./bin/candidates"
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		binaryPath = "../../bin/candidates"
		if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
			t.Skip("Server binary not found. Run 'make build' first.")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, binaryPath)
	cmd.Env = append(os.Environ(),
		"CANDIDATES_CONFIG_PATH=",
		"CANDIDATES_DATASET_PATH=",
		"CANDIDATES_SERVER_NAME=candidates",
		"CANDIDATES_LOG_LEVEL=error",
	)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, &sdkmcp.CommandTransport{Command: cmd}, nil)
	require.NoError(t, err, "Failed to connect to server")
	defer session.Close()

	t.Run("ServerInfo", func(t *testing.T) {
		initResult := session.InitializeResult()
		require.NotNil(t, initResult)
		require.NotNil(t, initResult.ServerInfo)
		require.Equal(t, "candidates", initResult.ServerInfo.Name)
		require.NotEmpty(t, initResult.Instructions)
	})

	t.Run("ListTools", func(t *testing.T) {
		tools, err := session.ListTools(ctx, nil)
		require.NoError(t, err)
		require.Len(t, tools.Tools, 4)
	})

	t.Run("GetCandidate", func(t *testing.T) {
		result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
			Name:      "get_candidate",
			Arguments: map[string]any{"id": "johndoe123"},
		})
		require.NoError(t, err)
		require.False(t, result.IsError)

		text, ok := result.Content[0].(*sdkmcp.TextContent)
		require.True(t, ok)
		var resp struct {
			Found     bool `json:"found"`
			Candidate struct {
				Role     string `json:"role"`
				Decision string `json:"decision"`
			} `json:"candidate"`
		}
		require.NoError(t, json.Unmarshal([]byte(text.Text), &resp))
		require.True(t, resp.Found)
		require.Equal(t, "Software Engineer", resp.Candidate.Role)
		require.Equal(t, "select", resp.Candidate.Decision)
	})

	t.Run("ReadResource", func(t *testing.T) {
		res, err := session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "candidates://all"})
		require.NoError(t, err)
		var records []map[string]any
		require.NoError(t, json.Unmarshal([]byte(res.Contents[0].Text), &records))
		require.Len(t, records, 14)
	})
}
