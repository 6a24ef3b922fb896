package mcp_test

import (
	"context"
	"testing"

	"github.com/JayGreentree/canvas-lms/internal/contract"
	mcp_internal "github.com/JayGreentree/canvas-lms/internal/mcp"
	"github.com/JayGreentree/canvas-lms/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		QuestionType: schema.EssayQuestion,
		Output:       schema.TextOut,
		Precision:    contract.DefaultPrecision,
	}

	// Create a dummy manager, though we shouldn't hit it because we test validation errors
	var mgr contract.StoreManager
	s := mcp_internal.NewMCPServer(baseCfg, mgr)

	ctx := context.Background()

	t.Run("analyze_responses missing responses_file", func(t *testing.T) {
		tool := s.GetTool("analyze_responses")
		require.NotNil(t, tool, "Tool analyze_responses should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "analyze_responses",
				Arguments: map[string]any{
					"responses_file": "", // Missing required
					"question_type":  "essay_question",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "responses_file is required")
	})

	t.Run("analyze_responses missing question_type", func(t *testing.T) {
		tool := s.GetTool("analyze_responses")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "analyze_responses",
				Arguments: map[string]any{
					"responses_file": "responses.json",
					"question_type":  "", // Missing required
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "question_type is required")
	})

	t.Run("list_runs without a store", func(t *testing.T) {
		tool := s.GetTool("list_runs")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "list_runs",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "no result store is configured")
	})

	t.Run("list_question_types returns catalog", func(t *testing.T) {
		tool := s.GetTool("list_question_types")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "list_question_types",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.False(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "essay_question")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "multiple_choice_question")
	})
}
