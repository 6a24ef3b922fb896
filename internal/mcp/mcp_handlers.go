package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JayGreentree/canvas-lms/core"
	"github.com/JayGreentree/canvas-lms/core/analyzers"
	"github.com/JayGreentree/canvas-lms/internal/contract"
	"github.com/JayGreentree/canvas-lms/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleAnalyzeResponses(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.ResponsesFile = request.GetString("responses_file", "")
	if cfg.ResponsesFile == "" {
		return mcp.NewToolResultError("responses_file is required"), nil
	}
	qt := request.GetString("question_type", "")
	if qt == "" {
		return mcp.NewToolResultError("question_type is required"), nil
	}
	cfg.QuestionType = schema.QuestionType(qt)
	cfg.Strict = request.GetBool("strict", cfg.Strict)

	report, responses, err := core.GetAnalyzeResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	payload := struct {
		QuestionType schema.QuestionType `json:"question_type"`
		Responses    int                 `json:"responses"`
		Report       *schema.Report      `json:"report"`
	}{cfg.QuestionType, len(responses), report}

	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListQuestionTypes(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	catalog := core.BuildTypeCatalog(analyzers.NewRegistry())
	jsonData, _ := json.MarshalIndent(catalog, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListRuns(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var store contract.ResultStore
	if h.mgr != nil {
		store = h.mgr.GetResultStore()
	}
	if store == nil {
		return mcp.NewToolResultError("no result store is configured"), nil
	}

	limit := request.GetInt("limit", 0)
	runs, err := store.ListRuns(limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing runs failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(runs, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
