// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/JayGreentree/canvas-lms/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Quizstats MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Quiz Statistics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: analyze_responses ---
	s.AddTool(mcp.NewTool("analyze_responses",
		mcp.WithDescription("Compute the metric report for a batch of quiz responses."),
		mcp.WithString("responses_file", mcp.Description("Path to the response batch file (JSON or CSV)."), mcp.Required()),
		mcp.WithString("question_type", mcp.Description("Question type whose metric catalog should be applied (e.g. essay_question, multiple_choice_question)."), mcp.Required()),
		mcp.WithBoolean("strict", mcp.Description("Fail fast if the metric catalog contains duplicate keys.")),
	), h.handleAnalyzeResponses)

	// --- 2. Tool: list_question_types ---
	s.AddTool(mcp.NewTool("list_question_types",
		mcp.WithDescription("List the registered question types and their metric catalogs."),
	), h.handleListQuestionTypes)

	// --- 3. Tool: list_runs ---
	s.AddTool(mcp.NewTool("list_runs",
		mcp.WithDescription("List recorded statistics runs from the result store, newest first."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of runs returned.")),
	), h.handleListRuns)

	return s
}

// StartMCPServer starts the Quizstats MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
