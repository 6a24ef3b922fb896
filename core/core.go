// Package core has the entry logic for statistics runs: loading a
// response batch, computing its metric report and handing the results
// to the output and persistence layers.
package core

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/JayGreentree/canvas-lms/core/analyzers"
	"github.com/JayGreentree/canvas-lms/core/stats"
	"github.com/JayGreentree/canvas-lms/internal/contract"
	"github.com/JayGreentree/canvas-lms/internal/loader"
	"github.com/JayGreentree/canvas-lms/internal/outwriter"
	"github.com/JayGreentree/canvas-lms/schema"
)

// ExecutorFunc defines the function signature for executing different analysis modes.
type ExecutorFunc func(cfg *contract.Config, mgr contract.StoreManager) error

// GetAnalyzeResults loads the response batch, computes its metric
// report and records the run in the result store. It returns the
// ordered report and the loaded responses so callers can render or
// serialize them as needed.
func GetAnalyzeResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (*schema.Report, []schema.Response, error) {
	start := time.Now()

	if cfg.ResponsesFile == "" {
		return nil, nil, errors.New("a responses file is required")
	}

	// --- 1. Load the response batch ---
	responses, err := loader.NewFileLoader().Load(cfg.ResponsesFile)
	if err != nil {
		return nil, nil, err
	}

	if !shouldSuppressHeader(ctx) {
		outwriter.LogAnalysisHeader(cfg, len(responses))
	}

	// --- 2. Resolve the metric catalog ---
	registry := analyzers.NewRegistry()
	if cfg.Strict {
		if err := registry.CheckUnique(cfg.QuestionType); err != nil {
			return nil, nil, err
		}
	}

	// --- 3. Begin run tracking (if configured) ---
	var runID int64
	var store contract.ResultStore
	if mgr != nil {
		store = mgr.GetResultStore()
	}
	if store != nil {
		configParams := map[string]any{
			"question_type":  string(cfg.QuestionType),
			"responses_file": cfg.ResponsesFile,
			"output":         string(cfg.Output),
		}
		runID, err = store.BeginRun(cfg.QuestionType, start, configParams)
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
			runID = 0
		}
	}

	// --- 4. Compute the report ---
	report, err := registry.Compute(cfg.QuestionType, responses, analyzers.BuilderFor(cfg.QuestionType))
	if err != nil {
		return nil, nil, err
	}

	// --- 5. End run tracking ---
	if store != nil && runID > 0 {
		if err := store.RecordReport(runID, report); err != nil {
			contract.LogWarn("Failed to record report", err)
		}
		if err := store.EndRun(runID, time.Now(), len(responses)); err != nil {
			contract.LogWarn("Failed to finalize run tracking", err)
		}
	}

	return report, responses, nil
}

// ExecuteAnalyze runs the statistics computation for one response batch
// and prints the report to the configured output. It serves as the main
// entry point for the 'analyze' command.
func ExecuteAnalyze(cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()

	report, responses, err := GetAnalyzeResults(context.Background(), cfg, mgr)
	if err != nil {
		return err
	}

	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteReport(report, responses, cfg, duration)
}

// ExecuteTypes prints the registered question types and their metric
// catalogs. This is a static display that does not require response data.
func ExecuteTypes(cfg *contract.Config, _ contract.StoreManager) error {
	registry := analyzers.NewRegistry()
	return outwriter.NewOutWriter().WriteTypes(BuildTypeCatalog(registry), cfg)
}

// BuildTypeCatalog assembles the display catalog for every registered
// question type, sorted by type name for stable output.
func BuildTypeCatalog(registry *stats.Registry) []outwriter.TypeCatalogEntry {
	types := registry.QuestionTypes()
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	catalog := make([]outwriter.TypeCatalogEntry, 0, len(types))
	for _, qt := range types {
		entry := outwriter.TypeCatalogEntry{
			QuestionType: qt,
			Dependencies: make(map[string][]string),
		}
		for _, m := range registry.MetricsFor(qt) {
			entry.MetricKeys = append(entry.MetricKeys, m.Key)
			if len(m.ContextDeps) > 0 {
				entry.Dependencies[m.Key] = m.ContextDeps
			}
		}
		if len(entry.Dependencies) == 0 {
			entry.Dependencies = nil
		}
		catalog = append(catalog, entry)
	}
	return catalog
}
