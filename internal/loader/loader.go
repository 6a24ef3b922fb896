// Package loader reads response batches from JSON and CSV files.
package loader

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JayGreentree/canvas-lms/internal/contract"
	"github.com/JayGreentree/canvas-lms/schema"
)

// FileLoader loads responses from local files, inferring the format
// from the file extension.
type FileLoader struct{}

var _ contract.ResponseLoader = &FileLoader{} // Compile-time check

// NewFileLoader creates a new file-based response loader.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads a response batch from path. ".json" files must contain a
// JSON array of responses; ".csv" files must carry a header row naming
// the columns.
func (l *FileLoader) Load(path string) ([]schema.Response, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open responses file: %w", err)
	}
	defer func() { _ = file.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return loadJSON(file)
	case ".csv":
		return loadCSV(file)
	default:
		return nil, fmt.Errorf("unsupported responses file extension %q. must be .json or .csv", filepath.Ext(path))
	}
}

// loadJSON decodes a JSON array of responses.
func loadJSON(r io.Reader) ([]schema.Response, error) {
	var responses []schema.Response
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&responses); err != nil {
		return nil, fmt.Errorf("failed to decode responses JSON: %w", err)
	}
	return responses, nil
}

// Recognized CSV column names.
const (
	colUserID   = "user_id"
	colText     = "text"
	colGrade    = "grade"
	colAnswerID = "answer_id"
	colPoints   = "points"
	colCorrect  = "correct"
	colValue    = "value"
)

// loadCSV parses a headered CSV file into responses. Unrecognized
// columns are ignored so exports with extra fields still load.
func loadCSV(r io.Reader) ([]schema.Response, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []schema.Response{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := index[colText]; !ok {
		if _, ok := index[colAnswerID]; !ok {
			return nil, fmt.Errorf("CSV header must contain a %q or %q column", colText, colAnswerID)
		}
	}

	var responses []schema.Response
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		resp, err := parseRecord(record, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// parseRecord converts one CSV record into a response using the header
// index. Missing cells leave the zero value.
func parseRecord(record []string, index map[string]int) (schema.Response, error) {
	cell := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	resp := schema.Response{
		UserID:   cell(colUserID),
		Text:     cell(colText),
		Grade:    strings.ToLower(cell(colGrade)),
		AnswerID: cell(colAnswerID),
	}

	if raw := cell(colPoints); raw != "" {
		points, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return schema.Response{}, fmt.Errorf("invalid points value %q", raw)
		}
		resp.Points = points
	}

	if raw := cell(colCorrect); raw != "" {
		correct, err := strconv.ParseBool(raw)
		if err != nil {
			return schema.Response{}, fmt.Errorf("invalid correct value %q", raw)
		}
		resp.Correct = &correct
	}

	if raw := cell(colValue); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return schema.Response{}, fmt.Errorf("invalid numeric value %q", raw)
		}
		resp.Value = &value
	}

	return resp, nil
}
