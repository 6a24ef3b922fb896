package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Report is an ordered mapping from metric key to computed value.
// Keys keep their first-occurrence position; setting an existing key
// overwrites the value in place (last write wins).
type Report struct {
	keys   []string
	values map[string]any
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{values: make(map[string]any)}
}

// Set stores a value under key. A repeated key keeps its original
// position in the key order and takes the new value.
func (r *Report) Set(key string, value any) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value stored under key.
func (r *Report) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the metric keys in first-occurrence order.
func (r *Report) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of distinct keys in the report.
func (r *Report) Len() int {
	return len(r.keys)
}

// MarshalJSON encodes the report as a JSON object with keys in
// first-occurrence order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, fmt.Errorf("failed to encode metric %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
