package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTempFile writes content to a file with the given name in a temp dir.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_JSON(t *testing.T) {
	path := writeTempFile(t, "responses.json", `[
  {"user_id": "1", "text": "An answer.", "grade": "correct", "points": 2.0},
  {"user_id": "2", "answer_id": "a1", "correct": true},
  {"user_id": "3", "value": 42.5},
  {"user_id": "4", "blanks": {"color": "red"}}
]`)

	responses, err := NewFileLoader().Load(path)
	require.NoError(t, err)
	require.Len(t, responses, 4)

	assert.Equal(t, "An answer.", responses[0].Text)
	assert.Equal(t, "correct", responses[0].Grade)
	assert.Equal(t, 2.0, responses[0].Points)

	assert.Equal(t, "a1", responses[1].AnswerID)
	require.NotNil(t, responses[1].Correct)
	assert.True(t, *responses[1].Correct)

	require.NotNil(t, responses[2].Value)
	assert.Equal(t, 42.5, *responses[2].Value)

	assert.Equal(t, map[string]string{"color": "red"}, responses[3].Blanks)
}

func TestLoad_JSONMalformed(t *testing.T) {
	path := writeTempFile(t, "bad.json", `{"not": "an array"}`)

	_, err := NewFileLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode responses JSON")
}

func TestLoad_CSV(t *testing.T) {
	path := writeTempFile(t, "responses.csv", `user_id,text,grade,answer_id,points,correct,value
1,An answer.,Correct,,2.0,,
2,,,a1,,true,
3,,,,,,42.5
4,,,,,,
`)

	responses, err := NewFileLoader().Load(path)
	require.NoError(t, err)
	require.Len(t, responses, 4)

	assert.Equal(t, "An answer.", responses[0].Text)
	assert.Equal(t, "correct", responses[0].Grade, "grades are normalized to lowercase")
	assert.Equal(t, 2.0, responses[0].Points)

	assert.Equal(t, "a1", responses[1].AnswerID)
	require.NotNil(t, responses[1].Correct)
	assert.True(t, *responses[1].Correct)

	require.NotNil(t, responses[2].Value)
	assert.Equal(t, 42.5, *responses[2].Value)

	assert.False(t, responses[3].Answered())
}

func TestLoad_CSVIgnoresUnknownColumns(t *testing.T) {
	path := writeTempFile(t, "extra.csv", `user_id,text,submitted_at
1,hello,2026-01-01
`)

	responses, err := NewFileLoader().Load(path)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "hello", responses[0].Text)
}

func TestLoad_CSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no answer column",
			content: "user_id,grade\n1,correct\n",
			wantErr: "CSV header must contain",
		},
		{
			name:    "bad points",
			content: "user_id,text,points\n1,hi,lots\n",
			wantErr: `line 2: invalid points value "lots"`,
		},
		{
			name:    "bad correct flag",
			content: "user_id,text,correct\n1,hi,maybe\n",
			wantErr: `line 2: invalid correct value "maybe"`,
		},
		{
			name:    "bad numeric value",
			content: "user_id,text,value\n1,hi,NaN-ish\n",
			wantErr: `line 2: invalid numeric value "NaN-ish"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "bad.csv", tt.content)
			_, err := NewFileLoader().Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_CSVEmptyFile(t *testing.T) {
	path := writeTempFile(t, "empty.csv", "")

	responses, err := NewFileLoader().Load(path)
	require.NoError(t, err)
	assert.Empty(t, responses)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeTempFile(t, "responses.xml", "<responses/>")

	_, err := NewFileLoader().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported responses file extension")
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := NewFileLoader().Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open responses file")
}
