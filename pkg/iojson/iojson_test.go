package iojson

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Kind string `json:"kind"`
	ID   int    `json:"id,omitempty"`
}

func TestFileReader_ReadsFlagFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"kind":"add"},{"kind":"removeOne","id":2}]`), 0o644))

	fr := &FileReader[[]sample]{fileFlagValue: path}
	got, err := fr.Read()
	require.NoError(t, err)
	assert.Equal(t, []sample{{Kind: "add"}, {Kind: "removeOne", ID: 2}}, got)
}

func TestFileReader_ReadsStdin(t *testing.T) {
	fr := &FileReader[sample]{stdin: strings.NewReader(`{"kind":"removeAll"}`)}
	got, err := fr.Read()
	require.NoError(t, err)
	assert.Equal(t, sample{Kind: "removeAll"}, got)
}

func TestFileReader_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		fr := &FileReader[sample]{fileFlagValue: filepath.Join(t.TempDir(), "nope.json")}
		_, err := fr.Read()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "open file")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		fr := &FileReader[sample]{stdin: strings.NewReader(`{"kind":`)}
		_, err := fr.Read()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode JSON")
	})
}

func TestFileReader_Flag(t *testing.T) {
	fr := &FileReader[sample]{}
	f := fr.Flag()
	assert.Equal(t, "file", f.Name)
	assert.Equal(t, []string{"f"}, f.Aliases)
}

func TestWriteWith_Indented(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, WriteWith(&out, &errOut, sample{Kind: "add", ID: 1}))
	assert.Equal(t, "{\n  \"kind\": \"add\",\n  \"id\": 1\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestWriteWith_MarshalFailure(t *testing.T) {
	var out, errOut bytes.Buffer
	err := WriteWith(&out, &errOut, map[string]any{"fn": func() {}})
	require.Error(t, err)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "json_error")
}

func TestWriteLine(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteLine(&out, sample{Kind: "a"}))
	require.NoError(t, WriteLine(&out, sample{Kind: "b"}))
	assert.Equal(t, "{\"kind\":\"a\"}\n{\"kind\":\"b\"}\n", out.String())
}

func TestWriteError(t *testing.T) {
	var errOut bytes.Buffer
	err := WriteError(&errOut, "read input: boom", map[string]any{"step": 2})
	require.EqualError(t, err, "read input: boom")

	var env Error
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &env))
	assert.Equal(t, "read input: boom", env.Message)
	assert.EqualValues(t, 2, env.Data["step"])
}
