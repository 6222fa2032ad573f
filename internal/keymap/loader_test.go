package keymap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlKeymap = `
name: editor
source: user
bindings:
  - keys: gg
    action: goto.top
    description: jump to the first line
  - keys: <Ctrl-x><Ctrl-s>
    action: file.save
    priority: 5
`

func TestLoadYAML(t *testing.T) {
	km, err := LoadYAML(strings.NewReader(yamlKeymap))
	require.NoError(t, err)

	assert.Equal(t, "editor", km.Name)
	assert.Equal(t, "user", km.Source)
	require.Len(t, km.Bindings, 2)
	assert.Equal(t, "gg", km.Bindings[0].Keys)
	assert.Equal(t, "jump to the first line", km.Bindings[0].Description)
	assert.Equal(t, 5, km.Bindings[1].Priority)
	assert.NoError(t, km.Validate())
}

func TestLoadYAMLMalformed(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("bindings: [what"))
	assert.Error(t, err)
}

func TestLoadJSONArray(t *testing.T) {
	data := `{
		"name": "editor",
		"bindings": [
			{"keys": "gg", "action": "goto.top"},
			{"keys": "<Ctrl-s>", "action": "file.save", "priority": 3}
		]
	}`

	km, err := LoadJSON([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "editor", km.Name)
	require.Len(t, km.Bindings, 2)
	assert.Equal(t, "file.save", km.Bindings[1].Action)
	assert.Equal(t, 3, km.Bindings[1].Priority)
}

func TestLoadJSONObject(t *testing.T) {
	data := `{"name": "quick", "bindings": {"gg": "goto.top", "<Ctrl-s>": "file.save"}}`

	km, err := LoadJSON([]byte(data))
	require.NoError(t, err)
	require.Len(t, km.Bindings, 2)
	assert.NoError(t, km.Validate())
}

func TestLoadJSONInvalid(t *testing.T) {
	_, err := LoadJSON([]byte("{not json"))
	assert.Error(t, err)

	_, err = LoadJSON([]byte(`{"bindings": "gg"}`))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "keys.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlKeymap), 0o644))

	km, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "editor", km.Name)
	assert.Equal(t, "user", km.Source, "explicit source should win")

	jsonPath := filepath.Join(dir, "keys.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"bindings": {"gg": "goto.top"}}`), 0o644))

	km, err = LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "file:keys.json", km.Source)
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	badExt := filepath.Join(dir, "keys.toml")
	require.NoError(t, os.WriteFile(badExt, []byte(""), 0o644))
	_, err = LoadFile(badExt)
	assert.Error(t, err)

	// Well-formed file with an unparseable binding fails validation.
	badBinding := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badBinding, []byte(`{"bindings": {"<blub>": "action"}}`), 0o644))
	_, err = LoadFile(badBinding)
	assert.Error(t, err)
}
