package keymap

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

type keymapConfig struct {
	Name     string          `yaml:"name"`
	Source   string          `yaml:"source"`
	Bindings []bindingConfig `yaml:"bindings"`
}

type bindingConfig struct {
	Keys        string `yaml:"keys"`
	Action      string `yaml:"action"`
	Description string `yaml:"description"`
	Priority    int    `yaml:"priority"`
}

// LoadFile loads a keymap from a YAML or JSON file, chosen by
// extension. The loaded keymap is validated before being returned.
func LoadFile(path string) (*Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap file: %w", err)
	}

	var km *Keymap
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		km, err = LoadYAML(bytes.NewReader(data))
	case ".json":
		km, err = LoadJSON(data)
	default:
		return nil, fmt.Errorf("unsupported keymap format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	if km.Source == "" {
		km.Source = "file:" + filepath.Base(path)
	}
	if err := km.Validate(); err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return km, nil
}

// LoadYAML loads a keymap from YAML.
func LoadYAML(r io.Reader) (*Keymap, error) {
	var config keymapConfig
	if err := yaml.NewDecoder(r).Decode(&config); err != nil {
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}
	return fromConfig(config), nil
}

// LoadJSON loads a keymap from JSON. Bindings may be an array of
// binding objects, or a plain object mapping key specs to actions:
//
//	{"bindings": [{"keys": "gg", "action": "goto.top"}]}
//	{"bindings": {"gg": "goto.top", "<Ctrl-s>": "save"}}
func LoadJSON(data []byte) (*Keymap, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("decoding keymap: invalid JSON")
	}
	doc := gjson.ParseBytes(data)

	km := NewKeymap(doc.Get("name").String())
	km.Source = doc.Get("source").String()

	bindings := doc.Get("bindings")
	switch {
	case bindings.IsArray():
		for _, b := range bindings.Array() {
			km.AddBinding(Binding{
				Keys:        b.Get("keys").String(),
				Action:      b.Get("action").String(),
				Description: b.Get("description").String(),
				Priority:    int(b.Get("priority").Int()),
			})
		}
	case bindings.IsObject():
		bindings.ForEach(func(keys, action gjson.Result) bool {
			km.Add(keys.String(), action.String())
			return true
		})
	case bindings.Exists():
		return nil, fmt.Errorf("decoding keymap: bindings must be an array or object")
	}

	return km, nil
}

func fromConfig(config keymapConfig) *Keymap {
	km := NewKeymap(config.Name)
	km.Source = config.Source
	for _, bc := range config.Bindings {
		km.AddBinding(Binding{
			Keys:        bc.Keys,
			Action:      bc.Action,
			Description: bc.Description,
			Priority:    bc.Priority,
		})
	}
	return km
}
