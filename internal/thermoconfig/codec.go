package thermoconfig

import (
	"bytes"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// codec converts between file contents and the generic mapping that
// validation works on.
type codec interface {
	Name() string
	Decode(data []byte) (map[string]any, error)
	Encode(doc *document) ([]byte, error)
}

// codecFor selects a codec from the file extension. Unknown extensions fall
// back to YAML.
func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return tomlCodec{}
	default:
		return yamlCodec{}
	}
}

// FormatFor returns the name of the on-disk format used for path.
func FormatFor(path string) string {
	return codecFor(path).Name()
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Decode(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	keepLiteralText(raw, &root)

	return raw, nil
}

// textFields are the app fields whose scalars are kept as written, so that
// `version: 1.10` stays "1.10" instead of the float 1.1.
var textFields = []string{FieldName, FieldVersion, FieldFeatures, FieldMode}

// keepLiteralText replaces decoded scalars of the app text fields with the
// scalar text found in the document.
func keepLiteralText(raw map[string]any, root *yaml.Node) {
	app, ok := raw[SectionApp].(map[string]any)
	if !ok {
		return
	}

	doc := resolveAlias(root)
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = resolveAlias(doc.Content[0])
	}
	appNode := mappingValue(doc, SectionApp)
	if appNode == nil {
		return
	}

	for _, field := range textFields {
		node := mappingValue(appNode, field)
		if node == nil {
			continue
		}
		switch node.Kind {
		case yaml.ScalarNode:
			if text, ok := literalText(node); ok {
				app[field] = text
			}
		case yaml.SequenceNode:
			items, ok := app[field].([]any)
			if !ok || len(items) != len(node.Content) {
				continue
			}
			for i, item := range node.Content {
				if text, ok := literalText(resolveAlias(item)); ok {
					items[i] = text
				}
			}
		}
	}
}

// mappingValue returns the value node stored under key, or nil.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return resolveAlias(node.Content[i+1])
		}
	}
	return nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

// literalText returns the text of a non-null scalar node.
func literalText(node *yaml.Node) (string, bool) {
	if node == nil || node.Kind != yaml.ScalarNode || node.ShortTag() == "!!null" {
		return "", false
	}
	return node.Value, true
}

func (yamlCodec) Encode(doc *document) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeaderComment)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type tomlCodec struct{}

func (tomlCodec) Name() string { return "toml" }

func (tomlCodec) Decode(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (tomlCodec) Encode(doc *document) ([]byte, error) {
	data, err := toml.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return append([]byte(configHeaderComment), data...), nil
}

// MarshalYAML renders state and aux as the YAML document Save would write,
// without the header comment. Used for display.
func MarshalYAML(state *DeviceState, aux AuxiliarySettings) ([]byte, error) {
	return yaml.Marshal(newDocument(state, aux))
}
