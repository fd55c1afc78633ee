package tmuxp

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rofi-tmuxp/rofi-tmuxp/internal/errors"
)

// Config is one parsed tmuxp workspace file. Only SessionNameKey is
// interpreted; every other key is carried through untouched.
type Config map[string]any

// SessionNameKey is the field naming the tmux session a workspace creates.
const SessionNameKey = "session_name"

// SessionName returns the configured session name. ok is false when the key
// is absent, not a string, or empty.
func (c Config) SessionName() (name string, ok bool) {
	name, ok = c[SessionNameKey].(string)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// coreTags are the YAML 1.2 core schema tags plus the merge key. A node
// tagged with anything else is rejected instead of being constructed.
var coreTags = map[string]bool{
	"!":           true,
	"!!str":       true,
	"!!int":       true,
	"!!float":     true,
	"!!bool":      true,
	"!!null":      true,
	"!!timestamp": true,
	"!!binary":    true,
	"!!map":       true,
	"!!seq":       true,
	"!!merge":     true,
}

// ReadFile reads and parses a workspace file. JSON files go through the same
// YAML parser.
func ReadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigReadFailed(path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.ConfigParseFailed(path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML or JSON document in safe mode. The top-level value
// must be a mapping; an empty document yields an empty Config.
func Parse(data []byte) (Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return Config{}, nil
	}
	if err := checkTags(&doc); err != nil {
		return nil, err
	}

	root := &doc
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return Config{}, nil
		}
		root = doc.Content[0]
	}
	switch {
	case root.Kind == yaml.MappingNode:
	case root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null":
		return Config{}, nil
	default:
		return nil, fmt.Errorf("line %d: expected a mapping at the top level, got %s", root.Line, kindName(root.Kind))
	}

	dedupeKeys(root)
	cfg := Config{}
	if err := root.Decode(&cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// checkTags walks the node tree and fails on the first tag outside
// coreTags. Alias targets are checked where their anchor is defined.
func checkTags(n *yaml.Node) error {
	if n.Kind != yaml.DocumentNode && n.Kind != yaml.AliasNode {
		if tag := n.ShortTag(); !coreTags[tag] {
			return errors.UnsafeTag(tag, n.Line, n.Column)
		}
	}
	for _, child := range n.Content {
		if err := checkTags(child); err != nil {
			return err
		}
	}
	return nil
}

// dedupeKeys collapses repeated scalar keys in every mapping so the last
// value wins, as tmuxp's own JSON and YAML loaders do. yaml.v3 would reject
// them outright. Merge keys are left alone.
func dedupeKeys(n *yaml.Node) {
	if n.Kind == yaml.MappingNode {
		seen := make(map[string]int, len(n.Content)/2)
		content := make([]*yaml.Node, 0, len(n.Content))
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			if key.Kind == yaml.ScalarNode && key.ShortTag() != "!!merge" {
				id := key.ShortTag() + ":" + key.Value
				if at, ok := seen[id]; ok {
					content[at+1] = val
					continue
				}
				seen[id] = len(content)
			}
			content = append(content, key, val)
		}
		n.Content = content
	}
	if n.Kind == yaml.AliasNode {
		return
	}
	for _, child := range n.Content {
		dedupeKeys(child)
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.MappingNode:
		return "mapping"
	default:
		return "document"
	}
}
