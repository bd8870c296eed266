package codec

import (
	"gopkg.in/yaml.v3"

	tabwalk "github.com/tabwalk/tabwalk"
)

// FromYAML decodes a YAML document into a tabwalk value. Mappings become
// Tables in document order, sequences become Tables keyed 1..n, scalars
// decode through yaml's native tag resolution.
func FromYAML(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, parseIssue(-1, "%v", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	return yamlValue(doc.Content[0], map[*yaml.Node]bool{})
}

// yamlValue walks the node tree rather than unmarshaling into maps; the node
// form is what preserves mapping order. busy guards alias chains that loop
// back into their own anchor.
func yamlValue(n *yaml.Node, busy map[*yaml.Node]bool) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		out := tabwalk.NewTable()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, err := yamlValue(n.Content[i], busy)
			if err != nil {
				return nil, err
			}
			val, err := yamlValue(n.Content[i+1], busy)
			if err != nil {
				return nil, err
			}
			if key == nil {
				return nil, parseIssue(-1, "null mapping key at line %d", n.Content[i].Line)
			}
			out.Set(key, val)
		}
		return out, nil
	case yaml.SequenceNode:
		out := tabwalk.NewTable()
		for i, elem := range n.Content {
			val, err := yamlValue(elem, busy)
			if err != nil {
				return nil, err
			}
			out.Set(i+1, val) // null elements stay gaps
		}
		return out, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, parseIssue(-1, "bad scalar at line %d: %v", n.Line, err)
		}
		return v, nil
	case yaml.AliasNode:
		if busy[n.Alias] {
			return nil, parseIssue(-1, "cyclic alias at line %d", n.Line)
		}
		busy[n.Alias] = true
		v, err := yamlValue(n.Alias, busy)
		delete(busy, n.Alias)
		return v, err
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return yamlValue(n.Content[0], busy)
	}
	return nil, parseIssue(-1, "unsupported yaml node kind %d at line %d", n.Kind, n.Line)
}

// ToYAML encodes a tabwalk value as YAML, lowering Tables the same way
// ToJSON does.
func ToYAML(v any) ([]byte, error) {
	n, err := toNative(v, map[any]bool{})
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(n)
}
