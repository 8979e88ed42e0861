package document

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// decodeYAML: ключи mapping становятся именами узлов, элементы последовательности —
// повторяющимися узлами с именем ключа, скаляры — текстом (сырое значение), null — отсутствием узла.
func decodeYAML(r io.Reader) (*Node, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}

	root := &Node{}
	root.Children = yamlChildren("", doc.Content[0])
	if doc.Content[0].Kind == yaml.ScalarNode && !isYAMLNull(doc.Content[0]) {
		root.Text = doc.Content[0].Value
	}
	return root, nil
}

// yamlChildren — узлы, которые значение v даёт родителю под ключом name.
func yamlChildren(name string, v *yaml.Node) []*Node {
	if v.Kind == yaml.AliasNode && v.Alias != nil {
		v = v.Alias
	}

	switch v.Kind {
	case yaml.MappingNode:
		var out []*Node
		for i := 0; i+1 < len(v.Content); i += 2 {
			key, val := v.Content[i], v.Content[i+1]
			out = append(out, yamlNodes(key.Value, val)...)
		}
		return out
	case yaml.SequenceNode:
		var out []*Node
		for _, item := range v.Content {
			out = append(out, yamlNodes(name, item)...)
		}
		return out
	default:
		return nil
	}
}

// yamlNodes — узлы с именем name для значения v.
func yamlNodes(name string, v *yaml.Node) []*Node {
	if v.Kind == yaml.AliasNode && v.Alias != nil {
		v = v.Alias
	}

	switch v.Kind {
	case yaml.ScalarNode:
		if isYAMLNull(v) {
			return nil
		}
		return []*Node{{Name: name, Text: v.Value}}
	case yaml.SequenceNode:
		var out []*Node
		for _, item := range v.Content {
			out = append(out, yamlNodes(name, item)...)
		}
		return out
	default:
		return []*Node{{Name: name, Children: yamlChildren(name, v)}}
	}
}

func isYAMLNull(v *yaml.Node) bool {
	return v.Kind == yaml.ScalarNode && v.Tag == "!!null"
}
