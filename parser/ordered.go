package parser

import (
	"fmt"

	"go.yaml.in/yaml/v4"
)

// OrderedMap is a string-keyed mapping that remembers the order keys appeared
// in the source document. The zero value is an empty map.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// Keys returns the keys in document order.
func (m *OrderedMap[V]) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Get returns the value stored under key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	return len(m.keys)
}

// Set stores value under key. New keys are appended; existing keys keep their position.
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// UnmarshalYAML decodes a mapping node, keeping key order.
// Duplicate keys keep their first position and the last value.
func (m *OrderedMap[V]) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if isNull(node) {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("parser: line %d: expected a mapping, got %s", node.Line, kindName(node.Kind))
	}

	m.keys = make([]string, 0, len(node.Content)/2)
	m.values = make(map[string]V, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var value V
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("parser: decoding %q: %w", key, err)
		}
		m.Set(key, value)
	}
	return nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node == nil || node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null")
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "empty node"
	}
}
