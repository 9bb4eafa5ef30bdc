package kubeconfig

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Fields remembers the key order of a YAML mapping and the raw value of every
// key that has no typed field. Raw values are kept as nodes so that nested
// mappings keep their own order too.
type Fields struct {
	// keys holds the key nodes in file order, known and unknown alike
	keys    []*yaml.Node
	unknown map[string]*yaml.Node
}

// Keys returns the unmodelled keys in file order
func (f Fields) Keys() []string {
	var keys []string
	for _, k := range f.keys {
		if _, ok := f.unknown[k.Value]; ok {
			keys = append(keys, k.Value)
		}
	}
	return keys
}

// Decode decodes the raw value of an unmodelled key into out
func (f Fields) Decode(key string, out any) error {
	node, ok := f.unknown[key]
	if !ok {
		return fmt.Errorf("no field %q", key)
	}
	return node.Decode(out)
}

// Set stores value under an unmodelled key. New keys are appended.
func (f *Fields) Set(key string, value any) error {
	node := &yaml.Node{}
	if err := node.Encode(value); err != nil {
		return fmt.Errorf("failed to encode field %q: %w", key, err)
	}
	if f.unknown == nil {
		f.unknown = map[string]*yaml.Node{}
	}
	if _, ok := f.unknown[key]; !ok {
		f.keys = append(f.keys, scalarKey(key))
	}
	f.unknown[key] = node
	return nil
}

func scalarKey(key string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
}

// decodeMapping decodes node into out, a pointer to a struct whose typed
// fields carry yaml tags and whose Fields are tagged "-", and records the key
// order plus unknown values in fields.
func decodeMapping(node *yaml.Node, out any, fields *Fields) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if err := node.Decode(out); err != nil {
		return err
	}
	if node.Kind != yaml.MappingNode {
		return nil
	}

	known := fieldNames(reflect.TypeOf(out).Elem())
	*fields = Fields{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		fields.keys = append(fields.keys, key)
		if known[key.Value] {
			continue
		}
		if fields.unknown == nil {
			fields.unknown = map[string]*yaml.Node{}
		}
		fields.unknown[key.Value] = value
	}
	return nil
}

// encodeMapping encodes in, a struct shaped like the ones decodeMapping
// accepts, laying keys out in the order recorded in fields. Typed keys that
// encode to nothing (omitempty) are dropped; typed keys not seen before are
// appended in declaration order.
func encodeMapping(in any, fields Fields) (*yaml.Node, error) {
	typed := &yaml.Node{}
	if err := typed.Encode(in); err != nil {
		return nil, err
	}

	encoded := make(map[string]*yaml.Node, len(typed.Content)/2)
	for i := 0; i+1 < len(typed.Content); i += 2 {
		encoded[typed.Content[i].Value] = typed.Content[i+1]
	}

	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	placed := make(map[string]bool, len(fields.keys))
	for _, key := range fields.keys {
		if placed[key.Value] {
			continue
		}
		if value, ok := fields.unknown[key.Value]; ok {
			out.Content = append(out.Content, key, value)
			placed[key.Value] = true
			continue
		}
		if value, ok := encoded[key.Value]; ok {
			out.Content = append(out.Content, key, value)
			placed[key.Value] = true
		}
	}
	for i := 0; i+1 < len(typed.Content); i += 2 {
		if !placed[typed.Content[i].Value] {
			out.Content = append(out.Content, typed.Content[i], typed.Content[i+1])
		}
	}
	return out, nil
}

var fieldNameCache sync.Map

// fieldNames returns the yaml keys of t's tagged fields
func fieldNames(t reflect.Type) map[string]bool {
	if cached, ok := fieldNameCache.Load(t); ok {
		return cached.(map[string]bool)
	}

	names := map[string]bool{}
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("yaml")
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}
		names[name] = true
	}
	fieldNameCache.Store(t, names)
	return names
}
