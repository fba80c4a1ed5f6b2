package dotpath

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	gyaml "github.com/goccy/go-yaml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedValue is returned when a value outside the scalar, list and
// map shapes reaches an encoder.
var ErrUnsupportedValue = errors.New("dotpath: unsupported value")

// DecodeJSON decodes a JSON document into a value, keeping object key
// order.
func DecodeJSON(b []byte) (interface{}, error) {
	v, err := decodeOrdered(b)
	if err != nil {
		return nil, fmt.Errorf("dotpath: invalid JSON: %w", err)
	}
	return v, nil
}

// DecodeYAML decodes a YAML document into a value, keeping mapping key
// order.
func DecodeYAML(b []byte) (interface{}, error) {
	v, err := decodeOrdered(b)
	if err != nil {
		return nil, fmt.Errorf("dotpath: invalid YAML: %w", err)
	}
	return v, nil
}

func decodeOrdered(b []byte) (interface{}, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, nil
	}
	var v interface{}
	if err := gyaml.UnmarshalWithOptions(b, &v, gyaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return normalizeNumbers(v), nil
}

// normalizeNumbers turns decoded integers into int where they fit.
func normalizeNumbers(v interface{}) interface{} {
	switch t := v.(type) {
	case uint64:
		if t <= math.MaxInt64 {
			return int(t)
		}
		return t
	case int64:
		return int(t)
	case []interface{}:
		for i, e := range t {
			t[i] = normalizeNumbers(e)
		}
		return t
	case gyaml.MapSlice:
		for i := range t {
			t[i].Key = normalizeNumbers(t[i].Key)
			t[i].Value = normalizeNumbers(t[i].Value)
		}
		return t
	case map[string]interface{}:
		for k, e := range t {
			t[k] = normalizeNumbers(e)
		}
		return t
	default:
		return t
	}
}

// EncodeJSON renders v as compact JSON, keeping map key order.
func EncodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v interface{}) error {
	switch t := v.(type) {
	case []interface{}:
		buf.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case gyaml.MapSlice:
		buf.WriteByte('{')
		for i, it := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONMember(buf, keyString(it.Key), it.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case map[string]interface{}:
		buf.WriteByte('{')
		for i, k := range sortedKeys(t) {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONMember(buf, k, t[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case nil, bool, string, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, json.Number:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("dotpath: encode JSON: %w", err)
		}
		buf.Write(b)
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

func writeJSONMember(buf *bytes.Buffer, key string, v interface{}) error {
	kb, err := json.Marshal(key)
	if err != nil {
		return fmt.Errorf("dotpath: encode JSON key: %w", err)
	}
	buf.Write(kb)
	buf.WriteByte(':')
	return writeJSON(buf, v)
}

// EncodeYAML renders v as block YAML with a two-space indent, keeping map
// key order.
func EncodeYAML(v interface{}) ([]byte, error) {
	return EncodeYAMLIndent(v, 2)
}

// EncodeYAMLIndent is EncodeYAML with a caller-chosen indent width.
func EncodeYAMLIndent(v interface{}, indent int) ([]byte, error) {
	if indent < 1 {
		indent = 2
	}
	n, err := toNode(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(n); err != nil {
		return nil, fmt.Errorf("dotpath: encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("dotpath: encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// ToNode converts a value into a yaml.v3 node tree. Values the encoder
// cannot represent are rendered with fmt as strings.
func ToNode(v interface{}) *yaml.Node {
	n, err := toNode(v)
	if err != nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: fmt.Sprint(v)}
	}
	return n
}

func toNode(v interface{}) (*yaml.Node, error) {
	switch t := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(t)}, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t}, nil
	case float32:
		return floatNode(float64(t)), nil
	case float64:
		return floatNode(t), nil
	case json.Number:
		if strings.ContainsAny(string(t), ".eE") {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: t.String()}, nil
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: t.String()}, nil
	case []interface{}:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range t {
			c, err := toNode(e)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, c)
		}
		return seq, nil
	case gyaml.MapSlice:
		mp := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, it := range t {
			k, err := toNode(it.Key)
			if err != nil {
				return nil, err
			}
			c, err := toNode(it.Value)
			if err != nil {
				return nil, err
			}
			mp.Content = append(mp.Content, k, c)
		}
		return mp, nil
	case map[string]interface{}:
		mp := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range sortedKeys(t) {
			c, err := toNode(t[k])
			if err != nil {
				return nil, err
			}
			mp.Content = append(mp.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, c)
		}
		return mp, nil
	}
	if _, ok := numericKey(v); ok {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(v)}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

func floatNode(f float64) *yaml.Node {
	switch {
	case math.IsNaN(f):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".nan"}
	case math.IsInf(f, 1):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".inf"}
	case math.IsInf(f, -1):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: "-.inf"}
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: s}
}

// FromNode converts a yaml.v3 node tree into a value. Document nodes are
// unwrapped and aliases resolved; mappings become ordered maps.
func FromNode(n *yaml.Node) (interface{}, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return FromNode(n.Content[0])
	case yaml.AliasNode:
		return FromNode(n.Alias)
	case yaml.ScalarNode:
		var v interface{}
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("dotpath: decode scalar at line %d: %w", n.Line, err)
		}
		return normalizeNumbers(v), nil
	case yaml.SequenceNode:
		out := make([]interface{}, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := FromNode(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := make(gyaml.MapSlice, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, err := FromNode(n.Content[i])
			if err != nil {
				return nil, err
			}
			v, err := FromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out = append(out, gyaml.MapItem{Key: k, Value: v})
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: yaml node kind %d", ErrUnsupportedValue, n.Kind)
}
