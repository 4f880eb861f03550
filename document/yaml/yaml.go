// Package yaml converts document trees to and from YAML.
//
// Mapping order is preserved in both directions. Aliases are resolved, and
// scalars are typed with the YAML 1.2 core schema tags yaml.v3 resolves.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/awslabs/record-go/document"
)

// Decode parses the first YAML document in p.
func Decode(p []byte) (document.Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(p))

	var node yaml.Node
	if err := dec.Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return document.Value{}, fmt.Errorf("empty YAML document")
		}
		return document.Value{}, err
	}

	return FromNode(&node)
}

// Encode returns v as a YAML document.
func Encode(v document.Value) ([]byte, error) {
	node, err := ToNode(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromNode converts a decoded yaml.Node into a document tree.
func FromNode(n *yaml.Node) (document.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return document.Null(), nil
		}
		return FromNode(n.Content[0])

	case yaml.AliasNode:
		if n.Alias == nil {
			return document.Value{}, fmt.Errorf("line %d: dangling alias", n.Line)
		}
		return FromNode(n.Alias)

	case yaml.MappingNode:
		obj := document.NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return document.Value{}, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
			}
			val, err := FromNode(v)
			if err != nil {
				return document.Value{}, err
			}
			obj.Set(k.Value, val)
		}
		return document.ObjectValue(obj), nil

	case yaml.SequenceNode:
		arr := make([]document.Value, 0, len(n.Content))
		for _, c := range n.Content {
			val, err := FromNode(c)
			if err != nil {
				return document.Value{}, err
			}
			arr = append(arr, val)
		}
		return document.Array(arr...), nil

	case yaml.ScalarNode:
		return scalar(n)

	default:
		return document.Value{}, fmt.Errorf("line %d: unsupported YAML node kind %v", n.Line, n.Kind)
	}
}

func scalar(n *yaml.Node) (document.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return document.Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return document.Value{}, err
		}
		return document.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return document.Value{}, err
		}
		return document.Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return document.Value{}, err
		}
		// .nan and .inf have no JSON number form, keep them as the strings
		// JSON protocols use for them.
		switch {
		case math.IsNaN(f):
			return document.String("NaN"), nil
		case math.IsInf(f, 1):
			return document.String("Infinity"), nil
		case math.IsInf(f, -1):
			return document.String("-Infinity"), nil
		}
		return document.Float(f), nil
	default:
		return document.String(n.Value), nil
	}
}

// ToNode converts a document tree into a yaml.Node.
func ToNode(v document.Value) (*yaml.Node, error) {
	switch v.Kind() {
	case document.KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case document.KindBool:
		b, _ := v.AsBool()
		s := "false"
		if b {
			s = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: s}, nil
	case document.KindNumber:
		n, _ := v.AsNumber()
		tag := "!!int"
		if _, err := n.Int64(); err != nil {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: n.String()}, nil
	case document.KindString:
		s, _ := v.AsString()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}, nil
	case document.KindArray:
		arr, _ := v.AsArray()
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range arr {
			c, err := ToNode(e)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, c)
		}
		return node, nil
	case document.KindObject:
		obj, _ := v.AsObject()
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		var err error
		obj.Range(func(key string, val document.Value) bool {
			var c *yaml.Node
			if c, err = ToNode(val); err != nil {
				return false
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, c)
			return true
		})
		if err != nil {
			return nil, err
		}
		return node, nil
	default:
		return nil, fmt.Errorf("unknown document kind %v", v.Kind())
	}
}
