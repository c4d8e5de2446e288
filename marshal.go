package packet

import (
	"bytes"
	"fmt"
	"math"

	"github.com/goccy/go-yaml"
)

// MarshalJSON implements json.Marshaler. The canonical text is valid JSON.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}

	return Format(n, nil)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Node) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("%w: null is not a packet", ErrInvalidFormat)
	}

	parsed, err := Parse(data, &ParseOptions{Strict: true})
	if err != nil {
		return err
	}

	attached := n.attached
	*n = *parsed
	n.attached = attached
	return nil
}

// MarshalYAML implements yaml.InterfaceMarshaler.
func (n *Node) MarshalYAML() (any, error) {
	if n == nil {
		return nil, nil
	}

	return toAny(n), nil
}

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (n *Node) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}

	parsed, err := fromAnyPacket(v)
	if err != nil {
		return err
	}

	attached := n.attached
	*n = *parsed
	n.attached = attached
	return nil
}

// ToYAML renders a packet as a YAML sequence.
func ToYAML(n *Node) ([]byte, error) {
	if n == nil {
		return nil, errNilNode
	}

	return yaml.Marshal(n)
}

// FromYAML parses a packet from a YAML sequence.
func FromYAML(data []byte) (*Node, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}

	return fromAnyPacket(v)
}

// toAny converts a node to plain Go values.
func toAny(n *Node) any {
	if n.kind == KindInteger {
		return n.value
	}

	out := make([]any, len(n.children))
	for i, c := range n.children {
		out[i] = toAny(c)
	}

	return out
}

// fromAnyPacket converts decoded YAML to a packet. The root must be a sequence.
func fromAnyPacket(v any) (*Node, error) {
	if _, ok := v.([]any); !ok {
		return nil, fmt.Errorf("%w: packet must be a sequence, got %T", ErrInvalidFormat, v)
	}

	return fromAny(v)
}

// fromAny converts a decoded YAML value to a node.
func fromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case []any:
		n := &Node{kind: KindList, children: make([]*Node, 0, len(x))}
		for _, item := range x {
			c, err := fromAny(item)
			if err != nil {
				return nil, err
			}
			c.attached = true
			n.children = append(n.children, c)
		}
		return n, nil

	case int:
		return intNode(int64(x))
	case int64:
		return intNode(x)
	case uint64:
		if x > math.MaxInt32 {
			return nil, fmt.Errorf("%w: integer %d out of range", ErrInvalidFormat, x)
		}
		return Int(int32(x)), nil
	case float64:
		if x != math.Trunc(x) {
			return nil, fmt.Errorf("%w: %v is not an integer", ErrInvalidFormat, x)
		}
		if x < math.MinInt32 || x > math.MaxInt32 {
			return nil, fmt.Errorf("%w: integer %v out of range", ErrInvalidFormat, x)
		}
		return Int(int32(x)), nil

	default:
		return nil, fmt.Errorf("%w: unsupported value of type %T", ErrInvalidFormat, v)
	}
}

// intNode creates an integer leaf after a range check.
func intNode(v int64) (*Node, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return nil, fmt.Errorf("%w: integer %d out of range", ErrInvalidFormat, v)
	}

	return Int(int32(v)), nil
}
