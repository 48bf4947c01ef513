package matchkey

import (
	"strconv"
	"strings"

	"csvdiff/core/failure"
)

// Field is one component of a composite key.
type Field struct {
	// Index is the 0-based column index.
	Index int
	// Width is the zero-padding width; 0 means no padding.
	Width int
}

func (f Field) String() string {
	if f.Width > 0 {
		return strconv.Itoa(f.Index) + ":" + strconv.Itoa(f.Width)
	}
	return strconv.Itoa(f.Index)
}

// Spec is the ordered list of key fields.
type Spec []Field

// ParseSpec parses "INDEX[:WIDTH],..." such as "0:8,3".
func ParseSpec(text string) (Spec, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &failure.Error{Kind: failure.KindInvalidKeySpec, Value: text}
	}

	parts := strings.Split(text, ",")
	spec := make(Spec, 0, len(parts))
	for _, part := range parts {
		field, err := parseField(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		spec = append(spec, field)
	}
	return spec, nil
}

func parseField(text string) (Field, error) {
	var elements []string
	for _, e := range strings.Split(text, ":") {
		if e != "" {
			elements = append(elements, e)
		}
	}
	if len(elements) == 0 || len(elements) > 2 {
		return Field{}, &failure.Error{Kind: failure.KindInvalidKeySpec, Value: text}
	}

	index, err := parseNonNegative(elements[0])
	if err != nil {
		return Field{}, &failure.Error{Kind: failure.KindInvalidKeySpec, Value: text}
	}

	width := 0
	if len(elements) == 2 {
		width, err = parseNonNegative(elements[1])
		if err != nil {
			return Field{}, &failure.Error{Kind: failure.KindInvalidKeySpec, Value: text}
		}
	}

	return Field{Index: index, Width: width}, nil
}

// parseNonNegative accepts ASCII digits only; signs and spaces are rejected.
func parseNonNegative(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

// Indices returns the column indices in key order.
func (s Spec) Indices() []int {
	indices := make([]int, len(s))
	for i, f := range s {
		indices[i] = f.Index
	}
	return indices
}

func (s Spec) String() string {
	parts := make([]string, len(s))
	for i, f := range s {
		parts[i] = f.String()
	}
	return strings.Join(parts, ",")
}
