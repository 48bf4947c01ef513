package matchkey

import (
	"strings"
	"unicode/utf8"

	"csvdiff/core/failure"
)

// Separator precedes every key field and terminates the key.
// It sorts below every printable character, so a key that is a prefix of
// another sorts first.
const Separator = "\x1f\x1f"

// Key is a composite key or the End marker.
type Key struct {
	value string
	end   bool
}

// End marks an exhausted stream. It is greater than every real key.
var End = Key{end: true}

// RealKey wraps an already encoded key string.
func RealKey(encoded string) Key {
	return Key{value: encoded}
}

// IsEnd reports whether k is the End marker.
func (k Key) IsEnd() bool { return k.end }

// Encoded returns the raw encoded form; empty for End.
func (k Key) Encoded() string { return k.value }

// Compare returns -1, 0 or +1. End equals End and exceeds everything else.
func (k Key) Compare(other Key) int {
	switch {
	case k.end && other.end:
		return 0
	case k.end:
		return 1
	case other.end:
		return -1
	}
	return strings.Compare(k.value, other.value)
}

func (k Key) String() string {
	if k.end {
		return "<END>"
	}
	return strings.Join(Decode(k), "|")
}

// Codec encodes rows into keys according to a Spec.
type Codec struct {
	spec Spec
}

// NewCodec returns a codec for spec.
func NewCodec(spec Spec) *Codec {
	return &Codec{spec: spec}
}

// Spec returns the key spec.
func (c *Codec) Spec() Spec { return c.spec }

// Encode builds the composite key for row.
func (c *Codec) Encode(row []string) (Key, error) {
	var b strings.Builder
	b.WriteString(Separator)
	for _, f := range c.spec {
		if f.Index >= len(row) {
			return Key{}, &failure.Error{
				Kind:    failure.KindIndexOutOfRange,
				Index:   f.Index,
				Columns: len(row),
				Row:     row,
				KeySpec: c.spec.String(),
			}
		}
		b.WriteString(pad(row[f.Index], f.Width))
		b.WriteString(Separator)
	}
	return Key{value: b.String()}, nil
}

func pad(value string, width int) string {
	n := utf8.RuneCountInString(value)
	if width <= 0 || n >= width {
		return value
	}
	return strings.Repeat("0", width-n) + value
}

// Decode splits a key back into its padded field values.
func Decode(k Key) []string {
	if k.end {
		return nil
	}
	body := strings.TrimPrefix(k.value, Separator)
	body = strings.TrimSuffix(body, Separator)
	return strings.Split(body, Separator)
}
