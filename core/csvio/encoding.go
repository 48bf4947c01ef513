package csvio

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// aliases maps common codec names that neither index knows.
var aliases = map[string]string{
	"utf8":      "utf-8",
	"utf-8-sig": "utf-8",
	"utf8-sig":  "utf-8",
	"cp932":     "windows-31j",
	"ms932":     "windows-31j",
	"sjis":      "shift_jis",
	"eucjp":     "euc-jp",
	"latin1":    "iso-8859-1",
}

// LookupEncoding resolves an encoding name. WHATWG labels are tried first,
// then IANA names. An empty name means UTF-8.
func LookupEncoding(name string) (encoding.Encoding, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	if label == "" {
		return unicode.UTF8, nil
	}
	if alias, ok := aliases[label]; ok {
		label = alias
	}

	candidates := []string{label}
	if dashed := strings.ReplaceAll(label, "_", "-"); dashed != label {
		candidates = append(candidates, dashed)
	}

	for _, c := range candidates {
		if enc, err := htmlindex.Get(c); err == nil {
			return enc, nil
		}
	}
	for _, c := range candidates {
		if enc, err := ianaindex.IANA.Encoding(c); err == nil && enc != nil {
			return enc, nil
		}
	}

	return nil, fmt.Errorf("unknown encoding %q", name)
}

// EncodingName returns a display name for enc.
func EncodingName(enc encoding.Encoding) string {
	if name, err := htmlindex.Name(enc); err == nil {
		return name
	}
	if name, err := ianaindex.IANA.Name(enc); err == nil {
		return name
	}
	return fmt.Sprint(enc)
}

func decoder(enc encoding.Encoding) *encoding.Decoder {
	if enc == nil {
		enc = unicode.UTF8
	}
	return enc.NewDecoder()
}
