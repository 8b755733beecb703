// Package propfile reads and writes line-oriented key=value properties files.
//
// The syntax is the Java properties format: '#' and '!' comments, '=', ':'
// or whitespace separators, backslash escapes, \uXXXX sequences and line
// continuations. Files are treated as UTF-8 and ${key} references are kept
// verbatim. A line starting with a separator defines the empty key.
package propfile

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/magiconair/properties"
)

var loader = properties.Loader{
	Encoding:         properties.UTF8,
	DisableExpansion: true,
}

// emptyKeyStandIns are runes that stand in for the empty key while the
// input is parsed, since the parser requires every key to be non-empty.
// The first one the input cannot produce on its own is used.
var emptyKeyStandIns = []rune{0x0000, 0xffff, 0xfffe}

// Decode parses properties from r.
func Decode(r io.Reader) (map[string]string, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading properties: %w", err)
	}

	standIn, buf := markEmptyKeys(buf)

	p, err := loader.LoadBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("error parsing properties: %w", err)
	}

	props := p.Map()
	if standIn != "" {
		if v, ok := props[standIn]; ok {
			props[""] = v
			delete(props, standIn)
		}
	}

	return props, nil
}

// markEmptyKeys prefixes every logical line that starts with '=' or ':' with
// an escaped stand-in key and returns that key. It returns "" and buf
// unchanged when no such line exists or no stand-in is free.
func markEmptyKeys(buf []byte) (string, []byte) {
	text := string(buf)
	standIn, ok := freeStandIn(text)
	if !ok {
		return "", buf
	}
	escaped := fmt.Sprintf(`\u%04x`, standIn)

	lines := strings.Split(text, "\n")
	marked := false
	continued := false
	for i, line := range lines {
		if continued {
			continued = continues(line)
			continue
		}

		body := strings.TrimLeft(line, " \t\f")
		switch {
		case body == "", body[0] == '#', body[0] == '!':
			continue
		case body[0] == '=', body[0] == ':':
			lines[i] = line[:len(line)-len(body)] + escaped + body
			marked = true
		}
		continued = continues(line)
	}

	if !marked {
		return "", buf
	}
	return string(standIn), []byte(strings.Join(lines, "\n"))
}

func freeStandIn(text string) (rune, bool) {
	lower := strings.ToLower(text)
	for _, r := range emptyKeyStandIns {
		if !strings.ContainsRune(text, r) && !strings.Contains(lower, fmt.Sprintf(`\u%04x`, r)) {
			return r, true
		}
	}
	return 0, false
}

// continues reports whether line ends in an odd number of backslashes.
func continues(line string) bool {
	line = strings.TrimSuffix(line, "\r")
	n := len(line) - len(strings.TrimRight(line, `\`))
	return n%2 == 1
}

// Encode writes props to w as "key=value" lines in lexical key order,
// escaping keys and values so that Decode returns the same map.
func Encode(w io.Writer, props map[string]string) error {
	var b strings.Builder
	for _, key := range slices.Sorted(maps.Keys(props)) {
		b.WriteString(escape(key, true))
		b.WriteByte('=')
		b.WriteString(escape(props[key], false))
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("error writing properties: %w", err)
	}

	return nil
}

// escape applies the properties-file escapes. Keys additionally escape every
// separator character and a leading comment character.
func escape(s string, isKey bool) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\f':
			b.WriteString(`\f`)
		case r == ' ' && (isKey || i == 0):
			b.WriteString(`\ `)
		case isKey && (r == '=' || r == ':'):
			b.WriteByte('\\')
			b.WriteRune(r)
		case isKey && i == 0 && (r == '#' || r == '!'):
			b.WriteByte('\\')
			b.WriteRune(r)
		case r <= 0xffff && !unicode.IsPrint(r):
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
