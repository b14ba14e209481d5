package dom

import (
	"fmt"
	"strings"
)

// compound is one selector alternative such as `button.primary[href]`.
type compound struct {
	kind    string
	id      string
	classes []string
	attrs   []attrTest
}

type attrTest struct {
	name     string
	value    string
	hasValue bool
}

// Selector is a parsed, comma-separated list of compound selectors.
type Selector struct {
	raw   string
	parts []compound
}

// ParseSelector parses selectors of the form `kind`, `#id`, `.class`,
// `[attr]`, `[attr=value]`, their compounds, and comma-separated lists.
func ParseSelector(raw string) (Selector, error) {
	sel := Selector{raw: raw}
	for _, alt := range strings.Split(raw, ",") {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			return Selector{}, fmt.Errorf("empty selector in %q", raw)
		}
		c, err := parseCompound(alt)
		if err != nil {
			return Selector{}, err
		}
		sel.parts = append(sel.parts, c)
	}
	return sel, nil
}

func parseCompound(s string) (compound, error) {
	var c compound
	i := 0
	for i < len(s) && !strings.ContainsRune("#.[", rune(s[i])) {
		i++
	}
	c.kind = s[:i]
	for i < len(s) {
		switch s[i] {
		case '#', '.':
			marker := s[i]
			j := i + 1
			for j < len(s) && !strings.ContainsRune("#.[", rune(s[j])) {
				j++
			}
			name := s[i+1 : j]
			if name == "" {
				return compound{}, fmt.Errorf("selector %q: empty name after %q", s, marker)
			}
			if marker == '#' {
				c.id = name
			} else {
				c.classes = append(c.classes, name)
			}
			i = j
		case '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return compound{}, fmt.Errorf("selector %q: unterminated attribute", s)
			}
			body := s[i+1 : i+end]
			name, value, hasValue := strings.Cut(body, "=")
			name = strings.TrimSpace(name)
			if name == "" {
				return compound{}, fmt.Errorf("selector %q: empty attribute name", s)
			}
			c.attrs = append(c.attrs, attrTest{
				name:     name,
				value:    strings.Trim(strings.TrimSpace(value), `"'`),
				hasValue: hasValue,
			})
			i += end + 1
		default:
			return compound{}, fmt.Errorf("selector %q: unexpected %q", s, s[i])
		}
	}
	return c, nil
}

// String returns the source text.
func (s Selector) String() string { return s.raw }

// Match reports whether el satisfies any alternative.
func (s Selector) Match(el *Element) bool {
	if el == nil {
		return false
	}
	for _, c := range s.parts {
		if c.match(el) {
			return true
		}
	}
	return false
}

func (c compound) match(el *Element) bool {
	if c.kind != "" && c.kind != "*" && string(el.kind) != c.kind {
		return false
	}
	if c.id != "" && el.id != c.id {
		return false
	}
	for _, class := range c.classes {
		if !el.HasClass(class) {
			return false
		}
	}
	for _, a := range c.attrs {
		v, ok := el.attrs[a.name]
		if !ok || (a.hasValue && v != a.value) {
			return false
		}
	}
	return true
}

// Matches reports whether e satisfies the selector. Invalid selectors match
// nothing.
func (e *Element) Matches(selector string) bool {
	sel, err := ParseSelector(selector)
	if err != nil {
		return false
	}
	return sel.Match(e)
}

// QueryAll returns the descendants of e matching selector in document order.
func (e *Element) QueryAll(selector string) []*Element {
	sel, err := ParseSelector(selector)
	if err != nil {
		return nil
	}
	var out []*Element
	for _, el := range e.Descendants() {
		if sel.Match(el) {
			out = append(out, el)
		}
	}
	return out
}

// Query returns the first descendant matching selector, or nil.
func (e *Element) Query(selector string) *Element {
	if found := e.QueryAll(selector); len(found) > 0 {
		return found[0]
	}
	return nil
}
