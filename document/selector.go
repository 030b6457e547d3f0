package document

import (
	"fmt"
	"strings"
)

// Minimal selector language: simple selectors are a tag name, #id, .class,
// or a compound like tag.class#id; whitespace separates descendant steps.

type simpleSelector struct {
	tag     string
	id      string
	classes []string
}

func (s simpleSelector) matches(e *Element) bool {
	if s.tag != "" && e.Tag != s.tag {
		return false
	}
	if s.id != "" && e.ID != s.id {
		return false
	}
	for _, c := range s.classes {
		if !e.HasClass(c) {
			return false
		}
	}
	return true
}

func isNameByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' || b == '-' || b == '_'
}

func parseSimple(sel string) (simpleSelector, error) {
	var out simpleSelector
	i := 0
	for i < len(sel) {
		kind := byte(0)
		switch sel[i] {
		case '#', '.':
			kind = sel[i]
			i++
		}
		start := i
		for i < len(sel) && isNameByte(sel[i]) {
			i++
		}
		name := sel[start:i]
		if name == "" {
			return out, fmt.Errorf("selector %q: empty name at offset %d", sel, start)
		}
		switch kind {
		case '#':
			out.id = name
		case '.':
			out.classes = append(out.classes, name)
		default:
			if out.tag != "" {
				return out, fmt.Errorf("selector %q: duplicate tag", sel)
			}
			out.tag = name
		}
	}
	return out, nil
}

func parseSelector(sel string) ([]simpleSelector, error) {
	sel = strings.TrimSpace(sel)
	if sel == "" {
		return nil, fmt.Errorf("empty selector")
	}
	var steps []simpleSelector
	for _, part := range strings.Fields(sel) {
		s, err := parseSimple(part)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// queryAll collects descendants of root (root excluded) matching the selector
// chain, in document order
func queryAll(root *Element, steps []simpleSelector) []*Element {
	scope := []*Element{root}
	for _, step := range steps {
		var next []*Element
		seen := make(map[*Element]bool)
		for _, s := range scope {
			s.Walk(func(e *Element) bool {
				if e != s && step.matches(e) && !seen[e] {
					seen[e] = true
					next = append(next, e)
				}
				return true
			})
		}
		scope = next
		if len(scope) == 0 {
			break
		}
	}
	return scope
}

// QueryAll returns all descendants of root matching sel in document order
// An unparseable selector is an error; a valid selector matching nothing
// returns an empty slice
func QueryAll(root *Element, sel string) ([]*Element, error) {
	steps, err := parseSelector(sel)
	if err != nil {
		return nil, err
	}
	return queryAll(root, steps), nil
}

// Query returns the first descendant of root matching sel, or nil
func Query(root *Element, sel string) (*Element, error) {
	all, err := QueryAll(root, sel)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}
