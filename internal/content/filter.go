// Package content screens free-text fields for spam and contact-leak tokens.
package content

import "strings"

// Filter rejects text containing any token from a static denylist.
type Filter struct {
	tokens []string
}

var defaultTokens = []string{"vpn", "http", "arturshi", "🔒", "🔥"}

// NewFilter builds a filter with the default denylist.
func NewFilter() *Filter {
	return NewFilterTokens(defaultTokens)
}

// NewFilterTokens builds a filter from the provided tokens. Matching is
// case-insensitive substring containment.
func NewFilterTokens(tokens []string) *Filter {
	lowered := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		lowered = append(lowered, t)
	}
	return &Filter{tokens: lowered}
}

// Hit reports whether any field contains a denylisted token.
func (f *Filter) Hit(fields ...string) bool {
	for _, field := range fields {
		lowered := strings.ToLower(field)
		for _, token := range f.tokens {
			if strings.Contains(lowered, token) {
				return true
			}
		}
	}
	return false
}
