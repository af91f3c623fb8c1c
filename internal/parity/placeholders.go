package parity

import (
	"regexp"
	"strconv"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`%(?:\d+\$)?[ds]`)

// Placeholders is a multiset of format tokens found in one text.
type Placeholders struct {
	counts map[string]int
	order  []string
}

// ExtractPlaceholders counts the %s, %d, %1$s style tokens in text.
func ExtractPlaceholders(text string) Placeholders {
	matches := placeholderPattern.FindAllString(text, -1)
	p := Placeholders{counts: make(map[string]int, len(matches))}
	for _, token := range matches {
		if p.counts[token] == 0 {
			p.order = append(p.order, token)
		}
		p.counts[token]++
	}
	return p
}

// Count returns how many times token occurs.
func (p Placeholders) Count(token string) int {
	return p.counts[token]
}

// Len returns the number of distinct tokens.
func (p Placeholders) Len() int {
	return len(p.counts)
}

// Tokens returns the distinct tokens in first-occurrence order.
func (p Placeholders) Tokens() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Counts returns a copy of the token counts.
func (p Placeholders) Counts() map[string]int {
	out := make(map[string]int, len(p.counts))
	for token, n := range p.counts {
		out[token] = n
	}
	return out
}

// Equal reports whether both multisets hold the same tokens with the same
// counts. Token order is ignored.
func (p Placeholders) Equal(other Placeholders) bool {
	if len(p.counts) != len(other.counts) {
		return false
	}
	for token, n := range p.counts {
		if other.counts[token] != n {
			return false
		}
	}
	return true
}

// String renders the multiset as {%s:1, %d:2} in first-occurrence order.
func (p Placeholders) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, token := range p.order {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(token)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(p.counts[token]))
	}
	b.WriteByte('}')
	return b.String()
}
