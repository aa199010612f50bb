package engine

import (
	"strings"
	"unicode"
)

// Clean applies the cleanup passes in order: collapse hyphen runs, strip
// leading and trailing hyphens, drop bracket groups that hold nothing but
// whitespace or hyphens, collapse whitespace runs, trim surrounding whitespace.
func Clean(s string) string {
	s = collapseRune(s, '-')
	s = strings.TrimLeft(s, "-")
	s = strings.TrimRight(s, "-")
	s = dropEmptyBrackets(s)
	s = collapseSpace(s)
	return strings.TrimSpace(s)
}

// collapseRune replaces every run of two or more r with a single r.
func collapseRune(s string, r byte) string {
	if !strings.Contains(s, string([]byte{r, r})) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == r && i > 0 && s[i-1] == r {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// collapseSpace replaces every run of two or more whitespace runes (spaces,
// tabs, newlines) with a single space. A lone tab or newline is kept.
func collapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	run := 0
	var pending rune
	flush := func() {
		switch {
		case run == 1:
			b.WriteRune(pending)
		case run > 1:
			b.WriteByte(' ')
		}
		run = 0
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			if run == 0 {
				pending = r
			}
			run++
			continue
		}
		flush()
		b.WriteRune(r)
	}
	flush()
	return b.String()
}

// dropEmptyBrackets removes `[...]` groups whose interior is only whitespace
// and hyphens. Groups are matched left to right without nesting; the result is
// not rescanned, so `[[ ]]` becomes `[]`.
func dropEmptyBrackets(s string) string {
	if !strings.Contains(s, "[") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] != '[' {
			b.WriteByte(s[i])
			i++
			continue
		}
		end, ok := emptyGroupEnd(s, i+1)
		if !ok {
			b.WriteByte(s[i])
			i++
			continue
		}
		i = end + 1
	}
	return b.String()
}

// emptyGroupEnd returns the index of the closing bracket when every rune from
// start up to it is whitespace or a hyphen.
func emptyGroupEnd(s string, start int) (int, bool) {
	for j, r := range s[start:] {
		switch {
		case r == ']':
			return start + j, true
		case r == '-' || unicode.IsSpace(r):
			continue
		default:
			return 0, false
		}
	}
	return 0, false
}
