package ui

import (
	"strings"
)

// ParseCSS parses a primitive CSS file: selectors .class or #id (optionally a
// comma-separated list) and blocks of "key: value;". No combinators, no
// @rules. Later rules override earlier for the same selector.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{Rules: nil}
	content = stripCSSComments(content)
	for {
		rules, rest, ok := parseOneBlock(content)
		if !ok {
			break
		}
		sheet.Rules = append(sheet.Rules, rules...)
		content = rest
	}
	return sheet, nil
}

func stripCSSComments(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if i+1 < len(s) && s[i] == '/' && s[i+1] == '*' {
			j := i + 2
			for j+1 < len(s) && !(s[j] == '*' && s[j+1] == '/') {
				j++
			}
			if j+1 < len(s) {
				j += 2
			}
			i = j
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// parseOneBlock finds the next "selector { ... }" and returns one rule per
// selector in the comma list, plus the rest of the string.
func parseOneBlock(s string) ([]Rule, string, bool) {
	open := strings.Index(s, "{")
	if open == -1 {
		return nil, "", false
	}
	selectors := splitSelectors(s[:open])
	close := findMatchingBrace(s, open)
	if close == -1 {
		return nil, "", false
	}
	if len(selectors) == 0 {
		// Skip this block and continue after the matching "}"
		return parseOneBlock(s[close+1:])
	}
	body := strings.TrimSpace(s[open+1 : close])
	props := parseDeclarations(body)
	rules := make([]Rule, 0, len(selectors))
	for _, sel := range selectors {
		rules = append(rules, Rule{Selector: sel, Props: props})
	}
	rest := strings.TrimSpace(s[close+1:])
	return rules, rest, true
}

// splitSelectors splits ".a, .b" into valid selectors, dropping anything that
// is not a class or id selector.
func splitSelectors(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		sel := strings.TrimSpace(part)
		if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
			continue
		}
		out = append(out, sel)
	}
	return out
}

func findMatchingBrace(s string, openIdx int) int {
	depth := 1
	for i := openIdx + 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		colon := strings.Index(part, ":")
		if colon == -1 {
			continue
		}
		k := strings.TrimSpace(part[:colon])
		v := strings.TrimSpace(part[colon+1:])
		if k != "" {
			props[k] = v
		}
	}
	return props
}
