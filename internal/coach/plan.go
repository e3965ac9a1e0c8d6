package coach

import (
	"regexp"
	"strings"
)

var (
	protocolHeaderRe = regexp.MustCompile(`(?i)\*\*\s*daily protocol\s*\*\*[ \t]*:?`)
	nextHeaderRe     = regexp.MustCompile(`\n\s*\*\*[^*\n]+\*\*`)
	listItemRe       = regexp.MustCompile(`^\s*(?:\d+[.)]|[-*•])\s+(.+?)\s*$`)
	inlineNumberRe   = regexp.MustCompile(`\d+[.)]\s+`)
)

// ParseDailyProtocol pulls the action items listed under the "**Daily Protocol**"
// header of a generated plan. It returns nil when the header is absent.
func ParseDailyProtocol(plan string) []string {
	loc := protocolHeaderRe.FindStringIndex(plan)
	if loc == nil {
		return nil
	}
	section := plan[loc[1]:]
	if end := nextHeaderRe.FindStringIndex(section); end != nil {
		section = section[:end[0]]
	}

	var items []string
	for _, line := range strings.Split(section, "\n") {
		if len(inlineNumberRe.FindAllStringIndex(line, 2)) > 1 {
			items = appendChunks(items, line)
			continue
		}
		if m := listItemRe.FindStringSubmatch(line); m != nil {
			if item := cleanItem(m[1]); item != "" {
				items = append(items, item)
			}
		}
	}
	if len(items) > 0 {
		return items
	}
	return appendChunks(items, section)
}

// appendChunks splits "1. a 2. b 3. c" style text into items.
func appendChunks(items []string, text string) []string {
	for _, chunk := range inlineNumberRe.Split(text, -1) {
		if item := cleanItem(chunk); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func cleanItem(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.TrimRight(strings.TrimSpace(s), ";,")
	return strings.TrimSpace(s)
}
