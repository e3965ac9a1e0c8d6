package entity

import (
	"bytes"
	"strconv"
	"strings"
)

// Focus is the self-reported 1-10 focus level. Stored data may carry it as a
// number or as a numeric string; anything non-numeric decodes to 0.
type Focus int

func (f *Focus) UnmarshalJSON(b []byte) error {
	*f = Focus(parseLeadingInt(unquote(b)))
	return nil
}

// WastedTime is one of WastedTimes. Older records store plain numbers.
type WastedTime string

func (w *WastedTime) UnmarshalJSON(b []byte) error {
	*w = WastedTime(unquote(b))
	return nil
}

func (w WastedTime) Valid() bool {
	for _, v := range WastedTimes {
		if string(w) == v {
			return true
		}
	}
	return false
}

func unquote(b []byte) string {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return ""
	}
	if len(b) >= 2 && b[0] == '"' {
		if s, err := strconv.Unquote(string(b)); err == nil {
			return s
		}
		return string(b[1 : len(b)-1])
	}
	return string(b)
}

// parseLeadingInt reads an optional sign and the leading digits of s,
// so "7", "7.5" and "7/10" all give 7.
func parseLeadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func ParseFocus(s string) Focus {
	return Focus(parseLeadingInt(s))
}
