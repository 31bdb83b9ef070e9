// Package jsoncolor formats structured toast payloads as indented,
// theme-colored JSON blocks.
package jsoncolor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/toasts/internal/core/styles"
)

const indent = "  "

// Payload renders v as a colorized JSON block. Values that cannot be
// marshaled fall back to their %v form so a toast always has something to
// show.
func Payload(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return Colorize(data)
}

// Colorize pretty-prints JSON bytes with theme-aware syntax coloring.
// Invalid JSON is returned unchanged.
func Colorize(data []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", indent); err != nil {
		return string(data)
	}

	raw := buf.String()
	var out strings.Builder
	out.Grow(len(raw) * 2)

	for i := 0; i < len(raw); {
		ch := raw[i]
		switch {
		case ch == '"':
			end := stringEnd(raw, i)
			tok := raw[i : end+1]
			if isKey(raw[end+1:]) {
				out.WriteString(styles.TextPrimaryStyle.Render(tok))
			} else {
				out.WriteString(styles.TextSuccessStyle.Render(tok))
			}
			i = end + 1

		case ch == ':':
			out.WriteString(styles.TextMutedStyle.Render(":"))
			i++

		case ch == '-' || isDigit(ch):
			end := numberEnd(raw, i)
			out.WriteString(styles.TextWarningStyle.Render(raw[i:end]))
			i = end

		case ch == '{' || ch == '}' || ch == '[' || ch == ']':
			out.WriteString(styles.TextForegroundStyle.Render(string(ch)))
			i++

		default:
			if lit, style, ok := literal(raw[i:]); ok {
				out.WriteString(style.Render(lit))
				i += len(lit)
				continue
			}
			out.WriteByte(ch)
			i++
		}
	}

	return out.String()
}

// stringEnd returns the index of the closing quote of the string that
// opens at pos.
func stringEnd(s string, pos int) int {
	for i := pos + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return len(s) - 1
}

func numberEnd(s string, pos int) int {
	end := pos + 1
	for end < len(s) && strings.IndexByte("0123456789.eE+-", s[end]) >= 0 {
		end++
	}
	return end
}

func isKey(rest string) bool {
	rest = strings.TrimLeft(rest, " \t")
	return rest != "" && rest[0] == ':'
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func literal(s string) (string, lipgloss.Style, bool) {
	switch {
	case strings.HasPrefix(s, "true"):
		return "true", styles.TextSecondaryStyle, true
	case strings.HasPrefix(s, "false"):
		return "false", styles.TextSecondaryStyle, true
	case strings.HasPrefix(s, "null"):
		return "null", styles.TextErrorStyle, true
	default:
		return "", lipgloss.Style{}, false
	}
}
