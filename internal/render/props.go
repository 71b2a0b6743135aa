package render

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/buildify/internal/document"
)

func str(p document.Props, key, fallback string) string {
	switch v := p[key].(type) {
	case string:
		if v != "" {
			return v
		}
	}
	return fallback
}

func num(p document.Props, key string, fallback int) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(math.Round(v))
	default:
		return fallback
	}
}

func flag(p document.Props, key string) bool {
	v, _ := p[key].(bool)
	return v
}

func color(p document.Props, key string) lipgloss.TerminalColor {
	if c := str(p, key, ""); c != "" {
		return lipgloss.Color(c)
	}
	return lipgloss.NoColor{}
}

func list(p document.Props, key string) []any {
	switch v := p[key].(type) {
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out
	case []document.Props:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out
	default:
		return nil
	}
}

// asProps accepts both shapes a structured list item can arrive in.
func asProps(item any) (document.Props, bool) {
	switch m := item.(type) {
	case map[string]any:
		return document.Props(m), true
	case document.Props:
		return m, true
	default:
		return nil, false
	}
}

func field(item any, key string) string {
	p, ok := asProps(item)
	if !ok {
		return ""
	}
	return str(p, key, "")
}

func fieldNum(item any, key string) int {
	p, ok := asProps(item)
	if !ok {
		return 0
	}
	return num(p, key, 0)
}

func align(p document.Props) lipgloss.Position {
	switch str(p, "textAlign", "left") {
	case "center":
		return lipgloss.Center
	case "right":
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

func bold(p document.Props) bool {
	switch str(p, "fontWeight", "normal") {
	case "bold", "bolder":
		return true
	default:
		return false
	}
}
