// Package props decides how each component property is edited in the
// properties panel and converts typed input back into property values.
package props

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/buildify/internal/config"
	buildifyerrors "github.com/alexisbeaulieu97/buildify/pkg/errors"
)

// Kind is the input widget used for a property.
type Kind int

const (
	Text Kind = iota
	Toggle
	Number
	Color
	Select
	List
)

func (k Kind) String() string {
	switch k {
	case Toggle:
		return "toggle"
	case Number:
		return "number"
	case Color:
		return "color"
	case Select:
		return "select"
	case List:
		return "list"
	default:
		return "text"
	}
}

var (
	colorKeys = map[string]struct{}{
		"backgroundColor": {},
		"color":           {},
		"borderColor":     {},
		"textColor":       {},
		"activeColor":     {},
		"inactiveColor":   {},
		"primaryColor":    {},
	}

	selectOptions = map[string][]string{
		"textAlign":  {"left", "center", "right", "justify"},
		"fontWeight": {"normal", "bold", "lighter", "bolder"},
	}
)

// Editor describes how one property is presented and parsed.
type Editor struct {
	Key     string
	Label   string
	Kind    Kind
	Options []string
	// Float is set for numbers that carry a fractional part, such as map
	// coordinates.
	Float bool
}

// EditorFor picks the editor for key based on its current value. Booleans
// and numbers win over key-based rules, then colour keys, then the select
// keys, then lists; everything else is free text.
func EditorFor(key string, value any) Editor {
	ed := Editor{Key: key, Label: Label(key)}

	switch v := value.(type) {
	case bool:
		ed.Kind = Toggle
		return ed
	case int, int64, uint64:
		ed.Kind = Number
		return ed
	case float64:
		ed.Kind = Number
		ed.Float = v != math.Trunc(v)
		return ed
	}

	if _, ok := colorKeys[key]; ok {
		ed.Kind = Color
		return ed
	}
	if options, ok := selectOptions[key]; ok {
		ed.Kind = Select
		ed.Options = slices.Clone(options)
		return ed
	}
	if _, ok := toList(value); ok {
		ed.Kind = List
		return ed
	}

	ed.Kind = Text
	return ed
}

// Label turns a camelCase key into words: "backgroundColor" -> "Background Color".
func Label(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Parse converts text typed into ed back into a property value. current is
// the value being replaced; an empty input on a toggle flips it.
func Parse(ed Editor, current any, input string) (any, error) {
	input = strings.TrimSpace(input)

	switch ed.Kind {
	case Toggle:
		if input == "" {
			b, _ := current.(bool)
			return !b, nil
		}
		b, err := strconv.ParseBool(input)
		if err != nil {
			return nil, buildifyerrors.NewValidationError(ed.Key, fmt.Sprintf("%q is not true or false", input), err)
		}
		return b, nil

	case Number:
		if ed.Float {
			f, err := strconv.ParseFloat(input, 64)
			if err != nil {
				return 0.0, nil
			}
			return f, nil
		}
		return leadingInt(input), nil

	case Color:
		if err := config.GetValidator().Var(input, "required,hexcolor"); err != nil {
			return nil, buildifyerrors.NewValidationError(ed.Key, fmt.Sprintf("%q is not a hex colour", input), err)
		}
		return input, nil

	case Select:
		if !slices.Contains(ed.Options, input) {
			return nil, buildifyerrors.NewValidationError(ed.Key, fmt.Sprintf("%q is not one of %s", input, strings.Join(ed.Options, ", ")), nil)
		}
		return input, nil

	case List:
		if input == "" {
			return []any{}, nil
		}
		parts := strings.Split(input, ",")
		out := make([]any, 0, len(parts))
		for _, part := range parts {
			out = append(out, strings.TrimSpace(part))
		}
		return out, nil

	default:
		return input, nil
	}
}

// leadingInt reads an optional sign and the digits that follow it, the way
// a lenient number field does. Anything unparsable is 0.
func leadingInt(input string) int {
	end := 0
	if end < len(input) && (input[end] == '-' || input[end] == '+') {
		end++
	}
	start := end
	for end < len(input) && input[end] >= '0' && input[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := strconv.Atoi(input[:end])
	if err != nil {
		return 0
	}
	return n
}

// Format renders a property value for display and as the initial text of an
// input field.
func Format(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "True"
		}
		return "False"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	if items, ok := toList(value); ok {
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = ItemText(item)
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprint(value)
}

// ItemText renders a single list item; structured items are shown as JSON.
func ItemText(item any) string {
	if s, ok := item.(string); ok {
		return s
	}
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Sprint(item)
	}
	return string(data)
}
