package props

import (
	"github.com/alexisbeaulieu97/buildify/internal/document"
)

func toList(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out, true
	default:
		return nil, false
	}
}

// Items returns value as a fresh []any, or nil when it is not a list.
func Items(value any) []any {
	items, ok := toList(value)
	if !ok {
		return nil
	}
	out, _ := document.CloneValue(items).([]any)
	return out
}

// AppendItem returns a copy of list with item added at the end.
func AppendItem(list any, item any) []any {
	out := Items(list)
	return append(out, item)
}

// RemoveItem returns a copy of list without the element at index. An out of
// range index leaves the copy unchanged.
func RemoveItem(list any, index int) []any {
	out := Items(list)
	if index < 0 || index >= len(out) {
		return out
	}
	return append(out[:index], out[index+1:]...)
}

// SetItem returns a copy of list with the element at index replaced.
func SetItem(list any, index int, item any) []any {
	out := Items(list)
	if index < 0 || index >= len(out) {
		return out
	}
	out[index] = item
	return out
}
