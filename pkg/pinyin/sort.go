package pinyin

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// DefaultField is the key used by KeyField when no name is given, matching
// the conventional field name for Pīnyīn content in dictionary records.
const DefaultField = "pinyin"

// Extractor derives the comparison string for one item.
type Extractor[T any] func(item T) (string, error)

// KeySpec selects how Sort obtains the Pīnyīn string from each item.
// The zero value (or KeyNone) compares items directly, which requires the
// items themselves to be strings.
type KeySpec[T any] struct {
	field   string
	extract Extractor[T]
}

// KeyNone compares items directly as strings.
func KeyNone[T any]() KeySpec[T] {
	return KeySpec[T]{}
}

// KeyField extracts the named map key or struct field from each item.
// Struct field matching is case-insensitive, so KeyField("pinyin") finds
// an exported Pinyin field. An empty name means DefaultField.
func KeyField[T any](name string) KeySpec[T] {
	if name == "" {
		name = DefaultField
	}
	return KeySpec[T]{field: name}
}

// KeyExtractor uses a caller-supplied function to derive each item's key.
func KeyExtractor[T any](fn Extractor[T]) KeySpec[T] {
	return KeySpec[T]{extract: fn}
}

// ExtractionError reports an item whose sort key could not be resolved.
// The whole sort is abandoned; no partially sorted result is returned.
type ExtractionError struct {
	Index int
	Item  any
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("pinyin: extract sort key of item %d (%v): %v", e.Index, e.Item, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Sort returns a new slice with items ordered by Compare over the keys the
// KeySpec yields. The sort is stable: items whose keys compare equal keep
// their original relative order. With reverse set, the ascending result is
// flipped as a final step rather than sorted with a negated comparator, so
// equal-key items keep their original order even in descending output.
// The input slice is not modified.
//
// All keys are extracted before any comparison runs; the first failure
// aborts with an ExtractionError identifying the item.
func Sort[T any](items []T, key KeySpec[T], reverse bool) ([]T, error) {
	extract := key.resolve()

	keys := make([]string, len(items))
	for i, item := range items {
		k, err := extract(item)
		if err != nil {
			return nil, &ExtractionError{Index: i, Item: item, Err: err}
		}
		keys[i] = k
	}

	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return Compare(keys[idx[i]], keys[idx[j]]) < 0
	})

	out := make([]T, len(items))
	for i, j := range idx {
		out[i] = items[j]
	}

	if reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

// SortStrings sorts a slice of plain Pīnyīn strings. It is Sort with
// KeyNone, which cannot fail for string items.
func SortStrings(words []string, reverse bool) []string {
	out, _ := Sort(words, KeyNone[string](), reverse)
	return out
}

// resolve turns the KeySpec into a concrete extractor exactly once, before
// sorting begins, rather than re-inspecting the spec per comparison.
func (k KeySpec[T]) resolve() Extractor[T] {
	switch {
	case k.extract != nil:
		return k.extract
	case k.field != "":
		name := k.field
		return func(item T) (string, error) {
			return fieldKey(item, name)
		}
	default:
		return func(item T) (string, error) {
			s, ok := any(item).(string)
			if !ok {
				return "", fmt.Errorf("item of type %T is not a string; use KeyField or KeyExtractor", item)
			}
			return s, nil
		}
	}
}

// fieldKey pulls the named key out of a map or struct item via reflection.
func fieldKey(item any, name string) (string, error) {
	v := reflect.ValueOf(item)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", errors.New("item is nil")
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		kt := v.Type().Key()
		if kt.Kind() != reflect.String {
			return "", fmt.Errorf("map key type %s is not a string", kt)
		}
		mv := v.MapIndex(reflect.ValueOf(name).Convert(kt))
		if !mv.IsValid() {
			return "", fmt.Errorf("no key %q", name)
		}
		return stringValue(mv, name)
	case reflect.Struct:
		fv := v.FieldByNameFunc(func(fn string) bool {
			return strings.EqualFold(fn, name)
		})
		if !fv.IsValid() {
			return "", fmt.Errorf("no field %q in %s", name, v.Type())
		}
		return stringValue(fv, name)
	default:
		return "", fmt.Errorf("cannot extract %q from %s item", name, v.Kind())
	}
}

func stringValue(v reflect.Value, name string) (string, error) {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", fmt.Errorf("key %q is nil", name)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.String {
		return "", fmt.Errorf("key %q has type %s, not string", name, v.Type())
	}
	return v.String(), nil
}
