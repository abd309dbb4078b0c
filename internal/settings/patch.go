package settings

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// pathMeta are the characters gjson/sjson treat as path syntax. Patch keys
// containing them can never name a top-level field.
const pathMeta = ".*?|#@\\!"

// ApplyPatch merges a partial configuration over current. Each top-level
// member of patch replaces the whole field of the same name; unknown members
// are ignored. Values are not validated beyond decoding into the field type.
func ApplyPatch(current HeadlineSettings, patch []byte) (HeadlineSettings, error) {
	if !gjson.ValidBytes(patch) {
		return current, fmt.Errorf("patch is not valid JSON")
	}
	parsed := gjson.ParseBytes(patch)
	if !parsed.IsObject() {
		return current, fmt.Errorf("patch must be a JSON object")
	}

	doc, err := json.Marshal(current)
	if err != nil {
		return current, fmt.Errorf("encode current settings: %w", err)
	}

	var setErr error
	parsed.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if name == "" || strings.ContainsAny(name, pathMeta) {
			return true
		}
		if !gjson.GetBytes(doc, name).Exists() {
			return true
		}
		doc, setErr = sjson.SetRawBytes(doc, name, []byte(value.Raw))
		return setErr == nil
	})
	if setErr != nil {
		return current, fmt.Errorf("apply patch: %w", setErr)
	}

	var next HeadlineSettings
	if err := json.Unmarshal(doc, &next); err != nil {
		return current, fmt.Errorf("decode patched settings: %w", err)
	}
	return next, nil
}

// AssignmentPatch turns a "key=value" argument into a one-field patch. Values
// for string fields are always taken literally; other values must be JSON
// (numbers, booleans, arrays, objects).
func AssignmentPatch(current HeadlineSettings, assignment string) ([]byte, error) {
	key, value, ok := strings.Cut(assignment, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return nil, fmt.Errorf("expected key=value, got %q", assignment)
	}
	if strings.ContainsAny(key, pathMeta) {
		return nil, fmt.Errorf("invalid field name %q", key)
	}

	doc, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("encode current settings: %w", err)
	}
	field := gjson.GetBytes(doc, key)
	if !field.Exists() {
		return nil, fmt.Errorf("unknown field %q", key)
	}

	if field.Type == gjson.String {
		return sjson.SetBytes([]byte(`{}`), key, value)
	}
	if !gjson.Valid(value) {
		return nil, fmt.Errorf("value for %q must be JSON, got %q", key, value)
	}
	return sjson.SetRawBytes([]byte(`{}`), key, []byte(value))
}

// FieldNames returns the JSON names of every configuration field in
// declaration order.
func FieldNames() []string {
	doc, err := json.Marshal(Default())
	if err != nil {
		return nil
	}
	var names []string
	gjson.ParseBytes(doc).ForEach(func(key, _ gjson.Result) bool {
		names = append(names, key.String())
		return true
	})
	return names
}
