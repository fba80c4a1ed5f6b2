package dotpath

import (
	"errors"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

var (
	// ErrWildcardPointer is returned when a wildcard path is converted to a
	// JSON Pointer, which can only address a single location.
	ErrWildcardPointer = errors.New("dotpath: wildcard path has no JSON Pointer form")
	// ErrInvalidPointer is returned for JSON Pointers not starting with '/'.
	ErrInvalidPointer = errors.New("dotpath: JSON Pointer must start with '/'")
)

var (
	pointerEscaper   = strings.NewReplacer("~", "~0", "/", "~1")
	pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// Pointer converts a concrete path into an RFC 6901 JSON Pointer.
func Pointer(path string) (string, error) {
	segs := scanSegments(path)
	if containsWildcard(segs) {
		return "", fmt.Errorf("%w: %q", ErrWildcardPointer, path)
	}
	var sb strings.Builder
	for _, s := range segs {
		sb.WriteByte('/')
		sb.WriteString(pointerEscaper.Replace(s.key))
	}
	return sb.String(), nil
}

// PathFromPointer converts an RFC 6901 JSON Pointer into an escaped path.
func PathFromPointer(ptr string) (string, error) {
	if ptr == "" {
		return "", nil
	}
	if !strings.HasPrefix(ptr, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPointer, ptr)
	}
	parts := strings.Split(ptr[1:], "/")
	keys := make([]interface{}, len(parts))
	for i, p := range parts {
		keys[i] = pointerUnescaper.Replace(p)
	}
	return joinKeys(keys), nil
}

// ApplyJSONPatch applies an RFC 6902 JSON Patch to a copy of data.
func ApplyJSONPatch(data interface{}, patchJSON []byte) (interface{}, error) {
	patch, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("dotpath: invalid JSON Patch: %w", err)
	}
	doc, err := EncodeJSON(data)
	if err != nil {
		return nil, err
	}
	out, err := patch.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("dotpath: apply JSON Patch: %w", err)
	}
	return DecodeJSON(out)
}

// ApplyMergePatch applies an RFC 7386 JSON Merge Patch to a copy of data.
func ApplyMergePatch(data interface{}, patchJSON []byte) (interface{}, error) {
	doc, err := EncodeJSON(data)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(doc, patchJSON)
	if err != nil {
		return nil, fmt.Errorf("dotpath: apply merge patch: %w", err)
	}
	return DecodeJSON(out)
}

// CreateMergePatch returns the RFC 7386 merge patch turning original into
// modified.
func CreateMergePatch(original, modified interface{}) ([]byte, error) {
	a, err := EncodeJSON(original)
	if err != nil {
		return nil, err
	}
	b, err := EncodeJSON(modified)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("dotpath: create merge patch: %w", err)
	}
	return patch, nil
}

// Equal reports whether a and b hold the same structure. Map key order is
// ignored; numbers compare by value.
func Equal(a, b interface{}) bool {
	ja, err := EncodeJSON(a)
	if err != nil {
		return false
	}
	jb, err := EncodeJSON(b)
	if err != nil {
		return false
	}
	return jsonpatch.Equal(ja, jb)
}
