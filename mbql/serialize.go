package mbql

import (
	"bytes"
	"encoding/json"
	"strings"
)

// CanonicalJSON returns the canonical JSON encoding of a raw clause:
// deterministic, HTML escaping off, no trailing newline. Structurally equal
// inputs produce byte-identical strings.
func CanonicalJSON(v any) string {
	writeBuffer := bytes.NewBufferString("")
	encoder := json.NewEncoder(writeBuffer)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(v); err != nil {
		return ""
	}
	return strings.TrimSuffix(writeBuffer.String(), "\n")
}

// RefKey returns the canonical encoding of a reference's clause. A nil
// reference produces the JSON null key.
func RefKey(ref FieldRef) string {
	if ref == nil {
		return CanonicalJSON(nil)
	}
	return CanonicalJSON(ref.MBQL())
}
