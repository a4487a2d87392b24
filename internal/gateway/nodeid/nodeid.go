// Package nodeid implements the global object identification scheme: an
// opaque node ID is base64("TypeName:localID"). The local ID may itself
// contain the separator; decoding splits on the first occurrence only.
package nodeid

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const separator = ":"

// ErrInvalid reports a node ID that cannot be decoded. Callers match it
// with errors.Is.
var ErrInvalid = errors.New("invalid node id")

// Encode combines a type name and a local entity ID into an opaque node
// ID. Decoding the result always returns the original pair.
func Encode(typeName, entityID string) string {
	return base64.StdEncoding.EncodeToString([]byte(typeName + separator + entityID))
}

// Decode reverses Encode. It fails when the input is not valid base64,
// when the decoded bytes are not valid text, or when the decoded text
// contains no separator. It never panics on malformed input.
func Decode(nodeID string) (typeName, entityID string, err error) {
	raw, err := base64.StdEncoding.DecodeString(nodeID)
	if err != nil {
		return "", "", fmt.Errorf("%w: not base64: %v", ErrInvalid, err)
	}
	if !utf8.Valid(raw) {
		return "", "", fmt.Errorf("%w: decoded bytes are not valid text", ErrInvalid)
	}
	decoded := string(raw)
	typeName, entityID, found := strings.Cut(decoded, separator)
	if !found {
		return "", "", fmt.Errorf("%w: missing separator", ErrInvalid)
	}
	return typeName, entityID, nil
}
