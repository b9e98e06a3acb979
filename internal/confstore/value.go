package confstore

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// decodeBool decodes the textual boolean forms accepted in config
// files. Tokens are matched case-insensitively; anything else is a
// type mismatch.
func decodeBool(raw []byte) (bool, error) {
	switch strings.ToLower(string(raw)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a boolean: %w", raw, ErrTypeMismatch)
}

// decodeInt decodes a base-10 integer constrained to the given bit
// width. Out-of-range values are a type mismatch, never a silent
// truncation.
func decodeInt(raw []byte, bitSize int) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%q is not a %d-bit integer: %w", raw, bitSize, ErrTypeMismatch)
	}
	return n, nil
}

// decodeText validates that raw is UTF-8 text.
func decodeText(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("value %x: %w", raw, ErrInvalidEncoding)
	}
	return string(raw), nil
}

// encodeBool renders a boolean in its canonical on-disk form.
func encodeBool(v bool) []byte {
	return []byte(strconv.FormatBool(v))
}

// encodeInt renders an integer in base 10.
func encodeInt(v int64) []byte {
	return []byte(strconv.FormatInt(v, 10))
}
