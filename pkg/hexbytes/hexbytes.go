// Package hexbytes converts between hex strings and raw byte sequences.
//
// Decoding is strict: the input must have even length and contain only
// [0-9a-fA-F]. A "0x" prefix is not accepted by Decode; callers that receive
// prefixed values from a node strip it first with TrimPrefix.
package hexbytes

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidHexLength is returned when the input has an odd number of characters.
	ErrInvalidHexLength = errors.New("invalid hex length")
	// ErrInvalidHexDigit is returned when the input contains a non-hex character.
	ErrInvalidHexDigit = errors.New("invalid hex digit")
)

// InvalidDigitError reports the first non-hex character found in the input.
type InvalidDigitError struct {
	Char   byte
	Offset int
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("%s %q at offset %d", ErrInvalidHexDigit, e.Char, e.Offset)
}

// Is makes errors.Is(err, ErrInvalidHexDigit) match any InvalidDigitError.
func (e *InvalidDigitError) Is(target error) bool {
	return target == ErrInvalidHexDigit
}

// Decode converts an unprefixed hex string into bytes.
// Byte i of the result is the value of the two characters at offset 2*i.
func Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: %d characters", ErrInvalidHexLength, len(s))
	}
	out := make([]byte, len(s)/2)
	for i := range out {
		hi, ok := fromHexChar(s[2*i])
		if !ok {
			return nil, &InvalidDigitError{Char: s[2*i], Offset: 2 * i}
		}
		lo, ok := fromHexChar(s[2*i+1])
		if !ok {
			return nil, &InvalidDigitError{Char: s[2*i+1], Offset: 2*i + 1}
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

// Encode returns the lower-case, unprefixed hex encoding of b.
func Encode(b []byte) string {
	return hex.EncodeToString(b)
}

// TrimPrefix removes a single leading 0x or 0X from s.
func TrimPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}

func fromHexChar(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
