package offchain

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by TextDecoder for payloads that are not UTF-8 text.
var ErrInvalidUTF8 = errors.New("payload is not valid UTF-8")

// InvalidUTF8Error reports the first byte that does not start a valid UTF-8 sequence.
type InvalidUTF8Error struct {
	Byte   byte
	Offset int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("%s: byte %#02x at offset %d", ErrInvalidUTF8, e.Byte, e.Offset)
}

// Is makes errors.Is(err, ErrInvalidUTF8) match any InvalidUTF8Error.
func (e *InvalidUTF8Error) Is(target error) bool {
	return target == ErrInvalidUTF8
}

// PayloadDecoder interprets the raw bytes of a stored value.
type PayloadDecoder interface {
	DecodePayload(b []byte) (string, error)
}

// PayloadDecoderFunc adapts a function to PayloadDecoder.
type PayloadDecoderFunc func(b []byte) (string, error)

// DecodePayload calls f(b).
func (f PayloadDecoderFunc) DecodePayload(b []byte) (string, error) {
	return f(b)
}

// TextDecoder decodes payloads as UTF-8 text.
type TextDecoder struct{}

// DecodePayload returns b as a string, or an *InvalidUTF8Error locating the
// first invalid sequence.
func (TextDecoder) DecodePayload(b []byte) (string, error) {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return "", &InvalidUTF8Error{Byte: b[i], Offset: i}
		}
		i += size
	}
	return string(b), nil
}
