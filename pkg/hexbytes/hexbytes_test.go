package hexbytes

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{
			name:  "empty",
			input: "",
			want:  []byte{},
		},
		{
			name:  "zero byte",
			input: "00",
			want:  []byte{0x00},
		},
		{
			name:  "max byte",
			input: "ff",
			want:  []byte{0xff},
		},
		{
			name:  "upper case",
			input: "FF0A",
			want:  []byte{0xff, 0x0a},
		},
		{
			name:  "mixed case",
			input: "aBcD",
			want:  []byte{0xab, 0xcd},
		},
		{
			name:  "ascii text",
			input: "48656c6c6f",
			want:  []byte("Hello"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			if err != nil {
				t.Fatalf("Decode(%q) error = %v", tt.input, err)
			}
			if got == nil {
				t.Fatalf("Decode(%q) = nil, want non-nil slice", tt.input)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("Decode(%q) = %x, want %x", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"odd length", "abc", ErrInvalidHexLength},
		{"single nibble", "f", ErrInvalidHexLength},
		{"odd length with bad digit", "zzz", ErrInvalidHexLength},
		{"non hex pair", "zz", ErrInvalidHexDigit},
		{"bad second digit", "0g", ErrInvalidHexDigit},
		{"bad digit later", "0011zz", ErrInvalidHexDigit},
		{"prefixed", "0x00", ErrInvalidHexDigit},
		{"whitespace", " 00 ", ErrInvalidHexDigit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.input)
			if err == nil {
				t.Fatalf("Decode(%q) = %x, expected error", tt.input, got)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Decode(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestDecode_InvalidDigitPosition(t *testing.T) {
	_, err := Decode("00a?")
	var digitErr *InvalidDigitError
	if !errors.As(err, &digitErr) {
		t.Fatalf("Decode() error = %v, want *InvalidDigitError", err)
	}
	if digitErr.Char != '?' || digitErr.Offset != 3 {
		t.Fatalf("InvalidDigitError = {%q, %d}, want {'?', 3}", digitErr.Char, digitErr.Offset)
	}
	if !strings.Contains(err.Error(), "offset 3") {
		t.Fatalf("error = %q, want mention of offset 3", err)
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"00",
		"ff",
		"0123456789abcdef",
		"0123456789ABCDEF",
		"DeadBeef",
		"74656d706c6174655f70616c6c65743a3a696e646578696e6731",
	}

	for _, in := range inputs {
		decoded, err := Decode(in)
		if err != nil {
			t.Fatalf("Decode(%q) error = %v", in, err)
		}
		if len(decoded) != len(in)/2 {
			t.Fatalf("Decode(%q) length = %d, want %d", in, len(decoded), len(in)/2)
		}
		if got, want := Encode(decoded), strings.ToLower(in); got != want {
			t.Fatalf("Encode(Decode(%q)) = %q, want %q", in, got, want)
		}
	}
}

func TestDecodeAllBytes(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	for _, enc := range []string{Encode(all), strings.ToUpper(Encode(all))} {
		got, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if !bytes.Equal(got, all) {
			t.Fatalf("Decode() = %x, want %x", got, all)
		}
	}
}

func TestTrimPrefix(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0x48656c6c6f", "48656c6c6f"},
		{"0X48656C6C6F", "48656C6C6F"},
		{"48656c6c6f", "48656c6c6f"},
		{"0x", ""},
		{"0x0x00", "0x00"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := TrimPrefix(tt.input); got != tt.want {
			t.Errorf("TrimPrefix(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
