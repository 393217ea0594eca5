package node

import (
	"testing"
)

func TestNormalizeNodeURI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "just IP",
			input: "127.0.0.1",
			want:  "ws://127.0.0.1:9944",
		},
		{
			name:  "IP with port",
			input: "127.0.0.1:9944",
			want:  "ws://127.0.0.1:9944",
		},
		{
			name:  "IP with custom port",
			input: "192.168.1.1:8080",
			want:  "wss://192.168.1.1:8080",
		},
		{
			name:  "full ws URI",
			input: "ws://127.0.0.1:9944",
			want:  "ws://127.0.0.1:9944",
		},
		{
			name:  "full wss URI",
			input: "wss://rpc.example.com",
			want:  "wss://rpc.example.com",
		},
		{
			name:  "trailing slash",
			input: "ws://127.0.0.1:9944/",
			want:  "ws://127.0.0.1:9944",
		},
		{
			name:  "hostname only",
			input: "node.example.com",
			want:  "wss://node.example.com:9944",
		},
		{
			name:  "localhost",
			input: "localhost",
			want:  "ws://localhost:9944",
		},
		{
			name:  "surrounding spaces",
			input: "  localhost:9944 ",
			want:  "ws://localhost:9944",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeNodeURI(tt.input)
			if err != nil {
				t.Fatalf("NormalizeNodeURI(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeNodeURI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeNodeURI_IPv6(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"IPv6 with brackets and port", "[::1]:9944", "ws://[::1]:9944"},
		{"IPv6 bare", "::1", "ws://[::1]:9944"},
		{"IPv6 full URI", "ws://[::1]:9944", "ws://[::1]:9944"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeNodeURI(tt.input)
			if err != nil {
				t.Fatalf("NormalizeNodeURI(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeNodeURI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeNodeURI_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"http scheme", "http://127.0.0.1:9944"},
		{"custom path not allowed", "ws://127.0.0.1:9944/custom/path"},
		{"query not allowed", "ws://127.0.0.1:9944?x=1"},
		{"fragment not allowed", "ws://127.0.0.1:9944#frag"},
		{"host shorthand with path", "127.0.0.1:9944/rpc"},
		{"non-local ws disallowed by default", "ws://node.example.com:9944"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeNodeURI(tt.input)
			if err == nil {
				t.Fatalf("NormalizeNodeURI(%q) expected error", tt.input)
			}
		})
	}
}

func TestNormalizeNodeURI_AllowInsecureWS(t *testing.T) {
	got, err := NormalizeNodeURIWithInsecureWS("ws://node.example.com:9944", true)
	if err != nil {
		t.Fatalf("NormalizeNodeURIWithInsecureWS() returned error: %v", err)
	}
	if got != "ws://node.example.com:9944" {
		t.Fatalf("NormalizeNodeURIWithInsecureWS() = %q, want %q", got, "ws://node.example.com:9944")
	}
}
