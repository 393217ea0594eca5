package node

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// DefaultPort is the port Substrate nodes serve JSON-RPC on.
const DefaultPort = "9944"

// NormalizeNodeURI converts a node address to a WebSocket URI.
// Plain ws:// is only accepted for loopback hosts.
func NormalizeNodeURI(addr string) (string, error) {
	return NormalizeNodeURIWithInsecureWS(addr, false)
}

// NormalizeNodeURIWithInsecureWS converts a node address to a WebSocket URI.
// Accepts: "127.0.0.1", "127.0.0.1:9944", "ws://127.0.0.1:9944", "wss://rpc.example.com".
// Bare non-local hosts default to wss://.
func NormalizeNodeURIWithInsecureWS(addr string, allowInsecureWS bool) (string, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "", fmt.Errorf("node address cannot be empty")
	}

	if !strings.Contains(addr, "://") {
		if strings.ContainsAny(addr, "/?#") {
			return "", fmt.Errorf("invalid node address %q: paths are only allowed in full URIs", addr)
		}
		host, port := splitHostPort(addr)
		scheme := "wss"
		if isLocalHost(host) {
			scheme = "ws"
		}
		return fmt.Sprintf("%s://%s", scheme, net.JoinHostPort(host, port)), nil
	}

	u, err := url.Parse(addr)
	if err != nil {
		return "", fmt.Errorf("invalid node URI %q: %w", addr, err)
	}
	switch u.Scheme {
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported scheme %q in %q: use ws:// or wss://", u.Scheme, addr)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid node URI %q: missing host", addr)
	}
	if u.Path != "" && u.Path != "/" {
		return "", fmt.Errorf("invalid node URI %q: custom paths are not supported", addr)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("invalid node URI %q: query and fragment are not supported", addr)
	}
	if u.Scheme == "ws" && !allowInsecureWS && !isLocalHost(u.Hostname()) {
		return "", fmt.Errorf("refusing plain ws:// to non-local host %q (use wss:// or --allow-insecure-ws)", u.Hostname())
	}

	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

func splitHostPort(addr string) (string, string) {
	if host, port, err := net.SplitHostPort(addr); err == nil {
		return strings.Trim(host, "[]"), port
	}
	return strings.Trim(addr, "[]"), DefaultPort
}

func isLocalHost(host string) bool {
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
