// Package node provides a client for the offchain storage RPCs of a Substrate node.
package node

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ava-labs/libevm/common/hexutil"
	"github.com/ava-labs/libevm/rpc"
	"github.com/gorilla/websocket"
)

const (
	// DefaultURI is the WebSocket endpoint of a locally running node.
	DefaultURI = "ws://127.0.0.1:9944"

	methodLocalStorageGet = "offchain_localStorageGet"
	methodLocalStorageSet = "offchain_localStorageSet"

	defaultHandshakeTimeout = 10 * time.Second
	wsBufferSize            = 4096
)

// StorageKind selects one of the node's offchain storage areas.
type StorageKind string

const (
	// Persistent storage survives node restarts and is shared by offchain
	// workers and offchain indexing.
	Persistent StorageKind = "PERSISTENT"
	// Local storage is not replicated and may be discarded on restart.
	Local StorageKind = "LOCAL"
)

// ParseStorageKind parses a storage kind name case-insensitively.
func ParseStorageKind(s string) (StorageKind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(Persistent):
		return Persistent, nil
	case string(Local):
		return Local, nil
	default:
		return "", fmt.Errorf("invalid storage kind %q: use persistent or local", s)
	}
}

func (k StorageKind) String() string {
	return strings.ToLower(string(k))
}

// Client is a connection to a single node. It must be closed after use.
type Client struct {
	uri string
	rpc *rpc.Client
}

// DialConfig holds connection settings for Dial.
type DialConfig struct {
	HandshakeTimeout time.Duration
	Headers          http.Header
}

// Dial connects to the node at uri using the default configuration.
func Dial(ctx context.Context, uri string) (*Client, error) {
	return DialWithConfig(ctx, uri, DialConfig{})
}

// DialWithConfig connects to the node at uri. The WebSocket handshake
// completes before it returns, so an unreachable node fails here.
func DialWithConfig(ctx context.Context, uri string, config DialConfig) (*Client, error) {
	timeout := config.HandshakeTimeout
	if timeout <= 0 {
		timeout = defaultHandshakeTimeout
	}
	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: timeout,
		ReadBufferSize:   wsBufferSize,
		WriteBufferSize:  wsBufferSize,
	}

	opts := []rpc.ClientOption{rpc.WithWebsocketDialer(dialer)}
	if len(config.Headers) > 0 {
		opts = append(opts, rpc.WithHeaders(config.Headers))
	}

	c, err := rpc.DialOptions(ctx, uri, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", uri, err)
	}
	return &Client{uri: uri, rpc: c}, nil
}

// URI returns the endpoint the client is connected to.
func (c *Client) URI() string {
	return c.uri
}

// LocalStorageGet reads key from the given storage area. The returned value
// is the node's hex encoding, unmodified. found is false when the node
// reports no value for the key.
func (c *Client) LocalStorageGet(ctx context.Context, kind StorageKind, key []byte) (value string, found bool, err error) {
	var result *string
	if err := c.rpc.CallContext(ctx, &result, methodLocalStorageGet, kind, hexutil.Bytes(key)); err != nil {
		return "", false, fmt.Errorf("%s failed: %w", methodLocalStorageGet, err)
	}
	if result == nil {
		return "", false, nil
	}
	return *result, true, nil
}

// LocalStorageSet writes value under key. Nodes only expose this method when
// started with unsafe RPC methods enabled.
func (c *Client) LocalStorageSet(ctx context.Context, kind StorageKind, key, value []byte) error {
	if err := c.rpc.CallContext(ctx, nil, methodLocalStorageSet, kind, hexutil.Bytes(key), hexutil.Bytes(value)); err != nil {
		return fmt.Errorf("%s failed: %w", methodLocalStorageSet, err)
	}
	return nil
}

// Close terminates the connection and waits for the client's goroutines to exit.
func (c *Client) Close() {
	c.rpc.Close()
}

// Info describes the software a node runs.
type Info struct {
	Name    string
	Version string
	Chain   string
}

// GetInfo queries the node's system_name, system_version and system_chain.
func (c *Client) GetInfo(ctx context.Context) (*Info, error) {
	info := &Info{}
	calls := []struct {
		method string
		dst    *string
	}{
		{"system_name", &info.Name},
		{"system_version", &info.Version},
		{"system_chain", &info.Chain},
	}
	for _, call := range calls {
		if err := c.rpc.CallContext(ctx, call.dst, call.method); err != nil {
			return nil, fmt.Errorf("%s failed: %w", call.method, err)
		}
	}
	return info, nil
}
