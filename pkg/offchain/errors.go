package offchain

import "errors"

// Failure classes reported by the CLI. Every error returned by this package
// wraps exactly one of them.
var (
	// ErrConnect means the node could not be reached or the handshake failed.
	ErrConnect = errors.New("connection failed")
	// ErrRPC means the node answered the request with an error or an unusable response.
	ErrRPC = errors.New("rpc failed")
	// ErrDecode means the value could not be decoded from hex or as a payload.
	ErrDecode = errors.New("decode failed")
)
