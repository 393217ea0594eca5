// Package offchain reads values from a node's offchain local storage and
// decodes them for display.
package offchain

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/offchain-tools/offchain-cli/pkg/hexbytes"
	"github.com/offchain-tools/offchain-cli/pkg/node"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
)

// DefaultKey is the key the template pallet writes through offchain indexing.
const DefaultKey = "template_pallet::indexing1"

// Store reads raw hex values from offchain storage.
type Store interface {
	LocalStorageGet(ctx context.Context, kind node.StorageKind, key []byte) (value string, found bool, err error)
}

// WriteStore writes values to offchain storage.
type WriteStore interface {
	LocalStorageSet(ctx context.Context, kind node.StorageKind, key, value []byte) error
}

// Value is the result of reading one key.
type Value struct {
	Key    string           `json:"key" yaml:"key"`
	Kind   node.StorageKind `json:"kind" yaml:"kind"`
	Found  bool             `json:"found" yaml:"found"`
	Hex    string           `json:"hex" yaml:"hex"`
	Size   int              `json:"size" yaml:"size"`
	Digest string           `json:"digest,omitempty" yaml:"digest,omitempty"`
	Text   string           `json:"text" yaml:"text"`
	Bytes  []byte           `json:"-" yaml:"-"`
}

// ReaderConfig holds optional collaborators for a Reader.
type ReaderConfig struct {
	// Decoder interprets the payload. Defaults to TextDecoder.
	Decoder PayloadDecoder
	// Log receives diagnostics. Defaults to logging.NoLog.
	Log logging.Logger
}

// Reader fetches and decodes offchain storage values.
type Reader struct {
	store   Store
	decoder PayloadDecoder
	log     logging.Logger
}

// NewReader returns a Reader backed by store.
func NewReader(store Store, config ReaderConfig) *Reader {
	r := &Reader{
		store:   store,
		decoder: config.Decoder,
		log:     config.Log,
	}
	if r.decoder == nil {
		r.decoder = TextDecoder{}
	}
	if r.log == nil {
		r.log = logging.NoLog{}
	}
	return r
}

// Read fetches key from the given storage area and decodes it.
// A key with no value is not an error: the returned Value has Found unset
// and zero bytes.
//
// If the hex decodes but the payload decoder rejects the bytes, Read returns
// both the Value, with every field but Text set, and an ErrDecode error.
func (r *Reader) Read(ctx context.Context, kind node.StorageKind, key string) (*Value, error) {
	raw, found, err := r.store.LocalStorageGet(ctx, kind, []byte(key))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %w", ErrRPC, key, err)
	}
	r.log.Debug("fetched offchain value",
		zap.String("key", key),
		zap.Stringer("kind", kind),
		zap.Bool("found", found),
		zap.Int("hexLen", len(raw)),
	)

	v := &Value{
		Key:   key,
		Kind:  kind,
		Found: found,
		Hex:   raw,
		Bytes: []byte{},
	}
	if !found {
		r.log.Info("no value stored", zap.String("key", key), zap.Stringer("kind", kind))
		return v, nil
	}

	b, err := DecodeValue(raw)
	if err != nil {
		return nil, err
	}
	v.Bytes = b
	v.Size = len(b)
	v.Digest = Digest(b)

	text, err := r.decoder.DecodePayload(b)
	if err != nil {
		r.log.Debug("payload decoder rejected value",
			zap.String("key", key),
			zap.String("digest", v.Digest),
			zap.Error(err),
		)
		return v, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	v.Text = text
	return v, nil
}

// DecodeValue strips the 0x prefix nodes put on byte values and decodes the
// remaining hex.
func DecodeValue(raw string) ([]byte, error) {
	b, err := hexbytes.Decode(hexbytes.TrimPrefix(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return b, nil
}

// Digest returns the 0x-prefixed blake2b-256 hash of a payload.
func Digest(b []byte) string {
	sum := blake2b.Sum256(b)
	return "0x" + hexbytes.Encode(sum[:])
}

// Write stores value under key.
func Write(ctx context.Context, store WriteStore, kind node.StorageKind, key string, value []byte) error {
	if err := store.LocalStorageSet(ctx, kind, []byte(key), value); err != nil {
		return fmt.Errorf("%w: writing %q: %w", ErrRPC, key, err)
	}
	return nil
}

// Connect dials the node at uri. The returned client must be closed.
func Connect(ctx context.Context, uri string, config node.DialConfig) (*node.Client, error) {
	c, err := node.DialWithConfig(ctx, uri, config)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnect, err)
	}
	return c, nil
}
