// Package nodetest runs an in-process node that serves the offchain storage
// RPCs over WebSocket, for use in tests.
package nodetest

import (
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/ava-labs/libevm/common/hexutil"
	"github.com/ava-labs/libevm/rpc"
)

// Node is a fake node backed by an in-memory offchain store.
// Close must be called to release the listener and open connections.
type Node struct {
	// URL is the ws:// endpoint of the node.
	URL string

	server *rpc.Server
	http   *httptest.Server

	mu    sync.Mutex
	store map[string]string
	fail  *Error
	calls int
	info  [3]string // name, version, chain
}

// Error is a JSON-RPC error returned by the fake node.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string  { return e.Message }
func (e *Error) ErrorCode() int { return e.Code }

// NewNode starts a fake node listening on a loopback address.
func NewNode() *Node {
	n := &Node{
		server: rpc.NewServer(),
		store:  make(map[string]string),
		info:   [3]string{"nodetest", "0.0.0-dev", "Development"},
	}
	if err := n.server.RegisterName("offchain", &offchainAPI{node: n}); err != nil {
		panic("nodetest: " + err.Error())
	}
	if err := n.server.RegisterName("system", &systemAPI{node: n}); err != nil {
		panic("nodetest: " + err.Error())
	}
	n.http = httptest.NewServer(n.server.WebsocketHandler([]string{"*"}))
	n.URL = "ws://" + strings.TrimPrefix(n.http.URL, "http://")
	return n
}

// Close stops the RPC server, dropping client connections, then the listener.
func (n *Node) Close() {
	n.server.Stop()
	n.http.Close()
}

// Put stores value under key as the node would after offchain indexing.
func (n *Node) Put(kind, key string, value []byte) {
	n.PutRaw(kind, key, hexutil.Encode(value))
}

// PutRaw stores a raw response string under key, returned verbatim.
func (n *Node) PutRaw(kind, key, raw string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.store[storeKey(kind, []byte(key))] = raw
}

// Get returns the raw response string stored under key.
func (n *Node) Get(kind, key string) (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	v, ok := n.store[storeKey(kind, []byte(key))]
	return v, ok
}

// SetInfo sets the values reported by system_name, system_version and system_chain.
func (n *Node) SetInfo(name, version, chain string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.info = [3]string{name, version, chain}
}

// FailWith makes every subsequent call return a JSON-RPC error.
func (n *Node) FailWith(code int, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.fail = &Error{Code: code, Message: message}
}

// Calls returns the number of offchain RPCs served.
func (n *Node) Calls() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls
}

func storeKey(kind string, key []byte) string {
	return strings.ToUpper(kind) + "/" + hexutil.Encode(key)
}

type offchainAPI struct {
	node *Node
}

// LocalStorageGet serves offchain_localStorageGet.
func (api *offchainAPI) LocalStorageGet(kind string, key hexutil.Bytes) (*string, error) {
	n := api.node
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
	if n.fail != nil {
		return nil, n.fail
	}
	v, ok := n.store[storeKey(kind, key)]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

// LocalStorageSet serves offchain_localStorageSet.
func (api *offchainAPI) LocalStorageSet(kind string, key, value hexutil.Bytes) error {
	n := api.node
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
	if n.fail != nil {
		return n.fail
	}
	n.store[storeKey(kind, key)] = hexutil.Encode(value)
	return nil
}

type systemAPI struct {
	node *Node
}

func (api *systemAPI) field(i int) string {
	api.node.mu.Lock()
	defer api.node.mu.Unlock()
	return api.node.info[i]
}

func (api *systemAPI) Name() string    { return api.field(0) }
func (api *systemAPI) Version() string { return api.field(1) }
func (api *systemAPI) Chain() string   { return api.field(2) }
