// Package network provides named node endpoints.
package network

import "sort"

// Config holds network-specific configuration.
type Config struct {
	Name   string
	RPCURL string
	// Public endpoints usually reject unsafe RPC methods, which include the
	// offchain storage calls.
	Public bool
}

// Local is a development node on this machine.
var Local = Config{
	Name:   "local",
	RPCURL: "ws://127.0.0.1:9944",
}

// Polkadot relay chain public endpoint
var Polkadot = Config{
	Name:   "polkadot",
	RPCURL: "wss://rpc.polkadot.io",
	Public: true,
}

// Kusama relay chain public endpoint
var Kusama = Config{
	Name:   "kusama",
	RPCURL: "wss://kusama-rpc.polkadot.io",
	Public: true,
}

// Westend testnet public endpoint
var Westend = Config{
	Name:   "westend",
	RPCURL: "wss://westend-rpc.polkadot.io",
	Public: true,
}

var configs = map[string]Config{
	Local.Name:    Local,
	Polkadot.Name: Polkadot,
	Kusama.Name:   Kusama,
	Westend.Name:  Westend,
}

// Lookup returns the configuration for name, if known.
func Lookup(name string) (Config, bool) {
	c, ok := configs[name]
	return c, ok
}

// GetConfig returns the network configuration for the given network name.
func GetConfig(name string) Config {
	if c, ok := Lookup(name); ok {
		return c
	}
	// Default to the local node
	return Local
}

// Names returns the known network names in sorted order.
func Names() []string {
	names := make([]string, 0, len(configs))
	for name := range configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
