package cmd

import (
	"strings"
	"testing"
)

func TestNodeInfoCommand(t *testing.T) {
	n := newTestNode(t)
	n.SetInfo("nodetest", "0.0.0-dev", "Local Testnet")

	stdout, _, err := runCLI(t, "node", "info", "--rpc-url", n.URL)
	if err != nil {
		t.Fatalf("node info error = %v", err)
	}
	for _, want := range []string{
		"Endpoint: " + n.URL,
		"Client:   nodetest 0.0.0-dev",
		"Chain:    Local Testnet",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout = %q, missing %q", stdout, want)
		}
	}
}
