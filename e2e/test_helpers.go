package e2e

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

const (
	envRunNetworkTests = "RUN_E2E_NETWORK_TESTS"
)

var (
	rpcURLFlag    = flag.String("rpc-url", "ws://127.0.0.1:9944", "Node to test against (must allow unsafe RPC methods)")
	cliBinaryPath string
)

// buildCLIBinaryForE2E builds a fresh CLI binary for this test run.
func buildCLIBinaryForE2E() (string, func(), error) {
	tempDir, err := os.MkdirTemp("", "offchain-cli-e2e-*")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp dir: %w", err)
	}

	binPath := filepath.Join(tempDir, "offchain")
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = ".."
	if out, err := cmd.CombinedOutput(); err != nil {
		_ = os.RemoveAll(tempDir)
		return "", nil, fmt.Errorf("failed to build CLI binary: %w\n%s", err, out)
	}

	cleanup := func() {
		_ = os.RemoveAll(tempDir)
	}
	return binPath, cleanup, nil
}

func requireNetworkE2ETestsEnabled(t *testing.T) {
	t.Helper()
	if os.Getenv(envRunNetworkTests) != "1" {
		t.Skipf("network e2e tests are disabled; set %s=1 to run", envRunNetworkTests)
	}
}
