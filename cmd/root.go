package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/offchain-tools/offchain-cli/pkg/network"
	"github.com/offchain-tools/offchain-cli/pkg/node"
	"github.com/offchain-tools/offchain-cli/pkg/offchain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const (
	// defaultOperationTimeout is the default timeout for node operations.
	// Can be overridden via OFFCHAIN_CLI_TIMEOUT environment variable.
	defaultOperationTimeout = 30 * time.Second

	envRPCURL  = "OFFCHAIN_RPC_URL"
	envTimeout = "OFFCHAIN_CLI_TIMEOUT"
)

// Exit codes returned by Execute.
const (
	exitOK = iota
	exitUsage
	exitConnect
	exitRPC
	exitDecode
)

var (
	// Global flags
	networkName     string
	customRPCURL    string // Custom RPC URL, overrides --network
	allowInsecureWS bool   // Allow plain ws:// to non-local hosts
	storageKind     string
	outputFormat    string
	logLevel        string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "offchain",
	Short:         "Substrate offchain storage CLI",
	SilenceErrors: true,
	SilenceUsage:  true,
	Long: `Read and write a Substrate node's offchain local storage over WebSocket RPC.

Example usage:
  offchain get
  offchain get template_pallet::indexing1 --kind persistent
  offchain get --rpc-url ws://127.0.0.1:9944 --output json
  offchain set my_key "hello" --kind local
  offchain hex 0x48656c6c6f

Environment Variables:
  OFFCHAIN_RPC_URL      Node endpoint used when --rpc-url is not set
  OFFCHAIN_CLI_TIMEOUT  Operation timeout duration (e.g., "5m", "30s", default: 30s)`,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCode(err)
	}
	return exitOK
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&networkName, "network", "n", network.Local.Name, "Named endpoint: local, polkadot, kusama, westend (use --rpc-url for custom nodes)")
	rootCmd.PersistentFlags().StringVar(&customRPCURL, "rpc-url", "", "Node WebSocket URL (overrides --network)")
	rootCmd.PersistentFlags().BoolVar(&allowInsecureWS, "allow-insecure-ws", false, "Allow plain ws:// to non-local nodes (unsafe; use only on trusted networks)")
	rootCmd.PersistentFlags().StringVarP(&storageKind, "kind", "k", "persistent", "Offchain storage kind: persistent or local")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Diagnostic log level: verbo, debug, trace, info, warn, error, off")
}

// exitCode maps an error to the exit code for its failure class.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, offchain.ErrConnect):
		return exitConnect
	case errors.Is(err, offchain.ErrRPC):
		return exitRPC
	case errors.Is(err, offchain.ErrDecode):
		return exitDecode
	default:
		return exitUsage
	}
}

// resolveRPCURL picks the node endpoint from --rpc-url, OFFCHAIN_RPC_URL or --network.
func resolveRPCURL(log logging.Logger) (string, error) {
	uri := customRPCURL
	if uri == "" {
		uri = os.Getenv(envRPCURL)
	}
	if uri == "" {
		cfg, ok := network.Lookup(networkName)
		if !ok {
			return "", fmt.Errorf("unknown network %q (known: %v)", networkName, network.Names())
		}
		if cfg.Public {
			log.Warn("public endpoints usually reject offchain storage RPCs",
				zap.String("network", cfg.Name),
			)
		}
		uri = cfg.RPCURL
	}

	normalized, err := node.NormalizeNodeURIWithInsecureWS(uri, allowInsecureWS)
	if err != nil {
		return "", fmt.Errorf("invalid node endpoint: %w", err)
	}
	return normalized, nil
}

func parseStorageKind() (node.StorageKind, error) {
	return node.ParseStorageKind(storageKind)
}

// newLogger returns a logger writing diagnostics to w at the --log-level level.
func newLogger(w io.Writer) (logging.Logger, error) {
	level, err := logging.ToLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	format := logging.Plain
	if isTerminal(w) {
		format = logging.Colors
	}
	core := logging.NewWrappedCore(level, nopCloser{w}, format.ConsoleEncoder())
	return logging.NewLogger("offchain", core), nil
}

// nopCloser keeps the logger from closing stderr.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// getOperationContext returns a context with timeout and signal handling.
// The context will be cancelled on SIGINT/SIGTERM or when the timeout expires.
// The returned cancel function must be called to release resources.
func getOperationContext() (context.Context, context.CancelFunc) {
	// Determine timeout from environment or use default
	timeout := defaultOperationTimeout
	if v := os.Getenv(envTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\nOperation cancelled by user")
			cancel()
		case <-ctx.Done():
			// Context cancelled or timed out, clean up signal handler
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
