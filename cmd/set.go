package cmd

import (
	"fmt"
	"strings"

	"github.com/offchain-tools/offchain-cli/pkg/node"
	"github.com/offchain-tools/offchain-cli/pkg/offchain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var setValueHex bool

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write a value to offchain local storage",
	Long: `Store value under key in the node's offchain local storage.

The value is stored as UTF-8 text unless --hex is given. Nodes only accept
this call when started with --rpc-methods=unsafe.

Examples:
  offchain set my_key "hello"
  offchain set my_key 0x48656c6c6f --hex --kind local`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		kind, err := parseStorageKind()
		if err != nil {
			return err
		}

		value := []byte(args[1])
		if setValueHex {
			value, err = offchain.DecodeValue(strings.TrimSpace(args[1]))
			if err != nil {
				return fmt.Errorf("invalid value: %w", err)
			}
		}

		log, err := newLogger(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		uri, err := resolveRPCURL(log)
		if err != nil {
			return err
		}

		ctx, cancel := getOperationContext()
		defer cancel()

		log.Debug("connecting", zap.String("uri", uri))
		client, err := offchain.Connect(ctx, uri, node.DialConfig{})
		if err != nil {
			return err
		}
		defer client.Close()

		if err := offchain.Write(ctx, client, kind, key, value); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Stored %d bytes under %q (%s)\n", len(value), key, kind)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().BoolVar(&setValueHex, "hex", false, "Treat value as hex (0x prefix optional)")
}
