package cmd

import (
	"context"
	"strings"

	"github.com/offchain-tools/offchain-cli/pkg/node"
	"github.com/offchain-tools/offchain-cli/pkg/offchain"
	"github.com/spf13/cobra"
)

var hexCmd = &cobra.Command{
	Use:   "hex <value>",
	Short: "Decode a hex value without contacting a node",
	Long: `Decode a hex value the way "get" decodes a stored value and print the
same three lines. Useful for values copied from other tools.

Examples:
  offchain hex 0x48656c6c6f
  offchain hex 48656c6c6f --output json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateOutputFormat(outputFormat); err != nil {
			return err
		}
		log, err := newLogger(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		store := staticStore{value: strings.TrimSpace(args[0])}
		v, err := offchain.NewReader(store, offchain.ReaderConfig{Log: log}).Read(context.Background(), node.Persistent, "")
		return printReadResult(cmd.OutOrStdout(), v, err, outputFormat)
	},
}

// staticStore serves one value for every key.
type staticStore struct {
	value string
}

func (s staticStore) LocalStorageGet(context.Context, node.StorageKind, []byte) (string, bool, error) {
	return s.value, true, nil
}

func init() {
	rootCmd.AddCommand(hexCmd)
}
