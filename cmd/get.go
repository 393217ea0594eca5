package cmd

import (
	"github.com/offchain-tools/offchain-cli/pkg/node"
	"github.com/offchain-tools/offchain-cli/pkg/offchain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var getCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Read a value from offchain local storage",
	Long: `Fetch the value stored under key in the node's offchain local storage,
decode it from hex and print it as text.

The key defaults to template_pallet::indexing1, the key the template pallet
writes through offchain indexing. A key with no value prints zero bytes.

Examples:
  offchain get
  offchain get template_pallet::indexing1 --kind persistent
  offchain get my_key --kind local --output yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := offchain.DefaultKey
		if len(args) == 1 {
			key = args[0]
		}

		kind, err := parseStorageKind()
		if err != nil {
			return err
		}
		if err := validateOutputFormat(outputFormat); err != nil {
			return err
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

		v, err := offchain.NewReader(client, offchain.ReaderConfig{Log: log}).Read(ctx, kind, key)
		return printReadResult(cmd.OutOrStdout(), v, err, outputFormat)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
