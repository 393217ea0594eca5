package cmd

import (
	"fmt"

	"github.com/offchain-tools/offchain-cli/pkg/node"
	"github.com/offchain-tools/offchain-cli/pkg/offchain"
	"github.com/spf13/cobra"
)

var nodeCmd = &cobra.Command{
	Use:   "node",
	Short: "Node information",
	Long:  `Node information operations.`,
}

var nodeInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Get node information",
	Long:  `Get the client name, version and chain of the node at --rpc-url or --network.`,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		client, err := offchain.Connect(ctx, uri, node.DialConfig{})
		if err != nil {
			return err
		}
		defer client.Close()

		info, err := client.GetInfo(ctx)
		if err != nil {
			return fmt.Errorf("%w: failed to get node info: %w", offchain.ErrRPC, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Endpoint: %s\n", client.URI())
		fmt.Fprintf(out, "Client:   %s %s\n", info.Name, info.Version)
		fmt.Fprintf(out, "Chain:    %s\n", info.Chain)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nodeCmd)
	nodeCmd.AddCommand(nodeInfoCmd)
}
