// offchain reads and writes a Substrate node's offchain local storage.
//
// By default it fetches the value the template pallet stores under
// template_pallet::indexing1 through offchain indexing, decodes it from hex
// and prints it as text.
package main

import (
	"os"

	"github.com/offchain-tools/offchain-cli/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
