package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/offchain-tools/offchain-cli/pkg/offchain"
	"gopkg.in/yaml.v3"
)

// printValue writes v to w in the --output format.
func printValue(w io.Writer, v *offchain.Value, format string) error {
	switch strings.ToLower(format) {
	case "text", "":
		printBytesStages(w, v)
		fmt.Fprintf(w, "indexing_data %s\n", displayText(v.Text, isTerminal(w)))
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("invalid --output %q: use text, json or yaml", format)
	}
}

// printBytesStages writes the hex and byte lines of the text format.
func printBytesStages(w io.Writer, v *offchain.Value) {
	fmt.Fprintf(w, "hexValue %s\n", v.Hex)
	fmt.Fprintf(w, "indexing_data %v\n", v.Bytes)
}

// printReadResult prints the outcome of a read. When the payload decoder
// rejected the value, the text format still shows the stages that succeeded
// before err is returned.
func printReadResult(w io.Writer, v *offchain.Value, err error, format string) error {
	if err != nil {
		if v != nil && isTextFormat(format) {
			printBytesStages(w, v)
		}
		return err
	}
	return printValue(w, v, format)
}

func isTextFormat(format string) bool {
	f := strings.ToLower(format)
	return f == "text" || f == ""
}

// validateOutputFormat rejects unknown formats before any node call is made.
func validateOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case "text", "", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("invalid --output %q: use text, json or yaml", format)
	}
}

// displayText quotes s when it would emit control characters to a terminal.
func displayText(s string, tty bool) string {
	if !tty {
		return s
	}
	if strings.IndexFunc(s, func(r rune) bool { return !unicode.IsPrint(r) }) >= 0 {
		return strconv.Quote(s)
	}
	return s
}
