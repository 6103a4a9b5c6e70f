// Command javalex is the sample CLI driver for the Java lexical
// analyzer and Javadoc doc-comment parser (D2, SPEC_FULL.md §A4): it
// dumps token streams, extracts and parses a declaration's Javadoc
// comment, and pretty-prints the resulting doctree.
//
// Grounded on cmd/sai's root-command wiring (main.go's rootCmd plus one
// newXxxCmd per subcommand) and cmd_doc.go's "doc <name>" command,
// replacing cmd/javalyzer as SPEC_FULL.md's §A4 names.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "javalex",
		Short: "A Java lexer and Javadoc doc-comment tool",
	}

	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newDocCmd())
	rootCmd.AddCommand(newFmtCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
