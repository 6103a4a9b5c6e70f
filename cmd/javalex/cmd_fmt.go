package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/javafront/javadoc"
	"github.com/dhamidi/javafront/lexer"
	"github.com/dhamidi/javafront/services"
	"github.com/dhamidi/javafront/token"
	"github.com/spf13/cobra"
)

// newFmtCmd builds the "fmt" subcommand. Grounded on cmd_fmt.go's
// "fmt [file]" shape; --doc is this front end's reduction of that
// command to what C4-C8 actually cover: pretty-printing every Javadoc
// comment in the file (not the surrounding Java source, which is above
// this front end's scope).
func newFmtCmd() *cobra.Command {
	var doc bool

	cmd := &cobra.Command{
		Use:   "fmt <file.java>",
		Short: "Pretty-print the Javadoc comments in a .java file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !doc {
				return fmt.Errorf("fmt requires --doc: this front end formats Javadoc comments, not Java source")
			}

			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			svc := services.New(lexer.DefaultOptions())
			tok := svc.NewTokenizer(src)

			out := cmd.OutOrStdout()
			for {
				t := tok.ReadToken()
				if c, ok := tok.TakePendingDocComment(); ok {
					parsed := svc.ParseDocComment(c.Text)
					fmt.Fprintf(out, "--- comment at %d ---\n%s\n", c.Pos, javadoc.Format(parsed))
				}
				if t.Kind == token.EOF {
					break
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&doc, "doc", false, "format Javadoc comments instead of Java source")

	return cmd
}
