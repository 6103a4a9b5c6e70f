package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/javafront/lexer"
	"github.com/dhamidi/javafront/services"
	"github.com/dhamidi/javafront/token"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	var allowBinary, allowUnderscore, allowTextBlocks bool

	cmd := &cobra.Command{
		Use:   "tokens <file.java>",
		Short: "Dump the token stream of a .java file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			opts := lexer.Options{
				AllowBinaryLiterals:     allowBinary,
				AllowUnderscoreLiterals: allowUnderscore,
				AllowTextBlocks:         allowTextBlocks,
			}
			svc := services.New(opts)
			tok := svc.NewTokenizer(src)

			for {
				t := tok.ReadToken()
				fmt.Fprintf(cmd.OutOrStdout(), "%d:%d %s\n", t.Start, t.End, t.Kind)
				if t.Kind == token.EOF {
					break
				}
			}

			for _, d := range svc.Log.Diagnostics {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d: %s\n", d.Pos, d.Code)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&allowBinary, "allow-binary-literals", true, "recognize 0b/0B binary integer literals")
	cmd.Flags().BoolVar(&allowUnderscore, "allow-underscore-literals", true, "recognize underscores as digit separators")
	cmd.Flags().BoolVar(&allowTextBlocks, "allow-text-blocks", true, "recognize \"\"\"...\"\"\" text blocks")

	return cmd
}
