package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/javafront/doctree"
	"github.com/dhamidi/javafront/javadoc"
	"github.com/dhamidi/javafront/lexer"
	"github.com/dhamidi/javafront/services"
	"github.com/dhamidi/javafront/token"
	"github.com/spf13/cobra"
)

// newDocCmd builds the "doc" subcommand: find the Javadoc comment
// attached to the declaration of the named identifier and parse it
// through C6/C7.
//
// Grounded on cmd_doc.go's "doc <name>" resolution flow, cut down to
// this front end's actual scope: there is no declaration-level parser
// (spec.md §1 Non-goal: "full Java grammar above token level"), so a
// member is located the way a comment is — by its nearest following
// IDENTIFIER token — rather than by resolving it against a class model.
func newDocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc <file.java> <member>",
		Short: "Show the parsed Javadoc comment attached to a declaration",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			doc, err := findDocComment(src, args[1])
			if err != nil {
				return err
			}
			if doc == nil {
				return fmt.Errorf("no Javadoc comment found for %s in %s", args[1], args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), javadoc.Format(doc))
			return nil
		},
	}

	return cmd
}

func findDocComment(src []byte, member string) (*doctree.DocCommentTree, error) {
	svc := services.New(lexer.DefaultOptions())
	tok := svc.NewTokenizer(src)

	var pending string
	var havePending bool

	for {
		t := tok.ReadToken()
		if c, ok := tok.TakePendingDocComment(); ok {
			pending, havePending = c.Text, true
		}
		if t.Kind == token.IDENTIFIER && t.NamedValue.String() == member {
			if !havePending {
				return nil, nil
			}
			return svc.ParseDocComment(pending), nil
		}
		if t.Kind == token.EOF {
			break
		}
	}
	return nil, nil
}
