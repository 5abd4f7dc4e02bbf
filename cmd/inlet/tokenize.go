package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DavisPL/inlet/internal/lexer"
	"github.com/DavisPL/inlet/internal/source"
	"github.com/DavisPL/inlet/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize",
	Short: "Lex a single file and print its token stream",
	Args:  cobra.NoArgs,
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("path", "", "source file to tokenize")
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	_ = tokenizeCmd.MarkFlagRequired("path")
}

type tokenOutput struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Value int32  `json:"value,omitempty"`
	From  string `json:"from"`
	To    string `json:"to"`
}

func runTokenize(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("path")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	files := source.NewMap()
	fileID, err := files.Load(path)
	if err != nil {
		return failWithCode(2, fmt.Errorf("reading %s: %w", path, err))
	}

	tokens, lexErr := lexer.Lex(files.Get(fileID).Text)
	if lexErr != nil {
		return failWithCode(1, lexErr)
	}

	switch format {
	case "pretty":
		for _, tok := range tokens {
			fmt.Fprintf(os.Stdout, "%-12s %-10q %s-%s\n", tok.Kind, tok.Text, tok.Span.From, tok.Span.To)
		}
		return nil
	case "json":
		out := make([]tokenOutput, len(tokens))
		for i, tok := range tokens {
			out[i] = tokenOutput{
				Kind:  tok.Kind.String(),
				Text:  tok.Text,
				From:  tok.Span.From.String(),
				To:    tok.Span.To.String(),
			}
			if tok.Kind == token.NumLit {
				out[i].Value = tok.Value
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unknown --format value %q (want pretty|json)", format)
	}
}
