package commands

import (
	"fmt"

	"github.com/leapstack-labs/schemastrip/internal/cli/config"
	"github.com/leapstack-labs/schemastrip/internal/llm"
	"github.com/leapstack-labs/schemastrip/pkg/schema"
	"github.com/spf13/cobra"
)

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "tokens <input>",
		Short: "Count prompt tokens in a schema file",
		Long: `Count how many tokens a file costs in a prompt, using the tokenizer of
llm.token_model. Unknown models fall back to the cl100k_base encoding.

With --compact the compact listing is counted as well, showing how much the
extraction saves.`,
		Example: `  schemastrip tokens schema.sql
  schemastrip tokens --compact --token-model gpt-3.5-turbo schema.sql`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args[0], compact)
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "Also count the compact listing")
	cmd.Flags().String("token-model", "", "Model whose tokenizer is used (overrides llm.token_model)")

	return cmd
}

func runTokens(cmd *cobra.Command, inputPath string, compact bool) error {
	cfg := config.GetConfig(cmd.Context())
	model := cfg.LLM.TokenModel
	w := cmd.OutOrStdout()

	text, err := readSchema(inputPath)
	if err != nil {
		return err
	}

	raw, err := llm.CountTokens(model, text)
	if err != nil {
		return err
	}
	if !compact {
		_, _ = fmt.Fprintf(w, "%d\n", raw)
		return nil
	}

	reduced, err := llm.CountTokens(model, schema.Extract(text))
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "raw:     %d\n", raw)
	_, _ = fmt.Fprintf(w, "compact: %d\n", reduced)
	if raw > 0 {
		_, _ = fmt.Fprintf(w, "saved:   %d (%.1f%%)\n", raw-reduced, 100*float64(raw-reduced)/float64(raw))
	}
	return nil
}
