package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/leapstack-labs/schemastrip/internal/cli/config"
	"github.com/leapstack-labs/schemastrip/internal/llm"
	"github.com/leapstack-labs/schemastrip/pkg/schema"
	"github.com/spf13/cobra"
)

// NewAskCommand creates the ask command.
func NewAskCommand() *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "ask <prompt...>",
		Short: "Send a prompt to the configured chat model",
		Long: `Send a single user prompt to an OpenAI-compatible chat completion API
and print the reply.

Failed calls are retried with a linearly growing delay (2s, then 4s by
default). The API key is taken from llm.api_key, or from the environment
variable named by llm.api_key_env (OPENAI_API_KEY by default). A .env file
in the working directory is loaded first when present.`,
		Example: `  # Ask a question
  schemastrip ask "What does a foreign key do?"

  # Ask with the compact listing of a schema prepended
  schemastrip ask --schema schema.sql "Which table stores order totals?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, strings.Join(args, " "), schemaPath)
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "Schema file whose compact listing is prepended to the prompt")
	cmd.Flags().String("model", "", "Chat model name (overrides llm.model)")
	cmd.Flags().String("base-url", "", "API root URL (overrides llm.base_url)")
	cmd.Flags().Int("max-attempts", 0, "Total attempts before giving up (overrides llm.max_attempts)")
	cmd.Flags().Duration("retry-delay", 0, "Linear backoff step (overrides llm.retry_delay)")
	cmd.Flags().Duration("timeout", 0, "Per-request timeout (overrides llm.timeout)")

	return cmd
}

func runAsk(cmd *cobra.Command, question, schemaPath string) error {
	cfg := config.GetConfig(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	if err := loadEnvFile(cfg.LLM.EnvFile, logger); err != nil {
		return err
	}

	prompt := question
	if schemaPath != "" {
		text, err := readSchema(schemaPath)
		if err != nil {
			return err
		}
		prompt = buildPrompt(schema.Extract(text), question)
	}

	client := newChatClient(cfg.LLM, logger)
	logger.Debug("sending prompt", "model", cfg.LLM.Model, "chars", len(prompt))

	reply, err := client.Complete(cmd.Context(), prompt)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), reply)
	return nil
}

// newChatClient builds the retrying OpenAI client described by cfg.
func newChatClient(cfg config.LLMConfig, logger *slog.Logger) llm.Client {
	apiKey := llm.ResolveAPIKey(cfg.APIKey, cfg.APIKeyEnv)
	base := llm.NewOpenAI(cfg.Model, apiKey,
		llm.WithBaseURL(cfg.BaseURL),
		llm.WithTimeout(cfg.Timeout))
	return llm.NewRetrying(base,
		llm.WithMaxAttempts(cfg.MaxAttempts),
		llm.WithRetryDelay(cfg.RetryDelay),
		llm.WithLogger(logger))
}

// buildPrompt prepends a compact schema listing to question.
func buildPrompt(listing, question string) string {
	if listing == "" {
		return question
	}
	var b strings.Builder
	b.WriteString("Database schema (table: columns):\n\n")
	b.WriteString(listing)
	b.WriteString("\n")
	b.WriteString(question)
	return b.String()
}

// loadEnvFile loads KEY=VALUE pairs from path without overriding variables
// that are already set. A missing file is not an error.
func loadEnvFile(path string, logger *slog.Logger) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	logger.Debug("loaded env file", "path", path)
	return nil
}
