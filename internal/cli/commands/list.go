package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/schemastrip/internal/cli/config"
	"github.com/leapstack-labs/schemastrip/internal/cli/output"
	"github.com/leapstack-labs/schemastrip/pkg/schema"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <input>",
		Short: "Show the tables and columns found in a schema file",
		Long: `Parse a schema file and print every CREATE TABLE match with its columns.

Output adapts to environment:
  - Terminal: table with a styled summary
  - Piped/Scripted: Markdown format

Use --output to override: auto, text, markdown, json`,
		Example: `  # List tables (auto-detect output format)
  schemastrip list schema.sql

  # List tables as JSON
  schemastrip list schema.sql --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args[0])
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output format (auto|text|markdown|json)")
	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "markdown", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func runList(cmd *cobra.Command, inputPath string) error {
	cfg := config.GetConfig(cmd.Context())
	logger := config.GetLogger(cmd.Context())
	mode, err := output.ParseMode(cfg.OutputFormat)
	if err != nil {
		return err
	}
	r := output.NewRenderer(cmd.OutOrStdout(), mode)

	text, err := readSchema(inputPath)
	if err != nil {
		return err
	}
	tables := schema.Parse(text)
	logger.Debug("parsed schema", "input", inputPath, "tables", len(tables))

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listJSON(r, tables)
	case output.ModeMarkdown:
		return listMarkdown(r, tables)
	default:
		return listText(r, tables)
	}
}

// listText outputs tables as a go-pretty table followed by a summary line.
func listText(r *output.Renderer, tables []schema.Table) error {
	styles := r.Styles()
	if len(tables) == 0 {
		_, _ = fmt.Fprintln(r.Out(), styles.Muted.Render("(no tables)"))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Table", "Columns", "#"})
	for _, tbl := range tables {
		t.AppendRow(table.Row{tbl.Name, strings.Join(tbl.Columns, ", "), len(tbl.Columns)})
	}
	t.Render()

	_, _ = fmt.Fprintf(r.Out(), "%s, %s\n",
		styles.Header.Render(fmt.Sprintf("%d tables", len(tables))),
		styles.Accent.Render(fmt.Sprintf("%d columns", schema.ColumnCount(tables))))
	return nil
}

// listMarkdown outputs tables as a Markdown table.
func listMarkdown(r *output.Renderer, tables []schema.Table) error {
	w := r.Out()
	if len(tables) == 0 {
		_, _ = fmt.Fprintln(w, "(no tables)")
		return nil
	}

	_, _ = fmt.Fprintln(w, "| table | columns |")
	_, _ = fmt.Fprintln(w, "| --- | --- |")
	for _, tbl := range tables {
		_, _ = fmt.Fprintf(w, "| %s | %s |\n", tbl.Name, strings.Join(tbl.Columns, ", "))
	}
	return nil
}

// listJSON outputs tables as an indented JSON array.
func listJSON(r *output.Renderer, tables []schema.Table) error {
	if tables == nil {
		tables = []schema.Table{}
	}
	enc := json.NewEncoder(r.Out())
	enc.SetIndent("", "  ")
	return enc.Encode(tables)
}
