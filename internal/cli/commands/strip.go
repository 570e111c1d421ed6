package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/leapstack-labs/schemastrip/internal/cli/config"
	"github.com/leapstack-labs/schemastrip/pkg/schema"
	"github.com/spf13/cobra"
)

// RunStrip reads the schema at args[0] and writes its compact listing to args[1].
// The output file is created or truncated.
func RunStrip(cmd *cobra.Command, args []string) error {
	logger := config.GetLogger(cmd.Context())
	inputPath, outputPath := args[0], args[1]

	text, err := readSchema(inputPath)
	if err != nil {
		return err
	}

	tables := schema.Parse(text)
	logger.Debug("extracted schema",
		"input", inputPath,
		"tables", len(tables),
		"columns", schema.ColumnCount(tables))

	if err := writeListing(outputPath, schema.Format(tables)); err != nil {
		return err
	}
	logger.Debug("wrote listing", "output", outputPath)
	return nil
}

// readSchema reads the whole schema file. Errors name the path.
func readSchema(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read schema: %w", err)
	}
	return string(data), nil
}

// writeListing writes listing to path, reporting close errors too.
func writeListing(path, listing string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if _, err := io.WriteString(f, listing); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
