// Package main provides tests for the schemastrip CLI.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/schemastrip/internal/cli"
)

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("version command error = %v", err)
	}

	if !strings.Contains(buf.String(), "schemastrip") {
		t.Errorf("version output should contain 'schemastrip', got: %s", buf.String())
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("help command error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"list", "ask", "tokens", "<input> <output>"} {
		if !strings.Contains(output, want) {
			t.Errorf("help output should mention %q, got: %s", want, output)
		}
	}
}

func TestStripEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "schema.sql")
	outPath := filepath.Join(dir, "schema.txt")

	sql := "CREATE TABLE t (id INT PRIMARY KEY, name VARCHAR(50));\nCREATE TABLE u (x INT);\n"
	if err := os.WriteFile(input, []byte(sql), 0o644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	cmd := cli.NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{input, outPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("strip error = %v", err)
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if want := "t: id, name\n\nu: x\n"; string(got) != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
