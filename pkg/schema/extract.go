package schema

import (
	"regexp"
	"strings"
)

// Table is a single CREATE TABLE match reduced to its names.
type Table struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
}

var (
	// createTablePattern captures the table name and the raw body up to the
	// first ")" followed by ";". The body capture is lazy and does not
	// balance parentheses.
	createTablePattern = regexp.MustCompile("(?is)CREATE TABLE\\s+[`\"]?(" + identifier + ")[`\"]?\\s*\\((.*?)\\)\\s*;")

	// columnPattern matches the leading identifier of a column fragment.
	columnPattern = regexp.MustCompile("^[`\"]?(" + identifier + ")[`\"]?")
)

// identifier is a Unicode letter or underscore followed by letters, digits
// and underscores.
const identifier = `[\p{L}_][\p{L}\p{N}_]*`

// constraintKeywords start table-level clauses that are not columns.
var constraintKeywords = []string{"PRIMARY", "FOREIGN", "CONSTRAINT", "UNIQUE", "CHECK", "KEY"}

// Parse scans text for CREATE TABLE blocks and returns one Table per match
// in order of appearance. Text without matches yields nil.
func Parse(text string) []Table {
	matches := createTablePattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	tables := make([]Table, 0, len(matches))
	for _, m := range matches {
		tables = append(tables, Table{
			Name:    m[1],
			Columns: parseColumns(m[2]),
		})
	}
	return tables
}

// parseColumns splits a table body on commas and keeps the leading
// identifier of every fragment that is not a constraint clause.
func parseColumns(body string) []string {
	columns := []string{}
	for _, fragment := range strings.Split(body, ",") {
		fragment = strings.TrimSuffix(strings.TrimSpace(fragment), ",")
		if fragment == "" || fragment == ")" || isConstraint(fragment) {
			continue
		}

		m := columnPattern.FindStringSubmatch(fragment)
		if m == nil {
			continue
		}
		columns = append(columns, m[1])
	}
	return columns
}

// isConstraint reports whether fragment begins, ignoring case, with a
// table-level keyword. Columns such as primary_email match too. A quoted
// leading name starts with its delimiter and never matches.
func isConstraint(fragment string) bool {
	upper := strings.ToUpper(fragment)
	for _, kw := range constraintKeywords {
		if strings.HasPrefix(upper, kw) {
			return true
		}
	}
	return false
}

// Format renders tables as "name: col1, col2\n" entries joined by a newline,
// which leaves a blank line between consecutive entries.
func Format(tables []Table) string {
	entries := make([]string, 0, len(tables))
	for _, t := range tables {
		entries = append(entries, t.Name+": "+strings.Join(t.Columns, ", ")+"\n")
	}
	return strings.Join(entries, "\n")
}

// Extract reduces a schema dump to its compact table listing.
// It returns the empty string when text contains no CREATE TABLE block.
func Extract(text string) string {
	return Format(Parse(text))
}

// ColumnCount returns the total number of columns across tables.
func ColumnCount(tables []Table) int {
	n := 0
	for _, t := range tables {
		n += len(t.Columns)
	}
	return n
}
