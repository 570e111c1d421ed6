// Package schema reduces SQL CREATE TABLE dumps to compact name listings.
//
// The extractor is a regex scan, not a parser. It finds every
// CREATE TABLE <name> ( <body> ); block, splits the body on commas and keeps
// the leading identifier of each fragment that is not a table-level
// constraint. Types, defaults and constraints are dropped.
//
// # Basic Usage
//
//	listing := schema.Extract(`CREATE TABLE t (id INT PRIMARY KEY, name VARCHAR(50));`)
//	// listing == "t: id, name\n"
//
// # Known Limitations
//
// The table body ends at the first ")" followed by optional whitespace and
// ";". A body containing that sequence inside a string literal or comment
// is cut short. The comma split ignores parentheses, so fragments such as
// "2)" from DECIMAL(10,2) are produced and then dropped because they do not
// start with an identifier.
//
// A fragment is a constraint when it begins, ignoring case, with PRIMARY,
// FOREIGN, CONSTRAINT, UNIQUE, CHECK or KEY. Unquoted columns whose names
// start with those words (primary_email, checksum) are dropped with them.
// Quote such names to keep them.
package schema
