package common

import (
	"regexp"
	"slices"
	"strings"
)

var plainIdent = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// QuoteLiteral returns s as a single-quoted SQL string literal.
// Single quotes are doubled, which is the only escape standard SQL needs.
func QuoteLiteral(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	last := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			b.WriteString(s[last : i+1])
			b.WriteByte('\'')
			last = i + 1
		}
	}
	b.WriteString(s[last:])
	b.WriteByte('\'')
	return b.String()
}

// UnquoteLiteral reverses QuoteLiteral. It reports false if s is not a well-formed literal.
func UnquoteLiteral(s string) (string, bool) {
	if len(s) < 2 || s[0] != '\'' || s[len(s)-1] != '\'' {
		return "", false
	}
	inner := s[1 : len(s)-1]
	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\'' {
			if i+1 >= len(inner) || inner[i+1] != '\'' {
				return "", false
			}
			i++
		}
		b.WriteByte(inner[i])
	}
	return b.String(), true
}

// QuoteIdent double-quotes name unless it is a plain lower-case identifier.
// Mixed-case names such as createdAt keep their case in Postgres only when quoted.
func QuoteIdent(name string) string {
	if plainIdent.MatchString(name) && !IsKeyword(name) {
		return name
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// IsKeyword reports whether name is an SQL keyword, ignoring case.
func IsKeyword(name string) bool {
	_, found := slices.BinarySearch(keywords, strings.ToLower(name))
	return found
}

// GenCreateTableSQL generates a CREATE TABLE statement with an auto-assigned id
// followed by one TEXT column per name.
func GenCreateTableSQL(tableName string, columnNames []string) string {
	var builder strings.Builder
	builder.Grow(len(tableName) + len(columnNames)*24 + 48) // Heuristic pre-allocation

	builder.WriteString("CREATE TABLE ")
	builder.WriteString(QuoteIdent(tableName))
	builder.WriteString(" (id INTEGER PRIMARY KEY")
	for _, name := range columnNames {
		builder.WriteString(", ")
		builder.WriteString(QuoteIdent(name))
		builder.WriteString(" TEXT")
	}
	builder.WriteByte(')')
	return builder.String()
}

// keywords holds the SQLite keywords (https://sqlite.org/lang_keywords.html)
// that must be quoted when used as identifiers.
var keywords = []string{
	"abort", "action", "add", "after", "all", "alter", "always", "analyze", "and", "as",
	"asc", "attach", "autoincrement", "before", "begin", "between", "by", "cascade", "case", "cast",
	"check", "collate", "column", "commit", "conflict", "constraint", "create", "cross", "current", "current_date",
	"current_time", "current_timestamp", "database", "default", "deferrable", "deferred", "delete", "desc", "detach", "distinct",
	"do", "drop", "each", "else", "end", "escape", "except", "exclude", "exclusive", "exists",
	"explain", "fail", "filter", "first", "following", "for", "foreign", "from", "full", "generated",
	"glob", "group", "groups", "having", "if", "ignore", "immediate", "in", "index", "indexed",
	"initially", "inner", "insert", "instead", "intersect", "into", "is", "isnull", "join", "key",
	"last", "left", "like", "limit", "match", "materialized", "natural", "no", "not", "nothing",
	"notnull", "null", "nulls", "of", "offset", "on", "or", "order", "others", "outer",
	"over", "partition", "plan", "pragma", "preceding", "primary", "query", "raise", "range", "recursive",
	"references", "regexp", "reindex", "release", "rename", "replace", "restrict", "returning", "right", "rollback",
	"row", "rows", "savepoint", "select", "set", "table", "temp", "temporary", "then", "ties",
	"to", "transaction", "trigger", "unbounded", "union", "unique", "update", "using", "vacuum", "values",
	"view", "virtual", "when", "where", "window", "with", "without",
}
