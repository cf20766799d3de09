package database

import (
	"regexp"
	"strings"
	"unicode"
)

// StatementKind decides how Run executes a statement and what it reports.
type StatementKind uint8

const (
	StatementQuery StatementKind = iota
	StatementInsert
	StatementModify
	StatementCall
	StatementOther
)

func (k StatementKind) String() string {
	switch k {
	case StatementQuery:
		return "query"
	case StatementInsert:
		return "insert"
	case StatementModify:
		return "modify"
	case StatementCall:
		return "call"
	default:
		return "other"
	}
}

// Writes reports whether the statement must run in its own transaction.
func (k StatementKind) Writes() bool {
	return k != StatementQuery
}

var returningClause = regexp.MustCompile(`(?i)\bRETURNING\b`)

// ClassifyStatement looks at the leading keyword, skipping whitespace,
// comments and opening parentheses.
func ClassifyStatement(sql string) StatementKind {
	switch leadingKeyword(sql) {
	case "SELECT", "WITH", "VALUES", "SHOW", "TABLE", "EXPLAIN":
		return StatementQuery
	case "INSERT":
		return StatementInsert
	case "UPDATE", "DELETE":
		return StatementModify
	case "CALL":
		return StatementCall
	default:
		return StatementOther
	}
}

func hasReturning(sql string) bool {
	return returningClause.MatchString(sql)
}

func leadingKeyword(sql string) string {
	s := sql
	for {
		s = strings.TrimLeftFunc(s, func(r rune) bool {
			return unicode.IsSpace(r) || r == '('
		})
		switch {
		case strings.HasPrefix(s, "--"):
			idx := strings.IndexByte(s, '\n')
			if idx < 0 {
				return ""
			}
			s = s[idx+1:]
		case strings.HasPrefix(s, "/*"):
			idx := strings.Index(s, "*/")
			if idx < 0 {
				return ""
			}
			s = s[idx+2:]
		default:
			end := strings.IndexFunc(s, func(r rune) bool {
				return !unicode.IsLetter(r)
			})
			if end < 0 {
				end = len(s)
			}
			return strings.ToUpper(s[:end])
		}
	}
}
