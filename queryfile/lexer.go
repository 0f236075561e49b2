package queryfile

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// queryLexer defines the token types of the query-document language.
var queryLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments first so -- never lexes as punctuation
	{Name: "Comment", Pattern: `--[^\n]*`},

	// Keywords
	{Name: "Keyword", Pattern: `\b(from|select|where|group|order|by|page|as|and|or|asc|desc|date|timestamp|interval)\b`},

	// Comparison operators (longest first)
	{Name: "Op", Pattern: `<=|>=|<>|!=|=|<|>`},

	// Literals
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Number", Pattern: `-?\d+(?:\.\d+)?`},

	// Identifiers
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},

	// Punctuation
	{Name: "Punct", Pattern: `[-+*(),.]`},

	// Whitespace and newlines
	{Name: "Newline", Pattern: `[\r\n]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})
