// internal/parse/grammar.go
//
// participle lexers and grammars for the mission text formats.

package parse

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// gridLexer tokenises the planet and rover lines: "5x4", "2,0 0,3", "1,2", "N".
var gridLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Times", Pattern: `[xX]`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

// commandLexer yields one token per non-blank character.
var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Cmd", Pattern: `\S`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type sizeAST struct {
	Width  int `parser:"@Int Times"`
	Height int `parser:"@Int"`
}

type pairAST struct {
	X int `parser:"@Int Comma"`
	Y int `parser:"@Int"`
}

type obstaclesAST struct {
	Pairs []*pairAST `parser:"@@*"`
}

type headingAST struct {
	Letter string `parser:"@Ident"`
}

type commandsAST struct {
	Letters []string `parser:"@Cmd*"`
}

var (
	sizeParser      = build[sizeAST](gridLexer)
	pairParser      = build[pairAST](gridLexer)
	obstaclesParser = build[obstaclesAST](gridLexer)
	headingParser   = build[headingAST](gridLexer)
	commandsParser  = build[commandsAST](commandLexer)
)

func build[G any](lex lexer.Definition) *participle.Parser[G] {
	return participle.MustBuild[G](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
	)
}
