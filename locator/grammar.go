package locator

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// grammar is the parse tree of a query: Name { Op Name }.
type grammar struct {
	Head string  `parser:"@Name"`
	Tail []*step `parser:"@@*"`
}

type step struct {
	Op   string `parser:"@Op"`
	Name string `parser:"@Name"`
}

var lex = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Op", Pattern: `[+/]`},
	{Name: "Name", Pattern: `[^+/\s]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[grammar](
	participle.Lexer(lex),
	participle.Elide("Whitespace"),
)
