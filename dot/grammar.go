// SPDX-License-Identifier: MIT

// Package dot - lexer and grammar for the supported DOT subset. The AST
// types below map one-to-one onto grammar productions; decode.go lowers
// them into a core.Graph.

package dot

import (
	"errors"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Sentinel errors for the DOT bridge.
var (
	// ErrGraphNil indicates Marshal received a nil graph.
	ErrGraphNil = errors.New("dot: graph is nil")

	// ErrMalformed indicates the document failed to parse or mixes edge
	// operators inconsistently with the graph kind.
	ErrMalformed = errors.New("dot: malformed document")
)

// dotLexer tokenizes the DOT subset. C, C++ and shell comments are elided
// together with whitespace; Arrow precedes Punct so "->" and "--" never
// split into single punctuation tokens.
var dotLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*|#[^\n]*|/\*([^*]|\*+[^*/])*\*+/`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Number", Pattern: `[-+]?(\d+(\.\d*)?|\.\d+)`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Arrow", Pattern: `->|--`},
	{Name: "Punct", Pattern: `[{}\[\];=,]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// dotParser is the compiled grammar. Lookahead 2 disambiguates the
// statement union: "graph [" (defaults) vs "graph =" (assignment) vs
// "a ->" (edge) vs "a" (node).
var dotParser = participle.MustBuild[dotFile](
	participle.Lexer(dotLexer),
	participle.Unquote("String"),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// dotFile is the document root: optional strict, the graph kind, an
// optional name, and the braced statement list.
type dotFile struct {
	Strict   bool       `parser:"@\"strict\"?"`
	Directed string     `parser:"@(\"digraph\" | \"graph\")"`
	Name     string     `parser:"(@Ident | @String)?"`
	Stmts    []*dotStmt `parser:"\"{\" (@@ \";\"*)* \"}\""`
}

// dotStmt is the statement union; alternatives are tried in order.
type dotStmt struct {
	Defaults *dotDefaults `parser:"  @@"`
	Assign   *dotAttr     `parser:"| @@"`
	Edge     *dotEdgeStmt `parser:"| @@"`
	Node     *dotNodeStmt `parser:"| @@"`
}

// dotDefaults is a graph/node/edge default-attribute block.
type dotDefaults struct {
	Target string     `parser:"@(\"graph\" | \"node\" | \"edge\")"`
	Attrs  []*dotAttr `parser:"\"[\" (@@ (\",\"? @@)*)? \"]\""`
}

// dotEdgeStmt is an edge chain: a first endpoint, one or more hops, and an
// optional shared attribute block applied to every hop.
type dotEdgeStmt struct {
	From  string     `parser:"@(Ident | String | Number)"`
	Hops  []*dotHop  `parser:"@@+"`
	Attrs []*dotAttr `parser:"(\"[\" (@@ (\",\"? @@)*)? \"]\")?"`
}

// dotHop is one edge operator and its destination.
type dotHop struct {
	Op string `parser:"@Arrow"`
	To string `parser:"@(Ident | String | Number)"`
}

// dotNodeStmt is a node declaration with an optional attribute block.
type dotNodeStmt struct {
	ID    string     `parser:"@(Ident | String | Number)"`
	Attrs []*dotAttr `parser:"(\"[\" (@@ (\",\"? @@)*)? \"]\")?"`
}

// dotAttr is one key=value pair; also used for top-level assignments.
type dotAttr struct {
	Key   string `parser:"@(Ident | String)"`
	Value string `parser:"\"=\" @(Ident | String | Number)"`
}
