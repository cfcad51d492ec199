package yamlparse

import (
	"context"
	"errors"
	"fmt"

	goyaml "github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"
)

// GoccyParser checks syntax with github.com/goccy/go-yaml.
// Its positions carry both line and column.
type GoccyParser struct {
	opts Options
}

// NewGoccyParser creates a goccy-backed parser.
func NewGoccyParser(opts Options) *GoccyParser {
	return &GoccyParser{opts: opts}
}

// Name returns the parser name.
func (p *GoccyParser) Name() string {
	return NameGoccy
}

// Parse builds the AST for data and reports the first syntax problem.
// Duplicate mapping keys are accepted; the last value wins on load.
func (p *GoccyParser) Parse(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := checkCharacters(data); err != nil {
		return err
	}

	file, err := parser.ParseBytes(data, 0, parser.AllowDuplicateMapKey())
	if err != nil {
		return fromGoccyError(err)
	}

	for _, doc := range file.Docs {
		if doc == nil || doc.Body == nil {
			continue
		}
		if err := checkAliases(doc.Body); err != nil {
			return err
		}
	}

	if !p.opts.AllowMultiDocument {
		// goccy folds empty documents together, so count from tokens
		if tk := secondDocumentToken(lexer.Tokenize(string(data))); tk != nil {
			line, column, _ := tokenPosition(tk)
			return &SyntaxError{
				Message: MsgMultipleDocuments,
				Line:    line,
				Column:  column,
			}
		}
	}

	return nil
}

func fromGoccyError(err error) error {
	var yerr goyaml.Error
	if !errors.As(err, &yerr) {
		return err
	}

	synErr := &SyntaxError{Message: yerr.GetMessage()}
	if line, column, ok := tokenPosition(yerr.GetToken()); ok {
		synErr.Line = line
		synErr.Column = column
	}
	return synErr
}

// secondDocumentToken returns the token that opens the second document in
// the stream, or nil when there is at most one. A "---" marker always opens
// a document; other content opens one only when none is open.
func secondDocumentToken(tokens token.Tokens) *token.Token {
	docs := 0
	open := false
	directive := false

	for _, tk := range tokens {
		switch tk.Type {
		case token.CommentType:
			continue
		case token.DocumentHeaderType:
			docs++
			open = true
			directive = false
		case token.DocumentEndType:
			open = false
		case token.DirectiveType:
			directive = true
		default:
			if !open && !directive {
				docs++
				open = true
			}
		}
		if docs > 1 {
			return tk
		}
	}
	return nil
}

// aliasChecker walks a document in order, recording anchors and failing on
// the first alias that names no earlier anchor.
type aliasChecker struct {
	anchors map[string]bool
	err     error
}

func checkAliases(body ast.Node) error {
	c := &aliasChecker{anchors: map[string]bool{}}
	ast.Walk(c, body)
	return c.err
}

func (c *aliasChecker) Visit(node ast.Node) ast.Visitor {
	if c.err != nil || node == nil {
		return nil
	}

	switch n := node.(type) {
	case *ast.AnchorNode:
		c.anchors[nodeValue(n.Name)] = true
	case *ast.AliasNode:
		name := nodeValue(n.Value)
		if !c.anchors[name] {
			synErr := &SyntaxError{Message: fmt.Sprintf("found undefined alias %q", name)}
			if line, column, ok := tokenPosition(n.GetToken()); ok {
				synErr.Line = line
				synErr.Column = column
			}
			c.err = synErr
			return nil
		}
	}
	return c
}

func nodeValue(node ast.Node) string {
	if node == nil {
		return ""
	}
	if tk := node.GetToken(); tk != nil {
		return tk.Value
	}
	return node.String()
}

func tokenPosition(tk *token.Token) (int, int, bool) {
	if tk == nil || tk.Position == nil || tk.Position.Line < 1 {
		return 0, 0, false
	}
	column := tk.Position.Column
	if column < 1 {
		column = 0
	}
	return tk.Position.Line, column, true
}
