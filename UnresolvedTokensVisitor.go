package main

import (
	"github.com/expr-lang/expr/ast"
)

// UnresolvedTokensVisitor collects identifiers left in an expression after substitution.
type UnresolvedTokensVisitor struct {
	tokens []string
}

func (v *UnresolvedTokensVisitor) Visit(node *ast.Node) {
	if identifierNode, ok := (*node).(*ast.IdentifierNode); ok {
		v.tokens = append(v.tokens, identifierNode.Value)
	}
}
