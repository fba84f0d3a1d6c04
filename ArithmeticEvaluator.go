package main

import (
	"fmt"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"math"
	"scMicroservice/contracts"
	"strings"
	"unicode/utf8"
)

// ArithmeticEvaluator computes `+ - * /` expressions over numeric literals.
// The expression is only parsed, never compiled or run: the AST walk below
// is a whitelist, everything else is rejected.
type ArithmeticEvaluator struct{}

func NewArithmeticEvaluator() *ArithmeticEvaluator {
	return &ArithmeticEvaluator{}
}

func (a *ArithmeticEvaluator) Evaluate(expression string) (float64, error) {
	if strings.TrimSpace(expression) == "" {
		return 0, fmt.Errorf("%w: empty expression", contracts.EvaluationError)
	}

	normalized, err := normalizeExpression(expression)
	if err != nil {
		return 0, err
	}

	tree, err := parser.Parse(normalized)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", contracts.EvaluationError, firstLine(err.Error()))
	}

	visitor := &UnresolvedTokensVisitor{}
	ast.Walk(&tree.Node, visitor)
	if len(visitor.tokens) > 0 {
		return 0, fmt.Errorf("%w: unresolved token `%s`", contracts.EvaluationError, visitor.tokens[0])
	}

	value, err := a.evaluateNode(tree.Node)
	if err != nil {
		return 0, err
	}

	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, fmt.Errorf("%w: numeric overflow", contracts.EvaluationError)
	}

	return value, nil
}

// CheckSyntax rejects a formula whose tokens can never evaluate, before any of its references are resolved.
func (a *ArithmeticEvaluator) CheckSyntax(formula string) error {
	_, err := normalizeExpression(formula)
	return err
}

func (a *ArithmeticEvaluator) evaluateNode(node ast.Node) (float64, error) {
	switch typedNode := node.(type) {
	case *ast.IntegerNode:
		return float64(typedNode.Value), nil

	case *ast.FloatNode:
		return typedNode.Value, nil

	case *ast.UnaryNode:
		operand, err := a.evaluateNode(typedNode.Node)
		if err != nil {
			return 0, err
		}

		switch typedNode.Operator {
		case "-":
			return -operand, nil
		case "+":
			return operand, nil
		}
		return 0, fmt.Errorf("%w: unsupported operator `%s`", contracts.EvaluationError, typedNode.Operator)

	case *ast.BinaryNode:
		return a.evaluateBinary(typedNode)

	case *ast.IdentifierNode:
		return 0, fmt.Errorf("%w: unresolved token `%s`", contracts.EvaluationError, typedNode.Value)
	}

	return 0, fmt.Errorf("%w: unsupported expression %T", contracts.EvaluationError, node)
}

func (a *ArithmeticEvaluator) evaluateBinary(node *ast.BinaryNode) (float64, error) {
	switch node.Operator {
	case "+", "-", "*", "/":
	default:
		return 0, fmt.Errorf("%w: unsupported operator `%s`", contracts.EvaluationError, node.Operator)
	}

	left, err := a.evaluateNode(node.Left)
	if err != nil {
		return 0, err
	}

	right, err := a.evaluateNode(node.Right)
	if err != nil {
		return 0, err
	}

	switch node.Operator {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	}

	if right == 0 {
		return 0, contracts.DivisionByZeroError
	}
	return left / right, nil
}

// normalizeExpression lets through only decimal numerals, words, `+ - * / ( )` and spaces,
// so expr's own lexer never sees comments, hex, exponents or digit separators.
// Integer numerals are rewritten as float literals: the walk works in float64 and
// expr cannot parse integers beyond int64.
func normalizeExpression(expression string) (string, error) {
	var normalized strings.Builder
	normalized.Grow(len(expression))

	for i := 0; i < len(expression); {
		char := expression[i]

		switch {
		case char == ' ' || char == '\t' || char == '\n' || char == '\r':
			normalized.WriteByte(char)
			i++

		case isDigit(char):
			end := skipDigits(expression, i)
			fractional := false
			if end < len(expression) && expression[end] == '.' {
				fractionEnd := skipDigits(expression, end+1)
				if fractionEnd == end+1 {
					return "", invalidNumeral(expression, i)
				}
				end = fractionEnd
				fractional = true
			}
			if end < len(expression) && (isWordChar(expression[end]) || expression[end] == '.') {
				return "", invalidNumeral(expression, i)
			}

			normalized.WriteString(expression[i:end])
			if !fractional {
				normalized.WriteString(".0")
			}
			i = end

		case isLetter(char):
			end := i
			for end < len(expression) && isWordChar(expression[end]) {
				end++
			}
			normalized.WriteString(expression[i:end])
			i = end

		case char == '/' && i+1 < len(expression) && (expression[i+1] == '/' || expression[i+1] == '*'):
			return "", fmt.Errorf("%w: unexpected `%s`", contracts.EvaluationError, expression[i:i+2])

		case strings.IndexByte("+-*/()", char) >= 0:
			normalized.WriteByte(char)
			i++

		default:
			unexpected, _ := utf8.DecodeRuneInString(expression[i:])
			return "", fmt.Errorf("%w: unexpected character %q", contracts.EvaluationError, unexpected)
		}
	}

	return normalized.String(), nil
}

func invalidNumeral(expression string, start int) error {
	end := start
	for end < len(expression) && (isWordChar(expression[end]) || expression[end] == '.') {
		end++
	}
	return fmt.Errorf("%w: invalid numeric literal `%s`", contracts.EvaluationError, expression[start:end])
}

func skipDigits(expression string, start int) int {
	for start < len(expression) && isDigit(expression[start]) {
		start++
	}
	return start
}

func isDigit(char byte) bool {
	return '0' <= char && char <= '9'
}

func isLetter(char byte) bool {
	return 'a' <= char && char <= 'z' || 'A' <= char && char <= 'Z'
}

func isWordChar(char byte) bool {
	return isDigit(char) || isLetter(char) || char == '_'
}

func firstLine(message string) string {
	line, _, _ := strings.Cut(message, "\n")
	return line
}
