package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kodeflow/monkey/token"
)

func TestLetStatementString(t *testing.T) {
	stmt := &LetStatement{
		Token: token.Token{Type: token.LET, Literal: "let"},
		Name: &Identifier{
			Token: token.Token{Type: token.IDENT, Literal: "x"},
			Value: "x",
		},
		Value: &IntegerLiteral{
			Token: token.Token{Type: token.INT, Literal: "5"},
			Value: 5,
		},
	}

	assert.Equal(t, "let x = 5;", stmt.String())
	assert.Equal(t, "let", stmt.TokenLiteral())
}

func TestReturnStatementString(t *testing.T) {
	stmt := &ReturnStatement{
		Token: token.Token{Type: token.RETURN, Literal: "return"},
		ReturnValue: &IntegerLiteral{
			Token: token.Token{Type: token.INT, Literal: "5"},
			Value: 5,
		},
	}

	assert.Equal(t, "return 5;", stmt.String())
}

func TestPrefixAndInfixExpressionString(t *testing.T) {
	minusFive := &PrefixExpression{
		Token:    token.Token{Type: token.MINUS, Literal: "-"},
		Operator: "-",
		Right:    &IntegerLiteral{Token: token.Token{Type: token.INT, Literal: "5"}, Value: 5},
	}
	assert.Equal(t, "(-5)", minusFive.String())

	sum := &InfixExpression{
		Token:    token.Token{Type: token.PLUS, Literal: "+"},
		Left:     &IntegerLiteral{Token: token.Token{Type: token.INT, Literal: "1"}, Value: 1},
		Operator: "+",
		Right:    &IntegerLiteral{Token: token.Token{Type: token.INT, Literal: "2"}, Value: 2},
	}
	assert.Equal(t, "(1 + 2)", sum.String())
}

func TestIfExpressionString(t *testing.T) {
	ifExp := &IfExpression{
		Token: token.Token{Type: token.IF, Literal: "if"},
		Condition: &Identifier{
			Token: token.Token{Type: token.IDENT, Literal: "x"},
			Value: "x",
		},
		Consequence: &BlockStatement{
			Token: token.Token{Type: token.LBRACE, Literal: "{"},
			Statements: []Statement{
				&ExpressionStatement{
					Token: token.Token{Type: token.IDENT, Literal: "x"},
					Expression: &Identifier{
						Token: token.Token{Type: token.IDENT, Literal: "x"},
						Value: "x",
					},
				},
			},
		},
	}

	assert.Equal(t, "ifx x", ifExp.String())
}

func TestProgramStringEmpty(t *testing.T) {
	program := &Program{Statements: []Statement{}}
	assert.Equal(t, "", program.String())
	assert.Equal(t, "", program.TokenLiteral())
}
