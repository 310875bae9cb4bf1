package parser

import "github.com/kodeflow/monkey/token"

// Precedence levels, ascending. CALL is reserved for function-call
// parsing, which this parser does not implement (no infix parselet is
// registered for LPAREN) —
// the constant exists so the level numbering matches spec and a
// future LPAREN infix parselet can slot in without renumbering.
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x or !x
	CALL        // f(x) — unused
)

// precedences maps an operator token category to its binding power.
// Categories absent from this table are treated as LOWEST, which is
// what lets parseExpression's loop terminate on them.
var precedences = map[token.Type]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
}
