package parser

import "ilctools.dev/ilc/token"

// precedence levels, low to high, for the Pratt expression parser.
// The bitwise levels are listed for completeness only: this language's
// expression AST defines no bitwise binary node, and no rule below uses
// them — only Assign, Add, Subtract, Multiply, Divide, the comparisons,
// PropertyAccess, and Call have infix rules, so a bitwise operator token
// simply ends the expression before it.
type precedence int

const (
	precNone precedence = iota
	precAssignment
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precComparison
	precBitShift
	precTerm
	precFactor
	precUnary
	precCall
	precPrimary
)

// infixRule describes how to continue parsing once tok has been seen as
// an infix/postfix operator.
type infixRule struct {
	prec          precedence
	rightAssoc    bool
}

var infixRules = map[token.Token]infixRule{
	token.EQ:     {prec: precAssignment, rightAssoc: true},
	token.EQEQ:   {prec: precEquality},
	token.BANGEQ: {prec: precEquality},
	token.LT:     {prec: precComparison},
	token.LTEQ:   {prec: precComparison},
	token.GT:     {prec: precComparison},
	token.GTEQ:   {prec: precComparison},
	token.PLUS:   {prec: precTerm},
	token.MINUS:  {prec: precTerm},
	token.STAR:   {prec: precFactor},
	token.SLASH:  {prec: precFactor},
	token.DOT:    {prec: precCall},
	token.LPAREN: {prec: precCall},
}
