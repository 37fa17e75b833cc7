// Package ast declares the single, consolidated node hierarchy shared by
// the parsed and checked stages of the pipeline: a node's DataType field
// starts nil and is filled in by the Validator, and an Identifier
// expression is rewritten in place to a Variable or Function node rather
// than living in a parallel "Checked" tree.
//
// Modeled on cue/ast's Node/Expr/Decl interface split: every concrete
// node is its own struct with a common position pair, and a private
// marker method records which broad category it belongs to.
package ast

import "ilctools.dev/ilc/sourcemap"

// Node is implemented by every expression and statement node.
type Node interface {
	Pos() sourcemap.Location
}

// ExprNode is implemented by every expression node.
type ExprNode interface {
	Node
	exprNode()
	Type() *Type
	SetType(*Type)
}

// StmtNode is implemented by every statement node.
type StmtNode interface {
	Node
	stmtNode()
}

// exprHeader is embedded by every ExprNode, carrying the fields common to
// all expressions: location and resolved-type slot.
type exprHeader struct {
	Loc      sourcemap.Location
	DataType *Type
}

func (h *exprHeader) Pos() sourcemap.Location { return h.Loc }
func (h *exprHeader) Type() *Type             { return h.DataType }
func (h *exprHeader) SetType(t *Type)          { h.DataType = t }

// stmtHeader is embedded by every StmtNode.
type stmtHeader struct {
	Loc sourcemap.Location
}

func (h *stmtHeader) Pos() sourcemap.Location { return h.Loc }
