package ast

import "ilctools.dev/ilc/sourcemap"

// Arena owns every AST node created while parsing a single module. Go's
// garbage collector reclaims the underlying memory, so Arena does not
// implement manual allocation/free; its job is to be the single
// construction point nodes go through, so that every node's ownership is
// traceable to exactly one module and no per-kind free bookkeeping is
// needed. NodeCount reports how many nodes and objects it has built.
type Arena struct {
	nodeCount int
}

// NewArena returns an empty Arena for one module.
func NewArena() *Arena {
	return &Arena{}
}

// NodeCount returns how many nodes this arena has constructed.
func (a *Arena) NodeCount() int {
	return a.nodeCount
}

func (a *Arena) NewNumberConstant(loc sourcemap.Location, value uint64) *NumberConstantExpr {
	a.nodeCount++
	return &NumberConstantExpr{exprHeader: exprHeader{Loc: loc}, Value: value}
}

func (a *Arena) NewStringConstant(loc sourcemap.Location, value AstString) *StringConstantExpr {
	a.nodeCount++
	return &StringConstantExpr{exprHeader: exprHeader{Loc: loc}, Value: value}
}

func (a *Arena) NewBooleanConstant(loc sourcemap.Location, value bool) *BooleanConstantExpr {
	a.nodeCount++
	return &BooleanConstantExpr{exprHeader: exprHeader{Loc: loc}, Value: value}
}

func (a *Arena) NewIdentifier(loc sourcemap.Location, name AstString) *IdentifierExpr {
	a.nodeCount++
	return &IdentifierExpr{exprHeader: exprHeader{Loc: loc}, Name: name}
}

func (a *Arena) NewVariable(loc sourcemap.Location, obj *Obj) *VariableExpr {
	a.nodeCount++
	return &VariableExpr{exprHeader: exprHeader{Loc: loc}, Obj: obj}
}

func (a *Arena) NewFunction(loc sourcemap.Location, obj *Obj) *FunctionExpr {
	a.nodeCount++
	return &FunctionExpr{exprHeader: exprHeader{Loc: loc}, Obj: obj}
}

func (a *Arena) NewUnary(loc sourcemap.Location, op UnaryOp, operand ExprNode) *UnaryExpr {
	a.nodeCount++
	return &UnaryExpr{exprHeader: exprHeader{Loc: loc}, Op: op, Operand: operand}
}

func (a *Arena) NewBinary(loc sourcemap.Location, op BinaryOp, lhs, rhs ExprNode) *BinaryExpr {
	a.nodeCount++
	return &BinaryExpr{exprHeader: exprHeader{Loc: loc}, Op: op, LHS: lhs, RHS: rhs}
}

func (a *Arena) NewCall(loc sourcemap.Location, callee ExprNode, args []ExprNode) *CallExpr {
	a.nodeCount++
	return &CallExpr{exprHeader: exprHeader{Loc: loc}, Callee: callee, Arguments: args}
}

func (a *Arena) NewVarDecl(loc sourcemap.Location, variable *Obj, init ExprNode) *VarDeclStmt {
	a.nodeCount++
	return &VarDeclStmt{stmtHeader: stmtHeader{Loc: loc}, Variable: variable, Initializer: init}
}

func (a *Arena) NewBlock(loc sourcemap.Location, scope ScopeId) *BlockStmt {
	a.nodeCount++
	return &BlockStmt{stmtHeader: stmtHeader{Loc: loc}, Scope: scope}
}

func (a *Arena) NewIf(loc sourcemap.Location, cond ExprNode, then *BlockStmt, els StmtNode) *IfStmt {
	a.nodeCount++
	return &IfStmt{stmtHeader: stmtHeader{Loc: loc}, Condition: cond, Then: then, Else: els}
}

func (a *Arena) NewExpect(loc sourcemap.Location, cond ExprNode, condText string, then *BlockStmt) *ExpectStmt {
	a.nodeCount++
	return &ExpectStmt{stmtHeader: stmtHeader{Loc: loc}, Condition: cond, ConditionText: condText, Then: then}
}

func (a *Arena) NewWhile(loc sourcemap.Location, scope ScopeId, init StmtNode, cond ExprNode, inc ExprNode, body *BlockStmt) *WhileStmt {
	a.nodeCount++
	return &WhileStmt{stmtHeader: stmtHeader{Loc: loc}, Scope: scope, Initializer: init, Condition: cond, Increment: inc, Body: body}
}

func (a *Arena) NewReturn(loc sourcemap.Location, expr ExprNode) *ReturnStmt {
	a.nodeCount++
	return &ReturnStmt{stmtHeader: stmtHeader{Loc: loc}, Expr: expr}
}

func (a *Arena) NewExprStmt(loc sourcemap.Location, expr ExprNode) *ExprStmt {
	a.nodeCount++
	return &ExprStmt{stmtHeader: stmtHeader{Loc: loc}, Expr: expr}
}

func (a *Arena) NewDefer(loc sourcemap.Location, body StmtNode) *DeferStmt {
	a.nodeCount++
	return &DeferStmt{stmtHeader: stmtHeader{Loc: loc}, Body: body}
}

func (a *Arena) NewObj(kind ObjKind, loc sourcemap.Location, name AstString) *Obj {
	a.nodeCount++
	return &Obj{Kind: kind, Loc: loc, Name: name}
}
