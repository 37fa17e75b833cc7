// Package typecheck verifies an already-validated Program's type
// agreements. Unlike the Validator, this package never
// synthesizes a type: every ExprNode it inspects already carries the
// DataType the Validator assigned, and Run's job is purely to check that
// those types are used consistently (operator operand rules, call arity
// and argument types, condition types, return-vs-signature agreement,
// and the single required `main` entry point). Errors accumulate; a
// single failed rule never stops the walk.
package typecheck

import (
	"ilctools.dev/ilc/ast"
	"ilctools.dev/ilc/ilcerrors"
	"ilctools.dev/ilc/program"
	"ilctools.dev/ilc/sourcemap"
)

// Run type-checks every module of prog, recording diagnostics on diag.
func Run(prog *program.Program, diag *ilcerrors.Diagnostics) {
	for _, mod := range prog.Modules {
		c := &checker{mod: mod, diag: diag}
		c.run()
	}
	checkEntryPoint(prog, diag)
}

type checker struct {
	mod *program.Module
	diag *ilcerrors.Diagnostics

	// fn is the function currently being checked, so return statements can
	// be verified against its declared return type.
	fn *ast.Obj
}

func (c *checker) run() {
	scope := c.mod.ModuleScope()
	objs := c.mod.Scopes.Scope(scope).Objects

	for _, g := range c.mod.Globals {
		if g.Initializer != nil {
			c.checkExpr(g.Initializer)
		}
	}

	for _, obj := range objs {
		switch obj.Kind {
		case ast.ObjFn:
			c.checkFn(obj)
		case ast.ObjStruct:
			c.checkStructMethods(obj)
		}
	}
}

func (c *checker) checkStructMethods(structObj *ast.Obj) {
	for _, field := range c.mod.Scopes.Scope(structObj.Scope).Objects {
		if field.Kind == ast.ObjFn {
			c.checkFn(field)
		}
	}
}

func (c *checker) checkFn(fn *ast.Obj) {
	if fn.Body == nil {
		return
	}
	prevFn := c.fn
	c.fn = fn
	c.checkBlock(fn.Body)
	c.fn = prevFn
}

func (c *checker) checkBlock(b *ast.BlockStmt) {
	for _, n := range b.Nodes {
		c.checkStmt(n)
	}
}

func (c *checker) checkStmt(stmt ast.StmtNode) {
	switch s := stmt.(type) {
	case *ast.VarDeclStmt:
		if s.Initializer != nil {
			c.checkExpr(s.Initializer)
		}
	case *ast.BlockStmt:
		c.checkBlock(s)
	case *ast.IfStmt:
		c.checkCondition(s.Condition, "if")
		c.checkBlock(s.Then)
		if s.Else != nil {
			c.checkStmt(s.Else)
		}
	case *ast.ExpectStmt:
		c.checkCondition(s.Condition, "expect")
		if s.Then != nil {
			c.checkBlock(s.Then)
		}
	case *ast.WhileStmt:
		if s.Initializer != nil {
			c.checkStmt(s.Initializer)
		}
		c.checkCondition(s.Condition, "while")
		if s.Increment != nil {
			c.checkExpr(s.Increment)
		}
		c.checkBlock(s.Body)
	case *ast.ReturnStmt:
		c.checkReturn(s)
	case *ast.ExprStmt:
		c.checkExpr(s.Expr)
	case *ast.DeferStmt:
		c.checkStmt(s.Body)
	}
}

func (c *checker) checkCondition(e ast.ExprNode, context string) {
	c.checkExpr(e)
	if t := e.Type(); t != nil && t.Kind != ast.TBool {
		c.diag.Addf(ilcerrors.Semantic, e.Pos(), "%s condition must be bool, found %s", context, t)
	}
}

func (c *checker) checkReturn(s *ast.ReturnStmt) {
	if c.fn == nil {
		return
	}
	ret := c.fn.ReturnType
	if s.Expr == nil {
		if ret != nil && ret.Kind != ast.TVoid {
			c.diag.Addf(ilcerrors.Semantic, s.Pos(), "missing return value for function %q returning %s", c.fn.Name, ret)
		}
		return
	}
	c.checkExpr(s.Expr)
	if ret != nil && ret.Kind == ast.TVoid {
		c.diag.Addf(ilcerrors.Semantic, s.Expr.Pos(), "function %q returns void and cannot return a value", c.fn.Name)
		return
	}
	if t := s.Expr.Type(); ret != nil && t != nil && !t.Equal(ret) {
		c.diag.Addf(ilcerrors.Semantic, s.Expr.Pos(), "return type %s does not match function %q's declared return type %s", t, c.fn.Name, ret)
	}
}

// checkExpr recursively verifies e and every sub-expression it contains.
// Sub-expressions are always visited, even once a rule at this level has
// already failed, so a single bad expression does not suppress checks on
// unrelated siblings.
func (c *checker) checkExpr(e ast.ExprNode) {
	switch n := e.(type) {
	case *ast.UnaryExpr:
		c.checkExpr(n.Operand)
		c.checkUnary(n)
	case *ast.BinaryExpr:
		c.checkExpr(n.LHS)
		c.checkExpr(n.RHS)
		c.checkBinary(n)
	case *ast.CallExpr:
		c.checkExpr(n.Callee)
		for _, a := range n.Arguments {
			c.checkExpr(a)
		}
		c.checkCall(n)
	default:
		// Literals, Variable, Function, Identifier (post-error-recovery
		// placeholder) carry no further sub-expressions to check.
	}
}

func (c *checker) checkUnary(n *ast.UnaryExpr) {
	t := n.Operand.Type()
	if t == nil {
		return
	}
	switch n.Op {
	case ast.OpNegate:
		if !t.IsSignedNumeric() {
			c.diag.Addf(ilcerrors.Semantic, n.Pos(), "negate requires a signed numeric operand, found %s", t)
		}
	case ast.OpNot:
		if t.Kind != ast.TBool {
			c.diag.Addf(ilcerrors.Semantic, n.Pos(), "! requires a bool operand, found %s", t)
		}
	case ast.OpAddrOf:
		if !isLvalue(n.Operand) {
			c.diag.Addf(ilcerrors.Semantic, n.Pos(), "& requires an addressable operand (a variable or property access)")
		}
	case ast.OpDeref:
		if t.Kind != ast.TPointer {
			c.diag.Addf(ilcerrors.Semantic, n.Pos(), "* requires a pointer operand, found %s", t)
		}
	}
}

func isLvalue(e ast.ExprNode) bool {
	switch n := e.(type) {
	case *ast.VariableExpr:
		return true
	case *ast.BinaryExpr:
		return n.Op == ast.OpPropertyAccess
	default:
		return false
	}
}

func (c *checker) checkBinary(n *ast.BinaryExpr) {
	if n.Op == ast.OpPropertyAccess {
		return // resolution failures are already reported by the Validator
	}

	lt, rt := n.LHS.Type(), n.RHS.Type()
	if lt == nil || rt == nil {
		return
	}

	switch n.Op {
	case ast.OpAssign:
		if !isLvalue(n.LHS) {
			c.diag.Addf(ilcerrors.Semantic, n.LHS.Pos(), "assignment target must be a variable or property access")
		}
		if !lt.Equal(rt) {
			c.diag.Addf(ilcerrors.Semantic, n.Pos(), "cannot assign %s to %s", rt, lt)
		}
	case ast.OpEq, ast.OpNe:
		if !lt.Equal(rt) {
			c.diag.Addf(ilcerrors.Semantic, n.Pos(), "%s requires operands of the same type, found %s and %s", n.Op, lt, rt)
		}
	case ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe, ast.OpAdd, ast.OpSubtract, ast.OpMultiply, ast.OpDivide:
		if !lt.IsNumeric() || !rt.IsNumeric() || !lt.Equal(rt) {
			c.diag.Addf(ilcerrors.Semantic, n.Pos(), "%s requires two operands of the same numeric type, found %s and %s", n.Op, lt, rt)
		}
	}
}

func (c *checker) checkCall(n *ast.CallExpr) {
	calleeType := n.Callee.Type()
	if calleeType == nil || calleeType.Kind != ast.TFunction {
		return // the Validator already reported the unresolved/non-callable callee
	}
	if len(n.Arguments) != len(calleeType.Params) {
		c.diag.Addf(ilcerrors.Semantic, n.Pos(), "call has %d argument(s), expected %d", len(n.Arguments), len(calleeType.Params))
		return
	}
	for i, arg := range n.Arguments {
		at, pt := arg.Type(), calleeType.Params[i]
		if at == nil || pt == nil {
			continue
		}
		if !at.Equal(pt) {
			c.diag.Addf(ilcerrors.Semantic, arg.Pos(), "argument %d has type %s, expected %s", i+1, at, pt)
		}
	}
}

// checkEntryPoint reports the absence of exactly one `main` function at
// the root module's module scope. It is reported once, with no location,
// since there is no single site to blame for a missing declaration.
func checkEntryPoint(prog *program.Program, diag *ilcerrors.Diagnostics) {
	root := prog.RootModule()
	if root == nil {
		return
	}
	kind := ast.ObjFn
	main := root.Scopes.Lookup(root.ModuleScope(), "main", &kind)
	if main == nil {
		diag.Addf(ilcerrors.Semantic, sourcemap.EMPTY, "no function named %q found at module scope", "main")
	}
}
