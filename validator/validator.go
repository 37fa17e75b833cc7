// Package validator performs name resolution and type-reference
// resolution over a parsed Program, rewriting every Identifier expression
// to a Variable or Function node and every Type::Identifier placeholder to
// a concrete interned Type. It also synthesizes the
// DataType of every expression node as it resolves them (the TypeChecker
// only verifies an already-typed tree; it does not
// synthesize types), rejects non-constant module-level initializers,
// rejects direct/transitive non-pointer struct recursion, and collects
// each function's Defer statements with their capture sets,
// grounded on cue/ast's resolution passes over its own
// Node tree (cue does not need identifier rewriting in the same sense,
// but the walk-and-rewrite shape follows cue/internal/core/compile).
// Duplicate definitions are not detected here: the parser reports them
// as it registers each object into its scope.
package validator

import (
	"golang.org/x/mod/semver"

	"ilctools.dev/ilc/ast"
	"ilctools.dev/ilc/ilcerrors"
	"ilctools.dev/ilc/program"
)

// Run resolves every module of prog in place, recording diagnostics on
// diag. It never aborts early; every module is walked even if earlier
// ones produced errors, so a single run collects as many diagnostics as
// possible.
func Run(prog *program.Program, diag *ilcerrors.Diagnostics) {
	for _, mod := range prog.Modules {
		v := &validator{mod: mod, diag: diag}
		v.run()
	}
}

type validator struct {
	mod  *program.Module
	diag *ilcerrors.Diagnostics

	curFn  *ast.Obj
	cyclic map[*ast.Obj]bool
}

func (v *validator) run() {
	scope := v.mod.ModuleScope()
	objs := v.mod.Scopes.Scope(scope).Objects

	for _, obj := range objs {
		v.resolveHeader(scope, obj)
	}

	var structs []*ast.Obj
	for _, obj := range objs {
		if obj.Kind == ast.ObjStruct {
			structs = append(structs, obj)
		}
	}
	v.checkStructCycles(structs)

	for _, g := range v.mod.Globals {
		v.resolveGlobalVarDecl(scope, g)
	}

	for _, obj := range objs {
		switch obj.Kind {
		case ast.ObjFn:
			v.resolveFnBody(scope, obj)
		case ast.ObjStruct:
			v.resolveStructMethodBodies(obj)
		}
	}
}

// --- headers: declared types, no bodies -----------------------------------

func (v *validator) resolveHeader(declScope ast.ScopeId, obj *ast.Obj) {
	switch obj.Kind {
	case ast.ObjVar:
		obj.DataType = v.resolveType(declScope, obj.DataType)
	case ast.ObjFn:
		v.resolveFnSignature(declScope, obj)
	case ast.ObjExternFn:
		v.resolveExternSignature(declScope, obj)
	case ast.ObjStruct:
		v.resolveStructHeader(declScope, obj)
	}
}

func (v *validator) resolveFnSignature(declScope ast.ScopeId, fn *ast.Obj) {
	for _, p := range fn.Params {
		p.DataType = v.resolveType(declScope, p.DataType)
	}
	fn.ReturnType = v.resolveType(declScope, fn.ReturnType)
	fn.DataType = v.mod.Types.Function(declScope, fn.ReturnType, objTypes(fn.Params))
}

func (v *validator) resolveExternSignature(declScope ast.ScopeId, fn *ast.Obj) {
	for _, p := range fn.ExternParams {
		p.DataType = v.resolveType(declScope, p.DataType)
	}
	fn.ExternReturnType = v.resolveType(declScope, fn.ExternReturnType)
	fn.DataType = v.mod.Types.Function(declScope, fn.ExternReturnType, objTypes(fn.ExternParams))

	if fn.SourceAttr.ABI != "" && !semver.IsValid(fn.SourceAttr.ABI) {
		v.diag.Addf(ilcerrors.Structural, fn.Loc, "extern %q has an invalid #[abi(...)] version %q", fn.Name, fn.SourceAttr.ABI)
	}
}

func (v *validator) resolveStructHeader(declScope ast.ScopeId, obj *ast.Obj) {
	structScope := obj.Scope
	for _, field := range v.mod.Scopes.Scope(structScope).Objects {
		switch field.Kind {
		case ast.ObjVar:
			field.DataType = v.resolveType(structScope, field.DataType)
		case ast.ObjFn:
			v.resolveFnSignature(structScope, field)
		}
	}
}

func objTypes(objs []*ast.Obj) []*ast.Type {
	out := make([]*ast.Type, len(objs))
	for i, o := range objs {
		out[i] = o.DataType
	}
	return out
}

// --- type reference resolution --------------------------------------------

// resolveType resolves every TIdentifier placeholder reachable from ty
// (directly, or nested in a pointer/function shell) against scope, and
// interns the result. Primitives and struct types are already final
// handles by the time the validator sees them (primitives are installed
// once on the root module; struct types are built eagerly at the struct's
// own declaration), so both pass through unchanged.
func (v *validator) resolveType(scope ast.ScopeId, ty *ast.Type) *ast.Type {
	if ty == nil {
		return nil
	}
	switch ty.Kind {
	case ast.TVoid, ast.TI32, ast.TU32, ast.TBool, ast.TStr, ast.TStruct:
		return ty
	case ast.TPointer:
		inner := v.resolveType(scope, ty.Inner)
		return v.mod.Types.Pointer(scope, inner)
	case ast.TFunction:
		ret := v.resolveType(scope, ty.Return)
		params := make([]*ast.Type, len(ty.Params))
		for i, p := range ty.Params {
			params[i] = v.resolveType(scope, p)
		}
		return v.mod.Types.Function(scope, ret, params)
	case ast.TIdentifier:
		return v.resolveIdentifierType(scope, ty)
	default:
		return ty
	}
}

func (v *validator) resolveIdentifierType(scope ast.ScopeId, ty *ast.Type) *ast.Type {
	name := ty.IdentName.Name.String()
	kind := ast.ObjStruct
	obj := v.mod.Scopes.Lookup(scope, name, &kind)
	if obj == nil {
		v.diag.Addf(ilcerrors.Structural, ty.IdentName.Loc, "undefined type %q", name)
		return v.mod.Types.Void()
	}
	return obj.DataType
}

// --- struct recursion ------------------------------------------------------

// checkStructCycles reports every struct that transitively contains
// itself as a non-pointer field. Once a
// struct on a detected cycle has been reported, every other struct on the
// same cycle is skipped so the same cycle is not reported once per member.
func (v *validator) checkStructCycles(structs []*ast.Obj) {
	v.cyclic = map[*ast.Obj]bool{}
	for _, obj := range structs {
		if v.cyclic[obj] {
			continue
		}
		if field := v.structContainsSelf(obj, obj, map[*ast.Obj]bool{}); field != nil {
			v.diag.Addf(ilcerrors.Semantic, field.Loc, "struct %q recursively contains itself", obj.Name)
		}
	}
}

// structContainsSelf walks cur's fields looking for a path back to root,
// returning the field at which the cycle closes (the diagnostic site), or
// nil if cur does not transitively contain root.
func (v *validator) structContainsSelf(root, cur *ast.Obj, instack map[*ast.Obj]bool) *ast.Obj {
	if instack[cur] {
		return nil
	}
	instack[cur] = true
	defer delete(instack, cur)

	for _, field := range v.mod.Scopes.Scope(cur.Scope).Objects {
		if field.Kind != ast.ObjVar {
			continue
		}
		ft := field.DataType
		if ft == nil || ft.Kind != ast.TStruct {
			continue
		}
		if ft.StructObj == root {
			v.cyclic[cur] = true
			return field
		}
		if found := v.structContainsSelf(root, ft.StructObj, instack); found != nil {
			v.cyclic[cur] = true
			return found
		}
	}
	return nil
}

// --- bodies ----------------------------------------------------------------

func (v *validator) resolveStructMethodBodies(structObj *ast.Obj) {
	for _, field := range v.mod.Scopes.Scope(structObj.Scope).Objects {
		if field.Kind == ast.ObjFn {
			v.resolveFnBody(structObj.Scope, field)
		}
	}
}

func (v *validator) resolveFnBody(_ ast.ScopeId, fn *ast.Obj) {
	if fn.Body == nil {
		return
	}
	prevFn := v.curFn
	v.curFn = fn
	v.resolveBlockInScope(fn.Body)
	v.curFn = prevFn
}

func isConstExpr(e ast.ExprNode) bool {
	switch n := e.(type) {
	case *ast.NumberConstantExpr, *ast.StringConstantExpr, *ast.BooleanConstantExpr:
		return true
	case *ast.UnaryExpr:
		return isConstExpr(n.Operand)
	case *ast.BinaryExpr:
		if n.Op == ast.OpAssign || n.Op == ast.OpPropertyAccess {
			return false
		}
		return isConstExpr(n.LHS) && isConstExpr(n.RHS)
	default:
		return false
	}
}

func (v *validator) resolveGlobalVarDecl(scope ast.ScopeId, s *ast.VarDeclStmt) {
	obj := s.Variable
	var initType *ast.Type
	if s.Initializer != nil {
		if !isConstExpr(s.Initializer) {
			v.diag.Addf(ilcerrors.Semantic, s.Initializer.Pos(), "module-level initializer for %q must be a constant expression", obj.Name)
		}
		s.Initializer = v.resolveExpr(scope, s.Initializer)
		initType = s.Initializer.Type()
	}
	v.finishVarType(obj, initType)
}

func (v *validator) resolveLocalVarDecl(scope ast.ScopeId, s *ast.VarDeclStmt) {
	obj := s.Variable
	obj.DataType = v.resolveType(scope, obj.DataType)
	var initType *ast.Type
	if s.Initializer != nil {
		s.Initializer = v.resolveExpr(scope, s.Initializer)
		initType = s.Initializer.Type()
	}
	v.finishVarType(obj, initType)
}

// finishVarType resolves obj's declared type if it has one, or infers it
// from the initializer's synthesized type otherwise, so that every
// object's DataType is non-null by the end of validation.
func (v *validator) finishVarType(obj *ast.Obj, initType *ast.Type) {
	if obj.DataType != nil {
		return // already resolved (resolveHeader for globals, resolveLocalVarDecl for locals)
	}
	if initType != nil {
		obj.DataType = initType
		return
	}
	v.diag.Addf(ilcerrors.Structural, obj.Loc, "cannot infer the type of %q without an initializer", obj.Name)
	obj.DataType = v.mod.Types.Void()
}

func (v *validator) resolveBlockInScope(b *ast.BlockStmt) {
	for _, n := range b.Nodes {
		v.resolveStmt(b.Scope, n)
	}
}

func (v *validator) resolveStmt(scope ast.ScopeId, stmt ast.StmtNode) {
	switch s := stmt.(type) {
	case *ast.VarDeclStmt:
		v.resolveLocalVarDecl(scope, s)
	case *ast.BlockStmt:
		v.resolveBlockInScope(s)
	case *ast.IfStmt:
		s.Condition = v.resolveExpr(scope, s.Condition)
		v.resolveBlockInScope(s.Then)
		if s.Else != nil {
			v.resolveStmt(scope, s.Else)
		}
	case *ast.ExpectStmt:
		s.Condition = v.resolveExpr(scope, s.Condition)
		if s.Then != nil {
			v.resolveBlockInScope(s.Then)
		}
	case *ast.WhileStmt:
		if s.Initializer != nil {
			v.resolveStmt(s.Scope, s.Initializer)
		}
		s.Condition = v.resolveExpr(s.Scope, s.Condition)
		if s.Increment != nil {
			s.Increment = v.resolveExpr(s.Scope, s.Increment)
		}
		v.resolveBlockInScope(s.Body)
	case *ast.ReturnStmt:
		if s.Expr != nil {
			s.Expr = v.resolveExpr(scope, s.Expr)
		}
	case *ast.ExprStmt:
		s.Expr = v.resolveExpr(scope, s.Expr)
	case *ast.DeferStmt:
		v.resolveStmt(scope, s.Body)
		v.recordDefer(s)
	}
}

// --- expressions -------------------------------------------------------

func (v *validator) resolveExpr(scope ast.ScopeId, e ast.ExprNode) ast.ExprNode {
	switch n := e.(type) {
	case *ast.NumberConstantExpr:
		n.SetType(v.mod.Types.I32())
		return n
	case *ast.StringConstantExpr:
		n.SetType(v.mod.Types.Str())
		return n
	case *ast.BooleanConstantExpr:
		n.SetType(v.mod.Types.Bool())
		return n
	case *ast.IdentifierExpr:
		return v.resolveIdentifier(scope, n)
	case *ast.VariableExpr:
		n.SetType(n.Obj.DataType)
		return n
	case *ast.FunctionExpr:
		n.SetType(n.Obj.DataType)
		return n
	case *ast.UnaryExpr:
		n.Operand = v.resolveExpr(scope, n.Operand)
		n.SetType(n.Operand.Type())
		return n
	case *ast.BinaryExpr:
		return v.resolveBinary(scope, n)
	case *ast.CallExpr:
		return v.resolveCall(scope, n)
	default:
		return e
	}
}

func (v *validator) resolveIdentifier(scope ast.ScopeId, n *ast.IdentifierExpr) ast.ExprNode {
	name := n.Name.Name.String()
	obj := v.mod.Scopes.Lookup(scope, name, nil)
	if obj == nil {
		v.diag.Addf(ilcerrors.Structural, n.Loc, "undefined name %q", name)
		n.SetType(v.mod.Types.Void())
		return n
	}
	switch obj.Kind {
	case ast.ObjVar:
		vexpr := v.mod.Arena.NewVariable(n.Loc, obj)
		vexpr.SetType(obj.DataType)
		return vexpr
	case ast.ObjFn, ast.ObjExternFn:
		fexpr := v.mod.Arena.NewFunction(n.Loc, obj)
		fexpr.SetType(obj.DataType)
		return fexpr
	default: // ObjStruct
		v.diag.Addf(ilcerrors.Structural, n.Loc, "%q names a struct type, not a value", name)
		n.SetType(v.mod.Types.Void())
		return n
	}
}

func (v *validator) resolveBinary(scope ast.ScopeId, n *ast.BinaryExpr) ast.ExprNode {
	if n.Op == ast.OpPropertyAccess {
		return v.resolvePropertyAccess(scope, n)
	}
	n.LHS = v.resolveExpr(scope, n.LHS)
	n.RHS = v.resolveExpr(scope, n.RHS)

	switch n.Op {
	case ast.OpAssign:
		n.SetType(n.LHS.Type())
	case ast.OpEq, ast.OpNe, ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
		n.SetType(v.mod.Types.Bool())
	default: // Add, Subtract, Multiply, Divide
		n.SetType(n.LHS.Type())
	}
	return n
}

// resolvePropertyAccess evaluates n.LHS to a struct type and looks up
// n.RHS's name (always an IdentifierExpr from the parser) within that
// struct's own scope only: fields resolve as Var,
// methods as Fn, and the search never escapes the struct's scope.
func (v *validator) resolvePropertyAccess(scope ast.ScopeId, n *ast.BinaryExpr) ast.ExprNode {
	n.LHS = v.resolveExpr(scope, n.LHS)
	rhsIdent, ok := n.RHS.(*ast.IdentifierExpr)
	if !ok {
		n.SetType(v.mod.Types.Void())
		return n
	}

	lhsType := n.LHS.Type()
	if lhsType == nil || lhsType.Kind != ast.TStruct {
		v.diag.Addf(ilcerrors.Semantic, n.LHS.Pos(), "property access requires a struct value, found %s", typeString(lhsType))
		n.SetType(v.mod.Types.Void())
		return n
	}

	structObj := lhsType.StructObj
	fieldName := rhsIdent.Name.Name.String()
	member := v.mod.Scopes.LookupLocal(structObj.Scope, fieldName, ast.ObjVar)
	if member == nil {
		member = v.mod.Scopes.LookupLocal(structObj.Scope, fieldName, ast.ObjFn)
	}
	if member == nil {
		v.diag.Addf(ilcerrors.Structural, rhsIdent.Loc, "%q has no field or method named %q", structObj.Name, fieldName)
		n.SetType(v.mod.Types.Void())
		return n
	}

	if member.Kind == ast.ObjVar {
		n.RHS = v.mod.Arena.NewVariable(rhsIdent.Loc, member)
	} else {
		n.RHS = v.mod.Arena.NewFunction(rhsIdent.Loc, member)
	}
	n.RHS.SetType(member.DataType)
	n.SetType(member.DataType)
	return n
}

func (v *validator) resolveCall(scope ast.ScopeId, n *ast.CallExpr) ast.ExprNode {
	n.Callee = v.resolveExpr(scope, n.Callee)
	for i, a := range n.Arguments {
		n.Arguments[i] = v.resolveExpr(scope, a)
	}

	calleeType := n.Callee.Type()
	if calleeType == nil || calleeType.Kind != ast.TFunction {
		v.diag.Addf(ilcerrors.Semantic, n.Callee.Pos(), "cannot call a value of type %s", typeString(calleeType))
		n.SetType(v.mod.Types.Void())
		return n
	}
	n.SetType(calleeType.Return)
	return n
}

func typeString(t *ast.Type) string {
	if t == nil {
		return "<unresolved>"
	}
	return t.String()
}

// --- defer capture sets ----------------------------------------------------

func (v *validator) recordDefer(s *ast.DeferStmt) {
	if v.curFn == nil {
		return
	}
	info := &ast.DeferInfo{Stmt: s, Captures: collectCaptures(s.Body)}
	v.curFn.Defers = append(v.curFn.Defers, info)
}

// collectCaptures walks s's body and returns, in order of first reference,
// every Var object it reads — the free-variable set a back-end must
// snapshot at enqueue time, grounded on the original defer_new.c
// capture-struct convention. Function references are not
// captured: only variable values need a snapshot.
func collectCaptures(s ast.StmtNode) []*ast.Obj {
	var out []*ast.Obj
	seen := map[*ast.Obj]bool{}

	var walkExpr func(ast.ExprNode)
	var walkStmt func(ast.StmtNode)

	walkExpr = func(e ast.ExprNode) {
		switch n := e.(type) {
		case nil:
		case *ast.VariableExpr:
			if !seen[n.Obj] {
				seen[n.Obj] = true
				out = append(out, n.Obj)
			}
		case *ast.UnaryExpr:
			walkExpr(n.Operand)
		case *ast.BinaryExpr:
			walkExpr(n.LHS)
			walkExpr(n.RHS)
		case *ast.CallExpr:
			walkExpr(n.Callee)
			for _, a := range n.Arguments {
				walkExpr(a)
			}
		}
	}

	walkStmt = func(stmt ast.StmtNode) {
		switch n := stmt.(type) {
		case nil:
		case *ast.ExprStmt:
			walkExpr(n.Expr)
		case *ast.ReturnStmt:
			walkExpr(n.Expr)
		case *ast.VarDeclStmt:
			walkExpr(n.Initializer)
		case *ast.IfStmt:
			walkExpr(n.Condition)
			walkStmt(n.Then)
			walkStmt(n.Else)
		case *ast.WhileStmt:
			walkStmt(n.Initializer)
			walkExpr(n.Condition)
			walkExpr(n.Increment)
			walkStmt(n.Body)
		case *ast.BlockStmt:
			if n == nil {
				return
			}
			for _, c := range n.Nodes {
				walkStmt(c)
			}
		case *ast.ExpectStmt:
			walkExpr(n.Condition)
			walkStmt(n.Then)
		case *ast.DeferStmt:
			walkStmt(n.Body)
		}
	}

	walkStmt(s)
	return out
}
