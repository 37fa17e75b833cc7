package ast

import (
	"fmt"
	"strings"
)

// DumpModule renders a single Module in a stable, deterministic textual
// form used for golden-file testing: every node prints its kind, source
// location, and operands. The exact grammar is internal and may change
// between versions of this module, but is byte-for-byte stable across
// repeated dumps of the same checked module (no map iteration, no
// pointer addresses).
func DumpModule(mod ModuleId, name AstString, scope *ScopeTree) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Module %s {\n", name)
	root := ScopeId{Module: mod, Index: 0}
	for _, obj := range scope.Scope(root).Objects {
		dumpObj(&b, scope, obj, 1)
	}
	b.WriteString("}\n")
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

func locTag(n Node) string {
	l := n.Pos()
	if l.IsEmpty() {
		return ""
	}
	return fmt.Sprintf("@%d:%d-%d", l.File, l.Start, l.End)
}

func dumpObj(b *strings.Builder, scope *ScopeTree, obj *Obj, depth int) {
	indent(b, depth)
	switch obj.Kind {
	case ObjVar:
		fmt.Fprintf(b, "Var %s: %s;\n", obj.Name, typeOrUnresolved(obj.DataType))
	case ObjFn:
		fmt.Fprintf(b, "Fn %s(%s) -> %s", obj.Name, dumpParams(obj.Params), typeOrUnresolved(obj.ReturnType))
		if obj.Body != nil {
			b.WriteString(" ")
			dumpBlock(b, scope, obj.Body, depth)
		} else {
			b.WriteString(";\n")
		}
	case ObjExternFn:
		fmt.Fprintf(b, "ExternFn %s(%s) -> %s #[source(%s)];\n", obj.Name, dumpParams(obj.ExternParams), typeOrUnresolved(obj.ExternReturnType), obj.SourceAttr.Arg)
	case ObjStruct:
		fmt.Fprintf(b, "Struct %s {\n", obj.Name)
		for _, field := range scope.Scope(obj.Scope).Objects {
			dumpObj(b, scope, field, depth+1)
		}
		indent(b, depth)
		b.WriteString("}\n")
	}
}

func dumpParams(params []*Obj) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%s: %s", p.Name, typeOrUnresolved(p.DataType))
	}
	return strings.Join(parts, ", ")
}

func typeOrUnresolved(t *Type) string {
	if t == nil {
		return "<unresolved>"
	}
	return t.String()
}

func dumpBlock(b *strings.Builder, scope *ScopeTree, block *BlockStmt, depth int) {
	fmt.Fprintf(b, "Block%s[%s] {\n", locTag(block), block.Flow)
	for _, stmt := range block.Nodes {
		indent(b, depth+1)
		dumpStmt(b, scope, stmt, depth+1)
		b.WriteString("\n")
	}
	indent(b, depth)
	b.WriteString("}\n")
}

func dumpStmt(b *strings.Builder, scope *ScopeTree, stmt StmtNode, depth int) {
	switch s := stmt.(type) {
	case *VarDeclStmt:
		fmt.Fprintf(b, "Var%s %s: %s", locTag(s), s.Variable.Name, typeOrUnresolved(s.Variable.DataType))
		if s.Initializer != nil {
			fmt.Fprintf(b, " = %s", dumpExpr(s.Initializer))
		}
		b.WriteString(";")
	case *BlockStmt:
		dumpBlock(b, scope, s, depth)
	case *IfStmt:
		fmt.Fprintf(b, "If%s(%s) Then ", locTag(s), dumpExpr(s.Condition))
		dumpBlock(b, scope, s.Then, depth)
		if s.Else != nil {
			indent(b, depth)
			b.WriteString("Else ")
			dumpStmt(b, scope, s.Else, depth)
		}
	case *ExpectStmt:
		fmt.Fprintf(b, "Expect%s(%s)", locTag(s), dumpExpr(s.Condition))
		if s.Then != nil {
			b.WriteString(" ")
			dumpBlock(b, scope, s.Then, depth)
		} else {
			b.WriteString(";")
		}
	case *WhileStmt:
		b.WriteString("While" + locTag(s) + "(")
		if s.Initializer != nil {
			dumpStmt(b, scope, s.Initializer, depth)
		}
		fmt.Fprintf(b, "; %s; ", dumpExpr(s.Condition))
		if s.Increment != nil {
			b.WriteString(dumpExpr(s.Increment))
		}
		b.WriteString(") ")
		dumpBlock(b, scope, s.Body, depth)
	case *ReturnStmt:
		if s.Expr != nil {
			fmt.Fprintf(b, "Return%s(%s)", locTag(s), dumpExpr(s.Expr))
		} else {
			fmt.Fprintf(b, "Return%s()", locTag(s))
		}
		b.WriteString(";")
	case *ExprStmt:
		fmt.Fprintf(b, "%s;", dumpExpr(s.Expr))
	case *DeferStmt:
		b.WriteString("Defer" + locTag(s) + "(")
		dumpStmt(b, scope, s.Body, depth)
		b.WriteString(")")
	}
}

func dumpExpr(e ExprNode) string {
	switch n := e.(type) {
	case *NumberConstantExpr:
		return fmt.Sprintf("Number %d", n.Value)
	case *StringConstantExpr:
		return fmt.Sprintf("String %q", n.Value.String())
	case *BooleanConstantExpr:
		return fmt.Sprintf("Bool %t", n.Value)
	case *IdentifierExpr:
		return fmt.Sprintf("Identifier %s", n.Name)
	case *VariableExpr:
		return fmt.Sprintf("Variable %s", n.Obj.Name)
	case *FunctionExpr:
		return fmt.Sprintf("Function %s", n.Obj.Name)
	case *UnaryExpr:
		return fmt.Sprintf("%s(%s)", unaryNodeName(n.Op), dumpExpr(n.Operand))
	case *BinaryExpr:
		return fmt.Sprintf("%s(%s, %s)", binaryNodeName(n.Op), dumpExpr(n.LHS), dumpExpr(n.RHS))
	case *CallExpr:
		args := make([]string, len(n.Arguments))
		for i, a := range n.Arguments {
			args[i] = dumpExpr(a)
		}
		return fmt.Sprintf("Call(%s, %s)", dumpExpr(n.Callee), strings.Join(args, ", "))
	default:
		return "<unknown>"
	}
}

func unaryNodeName(op UnaryOp) string {
	switch op {
	case OpNegate:
		return "Negate"
	case OpNot:
		return "Not"
	case OpAddrOf:
		return "AddrOf"
	case OpDeref:
		return "Deref"
	default:
		return "Unary"
	}
}

func binaryNodeName(op BinaryOp) string {
	switch op {
	case OpAssign:
		return "Assign"
	case OpPropertyAccess:
		return "PropertyAccess"
	case OpAdd:
		return "Add"
	case OpSubtract:
		return "Subtract"
	case OpMultiply:
		return "Multiply"
	case OpDivide:
		return "Divide"
	case OpEq:
		return "Eq"
	case OpNe:
		return "Ne"
	case OpLt:
		return "Lt"
	case OpLe:
		return "Le"
	case OpGt:
		return "Gt"
	case OpGe:
		return "Ge"
	default:
		return "Binary"
	}
}
