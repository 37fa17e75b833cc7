package ast

// VarDeclStmt declares a variable, with an optional initializer
// expression. Used for module-level and local `var` declarations; struct
// fields are ObjVar objects in the struct's scope and have no VarDeclStmt.
type VarDeclStmt struct {
	stmtHeader
	Variable    *Obj
	Initializer ExprNode // nil if absent
}

func (*VarDeclStmt) stmtNode() {}

// BlockStmt is a lexical block: its own scope, the joined control-flow
// fact for everything inside it, and its ordered statements.
type BlockStmt struct {
	stmtHeader
	Scope ScopeId
	Flow  ControlFlow
	Nodes []StmtNode
}

func (*BlockStmt) stmtNode() {}

// IfStmt is `if COND THEN (else ELSE)?`. Else is either another IfStmt
// (an "else if" chain) or a BlockStmt, or nil.
type IfStmt struct {
	stmtHeader
	Condition ExprNode
	Then      *BlockStmt
	Else      StmtNode // *IfStmt, *BlockStmt, or nil
}

func (*IfStmt) stmtNode() {}

// ExpectStmt is a runtime assertion: `expect COND (BLOCK)? ;`. ConditionText
// is the verbatim source slice of Condition, captured at parse time, so a
// back-end can report which condition failed without re-deriving it from
// the checked expression tree.
type ExpectStmt struct {
	stmtHeader
	Condition     ExprNode
	ConditionText string
	Then          *BlockStmt // nil if absent
}

func (*ExpectStmt) stmtNode() {}

// WhileStmt is the single shape backing every loop kind: a bare `while`
// only sets Condition; a `for` lowers its init/increment clauses into
// Initializer/Increment around the same node.
type WhileStmt struct {
	stmtHeader
	// Scope hosts Initializer's variable (when present) so it is visible
	// to Condition, Increment, and Body without leaking to surrounding
	// statements; for a bare `while` this is the enclosing scope the
	// statement appears in.
	Scope       ScopeId
	Initializer StmtNode // nil if absent (bare while, or for with no init)
	Condition   ExprNode
	Increment   ExprNode // nil if absent
	Body        *BlockStmt
}

func (*WhileStmt) stmtNode() {}

// ReturnStmt is `return EXPR? ;`.
type ReturnStmt struct {
	stmtHeader
	Expr ExprNode // nil if absent
}

func (*ReturnStmt) stmtNode() {}

// ExprStmt wraps a bare expression used as a statement.
type ExprStmt struct {
	stmtHeader
	Expr ExprNode
}

func (*ExprStmt) stmtNode() {}

// DeferStmt queues Body to run at the enclosing function's exit, in
// reverse order of encounter.
type DeferStmt struct {
	stmtHeader
	Body StmtNode
}

func (*DeferStmt) stmtNode() {}
