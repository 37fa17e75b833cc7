// Package parser builds a parsed AST from a token stream: a Pratt
// expression parser plus recursive descent for declarations and
// statements, grounded on cue/parser/parser.go's structure (a single
// Parser struct driving the scanner on demand, one method per grammar
// production) but adapted to this language's much smaller grammar.
//
// Declarations create their Obj headers and register them into the
// current scope as they are parsed; no identifier lookup happens here —
// every IdentifierExpr and Type.Identifier placeholder is left for the
// Validator to resolve once the whole module has been parsed, so forward
// references across the module are supported.
package parser

import (
	"strconv"
	"strings"

	"ilctools.dev/ilc/ast"
	"ilctools.dev/ilc/ilcerrors"
	"ilctools.dev/ilc/lexer"
	"ilctools.dev/ilc/program"
	"ilctools.dev/ilc/sourcemap"
	"ilctools.dev/ilc/strtab"
	"ilctools.dev/ilc/token"
)

// Parser drives a lexer.Stream to fill a Program with one module; only a
// single root module is ever populated.
type Parser struct {
	sm     *sourcemap.SourceMap
	diag   *ilcerrors.Diagnostics
	stream *lexer.Stream

	cur  lexer.Token
	peek lexer.Token

	prog *program.Program
	mod  *program.Module
}

// syncSet is the set of keywords the parser resynchronizes to after a
// top-level syntax error.
var syncSet = map[token.Token]bool{
	token.FN:     true,
	token.VAR:    true,
	token.STRUCT: true,
	token.EXTERN: true,
	token.IMPORT: true,
}

// Parse tokenizes and parses every file in files into a single root
// module of a fresh Program.
func Parse(sm *sourcemap.SourceMap, diag *ilcerrors.Diagnostics, files []sourcemap.FileId) *program.Program {
	prog := program.New()
	p := &Parser{
		sm:     sm,
		diag:   diag,
		stream: lexer.NewStream(sm, diag, files),
		prog:   prog,
	}
	rootName := ast.AstString{Loc: sourcemap.EMPTY, Name: prog.Strings.InternString("root")}
	p.mod = prog.NewModule(rootName)

	p.advance()
	p.advance()

	scope := p.mod.ModuleScope()
	for p.cur.Kind != token.EOF {
		p.parseTopLevelDecl(scope)
	}
	return prog
}

func (p *Parser) intern(s string) strtab.InternedString {
	return p.prog.Strings.InternString(s)
}

// --- token-stream plumbing ---------------------------------------------

func (p *Parser) advance() lexer.Token {
	prev := p.cur
	p.cur = p.peek
	p.peek = p.stream.Scan()
	return prev
}

func (p *Parser) at(kind token.Token) bool {
	return p.cur.Kind == kind
}

// expect consumes cur if it matches kind, otherwise records a syntactic
// diagnostic and leaves cur untouched so callers can decide how to
// recover. The consumed (or current, on mismatch) token is returned.
func (p *Parser) expect(kind token.Token) lexer.Token {
	if p.cur.Kind == kind {
		return p.advance()
	}
	if p.cur.Kind == token.EOF {
		p.diag.Addf(ilcerrors.Syntactic, p.cur.Loc, "unexpected end of input, expected %s", kind)
	} else {
		p.diag.Addf(ilcerrors.Syntactic, p.cur.Loc, "expected %s, found %s", kind, p.cur.Kind)
	}
	return p.cur
}

func (p *Parser) expectIdent() lexer.Token {
	if p.cur.Kind != token.IDENT {
		p.diag.Addf(ilcerrors.Syntactic, p.cur.Loc, "expected identifier, found %s", p.cur.Kind)
		return p.cur
	}
	return p.advance()
}

func (p *Parser) synchronize() {
	for p.cur.Kind != token.EOF && !syncSet[p.cur.Kind] {
		p.advance()
	}
}

func (p *Parser) name(tok lexer.Token) ast.AstString {
	return ast.AstString{Loc: tok.Loc, Name: p.intern(tok.Lit)}
}

// --- top-level declarations ---------------------------------------------

func (p *Parser) parseTopLevelDecl(scope ast.ScopeId) {
	switch p.cur.Kind {
	case token.FN:
		p.parseFnDecl(scope)
	case token.VAR:
		stmt := p.parseVarDeclStmt(scope)
		p.mod.Globals = append(p.mod.Globals, stmt)
	case token.STRUCT:
		p.parseStructDecl(scope)
	case token.EXTERN:
		p.parseExternFnDecl(scope)
	default:
		p.diag.Addf(ilcerrors.Syntactic, p.cur.Loc, "expected a declaration, found %s", p.cur.Kind)
		p.advance()
		p.synchronize()
	}
}

// parseParamList parses "( NAME : TYPE, ... )" and returns the parameter
// objects in order. If register is non-empty, each parameter is also
// added to that scope (function/method parameters); extern parameters
// are built but left unregistered since there is no body scope to host
// them in.
func (p *Parser) parseParamList(typeScope ast.ScopeId, register *ast.ScopeId) []*ast.Obj {
	p.expect(token.LPAREN)
	var params []*ast.Obj
	for p.cur.Kind != token.RPAREN && p.cur.Kind != token.EOF {
		nameTok := p.expectIdent()
		p.expect(token.COLON)
		ty := p.parseTypeRef(typeScope)
		obj := p.mod.Arena.NewObj(ast.ObjVar, nameTok.Loc, p.name(nameTok))
		obj.DataType = ty
		if register != nil {
			if !p.mod.Scopes.AddObject(*register, obj) {
				p.diag.Addf(ilcerrors.Structural, obj.Loc, "duplicate parameter %q", obj.Name)
			}
		}
		params = append(params, obj)

		if p.cur.Kind == token.COMMA {
			p.advance()
			if p.cur.Kind == token.RPAREN {
				p.diag.Addf(ilcerrors.Syntactic, p.cur.Loc, "trailing comma not allowed in parameter list")
				break
			}
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	return params
}

func paramTypes(params []*ast.Obj) []*ast.Type {
	out := make([]*ast.Type, len(params))
	for i, p := range params {
		out[i] = p.DataType
	}
	return out
}

func (p *Parser) parseFnDecl(declScope ast.ScopeId) *ast.Obj {
	start := p.cur.Loc
	p.expect(token.FN)
	nameTok := p.expectIdent()
	fnObj := p.mod.Arena.NewObj(ast.ObjFn, nameTok.Loc, p.name(nameTok))
	if !p.mod.Scopes.AddObject(declScope, fnObj) {
		p.diag.Addf(ilcerrors.Structural, start.Merge(nameTok.Loc), "duplicate definition of %q", fnObj.Name)
	}

	fnScope := p.mod.Scopes.Push(declScope, ast.ScopeKindBlock, ast.DepthBlock)
	fnObj.Params = p.parseParamList(fnScope, &fnScope)

	if p.cur.Kind == token.ARROW {
		p.advance()
		fnObj.ReturnType = p.parseTypeRef(fnScope)
	} else {
		fnObj.ReturnType = p.mod.Types.Void()
	}
	fnObj.DataType = ast.NewFunction(p.mod.Id, fnObj.ReturnType, paramTypes(fnObj.Params))

	fnObj.Body = p.parseBlockUsingScope(fnScope)
	fnObj.Loc = start.Merge(fnObj.Body.Pos())
	return fnObj
}

func (p *Parser) parseVarDeclStmt(scope ast.ScopeId) *ast.VarDeclStmt {
	start := p.cur.Loc
	p.expect(token.VAR)
	nameTok := p.expectIdent()
	varObj := p.mod.Arena.NewObj(ast.ObjVar, nameTok.Loc, p.name(nameTok))

	if p.cur.Kind == token.COLON {
		p.advance()
		varObj.DataType = p.parseTypeRef(scope)
	}

	var init ast.ExprNode
	if p.cur.Kind == token.EQ {
		p.advance()
		init = p.parseExpressionTop(scope)
	}

	end := p.cur.Loc
	p.expect(token.SEMI)

	if !p.mod.Scopes.AddObject(scope, varObj) {
		p.diag.Addf(ilcerrors.Structural, varObj.Loc, "duplicate definition of %q", varObj.Name)
	}

	return p.mod.Arena.NewVarDecl(start.Merge(end), varObj, init)
}

func (p *Parser) parseStructDecl(declScope ast.ScopeId) *ast.Obj {
	start := p.cur.Loc
	p.expect(token.STRUCT)
	nameTok := p.expectIdent()
	structObj := p.mod.Arena.NewObj(ast.ObjStruct, nameTok.Loc, p.name(nameTok))
	if !p.mod.Scopes.AddObject(declScope, structObj) {
		p.diag.Addf(ilcerrors.Structural, structObj.Loc, "duplicate definition of %q", structObj.Name)
	}

	structScope := p.mod.Scopes.Push(declScope, ast.ScopeKindStruct, ast.DepthStruct)
	structObj.Scope = structScope
	structObj.DataType = p.mod.Types.Struct(structScope, structObj)

	p.expect(token.LBRACE)
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		switch p.cur.Kind {
		case token.FN:
			p.parseFnDecl(structScope)
		case token.IDENT:
			p.parseFieldDecl(structScope)
		default:
			p.diag.Addf(ilcerrors.Syntactic, p.cur.Loc, "expected a field or method, found %s", p.cur.Kind)
			p.advance()
		}
	}
	end := p.cur.Loc
	p.expect(token.RBRACE)
	structObj.Loc = start.Merge(end)
	return structObj
}

func (p *Parser) parseFieldDecl(structScope ast.ScopeId) {
	nameTok := p.expectIdent()
	p.expect(token.COLON)
	ty := p.parseTypeRef(structScope)
	end := p.cur.Loc
	p.expect(token.SEMI)
	fieldObj := p.mod.Arena.NewObj(ast.ObjVar, nameTok.Loc.Merge(end), p.name(nameTok))
	fieldObj.DataType = ty
	if !p.mod.Scopes.AddObject(structScope, fieldObj) {
		p.diag.Addf(ilcerrors.Structural, fieldObj.Loc, "duplicate field %q", fieldObj.Name)
	}
}

func (p *Parser) parseExternFnDecl(declScope ast.ScopeId) *ast.Obj {
	start := p.cur.Loc
	p.expect(token.EXTERN)
	p.expect(token.FN)
	nameTok := p.expectIdent()
	externObj := p.mod.Arena.NewObj(ast.ObjExternFn, nameTok.Loc, p.name(nameTok))
	if !p.mod.Scopes.AddObject(declScope, externObj) {
		p.diag.Addf(ilcerrors.Structural, externObj.Loc, "duplicate definition of %q", externObj.Name)
	}

	externObj.ExternParams = p.parseParamList(declScope, nil)
	p.expect(token.ARROW)
	externObj.ExternReturnType = p.parseTypeRef(declScope)
	externObj.DataType = ast.NewFunction(p.mod.Id, externObj.ExternReturnType, paramTypes(externObj.ExternParams))

	externObj.SourceAttr = p.parseExternAttributes()

	end := p.cur.Loc
	p.expect(token.SEMI)
	externObj.Loc = start.Merge(end)
	return externObj
}

// parseExternAttributes parses one or more "#[name(arg)]" blocks,
// recognising "source" (required, names the C symbol) and "abi"
// (optional, a semver ABI tag).
func (p *Parser) parseExternAttributes() ast.Attribute {
	var attr ast.Attribute
	sawSource := false
	for p.cur.Kind == token.HASH {
		p.advance()
		p.expect(token.LBRACK)
		nameTok := p.expectIdent()
		p.expect(token.LPAREN)
		argTok := p.cur
		if argTok.Kind != token.STRING {
			p.diag.Addf(ilcerrors.Syntactic, argTok.Loc, "expected a string argument, found %s", argTok.Kind)
		} else {
			p.advance()
		}
		p.expect(token.RPAREN)
		p.expect(token.RBRACK)

		switch nameTok.Lit {
		case "source":
			attr.Kind = ast.AttrSource
			attr.Arg = p.name(argTok)
			sawSource = true
		case "abi":
			attr.ABI = argTok.Lit
		default:
			p.diag.Addf(ilcerrors.Structural, nameTok.Loc, "unknown attribute %q", nameTok.Lit)
		}
	}
	if !sawSource {
		p.diag.Addf(ilcerrors.Syntactic, p.cur.Loc, "extern function is missing a #[source(...)] attribute")
	}
	return attr
}

// --- types ---------------------------------------------------------------

// parseTypeRef parses a type reference: a primitive keyword, a struct
// identifier (left as a Type.Identifier placeholder for the Validator),
// or a pointer to either. Neither is interned here; the Validator is the
// sole owner of final interning once inner identifiers are resolved,
// except for primitives, whose handles are already interned and stable.
func (p *Parser) parseTypeRef(scope ast.ScopeId) *ast.Type {
	if p.cur.Kind == token.STAR {
		p.advance()
		inner := p.parseTypeRef(scope)
		return ast.NewPointer(p.mod.Id, inner)
	}
	if token.IsPrimitiveTypeName(p.cur.Kind) {
		lit := p.cur.Lit
		p.advance()
		if ty := p.mod.Types.Primitive(lit); ty != nil {
			return ty
		}
	}
	if p.cur.Kind == token.IDENT {
		tok := p.advance()
		return ast.NewIdentifier(p.mod.Id, p.name(tok))
	}

	p.diag.Addf(ilcerrors.Syntactic, p.cur.Loc, "expected a type, found %s", p.cur.Kind)
	return p.mod.Types.Void()
}

// --- statements ------------------------------------------------------------

func (p *Parser) parseStatement(scope ast.ScopeId) ast.StmtNode {
	switch p.cur.Kind {
	case token.IF:
		return p.parseIfStmt(scope)
	case token.WHILE:
		return p.parseWhileStmt(scope)
	case token.FOR:
		return p.parseForStmt(scope)
	case token.RETURN:
		return p.parseReturnStmt(scope)
	case token.DEFER:
		return p.parseDeferStmt(scope)
	case token.EXPECT:
		return p.parseExpectStmt(scope)
	case token.VAR:
		return p.parseVarDeclStmt(scope)
	case token.LBRACE:
		return p.parseBlock(scope)
	default:
		return p.parseExprStmt(scope)
	}
}

func childDepth(tree *ast.ScopeTree, parent ast.ScopeId) ast.ScopeDepth {
	return tree.Scope(parent).Depth + 1
}

func (p *Parser) parseBlock(parentScope ast.ScopeId) *ast.BlockStmt {
	scope := p.mod.Scopes.Push(parentScope, ast.ScopeKindBlock, childDepth(p.mod.Scopes, parentScope))
	return p.parseBlockUsingScope(scope)
}

func (p *Parser) parseBlockUsingScope(scope ast.ScopeId) *ast.BlockStmt {
	start := p.cur.Loc
	p.expect(token.LBRACE)

	var nodes []ast.StmtNode
	flow := ast.CFNone
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		stmt := p.parseStatement(scope)
		if stmt == nil {
			continue
		}
		nodes = append(nodes, stmt)
		flow = ast.JoinControlFlow(flow, ast.FlowOf(stmt))
	}
	end := p.cur.Loc
	p.expect(token.RBRACE)

	block := p.mod.Arena.NewBlock(start.Merge(end), scope)
	block.Nodes = nodes
	block.Flow = flow
	return block
}

func (p *Parser) parseIfStmt(scope ast.ScopeId) *ast.IfStmt {
	start := p.cur.Loc
	p.expect(token.IF)
	cond := p.parseExpressionTop(scope)
	then := p.parseBlock(scope)

	var elseStmt ast.StmtNode
	end := then.Pos()
	if p.cur.Kind == token.ELSE {
		p.advance()
		if p.cur.Kind == token.IF {
			elseStmt = p.parseIfStmt(scope)
		} else {
			elseStmt = p.parseBlock(scope)
		}
		end = elseStmt.Pos()
	}

	return p.mod.Arena.NewIf(start.Merge(end), cond, then, elseStmt)
}

func (p *Parser) parseWhileStmt(scope ast.ScopeId) *ast.WhileStmt {
	start := p.cur.Loc
	p.expect(token.WHILE)
	cond := p.parseExpressionTop(scope)
	body := p.parseBlock(scope)
	return p.mod.Arena.NewWhile(start.Merge(body.Pos()), scope, nil, cond, nil, body)
}

// parseForStmt lowers `for init? ; cond ; inc? BLOCK` onto the same
// WhileStmt node a bare `while` uses: the loop's own scope hosts the
// (optional) initializer variable so it is visible to the condition,
// increment, and body.
func (p *Parser) parseForStmt(outerScope ast.ScopeId) *ast.WhileStmt {
	start := p.cur.Loc
	p.expect(token.FOR)

	loopScope := p.mod.Scopes.Push(outerScope, ast.ScopeKindBlock, childDepth(p.mod.Scopes, outerScope))

	var init ast.StmtNode
	if p.cur.Kind == token.VAR {
		init = p.parseVarDeclStmt(loopScope)
	} else if p.cur.Kind != token.SEMI {
		init = p.parseExprStmt(loopScope)
	} else {
		p.expect(token.SEMI)
	}

	cond := p.parseExpressionTop(loopScope)
	p.expect(token.SEMI)

	var inc ast.ExprNode
	if p.cur.Kind != token.LBRACE {
		inc = p.parseExpressionTop(loopScope)
	}

	body := p.parseBlock(loopScope)
	return p.mod.Arena.NewWhile(start.Merge(body.Pos()), loopScope, init, cond, inc, body)
}

func (p *Parser) parseReturnStmt(scope ast.ScopeId) *ast.ReturnStmt {
	start := p.cur.Loc
	p.expect(token.RETURN)

	var expr ast.ExprNode
	if p.cur.Kind != token.SEMI {
		expr = p.parseExpressionTop(scope)
	}
	end := p.cur.Loc
	p.expect(token.SEMI)
	return p.mod.Arena.NewReturn(start.Merge(end), expr)
}

func (p *Parser) parseDeferStmt(scope ast.ScopeId) *ast.DeferStmt {
	start := p.cur.Loc
	p.expect(token.DEFER)
	body := p.parseStatement(scope)
	return p.mod.Arena.NewDefer(start.Merge(body.Pos()), body)
}

func (p *Parser) parseExpectStmt(scope ast.ScopeId) *ast.ExpectStmt {
	start := p.cur.Loc
	p.expect(token.EXPECT)

	condStart := p.cur.Loc
	cond := p.parseExpressionTop(scope)
	condText := p.sliceText(condStart.Merge(cond.Pos()))

	var then *ast.BlockStmt
	if p.cur.Kind == token.LBRACE {
		then = p.parseBlock(scope)
	}
	end := p.cur.Loc
	p.expect(token.SEMI)
	return p.mod.Arena.NewExpect(start.Merge(end), cond, condText, then)
}

func (p *Parser) parseExprStmt(scope ast.ScopeId) *ast.ExprStmt {
	start := p.cur.Loc
	expr := p.parseExpressionTop(scope)
	end := p.cur.Loc
	p.expect(token.SEMI)
	return p.mod.Arena.NewExprStmt(start.Merge(end), expr)
}

func (p *Parser) sliceText(loc sourcemap.Location) string {
	return strings.TrimSpace(string(p.sm.Slice(loc)))
}

// --- expressions (Pratt) ---------------------------------------------------

func (p *Parser) parseExpressionTop(scope ast.ScopeId) ast.ExprNode {
	return p.parseExpression(scope, precNone)
}

func (p *Parser) parseExpression(scope ast.ScopeId, minPrec precedence) ast.ExprNode {
	left := p.parsePrefix(scope)
	for {
		rule, ok := infixRules[p.cur.Kind]
		if !ok || rule.prec < minPrec {
			break
		}
		if rule.prec == minPrec && !rule.rightAssoc {
			break
		}
		left = p.parseInfix(scope, left, rule)
	}
	return left
}

func (p *Parser) parsePrefix(scope ast.ScopeId) ast.ExprNode {
	tok := p.cur
	switch tok.Kind {
	case token.NUMBER:
		p.advance()
		val, err := strconv.ParseUint(tok.Lit, 10, 64)
		if err != nil {
			p.diag.Addf(ilcerrors.Lexical, tok.Loc, "invalid number literal %q", tok.Lit)
		}
		return p.mod.Arena.NewNumberConstant(tok.Loc, val)
	case token.STRING:
		p.advance()
		return p.mod.Arena.NewStringConstant(tok.Loc, p.name(tok))
	case token.TRUE:
		p.advance()
		return p.mod.Arena.NewBooleanConstant(tok.Loc, true)
	case token.FALSE:
		p.advance()
		return p.mod.Arena.NewBooleanConstant(tok.Loc, false)
	case token.IDENT:
		p.advance()
		return p.mod.Arena.NewIdentifier(tok.Loc, p.name(tok))
	case token.LPAREN:
		p.advance()
		inner := p.parseExpressionTop(scope)
		p.expect(token.RPAREN)
		return inner
	case token.MINUS:
		p.advance()
		operand := p.parseExpression(scope, precUnary)
		return p.mod.Arena.NewUnary(tok.Loc.Merge(operand.Pos()), ast.OpNegate, operand)
	case token.BANG:
		p.advance()
		operand := p.parseExpression(scope, precUnary)
		return p.mod.Arena.NewUnary(tok.Loc.Merge(operand.Pos()), ast.OpNot, operand)
	case token.AMP:
		p.advance()
		operand := p.parseExpression(scope, precUnary)
		return p.mod.Arena.NewUnary(tok.Loc.Merge(operand.Pos()), ast.OpAddrOf, operand)
	case token.STAR:
		p.advance()
		operand := p.parseExpression(scope, precUnary)
		return p.mod.Arena.NewUnary(tok.Loc.Merge(operand.Pos()), ast.OpDeref, operand)
	case token.PLUS:
		// Unary plus is identity: the language defines no distinct node
		// for it, only Negate/Not/AddrOf/Deref.
		p.advance()
		return p.parseExpression(scope, precUnary)
	default:
		p.diag.Addf(ilcerrors.Syntactic, tok.Loc, "unexpected token %s in expression", tok.Kind)
		p.advance()
		return p.mod.Arena.NewNumberConstant(tok.Loc, 0)
	}
}

func (p *Parser) parseInfix(scope ast.ScopeId, left ast.ExprNode, rule infixRule) ast.ExprNode {
	switch p.cur.Kind {
	case token.LPAREN:
		return p.finishCall(scope, left)
	case token.DOT:
		p.advance()
		nameTok := p.expectIdent()
		rhs := p.mod.Arena.NewIdentifier(nameTok.Loc, p.name(nameTok))
		return p.mod.Arena.NewBinary(left.Pos().Merge(rhs.Pos()), ast.OpPropertyAccess, left, rhs)
	case token.EQ:
		p.advance()
		if !isValidAssignTarget(left) {
			p.diag.Addf(ilcerrors.Syntactic, left.Pos(), "invalid assignment target")
		}
		rhs := p.parseExpression(scope, precAssignment)
		return p.mod.Arena.NewBinary(left.Pos().Merge(rhs.Pos()), ast.OpAssign, left, rhs)
	default:
		op := binOpFor(p.cur.Kind)
		p.advance()
		rhs := p.parseExpression(scope, rule.prec)
		return p.mod.Arena.NewBinary(left.Pos().Merge(rhs.Pos()), op, left, rhs)
	}
}

func binOpFor(tok token.Token) ast.BinaryOp {
	switch tok {
	case token.EQEQ:
		return ast.OpEq
	case token.BANGEQ:
		return ast.OpNe
	case token.LT:
		return ast.OpLt
	case token.LTEQ:
		return ast.OpLe
	case token.GT:
		return ast.OpGt
	case token.GTEQ:
		return ast.OpGe
	case token.PLUS:
		return ast.OpAdd
	case token.MINUS:
		return ast.OpSubtract
	case token.STAR:
		return ast.OpMultiply
	case token.SLASH:
		return ast.OpDivide
	default:
		panic("parser: binOpFor called with a non-binary-operator token")
	}
}

func isValidAssignTarget(e ast.ExprNode) bool {
	switch v := e.(type) {
	case *ast.IdentifierExpr, *ast.VariableExpr:
		return true
	case *ast.BinaryExpr:
		return v.Op == ast.OpPropertyAccess
	default:
		return false
	}
}

func (p *Parser) finishCall(scope ast.ScopeId, callee ast.ExprNode) *ast.CallExpr {
	p.advance() // consume '('
	var args []ast.ExprNode
	for p.cur.Kind != token.RPAREN && p.cur.Kind != token.EOF {
		args = append(args, p.parseExpression(scope, precAssignment))
		if p.cur.Kind == token.COMMA {
			p.advance()
			if p.cur.Kind == token.RPAREN {
				p.diag.Addf(ilcerrors.Syntactic, p.cur.Loc, "trailing comma not allowed in call arguments")
				break
			}
			continue
		}
		break
	}
	end := p.cur.Loc
	p.expect(token.RPAREN)
	return p.mod.Arena.NewCall(callee.Pos().Merge(end), callee, args)
}
