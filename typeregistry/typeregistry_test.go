package typeregistry

import (
	"testing"

	"github.com/go-quicktest/qt"
	"ilctools.dev/ilc/ast"
)

func newTestRegistry() (*Registry, *ast.ScopeTree, ast.ScopeId) {
	tree := ast.NewScopeTree(ast.ModuleId(0))
	root := tree.Root()
	return New(tree, ast.ModuleId(0), root), tree, root
}

func TestPrimitiveLookupIsIdentityStable(t *testing.T) {
	reg, _, _ := newTestRegistry()

	a := reg.Primitive("i32")
	b := reg.Primitive("i32")
	qt.Assert(t, qt.IsNotNil(a))
	qt.Assert(t, qt.Equals(a, b))

	qt.Assert(t, qt.Equals(reg.Primitive("i32"), reg.I32()))
	qt.Assert(t, qt.Equals(reg.Primitive("void"), reg.Void()))
	qt.Assert(t, qt.IsNil(reg.Primitive("not-a-type")))
}

func TestPointerInterningReturnsSameHandleForSameInner(t *testing.T) {
	reg, _, root := newTestRegistry()

	a := reg.Pointer(root, reg.I32())
	b := reg.Pointer(root, reg.I32())
	qt.Assert(t, qt.Equals(a, b))

	c := reg.Pointer(root, reg.U32())
	qt.Assert(t, qt.IsFalse(a == c))
}

func TestFunctionInterningDistinguishesSignature(t *testing.T) {
	reg, _, root := newTestRegistry()

	f1 := reg.Function(root, reg.I32(), []*ast.Type{reg.I32()})
	f2 := reg.Function(root, reg.I32(), []*ast.Type{reg.I32()})
	qt.Assert(t, qt.Equals(f1, f2))

	f3 := reg.Function(root, reg.I32(), []*ast.Type{reg.Bool()})
	qt.Assert(t, qt.IsFalse(f1 == f3))
}
