package ast

import (
	"testing"

	"github.com/go-quicktest/qt"
)

var allFlows = []ControlFlow{CFNone, CFNeverReturns, CFMayReturn, CFAlwaysReturns}

func TestJoinControlFlowIsCommutative(t *testing.T) {
	for _, a := range allFlows {
		for _, b := range allFlows {
			qt.Assert(t, qt.Equals(JoinControlFlow(a, b), JoinControlFlow(b, a)),
				qt.Commentf("join(%v, %v) != join(%v, %v)", a, b, b, a))
		}
	}
}

func TestJoinControlFlowIsAssociative(t *testing.T) {
	for _, a := range allFlows {
		for _, b := range allFlows {
			for _, c := range allFlows {
				left := JoinControlFlow(JoinControlFlow(a, b), c)
				right := JoinControlFlow(a, JoinControlFlow(b, c))
				qt.Assert(t, qt.Equals(left, right),
					qt.Commentf("join(join(%v,%v),%v) != join(%v,join(%v,%v))", a, b, c, a, b, c))
			}
		}
	}
}

func TestJoinControlFlowNoneIsIdentity(t *testing.T) {
	for _, a := range allFlows {
		qt.Assert(t, qt.Equals(JoinControlFlow(CFNone, a), a))
		qt.Assert(t, qt.Equals(JoinControlFlow(a, CFNone), a))
	}
}

func TestFlowOfReturnStmtAlwaysReturns(t *testing.T) {
	qt.Assert(t, qt.Equals(FlowOf(&ReturnStmt{}), CFAlwaysReturns))
}

func TestFlowOfIfWithoutElseMayFallThrough(t *testing.T) {
	s := &IfStmt{Then: &BlockStmt{Flow: CFAlwaysReturns}}
	qt.Assert(t, qt.Equals(FlowOf(s), CFMayReturn))
}

func TestFlowOfIfWithElseJoinsBothBranches(t *testing.T) {
	s := &IfStmt{
		Then: &BlockStmt{Flow: CFAlwaysReturns},
		Else: &BlockStmt{Flow: CFAlwaysReturns},
	}
	qt.Assert(t, qt.Equals(FlowOf(s), CFAlwaysReturns))
}

func TestFlowOfWhileDowngradesAlwaysReturnsToMayReturn(t *testing.T) {
	s := &WhileStmt{Body: &BlockStmt{Flow: CFAlwaysReturns}}
	qt.Assert(t, qt.Equals(FlowOf(s), CFMayReturn))
}
