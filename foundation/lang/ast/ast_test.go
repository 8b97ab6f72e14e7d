package ast

import (
	"testing"

	"github.com/msto63/mictylish/foundation/lang/span"
)

func sampleProgram() *Program {
	return &Program{Stmts: []Stmt{
		&LetStmt{
			Name:     "items",
			NameSpan: span.New(8, 5),
			Mutable:  true,
			Value: &List{
				Items: []Expr{
					&IntLit{Value: 1, At: span.New(17, 1)},
					&Var{Name: "x", At: span.New(20, 1)},
					&List{Items: []Expr{&StringLit{Value: "s", At: span.New(24, 3)}}, At: span.New(23, 5)},
				},
				At: span.New(16, 13),
			},
			At: span.New(0, 29),
		},
	}}
}

func TestWalkVisitsInSourceOrder(t *testing.T) {
	var got []string
	Inspect(sampleProgram(), func(n Node) bool {
		switch n.(type) {
		case *Program:
			got = append(got, "program")
		case *LetStmt:
			got = append(got, "let")
		case *List:
			got = append(got, "list")
		case *IntLit:
			got = append(got, "int")
		case *Var:
			got = append(got, "var")
		case *StringLit:
			got = append(got, "string")
		}
		return true
	})

	want := []string{"program", "let", "list", "int", "var", "list", "string"}
	if len(got) != len(want) {
		t.Fatalf("visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visit %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestInspectSkipsChildren(t *testing.T) {
	count := 0
	Inspect(sampleProgram(), func(n Node) bool {
		count++
		_, isList := n.(*List)
		return !isList
	})
	if count != 3 {
		t.Errorf("visited %d nodes, want 3", count)
	}
}

func TestChildSpansAreContained(t *testing.T) {
	Inspect(sampleProgram(), func(n Node) bool {
		switch parent := n.(type) {
		case *LetStmt:
			if !parent.Span().Contains(parent.Value.Span()) || !parent.Span().Contains(parent.NameSpan) {
				t.Errorf("let span %v does not contain its children", parent.Span())
			}
		case *List:
			for _, item := range parent.Items {
				if !parent.Span().Contains(item.Span()) {
					t.Errorf("list span %v does not contain %v", parent.Span(), item.Span())
				}
			}
		}
		return true
	})
}

func TestVars(t *testing.T) {
	vars := Vars(sampleProgram())
	if len(vars) != 1 || vars[0].Name != "x" {
		t.Errorf("Vars() = %v, want [x]", vars)
	}
}

func TestString(t *testing.T) {
	if got := sampleProgram().String(); got != `let mut items = [1, x, ["s"]]` {
		t.Errorf("String() = %q", got)
	}
}

func TestToDump(t *testing.T) {
	d := ToDump(sampleProgram())
	if d.Type != "program" || len(d.Children) != 1 {
		t.Fatalf("unexpected dump %+v", d)
	}
	let := d.Children[0]
	if let.Name != "items" || !let.Mutable || *let.NameSpan != span.New(8, 5) {
		t.Errorf("let dump = %+v", let)
	}
	list := let.Children[0]
	if list.Type != "list" || len(list.Children) != 3 {
		t.Errorf("list dump = %+v", list)
	}
	if list.Children[0].Value != int64(1) {
		t.Errorf("int dump value = %v", list.Children[0].Value)
	}
}

func TestEmptyProgramSpan(t *testing.T) {
	if got := (&Program{}).Span(); got != (span.Span{}) {
		t.Errorf("Span() = %v, want zero span", got)
	}
}
