// package compiler turns a range literal into a standalone Go program whose
// loop walks the same values. The normalized end is computed here, ahead of
// time, so the emitted loop is the plain `v != end` form with no division or
// bounds logic left in it.
package compiler

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"strings"

	"github.com/redneckbeard/rangex/bst"
	"golang.org/x/tools/imports"
)

// Compile emits a main package that prints every value of inst, one per line,
// preceded by its position when indexed is set.
func Compile(inst Instance, indexed bool) (string, error) {
	if !literal(inst.End()) {
		return "", fmt.Errorf("normalized end %s of %s has no Go literal form", inst.End(), inst)
	}
	it := make(bst.IdentTracker)
	g := &loopBuilder{
		inst:  inst,
		lower: it.Get("lower"),
		end:   it.Get("end"),
		step:  it.Get("step"),
		v:     it.Get("v"),
	}
	if indexed || inst.Kind().IsFloat() {
		g.i = it.New("i")
	}

	mainFunc := &ast.FuncDecl{
		Name: ast.NewIdent("main"),
		Type: &ast.FuncType{
			Params: &ast.FieldList{},
		},
		Body: &ast.BlockStmt{
			List: []ast.Stmt{
				&ast.DeclStmt{Decl: g.vars()},
				g.loop(indexed),
			},
		},
	}

	f := &ast.File{
		Name:  ast.NewIdent("main"),
		Decls: []ast.Decl{mainFunc},
	}

	var in bytes.Buffer
	if err := format.Node(&in, token.NewFileSet(), f); err != nil {
		return "", fmt.Errorf("Error converting AST to []byte: %s", err.Error())
	}
	out, err := imports.Process("main.go", in.Bytes(), nil)
	if err != nil {
		return "", fmt.Errorf("Error resolving imports: %s", err.Error())
	}
	return string(out), nil
}

type loopBuilder struct {
	inst                Instance
	lower, end, step, v *ast.Ident
	i                   *ast.Ident
}

func (g *loopBuilder) vars() *ast.GenDecl {
	elemType := g.inst.Kind().GoType()
	return bst.Var(
		bst.Value(g.lower, elemType, g.lit(g.inst.Lower())),
		bst.Value(g.end, elemType, g.lit(g.inst.End())),
		bst.Value(g.step, g.inst.StepKind().GoType(), g.lit(g.inst.Step())),
	)
}

func (g *loopBuilder) lit(s string) *ast.BasicLit {
	if g.inst.Kind().IsFloat() {
		return bst.Float(s)
	}
	return bst.Int(s)
}

// stride is the expression added to v on each pass. Unsigned elements take a
// signed step, which is converted so that a negative step wraps.
func (g *loopBuilder) stride() ast.Expr {
	if g.inst.StepKind() != g.inst.Kind() {
		return bst.Convert(g.inst.Kind().GoType(), g.step)
	}
	return g.step
}

// next is the value after v. Floats are recomputed from lower and the next
// position rather than accumulated, and the product is converted explicitly so
// it is rounded before the add, matching how the end was computed.
func (g *loopBuilder) next() ast.Expr {
	if g.inst.Kind().IsFloat() {
		goType := g.inst.Kind().GoType()
		k := bst.Convert(goType, bst.Binary(g.i, token.ADD, bst.Int(1)))
		return bst.Binary(g.lower, token.ADD, bst.Convert(goType, bst.Binary(k, token.MUL, g.step)))
	}
	return bst.Binary(g.v, token.ADD, g.stride())
}

func (g *loopBuilder) loop(indexed bool) *ast.ForStmt {
	loop := &ast.ForStmt{
		Cond: bst.Binary(g.v, token.NEQ, g.end),
	}
	printArgs := []ast.Expr{g.v}
	if g.i == nil {
		loop.Init = bst.Define(g.v, g.lower)
		loop.Post = bst.OpAssign("+")(g.v, g.stride())
	} else {
		loop.Init = bst.Define([]ast.Expr{g.i, g.v}, []ast.Expr{bst.Int(0), g.lower})
		loop.Post = bst.Assign([]ast.Expr{g.i, g.v}, []ast.Expr{bst.Binary(g.i, token.ADD, bst.Int(1)), g.next()})
	}
	if indexed {
		printArgs = []ast.Expr{g.i, g.v}
	}
	loop.Body = &ast.BlockStmt{
		List: []ast.Stmt{
			&ast.ExprStmt{X: bst.Call("fmt", "Println", printArgs...)},
		},
	}
	return loop
}

// literal reports whether s can be written as a Go numeric literal.
func literal(s string) bool {
	return !strings.Contains(s, "Inf") && !strings.Contains(s, "NaN")
}
