// package bst holds small constructors for go/ast nodes, enough to assemble
// the loops the compiler emits without spelling out every struct literal.
package bst

import (
	"go/ast"
	"go/token"
	"strconv"
)

func Call(rcvr interface{}, method interface{}, args ...ast.Expr) *ast.CallExpr {
	var fun ast.Expr
	if rcvr == nil {
		fun = toExpr(method)
	} else {
		fun = Dot(rcvr, method)
	}
	return &ast.CallExpr{
		Fun:  fun,
		Args: args,
	}
}

func Binary(left interface{}, op token.Token, right interface{}) ast.Expr {
	return &ast.BinaryExpr{
		X:  toExpr(left),
		Op: op,
		Y:  toExpr(right),
	}
}

func Dot(obj, member interface{}) *ast.SelectorExpr {
	return &ast.SelectorExpr{
		X:   toExpr(obj),
		Sel: toExpr(member).(*ast.Ident),
	}
}

// Convert wraps expr in a conversion to the named type.
func Convert(typeName string, expr interface{}) *ast.CallExpr {
	return Call(nil, typeName, toExpr(expr))
}

func toExpr(i interface{}) ast.Expr {
	switch x := i.(type) {
	case string:
		return ast.NewIdent(x)
	case ast.Expr:
		return x
	default:
		panic("only supported types are string and ast.Expr")
	}
}

func Int(i interface{}) *ast.BasicLit {
	var val string
	if str, ok := i.(string); ok {
		val = str
	} else {
		val = strconv.Itoa(i.(int))
	}
	return &ast.BasicLit{
		Kind:  token.INT,
		Value: val,
	}
}

func Float(lit string) *ast.BasicLit {
	return &ast.BasicLit{
		Kind:  token.FLOAT,
		Value: lit,
	}
}

type AssignFunc func(interface{}, interface{}) *ast.AssignStmt

var opAssignTokens = map[string]token.Token{
	"+": token.ADD_ASSIGN,
}

func OpAssign(op string) AssignFunc {
	return func(lhs, rhs interface{}) *ast.AssignStmt {
		return &ast.AssignStmt{
			Lhs: toExprSlice(lhs),
			Tok: opAssignTokens[op],
			Rhs: toExprSlice(rhs),
		}
	}
}

func Assign(lhs, rhs interface{}) *ast.AssignStmt {
	return &ast.AssignStmt{
		Lhs: toExprSlice(lhs),
		Tok: token.ASSIGN,
		Rhs: toExprSlice(rhs),
	}
}

func Define(lhs, rhs interface{}) *ast.AssignStmt {
	return &ast.AssignStmt{
		Lhs: toExprSlice(lhs),
		Tok: token.DEFINE,
		Rhs: toExprSlice(rhs),
	}
}

// Var declares specs in one var block; the printer parenthesizes it when
// there is more than one.
func Var(specs ...*ast.ValueSpec) *ast.GenDecl {
	decl := &ast.GenDecl{Tok: token.VAR}
	for _, spec := range specs {
		decl.Specs = append(decl.Specs, spec)
	}
	return decl
}

func Value(name *ast.Ident, goType string, value ast.Expr) *ast.ValueSpec {
	return &ast.ValueSpec{
		Names:  []*ast.Ident{name},
		Type:   ast.NewIdent(goType),
		Values: []ast.Expr{value},
	}
}

func toExprSlice(i interface{}) []ast.Expr {
	switch x := i.(type) {
	case []ast.Expr:
		return x
	case string:
		return []ast.Expr{ast.NewIdent(x)}
	default:
		return []ast.Expr{i.(ast.Expr)}
	}
}
