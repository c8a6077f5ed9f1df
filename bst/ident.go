package bst

import (
	"fmt"
	"go/ast"
)

// IdentTracker hands out identifiers by name so that every use of a name in
// one scope shares a single *ast.Ident.
type IdentTracker map[string][]*ast.Ident

func (it IdentTracker) Get(name string) *ast.Ident {
	if i, ok := it[name]; ok {
		return i[0]
	}
	ident := ast.NewIdent(name)
	it[name] = []*ast.Ident{ident}
	return ident
}

// New returns a fresh identifier, suffixing name with a counter when it is
// already taken.
func (it IdentTracker) New(name string) *ast.Ident {
	i, ok := it[name]
	if !ok {
		return it.Get(name)
	}
	incName := fmt.Sprintf("%s%d", name, len(i))
	inc := ast.NewIdent(incName)
	it[name] = append(i, inc)
	it[incName] = []*ast.Ident{inc}
	return inc
}
