// Copyright (c) 2021 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package allloomevents implements a Go analysis pass that verifies that a
// loomevent.Logger implementation handles every loomevent.Event type.
//
// Loggers that handle none of the event types, such as no-op loggers and
// test spies, are ignored. So are loggers declared in test files.
package allloomevents

import (
	"fmt"
	"go/ast"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const _loomeventPath = "go.uber.org/loom/loomevent"

// Analyzer reports LogEvent methods of loomevent.Loggers that don't handle
// some loomevent.Event types.
var Analyzer = &analysis.Analyzer{
	Name:     "allloomevents",
	Doc:      "check for unhandled loomevent.Events",
	Run:      run,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func run(pass *analysis.Pass) (interface{}, error) {
	pkg := loomeventPackage(pass.Pkg)
	if pkg == nil {
		return nil, nil
	}
	api := inspectLoomevent(pkg)

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{&ast.FuncDecl{}}, func(n ast.Node) {
		decl := n.(*ast.FuncDecl)
		if decl.Recv == nil || decl.Name.Name != "LogEvent" || decl.Body == nil {
			return
		}
		if strings.HasSuffix(pass.Fset.File(decl.Pos()).Name(), "_test.go") {
			return
		}

		recv := pass.TypesInfo.TypeOf(decl.Recv.List[0].Type)
		if recv == nil || !types.Implements(recv, api.logger) {
			return
		}

		missing := api.unhandled(pass.TypesInfo, decl.Body)
		if len(missing) == 0 || len(missing) == api.events.Len() {
			return
		}

		pass.Reportf(decl.Pos(), "%v doesn't handle %v",
			types.TypeString(recv, bareName), missing)
	})
	return nil, nil
}

// loomeventPackage returns the loomevent package if pkg is it or imports
// it.
func loomeventPackage(pkg *types.Package) *types.Package {
	if pkg.Path() == _loomeventPath {
		return pkg
	}
	for _, imp := range pkg.Imports() {
		if imp.Path() == _loomeventPath {
			return imp
		}
	}
	return nil
}

type loomevent struct {
	logger *types.Interface
	events typeutil.Map // event type -> struct{}
}

func inspectLoomevent(pkg *types.Package) *loomevent {
	scope := pkg.Scope()
	event := scope.Lookup("Event").Type()

	api := &loomevent{
		logger: scope.Lookup("Logger").Type().Underlying().(*types.Interface),
	}
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !obj.Exported() || name == "Event" {
			continue
		}

		for _, typ := range []types.Type{obj.Type(), types.NewPointer(obj.Type())} {
			if types.ConvertibleTo(typ, event) {
				api.events.Set(typ, struct{}{})
				break
			}
		}
	}
	return api
}

// unhandled returns the sorted names of the event types never named by a
// type switch case or a type assertion in body.
func (api *loomevent) unhandled(info *types.Info, body *ast.BlockStmt) []string {
	var handled typeutil.Map
	mark := func(expr ast.Expr) {
		if t := info.TypeOf(expr); t != nil {
			handled.Set(t, struct{}{})
		}
	}

	ast.Inspect(body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.CaseClause:
			for _, expr := range n.List {
				mark(expr)
			}
		case *ast.TypeAssertExpr:
			if n.Type != nil {
				mark(n.Type)
			}
		}
		return true
	})

	var missing []string
	api.events.Iterate(func(t types.Type, _ interface{}) {
		if handled.At(t) == nil {
			missing = append(missing, types.TypeString(t, bareName))
		}
	})
	sort.Strings(missing)
	return missing
}

// bareName is a types.Qualifier that drops package paths.
func bareName(*types.Package) string { return "" }
