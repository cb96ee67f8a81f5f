package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/alecthomas/participle"

	. "github.com/dave/jennifer/jen"
)

type EnumDecls struct {
	Declarations []*Declaration `@@*`
}

type Declaration struct {
	Name  string   `"enum" @Ident "="`
	Cases []string `@Ident ("|" @Ident)*`
	I     struct{} `";"`
}

func (e *EnumDecls) Validate() error {
	seen := map[string]string{}
	for _, decl := range e.Declarations {
		for _, c := range decl.Cases {
			if prev, ok := seen[c]; ok {
				return fmt.Errorf("case %s of %s already declared by %s", c, decl.Name, prev)
			}
			seen[c] = decl.Name
		}
	}
	return nil
}

func GenerateEnums(pkgname string, e *EnumDecls) string {
	f := NewFile(pkgname)
	f.HeaderComment("Code generated by enumgen. DO NOT EDIT.")

	for _, decl := range e.Declarations {
		decl := decl

		f.Type().Id(decl.Name).Int()

		f.Const().DefsFunc(func(g *Group) {
			for i, c := range decl.Cases {
				if i == 0 {
					g.Id(c).Id(decl.Name).Op("=").Iota()
				} else {
					g.Id(c)
				}
			}
		})

		f.Var().Id(decl.Name + "Values").Op("=").Index().Id(decl.Name).ValuesFunc(func(g *Group) {
			for _, c := range decl.Cases {
				g.Id(c)
			}
		})

		f.Func().Params(Id("t").Id(decl.Name)).Id("String").Params().String().Block(
			Switch(Id("t")).BlockFunc(func(g *Group) {
				for _, c := range decl.Cases {
					g.Case(Id(c)).Block(Return(Lit(c)))
				}
			}),
			Return(Qual("fmt", "Sprintf").Call(Lit(decl.Name+"(%d)"), Int().Call(Id("t")))),
		)
	}

	return fmt.Sprintf("%#v", f)
}

func main() {
	parser := participle.MustBuild(&EnumDecls{})

	in := os.Args[1]
	out := os.Args[2]
	pkgname := os.Args[3]

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		panic(err)
	}

	decls := EnumDecls{}
	err = parser.ParseBytes(inData, &decls)
	if err != nil {
		panic(err)
	}
	if err = decls.Validate(); err != nil {
		panic(err)
	}

	err = ioutil.WriteFile(out, []byte(GenerateEnums(pkgname, &decls)), 0644)
	if err != nil {
		panic(err)
	}
}
