// Command symtab loads a classpath and a compilation unit description and
// prints what simple names resolve to at a given scope, together with the
// scope each candidate comes from.
//
//	symtab -classpath 'testdata/**/*.yaml' -unit Foo.yaml -scope 'com.example.Foo#run' type:List var:x method:emptyList
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"github.com/stackb/java-symtab/pkg/ast"
	"github.com/stackb/java-symtab/pkg/classpath"
	"github.com/stackb/java-symtab/pkg/collections"
	"github.com/stackb/java-symtab/pkg/index"
	"github.com/stackb/java-symtab/pkg/logger"
	"github.com/stackb/java-symtab/pkg/shadow"
	"github.com/stackb/java-symtab/pkg/symtab"
)

type config struct {
	classpath  collections.StringSlice
	unitFile   string
	scope      string
	localTypes string
	logLevel   string
	debug      bool
}

func main() {
	log.SetPrefix("symtab: ")
	log.SetFlags(0) // don't print timestamps

	conf := config{}
	fs := flag.NewFlagSet("symtab", flag.ContinueOnError)
	fs.Var(&conf.classpath, "classpath", "glob of classpath description files (.json, .yaml); repeatable")
	fs.StringVar(&conf.unitFile, "unit", "", "the compilation unit description file")
	fs.StringVar(&conf.scope, "scope", "", "where to look names up: empty for the unit, a class name, or class#method")
	fs.StringVar(&conf.localTypes, "local_types", "conflict", "local class policy: conflict or shadow")
	fs.StringVar(&conf.logLevel, "log_level", "warn", "log level")
	fs.BoolVar(&conf.debug, "debug", false, "dump the unit description")

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	if conf.unitFile == "" {
		log.Fatal("-unit is required")
	}
	if len(fs.Args()) == 0 {
		log.Fatal("positional args should be a non-empty list of lookups such as type:List, var:x or method:emptyList")
	}

	level, err := logger.ParseLevel(conf.logLevel)
	if err != nil {
		log.Fatal(err)
	}
	if err := run(&conf, logger.New(os.Stderr, level), fs.Args(), os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(conf *config, log zerolog.Logger, lookups []string, out io.Writer) error {
	filenames, err := expandGlobs(conf.classpath)
	if err != nil {
		return err
	}
	log.Debug().Strs("files", filenames).Msg("loading classpath")

	cp, err := classpath.Load(filenames...)
	if err != nil {
		return err
	}

	spec, err := index.ReadUnitSpec(conf.unitFile)
	if err != nil {
		return err
	}
	if conf.debug {
		spew.Fdump(os.Stderr, spec)
	}

	unit, err := newCompilationUnit(spec, cp)
	if err != nil {
		return fmt.Errorf("%s: %w", conf.unitFile, err)
	}

	symtabConfig := symtab.DefaultConfig()
	symtabConfig.Logger = log
	switch conf.localTypes {
	case "conflict":
		symtabConfig.LocalTypes = symtab.LocalTypesConflict
	case "shadow":
		symtabConfig.LocalTypes = symtab.LocalTypesShadow
	default:
		return fmt.Errorf("invalid -local_types: %q", conf.localTypes)
	}

	diagnostics := symtab.NewCollector(symtab.NewLogReporter(log))
	tables := symtab.NewSession(symtabConfig, cp, diagnostics).Build(unit)

	table, err := selectScope(tables, unit, conf.scope)
	if err != nil {
		return err
	}

	for _, lookup := range lookups {
		if err := printLookup(out, table, lookup); err != nil {
			return err
		}
	}
	for _, d := range diagnostics.Diagnostics() {
		fmt.Fprintf(out, "warning: %v\n", d)
	}
	return nil
}

func expandGlobs(patterns []string) ([]string, error) {
	var filenames []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad -classpath pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("-classpath %q matched no files", pattern)
		}
		filenames = append(filenames, matches...)
	}
	return filenames, nil
}

// selectScope finds the table named by a scope expression: "" is the unit,
// "a.B" the body of class a.B and "a.B#m" the body of its method m.
func selectScope(tables *symtab.UnitTables, unit *ast.CompilationUnit, scope string) (*symtab.Table, error) {
	if scope == "" {
		return tables.Unit, nil
	}
	className, methodName, hasMethod := strings.Cut(scope, "#")
	td := findTypeDecl(unit.Types, className)
	if td == nil {
		return nil, fmt.Errorf("scope %q: class not declared in %s", scope, unit.File)
	}
	var node ast.Node = td
	if hasMethod {
		md := findMethodDecl(td, methodName)
		if md == nil {
			return nil, fmt.Errorf("scope %q: method not declared", scope)
		}
		node = md
		if md.Body != nil && len(md.Body.Statements) > 0 {
			node = md.Body.Statements[len(md.Body.Statements)-1]
		}
	}
	table, ok := tables.At(node)
	if !ok {
		return nil, fmt.Errorf("scope %q: no table", scope)
	}
	return table, nil
}

func findTypeDecl(decls []*ast.TypeDecl, name string) *ast.TypeDecl {
	for _, td := range decls {
		if td.Symbol.Name == name {
			return td
		}
		if nested := findTypeDecl(td.Types, name); nested != nil {
			return nested
		}
	}
	return nil
}

func findMethodDecl(td *ast.TypeDecl, name string) *ast.MethodDecl {
	for _, md := range td.Methods {
		if md.Symbol.Name == name {
			return md
		}
	}
	return nil
}

func printLookup(out io.Writer, table *symtab.Table, lookup string) error {
	ns, name, ok := strings.Cut(lookup, ":")
	if !ok || name == "" {
		return fmt.Errorf("bad lookup %q (want namespace:name)", lookup)
	}
	var lines []string
	switch ns {
	case "type":
		lines = explain(table.Types().Explain(name))
	case "var":
		lines = explain(table.Variables().Explain(name))
	case "method":
		lines = explain(table.Methods().Explain(name))
	default:
		return fmt.Errorf("bad lookup %q: unknown namespace %q (want type, var or method)", lookup, ns)
	}
	if len(lines) == 0 {
		fmt.Fprintf(out, "%s %s: not found\n", ns, name)
		return nil
	}
	for _, line := range lines {
		fmt.Fprintf(out, "%s %s: %s\n", ns, name, line)
	}
	return nil
}

func explain[S fmt.Stringer](matches []shadow.Match[S, symtab.ScopeInfo]) []string {
	var lines []string
	for _, m := range matches {
		for _, sym := range m.Symbols {
			lines = append(lines, fmt.Sprintf("[%v] %v", m.Tag, sym))
		}
	}
	return lines
}
