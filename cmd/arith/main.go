// Command arith evaluates a "+"/"-" integer expression and prints
// "<expression> = <result>".
//
//	arith 5 + 3 - 2 + 10 - 4
//	arith -f expr.txt
//	echo "10 - 20" | arith
//	arith -5 + 3
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/robbyt/go-arithscript/engines/arith"
	"github.com/robbyt/go-arithscript/engines/arith/ast"
	"github.com/robbyt/go-arithscript/engines/arith/compiler"
	"github.com/robbyt/go-arithscript/engines/arith/evaluator"
	"github.com/robbyt/go-arithscript/platform/script"
	"github.com/robbyt/go-arithscript/platform/script/loader"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("arith", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: arith [-tree] [-v] [-f file] [expression...]")
		fmt.Fprintln(stderr, "With no expression and no -f, the expression is read from stdin.")
		fmt.Fprintln(stderr, "Negative literals such as -5 are read as part of the expression; use -- to end flags explicitly.")
		fs.PrintDefaults()
	}
	showTree := fs.Bool("tree", false, "print the parsed expression tree")
	verbose := fs.Bool("v", false, "enable debug logging on stderr")
	file := fs.String("f", "", "read the expression from `file`")
	flagArgs, exprArgs := splitNumericArgs(args)
	if err := fs.Parse(flagArgs); err != nil {
		return 2
	}
	exprArgs = append(append([]string{}, fs.Args()...), exprArgs...)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})

	ldr, err := sourceLoader(*file, exprArgs, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	comp, err := arith.NewCompiler(compiler.WithLogHandler(handler))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	unit, err := script.NewExecutableUnit(handler, "", ldr, comp)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	exe, ok := unit.GetContent().(*compiler.Executable)
	if !ok {
		fmt.Fprintf(stderr, "Error: unexpected content type %T\n", unit.GetContent())
		return 1
	}
	if *showTree {
		printTree(stdout, exe.GetArithTree(), 0)
	}

	response, err := evaluator.New(handler, unit).Eval(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "%s = %s\n", strings.TrimSpace(exe.GetSource()), response.Inspect())
	return 0
}

// splitNumericArgs stops flag parsing at the first argument that looks like
// a negative literal, so "arith -5 + 3" is an expression rather than an
// unknown flag. An argument following -f is its value and never splits.
func splitNumericArgs(args []string) ([]string, []string) {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if i > 0 && (args[i-1] == "-f" || args[i-1] == "--f") {
			continue
		}
		if len(arg) > 1 && arg[0] == '-' && arg[1] >= '0' && arg[1] <= '9' {
			return args[:i], args[i:]
		}
	}
	return args, nil
}

// sourceLoader picks where the expression comes from: a file, the
// positional arguments joined with spaces, or stdin.
func sourceLoader(file string, args []string, stdin io.Reader) (loader.Loader, error) {
	switch {
	case file != "" && len(args) > 0:
		return nil, fmt.Errorf("-f cannot be combined with an expression argument")
	case file != "":
		path, err := filepath.Abs(file)
		if err != nil {
			return nil, err
		}
		return loader.NewFromDisk(path)
	case len(args) > 0:
		return loader.NewFromString(strings.Join(args, " "))
	default:
		return loader.NewFromIoReader(stdin, "stdin")
	}
}

func printTree(w io.Writer, n ast.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v := n.(type) {
	case *ast.BinaryOp:
		fmt.Fprintf(w, "%s%s\n", indent, v.Op)
		printTree(w, v.Left, depth+1)
		printTree(w, v.Right, depth+1)
	case ast.Literal:
		fmt.Fprintf(w, "%s%s\n", indent, v)
	}
}
