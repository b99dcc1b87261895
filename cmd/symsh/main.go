// Command symsh drives the symbolic interpreter from the command line: it
// either runs a program concretely, printing its stdout, or explores it
// symbolically and prints a three-way-partition report.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/shsym/shsym/ast"
	"github.com/shsym/shsym/execctx"
	"github.com/shsym/shsym/fsstate"
	"github.com/shsym/shsym/interp"
	"github.com/shsym/shsym/report"
)

var (
	runSymbolic = flag.Bool("run-symbolic", false, "explore the program symbolically and print a three-way partition report, instead of running it concretely")
	loopLimit   = flag.Int("loop-limit", 1000, "bound on while-loop iterations explored before forcing failure")
	reportPath  = flag.String("report", "", "write the --run-symbolic report to this path as well as stdout")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	prog, argv, err := loadProgram()
	if err != nil {
		return err
	}

	cfg, err := interp.New(interp.WithLoopLimit(*loopLimit))
	if err != nil {
		return err
	}

	if *runSymbolic {
		return runSymbolically(cfg, prog, argv)
	}
	return runConcretely(cfg, prog, argv)
}

// loadProgram builds the ast.Program to run. Parsing the Language's
// surface syntax is out of scope, so it always returns a tiny hardcoded
// "hello, $1" program, with the positional command-line arguments as its
// arguments; stdin, when it is not a terminal, is read and discarded.
func loadProgram() (ast.Program, []string, error) {
	args := flag.Args()
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		if _, err := io.Copy(io.Discard, os.Stdin); err != nil {
			return ast.Program{}, nil, err
		}
	}
	return helloProgram(), args, nil
}

func helloProgram() ast.Program {
	return ast.Program{
		Instr: ast.ISequence{
			I1: ast.IAssignment{
				Id: "greeting",
				Expr: ast.SConcat{
					E1: ast.SLiteral{Value: "hello, "},
					E2: ast.SArgument{N: 1},
				},
			},
			I2: ast.ICallUtility{
				Id: "echo",
				Args: ast.ListExpr{
					{Expr: ast.SVariable{Id: "greeting"}, Split: ast.DontSplit},
				},
			},
		},
	}
}

func runConcretely(cfg interp.Config, prog ast.Program, argv []string) error {
	state, ok, err := interp.RunConcrete(cfg, cfg.Backend, "symsh", argv, prog)
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stdout, state.Stdout.String())
	if !ok {
		os.Exit(1)
	}
	return nil
}

func runSymbolically(cfg interp.Config, prog ast.Program, argv []string) error {
	var cutoffs []int
	cfg.OnLoopBound = func(iteration int) { cutoffs = append(cutoffs, iteration) }

	initial := interp.SymbolicState{
		State: fsstate.New(cfg.Backend),
		Ctx:   execctx.New(argv),
	}
	res := interp.Run(cfg, interp.Input{Argument0: "symsh"}, initial, prog)
	summary := report.Summarize(res)

	if err := report.WriteSummary(os.Stdout, summary); err != nil {
		return err
	}
	for _, c := range cutoffs {
		fmt.Fprintf(os.Stdout, "loop bound hit after %d iteration(s)\n", c)
	}

	if *reportPath != "" {
		if err := report.WriteFile(*reportPath, summary, nil); err != nil {
			return err
		}
	}
	return nil
}
