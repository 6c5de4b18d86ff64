package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/cwbudde/loxwalk/internal/ast"
	"github.com/cwbudde/loxwalk/internal/config"
	"github.com/cwbudde/loxwalk/internal/interpreter"
	"github.com/cwbudde/loxwalk/internal/metrics"
	"github.com/cwbudde/loxwalk/internal/watch"
)

const (
	exitSuccess       = 0
	exitFileReadError = 65
	exitPipelineError = 70
)

var (
	watchFlag       bool
	metricsAddrFlag string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a loxwalk program, or start a REPL with no file",
	Long: `Execute a loxwalk program from a file, or start a REPL if no file is
given.

Examples:
  loxwalk run script.lox
  loxwalk run --watch script.lox
  loxwalk run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMain,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&watchFlag, "watch", false, "re-run the file whenever it changes on disk")
	runCmd.Flags().StringVar(&metricsAddrFlag, "metrics-addr", "", "expose Prometheus metrics at this address, e.g. :9090")
}

func runMain(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if watchFlag {
		cfg.Watch = true
	}
	if metricsAddrFlag != "" {
		cfg.MetricsAddr = metricsAddrFlag
	}

	var reg *metrics.Registry
	if cfg.MetricsAddr != "" {
		reg = metrics.New()
		go func() {
			_ = http.ListenAndServe(cfg.MetricsAddr, reg.Handler())
		}()
	}

	if len(args) == 0 {
		runREPL(cfg, reg)
		return nil
	}

	path := args[0]
	if cfg.Watch {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		code := exitSuccess
		err := watch.Run(ctx, path, func() {
			code = runFile(path, cfg, reg)
		})
		if err != nil {
			return err
		}
		os.Exit(code)
		return nil
	}

	os.Exit(runFile(path, cfg, reg))
	return nil
}

// runFile implements spec.md §6's "<prog> <path>" CLI surface.
func runFile(path string, cfg *config.Config, reg *metrics.Registry) int {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loxwalk: %v\n", err)
		return exitFileReadError
	}

	stmts, ok := frontend(string(content), os.Stderr)
	if !ok {
		return exitPipelineError
	}

	opts := []interpreter.Option{
		interpreter.WithOutput(os.Stdout),
		interpreter.WithErrorOutput(os.Stderr),
		interpreter.WithConfig(cfg),
	}
	in := interpreter.New(opts...)
	start := time.Now()
	runErr := in.Run(stmts)
	if reg != nil {
		reg.ScriptRunSeconds.Observe(time.Since(start).Seconds())
		reg.ScriptRunsTotal.Inc()
		reg.StatementsTotal.Add(float64(in.StatementCount()))
		reg.CallsTotal.Add(float64(in.CallCount()))
	}
	if runErr != nil {
		if reg != nil {
			reg.RuntimeErrors.Inc()
		}
		return exitPipelineError
	}
	return exitSuccess
}

// runREPL implements spec.md §6's no-argument CLI surface: read a line,
// run it, print results/errors, loop forever. Unlike file mode, a runtime
// error never terminates the REPL — it is reported and the loop continues
// with the same persistent environment.
func runREPL(cfg *config.Config, reg *metrics.Registry) {
	in := interpreter.New(
		interpreter.WithOutput(os.Stdout),
		interpreter.WithErrorOutput(os.Stderr),
		interpreter.WithConfig(cfg),
	)

	interactive := isatty.IsTerminal(os.Stdin.Fd())
	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Fprint(os.Stdout, "> ")
		}
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		// A bare expression may omit its trailing ';'. Try the line with one
		// appended first; if that is not a single expression statement, parse
		// the line exactly as typed and report its errors.
		stmts, ok := frontend(line+";", io.Discard)
		if _, isBareExpr := soleExprStmt(stmts); !ok || !isBareExpr {
			if stmts, ok = frontend(line, os.Stderr); !ok {
				continue
			}
		}

		var runErr error
		if exprStmt, isBareExpr := soleExprStmt(stmts); isBareExpr {
			v, err := in.EvalExpression(exprStmt.Expression)
			if err != nil {
				runErr = err
				fmt.Fprintln(os.Stderr, err)
			} else {
				fmt.Fprintln(os.Stdout, v.String())
			}
		} else {
			runErr = in.Run(stmts)
		}

		if runErr != nil && reg != nil {
			reg.RuntimeErrors.Inc()
		}
		if reg != nil {
			reg.ScriptRunsTotal.Inc()
		}
	}
}

// soleExprStmt reports whether stmts is exactly one bare expression
// statement, the case the REPL auto-prints instead of silently discarding.
func soleExprStmt(stmts []ast.Stmt) (*ast.ExprStmt, bool) {
	if len(stmts) != 1 {
		return nil, false
	}
	exprStmt, ok := stmts[0].(*ast.ExprStmt)
	return exprStmt, ok
}
