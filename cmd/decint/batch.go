package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calebcase/decint/batch"
)

func (a *app) batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Evaluate a YAML document of expressions in parallel",
		Long: `Evaluates every expression in FILE ("-" reads standard input) and prints one
line per expression in input order:

  exprs:
    - {x: "121", op: "/", y: "11"}
    - {x: "-999", op: "+", y: "1"}

Operands in documents are always parsed strictly. The command fails if any
expression failed.`,
		Args: cobra.ExactArgs(1),
		RunE: a.runBatch,
	}
}

func (a *app) runBatch(cmd *cobra.Command, args []string) (err error) {
	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()

		r = f
	}

	doc, err := batch.LoadDocument(r)
	if err != nil {
		return err
	}

	results, err := batch.Evaluate(cmd.Context(), doc.Exprs, batch.Options{
		Workers: a.cfg.Workers,
		Logger:  a.logger,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			_, err = fmt.Fprintf(out, "%s: %v\n", res.Expr, res.Err)
		} else {
			_, err = fmt.Fprintf(out, "%s = %s\n", res.Expr, res.Value)
		}
		if err != nil {
			return err
		}
	}

	a.logger.Info("batch finished",
		zap.String("file", args[0]),
		zap.Int("exprs", len(results)),
		zap.Int("failed", failed),
	)

	if failed > 0 {
		return batch.Error.New("%d of %d expressions failed", failed, len(results))
	}

	return nil
}
