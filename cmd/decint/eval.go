package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/calebcase/decint/batch"
)

func (a *app) evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval X OP Y",
		Short: "Evaluate a single expression",
		Long: `Evaluates X OP Y where OP is one of + - * / and prints the result.

Example:
  decint eval 340282366920938463463374607431768211455 '*' 340282366920938463463374607431768211455`,
		Args: cobra.ExactArgs(3),
		RunE: a.runEval,
	}
}

func (a *app) runEval(cmd *cobra.Command, args []string) error {
	x, err := a.parse(args[0])
	if err != nil {
		return err
	}

	op, err := batch.ParseOp(args[1])
	if err != nil {
		return err
	}

	y, err := a.parse(args[2])
	if err != nil {
		return err
	}

	v, err := op.Apply(x, y)
	if err != nil {
		return err
	}

	a.logger.Debug("evaluated",
		zap.Stringer("x", x),
		zap.Stringer("op", op),
		zap.Stringer("y", y),
		zap.Int("digits", len(v.Digits())),
	)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), v)

	return err
}
