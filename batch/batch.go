// Package batch evaluates many independent integer expressions in parallel.
package batch

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/decint/integer"
)

// Expr is a single binary expression.
type Expr struct {
	X  integer.Int `yaml:"x"`
	Op Op          `yaml:"op"`
	Y  integer.Int `yaml:"y"`
}

func (e Expr) String() string {
	return fmt.Sprintf("%s %s %s", e.X, e.Op, e.Y)
}

// Result is the outcome of evaluating an Expr. Err is set when the expression
// itself could not be evaluated (e.g. division by zero).
type Result struct {
	Expr  Expr
	Value integer.Int
	Err   error
}

// Options configures Evaluate.
type Options struct {
	// Workers bounds the number of expressions evaluated at once. Zero
	// means runtime.GOMAXPROCS(0).
	Workers int

	// Logger receives debug output. Nil disables logging.
	Logger *zap.Logger
}

// Evaluate computes every expression and returns the results in input order.
// Failures of individual expressions are reported in their Result; the
// returned error is only set when ctx is done before all work finished.
func Evaluate(ctx context.Context, exprs []Expr, opts Options) (results []Result, err error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	log.Debug("evaluating batch",
		zap.Int("exprs", len(exprs)),
		zap.Int("workers", workers),
	)

	results = make([]Result, len(exprs))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i := range exprs {
		// Stop handing out work once the context is done.
		if egCtx.Err() != nil {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			e := exprs[i]
			v, err := e.Op.Apply(e.X, e.Y)

			results[i] = Result{
				Expr:  e,
				Value: v,
				Err:   err,
			}

			if err != nil {
				log.Debug("expression failed",
					zap.Int("index", i),
					zap.Stringer("expr", e),
					zap.Error(err),
				)
			}

			return nil
		})
	}

	err = eg.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return nil, err
	}

	return results, nil
}

// Document is the YAML form of a batch:
//
//	exprs:
//	  - {x: "121", op: "/", y: "11"}
//	  - {x: "-999", op: "+", y: "1"}
type Document struct {
	Exprs []Expr `yaml:"exprs"`
}

// rawExpr records which keys of an expression were present.
type rawExpr struct {
	X  *integer.Int `yaml:"x"`
	Op *Op          `yaml:"op"`
	Y  *integer.Int `yaml:"y"`
}

// LoadDocument reads a Document from r. Every expression must name both
// operands and the operator.
func LoadDocument(r io.Reader) (doc *Document, err error) {
	defer Error.WrapP(&err)

	var raw struct {
		Exprs []rawExpr `yaml:"exprs"`
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	err = dec.Decode(&raw)
	if err != nil {
		if err == io.EOF {
			return &Document{}, nil
		}

		return nil, err
	}

	doc = &Document{
		Exprs: make([]Expr, 0, len(raw.Exprs)),
	}

	for i, e := range raw.Exprs {
		switch {
		case e.X == nil:
			return nil, Error.New("expression %d: missing operand x", i)
		case e.Op == nil || *e.Op == Invalid:
			return nil, Error.New("expression %d: missing operator", i)
		case e.Y == nil:
			return nil, Error.New("expression %d: missing operand y", i)
		}

		doc.Exprs = append(doc.Exprs, Expr{X: *e.X, Op: *e.Op, Y: *e.Y})
	}

	return doc, nil
}
