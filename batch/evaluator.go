package batch

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/rattrig"
	"github.com/hupe1980/rattrig/codec"
	"github.com/hupe1980/rattrig/numeric"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// maxLineSize bounds a single JSON Lines record.
const maxLineSize = 1 << 20

// Triangle is one input record. Exactly one of Points or Quadrances must be
// set, each with three entries.
type Triangle struct {
	ID         string      `json:"id,omitempty"`
	Points     [][2]string `json:"points,omitempty"`
	Quadrances []string    `json:"quadrances,omitempty"`
}

// Result is one output record. Scalars are formatted with the number type's
// String method.
//
// For a triangle ABC, Q1 = Q(A,B), Q2 = Q(B,C) and Q3 = Q(C,A); Si is the
// spread of the vertex opposite side Qi.
type Result struct {
	Index     int    `json:"index"`
	ID        string `json:"id,omitempty"`
	Q1        string `json:"q1"`
	Q2        string `json:"q2"`
	Q3        string `json:"q3"`
	Quadrea   string `json:"quadrea"`
	S1        string `json:"s1,omitempty"`
	S2        string `json:"s2,omitempty"`
	S3        string `json:"s3,omitempty"`
	Collinear bool   `json:"collinear"`
	Error     string `json:"error,omitempty"`
}

// Evaluator applies the formulas to triangles using number type T.
// It is safe for concurrent use.
type Evaluator[T numeric.Scalar[T]] struct {
	parse   func(string) (T, error)
	opts    options
	logger  *rattrig.Logger
	limiter *rate.Limiter
}

// New returns an Evaluator that parses scalars with parse, for example
// numeric.ParseRat.
func New[T numeric.Scalar[T]](parse func(string) (T, error), optFns ...Option) *Evaluator[T] {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	var zero T
	e := &Evaluator[T]{
		parse:  parse,
		opts:   o,
		logger: o.logger.WithType(fmt.Sprintf("%T", zero)),
	}

	if o.rateLimit > 0 {
		burst := int(o.rateLimit)
		if burst < 1 {
			burst = 1
		}
		e.limiter = rate.NewLimiter(rate.Limit(o.rateLimit), burst)
	}

	return e
}

// Evaluate computes the result for a single triangle. The returned error is
// an *InputError for malformed geometry; arithmetic failures are reported
// in Result.Error instead.
func (e *Evaluator[T]) Evaluate(index int, tri Triangle) (Result, error) {
	res, _, err := e.evaluate(index, tri)
	return res, err
}

func (e *Evaluator[T]) evaluate(index int, tri Triangle) (res Result, rowErr, err error) {
	q, err := e.quadrances(tri)
	if err != nil {
		return Result{}, nil, &InputError{Index: index, ID: tri.ID, cause: err}
	}

	quadrea := rattrig.Archimedes(q[0], q[1], q[2])
	res = Result{
		Index:   index,
		ID:      tri.ID,
		Q1:      q[0].String(),
		Q2:      q[1].String(),
		Q3:      q[2].String(),
		Quadrea: quadrea.String(),
	}

	rowErr = carriedErr(q[0], q[1], q[2], quadrea)
	if rowErr == nil {
		res.Collinear = quadrea.IsZero()
		rowErr = e.spreads(q, &res)
	}
	if rowErr != nil {
		res.Error = rowErr.Error()
	}

	return res, rowErr, nil
}

// spreads fills S1..S3 and returns the first division error.
func (e *Evaluator[T]) spreads(q [3]T, res *Result) error {
	var first error
	set := func(dst *string, s T, err error) {
		if err == nil {
			err = carriedErr(s)
		}
		if err != nil {
			if first == nil {
				first = err
			}
			return
		}
		*dst = s.String()
	}

	s1, err := rattrig.SpreadLaw(q[1], q[2], q[0])
	set(&res.S1, s1, err)
	s2, err := rattrig.SpreadLaw(q[2], q[0], q[1])
	set(&res.S2, s2, err)
	s3, err := rattrig.SpreadLaw(q[0], q[1], q[2])
	set(&res.S3, s3, err)

	return first
}

func (e *Evaluator[T]) quadrances(tri Triangle) ([3]T, error) {
	var q [3]T

	switch {
	case len(tri.Points) > 0 && len(tri.Quadrances) > 0:
		return q, ErrAmbiguousGeometry
	case len(tri.Points) > 0:
		if len(tri.Points) != 3 {
			return q, fmt.Errorf("want 3 points, got %d", len(tri.Points))
		}
		var p [3]rattrig.Vector2[T]
		for i, pt := range tri.Points {
			for j, s := range pt {
				v, err := e.parse(s)
				if err != nil {
					return q, fmt.Errorf("point %d: %w", i, err)
				}
				p[i][j] = v
			}
		}
		q[0] = rattrig.Quadrance(p[0], p[1])
		q[1] = rattrig.Quadrance(p[1], p[2])
		q[2] = rattrig.Quadrance(p[2], p[0])
	case len(tri.Quadrances) > 0:
		if len(tri.Quadrances) != 3 {
			return q, fmt.Errorf("want 3 quadrances, got %d", len(tri.Quadrances))
		}
		for i, s := range tri.Quadrances {
			v, err := e.parse(s)
			if err != nil {
				return q, fmt.Errorf("quadrance %d: %w", i, err)
			}
			q[i] = v
		}
	default:
		return q, ErrNoGeometry
	}

	return q, nil
}

// EvaluateAll evaluates tris concurrently and returns the results in input
// order. Result.Index is the position in tris.
func (e *Evaluator[T]) EvaluateAll(ctx context.Context, tris []Triangle) ([]Result, *Report, error) {
	start := time.Now()
	report := newReport()

	results, err := e.evaluateChunk(ctx, tris, 0)
	if err == nil {
		report.add(results)
	}
	report.Duration = time.Since(start)
	e.finish(ctx, report, err)

	if err != nil {
		return nil, nil, err
	}
	return results, report, nil
}

func (e *Evaluator[T]) evaluateChunk(ctx context.Context, tris []Triangle, base int) ([]Result, error) {
	results := make([]Result, len(tris))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.workers)

	for i := range tris {
		g.Go(func() error {
			if err := e.wait(gctx); err != nil {
				return err
			}

			start := time.Now()
			res, rowErr, err := e.evaluate(base+i, tris[i])
			if err != nil {
				return err
			}
			e.opts.metricsCollector.RecordEvaluate(time.Since(start), res.Collinear, rowErr)
			if rowErr != nil {
				e.logger.LogRowError(gctx, res.Index, res.ID, rowErr)
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Evaluator[T]) wait(ctx context.Context) error {
	if e.limiter != nil {
		return e.limiter.Wait(ctx)
	}
	return ctx.Err()
}

// Run reads triangles as JSON Lines from r and writes one result line per
// triangle to w, in input order. Blank lines are skipped.
func (e *Evaluator[T]) Run(ctx context.Context, r io.Reader, w io.Writer) (*Report, error) {
	start := time.Now()
	report := newReport()

	err := e.run(ctx, r, w, report)
	report.Duration = time.Since(start)
	e.finish(ctx, report, err)

	if err != nil {
		return nil, err
	}
	return report, nil
}

func (e *Evaluator[T]) run(ctx context.Context, r io.Reader, w io.Writer, report *Report) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	bw := bufio.NewWriter(w)

	chunk := make([]Triangle, 0, e.opts.chunkSize)
	next := 0
	var buf []byte

	flush := func() error {
		results, err := e.evaluateChunk(ctx, chunk, next)
		if err != nil {
			return err
		}
		for _, res := range results {
			buf, err = codec.AppendLine(e.opts.codec, buf[:0], res)
			if err != nil {
				return fmt.Errorf("encode result %d: %w", res.Index, err)
			}
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
		report.add(results)
		next += len(chunk)
		chunk = chunk[:0]
		return nil
	}

	line := 0
	for sc.Scan() {
		line++
		text := bytes.TrimSpace(sc.Bytes())
		if len(text) == 0 {
			continue
		}

		var tri Triangle
		if err := e.opts.codec.Unmarshal(text, &tri); err != nil {
			return &LineError{Line: line, cause: err}
		}
		chunk = append(chunk, tri)

		if len(chunk) == e.opts.chunkSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if len(chunk) > 0 {
		if err := flush(); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// RunFile is Run over files. Compression is chosen by file extension
// (.zst, .lz4, otherwise none).
func (e *Evaluator[T]) RunFile(ctx context.Context, inPath, outPath string) (report *Report, err error) {
	in, err := OpenFile(inPath)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	out, err := CreateFile(outPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			report, err = nil, cerr
		}
	}()

	return e.Run(ctx, in, out)
}

func (e *Evaluator[T]) finish(ctx context.Context, report *Report, err error) {
	e.opts.metricsCollector.RecordBatch(report.Count, report.FailedCount(), report.Duration)
	e.logger.LogBatch(ctx, report.Count, report.DegenerateCount(), report.FailedCount(), report.Duration, err)
}

// carriedErr returns the first error carried by a scalar, for number types
// such as numeric.Decimal that record overflow instead of returning it.
func carriedErr[T any](vs ...T) error {
	for _, v := range vs {
		if c, ok := any(v).(interface{ Err() error }); ok {
			if err := c.Err(); err != nil {
				return err
			}
		}
	}
	return nil
}
