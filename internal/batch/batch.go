// Package batch maps a stream of lines concurrently while delivering the
// results in input order.
//
// Concurrency is confined to Run: a reader goroutine feeds a bounded job
// channel, a fixed set of workers apply the mapping function, and the caller's
// goroutine reorders results by index before handing them to emit. Channels
// are sized at twice the worker count, so a slow consumer applies
// backpressure all the way to the reader.
package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/isseis/go-string-mapper/internal/stringmapper"
)

// ErrStopped is wrapped by the error Run returns when it stops at a failed line.
var ErrStopped = errors.New("batch stopped at first failure")

// Source yields input lines. *bufio.Scanner implements it.
type Source interface {
	Scan() bool
	Text() string
	Err() error
}

// MapFunc maps one line. It is called from several goroutines at once.
type MapFunc func(line string) (string, error)

// Options controls a Run.
type Options struct {
	// Workers is the number of concurrent mapping goroutines, at least 1
	Workers int
	// ContinueOnError keeps going after a line fails
	ContinueOnError bool
}

// Result is the outcome for one input line.
type Result struct {
	// Index is the zero-based position of the line in the input
	Index  int
	Input  string
	Output string
	Err    error
	// Unchanged is set when the mapper returned its input untouched
	Unchanged bool
}

// Line returns the one-based line number of r.
func (r Result) Line() int {
	return r.Index + 1
}

// Summary counts the results delivered to emit.
type Summary struct {
	Processed int
	Failed    int
	Unchanged int
}

// LineError reports the line Run stopped at.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Is matches ErrStopped.
func (e *LineError) Is(target error) bool {
	return target == ErrStopped
}

func (e *LineError) Unwrap() error {
	return e.Err
}

type job struct {
	index int
	line  string
}

// Run reads every line of src, maps it with fn on opts.Workers goroutines and
// calls emit for each result in input order, including failed ones.
//
// Unless opts.ContinueOnError is set, Run returns a *LineError after emitting
// the first failed line; results of later lines are discarded. An error from
// emit, a read error from src or cancellation of ctx also end the run.
// A Source blocked in Scan is not interrupted; its goroutine exits once Scan
// returns.
func Run(ctx context.Context, src Source, fn MapFunc, opts Options, emit func(Result) error) (Summary, error) {
	workers := max(opts.Workers, 1)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Bounded channels at 2x concurrency provide backpressure
	inCh := make(chan job, workers*2)
	outCh := make(chan Result, workers*2)
	readErr := make(chan error, 1)

	go func() {
		defer close(inCh)
		for i := 0; src.Scan(); i++ {
			select {
			case inCh <- job{index: i, line: src.Text()}:
			case <-ctx.Done():
				readErr <- nil
				return
			}
		}
		readErr <- src.Err()
	}()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range inCh {
				r := mapLine(j, fn)
				select {
				case outCh <- r:
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(outCh)
	}()

	var sum Summary
	pending := make(map[int]Result)
	next := 0
	for r := range outCh {
		pending[r.Index] = r
		for {
			cur, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++

			sum.Processed++
			switch {
			case cur.Err != nil:
				sum.Failed++
			case cur.Unchanged:
				sum.Unchanged++
			}

			if err := emit(cur); err != nil {
				return sum, err
			}
			if cur.Err != nil && !opts.ContinueOnError {
				return sum, &LineError{Line: cur.Line(), Err: cur.Err}
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return sum, err
	}
	if err := <-readErr; err != nil {
		return sum, fmt.Errorf("read input: %w", err)
	}
	return sum, nil
}

func mapLine(j job, fn MapFunc) Result {
	out, err := fn(j.line)
	if err != nil {
		return Result{Index: j.index, Input: j.line, Err: err}
	}
	return Result{
		Index:     j.index,
		Input:     j.line,
		Output:    out,
		Unchanged: stringmapper.SameString(out, j.line),
	}
}
