// Package bench drives the core explanation program against one or more
// models and emits one CSV row per yielded region, per spec.md §6's
// "Output" fields: seed-generation time, traversal time, cumulative
// oracle calls, running entailing/non-entailing counts, current-seed
// score and entailing flag, best score so far, and the Go heap's
// allocated bytes (runtime.MemStats.Alloc); RSS/VSZ are not recorded.
package bench

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/arborists/xregions/explain"
)

// Task is one model to benchmark: a ready-built Program plus the anchor
// point to enumerate from.
type Task struct {
	ModelName  string
	Program    *explain.Program
	Anchor     []float64
	BlockScore bool
}

// Header is the column order every Row is written in.
var Header = []string{
	"model",
	"seed_gen_seconds",
	"traversal_seconds",
	"oracle_calls",
	"entailing_count",
	"non_entailing_count",
	"score",
	"entailing",
	"best_score",
	"alloc_bytes",
}

// Row is one yielded-region measurement.
type Row struct {
	Model              string
	SeedGenSeconds     float64
	TraversalSeconds   float64
	OracleCalls        int
	EntailingCount     int
	NonEntailingCount  int
	Score              string
	Entailing          bool
	BestScore          string
	AllocBytes         uint64
}

func (r Row) strings() []string {
	return []string{
		r.Model,
		fmt.Sprintf("%.9f", r.SeedGenSeconds),
		fmt.Sprintf("%.9f", r.TraversalSeconds),
		fmt.Sprintf("%d", r.OracleCalls),
		fmt.Sprintf("%d", r.EntailingCount),
		fmt.Sprintf("%d", r.NonEntailingCount),
		r.Score,
		fmt.Sprintf("%t", r.Entailing),
		r.BestScore,
		fmt.Sprintf("%d", r.AllocBytes),
	}
}

// Run drives prog's enumeration for modelName, writing one CSV row per
// yielded region to w until the stream is exhausted or ctx is done.
// Every row's seed_gen_seconds and traversal_seconds both hold the wall
// time of that row's whole Next call; seed generation and traversal are
// not timed separately.
func Run(ctx context.Context, w io.Writer, modelName string, prog *explain.Program, x []float64, blockScore bool) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("bench: write header: %w", err)
	}

	stream, err := prog.Enumerate(x, blockScore)
	if err != nil {
		return fmt.Errorf("bench: enumerate: %w", err)
	}

	for {
		start := time.Now()
		r, ok, err := stream.Next(ctx)
		elapsed := time.Since(start).Seconds()
		if err != nil {
			return fmt.Errorf("bench: %s: %w", modelName, err)
		}
		if !ok {
			return cw.Error()
		}

		st := stream.Stats()

		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		row := Row{
			Model:             modelName,
			SeedGenSeconds:    elapsed,
			TraversalSeconds:  elapsed,
			OracleCalls:       st.OracleCalls,
			EntailingCount:    st.EntailingCount,
			NonEntailingCount: st.NonEntailingCount,
			Score:             prog.Score(r).String(),
			Entailing:         true,
			BestScore:         st.MaxScore.String(),
			AllocBytes:        mem.Alloc,
		}
		if err := cw.Write(row.strings()); err != nil {
			return fmt.Errorf("bench: write row: %w", err)
		}
	}
}

// RunMany drives each task in its own goroutine, bounded by timeout, and
// merges their CSV output into w. Per spec.md §5, "a faithful port may
// run each program in its own task/thread provided no SMT or SAT context
// is shared" — each Task already owns an independent Program, so no
// state crosses goroutine boundaries. Every task writes into its own
// buffer first; buffers are copied into w, in task order, once every
// goroutine has finished, so concurrent tasks never interleave their CSV
// rows. Per-model errors are collected and returned together rather than
// aborting the whole run.
func RunMany(parent context.Context, w io.Writer, tasks []Task, timeout time.Duration) []error {
	bufs := make([]bytes.Buffer, len(tasks))
	errs := make([]error, len(tasks))

	var wg sync.WaitGroup
	for i, task := range tasks {
		wg.Add(1)
		go func(i int, task Task) {
			defer wg.Done()
			ctx := parent
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(parent, timeout)
				defer cancel()
			}
			errs[i] = Run(ctx, &bufs[i], task.ModelName, task.Program, task.Anchor, task.BlockScore)
		}(i, task)
	}
	wg.Wait()

	for i := range bufs {
		if i == 0 {
			w.Write(bufs[i].Bytes())
			continue
		}
		// Every task's buffer carries its own header row; drop it for
		// every buffer after the first so the merged CSV has exactly one.
		lines := bytes.SplitAfterN(bufs[i].Bytes(), []byte("\n"), 2)
		if len(lines) == 2 {
			w.Write(lines[1])
		}
	}

	out := errs[:0]
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}
	return out
}
