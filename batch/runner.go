package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/tsawler/outliner/extract"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/outline"
)

// DefaultWorkers is the pool size when the caller does not choose one.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DefaultTimeout bounds the processing time of a single document.
const DefaultTimeout = 10 * time.Second

// ErrTimeout marks a document that exceeded its processing deadline.
var ErrTimeout = errors.New("document processing timed out")

// Result records the outcome for one input file.
type Result struct {
	Path       string
	OutputPath string
	Title      string
	Entries    int
	Duration   time.Duration
	Err        error
}

// Failed reports whether this document produced no output.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Summary aggregates a whole run.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Elapsed   time.Duration
	Results   []Result
}

// readFunc matches extract.ReadDocument; swapped out in tests.
type readFunc func(path string, maxPages int) (*model.Document, error)

// Runner processes every PDF in an input directory and writes one JSON
// outline per document into the output directory.
type Runner struct {
	engine  *outline.Engine
	log     *slog.Logger
	workers int
	timeout time.Duration
	read    readFunc
}

// NewRunner builds a runner. A nil logger discards output; non-positive
// workers and timeout fall back to the defaults.
func NewRunner(engine *outline.Engine, log *slog.Logger, workers int, timeout time.Duration) *Runner {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{
		engine:  engine,
		log:     log,
		workers: workers,
		timeout: timeout,
		read:    extract.ReadDocument,
	}
}

// Run processes every *.pdf under inputDir with bounded concurrency.
// Results are returned in input order regardless of completion order.
func (r *Runner) Run(ctx context.Context, inputDir, outputDir string) (Summary, error) {
	start := time.Now()

	paths, err := discover(inputDir)
	if err != nil {
		return Summary{}, err
	}
	if len(paths) == 0 {
		r.log.Warn("no PDF files found", "dir", inputDir)
		return Summary{Elapsed: time.Since(start), Results: []Result{}}, nil
	}

	if err := ensureDir(outputDir); err != nil {
		return Summary{}, err
	}

	r.log.Info("starting batch", "files", len(paths), "workers", r.workers, "timeout", r.timeout)

	results := make([]Result, len(paths))
	sem := make(chan struct{}, r.workers)
	done := make(chan int, len(paths))

	for i, path := range paths {
		sem <- struct{}{}
		go func(i int, path string) {
			defer func() { <-sem }()
			results[i] = r.processOne(ctx, path, outputDir)
			done <- i
		}(i, path)
	}
	for range paths {
		<-done
	}

	summary := Summary{
		Total:   len(paths),
		Elapsed: time.Since(start),
		Results: results,
	}
	for _, res := range results {
		if res.Failed() {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}

	r.log.Info("batch complete",
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"elapsed", summary.Elapsed)
	return summary, nil
}

// processOne runs extraction and outlining for a single file under the
// per-document deadline. A document that misses its deadline leaves no
// output file behind.
func (r *Runner) processOne(ctx context.Context, path string, outputDir string) Result {
	log := r.log.With("file", filepath.Base(path))
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	type outcome struct {
		out *outline.Outline
		err error
	}
	ch := make(chan outcome, 1)
	go func() {
		doc, err := r.read(path, r.engine.Config().MaxPages)
		if err != nil {
			ch <- outcome{err: err}
			return
		}
		if !doc.HasText() {
			log.Warn("no extractable text, emitting empty outline")
		}
		ch <- outcome{out: r.engine.BuildOutline(doc)}
	}()

	var out *outline.Outline
	select {
	case <-ctx.Done():
		err := ctx.Err()
		if errors.Is(err, context.DeadlineExceeded) {
			log.Error("document timed out", "timeout", r.timeout)
			return Result{Path: path, Duration: time.Since(start), Err: ErrTimeout}
		}
		// Parent cancellation (shutdown), not this document's fault.
		log.Warn("processing cancelled", "error", err)
		return Result{Path: path, Duration: time.Since(start), Err: err}
	case o := <-ch:
		if o.err != nil {
			var perr *extract.ParseError
			if errors.As(o.err, &perr) {
				log.Error("unparseable document, skipping", "error", o.err)
			} else {
				log.Error("processing failed", "error", o.err)
			}
			return Result{Path: path, Duration: time.Since(start), Err: o.err}
		}
		out = o.out
	}

	outPath := outputPath(outputDir, path)
	if err := writeOutline(outPath, out); err != nil {
		log.Error("write failed", "error", err)
		return Result{Path: path, Duration: time.Since(start), Err: fmt.Errorf("write %s: %w", outPath, err)}
	}

	res := Result{
		Path:       path,
		OutputPath: outPath,
		Title:      out.Title,
		Entries:    len(out.Entries),
		Duration:   time.Since(start),
	}
	log.Info("done", "title", out.Title, "entries", res.Entries, "elapsed", res.Duration)
	return res
}

// discover lists the PDF files in dir, sorted for deterministic ordering.
func discover(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// outputPath maps an input file to its JSON sibling in the output
// directory: dir/report.pdf becomes out/report.json.
func outputPath(outputDir, inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, stem+".json")
}
