// Package scheduler runs the formatting pipeline over discovered files with
// a bounded worker pool. Files are mutually independent; the only shared
// state is the read-only configuration and formatter set.
package scheduler

import (
	"bytes"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/dl/srcfmt/internal/formatter"
	"github.com/dl/srcfmt/internal/input"
	"github.com/dl/srcfmt/internal/output"
	"github.com/dl/srcfmt/internal/pipeline"
	"github.com/dl/srcfmt/internal/rewrite"
	"github.com/dl/srcfmt/internal/walker"
)

// Scheduler manages a pool of workers that format files concurrently.
type Scheduler struct {
	workers    int
	formatters []formatter.SourceFormatter
	cfg        *formatter.Config
	reader     input.Reader
	check      bool
}

// New creates a Scheduler. workers <= 0 defaults to NumCPU.
// When check is true, files are never written; Result.Changed reports
// whether a rewrite would have happened.
func New(workers int, formatters []formatter.SourceFormatter, cfg *formatter.Config, reader input.Reader, check bool) *Scheduler {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Scheduler{
		workers:    workers,
		formatters: formatters,
		cfg:        cfg,
		reader:     reader,
		check:      check,
	}
}

// Run processes files from the channel and returns results on the returned
// channel. Results carry sequence numbers for ordered output.
func (s *Scheduler) Run(files <-chan walker.FileEntry) <-chan output.Result {
	resultCh := make(chan output.Result, s.workers*2)
	var seq atomic.Int64

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for entry := range files {
				result := s.Process(entry.Path)
				result.SeqNum = int(seq.Add(1))
				resultCh <- result
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	return resultCh
}

// Process formats a single file: applicability check, read, pipeline,
// rewrite. All failure modes are captured in the Result; an error on one
// file never affects any other.
func (s *Scheduler) Process(path string) output.Result {
	result := output.Result{Path: path}

	applicable := formatter.ApplicableFor(path, s.formatters)
	if len(applicable) == 0 {
		result.Skipped = true
		return result
	}

	readResult, err := s.reader.Read(path)
	if err != nil {
		result.Err = err
		return result
	}
	defer func() {
		if readResult.Closer != nil {
			readResult.Closer()
		}
	}()

	if walker.IsBinary(readResult.Data) {
		result.Skipped = true
		return result
	}

	formatted, err := pipeline.Apply(readResult.Data, applicable, s.cfg)
	if err != nil {
		result.Err = err
		return result
	}

	if s.check {
		result.Changed = !bytes.Equal(readResult.Data, formatted)
		return result
	}

	changed, err := rewrite.Rewrite(path, readResult.Data, formatted)
	if err != nil {
		result.Err = err
		return result
	}
	result.Changed = changed
	return result
}
