package tasks

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/time/rate"

	"github.com/desertthunder/recipebox/internal/models"
	"github.com/desertthunder/recipebox/internal/shared"
)

// BulkImportOpts contains configuration for bulk recipe imports.
type BulkImportOpts struct {
	NumWorkers int     // Concurrent workers (default: 4, max: 10)
	RateLimit  float64 // Requests per second (default: 10)
}

// ImportResult is the outcome of importing a single recipe.
type ImportResult struct {
	Index int   // Position in the input
	Title string
	ID    int64 // Assigned id, zero on failure
	Error error
}

// BulkImportResult summarises a bulk import. Results are ordered by input position.
type BulkImportResult struct {
	Total     int
	Succeeded int
	Failed    int
	Results   []ImportResult
}

type importJob struct {
	index  int
	fields models.Fields
}

// BulkImport creates every recipe in fields through the service using a worker pool.
//
// Individual failures are recorded in the result and do not stop the run.
// Cancelling ctx stops dispatching; recipes not yet dispatched are reported as failed with the context error.
func (e *RecipeEngine) BulkImport(
	ctx context.Context,
	prog chan<- ProgressUpdate,
	fields []models.Fields,
	opts BulkImportOpts,
) (*BulkImportResult, error) {
	if e.svc == nil {
		return nil, fmt.Errorf("%w: recipe service not initialized", shared.ErrServiceUnavailable)
	}

	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 4
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 10.0
	}

	result := &BulkImportResult{
		Total:   len(fields),
		Results: make([]ImportResult, 0, len(fields)),
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan importJob, len(fields))
	results := make(chan ImportResult, len(fields))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.importWorker(ctx, &wg, jobs, results)
	}

	go func() {
		defer close(jobs)
		for i, f := range fields {
			if err := limiter.Wait(ctx); err != nil {
				for j := i; j < len(fields); j++ {
					results <- ImportResult{Index: j, Title: fields[j].Title, Error: ctx.Err()}
				}
				return
			}
			jobs <- importJob{index: i, fields: f}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		result.Results = append(result.Results, res)

		if res.Error == nil {
			result.Succeeded++
			e.sendProgress(prog, importedUpdate(completed, len(fields), res))
		} else {
			result.Failed++
			e.sendProgress(prog, importFailedUpdate(completed, len(fields), res))
		}
	}

	sort.Slice(result.Results, func(i, j int) bool {
		return result.Results[i].Index < result.Results[j].Index
	})

	return result, nil
}

// importWorker creates recipes from the jobs channel until it is closed.
func (e *RecipeEngine) importWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan importJob,
	results chan<- ImportResult,
) {
	defer wg.Done()

	for job := range jobs {
		res := ImportResult{Index: job.index, Title: job.fields.Title}

		recipe, err := e.svc.Create(ctx, job.fields)
		if err != nil {
			res.Error = err
		} else {
			res.ID = recipe.ID
		}
		results <- res
	}
}
