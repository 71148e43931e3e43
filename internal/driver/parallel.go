package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"archdoc/internal/diag"
	"archdoc/internal/source"
)

// DirResult is one file's outcome from directory generation. Err is set for
// load and extraction failures; Bag carries the file's diagnostics when
// available.
type DirResult struct {
	Path   string
	Result *Result
	Bag    *diag.Bag
	Err    error
}

// ListSourceFiles returns every *.rs file under dir, sorted for a
// deterministic work order. The CLI uses the same list to seed its
// progress display.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".rs") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// GenerateDir runs the pipeline over every *.rs file under dir in parallel.
// Result order matches the sorted file list regardless of completion order.
// A per-file failure lands in its DirResult; only context cancellation
// aborts the whole run. A non-nil cache short-circuits files whose content
// and options are unchanged; a non-nil onEvent receives progress.
func GenerateDir(ctx context.Context, dir string, opts Options, jobs int, cache *DiskCache, onEvent EventFunc) (*source.FileSet, []DirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Preload sequentially: FileSet mutation is not synchronized.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = id
	}

	var eventMu sync.Mutex
	emit := func(ev Event) {
		if onEvent == nil {
			return
		}
		eventMu.Lock()
		onEvent(ev)
		eventMu.Unlock()
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Slots are per-goroutine, no mutex needed.
	results := make([]DirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(opts.maxDiagnostics())
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
				})
				results[i] = DirResult{Path: path, Bag: bag, Err: loadErr}
				emit(Event{Path: path, Index: i, Total: len(files), Stage: StageExtract, Err: loadErr})
				return nil
			}

			id := fileIDs[path]
			file := fileSet.Get(id)
			fileOpts := opts.effectiveFor(path)

			if cache != nil {
				var payload CachePayload
				if hit, _ := cache.Get(cacheKey(file, fileOpts), &payload); hit {
					results[i] = DirResult{Path: path, Result: payload.toResult(path)}
					emit(Event{Path: path, Index: i, Total: len(files), Stage: StageAssemble, Cached: true})
					return nil
				}
			}

			emit(Event{Path: path, Index: i, Total: len(files), Stage: StageExtract})
			res, err := Generate(fileSet, id, fileOpts)
			if err != nil {
				results[i] = DirResult{Path: path, Err: err}
				emit(Event{Path: path, Index: i, Total: len(files), Stage: StageExtract, Err: err})
				return nil
			}

			if cache != nil {
				// A cache write failure never fails generation.
				_ = cache.Put(cacheKey(file, fileOpts), newCachePayload(res))
			}

			results[i] = DirResult{Path: path, Result: res, Bag: res.Bag}
			emit(Event{Path: path, Index: i, Total: len(files), Stage: StageAssemble})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
