// Package scan discovers .java source files under a root directory using
// doublestar glob patterns for inclusion/exclusion.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// Scope bounds one walk: the root directory, include/exclude glob patterns,
// and optional depth/count/symlink limits.
type Scope struct {
	Root           string
	Include        []string
	Exclude        []string
	MaxDepth       int
	MaxFiles       int
	FollowSymlinks bool
}

// DefaultIncludes matches every .java file when a Scope specifies none.
var DefaultIncludes = []string{"**/*.java"}

// Result is one discovered file, or a Path with a non-nil Error if it
// couldn't be stat'd.
type Result struct {
	Path  string
	Info  fs.FileInfo
	Error error
}

// Walker performs parallel directory traversal with glob pattern matching.
type Walker struct {
	workers    int
	bufferSize int
}

// New returns a Walker sized for I/O-bound work: twice the CPU count.
func New() *Walker {
	return &Walker{
		workers:    runtime.NumCPU() * 2,
		bufferSize: 1000,
	}
}

// Walk streams every file under scope.Root matching its include patterns
// (and none of its exclude patterns) on the returned channel, closing it
// once traversal finishes or ctx is cancelled.
func (w *Walker) Walk(ctx context.Context, scope Scope) (<-chan Result, error) {
	if err := validateScope(scope); err != nil {
		return nil, err
	}
	if len(scope.Include) == 0 {
		scope.Include = DefaultIncludes
	}

	results := make(chan Result, w.bufferSize)
	paths := make(chan string, w.bufferSize)

	var wg sync.WaitGroup
	for i := 0; i < w.workers; i++ {
		wg.Add(1)
		go w.worker(ctx, paths, results, &wg)
	}

	go func() {
		defer close(paths)
		processed := 0
		var visited map[string]struct{}
		if scope.FollowSymlinks {
			visited = map[string]struct{}{}
			if resolved, err := filepath.EvalSymlinks(scope.Root); err == nil {
				visited[resolved] = struct{}{}
			} else {
				visited[scope.Root] = struct{}{}
			}
		}
		scanDirectory(ctx, scope.Root, scope, paths, 0, &processed, visited)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	return results, nil
}

// Collect runs Walk to completion and returns the matched paths, skipping
// any entries that failed to stat.
func (w *Walker) Collect(ctx context.Context, scope Scope) ([]string, error) {
	results, err := w.Walk(ctx, scope)
	if err != nil {
		return nil, err
	}
	var files []string
	for r := range results {
		if r.Error != nil {
			continue
		}
		files = append(files, r.Path)
	}
	return files, nil
}

func (w *Walker) worker(ctx context.Context, paths <-chan string, results chan<- Result, wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-paths:
			if !ok {
				return
			}
			info, err := os.Stat(path)
			result := Result{Path: path, Info: info, Error: err}
			select {
			case <-ctx.Done():
				return
			case results <- result:
			}
		}
	}
}

func scanDirectory(
	ctx context.Context,
	dirPath string,
	scope Scope,
	paths chan<- string,
	depth int,
	processed *int,
	visited map[string]struct{},
) {
	if scope.MaxFiles > 0 && *processed >= scope.MaxFiles {
		return
	}
	select {
	case <-ctx.Done():
		return
	default:
	}
	if scope.MaxDepth > 0 && depth > scope.MaxDepth {
		return
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return
	}

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return
		default:
		}

		fullPath := filepath.Join(dirPath, entry.Name())
		if isExcluded(fullPath, scope.Exclude) {
			continue
		}

		if entry.Type()&os.ModeSymlink != 0 && scope.FollowSymlinks {
			resolved, err := filepath.EvalSymlinks(fullPath)
			if err != nil || resolved == "" {
				continue
			}
			info, err := os.Stat(resolved)
			if err != nil {
				continue
			}
			if info.IsDir() {
				if visited != nil {
					if _, seen := visited[resolved]; seen {
						continue
					}
					visited[resolved] = struct{}{}
				}
				scanDirectory(ctx, fullPath, scope, paths, depth+1, processed, visited)
			}
			continue
		}

		if entry.IsDir() {
			if visited != nil {
				real := fullPath
				if resolved, err := filepath.EvalSymlinks(fullPath); err == nil && resolved != "" {
					real = resolved
				}
				if _, seen := visited[real]; seen {
					continue
				}
				visited[real] = struct{}{}
			}
			scanDirectory(ctx, fullPath, scope, paths, depth+1, processed, visited)
			continue
		}

		if isIncluded(fullPath, scope.Include) {
			if scope.MaxFiles > 0 && *processed >= scope.MaxFiles {
				return
			}
			select {
			case <-ctx.Done():
				return
			case paths <- fullPath:
				*processed++
			}
		}
	}
}

func isIncluded(path string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, p := range patterns {
		if matchPattern(path, p) {
			return true
		}
	}
	return false
}

func isExcluded(path string, patterns []string) bool {
	for _, p := range patterns {
		if matchPattern(path, p) {
			return true
		}
	}
	return false
}

func matchPattern(path, pattern string) bool {
	if matched, err := doublestar.PathMatch(pattern, path); err == nil && matched {
		return true
	}
	if !strings.Contains(pattern, "/") {
		if matched, err := doublestar.PathMatch(pattern, filepath.Base(path)); err == nil && matched {
			return true
		}
	}
	return false
}

func validateScope(scope Scope) error {
	if scope.Root == "" {
		return fmt.Errorf("scan: root path is required")
	}
	info, err := os.Stat(scope.Root)
	if err != nil {
		return fmt.Errorf("scan: cannot access root %s: %w", scope.Root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("scan: root %s is not a directory", scope.Root)
	}
	return nil
}
