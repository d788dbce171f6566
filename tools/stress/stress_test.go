//go:build stress

package stress

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/termfx/javarefactor/internal/scan"
	"github.com/termfx/javarefactor/javaast"
	"github.com/termfx/javarefactor/refactor"
	"github.com/termfx/javarefactor/refactors"
)

func TestStressConcurrentTransactions(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	const fileCount = 200
	for i := 0; i < fileCount; i++ {
		cu := &javaast.CompilationUnit{
			Base: javaast.NewBase(javaast.None()),
			Types: []*javaast.ClassDecl{
				{
					Base:      javaast.NewBase(javaast.Reified("", "")),
					ClassKind: javaast.ClassKindClass,
					Name:      fmt.Sprintf("Gen%d", i),
				},
			},
		}
		source := javaast.Print(cu)
		path := filepath.Join(dir, fmt.Sprintf("Gen%d.java", i))
		if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
			t.Fatalf("write fixture %d: %v", i, err)
		}
		data, err := javaast.MarshalCompilationUnit(cu)
		if err != nil {
			t.Fatalf("marshal fixture %d: %v", i, err)
		}
		if err := os.WriteFile(path+".ast.json", data, 0o644); err != nil {
			t.Fatalf("write sidecar %d: %v", i, err)
		}
	}

	walker := scan.New()
	results, err := walker.Walk(context.Background(), scan.Scope{Root: dir, Include: scan.DefaultIncludes})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	changed := 0
	var errs []error

	for res := range results {
		if res.Error != nil {
			t.Fatalf("walk error for %s: %v", res.Path, res.Error)
		}
		wg.Add(1)
		go func(path string) {
			defer wg.Done()

			sidecar, err := os.ReadFile(path + ".ast.json")
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return
			}
			cu, err := javaast.UnmarshalCompilationUnit(sidecar)
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return
			}
			source, err := os.ReadFile(path)
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return
			}

			tx, err := refactor.New(cu, string(source))
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return
			}
			tx = tx.Visit(refactors.AddImport("java.util.List"))

			result, err := tx.Fix()
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return
			}

			mu.Lock()
			if result.Changed {
				changed++
			}
			mu.Unlock()
		}(res.Path)
	}

	wg.Wait()

	if len(errs) != 0 {
		t.Fatalf("%d goroutine(s) failed, first error: %v", len(errs), errs[0])
	}
	if changed != fileCount {
		t.Fatalf("expected %d files changed, got %d", fileCount, changed)
	}
}
