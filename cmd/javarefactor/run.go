package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/termfx/javarefactor/internal/config"
	"github.com/termfx/javarefactor/internal/scan"
	"github.com/termfx/javarefactor/internal/writer"
	"github.com/termfx/javarefactor/javaast"
	"github.com/termfx/javarefactor/matcher"
	"github.com/termfx/javarefactor/refactor"
	"github.com/termfx/javarefactor/refactors"
	"github.com/termfx/javarefactor/store"
	"github.com/termfx/javarefactor/visitor"
)

// refactorSpec carries every flag a built-in refactor might need; only the
// ones its Kind uses are read.
type refactorSpec struct {
	kind      string
	class     string
	from      string
	to        string
	signature string
	newName   string
}

// stage builds the Visitor(s) for one compilation unit and stages them onto
// tx, resolving anchors against cu where the refactor needs them.
func (s refactorSpec) stage(tx *refactor.Transaction, cu *javaast.CompilationUnit) (*refactor.Transaction, error) {
	switch s.kind {
	case "add-import":
		return tx.Visit(refactors.AddImport(s.class)), nil
	case "remove-import":
		return tx.Visit(refactors.RemoveImport(s.class)), nil
	case "change-type":
		return tx.Visit(refactors.ChangeType(s.from, s.to)), nil
	case "rename-method":
		sig, err := matcher.Compile(s.signature)
		if err != nil {
			return nil, fmt.Errorf("compile signature %q: %w", s.signature, err)
		}
		matches := javaast.FindMethodCalls(cu, sig)
		if len(matches) == 0 {
			return tx, nil
		}
		anchors := make([]javaast.NodeID, len(matches))
		for i, m := range matches {
			anchors[i] = m.ID()
		}
		newName := s.newName
		return tx.Fold(anchors, func(id javaast.NodeID) *visitor.Visitor {
			return refactors.ChangeMethodName(id, newName)
		}), nil
	default:
		return nil, fmt.Errorf("unknown refactor %q (want add-import, remove-import, change-type, or rename-method)", s.kind)
	}
}

func newRunCommand(cfg *config.Config, databaseURL *string, debug *bool) *cobra.Command {
	var spec refactorSpec
	var include, exclude []string
	var write bool

	cmd := &cobra.Command{
		Use:   "run <root>",
		Short: "Apply a built-in refactor to every .java file (with an AST sidecar) under root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := scan.Scope{
				Root:    args[0],
				Include: firstNonEmpty(include, cfg.Include, scan.DefaultIncludes),
				Exclude: firstNonEmpty(exclude, cfg.Exclude, nil),
			}

			var db *gorm.DB
			if write {
				var err error
				db, err = openStore(*databaseURL, *debug)
				if err != nil {
					return err
				}
			}

			w := writer.New(writer.DefaultConfig())
			walker := scan.New()

			results, err := walker.Walk(cmd.Context(), scope)
			if err != nil {
				return fmt.Errorf("walk %s: %w", scope.Root, err)
			}

			touched := 0
			for res := range results {
				if res.Error != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "skip %s: %v\n", res.Path, res.Error)
					continue
				}
				changed, err := processFile(res.Path, spec, w, db, write)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", res.Path, err)
					continue
				}
				if changed {
					touched++
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d file(s) changed\n", touched)
			return nil
		},
	}

	cmd.Flags().StringVar(&spec.kind, "refactor", "", "add-import, remove-import, change-type, or rename-method")
	cmd.Flags().StringVar(&spec.class, "class", "", "fully qualified class name (add-import, remove-import)")
	cmd.Flags().StringVar(&spec.from, "from", "", "fully qualified class name to replace (change-type)")
	cmd.Flags().StringVar(&spec.to, "to", "", "fully qualified class name to replace it with (change-type)")
	cmd.Flags().StringVar(&spec.signature, "signature", "", "AspectJ-style method signature to match (rename-method)")
	cmd.Flags().StringVar(&spec.newName, "new-name", "", "replacement method name (rename-method)")
	cmd.Flags().StringSliceVar(&include, "include", nil, "doublestar include globs (default: config, then **/*.java)")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "doublestar exclude globs")
	cmd.Flags().BoolVar(&write, "write", false, "apply changes to disk and record them in the transaction store (default: print a diff only)")
	_ = cmd.MarkFlagRequired("refactor")

	return cmd
}

// processFile loads path's AST sidecar, stages spec against it, and either
// prints the resulting patch or, if write is set, applies it atomically and
// records it in db.
func processFile(path string, spec refactorSpec, w *writer.Writer, db *gorm.DB, write bool) (bool, error) {
	data, err := os.ReadFile(sidecarPath(path))
	if err != nil {
		return false, fmt.Errorf("read AST sidecar: %w", err)
	}
	cu, err := javaast.UnmarshalCompilationUnit(data)
	if err != nil {
		return false, fmt.Errorf("decode AST sidecar: %w", err)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read source: %w", err)
	}

	tx, err := refactor.New(cu, string(source))
	if err != nil {
		return false, fmt.Errorf("build transaction: %w", err)
	}
	tx, err = spec.stage(tx, cu)
	if err != nil {
		return false, err
	}

	result, err := tx.Fix()
	if err != nil {
		return false, fmt.Errorf("fix: %w", err)
	}
	for _, warn := range result.Warnings {
		fmt.Fprintf(os.Stderr, "%s: node %d: %v\n", path, warn.Target, warn.Err)
	}
	if !result.Changed {
		return false, nil
	}

	fmt.Println(result.Patch)

	if !write {
		return true, nil
	}

	printed := javaast.Print(result.Fixed)
	if err := w.WriteFile(path, printed); err != nil {
		return false, fmt.Errorf("write: %w", err)
	}
	if db != nil {
		if _, err := store.SaveResult(db, path, string(source), []string{spec.kind}, result); err != nil {
			return false, fmt.Errorf("save transaction record: %w", err)
		}
	}
	return true, nil
}

func firstNonEmpty(options ...[]string) []string {
	for _, o := range options {
		if len(o) > 0 {
			return o
		}
	}
	return nil
}
