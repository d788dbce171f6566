// Command javarefactor applies built-in Java refactors across a tree of
// .java files, each paired with a pre-parsed, pre-resolved AST sidecar. By
// default it prints each patch; with --write it writes every changed file
// and records it in a transaction store.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/termfx/javarefactor/internal/config"
)

// astSidecarSuffix names the JSON tree that accompanies path; parsing Java
// source is out of scope for this module, so every .java file this CLI
// touches must already have one sitting next to it.
const astSidecarSuffix = ".ast.json"

func main() {
	cfg := config.Load()

	var databaseURL string
	var debug bool

	root := &cobra.Command{
		Use:   "javarefactor",
		Short: "Apply built-in Java refactors across a tree of pre-resolved compilation units",
	}
	root.PersistentFlags().StringVar(&databaseURL, "database", cfg.DatabaseURL, "transaction store DSN (file path, :memory:, or libsql://...)")
	root.PersistentFlags().BoolVar(&debug, "debug", cfg.Debug, "enable verbose store query logging")

	root.AddCommand(newRunCommand(cfg, &databaseURL, &debug))
	root.AddCommand(newHistoryCommand(&databaseURL, &debug))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "javarefactor:", err)
		os.Exit(1)
	}
}

func sidecarPath(javaPath string) string {
	return javaPath + astSidecarSuffix
}
