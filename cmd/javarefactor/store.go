package main

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/termfx/javarefactor/store"
)

// openStore connects to dsn, defaulting to a local file when the CLI was
// given neither a flag nor a config value.
func openStore(dsn string, debug bool) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "javarefactor.db"
	}
	db, err := store.Connect(dsn, debug)
	if err != nil {
		return nil, fmt.Errorf("connect to store %q: %w", dsn, err)
	}
	return db, nil
}
