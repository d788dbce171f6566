package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/termfx/javarefactor/javaast"
	"github.com/termfx/javarefactor/refactor"
)

// SaveResult persists one Transaction.Fix() outcome and the fixes it
// produced as a single row plus its child rows, inserted in a transaction so
// a crash mid-write never leaves a TransactionRecord without its fixes.
func SaveResult(db *gorm.DB, sourcePath, source string, stageNames []string, result *refactor.Result) (*TransactionRecord, error) {
	names, err := json.Marshal(stageNames)
	if err != nil {
		return nil, fmt.Errorf("marshal stage names: %w", err)
	}

	rec := &TransactionRecord{
		ID:          newID("tx"),
		SourcePath:  sourcePath,
		BaseDigest:  digest(source),
		AfterDigest: digest(javaast.Print(result.Fixed)),
		Changed:     result.Changed,
		Patch:       result.Patch,
		StageNames:  datatypes.JSON(names),
	}
	for _, f := range result.Fixes {
		replacement := ""
		if f.Replacement != nil {
			replacement = javaast.Print(f.Replacement)
		}
		rec.Fixes = append(rec.Fixes, FixRecord{
			ID:           newID("fix"),
			TargetNodeID: uint64(f.Target),
			Kind:         f.Kind.String(),
			Replacement:  replacement,
		})
	}

	// Create alone is enough: gorm saves the Fixes association in the same
	// call, filling in each row's TransactionID from rec's own primary key.
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(rec).Error
	}); err != nil {
		return nil, fmt.Errorf("save transaction record: %w", err)
	}

	return rec, nil
}

// ByPath returns every TransactionRecord stored for sourcePath, newest first,
// each with its Fixes preloaded.
func ByPath(db *gorm.DB, sourcePath string) ([]TransactionRecord, error) {
	var recs []TransactionRecord
	err := db.Preload("Fixes").
		Where("source_path = ?", sourcePath).
		Order("created_at desc").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("query transactions for %s: %w", sourcePath, err)
	}
	return recs, nil
}

func digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
