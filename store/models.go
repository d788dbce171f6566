// Package store persists refactor transaction results: one record per
// Transaction.Fix() call plus one record per Fix it produced, so a run can be
// inspected or audited after the process exits.
package store

import (
	"time"

	"gorm.io/datatypes"
)

// TransactionRecord is one Transaction.Fix() invocation against one
// compilation unit.
type TransactionRecord struct {
	ID         string `gorm:"primaryKey;type:varchar(20)"`
	SourcePath string `gorm:"type:varchar(1024);index"`

	BaseDigest  string `gorm:"type:varchar(64)"` // SHA256 of original source
	AfterDigest string `gorm:"type:varchar(64)"` // SHA256 of printed result

	Changed bool   `gorm:"default:false"`
	Patch   string `gorm:"type:text"`

	StageNames datatypes.JSON `gorm:"type:jsonb"` // ordered list of visitor labels staged

	CreatedAt time.Time `gorm:"autoCreateTime"`

	Fixes []FixRecord `gorm:"foreignKey:TransactionID"`
}

// FixRecord is one Fix a transaction's staged visitors produced.
type FixRecord struct {
	ID            string `gorm:"primaryKey;type:varchar(20)"`
	TransactionID string `gorm:"type:varchar(20);index;not null"`

	Kind         string `gorm:"type:varchar(10);not null"` // replace, delete, insert
	TargetNodeID uint64 `gorm:"index;not null"`

	Replacement string `gorm:"type:text"` // printed form of the replacement node, empty for delete

	Transaction TransactionRecord `gorm:"foreignKey:TransactionID"`
}

// TableName customizations for cleaner names.
func (TransactionRecord) TableName() string { return "transactions" }
func (FixRecord) TableName() string         { return "fixes" }
