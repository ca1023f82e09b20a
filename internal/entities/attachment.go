package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Attachment struct {
	ID         uint64    `db:"id" json:"id"`
	DocumentID uint64    `db:"document_id" json:"document_id"`
	UserID     null.Int  `db:"user_id" json:"user_id"`
	FileName   string    `db:"file_name" json:"file_name"`
	FilePath   string    `db:"file_path" json:"file_path"`
	FileType   string    `db:"file_type" json:"file_type"`
	FileSize   int64     `db:"file_size" json:"file_size"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
