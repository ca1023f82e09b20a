package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type DocumentComment struct {
	ID         uint64    `db:"id" json:"id"`
	DocumentID uint64    `db:"document_id" json:"document_id"`
	UserID     null.Int  `db:"user_id" json:"user_id"`
	Text       string    `db:"text" json:"text"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`

	// ФИО автора, JOIN c users; автор мог быть удалён.
	AuthorFio null.String `db:"author_fio" json:"-"`
}
