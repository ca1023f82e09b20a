package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// DocumentHistory — неизменяемая запись аудита: одно принятое изменение
// одного поля документа. Пишется только вместе с самим изменением.
type DocumentHistory struct {
	ID         uint64    `db:"id" json:"id"`
	DocumentID uint64    `db:"document_id" json:"document_id"`
	UserID     null.Int  `db:"user_id" json:"user_id"`
	FieldName  string    `db:"field_name" json:"field_name"`
	OldValue   string    `db:"old_value" json:"old_value"`
	NewValue   string    `db:"new_value" json:"new_value"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`

	AuthorFio null.String `db:"author_fio" json:"-"`
}
