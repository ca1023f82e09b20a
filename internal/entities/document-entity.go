package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Document — заявка клиента. Жёсткого удаления нет: документ либо в работе,
// либо закрыт (is_closed латчится и назад не снимается).
type Document struct {
	ID           uint64      `db:"id" json:"id"`
	Identifier   string      `db:"identifier" json:"identifier"`
	FullName     string      `db:"full_name" json:"full_name"`
	Channel      string      `db:"channel" json:"channel"`
	RequestType  string      `db:"request_type" json:"request_type"`
	DepartmentID null.Int    `db:"department_id" json:"department_id"`
	Status       string      `db:"status" json:"status"`
	Comment      string      `db:"comment" json:"comment"`
	FilePath     null.String `db:"file_path" json:"file_path"`
	IsClosed     bool        `db:"is_closed" json:"is_closed"`
	CreatedBy    null.Int    `db:"created_by" json:"created_by"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at" json:"updated_at"`

	// Подтягивается JOIN-ом, в таблице documents этого поля нет.
	DepartmentName null.String `db:"department_name" json:"-"`
}
