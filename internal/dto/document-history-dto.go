package dto

type DocumentHistoryDTO struct {
	ID        uint64 `json:"id"`
	FieldName string `json:"field_name"`
	OldValue  string `json:"old_value"`
	NewValue  string `json:"new_value"`
	AuthorFio string `json:"author_fio"`
	CreatedAt string `json:"created_at"`
}
