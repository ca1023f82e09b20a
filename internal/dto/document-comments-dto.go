package dto

type CreateDocumentCommentDTO struct {
	Text string `json:"text"`
}

type DocumentCommentDTO struct {
	ID         uint64 `json:"id"`
	DocumentID uint64 `json:"document_id"`
	AuthorFio  string `json:"author_fio"`
	Text       string `json:"text"`
	CreatedAt  string `json:"created_at"`
}
