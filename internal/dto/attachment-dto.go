package dto

type AttachmentDTO struct {
	ID         uint64 `json:"id"`
	DocumentID uint64 `json:"document_id"`
	FileName   string `json:"file_name"`
	URL        string `json:"url"`
	FileType   string `json:"file_type"`
	FileSize   int64  `json:"file_size"`
	CreatedAt  string `json:"created_at"`
}

// Возвращается после удаления вложения, чтобы вызывающая сторона
// могла перерисовать список файлов документа.
type DeleteAttachmentResultDTO struct {
	DocumentID uint64 `json:"document_id"`
}
