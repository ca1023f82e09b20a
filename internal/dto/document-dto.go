package dto

type CreateDocumentDTO struct {
	Identifier   string  `json:"identifier" validate:"required,max=12"`
	FullName     string  `json:"full_name" validate:"required,max=100"`
	Channel      string  `json:"channel" validate:"required,doc_channel"`
	RequestType  string  `json:"request_type" validate:"required,doc_request_type"`
	DepartmentID *uint64 `json:"department_id" validate:"omitempty,gt=0"`
	Status       string  `json:"status" validate:"omitempty,doc_status"`
	Comment      string  `json:"comment"`
	FilePath     string  `json:"file_path"`
}

// ChangeStatusDTO и ChangeDepartmentDTO не валидируются жёстко:
// неподходящее значение — это штатный отказ ("status unchanged"),
// а не ошибка запроса.
type ChangeStatusDTO struct {
	Status string `json:"status"`
}

type ChangeDepartmentDTO struct {
	DepartmentID uint64 `json:"department_id"`
}

type ShortDepartmentDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type DocumentDTO struct {
	ID               uint64              `json:"id"`
	Identifier       string              `json:"identifier"`
	FullName         string              `json:"full_name"`
	Channel          string              `json:"channel"`
	ChannelLabel     string              `json:"channel_label"`
	RequestType      string              `json:"request_type"`
	RequestTypeLabel string              `json:"request_type_label"`
	Department       *ShortDepartmentDTO `json:"department"`
	Status           string              `json:"status"`
	StatusLabel      string              `json:"status_label"`
	Comment          string              `json:"comment"`
	FilePath         string              `json:"file_path,omitempty"`
	IsClosed         bool                `json:"is_closed"`
	CreatedAt        string              `json:"created_at"`
	UpdatedAt        string              `json:"updated_at"`
}

// TransitionResultDTO — итог guarded-перехода. При отказе операция
// гарантированно ничего не записала.
type TransitionResultDTO struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
	OldValue string `json:"old_value,omitempty"`
	NewValue string `json:"new_value,omitempty"`
}
