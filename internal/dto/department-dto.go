package dto

type CreateDepartmentDTO struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateDepartmentDTO struct {
	Name *string `json:"name" validate:"omitempty,required,max=100"`
}

type DepartmentDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
