package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"document-system/internal/dto"
	"document-system/internal/entities"
	"document-system/internal/repositories"
)

type DepartmentServiceInterface interface {
	GetDepartments(ctx context.Context, limit, offset uint64) ([]dto.DepartmentDTO, uint64, error)
	FindDepartment(ctx context.Context, id uint64) (*dto.DepartmentDTO, error)
	CreateDepartment(ctx context.Context, departmentData dto.CreateDepartmentDTO) (*dto.DepartmentDTO, error)
	UpdateDepartment(ctx context.Context, id uint64, departmentData dto.UpdateDepartmentDTO) (*dto.DepartmentDTO, error)
	DeleteDepartment(ctx context.Context, id uint64) error
}

type DepartmentService struct {
	departmentRepo repositories.DepartmentRepositoryInterface
	cacheRepo      repositories.CacheRepositoryInterface
	cacheTTL       time.Duration
	logger         *zap.Logger
}

func NewDepartmentService(
	departmentRepo repositories.DepartmentRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) DepartmentServiceInterface {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		cacheRepo:      cacheRepo,
		cacheTTL:       cacheTTL,
		logger:         logger,
	}
}

func departmentCacheKey(id uint64) string {
	return fmt.Sprintf("department:%d", id)
}

func (s *DepartmentService) GetDepartments(ctx context.Context, limit, offset uint64) ([]dto.DepartmentDTO, uint64, error) {
	departments, total, err := s.departmentRepo.GetDepartments(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.DepartmentDTO, len(departments))
	for i, department := range departments {
		dtos[i] = toDepartmentDTO(department)
	}
	return dtos, total, nil
}

// FindDepartment ходит сначала в кеш: словарь маленький и почти не меняется,
// а дергается на каждой смене департамента.
func (s *DepartmentService) FindDepartment(ctx context.Context, id uint64) (*dto.DepartmentDTO, error) {
	key := departmentCacheKey(id)

	if cached, err := s.cacheRepo.Get(ctx, key); err == nil && cached != "" {
		var department entities.Department
		if err := json.Unmarshal([]byte(cached), &department); err == nil {
			result := toDepartmentDTO(department)
			return &result, nil
		}
		// Битое значение в кеше просто игнорируем и идём в БД.
	}

	department, err := s.departmentRepo.FindDepartment(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(department); err == nil {
		if err := s.cacheRepo.Set(ctx, key, payload, s.cacheTTL); err != nil {
			s.logger.Warn("не удалось закешировать департамент", zap.Uint64("id", id), zap.Error(err))
		}
	}

	result := toDepartmentDTO(*department)
	return &result, nil
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, departmentData dto.CreateDepartmentDTO) (*dto.DepartmentDTO, error) {
	department, err := s.departmentRepo.CreateDepartment(ctx, entities.Department{Name: departmentData.Name})
	if err != nil {
		return nil, err
	}
	result := toDepartmentDTO(*department)
	return &result, nil
}

func (s *DepartmentService) UpdateDepartment(ctx context.Context, id uint64, departmentData dto.UpdateDepartmentDTO) (*dto.DepartmentDTO, error) {
	department, err := s.departmentRepo.UpdateDepartment(ctx, id, departmentData)
	if err != nil {
		return nil, err
	}

	if err := s.cacheRepo.Del(ctx, departmentCacheKey(id)); err != nil {
		s.logger.Warn("не удалось инвалидировать кеш департамента", zap.Uint64("id", id), zap.Error(err))
	}

	result := toDepartmentDTO(*department)
	return &result, nil
}

// DeleteDepartment удаляет департамент; у ссылающихся документов поле
// департамента обнуляется (мягкое отвязывание, сами документы остаются).
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id uint64) error {
	if err := s.departmentRepo.DeleteDepartment(ctx, id); err != nil {
		return err
	}

	if err := s.cacheRepo.Del(ctx, departmentCacheKey(id)); err != nil {
		s.logger.Warn("не удалось инвалидировать кеш департамента", zap.Uint64("id", id), zap.Error(err))
	}
	return nil
}

func toDepartmentDTO(department entities.Department) dto.DepartmentDTO {
	return dto.DepartmentDTO{
		ID:        department.ID,
		Name:      department.Name,
		CreatedAt: department.CreatedAt.Local().Format(dateTimeLayout),
		UpdatedAt: department.UpdatedAt.Local().Format(dateTimeLayout),
	}
}
