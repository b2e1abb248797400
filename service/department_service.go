package service

import (
	"context"
	"time"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/repository"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
)

type DepartmentService interface {
	Create(ctx context.Context, req *types.DepartmentRequest) (*types.Department, error)
	Get(ctx context.Context, id string) (*types.Department, error)
	List(ctx context.Context) ([]*types.Department, error)
	Update(ctx context.Context, id string, req *types.DepartmentRequest) (*types.Department, error)
	Delete(ctx context.Context, id string) error
}

type departmentService struct {
	repo repository.DepartmentRepo
}

func NewDepartmentService(repo repository.DepartmentRepo) DepartmentService {
	return &departmentService{
		repo: repo,
	}
}

func (s *departmentService) Create(ctx context.Context, req *types.DepartmentRequest) (*types.Department, error) {
	if req.Name == "" {
		return nil, types.ErrInvalidRequest
	}
	now := time.Now().Unix()
	department := &types.Department{
		Name:        req.Name,
		Description: req.Description,
		Lead:        req.Lead,
		CreateAt:    now,
		UpdateAt:    now,
	}
	if _, err := s.repo.Create(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

func (s *departmentService) Get(ctx context.Context, id string) (*types.Department, error) {
	return s.repo.Get(ctx, id)
}

func (s *departmentService) List(ctx context.Context) ([]*types.Department, error) {
	return s.repo.List(ctx)
}

func (s *departmentService) Update(ctx context.Context, id string, req *types.DepartmentRequest) (*types.Department, error) {
	dbDepartment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		dbDepartment.Name = req.Name
	}
	if req.Description != "" {
		dbDepartment.Description = req.Description
	}
	if req.Lead != "" {
		dbDepartment.Lead = req.Lead
	}
	dbDepartment.UpdateAt = time.Now().Unix()
	if err := s.repo.Update(ctx, id, dbDepartment); err != nil {
		return nil, err
	}
	return dbDepartment, nil
}

func (s *departmentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
