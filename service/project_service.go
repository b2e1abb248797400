package service

import (
	"context"
	"time"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/repository"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
)

type ProjectService interface {
	Create(ctx context.Context, req *types.ProjectRequest) (*types.Project, error)
	Get(ctx context.Context, id string) (*types.Project, error)
	List(ctx context.Context) ([]*types.Project, error)
	Update(ctx context.Context, id string, req *types.ProjectRequest) (*types.Project, error)
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	repo repository.ProjectRepo
}

func NewProjectService(repo repository.ProjectRepo) ProjectService {
	return &projectService{
		repo: repo,
	}
}

func (s *projectService) Create(ctx context.Context, req *types.ProjectRequest) (*types.Project, error) {
	if req.Name == "" {
		return nil, types.ErrInvalidRequest
	}
	now := time.Now().Unix()
	project := &types.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		CreateAt:    now,
		UpdateAt:    now,
	}
	if project.Status == "" {
		project.Status = types.PROJECT_STATUS_ACTIVE
	}
	if _, err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) Get(ctx context.Context, id string) (*types.Project, error) {
	return s.repo.Get(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]*types.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectService) Update(ctx context.Context, id string, req *types.ProjectRequest) (*types.Project, error) {
	dbProject, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		dbProject.Name = req.Name
	}
	if req.Description != "" {
		dbProject.Description = req.Description
	}
	if req.Status != "" {
		dbProject.Status = req.Status
	}
	dbProject.UpdateAt = time.Now().Unix()
	if err := s.repo.Update(ctx, id, dbProject); err != nil {
		return nil, err
	}
	return dbProject, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
