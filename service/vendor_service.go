package service

import (
	"context"
	"time"

	"github.com/Aayush-wellness/AWLTaskManger-sub001/repository"
	"github.com/Aayush-wellness/AWLTaskManger-sub001/types"
)

type VendorService interface {
	Create(ctx context.Context, req *types.VendorRequest) (*types.Vendor, error)
	Get(ctx context.Context, id string) (*types.Vendor, error)
	List(ctx context.Context) ([]*types.Vendor, error)
	Update(ctx context.Context, id string, req *types.VendorRequest) (*types.Vendor, error)
	Delete(ctx context.Context, id string) error
}

type vendorService struct {
	repo repository.VendorRepo
}

func NewVendorService(repo repository.VendorRepo) VendorService {
	return &vendorService{
		repo: repo,
	}
}

func (s *vendorService) Create(ctx context.Context, req *types.VendorRequest) (*types.Vendor, error) {
	if req.Name == "" {
		return nil, types.ErrInvalidRequest
	}
	now := time.Now().Unix()
	vendor := &types.Vendor{
		Name:        req.Name,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		CreateAt:    now,
		UpdateAt:    now,
	}
	if _, err := s.repo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (s *vendorService) Get(ctx context.Context, id string) (*types.Vendor, error) {
	return s.repo.Get(ctx, id)
}

func (s *vendorService) List(ctx context.Context) ([]*types.Vendor, error) {
	return s.repo.List(ctx)
}

func (s *vendorService) Update(ctx context.Context, id string, req *types.VendorRequest) (*types.Vendor, error) {
	dbVendor, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		dbVendor.Name = req.Name
	}
	if req.ContactName != "" {
		dbVendor.ContactName = req.ContactName
	}
	if req.Email != "" {
		dbVendor.Email = req.Email
	}
	if req.Phone != "" {
		dbVendor.Phone = req.Phone
	}
	if req.Address != "" {
		dbVendor.Address = req.Address
	}
	dbVendor.UpdateAt = time.Now().Unix()
	if err := s.repo.Update(ctx, id, dbVendor); err != nil {
		return nil, err
	}
	return dbVendor, nil
}

func (s *vendorService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
