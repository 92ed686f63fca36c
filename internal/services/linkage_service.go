package services

import (
	"context"
	"errors"

	"github.com/Manjunath2731/navayugasystmebackend-new/internal/models"
	"github.com/Manjunath2731/navayugasystmebackend-new/internal/repositories"
)

type LinkageService struct {
	linkages *repositories.LinkageRepository
}

func NewLinkageService(linkages *repositories.LinkageRepository) *LinkageService {
	return &LinkageService{linkages: linkages}
}

func (s *LinkageService) Create(ctx context.Context, req *models.CreateLinkageRequest) (*models.Linkage, error) {
	if req.Name == "" {
		return nil, errors.New("linkage name is required")
	}
	linkage := &models.Linkage{Name: req.Name, Amount: req.Amount}
	if err := s.linkages.Create(ctx, linkage); err != nil {
		return nil, err
	}
	return linkage, nil
}

func (s *LinkageService) Get(ctx context.Context, id int) (*models.Linkage, error) {
	return s.linkages.Get(ctx, id)
}

func (s *LinkageService) List(ctx context.Context) ([]*models.Linkage, error) {
	linkages, err := s.linkages.List(ctx)
	if err != nil {
		return nil, err
	}
	if linkages == nil {
		linkages = []*models.Linkage{}
	}
	return linkages, nil
}

func (s *LinkageService) Update(ctx context.Context, id int, req *models.UpdateLinkageRequest) (*models.Linkage, error) {
	linkage, err := s.linkages.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		linkage.Name = req.Name
	}
	if req.Amount > 0 {
		linkage.Amount = req.Amount
	}
	if err := s.linkages.Update(ctx, linkage); err != nil {
		return nil, err
	}
	return linkage, nil
}

func (s *LinkageService) Delete(ctx context.Context, id int) error {
	return s.linkages.Delete(ctx, id)
}
