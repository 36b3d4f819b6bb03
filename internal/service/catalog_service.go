package service

import (
	"errors"

	"go-storefront/internal/model"
	"go-storefront/internal/repository"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product code or name already in use")
)

type CatalogService interface {
	ListProducts() ([]model.Product, error)
	GetProduct(id uint) (*model.Product, error)
	AddProduct(p *model.Product) error
	EditProduct(id uint, p *model.Product) (*model.Product, error)
	DeleteProduct(id uint) error
}

type catalogService struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogService{productRepo: productRepo}
}

func (s *catalogService) ListProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *catalogService) GetProduct(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *catalogService) AddProduct(p *model.Product) error {
	if err := s.productRepo.Create(p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrProductExists
		}
		return err
	}
	return nil
}

// EditProduct overwrites every mutable field of the stored row.
func (s *catalogService) EditProduct(id uint, p *model.Product) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	existing.ProductCode = p.ProductCode
	existing.Name = p.Name
	existing.Price = p.Price
	existing.WholesalePrice = p.WholesalePrice
	existing.Quantity = p.Quantity
	existing.ImgURL = p.ImgURL
	existing.Description = p.Description

	if err := s.productRepo.Update(existing); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrProductExists
		}
		return nil, err
	}
	return existing, nil
}

func (s *catalogService) DeleteProduct(id uint) error {
	return s.productRepo.Delete(id)
}
