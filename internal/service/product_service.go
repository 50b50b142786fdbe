package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/f1store-next/internal/models"
	"github.com/f1store-next/internal/repository"
)

// ProductInput 商品创建/更新输入
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Team        string
	Driver      string
	Size        string
	ImagePath   string
}

// ProductListResult 商品列表查询结果
type ProductListResult struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// ProductService 商品目录服务
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// GetByID 根据ID获取商品
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, ErrProductFetchFail
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// List 按过滤条件分页获取商品
func (s *ProductService) List(filter repository.ProductListFilter) (*ProductListResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	products, total, err := s.productRepo.List(filter)
	if err != nil {
		return nil, ErrProductFetchFail
	}
	return &ProductListResult{
		Products: products,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// Create 创建商品
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}
	product := &models.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       models.NewMoneyFromDecimal(input.Price),
		Team:        strings.TrimSpace(input.Team),
		Driver:      strings.TrimSpace(input.Driver),
		Size:        strings.TrimSpace(input.Size),
		ImagePath:   strings.TrimSpace(input.ImagePath),
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, ErrProductCreateFail
	}
	return product, nil
}

// Update 更新商品。调价只影响之后的结算，已有订单的快照价不变。
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	product.Name = strings.TrimSpace(input.Name)
	product.Description = input.Description
	product.Price = models.NewMoneyFromDecimal(input.Price)
	product.Team = strings.TrimSpace(input.Team)
	product.Driver = strings.TrimSpace(input.Driver)
	product.Size = strings.TrimSpace(input.Size)
	product.ImagePath = strings.TrimSpace(input.ImagePath)
	if err := s.productRepo.Update(product); err != nil {
		return nil, ErrProductUpdateFail
	}
	return product, nil
}

// Delete 下架商品（软删除）
func (s *ProductService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(id); err != nil {
		return ErrProductUpdateFail
	}
	return nil
}

func validateProductInput(input ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrProductNameEmpty
	}
	if input.Price.IsNegative() {
		return ErrProductPriceNeg
	}
	return nil
}
