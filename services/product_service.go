package services

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "shophub/common/errors"
	"shophub/models"
	"shophub/repository"
)

// ProductService serves the catalog. Listings go through the Redis cache
// when one is configured; any write invalidates it.
type ProductService struct {
	products repository.ProductRepository
	cache    *CatalogCache
	logger   *zap.Logger
}

// NewProductService creates a new ProductService. cache may be nil.
func NewProductService(products repository.ProductRepository, cache *CatalogCache, logger *zap.Logger) *ProductService {
	return &ProductService{products: products, cache: cache, logger: logger}
}

// List returns products filtered by category or featured flag. Category wins
// when both are supplied.
func (s *ProductService) List(ctx context.Context, category *string, featured *bool) ([]models.Product, *apperrors.Error) {
	filterKey := listFilterKey(category, featured)
	if s.cache != nil {
		if products, ok := s.cache.GetList(ctx, filterKey); ok {
			return products, nil
		}
	}

	var products []models.Product
	var err error
	switch {
	case category != nil:
		products, err = s.products.FindByCategory(ctx, *category)
	case featured != nil:
		products, err = s.products.FindByFeatured(ctx, *featured)
	default:
		products, err = s.products.FindAll(ctx)
	}
	if err != nil {
		s.logger.Error("failed to list products", zap.Error(err))
		return nil, apperrors.Internal(err)
	}

	if s.cache != nil {
		s.cache.SetListAsync(filterKey, products)
	}
	return products, nil
}

// Get returns a single product.
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*models.Product, *apperrors.Error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.Internal(err)
	}
	return product, nil
}

// Categories returns the distinct category labels across the catalog.
func (s *ProductService) Categories(ctx context.Context) ([]string, *apperrors.Error) {
	categories, err := s.products.Categories(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return categories, nil
}

// Create inserts a product and invalidates cached listings.
func (s *ProductService) Create(ctx context.Context, req models.CreateProductRequest) (*models.Product, *apperrors.Error) {
	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Stock:       req.Stock,
		Featured:    req.Featured,
	}
	if err := s.products.Create(ctx, product); err != nil {
		s.logger.Error("failed to create product", zap.Error(err))
		return nil, apperrors.Internal(err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return product, nil
}

// Seed loads the sample catalog once. A catalog that already has products is
// left untouched.
func (s *ProductService) Seed(ctx context.Context) (string, *apperrors.Error) {
	count, err := s.products.Count(ctx)
	if err != nil {
		return "", apperrors.Internal(err)
	}
	if count > 0 {
		return "Products already seeded", nil
	}

	if err := s.products.CreateBatch(ctx, sampleProducts()); err != nil {
		s.logger.Error("failed to seed products", zap.Error(err))
		return "", apperrors.Internal(err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return "Products seeded successfully", nil
}

func listFilterKey(category *string, featured *bool) string {
	switch {
	case category != nil:
		return "category:" + *category
	case featured != nil:
		return fmt.Sprintf("featured:%t", *featured)
	default:
		return "all"
	}
}
