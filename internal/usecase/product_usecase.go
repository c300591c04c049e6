package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"unilagyard/internal/domain/entity"
	"unilagyard/internal/domain/repository"
	"unilagyard/pkg/errors"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	savedRepo   repository.SavedProductRepository
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	savedRepo repository.SavedProductRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		userRepo:    userRepo,
		savedRepo:   savedRepo,
	}
}

type FeedFilter struct {
	Category    string
	Subcategory string
	SearchTerm  string
}

type CreateProductInput struct {
	Title       string
	Description string
	Price       float64
	Category    string
	Subcategory string
	Status      string
	Images      []ProductImageInput
}

type ProductImageInput struct {
	URL          string
	DisplayOrder int
}

// tierRank orders listings by paid visibility: premium-and-featured first,
// then premium-only, then featured-only, then everything else.
func tierRank(p *entity.Product) int {
	switch {
	case p.Premium && p.Featured:
		return 0
	case p.Premium:
		return 1
	case p.Featured:
		return 2
	default:
		return 3
	}
}

// sortFeed orders the feed by visibility tier, newest first within each
// tier. The sort is stable, so listings with identical creation times keep
// their original fetch order.
func sortFeed(products []*entity.Product) []*entity.Product {
	sorted := make([]*entity.Product, len(products))
	copy(sorted, products)

	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := tierRank(sorted[i]), tierRank(sorted[j])
		if ri != rj {
			return ri < rj
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	return sorted
}

// filterFeed narrows the working set by exact category/subcategory match and,
// when a search term is present, a case-insensitive substring match on title
// or description.
func filterFeed(products []*entity.Product, filter FeedFilter) []*entity.Product {
	term := strings.ToLower(strings.TrimSpace(filter.SearchTerm))

	var matched []*entity.Product
	for _, p := range products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Subcategory != "" && p.Subcategory != filter.Subcategory {
			continue
		}
		if term != "" {
			title := strings.ToLower(p.Title)
			description := strings.ToLower(p.Description)
			if !strings.Contains(title, term) && !strings.Contains(description, term) {
				continue
			}
		}
		matched = append(matched, p)
	}

	return matched
}

// Feed returns the marketplace feed: the active working set filtered and
// ordered by the visibility-tier comparator.
func (uc *ProductUseCase) Feed(ctx context.Context, filter FeedFilter) ([]*entity.Product, error) {
	products, err := uc.productRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	return sortFeed(filterFeed(products, filter)), nil
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, sellerID string, input CreateProductInput) (*entity.Product, error) {
	seller, err := uc.userRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, errors.BadRequest("Invalid seller", err)
	}

	if seller.Status == "banned" {
		return nil, errors.Forbidden("Banned accounts cannot create listings", nil)
	}

	if seller.VerificationStatus != "verified" {
		return nil, errors.Forbidden("Seller must be verified to create listings", nil)
	}

	productImages := make([]entity.ProductImage, len(input.Images))
	for i, img := range input.Images {
		productImages[i] = entity.ProductImage{
			ID:           uuid.New().String(),
			URL:          img.URL,
			DisplayOrder: img.DisplayOrder,
		}
	}

	status := input.Status
	if status == "" {
		status = "active"
	}

	product := &entity.Product{
		SellerID:    sellerID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Subcategory: input.Subcategory,
		Images:      productImages,
		Status:      status,
		Featured:    false,
		Premium:     false,
		Views:       0,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id, sellerID string, input CreateProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if product.SellerID != sellerID {
		return nil, errors.Forbidden("You don't have permission to update this product", nil)
	}

	product.Title = input.Title
	product.Description = input.Description
	product.Price = input.Price
	product.Category = input.Category
	product.Subcategory = input.Subcategory
	if input.Status != "" {
		product.Status = input.Status
	}

	if len(input.Images) > 0 {
		productImages := make([]entity.ProductImage, len(input.Images))
		for i, img := range input.Images {
			productImages[i] = entity.ProductImage{
				ID:           uuid.New().String(),
				URL:          img.URL,
				DisplayOrder: img.DisplayOrder,
			}
		}
		product.Images = productImages
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// View counter is best-effort and off the request path.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = uc.productRepo.IncrementViews(ctx, id)
	}()

	return product, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id, sellerID string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if product.SellerID != sellerID {
		return errors.Forbidden("You don't have permission to delete this product", nil)
	}

	return uc.productRepo.SoftDelete(ctx, id)
}

func (uc *ProductUseCase) ListBySellerID(ctx context.Context, sellerID, status string, limit, offset int) ([]*entity.Product, int64, error) {
	return uc.productRepo.ListBySellerID(ctx, sellerID, status, limit, offset)
}

func (uc *ProductUseCase) SaveProduct(ctx context.Context, userID, productID string) error {
	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return err
	}

	existing, err := uc.savedRepo.GetByUserAndProduct(ctx, userID, productID)
	if err == nil && existing != nil {
		return nil // already saved
	}
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return err
	}

	return uc.savedRepo.Create(ctx, &entity.SavedProduct{
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	})
}

func (uc *ProductUseCase) UnsaveProduct(ctx context.Context, userID, productID string) error {
	saved, err := uc.savedRepo.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil
		}
		return err
	}

	return uc.savedRepo.Delete(ctx, saved.ID)
}

// ListSavedProducts resolves each saved entry to its product; listings that
// were deleted since saving are skipped.
func (uc *ProductUseCase) ListSavedProducts(ctx context.Context, userID string, limit, offset int) ([]*entity.Product, int64, error) {
	saved, total, err := uc.savedRepo.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var products []*entity.Product
	for _, item := range saved {
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			continue
		}
		products = append(products, product)
	}

	return products, total, nil
}
