package catalog

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/minierp/backend/internal/domain/catalog"
	"github.com/minierp/backend/internal/domain/inventory"
	"github.com/minierp/backend/internal/domain/shared"
)

// ProductService manages the product catalog. Creating a product also opens
// its zero-quantity inventory record so every product has a ledger row from
// day one.
type ProductService struct {
	productRepo   catalog.ProductRepository
	inventoryRepo inventory.InventoryRepository
	txScope       TransactionScope
	validate      *validator.Validate
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	inventoryRepo inventory.InventoryRepository,
	txScope TransactionScope,
) *ProductService {
	return &ProductService{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		txScope:       txScope,
		validate:      validator.New(),
	}
}

// validateRequest runs struct validation and translates failures into the
// domain's validation error shape.
func (s *ProductService) validateRequest(req interface{}) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		return shared.NewValidationError(fields)
	}
	return err
}

// Create registers a product and its inventory record in one transaction
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	if existing, err := s.productRepo.FindBySKU(ctx, req.SKU); err == nil && existing != nil {
		return nil, shared.ErrAlreadyExists
	}

	product, err := catalog.NewProduct(req.Name, req.SKU, catalog.ProductType(req.Type), req.Price)
	if err != nil {
		return nil, err
	}
	product.SetDetails(req.Category, req.Unit, req.Description, req.Image, req.Weight)
	if req.MinStock != nil {
		if err := product.SetMinStock(*req.MinStock); err != nil {
			return nil, err
		}
	}

	record, err := inventory.NewInventoryRecord(product.ID)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.ProductRepo().Save(ctx, product); err != nil {
			return err
		}
		return repos.InventoryRepo().Create(ctx, record)
	})
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// GetBySKU retrieves a product by its SKU
func (s *ProductService) GetBySKU(ctx context.Context, sku string) (*ProductResponse, error) {
	product, err := s.productRepo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// Update applies partial changes to a product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Price != nil {
		if err := product.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}
	if req.MinStock != nil {
		if err := product.SetMinStock(*req.MinStock); err != nil {
			return nil, err
		}
	}
	product.SetDetails(req.Category, req.Unit, req.Description, req.Image, req.Weight)

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with pagination
func (s *ProductService) List(ctx context.Context, filter ListFilter) (shared.Paginated[ProductResponse], error) {
	var empty shared.Paginated[ProductResponse]
	if err := s.validateRequest(filter); err != nil {
		return empty, err
	}

	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return empty, err
	}
	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return empty, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductResponse(&products[i]))
	}
	return shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize), nil
}

// ListWithStock joins products with their live balances. A product whose
// quantity is at or below its own MinStock is flagged low; this flag serves
// list views only and is independent of the notification threshold.
func (s *ProductService) ListWithStock(ctx context.Context, filter ListFilter) ([]ProductStockResponse, error) {
	page, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductStockResponse, 0, len(page.Items))
	for _, product := range page.Items {
		quantity := int64(0)
		record, err := s.inventoryRepo.FindByProduct(ctx, product.ID)
		if err == nil {
			quantity = record.Quantity
		} else if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		responses = append(responses, ProductStockResponse{
			ProductResponse: product,
			Quantity:        quantity,
			IsLowStock:      quantity <= product.MinStock,
		})
	}
	return responses, nil
}

// Delete removes a product. The inventory record follows by FK cascade;
// movement history is kept for audit.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}
