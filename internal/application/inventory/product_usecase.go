package inventory

import (
	"context"

	"github.com/jhoicas/rustock/internal/application/dto"
	"github.com/jhoicas/rustock/internal/domain"
	"github.com/jhoicas/rustock/internal/domain/entity"
	"github.com/jhoicas/rustock/internal/domain/repository"
	"github.com/jhoicas/rustock/pkg/logger"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	txRunner TxRunner
	repo     repository.ProductRepository
	log      *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner TxRunner, repo repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, repo: repo, log: log}
}

// Create valida y persiste un producto nuevo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := entity.NewProduct(in.Name, in.Description, in.Price, in.Quantity)
	if err := product.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", product.ID).Str("name", product.Name).Msg("producto creado")
	return ToProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return ToProductResponse(product), nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Update aplica solo los campos presentes y valida antes de persistir.
// Lee con bloqueo dentro de la tx para no pisar el stock que descuente una venta concurrente.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var product *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.SaleRepository,
		_ repository.PurchaseRepository,
	) error {
		p, err := productRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		p.Apply(entity.ProductPatch{
			Name:        in.Name,
			Description: in.Description,
			Price:       in.Price,
			Quantity:    in.Quantity,
		})
		if err := p.Validate(); err != nil {
			return err
		}
		if err := productRepo.Update(ctx, p); err != nil {
			return err
		}
		product = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", product.ID).Msg("producto actualizado")
	return ToProductResponse(product), nil
}

// Delete elimina un producto por ID. Las ventas y compras históricas se conservan.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("product_id", id).Msg("producto eliminado")
	return nil
}

// ToProductResponse convierte la entidad al DTO de salida.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
