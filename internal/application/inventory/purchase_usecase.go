package inventory

import (
	"context"

	"github.com/jhoicas/rustock/internal/application/dto"
	"github.com/jhoicas/rustock/internal/domain"
	"github.com/jhoicas/rustock/internal/domain/entity"
	"github.com/jhoicas/rustock/internal/domain/repository"
	"github.com/jhoicas/rustock/pkg/logger"
)

// PurchaseUseCase registra compras: la fila de compra y el incremento de stock van en la misma tx.
type PurchaseUseCase struct {
	txRunner     TxRunner
	purchaseRepo repository.PurchaseRepository
	log          *logger.Logger
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(txRunner TxRunner, purchaseRepo repository.PurchaseRepository, log *logger.Logger) *PurchaseUseCase {
	return &PurchaseUseCase{txRunner: txRunner, purchaseRepo: purchaseRepo, log: log}
}

// Restock compra unidades de un producto existente.
func (uc *PurchaseUseCase) Restock(ctx context.Context, managerID string, in dto.RestockRequest) (*dto.PurchaseResponse, error) {
	purchase := entity.NewPurchase(in.ProductID, in.Quantity, in.PurchasePrice)
	purchase.ManagerID = managerID
	if err := uc.RecordPurchase(ctx, purchase); err != nil {
		return nil, err
	}
	return ToPurchaseResponse(purchase), nil
}

// RecordPurchase bloquea el producto, incrementa su stock e inserta la compra en una sola tx.
func (uc *PurchaseUseCase) RecordPurchase(ctx context.Context, purchase *entity.Purchase) error {
	if purchase.ProductID == "" {
		return domain.NewValidationError("product_id", "la compra debe indicar un producto")
	}
	if err := purchase.Validate(); err != nil {
		return err
	}
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, purchase.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		purchase.ProductName = product.Name
		return applyPurchase(ctx, productRepo, purchaseRepo, purchase)
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("product_id", purchase.ProductID).Msg("compra rechazada")
		return err
	}
	uc.log.Info().
		Str("purchase_id", purchase.ID).
		Str("product_id", purchase.ProductID).
		Int("quantity", purchase.Quantity).
		Msg("compra registrada")
	return nil
}

// PurchaseNewProduct da de alta el producto con stock 0 y registra la compra inicial,
// todo en la misma transacción.
func (uc *PurchaseUseCase) PurchaseNewProduct(ctx context.Context, managerID string, in dto.NewProductPurchaseRequest) (*dto.PurchaseResponse, error) {
	if !in.SellingPrice.IsPositive() {
		return nil, domain.NewValidationError("selling_price", "el precio de venta debe ser positivo")
	}
	product := entity.NewProduct(in.Name, in.Description, in.SellingPrice, 0)
	if err := product.Validate(); err != nil {
		return nil, err
	}
	purchase := entity.NewPurchase(product.ID, in.Quantity, in.PurchasePrice)
	purchase.ProductName = product.Name
	purchase.ManagerID = managerID
	if err := purchase.Validate(); err != nil {
		return nil, err
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		return applyPurchase(ctx, productRepo, purchaseRepo, purchase)
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("name", product.Name).Msg("compra de producto nuevo rechazada")
		return nil, err
	}
	uc.log.Info().
		Str("purchase_id", purchase.ID).
		Str("product_id", product.ID).
		Int("quantity", purchase.Quantity).
		Msg("producto nuevo comprado")
	return ToPurchaseResponse(purchase), nil
}

// List lista las compras, más recientes primero.
func (uc *PurchaseUseCase) List(ctx context.Context) ([]dto.PurchaseResponse, error) {
	list, err := uc.purchaseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *ToPurchaseResponse(p))
	}
	return out, nil
}

func applyPurchase(
	ctx context.Context,
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	purchase *entity.Purchase,
) error {
	if err := productRepo.AdjustQuantity(ctx, purchase.ProductID, purchase.Quantity); err != nil {
		return err
	}
	return purchaseRepo.Create(ctx, purchase)
}

// ToPurchaseResponse convierte la entidad al DTO de salida.
func ToPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		ID:            p.ID,
		ProductID:     p.ProductID,
		ProductName:   p.ProductName,
		Quantity:      p.Quantity,
		PurchasePrice: p.PurchasePrice,
		TotalCost:     p.TotalCost,
		ManagerID:     p.ManagerID,
		PurchaseDate:  p.PurchaseDate,
	}
}
