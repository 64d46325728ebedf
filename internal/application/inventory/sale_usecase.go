package inventory

import (
	"context"
	"errors"

	"github.com/jhoicas/rustock/internal/application/dto"
	"github.com/jhoicas/rustock/internal/domain"
	"github.com/jhoicas/rustock/internal/domain/entity"
	"github.com/jhoicas/rustock/internal/domain/repository"
	"github.com/jhoicas/rustock/pkg/logger"
)

// SaleUseCase registra ventas descontando stock en una sola transacción.
type SaleUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	log         *logger.Logger
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	log *logger.Logger,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		log:         log,
	}
}

// RecordSale arma la venta con el precio actual de cada producto, la valida y la registra
// con RecordSaleTx. managerID puede ir vacío.
func (uc *SaleUseCase) RecordSale(ctx context.Context, managerID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	items := make([]entity.SaleItem, 0, len(in.Items))
	for _, line := range in.Items {
		if line.ProductID == "" {
			return nil, domain.NewValidationError("product_id", "el ítem debe indicar un producto")
		}
		// Lectura fuera de la tx solo para tomar precio y nombre; el stock se verifica con bloqueo.
		product, err := uc.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		items = append(items, entity.NewSaleItem(product, line.Quantity))
	}

	sale := entity.NewSale(items)
	sale.ManagerID = managerID
	if err := sale.Validate(); err != nil {
		return nil, err
	}
	if err := uc.RecordSaleTx(ctx, sale); err != nil {
		ev := uc.log.Warn()
		if !errors.Is(err, domain.ErrInsufficientStock) && !errors.Is(err, domain.ErrNotFound) {
			ev = uc.log.Error()
		}
		ev.Err(err).Str("sale_id", sale.ID).Msg("venta rechazada")
		return nil, err
	}
	uc.log.Info().
		Str("sale_id", sale.ID).
		Int("items", len(sale.Items)).
		Str("total", sale.TotalAmount.StringFixed(2)).
		Msg("venta registrada")
	return ToSaleResponse(sale), nil
}

// RecordSaleTx registra una venta ya validada. Por cada ítem, dentro de la misma transacción:
// bloquea la fila del producto, verifica stock >= cantidad, descuenta y guarda la línea.
// Cualquier fallo revierte la venta completa.
func (uc *SaleUseCase) RecordSaleTx(ctx context.Context, sale *entity.Sale) error {
	if err := sale.Validate(); err != nil {
		return err
	}
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		_ repository.PurchaseRepository,
	) error {
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		for i, item := range sale.Items {
			product, err := productRepo.GetForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.Quantity < item.Quantity {
				return &domain.StockError{
					ProductID: item.ProductID,
					Available: product.Quantity,
					Requested: item.Quantity,
				}
			}
			if err := productRepo.AdjustQuantity(ctx, item.ProductID, -item.Quantity); err != nil {
				return err
			}
			if err := saleRepo.CreateItem(ctx, sale.ID, i, item); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID obtiene una venta con sus líneas. Devuelve (nil, nil) si no existe.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return ToSaleResponse(sale), nil
}

// List lista las ventas, más recientes primero.
func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	list, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *ToSaleResponse(s))
	}
	return out, nil
}

// ToSaleResponse convierte la entidad al DTO de salida.
func ToSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return &dto.SaleResponse{
		ID:          s.ID,
		Items:       items,
		TotalAmount: s.TotalAmount,
		TotalProfit: s.TotalProfit,
		ManagerID:   s.ManagerID,
		Timestamp:   s.Timestamp,
	}
}
