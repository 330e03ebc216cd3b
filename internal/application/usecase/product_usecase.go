package usecase

import (
	"context"

	"github.com/jhoicas/banco-alimentos/internal/application/dto"
	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
	"github.com/jhoicas/banco-alimentos/internal/domain/repository"
)

// ProductUseCase consultas sobre los lotes en bodega. Quantity solo cambia vía movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// ProductListQuery filtros de listado recibidos por query string.
type ProductListQuery struct {
	MasterProductID int64 `query:"master_product_id"`
	InStock         bool  `query:"in_stock"`
	dto.PageRequest
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación, más recientes primero.
func (uc *ProductUseCase) List(ctx context.Context, q ProductListQuery) (*dto.ProductListResponse, error) {
	q.DefaultPage()
	list, err := uc.repo.List(ctx, repository.ProductFilter{
		MasterProductID: q.MasterProductID,
		OnlyInStock:     q.InStock,
		Limit:           q.Limit,
		Offset:          q.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset},
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		MasterProductID: p.MasterProductID,
		Name:            p.Name,
		Quantity:        p.Quantity,
		Unit:            string(p.Unit),
		Lot:             p.Lot,
		ExpiryDate:      p.ExpiryDate,
		ReceiptDate:     p.ReceiptDate,
		Receiver:        p.Receiver,
		Supplier:        p.Supplier,
		Type:            p.Type,
		Group:           p.Group,
		Subgroup:        p.Subgroup,
		Category:        p.Category,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
