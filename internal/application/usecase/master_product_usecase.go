package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/banco-alimentos/internal/application/dto"
	"github.com/jhoicas/banco-alimentos/internal/domain"
	"github.com/jhoicas/banco-alimentos/internal/domain/entity"
	"github.com/jhoicas/banco-alimentos/internal/domain/repository"
	"github.com/jhoicas/banco-alimentos/pkg/logger"
	"github.com/jhoicas/banco-alimentos/pkg/validator"
)

// MasterProductUseCase administra el catálogo de productos maestros.
type MasterProductUseCase struct {
	repo      repository.MasterProductRepository
	auditRepo repository.AuditLogRepository
	log       *logger.Logger
	now       func() time.Time
}

// NewMasterProductUseCase construye el caso de uso.
func NewMasterProductUseCase(repo repository.MasterProductRepository, auditRepo repository.AuditLogRepository, log *logger.Logger) *MasterProductUseCase {
	return &MasterProductUseCase{repo: repo, auditRepo: auditRepo, log: log.Component("catalog"), now: time.Now}
}

// Create valida y crea un producto maestro; registra la creación en auditoría.
// Devuelve domain.ErrInvalidInput (envuelto) o domain.ErrDuplicate si el nombre ya existe.
func (uc *MasterProductUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateMasterProductRequest) (*dto.MasterProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.BaseUnit = strings.ToUpper(strings.TrimSpace(in.BaseUnit))
	if err := validator.ValidateStruct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if actor.ID == "" {
		return nil, fmt.Errorf("%w: usuario requerido", domain.ErrInvalidInput)
	}

	now := uc.now()
	mp := &entity.MasterProduct{
		Name:      in.Name,
		BaseUnit:  entity.Unit(in.BaseUnit),
		Group:     in.Group,
		Subgroup:  in.Subgroup,
		Category:  in.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, mp); err != nil {
		return nil, err
	}

	id := strconv.FormatInt(mp.ID, 10)
	if err := uc.auditRepo.Create(ctx, &entity.AuditLog{
		UserID:          actor.ID,
		RecordChangedID: id,
		ActionType:      entity.AuditActionCreate,
		Entity:          entity.AuditEntityMasterProduct,
		ChangedValue:    mp.Name,
		Details:         fmt.Sprintf("Producto maestro: %s | Unidad base: %s", mp.Name, mp.BaseUnit),
		CreatedAt:       now,
	}); err != nil {
		uc.log.Error().Err(err).Str("master_product_id", id).Msg("auditoría de producto maestro")
	}
	uc.log.Info().Str("master_product_id", id).Str("user_id", actor.ID).Msg("producto maestro creado")
	return toMasterProductResponse(mp), nil
}

// GetByID (nil, nil) si no existe.
func (uc *MasterProductUseCase) GetByID(ctx context.Context, id int64) (*dto.MasterProductResponse, error) {
	mp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMasterProductResponse(mp), nil
}

// List catálogo paginado, ordenado por nombre.
func (uc *MasterProductUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.MasterProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MasterProductResponse, 0, len(list))
	for _, mp := range list {
		items = append(items, *toMasterProductResponse(mp))
	}
	return &dto.MasterProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toMasterProductResponse(mp *entity.MasterProduct) *dto.MasterProductResponse {
	if mp == nil {
		return nil
	}
	return &dto.MasterProductResponse{
		ID:        mp.ID,
		Name:      mp.Name,
		BaseUnit:  string(mp.BaseUnit),
		Group:     mp.Group,
		Subgroup:  mp.Subgroup,
		Category:  mp.Category,
		CreatedAt: mp.CreatedAt,
	}
}
