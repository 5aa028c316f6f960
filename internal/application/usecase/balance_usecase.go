package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// BalanceUseCase registra cortes de caja de apertura y cierre.
type BalanceUseCase struct {
	repo repository.BalanceRepository
}

// NewBalanceUseCase construye el caso de uso.
func NewBalanceUseCase(repo repository.BalanceRepository) *BalanceUseCase {
	return &BalanceUseCase{repo: repo}
}

// Create registra un corte. Los saldos no pueden ser negativos.
func (uc *BalanceUseCase) Create(ctx context.Context, principal entity.Principal, in dto.CreateBalanceRequest) (*dto.BalanceResponse, error) {
	if in.BalanceType != entity.BalanceTypeOpening && in.BalanceType != entity.BalanceTypeClosing {
		return nil, fmt.Errorf("%w: balance_type debe ser opening o closing", domain.ErrInvalidInput)
	}
	if in.CashBalance.IsNegative() || in.MomoBalance.IsNegative() {
		return nil, fmt.Errorf("%w: los saldos no pueden ser negativos", domain.ErrInvalidInput)
	}
	now := time.Now()
	date, err := dto.ParseDate(in.Date, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	b := &entity.Balance{
		ID:          uuid.New().String(),
		BalanceType: in.BalanceType,
		Date:        date,
		CashBalance: in.CashBalance,
		MomoBalance: in.MomoBalance,
		CreatedBy:   principal.UserID,
		CreatedAt:   now,
	}
	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return toBalanceResponse(b), nil
}

// GetByID obtiene un corte por ID.
func (uc *BalanceUseCase) GetByID(ctx context.Context, id string) (*dto.BalanceResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return toBalanceResponse(b), nil
}

// List lista cortes con paginación.
func (uc *BalanceUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.BalanceListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BalanceResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBalanceResponse(b))
	}
	return &dto.BalanceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toBalanceResponse(b *entity.Balance) *dto.BalanceResponse {
	return &dto.BalanceResponse{
		ID:          b.ID,
		BalanceType: b.BalanceType,
		Date:        b.Date,
		CashBalance: b.CashBalance,
		MomoBalance: b.MomoBalance,
		CreatedAt:   b.CreatedAt,
	}
}
