package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
)

// TransactionUseCase CRUD de ingresos y gastos fuera del libro de stock.
type TransactionUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

func validateTransaction(t *entity.Transaction) error {
	if t.Type != entity.TransactionTypeIncome && t.Type != entity.TransactionTypeExpense {
		return fmt.Errorf("%w: type debe ser income o expense", domain.ErrInvalidInput)
	}
	if t.PaymentMethod != entity.PaymentMethodCash && t.PaymentMethod != entity.PaymentMethodMomo {
		return fmt.Errorf("%w: payment_method debe ser cash o momo", domain.ErrInvalidInput)
	}
	if !t.Amount.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: amount debe ser > 0", domain.ErrInvalidInput)
	}
	return nil
}

// Create registra una transacción.
func (uc *TransactionUseCase) Create(ctx context.Context, principal entity.Principal, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	now := time.Now()
	date, err := dto.ParseDate(in.Date, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	t := &entity.Transaction{
		ID:            uuid.New().String(),
		Type:          in.Type,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		Description:   strings.TrimSpace(in.Description),
		Date:          date,
		CreatedBy:     principal.UserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := validateTransaction(t); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return toTransactionResponse(t), nil
}

// GetByID obtiene una transacción por ID.
func (uc *TransactionUseCase) GetByID(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return toTransactionResponse(t), nil
}

// List lista transacciones con paginación.
func (uc *TransactionUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.TransactionListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransactionResponse(t))
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update aplica un cambio parcial y revalida la transacción completa.
func (uc *TransactionUseCase) Update(ctx context.Context, id string, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	if in.Type != nil {
		t.Type = *in.Type
	}
	if in.Amount != nil {
		t.Amount = *in.Amount
	}
	if in.PaymentMethod != nil {
		t.PaymentMethod = *in.PaymentMethod
	}
	if in.Description != nil {
		t.Description = strings.TrimSpace(*in.Description)
	}
	if in.Date != nil {
		date, err := dto.ParseDate(*in.Date, now)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		t.Date = date
	}
	if err := validateTransaction(t); err != nil {
		return nil, err
	}
	t.UpdatedAt = now
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTransactionResponse(t), nil
}

// Delete elimina una transacción.
func (uc *TransactionUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:            t.ID,
		Type:          t.Type,
		Amount:        t.Amount,
		PaymentMethod: t.PaymentMethod,
		Description:   t.Description,
		Date:          t.Date,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
