package domain

import (
	"fmt"
	"math"
	"time"

	apperror "estocando/internal/errors"
)

// MaxQuantity é o maior saldo que a coluna INTEGER do estoque comporta.
const MaxQuantity = math.MaxInt32

// AdjustmentType é o sentido da movimentação de estoque.
type AdjustmentType string

const (
	AdjustmentIn  AdjustmentType = "IN"
	AdjustmentOut AdjustmentType = "OUT"
)

// Valid informa se o tipo é IN ou OUT.
func (t AdjustmentType) Valid() bool {
	return t == AdjustmentIn || t == AdjustmentOut
}

// StockAdjustment é uma entrada imutável do histórico de movimentações.
// Item e User só são preenchidos nos relatórios.
type StockAdjustment struct {
	ID        string         `json:"id"`
	ItemID    string         `json:"itemId"`
	UserID    string         `json:"userId"`
	Type      AdjustmentType `json:"type"`
	Quantity  int            `json:"quantity"`
	CreatedAt time.Time      `json:"createdAt"`
	Item      *Item          `json:"item,omitempty"`
	User      *UserSummary   `json:"user,omitempty"`
}

// AdjustStockRequest é o payload de POST /items/{id}/adjust.
type AdjustStockRequest struct {
	Type     AdjustmentType `json:"type" validate:"required,oneof=IN OUT"`
	Quantity int            `json:"quantity" validate:"required,gt=0,lte=2147483647"`
	UserID   string         `json:"userId" validate:"required,uuid"`
}

// ApplyAdjustment calcula a nova quantidade de um item a partir da atual.
// Uma saída maior que o saldo falha com InsufficientStockError e nada muda.
func ApplyAdjustment(current int, t AdjustmentType, quantity int) (int, error) {
	if !t.Valid() {
		return current, apperror.NewValidationError("O tipo deve ser 'IN' ou 'OUT'.")
	}
	if quantity <= 0 {
		return current, apperror.NewValidationError("A quantidade deve ser maior que zero.")
	}
	if quantity > MaxQuantity {
		return current, apperror.NewValidationError(fmt.Sprintf("A quantidade deve ser menor ou igual a %d.", MaxQuantity))
	}

	if t == AdjustmentOut {
		if quantity > current {
			return current, apperror.NewInsufficientStockError(current, quantity)
		}
		return current - quantity, nil
	}
	if quantity > MaxQuantity-current {
		return current, apperror.NewValidationError(fmt.Sprintf("O saldo do item não pode passar de %d.", MaxQuantity))
	}
	return current + quantity, nil
}

// DeltaToAdjustment converte a diferença entre duas quantidades em uma movimentação.
// ok é false quando não há diferença.
func DeltaToAdjustment(current, target int) (t AdjustmentType, quantity int, ok bool) {
	switch {
	case target > current:
		return AdjustmentIn, target - current, true
	case target < current:
		return AdjustmentOut, current - target, true
	default:
		return "", 0, false
	}
}
