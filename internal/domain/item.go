package domain

import "time"

// Item representa um item do estoque (a Entidade principal).
// Quantity nunca fica negativa por efeito do motor de ajustes.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateItemRequest é o payload de criação de item.
type CreateItemRequest struct {
	Name        string  `json:"name" validate:"required,notblank,max=255"`
	Quantity    *int    `json:"quantity" validate:"required,gte=0,lte=2147483647"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

// UpdateItemRequest é o payload de atualização; todos os campos são opcionais.
// Uma nova Quantity é aplicada pelo motor de ajustes e gera movimentação no histórico.
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,notblank,max=255"`
	Quantity    *int    `json:"quantity,omitempty" validate:"omitempty,gte=0,lte=2147483647"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

// ItemDetails são os campos descritivos gravados na mesma transação que a nova quantidade.
// Campos nil ficam inalterados.
type ItemDetails struct {
	Name        *string
	Description *string
}

// Empty informa se não há campo a alterar.
func (d ItemDetails) Empty() bool {
	return d.Name == nil && d.Description == nil
}
