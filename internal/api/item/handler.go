package item

import (
	"context"
	"net/http"

	"estocando/internal/api/response"
	"estocando/internal/domain"
	"estocando/internal/pkg/logger"
	"estocando/internal/pkg/middleware"
)

// ItemService define o contrato que o Handler espera da camada de Serviço.
type ItemService interface {
	CreateItem(ctx context.Context, req domain.CreateItemRequest) (domain.Item, error)
	GetItem(ctx context.Context, id string) (domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest, actingUserID string) (domain.Item, error)
	DeleteItem(ctx context.Context, id string) error
}

// StockService é o motor de ajustes.
type StockService interface {
	AdjustStock(ctx context.Context, itemID string, req domain.AdjustStockRequest) (domain.Item, error)
}

// Handler agrupa todos os métodos de Handler de itens.
type Handler struct {
	Service ItemService
	Stock   StockService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando os Serviços e o Logger.
func NewHandler(svc ItemService, stock StockService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Stock:   stock,
		Logger:  log,
	}
}

// ListItemsHandler lida com a requisição GET /items.
// @Summary Lista os itens
// @Tags items
// @Produce json
// @Success 200 {array} domain.Item
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Security BearerAuth
// @Router /items [get]
func (h *Handler) ListItemsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListItems(r.Context())
	response.Handle(w, r, h.Logger, items, err, http.StatusOK)
}

// CreateItemHandler lida com a requisição POST /items.
// @Summary Cria um item
// @Description Cria um item com o saldo inicial informado (maior ou igual a zero).
// @Tags items
// @Accept json
// @Produce json
// @Param item body domain.CreateItemRequest true "Dados do item"
// @Success 201 {object} domain.Item
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Security BearerAuth
// @Router /items [post]
func (h *Handler) CreateItemHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateItemRequest
	if err := response.DecodeJSON(w, r, &req); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.CreateItem(r.Context(), req)
	response.Handle(w, r, h.Logger, created, err, http.StatusCreated)
}

// GetItemHandler lida com a requisição GET /items/{id}.
// @Summary Busca um item pelo ID
// @Tags items
// @Produce json
// @Param id path string true "ID do item (UUID)"
// @Success 200 {object} domain.Item
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Item não encontrado"
// @Security BearerAuth
// @Router /items/{id} [get]
func (h *Handler) GetItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathUUID(r, "id")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	found, err := h.Service.GetItem(r.Context(), id)
	response.Handle(w, r, h.Logger, found, err, http.StatusOK)
}

// UpdateItemHandler lida com a requisição PUT /items/{id}.
// Uma nova quantidade é registrada no histórico em nome do usuário do token.
// @Summary Atualiza um item
// @Description Nome e descrição são alterados diretamente; uma nova quantidade gera uma movimentação IN/OUT.
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "ID do item (UUID)"
// @Param item body domain.UpdateItemRequest true "Campos a alterar"
// @Success 200 {object} domain.Item
// @Failure 400 {object} domain.ErrorResponse "Payload ou ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Item não encontrado"
// @Security BearerAuth
// @Router /items/{id} [put]
func (h *Handler) UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathUUID(r, "id")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	var req domain.UpdateItemRequest
	if err := response.DecodeJSON(w, r, &req); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	claims, _ := middleware.GetUserClaimsFromContext(r.Context())
	updated, err := h.Service.UpdateItem(r.Context(), id, req, claims.UserID)
	response.Handle(w, r, h.Logger, updated, err, http.StatusOK)
}

// DeleteItemHandler lida com a requisição DELETE /items/{id}.
// @Summary Remove um item
// @Tags items
// @Produce json
// @Param id path string true "ID do item (UUID)"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Item não encontrado"
// @Failure 409 {object} domain.ErrorResponse "Item possui movimentações"
// @Security BearerAuth
// @Router /items/{id} [delete]
func (h *Handler) DeleteItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathUUID(r, "id")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	err = h.Service.DeleteItem(r.Context(), id)
	response.Handle(w, r, h.Logger, domain.MessageResponse{Message: "Item removido com sucesso"}, err, http.StatusOK)
}

// AdjustStockHandler lida com a requisição POST /items/{id}/adjust.
// Sem userId no corpo, a movimentação é atribuída ao usuário do token.
// @Summary Ajusta o estoque de um item
// @Description Aplica uma entrada (IN) ou saída (OUT). Saídas maiores que o saldo são rejeitadas.
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "ID do item (UUID)"
// @Param adjustment body domain.AdjustStockRequest true "Tipo, quantidade e usuário responsável"
// @Success 200 {object} domain.Item "Item com a nova quantidade"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido ou estoque insuficiente"
// @Failure 404 {object} domain.ErrorResponse "Item ou usuário não encontrado"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Security BearerAuth
// @Router /items/{id}/adjust [post]
func (h *Handler) AdjustStockHandler(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathUUID(r, "id")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	var req domain.AdjustStockRequest
	if err := response.DecodeJSON(w, r, &req); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	if req.UserID == "" {
		if claims, ok := middleware.GetUserClaimsFromContext(r.Context()); ok {
			req.UserID = claims.UserID
		}
	}

	updated, err := h.Stock.AdjustStock(r.Context(), id, req)
	response.Handle(w, r, h.Logger, updated, err, http.StatusOK)
}
