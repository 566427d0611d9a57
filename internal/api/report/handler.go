package report

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"estocando/internal/api/response"
	"estocando/internal/domain"
	"estocando/internal/pkg/logger"
	"estocando/internal/service/reportservice"
)

// ReportService define o contrato que o Handler espera da camada de Serviço.
type ReportService interface {
	StockLevels(ctx context.Context) ([]domain.Item, error)
	StockLevelsPDF(ctx context.Context) ([]byte, error)
	RecentAdjustments(ctx context.Context, limit *int) ([]domain.StockAdjustment, error)
	Logs(ctx context.Context, limit *int) (domain.LogsPage, error)
	AdjustmentsByItem(ctx context.Context, itemID string, limit *int) ([]domain.StockAdjustment, error)
	GetAdjustment(ctx context.Context, id string) (domain.StockAdjustment, error)
	DeleteAdjustment(ctx context.Context, id string) error
}

// Handler agrupa os relatórios.
type Handler struct {
	Service ReportService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ReportService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// StockLevelsHandler lida com a requisição GET /reports/stock-levels.
// @Summary Níveis de estoque
// @Description Todos os itens ordenados por nome.
// @Tags reports
// @Produce json
// @Success 200 {array} domain.Item
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Security BearerAuth
// @Router /reports/stock-levels [get]
func (h *Handler) StockLevelsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.StockLevels(r.Context())
	response.Handle(w, r, h.Logger, items, err, http.StatusOK)
}

// StockLevelsPDFHandler lida com a requisição GET /reports/stock-levels/pdf.
// @Summary Níveis de estoque em PDF
// @Tags reports
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 401 {object} domain.ErrorResponse "Token ausente ou inválido"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Security BearerAuth
// @Router /reports/stock-levels/pdf [get]
func (h *Handler) StockLevelsPDFHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Service.StockLevelsPDF(r.Context())
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	filename := fmt.Sprintf("estoque-%s.pdf", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		h.Logger.Error("Falha ao enviar PDF de estoque.", err)
	}
}

// RecentAdjustmentsHandler lida com a requisição GET /reports/recent-adjustments.
// @Summary Movimentações recentes
// @Description Mais novas primeiro, com item e usuário. Limites acima de 100 são reduzidos para 100.
// @Tags reports
// @Produce json
// @Param limit query int false "Quantidade de registros (padrão 20)"
// @Success 200 {array} domain.StockAdjustment
// @Failure 400 {object} domain.ErrorResponse "Limite inválido"
// @Security BearerAuth
// @Router /reports/recent-adjustments [get]
func (h *Handler) RecentAdjustmentsHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := reportservice.ParseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	adjustments, err := h.Service.RecentAdjustments(r.Context(), limit)
	response.Handle(w, r, h.Logger, adjustments, err, http.StatusOK)
}

// LogsHandler lida com a requisição GET /reports/logs.
// @Summary Logs de requisições
// @Description O limite deve estar entre 1 e 100.
// @Tags reports
// @Produce json
// @Param limit query int false "Quantidade de registros (padrão 25)"
// @Success 200 {object} domain.LogsPage
// @Failure 400 {object} domain.ErrorResponse "choose a log count between 1 and 100"
// @Security BearerAuth
// @Router /reports/logs [get]
func (h *Handler) LogsHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := reportservice.ParseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	page, err := h.Service.Logs(r.Context(), limit)
	response.Handle(w, r, h.Logger, page, err, http.StatusOK)
}

// AdjustmentsByItemHandler lida com a requisição GET /reports/adjustments/{id}.
// @Summary Histórico de um item
// @Tags reports
// @Produce json
// @Param id path string true "ID do item (UUID)"
// @Param limit query int false "Quantidade de registros (máximo 100)"
// @Success 200 {array} domain.StockAdjustment
// @Failure 400 {object} domain.ErrorResponse "ID ou limite inválido"
// @Failure 404 {object} domain.ErrorResponse "Item não encontrado"
// @Security BearerAuth
// @Router /reports/adjustments/{id} [get]
func (h *Handler) AdjustmentsByItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathUUID(r, "id")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	limit, err := reportservice.ParseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	adjustments, err := h.Service.AdjustmentsByItem(r.Context(), id, limit)
	response.Handle(w, r, h.Logger, adjustments, err, http.StatusOK)
}

// GetAdjustmentHandler lida com a requisição GET /reports/{id}.
// @Summary Busca uma movimentação
// @Tags reports
// @Produce json
// @Param id path string true "ID da movimentação (UUID)"
// @Success 200 {object} domain.StockAdjustment
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Movimentação não encontrada"
// @Security BearerAuth
// @Router /reports/{id} [get]
func (h *Handler) GetAdjustmentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathUUID(r, "id")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	adjustment, err := h.Service.GetAdjustment(r.Context(), id)
	response.Handle(w, r, h.Logger, adjustment, err, http.StatusOK)
}

// DeleteAdjustmentHandler lida com a requisição DELETE /reports/{id}.
// A quantidade do item não é recalculada.
// @Summary Remove uma movimentação do histórico
// @Tags reports
// @Produce json
// @Param id path string true "ID da movimentação (UUID)"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 404 {object} domain.ErrorResponse "Movimentação não encontrada"
// @Security BearerAuth
// @Router /reports/{id} [delete]
func (h *Handler) DeleteAdjustmentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathUUID(r, "id")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	err = h.Service.DeleteAdjustment(r.Context(), id)
	response.Handle(w, r, h.Logger, domain.MessageResponse{Message: "Movimentação removida com sucesso"}, err, http.StatusOK)
}
