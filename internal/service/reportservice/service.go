package reportservice

import (
	"context"
	"strconv"
	"strings"

	"estocando/internal/domain"
	apperror "estocando/internal/errors"
	"estocando/internal/pkg/logger"
	"estocando/internal/pkg/validation"
)

// ItemReader é o acesso aos itens usado pelos relatórios.
type ItemReader interface {
	FindAllByName(ctx context.Context) ([]domain.Item, error)
	FindByID(ctx context.Context, id string) (domain.Item, error)
}

// AdjustmentRepository é o acesso ao histórico de movimentações.
type AdjustmentRepository interface {
	FindRecent(ctx context.Context, limit int) ([]domain.StockAdjustment, error)
	FindByItem(ctx context.Context, itemID string, limit int) ([]domain.StockAdjustment, error)
	FindByID(ctx context.Context, id string) (domain.StockAdjustment, error)
	Delete(ctx context.Context, id string) error
}

// LogReader lê os logs de requisição.
type LogReader interface {
	FindRecent(ctx context.Context, limit int) ([]domain.RequestLog, error)
}

// PDFGenerator monta o PDF dos níveis de estoque.
type PDFGenerator interface {
	Generate(items []domain.Item) ([]byte, error)
}

// Service agrega os relatórios de estoque, movimentações e logs.
type Service struct {
	items       ItemReader
	adjustments AdjustmentRepository
	logs        LogReader
	pdf         PDFGenerator
	validator   *validation.Validator
	logger      logger.Logger
}

func NewService(items ItemReader, adjustments AdjustmentRepository, logs LogReader, pdf PDFGenerator, v *validation.Validator, log logger.Logger) *Service {
	return &Service{
		items:       items,
		adjustments: adjustments,
		logs:        logs,
		pdf:         pdf,
		validator:   v,
		logger:      log,
	}
}

// ParseLimit lê o parâmetro ?limit=. Vazio significa "usar o padrão" (nil).
func ParseLimit(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperror.NewFieldValidationError("limit: deve ser um número inteiro",
			map[string]string{"limit": "deve ser um número inteiro"})
	}
	return &n, nil
}

// StockLevels lista todos os itens com o saldo atual, em ordem alfabética.
func (s *Service) StockLevels(ctx context.Context) ([]domain.Item, error) {
	return s.items.FindAllByName(ctx)
}

// StockLevelsPDF devolve o relatório de níveis de estoque em PDF.
func (s *Service) StockLevelsPDF(ctx context.Context) ([]byte, error) {
	items, err := s.items.FindAllByName(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := s.pdf.Generate(items)
	if err != nil {
		s.logger.Error("Falha ao gerar PDF de níveis de estoque.", err)
		return nil, apperror.NewInternalError("Falha ao gerar relatório em PDF.", err)
	}
	return doc, nil
}

// RecentAdjustments lista as últimas movimentações com item e usuário.
// Padrão de 20; acima de 100 o limite é reduzido para 100 sem erro.
func (s *Service) RecentAdjustments(ctx context.Context, limit *int) ([]domain.StockAdjustment, error) {
	n := domain.DefaultRecentAdjustmentsLimit
	if limit != nil {
		n = *limit
	}
	if n <= 0 {
		return nil, apperror.NewFieldValidationError("limit: deve ser maior que 0",
			map[string]string{"limit": "deve ser maior que 0"})
	}
	if n > domain.MaxReportLimit {
		n = domain.MaxReportLimit
	}
	return s.adjustments.FindRecent(ctx, n)
}

// Logs lista os últimos logs de requisição. O limite (padrão 25) deve ficar entre 1 e 100.
func (s *Service) Logs(ctx context.Context, limit *int) (domain.LogsPage, error) {
	n := domain.DefaultLogsLimit
	if limit != nil {
		n = *limit
	}
	if n < 1 || n > domain.MaxReportLimit {
		return domain.LogsPage{}, apperror.NewFieldValidationError(domain.LogLimitMessage,
			map[string]string{"limit": domain.LogLimitMessage})
	}

	logs, err := s.logs.FindRecent(ctx, n)
	if err != nil {
		return domain.LogsPage{}, err
	}
	return domain.LogsPage{Limit: n, Count: len(logs), Data: logs}, nil
}

// AdjustmentsByItem lista o histórico de um item. 404 se o item não existir.
func (s *Service) AdjustmentsByItem(ctx context.Context, itemID string, limit *int) ([]domain.StockAdjustment, error) {
	if err := s.validator.Var("id", itemID, "required,uuid"); err != nil {
		return nil, err
	}

	n := domain.MaxReportLimit
	if limit != nil {
		if *limit <= 0 {
			return nil, apperror.NewFieldValidationError("limit: deve ser maior que 0",
				map[string]string{"limit": "deve ser maior que 0"})
		}
		if *limit < n {
			n = *limit
		}
	}

	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		return nil, err
	}
	return s.adjustments.FindByItem(ctx, itemID, n)
}

// GetAdjustment busca uma movimentação do histórico.
func (s *Service) GetAdjustment(ctx context.Context, id string) (domain.StockAdjustment, error) {
	if err := s.validator.Var("id", id, "required,uuid"); err != nil {
		return domain.StockAdjustment{}, err
	}
	return s.adjustments.FindByID(ctx, id)
}

// DeleteAdjustment remove uma movimentação do histórico sem alterar o saldo do item.
func (s *Service) DeleteAdjustment(ctx context.Context, id string) error {
	if err := s.validator.Var("id", id, "required,uuid"); err != nil {
		return err
	}
	if err := s.adjustments.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Warn("Movimentação removida do histórico.", map[string]interface{}{"adjustment_id": id})
	return nil
}
