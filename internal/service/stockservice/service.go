package stockservice

import (
	"context"
	"errors"

	"estocando/internal/domain"
	apperror "estocando/internal/errors"
	"estocando/internal/pkg/logger"
	"estocando/internal/pkg/validation"
)

// StockRepository define o contrato que o Serviço de Estoque espera da camada de Persistência.
// As duas operações rodam em uma transação com a linha do item bloqueada.
type StockRepository interface {
	ApplyAdjustment(ctx context.Context, itemID string, t domain.AdjustmentType, quantity int, userID string) (domain.Item, error)
	SetQuantity(ctx context.Context, itemID string, target int, userID string, details domain.ItemDetails) (domain.Item, error)
}

// Service é o motor de ajustes de estoque.
type Service struct {
	repo      StockRepository
	validator *validation.Validator
	logger    logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Estoque.
func NewService(repo StockRepository, v *validation.Validator, logger logger.Logger) *Service {
	return &Service{repo: repo, validator: v, logger: logger}
}

// AdjustStock aplica uma entrada (IN) ou saída (OUT) ao item e registra a movimentação.
// Uma saída maior que o saldo falha com InsufficientStockError e nada é alterado.
func (s *Service) AdjustStock(ctx context.Context, itemID string, req domain.AdjustStockRequest) (domain.Item, error) {
	s.logger.Debug("Iniciando ajuste de estoque no serviço.", map[string]interface{}{
		"item_id":  itemID,
		"type":     string(req.Type),
		"quantity": req.Quantity,
		"user_id":  req.UserID,
	})

	if err := s.validator.Var("id", itemID, "required,uuid"); err != nil {
		return domain.Item{}, err
	}
	if err := s.validator.Struct(req); err != nil {
		return domain.Item{}, err
	}

	item, err := s.repo.ApplyAdjustment(ctx, itemID, req.Type, req.Quantity, req.UserID)
	if err != nil {
		return domain.Item{}, s.translate(err, "Falha interna ao ajustar estoque.")
	}

	s.logger.Info("Estoque ajustado com sucesso.", map[string]interface{}{
		"item_id":      item.ID,
		"type":         string(req.Type),
		"quantity":     req.Quantity,
		"new_quantity": item.Quantity,
	})
	return item, nil
}

// SetQuantity leva o item até target pelo motor de ajustes, atribuindo a
// movimentação a actingUserID. details é gravado na mesma transação.
// Sem diferença de quantidade, nada é registrado no histórico.
func (s *Service) SetQuantity(ctx context.Context, itemID string, target int, actingUserID string, details domain.ItemDetails) (domain.Item, error) {
	if err := s.validator.Var("id", itemID, "required,uuid"); err != nil {
		return domain.Item{}, err
	}
	if err := s.validator.Var("userId", actingUserID, "required,uuid"); err != nil {
		return domain.Item{}, err
	}
	if target < 0 {
		return domain.Item{}, apperror.NewFieldValidationError("quantity: deve ser maior ou igual a 0",
			map[string]string{"quantity": "deve ser maior ou igual a 0"})
	}

	item, err := s.repo.SetQuantity(ctx, itemID, target, actingUserID, details)
	if err != nil {
		return domain.Item{}, s.translate(err, "Falha interna ao definir quantidade.")
	}

	s.logger.Info("Quantidade do item definida.", map[string]interface{}{"item_id": itemID, "quantity": item.Quantity})
	return item, nil
}

// translate repassa os erros tipados e encapsula o restante como erro interno.
func (s *Service) translate(err error, msg string) error {
	var appErr apperror.AppError
	if errors.As(err, &appErr) {
		if _, internal := appErr.(*apperror.InternalError); !internal {
			s.logger.Debug("Ajuste de estoque rejeitado.", map[string]interface{}{"category": appErr.Category(), "error": appErr.Error()})
			return appErr
		}
	}
	s.logger.Error("Falha ao ajustar estoque no repositório.", err)
	return apperror.NewInternalError(msg, err)
}
