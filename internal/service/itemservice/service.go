package itemservice

import (
	"context"
	"strings"

	"estocando/internal/domain"
	"estocando/internal/pkg/logger"
	"estocando/internal/pkg/validation"
)

// ItemRepository define o contrato que este Serviço espera da camada de Persistência.
type ItemRepository interface {
	Save(ctx context.Context, item domain.Item) (domain.Item, error)
	FindByID(ctx context.Context, id string) (domain.Item, error)
	FindAll(ctx context.Context) ([]domain.Item, error)
	Update(ctx context.Context, item domain.Item) (domain.Item, error)
	Delete(ctx context.Context, id string) error
}

// QuantitySetter é o motor de ajustes visto pelo serviço de itens.
type QuantitySetter interface {
	SetQuantity(ctx context.Context, itemID string, target int, actingUserID string, details domain.ItemDetails) (domain.Item, error)
}

// Service implementa o CRUD de itens.
type Service struct {
	repo      ItemRepository
	stock     QuantitySetter
	validator *validation.Validator
	logger    logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Itens.
func NewService(repo ItemRepository, stock QuantitySetter, v *validation.Validator, log logger.Logger) *Service {
	return &Service{repo: repo, stock: stock, validator: v, logger: log}
}

// CreateItem cria um item com o saldo inicial informado.
func (s *Service) CreateItem(ctx context.Context, req domain.CreateItemRequest) (domain.Item, error) {
	if err := s.validator.Struct(req); err != nil {
		return domain.Item{}, err
	}

	item := domain.Item{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Quantity:    *req.Quantity,
	}

	created, err := s.repo.Save(ctx, item)
	if err != nil {
		return domain.Item{}, err
	}

	s.logger.Info("Item criado.", map[string]interface{}{"item_id": created.ID, "quantity": created.Quantity})
	return created, nil
}

// GetItem busca um item pelo ID.
func (s *Service) GetItem(ctx context.Context, id string) (domain.Item, error) {
	if err := s.validator.Var("id", id, "required,uuid"); err != nil {
		return domain.Item{}, err
	}
	return s.repo.FindByID(ctx, id)
}

// ListItems lista todos os itens, do mais novo para o mais antigo.
func (s *Service) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.repo.FindAll(ctx)
}

// UpdateItem altera nome e descrição. Com nova quantidade, tudo passa pelo motor
// de ajustes em uma única transação, em nome de actingUserID, e a diferença fica
// registrada no histórico.
func (s *Service) UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest, actingUserID string) (domain.Item, error) {
	if err := s.validator.Var("id", id, "required,uuid"); err != nil {
		return domain.Item{}, err
	}
	if err := s.validator.Struct(req); err != nil {
		return domain.Item{}, err
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Item{}, err
	}

	details := domain.ItemDetails{Description: req.Description}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		details.Name = &name
	}

	switch {
	case req.Quantity != nil:
		if item, err = s.stock.SetQuantity(ctx, id, *req.Quantity, actingUserID, details); err != nil {
			return domain.Item{}, err
		}
	case !details.Empty():
		if details.Name != nil {
			item.Name = *details.Name
		}
		if details.Description != nil {
			item.Description = details.Description
		}
		if item, err = s.repo.Update(ctx, item); err != nil {
			return domain.Item{}, err
		}
	}

	s.logger.Info("Item atualizado.", map[string]interface{}{"item_id": id})
	return item, nil
}

// DeleteItem remove o item. Itens com histórico de movimentações resultam em 409.
func (s *Service) DeleteItem(ctx context.Context, id string) error {
	if err := s.validator.Var("id", id, "required,uuid"); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Item removido.", map[string]interface{}{"item_id": id})
	return nil
}
