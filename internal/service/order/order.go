package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tireshop/internal/entities"
	"tireshop/internal/pkg/validation"
	"tireshop/internal/service/tire"
	"tireshop/pkg/logger"
)

type Service struct {
	repository  Repository
	tireService TireService
	txManager   TxManager
	publisher   EventPublisher
	log         serviceLogger
	now         func() time.Time
}

func New(
	repository Repository,
	tireService TireService,
	txManager TxManager,
	publisher EventPublisher,
	log serviceLogger,
) *Service {
	return &Service{
		repository:  repository,
		tireService: tireService,
		txManager:   txManager,
		publisher:   publisher,
		log:         log,
		now:         time.Now,
	}
}

// CreateOrder принимает заказ с витрины. Поиск шины и вставка выполняются в одной транзакции.
func (s *Service) CreateOrder(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error) {
	order, err := validateCreate(orderCreate)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		t, err := s.tireService.GetTire(ctx, order.TireID)
		if err != nil {
			if errors.Is(err, tire.ErrTireNotFound) || errors.Is(err, tire.ErrInvalidTireID) {
				return ErrTireNotFound
			}
			return fmt.Errorf("get tire: %w", err)
		}

		if !t.IsActive {
			return ErrTireNotAvailable
		}

		id, err := s.repository.Create(ctx, order)
		if err != nil {
			return fmt.Errorf("save order: %w", err)
		}

		order.ID = id
		order.Tire = *t
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.publish(ctx, entities.OrderEventCreated, &order)

	return &order, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if !isValidID(id) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

// ListOrders возвращает заказы для админки, новые первыми.
func (s *Service) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	normalized, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	orders, err := s.repository.List(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

func (s *Service) UpdateOrderStatus(ctx context.Context, id int64, status *entities.OrderStatusType) (*entities.Order, error) {
	if !isValidID(id) {
		return nil, ErrInvalidOrderID
	}
	if status == nil {
		return nil, &validation.Error{Fields: map[string]string{"status": validation.MsgNotNull}}
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	var order *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.UpdateStatus(ctx, id, *status); err != nil {
			return err
		}

		var err error
		order, err = s.GetOrder(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	s.publish(ctx, entities.OrderEventStatusChanged, order)

	return order, nil
}

// CountByStatus считает заказы по каждому статусу, отсутствующие статусы получают ноль.
func (s *Service) CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	var counts map[entities.OrderStatusType]int64
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		counts, err = s.repository.CountByStatus(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	result := make(map[entities.OrderStatusType]int64, len(entities.OrderStatuses()))
	for _, status := range entities.OrderStatuses() {
		result[status] = counts[status]
	}
	return result, nil
}

func (s *Service) publish(ctx context.Context, eventType entities.OrderEventType, order *entities.Order) {
	event := entities.NewOrderEvent(eventType, order, s.now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("failed to publish order event",
			logger.NewField("type", eventType.String()),
			logger.NewField("order_id", order.ID),
			logger.NewField("error", err),
		)
	}
}
