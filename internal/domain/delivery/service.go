package delivery

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, driverID *int64) ([]Record, error)
}

type Service struct {
	repo       Repository
	aggregator *Aggregator
	log        *slog.Logger
}

func NewService(repo Repository, aggregator *Aggregator, log *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		aggregator: aggregator,
		log:        log.With("component", "delivery_service"),
	}
}

// List загружает заказы и превращает их в записи для экрана маршрутов.
func (s *Service) List(ctx context.Context, driverID *int64) ([]Record, error) {
	orders, err := s.repo.ListOrders(ctx, driverID)
	if err != nil {
		s.log.Error("failed to list orders", "error", err)
		return nil, fmt.Errorf("list orders: %w", err)
	}

	records := s.aggregator.BuildRecords(ctx, orders)
	s.log.Debug("delivery records built", "count", len(records))

	return records, nil
}
