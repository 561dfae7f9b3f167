package service

import (
	"context"
	"fmt"

	"arogya360-portal/internal/models"
	"arogya360-portal/internal/query"
	"arogya360-portal/internal/repository"
	"arogya360-portal/internal/store"

	"github.com/rs/zerolog"
)

type PharmacyService struct {
	store     *store.Store
	auditRepo repository.AuditRecorder
	logger    zerolog.Logger
}

func NewPharmacyService(s *store.Store, auditRepo repository.AuditRecorder, logger zerolog.Logger) *PharmacyService {
	return &PharmacyService{
		store:     s,
		auditRepo: auditRepo,
		logger:    logger.With().Str("service", "pharmacy").Logger(),
	}
}

// OrderBoard splits orders into the two sections of the store dashboard
type OrderBoard struct {
	NewOrders        []models.MedicineOrder `json:"newOrders"`
	ActiveDeliveries []models.MedicineOrder `json:"activeDeliveries"`
}

func (s *PharmacyService) Board() OrderBoard {
	orders := s.store.Orders()
	return OrderBoard{
		NewOrders:        query.NewOrders(orders),
		ActiveDeliveries: query.ActiveDeliveries(orders),
	}
}

// Orders lists all orders, optionally narrowed to the given statuses
func (s *PharmacyService) Orders(statuses ...models.OrderStatus) []models.MedicineOrder {
	orders := s.store.Orders()
	if len(statuses) == 0 {
		return orders
	}
	return query.OrdersByStatus(orders, statuses...)
}

func (s *PharmacyService) Accept(ctx context.Context, id string) (models.MedicineOrder, error) {
	return s.SetStatus(ctx, id, models.OrderProcessing)
}

func (s *PharmacyService) Pack(ctx context.Context, id string) (models.MedicineOrder, error) {
	return s.SetStatus(ctx, id, models.OrderPacked)
}

func (s *PharmacyService) Dispatch(ctx context.Context, id string) (models.MedicineOrder, error) {
	return s.SetStatus(ctx, id, models.OrderOutForDelivery)
}

func (s *PharmacyService) Deliver(ctx context.Context, id string) (models.MedicineOrder, error) {
	return s.SetStatus(ctx, id, models.OrderDelivered)
}

// SetStatus moves an order to status; only the next pipeline step is accepted
func (s *PharmacyService) SetStatus(ctx context.Context, id string, status models.OrderStatus) (models.MedicineOrder, error) {
	order, err := s.store.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return models.MedicineOrder{}, fmt.Errorf("failed to update order: %w", err)
	}

	details := fmt.Sprintf("Order %s for %s moved to %s", order.ID, order.PatientName, order.Status)
	if err := s.auditRepo.CreateAuditLog(models.RoleStore, "order_status", details); err != nil {
		s.logger.Warn().Err(err).Str("order_id", id).Msg("audit log write failed")
	}
	return order, nil
}
