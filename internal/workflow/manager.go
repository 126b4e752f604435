package workflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sahilahmed21/HomeShare/internal/domain"
	"github.com/sahilahmed21/HomeShare/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type identity interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Manager owns the live workflow instances. Instances are never persisted:
// a restart discards them all, and the stale-hold sweeper reaps any holds
// they left behind.
type Manager struct {
	mu    sync.RWMutex
	flows map[string]*Workflow

	ops     ReservationOps
	gateway ports.PaymentGateway
	users   identity
	log     logger.Logger
}

func NewManager(ops ReservationOps, gateway ports.PaymentGateway, users identity, log logger.Logger) *Manager {
	return &Manager{
		flows:   make(map[string]*Workflow),
		ops:     ops,
		gateway: gateway,
		users:   users,
		log:     log,
	}
}

// Start opens a workflow for a requester. A stable requester identity is
// required before a flow may begin.
func (m *Manager) Start(ctx context.Context, listingID, requesterID string) (Snapshot, error) {
	if _, err := m.users.GetByID(ctx, requesterID); err != nil {
		return Snapshot{}, fmt.Errorf("check requester: %w", err)
	}

	w := newWorkflow(uuid.New().String(), listingID, requesterID, m.ops, m.gateway, m.log)

	m.mu.Lock()
	m.flows[w.id] = w
	m.mu.Unlock()

	m.log.Info("reservation flow started",
		logger.String("flow_id", w.id),
		logger.String("listing_id", listingID),
		logger.String("requester_id", requesterID),
	)

	return w.Snapshot(), nil
}

func (m *Manager) Get(id string) (Snapshot, error) {
	w, err := m.find(id)
	if err != nil {
		return Snapshot{}, err
	}
	return w.Snapshot(), nil
}

func (m *Manager) SelectDates(ctx context.Context, id string, r domain.StayRange) (Snapshot, error) {
	w, err := m.find(id)
	if err != nil {
		return Snapshot{}, err
	}
	if err = w.SelectRange(r); err != nil {
		return Snapshot{}, err
	}
	return w.Snapshot(), nil
}

func (m *Manager) Review(ctx context.Context, id string) (Snapshot, error) {
	w, err := m.find(id)
	if err != nil {
		return Snapshot{}, err
	}
	if err = w.ProceedToReview(ctx); err != nil {
		return Snapshot{}, err
	}
	return w.Snapshot(), nil
}

func (m *Manager) Back(ctx context.Context, id string) (Snapshot, error) {
	w, err := m.find(id)
	if err != nil {
		return Snapshot{}, err
	}
	if err = w.Back(ctx); err != nil {
		return Snapshot{}, err
	}
	return w.Snapshot(), nil
}

func (m *Manager) Confirm(ctx context.Context, id string) (Snapshot, error) {
	w, err := m.find(id)
	if err != nil {
		return Snapshot{}, err
	}
	if err = w.Confirm(ctx); err != nil {
		return Snapshot{}, err
	}
	return w.Snapshot(), nil
}

func (m *Manager) Abandon(ctx context.Context, id string) error {
	w, err := m.find(id)
	if err != nil {
		return err
	}
	if err = w.Abandon(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.flows, id)
	m.mu.Unlock()

	m.log.Info("reservation flow abandoned",
		logger.String("flow_id", id),
	)

	return nil
}

func (m *Manager) find(id string) (*Workflow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	w, ok := m.flows[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	return w, nil
}
