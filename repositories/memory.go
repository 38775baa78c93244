package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/dinklabs/dinkpass/models"
)

// In-memory implementations backing the non-durable deployment path. State
// is reset on restart. All three stores are safe for concurrent use.

type memoryEventRepository struct {
	mu     sync.RWMutex
	order  []string
	events map[string]*models.Event
}

// NewMemoryEventRepository returns an in-process event catalog, optionally
// pre-populated with seed events.
func NewMemoryEventRepository(seed ...*models.Event) EventRepository {
	r := &memoryEventRepository{events: make(map[string]*models.Event)}
	for _, e := range seed {
		cp := *e
		r.events[cp.ID] = &cp
		r.order = append(r.order, cp.ID)
	}
	return r
}

func (r *memoryEventRepository) Create(_ context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[event.ID]; ok {
		return ErrEventConflict
	}
	cp := *event
	r.events[cp.ID] = &cp
	r.order = append(r.order, cp.ID)
	return nil
}

func (r *memoryEventRepository) List(_ context.Context) ([]*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	events := make([]*models.Event, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.events[id]
		events = append(events, &cp)
	}
	return events, nil
}

func (r *memoryEventRepository) GetByID(_ context.Context, id string) (*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	event, ok := r.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	cp := *event
	return &cp, nil
}

type memoryRegistration struct {
	models.Registration
	seq int // insertion order, breaks timestamp ties in ListByEvent
}

type memoryRegistrationRepository struct {
	mu      sync.Mutex
	events  EventRepository
	byEvent map[string][]memoryRegistration
	nextSeq int
}

// NewMemoryRegistrationRepository returns an in-process registration ledger.
// The event repository supplies capacity ceilings; holding the ledger mutex
// across the check and the append keeps the capacity invariant under
// concurrent Create calls.
func NewMemoryRegistrationRepository(events EventRepository) RegistrationRepository {
	return &memoryRegistrationRepository{
		events:  events,
		byEvent: make(map[string][]memoryRegistration),
	}
}

func (r *memoryRegistrationRepository) Create(ctx context.Context, reg *models.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, err := r.events.GetByID(ctx, reg.EventID)
	if err != nil {
		return ErrRegistrationEventInvalid
	}

	existing := r.byEvent[reg.EventID]
	for _, other := range existing {
		if other.PlayerAddress == reg.PlayerAddress {
			return ErrRegistrationConflict
		}
	}
	if len(existing) >= event.MaxParticipants {
		return ErrRegistrationCapacity
	}

	r.nextSeq++
	r.byEvent[reg.EventID] = append(existing, memoryRegistration{Registration: *reg, seq: r.nextSeq})
	return nil
}

func (r *memoryRegistrationRepository) ListByEvent(_ context.Context, eventID string) ([]*models.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]memoryRegistration, len(r.byEvent[eventID]))
	copy(stored, r.byEvent[eventID])
	sort.SliceStable(stored, func(i, j int) bool {
		if !stored[i].RegisteredAt.Equal(stored[j].RegisteredAt) {
			return stored[i].RegisteredAt.After(stored[j].RegisteredAt)
		}
		return stored[i].seq > stored[j].seq
	})

	out := make([]*models.Registration, 0, len(stored))
	for i := range stored {
		cp := stored[i].Registration
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memoryRegistrationRepository) CountByEvent(_ context.Context, eventID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byEvent[eventID]), nil
}

type memoryChargeRepository struct {
	mu      sync.Mutex
	charges map[string]*models.Charge
}

func NewMemoryChargeRepository() ChargeRepository {
	return &memoryChargeRepository{charges: make(map[string]*models.Charge)}
}

func (r *memoryChargeRepository) Create(_ context.Context, charge *models.Charge) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.charges[charge.ID]; ok {
		return ErrChargeConflict
	}
	cp := *charge
	r.charges[cp.ID] = &cp
	return nil
}
