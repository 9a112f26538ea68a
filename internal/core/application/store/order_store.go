// Package store provides the in-memory order store: the single source of
// truth for order state within a running process.
//
// All mutations of an order go through the store's three operations (Submit,
// ChangeStatus, ChangeItemStatus); no other code path writes to an order.
// The store serializes mutations of the same order behind a per-order mutex
// while letting different orders mutate fully in parallel, and every read
// hands out deep-copied snapshots so consumers never observe torn item
// state. Persistence is a collaborator concern layered on top by the command
// handlers; the store itself performs no I/O and never holds a lock across
// one.
package store

import (
	"sync"

	"menucore/internal/core/domain/model/kernel"
	"menucore/internal/core/domain/model/order"
	"menucore/internal/core/domain/services"
	"menucore/internal/pkg/errs"
)

// entry pairs an order with the mutex serializing its mutations and
// snapshot reads.
type entry struct {
	mu  sync.Mutex
	ord *order.Order
}

// OrderStore owns the authoritative collection of orders.
//
// It assigns identity at submission: a random UUID and a human-facing order
// number drawn from a process-wide monotonic counter. The counter is seeded
// once, at startup, from the persisted order count and never resets or
// decreases while the process runs, so numbers stay unique and strictly
// increasing even across restarts and concurrent submissions.
//
// Orders are kept most-recent-first: Submit prepends, so consumers see new
// orders first without re-sorting. Orders are never removed; history
// retention is a collaborator concern.
type OrderStore struct {
	// mu guards the collection, the visible ordering, and the number counter
	mu sync.RWMutex

	entries []*entry
	byID    map[kernel.UUID]*entry

	// lastNumber is the most recently assigned order number
	lastNumber int64

	derivation services.StatusDerivation
}

// NewOrderStore creates a store whose order-number counter continues from
// persistedCount, the number of orders known to the persistence collaborator
// at startup. A fresh installation passes 0.
func NewOrderStore(persistedCount int64) *OrderStore {
	if persistedCount < 0 {
		persistedCount = 0
	}
	return &OrderStore{
		byID:       make(map[kernel.UUID]*entry),
		lastNumber: persistedCount,
		derivation: services.NewStatusDerivation(),
	}
}

// Restore loads previously persisted orders into the store at startup.
// Orders must arrive most-recent-first, matching the store's visible
// ordering. The number counter advances past the highest restored number so
// no label is ever reused.
func (s *OrderStore) Restore(orders []*order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ord := range orders {
		if err := ord.Validate(); err != nil {
			return err
		}
		if _, exists := s.byID[ord.ID()]; exists {
			return errs.NewValueIsInvalidError("order is already restored: " + ord.ID().String())
		}

		e := &entry{ord: ord}
		s.entries = append(s.entries, e)
		s.byID[ord.ID()] = e

		if ord.Number() > s.lastNumber {
			s.lastNumber = ord.Number()
		}
	}

	return nil
}

// Submit creates a new order from validated cart line items and the opaque
// table/branch context, assigns its identity, and prepends it to the visible
// ordering. Every item and the order start in pending status.
//
// The order number is assigned atomically with insertion under the store
// lock, so two concurrent submissions can never share a number. Returns a
// snapshot of the created order.
func (s *OrderStore) Submit(tableID, branchID string, items []*order.Item) (*order.Order, error) {
	id := kernel.NewUUID()

	s.mu.Lock()
	defer s.mu.Unlock()

	// a fresh v4 UUID colliding with a known order is practically
	// impossible, but the invariant is cheap to enforce outright
	if _, exists := s.byID[id]; exists {
		return nil, errs.NewValueIsInvalidError("order id collision: " + id.String())
	}

	ord, err := order.NewOrder(id, s.lastNumber+1, tableID, branchID, items)
	if err != nil {
		return nil, err
	}

	s.lastNumber++
	e := &entry{ord: ord}
	s.entries = append([]*entry{e}, s.entries...)
	s.byID[id] = e

	return ord.Clone(), nil
}

// ChangeStatus applies an explicit order-status override: the only path to
// the terminal served and cancelled states, and it never re-derives from
// items.
//
// Returns an ObjectNotFoundError for an unknown order and an
// OrderIsFinalizedError when the order is already terminal; a failed call
// leaves the order entirely unchanged. On success, returns a snapshot of the
// mutated order.
func (s *OrderStore) ChangeStatus(orderID kernel.UUID, target order.Status) (*order.Order, error) {
	e, err := s.lookup(orderID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err = e.ord.ChangeStatus(target); err != nil {
		return nil, err
	}

	return e.ord.Clone(), nil
}

// ChangeItemStatus advances the kitchen status of one line item and routes
// the updated item statuses through the status derivation policy; when the
// policy yields a different order status it is applied in the same critical
// section, so no concurrent reader or writer ever observes the item change
// without its aggregate consequence.
//
// Returns an ObjectNotFoundError for an unknown order or item, an
// OrderIsFinalizedError for a terminal order, and a validation error for an
// item-status regression; a failed call leaves the order entirely unchanged.
// On success, returns a snapshot of the mutated order.
func (s *OrderStore) ChangeItemStatus(orderID, itemID kernel.UUID, target order.ItemStatus) (*order.Order, error) {
	e, err := s.lookup(orderID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err = e.ord.ChangeItemStatus(itemID, target); err != nil {
		return nil, err
	}

	derived := s.derivation.DeriveOrderStatus(e.ord.Status(), e.ord.ItemStatuses())
	e.ord.ApplyDerivedStatus(derived)

	return e.ord.Clone(), nil
}

// Get returns a snapshot of the order with the given identifier.
func (s *OrderStore) Get(orderID kernel.UUID) (*order.Order, error) {
	e, err := s.lookup(orderID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ord.Clone(), nil
}

// Active returns snapshots of every order still requiring kitchen or staff
// attention (pending or preparing), most-recent-first. Pure read: the
// returned slice and orders are fully detached from the store, safe to
// iterate while the store keeps mutating.
func (s *OrderStore) Active() []*order.Order {
	return s.snapshot(func(ord *order.Order) bool {
		return ord.Status().IsActive()
	})
}

// All returns snapshots of the full order history, most-recent-first.
func (s *OrderStore) All() []*order.Order {
	return s.snapshot(func(*order.Order) bool { return true })
}

// Count returns the number of orders currently known to the store.
func (s *OrderStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// lookup finds the entry for an order id under the collection read lock.
func (s *OrderStore) lookup(orderID kernel.UUID) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.byID[orderID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", orderID.String())
	}
	return e, nil
}

// snapshot copies the visible ordering under the collection lock, then
// clones each matching order under its own lock. Writers are only ever
// blocked per order, for the duration of one clone.
func (s *OrderStore) snapshot(keep func(*order.Order) bool) []*order.Order {
	s.mu.RLock()
	entries := make([]*entry, len(s.entries))
	copy(entries, s.entries)
	s.mu.RUnlock()

	orders := make([]*order.Order, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		if keep(e.ord) {
			orders = append(orders, e.ord.Clone())
		}
		e.mu.Unlock()
	}

	return orders
}
