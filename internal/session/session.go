// Package session owns the live order drafts, one per open order screen.
// The manager is the single mutator gate: every draft operation goes through
// it, and a draft disappears on discard or after a successful submission.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/johny-gastrobar/backoffice/internal/draft"
	"github.com/johny-gastrobar/backoffice/internal/enum"
	"github.com/johny-gastrobar/backoffice/internal/gastro"
)

var (
	// ErrNotFound means the draft session does not exist (never opened,
	// discarded, or already submitted).
	ErrNotFound = errors.New("draft session not found")

	// ErrSubmitting means a submission for this draft is already in flight;
	// the draft is read-only until the backend answers.
	ErrSubmitting = errors.New("draft submission already in progress")
)

// ItemCatalog is the slice of the item service the workflow needs.
type ItemCatalog interface {
	List(ctx context.Context) ([]gastro.MenuItem, error)
	Get(ctx context.Context, id int) (gastro.MenuItem, error)
}

// TableLister populates the table picker.
type TableLister interface {
	List(ctx context.Context) ([]gastro.Table, error)
}

// StaffLister populates the waiter and manager pickers.
type StaffLister interface {
	List(ctx context.Context) ([]gastro.Employee, error)
}

// OrderStore is the slice of the order service the workflow needs.
type OrderStore interface {
	Get(ctx context.Context, id int) (gastro.Order, error)
	Create(ctx context.Context, o gastro.Order) (gastro.Order, error)
	Update(ctx context.Context, id int, o gastro.Order) (gastro.Order, error)
}

// Notifier is told when the order collection changed on the backend so
// dependent list screens can refetch. The manager holds no cache itself.
type Notifier interface {
	OrdersChanged()
}

// Manager holds the open draft sessions.
type Manager struct {
	items  ItemCatalog
	tables TableLister
	staff  StaffLister
	orders OrderStore
	notify Notifier
	log    *zap.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*state
}

type state struct {
	draft      *draft.OrderDraft
	orderID    *int
	submitting bool
	openedAt   time.Time
}

// Snapshot is a read-only view of one session, safe to hand out: the draft
// and its lines are copies.
type Snapshot struct {
	ID         uuid.UUID
	OrderID    *int
	Draft      draft.OrderDraft
	Subtotal   decimal.Decimal
	Total      decimal.Decimal
	Submitting bool
}

// References is the cross-entity data the order screen needs: the catalog
// for the add-item picker, tables for assignment, and staff split into
// waiter and manager candidates by role tag.
type References struct {
	Items    []gastro.MenuItem
	Tables   []gastro.Table
	Waiters  []gastro.Employee
	Managers []gastro.Employee
}

func NewManager(items ItemCatalog, tables TableLister, staff StaffLister, orders OrderStore, notify Notifier, log *zap.Logger) *Manager {
	return &Manager{
		items:    items,
		tables:   tables,
		staff:    staff,
		orders:   orders,
		notify:   notify,
		log:      log,
		sessions: make(map[uuid.UUID]*state),
	}
}

// Open starts a session around an empty draft (the "new order" screen).
func (m *Manager) Open() Snapshot {
	id := uuid.New()
	st := &state{draft: draft.New(), openedAt: time.Now()}

	m.mu.Lock()
	m.sessions[id] = st
	m.mu.Unlock()

	m.log.Info("draft session opened", zap.String("session", id.String()))
	return snapshot(id, st)
}

// OpenForOrder fetches an existing order and starts a session seeded from
// it (the "edit order" screen).
func (m *Manager) OpenForOrder(ctx context.Context, orderID int) (Snapshot, error) {
	order, err := m.orders.Get(ctx, orderID)
	if err != nil {
		return Snapshot{}, err
	}

	id := uuid.New()
	st := &state{draft: draft.FromOrder(order), orderID: &orderID, openedAt: time.Now()}

	m.mu.Lock()
	m.sessions[id] = st
	m.mu.Unlock()

	m.log.Info("draft session opened for edit",
		zap.String("session", id.String()),
		zap.Int("order", orderID))
	return snapshot(id, st), nil
}

// Get returns the current view of a session.
func (m *Manager) Get(id uuid.UUID) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.sessions[id]
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	return snapshot(id, st), nil
}

// AddItem looks the item up in the catalog (its price at this moment becomes
// the line snapshot) and adds it to the draft.
func (m *Manager) AddItem(ctx context.Context, id uuid.UUID, itemID int) (Snapshot, error) {
	item, err := m.items.Get(ctx, itemID)
	if err != nil {
		return Snapshot{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.sessions[id]
	if !ok {
		// The catalog response arrived after the screen closed; discard it.
		return Snapshot{}, ErrNotFound
	}
	if st.submitting {
		return Snapshot{}, ErrSubmitting
	}
	if err := st.draft.AddItem(item); err != nil {
		return Snapshot{}, err
	}
	return snapshot(id, st), nil
}

// SetQuantity updates a line's quantity; draft rules apply (below 1 is
// rejected, absent lines are a no-op).
func (m *Manager) SetQuantity(id uuid.UUID, itemID, quantity int) (Snapshot, error) {
	return m.mutate(id, func(d *draft.OrderDraft) {
		d.SetQuantity(itemID, quantity)
	})
}

// RemoveItem drops a line from the draft.
func (m *Manager) RemoveItem(id uuid.UUID, itemID int) (Snapshot, error) {
	return m.mutate(id, func(d *draft.OrderDraft) {
		d.RemoveItem(itemID)
	})
}

// Details carries partial form-field updates; nil fields are untouched.
type Details struct {
	TableID   *string
	WaiterID  *string
	ManagerID *string
	Discount  *string
	Delivered *bool
	Paid      *bool
}

// SetDetails applies form-field edits to the draft. Values are raw field
// strings; they are validated at submission, not here.
func (m *Manager) SetDetails(id uuid.UUID, details Details) (Snapshot, error) {
	return m.mutate(id, func(d *draft.OrderDraft) {
		if details.TableID != nil {
			d.TableID = *details.TableID
		}
		if details.WaiterID != nil {
			d.WaiterID = *details.WaiterID
		}
		if details.ManagerID != nil {
			d.ManagerID = *details.ManagerID
		}
		if details.Discount != nil {
			d.Discount = *details.Discount
		}
		if details.Delivered != nil {
			d.Delivered = *details.Delivered
		}
		if details.Paid != nil {
			d.Paid = *details.Paid
		}
	})
}

func (m *Manager) mutate(id uuid.UUID, fn func(*draft.OrderDraft)) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.sessions[id]
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	if st.submitting {
		return Snapshot{}, ErrSubmitting
	}
	fn(st.draft)
	return snapshot(id, st), nil
}

// Submit validates the draft and sends it to the backend, creating a new
// order or updating the one the session was seeded from. Validation failures
// and backend failures both leave the draft untouched and editable; on
// success the session is dropped and dependent screens are notified.
func (m *Manager) Submit(ctx context.Context, id uuid.UUID) (gastro.Order, error) {
	m.mu.Lock()
	st, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return gastro.Order{}, ErrNotFound
	}
	if st.submitting {
		m.mu.Unlock()
		return gastro.Order{}, ErrSubmitting
	}

	payload, err := st.draft.ToSubmission()
	if err != nil {
		m.mu.Unlock()
		return gastro.Order{}, err
	}
	st.submitting = true
	orderID := st.orderID
	m.mu.Unlock()

	var saved gastro.Order
	if orderID != nil {
		saved, err = m.orders.Update(ctx, *orderID, payload)
	} else {
		saved, err = m.orders.Create(ctx, payload)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		// Draft preserved so the user can correct input and retry.
		st.submitting = false
		m.log.Warn("draft submission failed", zap.String("session", id.String()), zap.Error(err))
		return gastro.Order{}, err
	}

	delete(m.sessions, id)
	m.log.Info("draft submitted", zap.String("session", id.String()))
	if m.notify != nil {
		m.notify.OrdersChanged()
	}
	return saved, nil
}

// Discard closes a session without submitting. Discarding an unknown
// session is a no-op: the screen may already be gone.
func (m *Manager) Discard(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// References fetches the item catalog, table list, and staff list
// concurrently. Each fetch fills only its own slot, so one failing backend
// call still leaves the others usable; failures come back joined for the
// caller to log.
func (m *Manager) References(ctx context.Context) (References, error) {
	var (
		refs     References
		staff    []gastro.Employee
		itemErr  error
		tableErr error
		staffErr error
		wg       sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		refs.Items, itemErr = m.items.List(ctx)
	}()
	go func() {
		defer wg.Done()
		refs.Tables, tableErr = m.tables.List(ctx)
	}()
	go func() {
		defer wg.Done()
		staff, staffErr = m.staff.List(ctx)
	}()
	wg.Wait()

	refs.Waiters = gastro.FilterByRole(staff, enum.RoleWaiter)
	refs.Managers = gastro.FilterByRole(staff, enum.RoleManager)

	return refs, errors.Join(itemErr, tableErr, staffErr)
}

func snapshot(id uuid.UUID, st *state) Snapshot {
	d := *st.draft
	d.Lines = make([]draft.Line, len(st.draft.Lines))
	copy(d.Lines, st.draft.Lines)
	return Snapshot{
		ID:         id,
		OrderID:    st.orderID,
		Draft:      d,
		Subtotal:   st.draft.Subtotal(),
		Total:      st.draft.Total(),
		Submitting: st.submitting,
	}
}
