package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/carterpaul1/cis453l-project/pkg/domain/model"
)

var (
	ErrSubmitBlocked    = errors.New("submit blocked by invalid fields")
	ErrAlreadySubmitted = errors.New("order is already submitted")
	ErrSessionClosed    = errors.New("order session is closed")
)

const DefaultResetDelay = 15 * time.Second

type Event interface {
	Type() string
}

type EventDispatcher interface {
	Dispatch(event Event) error
}

// OrderSession is a single order form. Every event runs to completion under
// the session lock; the scheduled reset takes the same lock when it fires.
type OrderSession struct {
	mu    sync.Mutex
	state model.Session

	catalog    *model.Catalog
	scheduler  Scheduler
	dispatcher EventDispatcher
	resetDelay time.Duration

	resetTimer      Timer
	resetGeneration uint64
	closed          bool
}

func NewOrderSession(
	id uuid.UUID,
	catalog *model.Catalog,
	scheduler Scheduler,
	dispatcher EventDispatcher,
	resetDelay time.Duration,
) *OrderSession {
	return &OrderSession{
		state:      model.NewSession(id, time.Now().UTC()),
		catalog:    catalog,
		scheduler:  scheduler,
		dispatcher: dispatcher,
		resetDelay: resetDelay,
	}
}

func (s *OrderSession) ID() uuid.UUID {
	return s.state.ID
}

// View returns a snapshot of the renderable state.
func (s *OrderSession) View() model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *OrderSession) SelectItem(name string) {
	s.edit(func(st *model.Session) []Event {
		st.SelectedItem = name
		return nil
	})
}

func (s *OrderSession) SelectSize(name string) {
	s.edit(func(st *model.Session) []Event {
		st.SelectedSize = name
		return nil
	})
}

func (s *OrderSession) SetQuantity(n int) {
	s.edit(func(st *model.Session) []Event {
		st.Quantity = n
		return nil
	})
}

// ChangeCustomerName stores raw only when it validates; otherwise the
// previous value stays and the field error is set.
func (s *OrderSession) ChangeCustomerName(raw string) {
	s.edit(func(st *model.Session) []Event {
		if !model.ValidateCustomerName(raw) {
			st.FieldErrors.CustomerName = model.ErrMsgInvalidCustomerName
			return []Event{model.FieldInputRejected{SessionID: st.ID, Field: model.FieldCustomerName}}
		}
		st.CustomerName = raw
		st.FieldErrors.CustomerName = ""
		return nil
	})
}

func (s *OrderSession) ChangeOrderNotes(raw string) {
	s.edit(func(st *model.Session) []Event {
		if !model.ValidateOrderNotes(raw) {
			st.FieldErrors.OrderNotes = model.ErrMsgInvalidOrderNotes
			return []Event{model.FieldInputRejected{SessionID: st.ID, Field: model.FieldOrderNotes}}
		}
		st.OrderNotes = model.SanitizeInput(raw)
		st.FieldErrors.OrderNotes = ""
		return nil
	})
}

// AddItem prices the pending selection and appends it to the cart. An
// incomplete selection is ignored.
func (s *OrderSession) AddItem() {
	s.edit(func(st *model.Session) []Event {
		item, size, quantity := st.SelectedItem, st.SelectedSize, st.Quantity
		if item == "" || size == "" || quantity < 1 {
			return nil
		}

		if !s.catalog.Exists(item) {
			st.AddItemError = model.UnknownItemMessage(item)
			return []Event{model.AddItemRejected{SessionID: st.ID, Item: item, Size: size, Reason: st.AddItemError}}
		}
		price, ok := s.catalog.PriceOf(item, size)
		if !ok {
			st.AddItemError = model.UnavailableSizeMessage(item, s.catalog.AvailableSizes(item))
			return []Event{model.AddItemRejected{SessionID: st.ID, Item: item, Size: size, Reason: st.AddItemError}}
		}

		lineItem := model.NewLineItem(item, size, quantity, price)
		st.Cart = append(st.Cart, lineItem)
		st.SelectedItem = ""
		st.SelectedSize = ""
		st.Quantity = model.DefaultQuantity
		st.AddItemError = ""

		return []Event{model.ItemAddedToOrder{
			SessionID: st.ID,
			Item:      item,
			Size:      size,
			Quantity:  quantity,
			LineTotal: lineItem.LineTotal,
		}}
	})
}

// Submit finalises the order and schedules the session reset. It fails
// with ErrSubmitBlocked while any field error is present and leaves the
// session untouched.
func (s *OrderSession) Submit() (model.Receipt, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return model.Receipt{}, ErrSessionClosed
	}
	st := &s.state
	if st.Phase == model.Submitted {
		s.mu.Unlock()
		return model.Receipt{}, ErrAlreadySubmitted
	}
	if st.FieldErrors.Any() {
		event := model.SubmitBlocked{SessionID: st.ID, FieldErrors: st.FieldErrors}
		s.mu.Unlock()
		s.dispatchEvents([]Event{event})
		return model.Receipt{}, ErrSubmitBlocked
	}

	now := time.Now().UTC()
	st.CustomerName = model.SanitizeInput(st.CustomerName)
	st.OrderNotes = model.SanitizeInput(st.OrderNotes)
	st.DisplayedTotal = model.CartTotal(st.Cart)
	st.Phase = model.Submitted
	st.UpdatedAt = now
	s.scheduleReset()

	receipt := model.Receipt{
		SessionID:    st.ID,
		CustomerName: st.CustomerName,
		OrderNotes:   st.OrderNotes,
		Items:        append([]model.LineItem(nil), st.Cart...),
		Total:        st.DisplayedTotal,
		SubmittedAt:  now,
	}
	event := model.OrderSubmitted{
		SessionID:    st.ID,
		CustomerName: st.CustomerName,
		ItemCount:    len(st.Cart),
		Total:        st.DisplayedTotal,
	}
	s.mu.Unlock()

	s.dispatchEvents([]Event{event})
	return receipt, nil
}

// CancelPendingReset drops a scheduled reset, if any. A reset callback
// that already started is ignored once it acquires the lock.
func (s *OrderSession) CancelPendingReset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelReset()
}

// Close tears the session down. No mutation happens after Close returns.
func (s *OrderSession) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.cancelReset()
	id := s.state.ID
	s.mu.Unlock()

	s.dispatchEvents([]Event{model.SessionClosed{SessionID: id}})
}

// edit applies action while the session accepts edits. Submitted sessions
// are read-only until the reset.
func (s *OrderSession) edit(action func(st *model.Session) []Event) {
	s.mu.Lock()
	if s.closed || s.state.Phase != model.Editing {
		s.mu.Unlock()
		return
	}
	events := action(&s.state)
	s.state.UpdatedAt = time.Now().UTC()
	s.mu.Unlock()

	s.dispatchEvents(events)
}

// scheduleReset must be called with s.mu held.
func (s *OrderSession) scheduleReset() {
	s.cancelReset()
	generation := s.resetGeneration
	s.resetTimer = s.scheduler.AfterFunc(s.resetDelay, func() {
		s.reset(generation)
	})
}

// cancelReset must be called with s.mu held.
func (s *OrderSession) cancelReset() {
	if s.resetTimer != nil {
		s.resetTimer.Stop()
		s.resetTimer = nil
	}
	s.resetGeneration++
}

func (s *OrderSession) reset(generation uint64) {
	s.mu.Lock()
	if s.closed || generation != s.resetGeneration || s.state.Phase != model.Submitted {
		s.mu.Unlock()
		return
	}
	st := &s.state
	st.Cart = nil
	st.DisplayedTotal = decimal.Zero
	st.CustomerName = ""
	st.OrderNotes = ""
	st.Phase = model.Editing
	st.UpdatedAt = time.Now().UTC()
	s.resetTimer = nil
	id := st.ID
	s.mu.Unlock()

	s.dispatchEvents([]Event{model.SessionReset{SessionID: id}})
}

func (s *OrderSession) dispatchEvents(events []Event) {
	for _, event := range events {
		if err := s.dispatcher.Dispatch(event); err != nil {
			log.WithError(err).WithField("event", event.Type()).Error("failed to dispatch event")
		}
	}
}
