package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/carterpaul1/cis453l-project/pkg/domain/model"
)

type SessionRepository interface {
	NextID() (uuid.UUID, error)
	Create(session *OrderSession) error
	Find(id uuid.UUID) (*OrderSession, error)
	FindAll() ([]*OrderSession, error)
	Delete(id uuid.UUID) error
}

// OrderSessionService routes presentation events to the session they
// belong to and returns the state to render afterwards.
type OrderSessionService interface {
	StartSession() (model.Session, error)
	GetSession(sessionID uuid.UUID) (model.Session, error)

	SelectItem(sessionID uuid.UUID, item string) (model.Session, error)
	SelectSize(sessionID uuid.UUID, size string) (model.Session, error)
	SetQuantity(sessionID uuid.UUID, quantity int) (model.Session, error)
	ChangeCustomerName(sessionID uuid.UUID, raw string) (model.Session, error)
	ChangeOrderNotes(sessionID uuid.UUID, raw string) (model.Session, error)
	AddItem(sessionID uuid.UUID) (model.Session, error)
	Submit(sessionID uuid.UUID) (model.Receipt, error)

	CloseSession(sessionID uuid.UUID) error
	CloseAllSessions() error
}

func NewOrderSessionService(
	repo SessionRepository,
	catalog *model.Catalog,
	scheduler Scheduler,
	dispatcher EventDispatcher,
	resetDelay time.Duration,
) OrderSessionService {
	return &orderSessionService{
		repo:       repo,
		catalog:    catalog,
		scheduler:  scheduler,
		dispatcher: dispatcher,
		resetDelay: resetDelay,
	}
}

type orderSessionService struct {
	repo       SessionRepository
	catalog    *model.Catalog
	scheduler  Scheduler
	dispatcher EventDispatcher
	resetDelay time.Duration
}

func (s *orderSessionService) StartSession() (model.Session, error) {
	sessionID, err := s.repo.NextID()
	if err != nil {
		return model.Session{}, err
	}

	session := NewOrderSession(sessionID, s.catalog, s.scheduler, s.dispatcher, s.resetDelay)
	if err := s.repo.Create(session); err != nil {
		return model.Session{}, err
	}

	_ = s.dispatcher.Dispatch(model.SessionStarted{SessionID: sessionID})
	return session.View(), nil
}

func (s *orderSessionService) GetSession(sessionID uuid.UUID) (model.Session, error) {
	return s.executeOnSession(sessionID, func(*OrderSession) {})
}

func (s *orderSessionService) SelectItem(sessionID uuid.UUID, item string) (model.Session, error) {
	return s.executeOnSession(sessionID, func(session *OrderSession) {
		session.SelectItem(item)
	})
}

func (s *orderSessionService) SelectSize(sessionID uuid.UUID, size string) (model.Session, error) {
	return s.executeOnSession(sessionID, func(session *OrderSession) {
		session.SelectSize(size)
	})
}

func (s *orderSessionService) SetQuantity(sessionID uuid.UUID, quantity int) (model.Session, error) {
	return s.executeOnSession(sessionID, func(session *OrderSession) {
		session.SetQuantity(quantity)
	})
}

func (s *orderSessionService) ChangeCustomerName(sessionID uuid.UUID, raw string) (model.Session, error) {
	return s.executeOnSession(sessionID, func(session *OrderSession) {
		session.ChangeCustomerName(raw)
	})
}

func (s *orderSessionService) ChangeOrderNotes(sessionID uuid.UUID, raw string) (model.Session, error) {
	return s.executeOnSession(sessionID, func(session *OrderSession) {
		session.ChangeOrderNotes(raw)
	})
}

func (s *orderSessionService) AddItem(sessionID uuid.UUID) (model.Session, error) {
	return s.executeOnSession(sessionID, func(session *OrderSession) {
		session.AddItem()
	})
}

func (s *orderSessionService) Submit(sessionID uuid.UUID) (model.Receipt, error) {
	session, err := s.repo.Find(sessionID)
	if err != nil {
		return model.Receipt{}, err
	}
	return session.Submit()
}

func (s *orderSessionService) CloseSession(sessionID uuid.UUID) error {
	session, err := s.repo.Find(sessionID)
	if err != nil {
		return err
	}

	session.Close()
	return s.repo.Delete(sessionID)
}

func (s *orderSessionService) CloseAllSessions() error {
	sessions, err := s.repo.FindAll()
	if err != nil {
		return err
	}
	for _, session := range sessions {
		session.Close()
		if err := s.repo.Delete(session.ID()); err != nil {
			return err
		}
	}
	return nil
}

func (s *orderSessionService) executeOnSession(sessionID uuid.UUID, action func(session *OrderSession)) (model.Session, error) {
	session, err := s.repo.Find(sessionID)
	if err != nil {
		return model.Session{}, err
	}

	action(session)
	return session.View(), nil
}
