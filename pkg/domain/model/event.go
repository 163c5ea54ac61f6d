package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SessionStarted struct {
	SessionID uuid.UUID
}

func (e SessionStarted) Type() string { return "SessionStarted" }

type ItemAddedToOrder struct {
	SessionID uuid.UUID
	Item      string
	Size      string
	Quantity  int
	LineTotal decimal.Decimal
}

func (e ItemAddedToOrder) Type() string { return "ItemAddedToOrder" }

type AddItemRejected struct {
	SessionID uuid.UUID
	Item      string
	Size      string
	Reason    string
}

func (e AddItemRejected) Type() string { return "AddItemRejected" }

type FieldInputRejected struct {
	SessionID uuid.UUID
	Field     Field
}

func (e FieldInputRejected) Type() string { return "FieldInputRejected" }

type SubmitBlocked struct {
	SessionID   uuid.UUID
	FieldErrors FieldErrors
}

func (e SubmitBlocked) Type() string { return "SubmitBlocked" }

type OrderSubmitted struct {
	SessionID    uuid.UUID
	CustomerName string
	ItemCount    int
	Total        decimal.Decimal
}

func (e OrderSubmitted) Type() string { return "OrderSubmitted" }

type SessionReset struct {
	SessionID uuid.UUID
}

func (e SessionReset) Type() string { return "SessionReset" }

type SessionClosed struct {
	SessionID uuid.UUID
}

func (e SessionClosed) Type() string { return "SessionClosed" }
