package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrSessionNotFound = errors.New("order session not found")
)

const DefaultQuantity = 1

type Phase int

const (
	Editing Phase = iota
	Submitted
)

func (p Phase) String() string {
	switch p {
	case Editing:
		return "Editing"
	case Submitted:
		return "Submitted"
	default:
		return "Unknown"
	}
}

type Field string

const (
	FieldCustomerName Field = "customerName"
	FieldOrderNotes   Field = "orderNotes"
)

// FieldErrors holds the current message per validated field; empty means
// no error.
type FieldErrors struct {
	CustomerName string
	OrderNotes   string
}

func (e FieldErrors) Any() bool {
	return e.CustomerName != "" || e.OrderNotes != ""
}

// LineItem is one priced cart entry. LineTotal is fixed when the item is
// added and never recomputed.
type LineItem struct {
	Item      string
	Size      string
	Quantity  int
	LineTotal decimal.Decimal
}

func NewLineItem(item, size string, quantity int, unitPrice decimal.Decimal) LineItem {
	return LineItem{
		Item:      item,
		Size:      size,
		Quantity:  quantity,
		LineTotal: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// String renders the cart line, e.g. "2 x Medium Latte - $8.00".
func (li LineItem) String() string {
	return fmt.Sprintf("%d x %s %s - %s", li.Quantity, li.Size, li.Item, FormatPrice(li.LineTotal))
}

func CartTotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal)
	}
	return total
}

// Session is the renderable state of one order session.
type Session struct {
	ID             uuid.UUID
	SelectedItem   string
	SelectedSize   string
	Quantity       int
	Cart           []LineItem
	CustomerName   string
	OrderNotes     string
	FieldErrors    FieldErrors
	AddItemError   string
	Phase          Phase
	DisplayedTotal decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewSession(id uuid.UUID, now time.Time) Session {
	return Session{
		ID:             id,
		Quantity:       DefaultQuantity,
		Phase:          Editing,
		DisplayedTotal: decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Clone returns a copy that shares no cart storage with s.
func (s Session) Clone() Session {
	clone := s
	clone.Cart = append([]LineItem(nil), s.Cart...)
	return clone
}

// Receipt is the summary captured at a successful submit.
type Receipt struct {
	SessionID    uuid.UUID
	CustomerName string
	OrderNotes   string
	Items        []LineItem
	Total        decimal.Decimal
	SubmittedAt  time.Time
}

func UnavailableSizeMessage(item string, sizes []string) string {
	return fmt.Sprintf("The selected item '%s' is only available in the following size(s): %s", item, strings.Join(sizes, ", "))
}

func UnknownItemMessage(item string) string {
	return fmt.Sprintf("The selected item '%s' is not on the menu", item)
}
