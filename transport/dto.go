package transport

import (
	"time"

	"github.com/carterpaul1/cis453l-project/pkg/domain/model"
)

type selectItemRequest struct {
	Item string `json:"item"`
}

type selectSizeRequest struct {
	Size string `json:"size"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type fieldValueRequest struct {
	Value string `json:"value"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type lineItemResponse struct {
	Item      string `json:"item"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"lineTotal"`
	Display   string `json:"display"`
}

type fieldErrorsResponse struct {
	CustomerName string `json:"customerName"`
	OrderNotes   string `json:"orderNotes"`
}

type sessionResponse struct {
	ID             string              `json:"id"`
	SelectedItem   string              `json:"selectedItem"`
	SelectedSize   string              `json:"selectedSize"`
	Quantity       int                 `json:"quantity"`
	Cart           []lineItemResponse  `json:"cart"`
	CustomerName   string              `json:"customerName"`
	OrderNotes     string              `json:"orderNotes"`
	FieldErrors    fieldErrorsResponse `json:"fieldErrors"`
	AddItemError   string              `json:"addItemError"`
	Phase          string              `json:"phase"`
	DisplayedTotal string              `json:"displayedTotal"`
}

type receiptResponse struct {
	SessionID    string             `json:"sessionId"`
	CustomerName string             `json:"customerName"`
	OrderNotes   string             `json:"orderNotes"`
	Items        []lineItemResponse `json:"items"`
	Total        string             `json:"total"`
	SubmittedAt  time.Time          `json:"submittedAt"`
}

type sizeResponse struct {
	Label string `json:"label"`
	Price string `json:"price"`
}

type catalogEntryResponse struct {
	Item  string         `json:"item"`
	Sizes []sizeResponse `json:"sizes"`
}

type catalogResponse struct {
	Items []catalogEntryResponse `json:"items"`
}

func newLineItemResponses(items []model.LineItem) []lineItemResponse {
	responses := make([]lineItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, lineItemResponse{
			Item:      item.Item,
			Size:      item.Size,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal.StringFixed(2),
			Display:   item.String(),
		})
	}
	return responses
}

func newSessionResponse(session model.Session) sessionResponse {
	return sessionResponse{
		ID:           session.ID.String(),
		SelectedItem: session.SelectedItem,
		SelectedSize: session.SelectedSize,
		Quantity:     session.Quantity,
		Cart:         newLineItemResponses(session.Cart),
		CustomerName: session.CustomerName,
		OrderNotes:   session.OrderNotes,
		FieldErrors: fieldErrorsResponse{
			CustomerName: session.FieldErrors.CustomerName,
			OrderNotes:   session.FieldErrors.OrderNotes,
		},
		AddItemError:   session.AddItemError,
		Phase:          session.Phase.String(),
		DisplayedTotal: session.DisplayedTotal.StringFixed(2),
	}
}

func newReceiptResponse(receipt model.Receipt) receiptResponse {
	return receiptResponse{
		SessionID:    receipt.SessionID.String(),
		CustomerName: receipt.CustomerName,
		OrderNotes:   receipt.OrderNotes,
		Items:        newLineItemResponses(receipt.Items),
		Total:        receipt.Total.StringFixed(2),
		SubmittedAt:  receipt.SubmittedAt,
	}
}

func newCatalogResponse(catalog *model.Catalog) catalogResponse {
	entries := catalog.Entries()
	response := catalogResponse{Items: make([]catalogEntryResponse, 0, len(entries))}
	for _, entry := range entries {
		sizes := make([]sizeResponse, 0, len(entry.Sizes))
		for _, size := range entry.Sizes {
			sizes = append(sizes, sizeResponse{Label: size.Label, Price: size.Price.StringFixed(2)})
		}
		response.Items = append(response.Items, catalogEntryResponse{Item: entry.Item, Sizes: sizes})
	}
	return response
}
