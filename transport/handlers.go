package transport

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/carterpaul1/cis453l-project/pkg/domain/model"
	"github.com/carterpaul1/cis453l-project/pkg/domain/service"
)

type Handler struct {
	sessions service.OrderSessionService
	catalog  *model.Catalog
}

func Router(sessions service.OrderSessionService, catalog *model.Catalog) http.Handler {
	handler := &Handler{
		sessions: sessions,
		catalog:  catalog,
	}

	r := mux.NewRouter()
	r.HandleFunc("/health", health).Methods(http.MethodGet)

	s := r.PathPrefix("/api/v1").Subrouter()
	s.HandleFunc("/catalog", handler.getCatalog).Methods(http.MethodGet)
	s.HandleFunc("/sessions", handler.startSession).Methods(http.MethodPost)
	s.HandleFunc("/sessions/{sessionID}", handler.getSession).Methods(http.MethodGet)
	s.HandleFunc("/sessions/{sessionID}", handler.closeSession).Methods(http.MethodDelete)
	s.HandleFunc("/sessions/{sessionID}/selection/item", handler.selectItem).Methods(http.MethodPut)
	s.HandleFunc("/sessions/{sessionID}/selection/size", handler.selectSize).Methods(http.MethodPut)
	s.HandleFunc("/sessions/{sessionID}/selection/quantity", handler.setQuantity).Methods(http.MethodPut)
	s.HandleFunc("/sessions/{sessionID}/customer-name", handler.changeCustomerName).Methods(http.MethodPut)
	s.HandleFunc("/sessions/{sessionID}/order-notes", handler.changeOrderNotes).Methods(http.MethodPut)
	s.HandleFunc("/sessions/{sessionID}/items", handler.addItem).Methods(http.MethodPost)
	s.HandleFunc("/sessions/{sessionID}/submit", handler.submit).Methods(http.MethodPost)

	return logMiddleware(r)
}

func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) getCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, newCatalogResponse(h.catalog))
}

func (h *Handler) startSession(w http.ResponseWriter, _ *http.Request) {
	session, err := h.sessions.StartSession()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newSessionResponse(session))
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	h.withSessionID(w, r, func(sessionID uuid.UUID) (model.Session, error) {
		return h.sessions.GetSession(sessionID)
	})
}

func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}
	if err := h.sessions.CloseSession(sessionID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) selectItem(w http.ResponseWriter, r *http.Request) {
	var req selectItemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.withSessionID(w, r, func(sessionID uuid.UUID) (model.Session, error) {
		return h.sessions.SelectItem(sessionID, req.Item)
	})
}

func (h *Handler) selectSize(w http.ResponseWriter, r *http.Request) {
	var req selectSizeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.withSessionID(w, r, func(sessionID uuid.UUID) (model.Session, error) {
		return h.sessions.SelectSize(sessionID, req.Size)
	})
}

func (h *Handler) setQuantity(w http.ResponseWriter, r *http.Request) {
	var req setQuantityRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.withSessionID(w, r, func(sessionID uuid.UUID) (model.Session, error) {
		return h.sessions.SetQuantity(sessionID, req.Quantity)
	})
}

func (h *Handler) changeCustomerName(w http.ResponseWriter, r *http.Request) {
	var req fieldValueRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.withSessionID(w, r, func(sessionID uuid.UUID) (model.Session, error) {
		return h.sessions.ChangeCustomerName(sessionID, req.Value)
	})
}

func (h *Handler) changeOrderNotes(w http.ResponseWriter, r *http.Request) {
	var req fieldValueRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.withSessionID(w, r, func(sessionID uuid.UUID) (model.Session, error) {
		return h.sessions.ChangeOrderNotes(sessionID, req.Value)
	})
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	h.withSessionID(w, r, func(sessionID uuid.UUID) (model.Session, error) {
		return h.sessions.AddItem(sessionID)
	})
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	receipt, err := h.sessions.Submit(sessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newReceiptResponse(receipt))
}

func (h *Handler) withSessionID(w http.ResponseWriter, r *http.Request, action func(sessionID uuid.UUID) (model.Session, error)) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	session, err := action(sessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionResponse(session))
}

func parseSessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionID"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid session id"})
		return uuid.Nil, false
	}
	return sessionID, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrSubmitBlocked):
		writeJSON(w, http.StatusConflict, errorResponse{Error: model.ErrMsgSubmitBlocked})
	case errors.Is(err, service.ErrAlreadySubmitted), errors.Is(err, service.ErrSessionClosed):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		log.WithError(err).Error("request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	b, err := json.Marshal(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(b); err != nil {
		log.WithField("err", err).Error("write response status")
	}
}

func logMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL,
			"remoteAddr": r.RemoteAddr,
			"userAgent":  r.UserAgent(),
		}).Info("got a new request")
		h.ServeHTTP(w, r)
	})
}
