package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"myhustle-backend/internal/domain"
	"myhustle-backend/internal/logger"
	"myhustle-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type bookingResponseRequest struct {
	Message     string  `json:"message"`
	AgreedPrice float64 `json:"agreedPrice,omitempty"`
}

func (h *BookingHandler) Request(w http.ResponseWriter, r *http.Request) {
	var booking domain.Booking
	if !decodeBody(w, r, &booking) {
		return
	}
	booking.CustomerID = claimsFrom(r).UserID
	created, err := h.bookingSvc.RequestBooking(r.Context(), &booking)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	booking, err := h.bookingSvc.GetBooking(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	claims := claimsFrom(r)
	if booking.CustomerID != claims.UserID && booking.ShopOwnerID != claims.UserID {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "not your booking"})
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var (
		bookings []domain.Booking
		err      error
	)
	if r.URL.Query().Get("role") == "owner" {
		bookings, err = h.bookingSvc.ListBookingsByOwner(r.Context(), claims.UserID)
	} else {
		bookings, err = h.bookingSvc.ListBookingsByCustomer(r.Context(), claims.UserID)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) Accept(w http.ResponseWriter, r *http.Request) {
	var req bookingResponseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	booking, err := h.bookingSvc.AcceptBooking(r.Context(), claimsFrom(r).UserID, mux.Vars(r)["id"], req.Message, req.AgreedPrice)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Deny(w http.ResponseWriter, r *http.Request) {
	var req bookingResponseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	booking, err := h.bookingSvc.DenyBooking(r.Context(), claimsFrom(r).UserID, mux.Vars(r)["id"], req.Message)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) ProposeChange(w http.ResponseWriter, r *http.Request) {
	var req bookingResponseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	booking, err := h.bookingSvc.ProposeChange(r.Context(), claimsFrom(r).UserID, mux.Vars(r)["id"], req.Message)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	booking, err := h.bookingSvc.CompleteBooking(r.Context(), claimsFrom(r).UserID, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	booking, err := h.bookingSvc.CancelBooking(r.Context(), claimsFrom(r).UserID, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// Stream pushes the owner's booking list as a server-sent event on every
// change, until the client disconnects. Drives live refresh of the owner's
// booking screen.
func (h *BookingHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "streaming unsupported"})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	err := h.bookingSvc.WatchOwnerBookings(r.Context(), claimsFrom(r).UserID, func(bookings []domain.Booking) {
		payload, err := json.Marshal(bookings)
		if err != nil {
			return
		}
		fmt.Fprintf(w, "event: bookings\ndata: %s\n\n", payload)
		flusher.Flush()
	})
	if err != nil && r.Context().Err() == nil {
		logger.Error("booking stream ended", "error", err)
	}
}

func RegisterBookingRoutes(protected *mux.Router, bookingSvc service.BookingService) {
	h := NewBookingHandler(bookingSvc)
	protected.HandleFunc("/api/v1/bookings", h.Request).Methods("POST")
	protected.HandleFunc("/api/v1/bookings", h.List).Methods("GET")
	protected.HandleFunc("/api/v1/bookings/stream", h.Stream).Methods("GET")
	protected.HandleFunc("/api/v1/bookings/{id}", h.Get).Methods("GET")
	protected.HandleFunc("/api/v1/bookings/{id}/accept", h.Accept).Methods("POST")
	protected.HandleFunc("/api/v1/bookings/{id}/deny", h.Deny).Methods("POST")
	protected.HandleFunc("/api/v1/bookings/{id}/propose-change", h.ProposeChange).Methods("POST")
	protected.HandleFunc("/api/v1/bookings/{id}/complete", h.Complete).Methods("POST")
	protected.HandleFunc("/api/v1/bookings/{id}/cancel", h.Cancel).Methods("POST")
}
