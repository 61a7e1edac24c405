package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"myhustle-backend/internal/domain"
	"myhustle-backend/internal/service"
)

type OrderHandler struct {
	orderSvc service.OrderService
}

func NewOrderHandler(orderSvc service.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if !decodeBody(w, r, &order) {
		return
	}
	order.CustomerID = claimsFrom(r).UserID
	created, err := h.orderSvc.PlaceOrder(r.Context(), &order)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderSvc.GetOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	claims := claimsFrom(r)
	if order.CustomerID != claims.UserID && order.OwnerID != claims.UserID {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "not your order"})
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var (
		orders []domain.Order
		err    error
	)
	switch {
	case r.URL.Query().Get("shopId") != "":
		orders, err = h.orderSvc.ListOrdersByShop(r.Context(), r.URL.Query().Get("shopId"))
	case r.URL.Query().Get("role") == "owner":
		orders, err = h.orderSvc.ListOrdersByOwner(r.Context(), claims.UserID)
	default:
		orders, err = h.orderSvc.ListOrdersByCustomer(r.Context(), claims.UserID)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status domain.OrderStatus `json:"status"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.orderSvc.UpdateOrderStatus(r.Context(), claimsFrom(r).UserID, mux.Vars(r)["id"], req.Status); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *OrderHandler) UpdateTracking(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TrackingNumber string `json:"trackingNumber"`
		Carrier        string `json:"carrier"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.orderSvc.UpdateTracking(r.Context(), claimsFrom(r).UserID, mux.Vars(r)["id"], req.TrackingNumber, req.Carrier); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *OrderHandler) Accounting(w http.ResponseWriter, r *http.Request) {
	overview, err := h.orderSvc.GetAccountingOverview(r.Context(), claimsFrom(r).UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func RegisterOrderRoutes(protected *mux.Router, orderSvc service.OrderService) {
	h := NewOrderHandler(orderSvc)
	protected.HandleFunc("/api/v1/orders", h.Place).Methods("POST")
	protected.HandleFunc("/api/v1/orders", h.List).Methods("GET")
	protected.HandleFunc("/api/v1/orders/{id}", h.Get).Methods("GET")
	protected.HandleFunc("/api/v1/orders/{id}/status", h.UpdateStatus).Methods("PUT")
	protected.HandleFunc("/api/v1/orders/{id}/tracking", h.UpdateTracking).Methods("PUT")
	protected.HandleFunc("/api/v1/accounting/overview", h.Accounting).Methods("GET")
}
