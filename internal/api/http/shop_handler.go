package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"myhustle-backend/internal/domain"
	"myhustle-backend/internal/service"
)

type ShopHandler struct {
	shopSvc service.ShopService
}

func NewShopHandler(shopSvc service.ShopService) *ShopHandler {
	return &ShopHandler{shopSvc: shopSvc}
}

func (h *ShopHandler) Create(w http.ResponseWriter, r *http.Request) {
	var shop domain.Shop
	if !decodeBody(w, r, &shop) {
		return
	}
	shop.OwnerID = claimsFrom(r).UserID
	id, err := h.shopSvc.CreateShop(r.Context(), &shop)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	shop.ID = id
	writeJSON(w, http.StatusCreated, shop)
}

func (h *ShopHandler) Get(w http.ResponseWriter, r *http.Request) {
	shop, err := h.shopSvc.GetShop(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shop)
}

func (h *ShopHandler) List(w http.ResponseWriter, r *http.Request) {
	if ownerID := r.URL.Query().Get("ownerId"); ownerID != "" {
		shops, err := h.shopSvc.ListShopsByOwner(r.Context(), ownerID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, shops)
		return
	}
	shops, err := h.shopSvc.ListShops(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shops)
}

func (h *ShopHandler) Update(w http.ResponseWriter, r *http.Request) {
	var shop domain.Shop
	if !decodeBody(w, r, &shop) {
		return
	}
	shop.ID = mux.Vars(r)["id"]
	if err := h.shopSvc.UpdateShop(r.Context(), claimsFrom(r).UserID, &shop); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shop)
}

func (h *ShopHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Active bool `json:"active"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.shopSvc.SetShopActive(r.Context(), claimsFrom(r).UserID, mux.Vars(r)["id"], req.Active); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ShopHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.shopSvc.DeleteShop(r.Context(), claimsFrom(r).UserID, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func RegisterShopRoutes(public, protected *mux.Router, shopSvc service.ShopService) {
	h := NewShopHandler(shopSvc)
	public.HandleFunc("/api/v1/shops", h.List).Methods("GET")
	public.HandleFunc("/api/v1/shops/{id}", h.Get).Methods("GET")
	protected.HandleFunc("/api/v1/shops", h.Create).Methods("POST")
	protected.HandleFunc("/api/v1/shops/{id}", h.Update).Methods("PUT")
	protected.HandleFunc("/api/v1/shops/{id}/active", h.SetActive).Methods("PUT")
	protected.HandleFunc("/api/v1/shops/{id}", h.Delete).Methods("DELETE")
}
