package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"myhustle-backend/internal/domain"
	"myhustle-backend/internal/service"
)

type CatalogHandler struct {
	catalogSvc service.CatalogService
}

func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if !decodeBody(w, r, &product) {
		return
	}
	id, err := h.catalogSvc.CreateProduct(r.Context(), claimsFrom(r).UserID, &product)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	product.ID = id
	writeJSON(w, http.StatusCreated, product)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalogSvc.GetProduct(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) ListShopProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogSvc.ListProductsByShop(r.Context(), mux.Vars(r)["shopId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if !decodeBody(w, r, &product) {
		return
	}
	product.ID = mux.Vars(r)["id"]
	if err := h.catalogSvc.UpdateProduct(r.Context(), claimsFrom(r).UserID, &product); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogSvc.DeleteProduct(r.Context(), claimsFrom(r).UserID, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var svc domain.Service
	if !decodeBody(w, r, &svc) {
		return
	}
	id, err := h.catalogSvc.CreateService(r.Context(), claimsFrom(r).UserID, &svc)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	svc.ID = id
	writeJSON(w, http.StatusCreated, svc)
}

func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	svc, err := h.catalogSvc.GetService(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (h *CatalogHandler) ListShopServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogSvc.ListServicesByShop(r.Context(), mux.Vars(r)["shopId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	var svc domain.Service
	if !decodeBody(w, r, &svc) {
		return
	}
	svc.ID = mux.Vars(r)["id"]
	if err := h.catalogSvc.UpdateService(r.Context(), claimsFrom(r).UserID, &svc); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (h *CatalogHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogSvc.DeleteService(r.Context(), claimsFrom(r).UserID, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func RegisterCatalogRoutes(public, protected *mux.Router, catalogSvc service.CatalogService) {
	h := NewCatalogHandler(catalogSvc)
	public.HandleFunc("/api/v1/shops/{shopId}/products", h.ListShopProducts).Methods("GET")
	public.HandleFunc("/api/v1/shops/{shopId}/services", h.ListShopServices).Methods("GET")
	public.HandleFunc("/api/v1/products/{id}", h.GetProduct).Methods("GET")
	public.HandleFunc("/api/v1/services/{id}", h.GetService).Methods("GET")
	protected.HandleFunc("/api/v1/products", h.CreateProduct).Methods("POST")
	protected.HandleFunc("/api/v1/products/{id}", h.UpdateProduct).Methods("PUT")
	protected.HandleFunc("/api/v1/products/{id}", h.DeleteProduct).Methods("DELETE")
	protected.HandleFunc("/api/v1/services", h.CreateService).Methods("POST")
	protected.HandleFunc("/api/v1/services/{id}", h.UpdateService).Methods("PUT")
	protected.HandleFunc("/api/v1/services/{id}", h.DeleteService).Methods("DELETE")
}
