package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"myhustle-backend/internal/service"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

// Dashboard bundles every owner-level analytics block the business dashboard
// renders in one response.
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ownerID := claimsFrom(r).UserID
	ctx := r.Context()

	stats, err := h.analyticsSvc.GetBookingStats(ctx, ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	revenue, err := h.analyticsSvc.GetRevenueSummary(ctx, ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	topSellers, err := h.analyticsSvc.GetTopSellers(ctx, ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	trend, err := h.analyticsSvc.GetMonthlyTrend(ctx, ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"bookingStats": stats,
		"revenue":      revenue,
		"topSellers":   topSellers,
		"monthlyTrend": trend,
	})
}

func (h *AnalyticsHandler) BookingStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analyticsSvc.GetBookingStats(r.Context(), claimsFrom(r).UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *AnalyticsHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.analyticsSvc.GetRevenueSummary(r.Context(), claimsFrom(r).UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, revenue)
}

func (h *AnalyticsHandler) TopSellers(w http.ResponseWriter, r *http.Request) {
	topSellers, err := h.analyticsSvc.GetTopSellers(r.Context(), claimsFrom(r).UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, topSellers)
}

func (h *AnalyticsHandler) MonthlyTrend(w http.ResponseWriter, r *http.Request) {
	trend, err := h.analyticsSvc.GetMonthlyTrend(r.Context(), claimsFrom(r).UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trend)
}

func (h *AnalyticsHandler) ShopBookingStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analyticsSvc.GetShopBookingStats(r.Context(), mux.Vars(r)["shopId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *AnalyticsHandler) WeeklySchedule(w http.ResponseWriter, r *http.Request) {
	counts, err := h.analyticsSvc.GetWeeklySchedule(r.Context(), mux.Vars(r)["shopId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

func RegisterAnalyticsRoutes(protected *mux.Router, analyticsSvc service.AnalyticsService) {
	h := NewAnalyticsHandler(analyticsSvc)
	protected.HandleFunc("/api/v1/analytics/dashboard", h.Dashboard).Methods("GET")
	protected.HandleFunc("/api/v1/analytics/bookings", h.BookingStats).Methods("GET")
	protected.HandleFunc("/api/v1/analytics/revenue", h.Revenue).Methods("GET")
	protected.HandleFunc("/api/v1/analytics/top-sellers", h.TopSellers).Methods("GET")
	protected.HandleFunc("/api/v1/analytics/monthly-trend", h.MonthlyTrend).Methods("GET")
	protected.HandleFunc("/api/v1/analytics/shops/{shopId}/bookings", h.ShopBookingStats).Methods("GET")
	protected.HandleFunc("/api/v1/analytics/shops/{shopId}/weekly-schedule", h.WeeklySchedule).Methods("GET")
}
