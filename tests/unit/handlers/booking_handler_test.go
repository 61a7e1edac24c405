package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "myhustle-backend/internal/api/http"
	"myhustle-backend/internal/domain"
	"myhustle-backend/internal/security"
)

const testJWTSecret = "handler-test-secret-0123456789abcdef"

func newTestRouter(bookingSvc *MockBookingService, analyticsSvc *MockAnalyticsService) (http.Handler, security.TokenManager) {
	tokens := security.NewTokenManager(testJWTSecret, 60, 10080)
	router := httpapi.NewRouter(httpapi.Services{
		Bookings:  bookingSvc,
		Analytics: analyticsSvc,
	}, tokens)
	return router, tokens
}

func bearerFor(t *testing.T, tokens security.TokenManager, userID string) string {
	t.Helper()
	access, err := tokens.GenerateAccessToken(userID, userID+"@test.com", "BUSINESS_OWNER")
	assert.NoError(t, err)
	return "Bearer " + access
}

func TestBookingHandler_Accept(t *testing.T) {
	bookingSvc := new(MockBookingService)
	router, tokens := newTestRouter(bookingSvc, new(MockAnalyticsService))

	bookingSvc.On("AcceptBooking", mock.Anything, "owner-1", "bk-1", "See you then", 75.0).
		Return(&domain.Booking{ID: "bk-1", Status: domain.BookingStatusAccepted, AgreedPrice: 75.0}, nil)

	body, _ := json.Marshal(map[string]any{"message": "See you then", "agreedPrice": 75.0})
	req := httptest.NewRequest("POST", "/api/v1/bookings/bk-1/accept", bytes.NewReader(body))
	req.Header.Set("Authorization", bearerFor(t, tokens, "owner-1"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got domain.Booking
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, domain.BookingStatusAccepted, got.Status)
	assert.Equal(t, 75.0, got.AgreedPrice)
}

func TestBookingHandler_MissingToken(t *testing.T) {
	router, _ := newTestRouter(new(MockBookingService), new(MockAnalyticsService))

	req := httptest.NewRequest("GET", "/api/v1/bookings", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBookingHandler_RefreshTokenRejectedForAPI(t *testing.T) {
	router, tokens := newTestRouter(new(MockBookingService), new(MockAnalyticsService))

	refresh, err := tokens.GenerateRefreshToken("owner-1", "owner-1@test.com")
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/v1/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBookingHandler_ListAsOwner(t *testing.T) {
	bookingSvc := new(MockBookingService)
	router, tokens := newTestRouter(bookingSvc, new(MockAnalyticsService))

	bookingSvc.On("ListBookingsByOwner", mock.Anything, "owner-1").
		Return([]domain.Booking{{ID: "bk-1"}, {ID: "bk-2"}}, nil)

	req := httptest.NewRequest("GET", "/api/v1/bookings?role=owner", nil)
	req.Header.Set("Authorization", bearerFor(t, tokens, "owner-1"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []domain.Booking
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestAnalyticsHandler_Dashboard(t *testing.T) {
	analyticsSvc := new(MockAnalyticsService)
	router, tokens := newTestRouter(new(MockBookingService), analyticsSvc)

	analyticsSvc.On("GetBookingStats", mock.Anything, "owner-1").
		Return(&domain.BookingStats{TotalBookings: 3, PendingBookings: 1}, nil)
	analyticsSvc.On("GetRevenueSummary", mock.Anything, "owner-1").
		Return(&domain.RevenueSummary{TotalRevenue: 150.0, TotalTransactions: 3}, nil)
	analyticsSvc.On("GetTopSellers", mock.Anything, "owner-1").
		Return([]domain.ProductSales{{Name: "Latte", UnitsSold: 5, Revenue: 25.0}}, nil)
	analyticsSvc.On("GetMonthlyTrend", mock.Anything, "owner-1").
		Return([]domain.MonthRevenue{{Month: "Apr"}, {Month: "May"}, {Month: "Jun"}}, nil)

	req := httptest.NewRequest("GET", "/api/v1/analytics/dashboard", nil)
	req.Header.Set("Authorization", bearerFor(t, tokens, "owner-1"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Contains(t, got, "bookingStats")
	assert.Contains(t, got, "revenue")
	assert.Contains(t, got, "topSellers")
	assert.Contains(t, got, "monthlyTrend")
}

func TestAnalyticsHandler_WeeklySchedule(t *testing.T) {
	analyticsSvc := new(MockAnalyticsService)
	router, tokens := newTestRouter(new(MockBookingService), analyticsSvc)

	analyticsSvc.On("GetWeeklySchedule", mock.Anything, "shop-1").
		Return(domain.WeekdayCounts{"Mon": 0, "Tue": 1, "Wed": 0, "Thu": 0, "Fri": 2, "Sat": 0, "Sun": 0}, nil)

	req := httptest.NewRequest("GET", "/api/v1/analytics/shops/shop-1/weekly-schedule", nil)
	req.Header.Set("Authorization", bearerFor(t, tokens, "owner-1"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got map[string]int
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 7)
	assert.Equal(t, 2, got["Fri"])
}
