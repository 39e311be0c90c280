package reservations

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newTestRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	group := engine.Group("/api/v1")
	SetupReservationRoutes(group, NewController(svc))
	return engine
}

func postReservation(t *testing.T, engine *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestReserveEndpoint(t *testing.T) {
	tripID := uuid.New()
	engine := newTestRouter(NewService(
		newFakeRepo(),
		&fakeCapacity{trips: map[uuid.UUID]int{tripID: 40}},
		&fakeCodes{},
		nil,
	))

	w := postReservation(t, engine, validRequest(tripID, 11))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Status string              `json:"status"`
		Data   ReservationResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "success" {
		t.Fatalf("expected success status, got %s", resp.Status)
	}
	if resp.Data.SeatNumber != 11 || resp.Data.ConfirmationCode == "" {
		t.Fatalf("unexpected payload: %+v", resp.Data)
	}
}

func TestReserveEndpointStatusMapping(t *testing.T) {
	tripID := uuid.New()
	repo := newFakeRepo()
	engine := newTestRouter(NewService(
		repo,
		&fakeCapacity{trips: map[uuid.UUID]int{tripID: 40}},
		&fakeCodes{},
		nil,
	))

	// Occupy seat 5 for the conflict case.
	if w := postReservation(t, engine, validRequest(tripID, 5)); w.Code != http.StatusCreated {
		t.Fatalf("setup reserve failed: %d", w.Code)
	}

	cases := []struct {
		name string
		body interface{}
		want int
	}{
		{"missing fields", map[string]interface{}{"trip_id": tripID.String()}, http.StatusBadRequest},
		{"unknown trip", validRequest(uuid.New(), 1), http.StatusNotFound},
		{"malformed trip id", ReserveRequest{TripID: "nonexistent-trip", SeatNumber: 1, PassengerName: "Asha", ContactPhone: "123"}, http.StatusNotFound},
		{"seat out of range", validRequest(tripID, 41), http.StatusBadRequest},
		{"seat taken", validRequest(tripID, 5), http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postReservation(t, engine, tc.body)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestSeatMapEndpoint(t *testing.T) {
	tripID := uuid.New()
	engine := newTestRouter(NewService(
		newFakeRepo(),
		&fakeCapacity{trips: map[uuid.UUID]int{tripID: 30}},
		&fakeCodes{},
		nil,
	))

	for _, seat := range []int{8, 2} {
		if w := postReservation(t, engine, validRequest(tripID, seat)); w.Code != http.StatusCreated {
			t.Fatalf("setup reserve failed: %d", w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/trips/%s/seats", tripID), nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data SeatMapResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.TotalSeats != 30 {
		t.Fatalf("expected capacity 30, got %d", resp.Data.TotalSeats)
	}
	if len(resp.Data.TakenSeats) != 2 || resp.Data.TakenSeats[0] != 2 || resp.Data.TakenSeats[1] != 8 {
		t.Fatalf("expected [2 8], got %v", resp.Data.TakenSeats)
	}
}

func TestSeatMapEndpointTripNotFound(t *testing.T) {
	engine := newTestRouter(NewService(
		newFakeRepo(),
		&fakeCapacity{trips: map[uuid.UUID]int{}},
		&fakeCodes{},
		nil,
	))

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/trips/%s/seats", uuid.New()), nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
