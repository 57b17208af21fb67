package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"wb-labels/models"
)

// makePage builds a full or short cards page for the fake WB API
func makePage(count int, startID int) models.CardsResponse {
	cards := make([]models.RawCard, 0, count)
	for i := 0; i < count; i++ {
		cards = append(cards, models.RawCard{
			NmID:       startID + i,
			VendorCode: fmt.Sprintf("art-%d", startID+i),
		})
	}
	resp := models.CardsResponse{Cards: cards}
	resp.Cursor.Total = count
	if count > 0 {
		resp.Cursor.NmID = startID + count - 1
		resp.Cursor.UpdatedAt = "2024-01-01T00:00:00Z"
	}
	return resp
}

func TestFetchAllCardsPagination(t *testing.T) {
	pages := []models.CardsResponse{
		makePage(100, 0),
		makePage(100, 100),
		makePage(37, 200),
	}

	var requests []models.Cursor
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("request method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "test-token" {
			t.Errorf("Authorization = %q, want %q", got, "test-token")
		}

		var body struct {
			Settings struct {
				Cursor models.Cursor `json:"cursor"`
			} `json:"settings"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		requests = append(requests, body.Settings.Cursor)

		page := pages[len(requests)-1]
		json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	client := NewWBClient(server.URL)
	cards, err := client.FetchAllCards(context.Background(), "test-token")
	if err != nil {
		t.Fatalf("FetchAllCards() error = %v", err)
	}

	if len(cards) != 237 {
		t.Errorf("got %d cards, want 237", len(cards))
	}
	if len(requests) != 3 {
		t.Fatalf("got %d requests, want 3", len(requests))
	}

	// First request starts from an empty cursor
	if requests[0].NmID != 0 || requests[0].UpdatedAt != "" {
		t.Errorf("first cursor = %+v, want empty", requests[0])
	}
	// Later requests carry the previous page's cursor forward
	if requests[1].NmID != 99 {
		t.Errorf("second cursor nmID = %d, want 99", requests[1].NmID)
	}
	if requests[2].NmID != 199 {
		t.Errorf("third cursor nmID = %d, want 199", requests[2].NmID)
	}
	for i, cur := range requests {
		if cur.Limit != 100 {
			t.Errorf("request %d limit = %d, want 100", i, cur.Limit)
		}
	}
}

func TestFetchAllCardsSingleShortPage(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(makePage(5, 0))
	}))
	defer server.Close()

	client := NewWBClient(server.URL)
	cards, err := client.FetchAllCards(context.Background(), "token")
	if err != nil {
		t.Fatalf("FetchAllCards() error = %v", err)
	}
	if len(cards) != 5 {
		t.Errorf("got %d cards, want 5", len(cards))
	}
	if calls != 1 {
		t.Errorf("got %d requests, want 1", calls)
	}
}

func TestFetchAllCardsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewWBClient(server.URL)
	cards, err := client.FetchAllCards(context.Background(), "bad-token")
	if err == nil {
		t.Fatal("FetchAllCards() expected error for HTTP 401, got nil")
	}
	if cards != nil {
		t.Errorf("partial cards must be discarded on error, got %d", len(cards))
	}
}

func TestFetchAllCardsMidStreamError(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(makePage(100, 0))
	}))
	defer server.Close()

	client := NewWBClient(server.URL)
	cards, err := client.FetchAllCards(context.Background(), "token")
	if err == nil {
		t.Fatal("FetchAllCards() expected error when a later page fails, got nil")
	}
	if cards != nil {
		t.Errorf("partial cards must be discarded on error, got %d", len(cards))
	}
}
