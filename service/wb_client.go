package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"wb-labels/models"
)

const (
	defaultWBAPIURL = "https://content-api.wildberries.ru/content/v2/get/cards/list"

	// WB page size; a response with fewer cards means the catalog is exhausted
	pageSize = 100
)

// WBClient talks to the Wildberries content API.
// Implements WBClientInterface
type WBClient struct {
	apiURL string
	client *http.Client
}

// NewWBClient creates a WBClient. apiURL overrides the production endpoint
// when non-empty (used for local setups and tests)
func NewWBClient(apiURL string) *WBClient {
	if apiURL == "" {
		apiURL = defaultWBAPIURL
	}
	return &WBClient{
		apiURL: apiURL,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Ensure WBClient implements WBClientInterface
var _ WBClientInterface = (*WBClient)(nil)

// cardsRequest is the body of the paged cards/list call
type cardsRequest struct {
	Settings cardsSettings `json:"settings"`
}

type cardsSettings struct {
	Cursor models.Cursor `json:"cursor"`
	Filter cardsFilter   `json:"filter"`
	Sort   cardsSort     `json:"sort"`
}

type cardsFilter struct {
	WithPhoto int `json:"withPhoto"`
}

type cardsSort struct {
	Ascending bool `json:"ascending"`
}

// FetchAllCards pulls the full product catalog using cursor pagination:
// each response carries the last item's nmID and updatedAt, which seed the
// next request. The loop stops as soon as a page comes back short. A failed
// page discards everything already fetched and reports the error.
func (c *WBClient) FetchAllCards(ctx context.Context, token string) ([]models.RawCard, error) {
	var allCards []models.RawCard
	cursor := models.Cursor{Limit: pageSize}

	for {
		response, err := c.fetchPage(ctx, token, cursor)
		if err != nil {
			return nil, err
		}

		allCards = append(allCards, response.Cards...)

		if response.Cursor.Total != pageSize {
			break
		}
		cursor = models.Cursor{
			Limit:     pageSize,
			UpdatedAt: response.Cursor.UpdatedAt,
			NmID:      response.Cursor.NmID,
		}
	}

	log.Printf("📦 Fetched %d cards from WB", len(allCards))
	return allCards, nil
}

// fetchPage issues one paged cards/list request
func (c *WBClient) fetchPage(ctx context.Context, token string, cursor models.Cursor) (*models.CardsResponse, error) {
	body, err := json.Marshal(cardsRequest{
		Settings: cardsSettings{
			Cursor: cursor,
			Filter: cardsFilter{WithPhoto: -1},
			Sort:   cardsSort{Ascending: false},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode cards request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build cards request: %w", err)
	}
	req.Header.Set("Authorization", token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call WB content API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("WB content API returned HTTP %d", resp.StatusCode)
	}

	var response models.CardsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode cards response: %w", err)
	}
	return &response, nil
}
