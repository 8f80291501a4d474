package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/evepupil/notion-friends-sync/pkg/logger"
)

const (
	defaultBaseURL = "https://api.notion.com"
	apiVersion     = "2022-06-28"

	connectionTimeout = 10 * time.Second
	responseTimeout   = 30 * time.Second
)

// Client represents a Notion API client
type Client struct {
	// BaseURL is the API endpoint, overridable for tests
	BaseURL string

	httpClient *http.Client
	token      string
	log        *logger.Logger
}

// NewClient creates a new Notion client authenticating with the given
// integration token
func NewClient(token string, log *logger.Logger) *Client {
	// Create transport with configured timeouts
	transport := &http.Transport{
		MaxIdleConnsPerHost:   2,
		ResponseHeaderTimeout: responseTimeout,
		DialContext:           (&net.Dialer{Timeout: connectionTimeout}).DialContext,
	}

	return &Client{
		BaseURL: defaultBaseURL,
		httpClient: &http.Client{
			Transport: transport,
		},
		token: token,
		log:   log,
	}
}

// Query is the body of a database query request
type Query struct {
	Filter *Filter `json:"filter,omitempty"`
	Sorts  []Sort  `json:"sorts,omitempty"`
}

// Filter restricts query results to pages whose named property matches
type Filter struct {
	Property string        `json:"property"`
	Select   *SelectFilter `json:"select,omitempty"`
}

// SelectFilter matches a select property by its exact option name
type SelectFilter struct {
	Equals string `json:"equals"`
}

// Sort orders query results by a named property
type Sort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

// Sort directions accepted by the API
const (
	SortAscending  = "ascending"
	SortDescending = "descending"
)

// QueryResult holds one page of database query results
type QueryResult struct {
	Object     string  `json:"object"`
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// QueryDatabase runs a filtered, sorted query against a database and
// returns the first page of results. Error responses from the API are
// returned as *APIError so callers can classify them.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, query Query) (*QueryResult, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	url := fmt.Sprintf("%s/v1/databases/%s/query", c.BaseURL, databaseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create query request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	c.log.Debugf("Querying Notion database %s", databaseID)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query database: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: res.StatusCode}
		// The body carries a structured error object; when it doesn't
		// decode, the HTTP status alone still classifies the failure.
		if decodeErr := json.NewDecoder(res.Body).Decode(apiErr); decodeErr != nil {
			apiErr.Message = res.Status
		}
		apiErr.StatusCode = res.StatusCode
		return nil, apiErr
	}

	var result QueryResult
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode query response: %w", err)
	}

	c.log.Debugf("Query returned %d results", len(result.Results))

	return &result, nil
}
