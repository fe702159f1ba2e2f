package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/fwwkol/openalgo/middleware"

	"github.com/go-resty/resty/v2"
)

const (
	quotesPathFormat = "/script-details/1.0/quotes/neosymbol/%s/%s"

	// Filters accepted by the quotes endpoint.
	FilterAll   = "all"
	FilterDepth = "depth"
)

// NeoClient talks to the Neo v2 quotes endpoint. One instance shares a
// pooled transport across requests; no call holds the connection beyond
// its own round trip.
type NeoClient struct {
	client      *resty.Client
	accessToken string
}

func NewNeoClient(baseUrl, accessToken string) *NeoClient {
	c := resty.New().
		SetBaseURL(baseUrl).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")

	c.OnAfterResponse(middleware.DecompressMiddleware)

	return &NeoClient{
		client:      c,
		accessToken: accessToken,
	}
}

// FetchQuotes issues one GET for the given query ("segment|identifier")
// and filter. The query is percent-encoded except for the pipe, which
// the endpoint requires verbatim. Returns the raw payload array; an
// absent or empty array means "no data" and is the caller's problem.
func (n *NeoClient) FetchQuotes(ctx context.Context, query, filter string) ([]map[string]any, error) {
	encoded := strings.ReplaceAll(url.PathEscape(query), "%7C", "|")
	endpoint := fmt.Sprintf(quotesPathFormat, encoded, filter)

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Authorization", n.accessToken).
		Get(endpoint)

	if err != nil {
		return nil, fmt.Errorf("quotes request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("quotes api returned HTTP %d", resp.StatusCode())
	}

	var payload []map[string]any
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("quotes payload decode error: %w", err)
	}
	return payload, nil
}
