// SPDX-FileCopyrightText: 2025 TechAir Media <ops@techair.media>
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package freepik implements a thin client for the Freepik resource search
// API.
package freepik

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/techair/mediakit"
)

type searchResponse struct {
	Data []resource `json:"data"`
}

type resource struct {
	ID    json.Number `json:"id"`
	Title string      `json:"title"`
	URL   string      `json:"url"`
}

// Search issues a single GET against the /resources endpoint and returns the
// matching summaries in server order. One attempt, one page; a non-success
// response is a [mediakit.ErrTransport].
func (c *Client) Search(ctx context.Context, query string, page, limit int) ([]mediakit.ResultSummary, error) {
	if query == "" {
		return nil, fmt.Errorf("search query must not be empty")
	}
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	endpoint := c.options.BaseURL + "/resources"
	params := url.Values{}
	params.Set("locale", c.options.Locale)
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("term", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", c.options.Locale)
	req.Header.Set("X-Freepik-API-Key", c.options.APIKey)

	c.options.Logger.Debug("Searching resources", "term", query, "page", page, "limit", limit)

	resp, err := c.options.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: search request: %v", mediakit.ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: server returned %d: %s", mediakit.ErrTransport, resp.StatusCode, string(body))
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decode search response: %v", mediakit.ErrTransport, err)
	}

	results := make([]mediakit.ResultSummary, 0, len(decoded.Data))
	for _, res := range decoded.Data {
		results = append(results, mediakit.ResultSummary{
			ID:    res.ID.String(),
			Title: res.Title,
			URL:   res.URL,
		})
	}

	c.options.Logger.Debug("Search completed", "found", len(results))
	return results, nil
}
