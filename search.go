// SPDX-FileCopyrightText: 2025 TechAir Media <ops@techair.media>
//
// SPDX-License-Identifier: AGPL-3.0-only

package mediakit

import "context"

// ResultSummary represents a single stock-asset search hit
type ResultSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// AssetSearcher defines the search operation against a stock-asset provider
type AssetSearcher interface {
	// Search issues a single search request and returns matching summaries
	// in the order the provider returned them
	Search(ctx context.Context, query string, page, limit int) ([]ResultSummary, error)
}
