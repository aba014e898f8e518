// SPDX-FileCopyrightText: 2025 TechAir Media <ops@techair.media>
//
// SPDX-License-Identifier: AGPL-3.0-only

package mediakit

import "context"

// UsageRecord represents consumption of the monthly generation budget. Month
// is a calendar month key in YYYY-MM form; Count is the number of generation
// calls made in that month so far.
type UsageRecord struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// UsageStore defines persistence operations for the usage record
type UsageStore interface {
	// Load retrieves the current usage record. A missing store is not an
	// error; implementations return a fresh record for the current month.
	// A present-but-unreadable store is an error.
	Load(ctx context.Context) (UsageRecord, error)

	// Save persists the usage record, replacing any previous one
	Save(ctx context.Context, record UsageRecord) error
}
