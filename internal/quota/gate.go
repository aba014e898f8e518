// SPDX-FileCopyrightText: 2025 TechAir Media <ops@techair.media>
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package quota gates billable generation calls behind a hard monthly cap
// persisted in a local usage record.
package quota

import (
	"context"
	"fmt"

	"github.com/techair/mediakit"
)

// CheckAndReserve loads the usage record, resets it if it belongs to a prior
// month, and admits the caller if the cap has headroom. An admitted call has
// already been counted: the incremented record is persisted before this
// returns true, so the reservation survives even if the gated action fails.
// A denied call leaves the store untouched.
//
// The load-check-increment-save sequence is not locked. The gate assumes a
// single process at a time; concurrent invocations can both observe a
// pre-increment count and over-admit.
func (g *Gate) CheckAndReserve(ctx context.Context) (bool, error) {
	record, err := g.options.Store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load usage record: %w", err)
	}

	month := PeriodOf(g.options.Now()).Key()
	if record.Month != month {
		g.options.Logger.Debug("New month, resetting usage count", "previous", record.Month, "current", month)
		record = mediakit.UsageRecord{Month: month}
	}

	if record.Count >= g.options.Cap {
		g.options.Logger.Warn("Monthly cap reached, refusing to reserve",
			"count", record.Count, "cap", g.options.Cap, "month", month)
		return false, nil
	}

	record.Count++
	if err := g.options.Store.Save(ctx, record); err != nil {
		return false, fmt.Errorf("persist usage record: %w", err)
	}

	g.options.Logger.Info("Usage reserved", "count", record.Count, "cap", g.options.Cap, "month", month)
	return true, nil
}

// Usage returns the record as it stands for the current month, applying the
// month rollover logically without persisting anything. It never consumes
// quota.
func (g *Gate) Usage(ctx context.Context) (mediakit.UsageRecord, error) {
	record, err := g.options.Store.Load(ctx)
	if err != nil {
		return mediakit.UsageRecord{}, fmt.Errorf("load usage record: %w", err)
	}

	month := PeriodOf(g.options.Now()).Key()
	if record.Month != month {
		record = mediakit.UsageRecord{Month: month}
	}

	return record, nil
}

// Cap returns the configured monthly cap
func (g *Gate) Cap() int {
	return g.options.Cap
}
