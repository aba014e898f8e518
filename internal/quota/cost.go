// SPDX-FileCopyrightText: 2025 TechAir Media <ops@techair.media>
//
// SPDX-License-Identifier: AGPL-3.0-only

package quota

import (
	"fmt"
	"time"
)

// DefaultImagePriceCents is the per-image price used for spend estimates,
// in fractional cents ($0.0001 per image).
const DefaultImagePriceCents = 0.01

// MonthlyPeriod represents a calendar month budget period
type MonthlyPeriod struct {
	Year  int
	Month time.Month
}

// PeriodOf returns the monthly period containing t
func PeriodOf(t time.Time) MonthlyPeriod {
	return MonthlyPeriod{Year: t.Year(), Month: t.Month()}
}

// Key returns the period identifier in the YYYY-MM form the usage record
// stores.
func (m MonthlyPeriod) Key() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// GetTimeRange returns the inclusive time span covered by the period
func (m MonthlyPeriod) GetTimeRange() (start, end time.Time) {
	start = time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

func (m MonthlyPeriod) String() string {
	return fmt.Sprintf("monthly-%s", m.Key())
}

// EstimateSpendCents computes the estimated month-to-date spend in
// fractional cents for the given call count.
func EstimateSpendCents(count int, perImageCents float64) float64 {
	return float64(count) * perImageCents
}

// FormatUSD renders a fractional-cent amount as a dollar string
func FormatUSD(cents float64) string {
	return fmt.Sprintf("$%.4f", cents/100)
}
