// SPDX-FileCopyrightText: 2025 TechAir Media <ops@techair.media>
//
// SPDX-License-Identifier: AGPL-3.0-only

package mediakit

import "errors"

var (
	// ErrConfigMissing should be returned when a credentials file or key the
	// tool depends on is absent
	ErrConfigMissing = errors.New("configuration missing")

	// ErrQuotaExceeded should be returned when the monthly generation cap has
	// been reached and no further billable calls may be made
	ErrQuotaExceeded = errors.New("monthly quota exceeded")

	// ErrDependencyUnavailable should be returned when a backend client cannot
	// be constructed at the point of use
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrTransport should be returned when an outbound call itself fails
	ErrTransport = errors.New("transport failure")
)
