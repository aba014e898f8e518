// SPDX-FileCopyrightText: 2025 TechAir Media <ops@techair.media>
//
// SPDX-License-Identifier: AGPL-3.0-only

package mediakit

import "context"

// ImageGenerator defines a backend capable of producing a single image from
// a text prompt. Implementations acquire their client at the point of use
// and return [ErrDependencyUnavailable] when that fails, keeping backends
// optional until invoked.
type ImageGenerator interface {
	// Generate produces exactly one image for the prompt and returns its bytes
	Generate(ctx context.Context, prompt string) ([]byte, error)
}
