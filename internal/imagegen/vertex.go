// SPDX-FileCopyrightText: 2025 TechAir Media <ops@techair.media>
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package imagegen provides image generation backends behind
// [mediakit.ImageGenerator].
package imagegen

import (
	"context"
	"fmt"

	"github.com/techair/mediakit"
	"google.golang.org/genai"
)

// Generate produces one image through Vertex AI Imagen. The SDK client is
// acquired here, at the point of use, so an unusable credential environment
// surfaces as [mediakit.ErrDependencyUnavailable] instead of failing tools
// that never generate.
func (g *VertexGenerator) Generate(ctx context.Context, prompt string) ([]byte, error) {
	if prompt == "" {
		return nil, fmt.Errorf("prompt must not be empty")
	}

	g.options.Logger.Info("Initializing Vertex AI",
		"project", g.options.Project, "location", g.options.Location)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  g.options.Project,
		Location: g.options.Location,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: vertex client: %v", mediakit.ErrDependencyUnavailable, err)
	}

	g.options.Logger.Info("Generating image", "model", g.options.Model)

	resp, err := client.Models.GenerateImages(ctx, g.options.Model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: vertex image generation: %v", mediakit.ErrTransport, err)
	}

	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil || len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		return nil, fmt.Errorf("%w: vertex returned no image data", mediakit.ErrTransport)
	}

	return resp.GeneratedImages[0].Image.ImageBytes, nil
}
