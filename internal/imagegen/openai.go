// SPDX-FileCopyrightText: 2025 TechAir Media <ops@techair.media>
//
// SPDX-License-Identifier: AGPL-3.0-only

package imagegen

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/techair/mediakit"
)

// OpenAIKeyEnv is the variable holding the OpenAI API key
const OpenAIKeyEnv = "OPENAI_API_KEY"

// Generate produces one image through the OpenAI Images API. The key is
// probed at the point of use; a missing key is
// [mediakit.ErrDependencyUnavailable].
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) ([]byte, error) {
	if prompt == "" {
		return nil, fmt.Errorf("prompt must not be empty")
	}

	key := os.Getenv(OpenAIKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("%w: %s not set", mediakit.ErrDependencyUnavailable, OpenAIKeyEnv)
	}

	client := openai.NewClient(option.WithAPIKey(key))

	g.options.Logger.Info("Generating image", "model", g.options.Model)

	resp, err := client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:         prompt,
		Model:          openai.ImageModel(g.options.Model),
		N:              openai.Int(1),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatB64JSON,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: openai image generation: %v", mediakit.ErrTransport, err)
	}

	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("%w: openai returned no image data", mediakit.ErrTransport)
	}

	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("%w: decode openai image payload: %v", mediakit.ErrTransport, err)
	}

	return data, nil
}
