// SPDX-FileCopyrightText: 2025 TechAir Media <ops@techair.media>
//
// SPDX-License-Identifier: AGPL-3.0-only

package imagegen

import (
	"log/slog"
)

// DefaultOpenAIModel is the OpenAI image model identifier
const DefaultOpenAIModel = "dall-e-3"

// OpenAIGenerator generates images through the OpenAI Images API. It
// implements [mediakit.ImageGenerator].
type OpenAIGenerator struct {
	options *openAIGeneratorOptions
}

// NewOpenAIGenerator creates a new [OpenAIGenerator].
func NewOpenAIGenerator(options ...OpenAIGeneratorOption) (*OpenAIGenerator, error) {
	opts := defaultOpenAIGeneratorOptions
	for _, opt := range GlobalOpenAIGeneratorOptions {
		opt.apply(&opts)
	}
	for _, opt := range options {
		opt.apply(&opts)
	}

	return &OpenAIGenerator{
		options: &opts,
	}, nil
}

type openAIGeneratorOptions struct {
	Logger *slog.Logger
	Model  string
}

var defaultOpenAIGeneratorOptions = openAIGeneratorOptions{
	Logger: slog.Default(),
	Model:  DefaultOpenAIModel,
}

// GlobalOpenAIGeneratorOptions is a list of [OpenAIGeneratorOption]s that are
// applied to all [OpenAIGenerator]s.
var GlobalOpenAIGeneratorOptions []OpenAIGeneratorOption

// OpenAIGeneratorOption is an option for configuring an [OpenAIGenerator].
type OpenAIGeneratorOption interface {
	apply(*openAIGeneratorOptions)
}

// funcOpenAIGeneratorOption is an [OpenAIGeneratorOption] that calls a
// function. It is used to wrap a function, so it satisfies the
// [OpenAIGeneratorOption] interface.
type funcOpenAIGeneratorOption struct {
	f func(*openAIGeneratorOptions)
}

func (fdo *funcOpenAIGeneratorOption) apply(opts *openAIGeneratorOptions) {
	fdo.f(opts)
}

func newFuncOpenAIGeneratorOption(f func(*openAIGeneratorOptions)) *funcOpenAIGeneratorOption {
	return &funcOpenAIGeneratorOption{
		f: f,
	}
}

// WithOpenAIGeneratorLogger returns an [OpenAIGeneratorOption] that uses the
// provided logger.
func WithOpenAIGeneratorLogger(logger *slog.Logger) OpenAIGeneratorOption {
	return newFuncOpenAIGeneratorOption(func(opts *openAIGeneratorOptions) {
		opts.Logger = logger
	})
}

// WithOpenAIGeneratorModel returns an [OpenAIGeneratorOption] that uses the
// provided model identifier.
func WithOpenAIGeneratorModel(model string) OpenAIGeneratorOption {
	return newFuncOpenAIGeneratorOption(func(opts *openAIGeneratorOptions) {
		opts.Model = model
	})
}
