// SPDX-FileCopyrightText: 2025 TechAir Media <ops@techair.media>
//
// SPDX-License-Identifier: AGPL-3.0-only

package imagegen

import (
	"log/slog"
)

const (
	// DefaultProject is the Google Cloud project generation calls bill to
	DefaultProject = "techair-actech"

	// DefaultLocation is the Vertex AI region
	DefaultLocation = "us-central1"

	// DefaultVertexModel is the Imagen model identifier
	DefaultVertexModel = "imagen-3.0-generate-002"
)

// VertexGenerator generates images through Vertex AI Imagen. It implements
// [mediakit.ImageGenerator].
type VertexGenerator struct {
	options *vertexGeneratorOptions
}

// NewVertexGenerator creates a new [VertexGenerator].
func NewVertexGenerator(options ...VertexGeneratorOption) (*VertexGenerator, error) {
	opts := defaultVertexGeneratorOptions
	for _, opt := range GlobalVertexGeneratorOptions {
		opt.apply(&opts)
	}
	for _, opt := range options {
		opt.apply(&opts)
	}

	return &VertexGenerator{
		options: &opts,
	}, nil
}

type vertexGeneratorOptions struct {
	Logger   *slog.Logger
	Project  string
	Location string
	Model    string
}

var defaultVertexGeneratorOptions = vertexGeneratorOptions{
	Logger:   slog.Default(),
	Project:  DefaultProject,
	Location: DefaultLocation,
	Model:    DefaultVertexModel,
}

// GlobalVertexGeneratorOptions is a list of [VertexGeneratorOption]s that are
// applied to all [VertexGenerator]s.
var GlobalVertexGeneratorOptions []VertexGeneratorOption

// VertexGeneratorOption is an option for configuring a [VertexGenerator].
type VertexGeneratorOption interface {
	apply(*vertexGeneratorOptions)
}

// funcVertexGeneratorOption is a [VertexGeneratorOption] that calls a
// function. It is used to wrap a function, so it satisfies the
// [VertexGeneratorOption] interface.
type funcVertexGeneratorOption struct {
	f func(*vertexGeneratorOptions)
}

func (fdo *funcVertexGeneratorOption) apply(opts *vertexGeneratorOptions) {
	fdo.f(opts)
}

func newFuncVertexGeneratorOption(f func(*vertexGeneratorOptions)) *funcVertexGeneratorOption {
	return &funcVertexGeneratorOption{
		f: f,
	}
}

// WithVertexGeneratorLogger returns a [VertexGeneratorOption] that uses the
// provided logger.
func WithVertexGeneratorLogger(logger *slog.Logger) VertexGeneratorOption {
	return newFuncVertexGeneratorOption(func(opts *vertexGeneratorOptions) {
		opts.Logger = logger
	})
}

// WithVertexGeneratorProject returns a [VertexGeneratorOption] that uses the
// provided project.
func WithVertexGeneratorProject(project string) VertexGeneratorOption {
	return newFuncVertexGeneratorOption(func(opts *vertexGeneratorOptions) {
		opts.Project = project
	})
}

// WithVertexGeneratorLocation returns a [VertexGeneratorOption] that uses the
// provided location.
func WithVertexGeneratorLocation(location string) VertexGeneratorOption {
	return newFuncVertexGeneratorOption(func(opts *vertexGeneratorOptions) {
		opts.Location = location
	})
}

// WithVertexGeneratorModel returns a [VertexGeneratorOption] that uses the
// provided model identifier.
func WithVertexGeneratorModel(model string) VertexGeneratorOption {
	return newFuncVertexGeneratorOption(func(opts *vertexGeneratorOptions) {
		opts.Model = model
	})
}
