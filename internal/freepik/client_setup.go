// SPDX-FileCopyrightText: 2025 TechAir Media <ops@techair.media>
//
// SPDX-License-Identifier: AGPL-3.0-only

package freepik

import (
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the production Freepik API root
	DefaultBaseURL = "https://api.freepik.com/v1"

	// DefaultLocale is sent both as a query parameter and an Accept-Language
	// header.
	DefaultLocale = "en-US"

	// DefaultLimit is the number of results requested when the caller does
	// not say otherwise.
	DefaultLimit = 5

	// DefaultPage is the page requested when the caller does not say otherwise
	DefaultPage = 1

	defaultTimeout = 30 * time.Second
)

// Client is a search client for the Freepik API. It implements
// [mediakit.AssetSearcher].
type Client struct {
	options *clientOptions
}

// NewClient creates a new [Client].
func NewClient(options ...ClientOption) (*Client, error) {
	opts := defaultClientOptions
	for _, opt := range GlobalClientOptions {
		opt.apply(&opts)
	}
	for _, opt := range options {
		opt.apply(&opts)
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		options: &opts,
	}, nil
}

type clientOptions struct {
	Logger     *slog.Logger
	BaseURL    string
	Locale     string
	APIKey     string
	HTTPClient *http.Client
}

var defaultClientOptions = clientOptions{
	Logger:  slog.Default(),
	BaseURL: DefaultBaseURL,
	Locale:  DefaultLocale,
}

// GlobalClientOptions is a list of [ClientOption]s that are applied to all
// [Client]s.
var GlobalClientOptions []ClientOption

// ClientOption is an option for configuring a [Client].
type ClientOption interface {
	apply(*clientOptions)
}

// funcClientOption is a [ClientOption] that calls a function. It is used to
// wrap a function, so it satisfies the [ClientOption] interface.
type funcClientOption struct {
	f func(*clientOptions)
}

func (fdo *funcClientOption) apply(opts *clientOptions) {
	fdo.f(opts)
}

func newFuncClientOption(f func(*clientOptions)) *funcClientOption {
	return &funcClientOption{
		f: f,
	}
}

// WithClientLogger returns a [ClientOption] that uses the provided logger.
func WithClientLogger(logger *slog.Logger) ClientOption {
	return newFuncClientOption(func(opts *clientOptions) {
		opts.Logger = logger
	})
}

// WithClientBaseURL returns a [ClientOption] that uses the provided API root.
func WithClientBaseURL(baseURL string) ClientOption {
	return newFuncClientOption(func(opts *clientOptions) {
		opts.BaseURL = baseURL
	})
}

// WithClientLocale returns a [ClientOption] that uses the provided locale.
func WithClientLocale(locale string) ClientOption {
	return newFuncClientOption(func(opts *clientOptions) {
		opts.Locale = locale
	})
}

// WithClientAPIKey returns a [ClientOption] that uses the provided API key.
func WithClientAPIKey(key string) ClientOption {
	return newFuncClientOption(func(opts *clientOptions) {
		opts.APIKey = key
	})
}

// WithClientHTTPClient returns a [ClientOption] that uses the provided HTTP
// client.
func WithClientHTTPClient(httpClient *http.Client) ClientOption {
	return newFuncClientOption(func(opts *clientOptions) {
		opts.HTTPClient = httpClient
	})
}
