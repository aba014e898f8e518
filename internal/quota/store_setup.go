// SPDX-FileCopyrightText: 2025 TechAir Media <ops@techair.media>
//
// SPDX-License-Identifier: AGPL-3.0-only

package quota

import (
	"log/slog"
	"time"
)

// DefaultUsagePath is the usage record location used when no path option is
// given.
const DefaultUsagePath = "imagen_usage.json"

// FileStore persists the usage record as a small JSON object file. It
// implements [mediakit.UsageStore].
type FileStore struct {
	options *fileStoreOptions
}

// NewFileStore creates a new [FileStore].
func NewFileStore(options ...FileStoreOption) (*FileStore, error) {
	opts := defaultFileStoreOptions
	for _, opt := range GlobalFileStoreOptions {
		opt.apply(&opts)
	}
	for _, opt := range options {
		opt.apply(&opts)
	}

	return &FileStore{
		options: &opts,
	}, nil
}

type fileStoreOptions struct {
	Logger *slog.Logger
	Path   string
	Now    func() time.Time
}

var defaultFileStoreOptions = fileStoreOptions{
	Logger: slog.Default(),
	Path:   DefaultUsagePath,
	Now:    time.Now,
}

// GlobalFileStoreOptions is a list of [FileStoreOption]s that are applied to
// all [FileStore]s.
var GlobalFileStoreOptions []FileStoreOption

// FileStoreOption is an option for configuring a [FileStore].
type FileStoreOption interface {
	apply(*fileStoreOptions)
}

// funcFileStoreOption is a [FileStoreOption] that calls a function. It is
// used to wrap a function, so it satisfies the [FileStoreOption] interface.
type funcFileStoreOption struct {
	f func(*fileStoreOptions)
}

func (fdo *funcFileStoreOption) apply(opts *fileStoreOptions) {
	fdo.f(opts)
}

func newFuncFileStoreOption(f func(*fileStoreOptions)) *funcFileStoreOption {
	return &funcFileStoreOption{
		f: f,
	}
}

// WithFileStoreLogger returns a [FileStoreOption] that uses the provided logger.
func WithFileStoreLogger(logger *slog.Logger) FileStoreOption {
	return newFuncFileStoreOption(func(opts *fileStoreOptions) {
		opts.Logger = logger
	})
}

// WithFileStorePath returns a [FileStoreOption] that uses the provided file path.
func WithFileStorePath(path string) FileStoreOption {
	return newFuncFileStoreOption(func(opts *fileStoreOptions) {
		opts.Path = path
	})
}

// WithFileStoreNow returns a [FileStoreOption] that uses the provided clock.
func WithFileStoreNow(now func() time.Time) FileStoreOption {
	return newFuncFileStoreOption(func(opts *fileStoreOptions) {
		opts.Now = now
	})
}
