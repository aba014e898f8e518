// SPDX-FileCopyrightText: 2025 TechAir Media <ops@techair.media>
//
// SPDX-License-Identifier: AGPL-3.0-only

package quota

import (
	"log/slog"
	"time"

	"github.com/techair/mediakit"
)

// DefaultMonthlyCap bounds generation calls per month. At current Imagen
// pricing this keeps worst-case spend well inside the free-trial credit.
const DefaultMonthlyCap = 2500

// Gate enforces the monthly generation budget
type Gate struct {
	options *gateOptions
}

// NewGate creates a new [Gate].
func NewGate(options ...GateOption) (*Gate, error) {
	opts := defaultGateOptions
	for _, opt := range GlobalGateOptions {
		opt.apply(&opts)
	}
	for _, opt := range options {
		opt.apply(&opts)
	}

	if opts.Store == nil {
		store, err := NewFileStore(WithFileStoreLogger(opts.Logger))
		if err != nil {
			return nil, err
		}
		opts.Store = store
	}

	return &Gate{
		options: &opts,
	}, nil
}

type gateOptions struct {
	Logger *slog.Logger
	Store  mediakit.UsageStore
	Cap    int
	Now    func() time.Time
}

var defaultGateOptions = gateOptions{
	Logger: slog.Default(),
	Cap:    DefaultMonthlyCap,
	Now:    time.Now,
}

// GlobalGateOptions is a list of [GateOption]s that are applied to all [Gate]s.
var GlobalGateOptions []GateOption

// GateOption is an option for configuring a [Gate].
type GateOption interface {
	apply(*gateOptions)
}

// funcGateOption is a [GateOption] that calls a function. It is used to wrap
// a function, so it satisfies the [GateOption] interface.
type funcGateOption struct {
	f func(*gateOptions)
}

func (fdo *funcGateOption) apply(opts *gateOptions) {
	fdo.f(opts)
}

func newFuncGateOption(f func(*gateOptions)) *funcGateOption {
	return &funcGateOption{
		f: f,
	}
}

// WithGateLogger returns a [GateOption] that uses the provided logger.
func WithGateLogger(logger *slog.Logger) GateOption {
	return newFuncGateOption(func(opts *gateOptions) {
		opts.Logger = logger
	})
}

// WithGateStore returns a [GateOption] that uses the provided usage store.
func WithGateStore(store mediakit.UsageStore) GateOption {
	return newFuncGateOption(func(opts *gateOptions) {
		opts.Store = store
	})
}

// WithGateCap returns a [GateOption] that uses the provided monthly cap.
func WithGateCap(limit int) GateOption {
	return newFuncGateOption(func(opts *gateOptions) {
		opts.Cap = limit
	})
}

// WithGateNow returns a [GateOption] that uses the provided clock.
func WithGateNow(now func() time.Time) GateOption {
	return newFuncGateOption(func(opts *gateOptions) {
		opts.Now = now
	})
}
