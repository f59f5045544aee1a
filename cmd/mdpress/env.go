package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/mdpress/mdpress"
)

// converterService is the slice of mdpress.Service the CLI depends on.
type converterService interface {
	Convert(ctx context.Context, input mdpress.Input) error
	ConvertToHTML(ctx context.Context, input mdpress.Input) (string, error)
	Close() error
}

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now        func() time.Time
	Stdout     io.Writer
	Stderr     io.Writer
	NewService func(opts ...mdpress.Option) converterService
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewService: func(opts ...mdpress.Option) converterService {
			return mdpress.New(opts...)
		},
	}
}
