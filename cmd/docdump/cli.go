package main

import (
	"context"
	"io"

	"github.com/fwojciec/docdump"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Source  docdump.FileSource
	Builder docdump.DocumentBuilder
	Writer  docdump.ArtifactWriter
}

// BuildCmd handles the export operation.
type BuildCmd struct {
	Root       string
	OrderFile  string
	OutputPath string
}
