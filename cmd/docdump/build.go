package main

import (
	"fmt"

	"github.com/fwojciec/docdump"
)

// Run executes the build command: discover, build, assemble, write.
func (c *BuildCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "Building combined text export...")
	fmt.Fprintf(deps.Stdout, "Root directory: %s\n", c.Root)
	fmt.Fprintf(deps.Stdout, "Output file: %s\n", c.OutputPath)
	if c.OrderFile != "" {
		fmt.Fprintf(deps.Stdout, "Order file: %s\n", c.OrderFile)
	}

	paths, err := deps.Source.Discover(deps.Ctx, c.Root, c.OrderFile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdump.ErrorMessage(err))
		return err
	}

	if len(paths) == 0 {
		fmt.Fprintln(deps.Stdout, "No HTML files found!")
		return docdump.Errorf(docdump.ENOTFOUND, "no HTML files found under %s", c.Root)
	}

	fmt.Fprintf(deps.Stdout, "Processing %d HTML files...\n", len(paths))

	progress := func(p docdump.BuildProgress) {
		fmt.Fprintf(deps.Stdout, "Processing [%d/%d]: %s\n", p.Index, p.Total, p.RelPath)
	}

	docs, err := deps.Builder.BuildAll(deps.Ctx, c.Root, paths, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docdump.ErrorMessage(err))
		return err
	}

	content := docdump.BuildCombined(docs, len(paths))
	if err := deps.Writer.WriteArtifact(deps.Ctx, content); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing output: %v\n", err)
		return err
	}

	sections := len(docdump.TableOfContents(docs))
	fmt.Fprintf(deps.Stdout, "Combined text file written to: %s (%s)\n", c.OutputPath, docdump.FormatBytes(len(content)))
	fmt.Fprintf(deps.Stdout, "Total sections: %d\n", sections)

	return nil
}
