package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/layerviz/layersvg/pkg/cache"
	"github.com/layerviz/layersvg/pkg/scene"
	"github.com/layerviz/layersvg/pkg/writer"
)

const (
	defaultScale = 2.0 // PNG raster scale factor

	// Converted PNG/PDF artifacts are keyed by the scene bytes, so a stale
	// entry can only be served for a byte-identical scene. The TTL just
	// bounds disk usage.
	artifactTTL = 7 * 24 * time.Hour
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output  string   // output file path (or base path for multiple formats)
	formats []string // output formats: "svg", "png", "pdf"
	scale   float64  // raster scale factor for PNG output
	noCache bool     // bypass the artifact cache
}

// newExportCmd creates the export command for rendering scenes to files.
//
// Default settings:
//   - format: svg
//   - scale: 2.0 (PNG only)
//   - caching: enabled for PNG/PDF conversion results
func newExportCmd() *cobra.Command {
	var formatsStr string
	opts := exportOpts{scale: defaultScale}

	cmd := &cobra.Command{
		Use:   "export [scene]",
		Short: "Render a scene file to SVG, PNG, or PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runExport(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale factor for PNG output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the PNG/PDF artifact cache")

	return cmd
}

// validFormats is the set of supported export formats.
var validFormats = map[string]bool{"svg": true, "png": true, "pdf": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg', 'png', or 'pdf')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output carries a
// known format extension, that extension is stripped so per-format suffixes
// can be appended.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runExport loads the scene, renders the SVG document once, and writes it
// out in every requested format. PNG and PDF conversion results are cached
// keyed by the scene bytes and export options.
func runExport(ctx context.Context, input string, opts *exportOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	logger.Infof("Exporting %s", input)

	raw, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	layers, err := scene.Parse(raw, filepath.Dir(input))
	if err != nil {
		return err
	}
	logger.Infof("Loaded scene: %d layers", len(layers))

	doc, err := writer.Render(layers)
	if err != nil {
		return err
	}
	logger.Debugf("Rendered SVG document: %d bytes", len(doc))

	store, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		if err := exportFormat(ctx, store, raw, []byte(doc), base, format, opts); err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}
	}

	prog.done(fmt.Sprintf("Exported %d layers to %d format(s)", len(layers), len(opts.formats)))
	return nil
}

// exportFormat materializes one output format. SVG is written directly;
// PNG and PDF go through the artifact cache and rsvg-convert on a miss.
func exportFormat(ctx context.Context, store cache.Cache, sceneBytes, doc []byte, base, format string, opts *exportOpts) error {
	logger := loggerFromContext(ctx)
	path := base + "." + format

	if format == "svg" {
		if err := os.WriteFile(path, doc, 0o644); err != nil {
			return err
		}
		printArtifact(path, len(doc), false)
		return nil
	}

	key := cache.ArtifactKey(sceneBytes, cache.ArtifactOpts{Format: format, Scale: opts.scale})
	data, cached, err := store.Get(ctx, key)
	if err != nil {
		logger.Debugf("Cache lookup failed: %v", err)
	}
	if !cached {
		sp := newSpinnerWithContext(ctx, fmt.Sprintf("Converting to %s...", strings.ToUpper(format)))
		sp.Start()
		switch format {
		case "png":
			data, err = writer.ToPNG(doc, opts.scale)
		case "pdf":
			data, err = writer.ToPDF(doc)
		}
		sp.Stop()
		if err != nil {
			return err
		}
		if err := store.Set(ctx, key, data, artifactTTL); err != nil {
			logger.Debugf("Cache store failed: %v", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	printArtifact(path, len(data), cached)
	return nil
}
