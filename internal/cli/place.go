package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/brickpath/config"
	"github.com/npillmayer/brickpath/export"
	"github.com/npillmayer/brickpath/pipeline"
	"github.com/npillmayer/brickpath/polygon"
	"github.com/spf13/cobra"
)

type placeOptions struct {
	formats string
	output  string
}

func newPlaceCmd() *cobra.Command {
	opts := placeOptions{}
	cmd := &cobra.Command{
		Use:   "place <design.toml>",
		Short: "Compute a wall and export it",
		Long: `Compute the bricks of a design and write them in one or more formats.
Each format is written to <output>.<format>; the output base defaults to the
design file name without extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlace(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.formats, "format", "f", export.FormatJSON,
		"output formats, comma separated (json, obj, dxf, pdf, xlsx)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path")
	return cmd
}

func runPlace(ctx context.Context, path string, opts placeOptions) error {
	logger := loggerFromContext(ctx)
	formats, err := export.ParseFormats(opts.formats)
	if err != nil {
		return err
	}
	result, err := compute(ctx, path)
	if err != nil {
		return err
	}
	base := opts.output
	if base == "" {
		base = strings.TrimSuffix(path, filepath.Ext(path))
	}
	for _, format := range formats {
		out := base + "." + format
		prog := newProgress(logger)
		if err := write(format, out, result); err != nil {
			return fmt.Errorf("%s: %w", out, err)
		}
		prog.done("exported", "format", format, "file", out)
	}
	return nil
}

// compute loads a design and runs the pipeline on it.
func compute(ctx context.Context, path string) (*pipeline.Result, error) {
	logger := loggerFromContext(ctx)
	d, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	s, err := d.Snapshot()
	if err != nil {
		return nil, err
	}
	logger.Debug("design loaded", "points", len(s.Points), "params", s.Params.String())
	prog := newProgress(logger)
	result, err := pipeline.Run(s)
	if err != nil {
		return nil, err
	}
	prog.done("wall computed",
		"id", result.ID.String()[:8],
		"length", fmt.Sprintf("%.3f", result.Curve.Length()),
		"bricks", result.Stats.Kept,
		"placed", result.Stats.Placed)
	return result, nil
}

func write(format, path string, r *pipeline.Result) error {
	if format == export.FormatDXF {
		return export.WriteDXF(path, r.Transforms, r.Outline(0))
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeTo(format, f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeTo(format string, w io.Writer, r *pipeline.Result) error {
	switch format {
	case export.FormatJSON:
		return export.WriteJSON(w, r.ID, r.Transforms)
	case export.FormatOBJ:
		return export.WriteOBJ(w, r.Transforms, "wall_"+r.ID.String()[:8])
	case export.FormatPDF:
		sheet := export.PlanSheet{
			Title: "Brick wall " + r.ID.String()[:8],
			Notes: fmt.Sprintf("%d of %d bricks, curve length %.3f",
				r.Stats.Kept, r.Stats.Placed, r.Curve.Length()),
		}
		return export.WritePDF(w, r.Transforms, r.Outline(polygon.AllRows), sheet)
	case export.FormatXLSX:
		return export.WriteSchedule(w, r.Rows)
	}
	return fmt.Errorf("unknown export format %q", format)
}
