// Converts SVG files, or whole directories of SVG files,
// to vector drawables written in an output directory.
package batch

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/benoitkugler/svg2avd/avd"
	"github.com/benoitkugler/svg2avd/svgraster"
)

const (
	svgExt     = ".svg"
	xmlExt     = ".xml"
	previewExt = ".png"
)

// Converter converts files with the same options.
// Its zero value is usable.
type Converter struct {
	Options avd.Options

	// Recursive walks the sub directories of the input,
	// reproducing their layout in the output directory.
	Recursive bool

	// Workers is the number of parallel conversions.
	// Zero means runtime.NumCPU().
	Workers int

	// Preview also writes a PNG rendering of each source file,
	// PreviewScale times as large as its view box.
	Preview      bool
	PreviewScale float64

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// Report counts the converted and failed files.
type Report struct {
	Converted, Failed int
}

func (c *Converter) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

func (c *Converter) workers() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

// outputPath returns the path of the drawable for the source `rel`,
// relative to the input directory.
func outputPath(outDir, rel string) string {
	return filepath.Join(outDir, strings.TrimSuffix(rel, filepath.Ext(rel))+xmlExt)
}

func isSVG(name string) bool {
	return strings.EqualFold(filepath.Ext(name), svgExt)
}

// ConvertFile converts the SVG file `src` and writes the
// result to `dst`, creating its directory if needed.
func (c *Converter) ConvertFile(src, dst string) error {
	svg, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	out, err := avd.ConvertBytes(svg, c.Options)
	if err != nil {
		return fmt.Errorf("converting %s: %w", src, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return err
	}
	if c.Preview {
		// the drawable is usable even without its preview
		if err := c.writePreview(svg, strings.TrimSuffix(dst, xmlExt)+previewExt); err != nil {
			c.logger().Warn("preview not written", "file", src, "error", err)
		}
	}
	return nil
}

func (c *Converter) writePreview(svg []byte, dst string) error {
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := svgraster.WritePNG(f, bytes.NewReader(svg), c.PreviewScale); err != nil {
		f.Close()
		os.Remove(dst)
		return fmt.Errorf("rendering preview %s: %w", dst, err)
	}
	return f.Close()
}

// listSources returns the SVG files of `dir`, relative to it.
func (c *Converter) listSources(dir string) ([]string, error) {
	var sources []string
	if !c.Recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if !entry.IsDir() && isSVG(entry.Name()) {
				sources = append(sources, entry.Name())
			}
		}
		return sources, nil
	}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSVG(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		sources = append(sources, rel)
		return nil
	})
	return sources, err
}

// Run converts `input`, which may be a single SVG file or a directory,
// writing the drawables into `outDir`.
// A single file failing to convert is an error; in a directory,
// failures are logged and counted in the report.
func (c *Converter) Run(ctx context.Context, input, outDir string) (Report, error) {
	info, err := os.Stat(input)
	if err != nil {
		return Report{}, err
	}
	if !info.IsDir() {
		dst := outputPath(outDir, filepath.Base(input))
		if err := c.ConvertFile(input, dst); err != nil {
			return Report{Failed: 1}, err
		}
		c.logger().Info("converted single file", "file", filepath.Base(input), "output", dst)
		return Report{Converted: 1}, nil
	}
	return c.runDir(ctx, input, outDir)
}

func (c *Converter) runDir(ctx context.Context, dir, outDir string) (Report, error) {
	sources, err := c.listSources(dir)
	if err != nil {
		return Report{}, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Report{}, err
	}

	var converted, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers())
	for _, rel := range sources {
		if gctx.Err() != nil {
			break
		}
		rel := rel
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			err := c.ConvertFile(filepath.Join(dir, rel), outputPath(outDir, rel))
			if err != nil {
				failed.Add(1)
				c.logger().Error("failed to convert", "file", rel, "error", err)
				return nil
			}
			converted.Add(1)
			c.logger().Info("converted", "file", rel)
			return nil
		})
	}
	err = g.Wait()

	report := Report{Converted: int(converted.Load()), Failed: int(failed.Load())}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return report, ctxErr
	}
	if err != nil {
		return report, err
	}
	c.logger().Info("conversion complete", "converted", report.Converted, "failed", report.Failed)
	return report, nil
}
