// Package renderer turns a built scene into a raster image. The work
// is split by rows across a fixed number of goroutines; each pixel is
// a pure function of the immutable scene, so the output is identical
// for any worker count.
package renderer

import (
	"context"
	"image"
	"image/color"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sebostien/go-raytracer/pkg/scene"
)

// Renderer drives a full render pass over every pixel of the output.
type Renderer struct {
	scene   *scene.Scene
	workers int
	logger  *slog.Logger
}

// New creates a renderer. A non-positive worker count selects one
// worker per CPU.
func New(sc *scene.Scene, workers int, logger *slog.Logger) *Renderer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		scene:   sc,
		workers: workers,
		logger:  logger,
	}
}

// Render traces a primary ray through every pixel and returns the
// finished image. Rows are partitioned into contiguous chunks, one
// per worker; workers share the scene read-only and write disjoint
// rows of the image, so no synchronization is needed beyond the final
// join.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, error) {
	width := r.scene.Camera.Width
	height := r.scene.Camera.Height

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rt := NewRaytracer(r.scene)

	start := time.Now()
	r.logger.Info("render start",
		"width", width, "height", height,
		"objects", len(r.scene.Objects), "lights", len(r.scene.Lights),
		"workers", r.workers)

	chunk := (height + r.workers - 1) / r.workers

	g, ctx := errgroup.WithContext(ctx)
	for startRow := 0; startRow < height; startRow += chunk {
		startRow := startRow
		endRow := min(startRow+chunk, height)

		g.Go(func() error {
			for j := startRow; j < endRow; j++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				r.renderRow(rt, img, j)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.logger.Info("render done", "elapsed", time.Since(start))
	return img, nil
}

// renderRow traces every pixel of row j into the image.
func (r *Renderer) renderRow(rt *Raytracer, img *image.RGBA, j int) {
	for i := 0; i < r.scene.Camera.Width; i++ {
		ray := r.scene.Camera.RayThrough(i, j)
		c := rt.Trace(ray, 0)

		cr, cg, cb, ca := c.RGBA8()
		img.SetRGBA(i, j, color.RGBA{R: cr, G: cg, B: cb, A: ca})
	}
}
