// Package denoise defines the denoiser boundary (spec.md §6): the renderer
// accumulates a noisy color buffer plus albedo and normal auxiliary
// buffers, then hands all three to an external AI denoiser. No denoising
// algorithm lives in this module; a real Denoiser is expected to wrap a
// library such as Intel Open Image Denoise via cgo or a subprocess.
package denoise

import "github.com/arborfall/pathtracer/pkg/core"

// Buffer is a width*height array of per-pixel Vec3 samples, row-major.
type Buffer struct {
	Width, Height int
	Data          []core.Vec3
}

// NewBuffer allocates a zeroed buffer of the given dimensions.
func NewBuffer(width, height int) Buffer {
	return Buffer{Width: width, Height: height, Data: make([]core.Vec3, width*height)}
}

func (b Buffer) At(x, y int) core.Vec3 {
	return b.Data[y*b.Width+x]
}

func (b Buffer) Set(x, y int, v core.Vec3) {
	b.Data[y*b.Width+x] = v
}

// Denoiser cleans a noisy color buffer using auxiliary albedo and normal
// buffers as guide images, matching the three-buffer contract the original
// renderer feeds to OIDN.
type Denoiser interface {
	Denoise(color, albedo, normal Buffer) (Buffer, error)
}

// Passthrough is a no-op Denoiser that returns the color buffer unchanged.
// It exists so a pipeline can be wired end-to-end before a real denoiser
// backend is available.
type Passthrough struct{}

func (Passthrough) Denoise(color, albedo, normal Buffer) (Buffer, error) {
	return color, nil
}
