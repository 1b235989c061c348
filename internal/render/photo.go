package render

import (
	"fmt"
	"math/rand"

	"github.com/fogleman/gg"

	"github.com/runnerr0/patina/internal/layout"
)

// WritePhoto renders a placeholder photograph: a tinted field with soft
// shapes and a caption, enough for thumbnailers and metadata scanners to
// treat the file as a real image. All color and placement draws come
// from rng.
func WritePhoto(path, caption string, width, height int, rng *rand.Rand) error {
	if err := layout.EnsureParent(path); err != nil {
		return err
	}

	dc := gg.NewContext(width, height)

	dc.SetRGB(0.2+0.6*rng.Float64(), 0.2+0.6*rng.Float64(), 0.2+0.6*rng.Float64())
	dc.Clear()

	for i := 0; i < 6; i++ {
		dc.SetRGBA(rng.Float64(), rng.Float64(), rng.Float64(), 0.3)
		x := rng.Float64() * float64(width)
		y := rng.Float64() * float64(height)
		radius := 20 + rng.Float64()*float64(height)/3
		dc.DrawCircle(x, y, radius)
		dc.Fill()
	}

	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(caption, float64(width)/2, float64(height)-14, 0.5, 0.5)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("write photo %s: %w", path, err)
	}
	return nil
}
