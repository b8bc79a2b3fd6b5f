package pick

import (
	"image"
	"math"
	"runtime"

	"github.com/remeh/sizedwaitgroup"
)

// wheelMargin is the inner margin between the disc and the raster edge. The
// band outside the disc is faded over the same two pixels.
const wheelMargin = 2

// wheelRaster holds the pixel buffer for a color wheel at one brightness
// along with the per-pixel saturation/hue/alpha lookup tables. Saturation maps
// to radial distance and hue to the angle, counter-clockwise from the
// positive x axis. The raster is regenerated whenever the size or the
// brightness changes and cached otherwise.
type wheelRaster struct {
	width, height int
	brightness    float64

	sat   []float32
	hue   []float32
	alpha []uint8
	pix   []uint32 // packed ARGB
}

func newWheelRaster(w, h int, brightness float64) *wheelRaster {
	n := w * h
	wr := &wheelRaster{
		width:      w,
		height:     h,
		brightness: brightness,
		sat:        make([]float32, n),
		hue:        make([]float32, n),
		alpha:      make([]uint8, n),
		pix:        make([]uint32, n),
	}
	wr.generateLookupTables()
	wr.synthesize()
	return wr
}

func (wr *wheelRaster) radius() float64 {
	m := wr.width
	if wr.height < m {
		m = wr.height
	}
	return float64(m)/2 - wheelMargin
}

func (wr *wheelRaster) generateLookupTables() {
	radius := wr.radius()
	// blend spans the antialiasing band of wheelMargin extra pixels.
	blend := (radius+wheelMargin)/radius - 1
	cx := wr.width / 2
	cy := wr.height / 2

	for x := 0; x < wr.width; x++ {
		kx := x - cx
		sqkx := kx * kx
		for y := 0; y < wr.height; y++ {
			ky := cy - y // flip so the math angle convention applies
			i := x + y*wr.width
			s := math.Sqrt(float64(sqkx+ky*ky)) / radius
			if s <= 1 {
				wr.alpha[i] = 0xff
			} else {
				wr.alpha[i] = uint8((blend - math.Min(blend, s-1)) * 255 / blend)
				s = 1
			}
			wr.sat[i] = float32(s)
			if wr.alpha[i] != 0 {
				wr.hue[i] = float32(math.Atan2(float64(ky), float64(kx)) / (2 * math.Pi))
			}
		}
	}
}

// synthesize fills the pixel buffer from the lookup tables. Rows are
// independent, so they are fanned out across the CPUs.
func (wr *wheelRaster) synthesize() {
	wg := sizedwaitgroup.New(runtime.NumCPU())
	for y := 0; y < wr.height; y++ {
		wg.Add()
		go func(y int) {
			defer wg.Done()
			for x := 0; x < wr.width; x++ {
				i := x + y*wr.width
				if wr.alpha[i] == 0 {
					continue
				}
				r, g, b := HSBToRGB(float64(wr.hue[i]), float64(wr.sat[i]), wr.brightness)
				wr.pix[i] = uint32(wr.alpha[i])<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
			}
		}(y)
	}
	wg.Wait()
}

// image converts the packed buffer to a straight-alpha image for display.
func (wr *wheelRaster) image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, wr.width, wr.height))
	for i, p := range wr.pix {
		img.Pix[i*4+0] = uint8(p >> 16)
		img.Pix[i*4+1] = uint8(p >> 8)
		img.Pix[i*4+2] = uint8(p)
		img.Pix[i*4+3] = uint8(p >> 24)
	}
	return img
}

// pointerHueSat maps a pointer position to hue and saturation given the wheel
// center and the wheel bounding-box size. Saturation may exceed 1 when the
// pointer is outside the disc; a press there is rejected while a drag clamps,
// so callers decide.
func pointerHueSat(x, y, mx, my, size float64) (hue, sat float64) {
	sat = math.Hypot(x-mx, y-my) / (size / 2)
	hue = -math.Atan2(y-my, x-mx) / (2 * math.Pi)
	if hue < 0 {
		hue++
	}
	return hue, sat
}

// markerPosition is the inverse of pointerHueSat: the pixel at which the
// marker for (hue, sat) is painted inside a width x height wheel centered at
// (mx, my).
func markerPosition(hue, sat, mx, my, width, height float64) (x, y float64) {
	th := hue * 2 * math.Pi
	x = mx + width*sat/2*math.Cos(th)
	y = my - height*sat/2*math.Sin(th)
	return x, y
}
