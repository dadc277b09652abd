// Implements a raster backend to preview SVG images,
// by wrapping oksvg and rasterx.
package svgraster

import (
	"errors"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// supersampling is the factor applied to the target size
// before scaling down the rendered image.
const supersampling = 2

// ErrEmptyViewBox is returned for icons without a drawable area.
var ErrEmptyViewBox = errors.New("svgraster: icon has an empty view box")

// RasterSVGIconToImage renders the icon into an image `scale` times
// as large as its view box, and returns it.
// A non positive scale is interpreted as 1.
func RasterSVGIconToImage(icon io.Reader, scale float64) (*image.RGBA, error) {
	if scale <= 0 {
		scale = 1
	}
	parsedIcon, err := oksvg.ReadIconStream(icon, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}
	w := int(math.Ceil(parsedIcon.ViewBox.W * scale))
	h := int(math.Ceil(parsedIcon.ViewBox.H * scale))
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyViewBox
	}

	sw, sh := w*supersampling, h*supersampling
	large := image.NewRGBA(image.Rect(0, 0, sw, sh))
	parsedIcon.SetTarget(0, 0, float64(sw), float64(sh))
	scanner := rasterx.NewScannerGV(sw, sh, large, large.Bounds())
	dasher := rasterx.NewDasher(sw, sh, scanner)
	parsedIcon.Draw(dasher, 1.0)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(img, img.Bounds(), large, large.Bounds(), draw.Over, nil)
	return img, nil
}

// WritePNG renders the icon as with RasterSVGIconToImage
// and encodes it to `out` as a PNG image.
func WritePNG(out io.Writer, icon io.Reader, scale float64) error {
	img, err := RasterSVGIconToImage(icon, scale)
	if err != nil {
		return err
	}
	return png.Encode(out, img)
}
