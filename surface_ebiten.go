package sliderule

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	labelSourceOnce sync.Once
	labelSource     *text.GoTextFaceSource
	labelSourceErr  error
)

// loadLabelSource parses the embedded Go Regular font once.
func loadLabelSource() (*text.GoTextFaceSource, error) {
	labelSourceOnce.Do(func() {
		labelSource, labelSourceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if labelSourceErr != nil {
			labelSourceErr = fmt.Errorf("sliderule: failed to parse label font: %w", labelSourceErr)
		}
	})
	return labelSource, labelSourceErr
}

// ImageSurface draws onto an ebiten image. Circles and lines go through
// ebiten/v2/vector with anti-aliasing, labels through text/v2.
type ImageSurface struct {
	transformStack
	dst   *ebiten.Image
	faces map[float64]*text.GoTextFace
}

// NewImageSurface wraps dst. The label font is parsed once per process.
func NewImageSurface(dst *ebiten.Image) (*ImageSurface, error) {
	if _, err := loadLabelSource(); err != nil {
		return nil, err
	}
	return &ImageSurface{
		transformStack: newTransformStack(),
		dst:            dst,
		faces:          make(map[float64]*text.GoTextFace),
	}, nil
}

// Image returns the destination image.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.dst
}

func (s *ImageSurface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *ImageSurface) Clear(c Color) {
	s.dst.Fill(c.RGBA())
}

func (s *ImageSurface) FillCircle(cx, cy, r float64, c Color) {
	x, y := s.cur.Apply(cx, cy)
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r*s.cur.LengthScale()), c.RGBA(), true)
}

func (s *ImageSurface) StrokeCircle(cx, cy, r, width float64, c Color) {
	x, y := s.cur.Apply(cx, cy)
	k := s.cur.LengthScale()
	vector.StrokeCircle(s.dst, float32(x), float32(y), float32(r*k), float32(width*k), c.RGBA(), true)
}

func (s *ImageSurface) Line(x0, y0, x1, y1, width float64, c Color) {
	ax, ay := s.cur.Apply(x0, y0)
	bx, by := s.cur.Apply(x1, y1)
	vector.StrokeLine(s.dst, float32(ax), float32(ay), float32(bx), float32(by),
		float32(width*s.cur.LengthScale()), c.RGBA(), true)
}

// face returns a cached face for size. Sizes repeat every frame (one per
// zoom layer), so the cache stays small.
func (s *ImageSurface) face(size float64) *text.GoTextFace {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: labelSource, Size: size}
	s.faces[size] = f
	return f
}

func (s *ImageSurface) MeasureText(str string, size float64) float64 {
	if size <= 0 {
		return 0
	}
	w, _ := text.Measure(str, s.face(size), 0)
	return w
}

func (s *ImageSurface) FillText(str string, x, y, size float64, c Color) {
	if size <= 0 || str == "" {
		return
	}
	f := s.face(size)
	// text/v2 positions the top of the line; move up to the baseline.
	m := s.cur.Mul(Translation(x, y-f.Metrics().HAscent))

	op := &text.DrawOptions{}
	op.GeoM.SetElement(0, 0, m[0])
	op.GeoM.SetElement(0, 1, m[2])
	op.GeoM.SetElement(0, 2, m[4])
	op.GeoM.SetElement(1, 0, m[1])
	op.GeoM.SetElement(1, 1, m[3])
	op.GeoM.SetElement(1, 2, m[5])
	op.ColorScale.ScaleWithColor(c.RGBA())
	text.Draw(s.dst, str, f, op)
}
