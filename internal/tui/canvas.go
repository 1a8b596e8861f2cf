package tui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/artist-gallery/internal/carousel"
	"github.com/handiism/artist-gallery/internal/model"
)

const halfBlock = '▀'

var (
	placeholderColor = color.RGBA{R: 0x2b, G: 0x2f, B: 0x36, A: 0xff}
	labelColor       = color.RGBA{R: 0xf1, G: 0xf3, B: 0xf5, A: 0xff}
	initialColor     = color.RGBA{R: 0x9a, G: 0xa0, B: 0xa6, A: 0xff}
	spinnerColor     = color.RGBA{R: 0x4e, G: 0xcd, B: 0xc4, A: 0xff}
)

type cell struct {
	r     rune
	fg    color.RGBA
	bg    color.RGBA
	hasBg bool
	owner int
}

// canvas is a grid of terminal cells that remembers which card painted
// each cell, so clicks can be mapped back to items.
type canvas struct {
	width  int
	height int
	cells  []cell
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: max(0, width), height: max(0, height)}
	c.cells = make([]cell, c.width*c.height)
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', owner: -1}
	}
	return c
}

func (c *canvas) set(x, y int, v cell) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = v
}

func (c *canvas) at(x, y int) cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return cell{r: ' ', owner: -1}
	}
	return c.cells[y*c.width+x]
}

// ownerAt returns the index of the card painted at (x, y), or -1.
func (c *canvas) ownerAt(x, y int) int {
	return c.at(x, y).owner
}

func (c *canvas) text(x, y int, s string, fg color.RGBA, bg color.RGBA, owner int) {
	for _, r := range s {
		c.set(x, y, cell{r: r, fg: fg, bg: bg, hasBg: true, owner: owner})
		x++
	}
}

// String renders the canvas, grouping runs of identically coloured cells.
func (c *canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		var prev cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(styleFor(prev).Render(run.String()))
			run.Reset()
		}
		for x := 0; x < c.width; x++ {
			cur := c.at(x, y)
			if x > 0 && (cur.fg != prev.fg || cur.bg != prev.bg || cur.hasBg != prev.hasBg) {
				flush()
			}
			run.WriteRune(cur.r)
			prev = cur
		}
		flush()
	}
	return b.String()
}

func styleFor(c cell) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c.fg.A != 0 {
		s = s.Foreground(hex(c.fg))
	}
	if c.hasBg {
		s = s.Background(hex(c.bg))
	}
	return s
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// dim scales a colour toward black by opacity.
func dim(c color.RGBA, opacity float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: 0xff,
	}
}

func rgba(c color.Color) color.RGBA {
	r, g, b, _ := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xff}
}

// card is everything needed to paint one item.
type card struct {
	layout  carousel.ItemLayout
	artist  model.Artist
	image   image.Image
	loading bool
}

// cardGeometry converts a layout into a cell rectangle. Horizontal
// foreshortening follows the card's rotation.
type cardGeometry struct {
	cellWidthPx float64
	baseCols    int
	baseRows    int
}

func (g cardGeometry) rect(l carousel.ItemLayout, canvasWidth, canvasHeight int) image.Rectangle {
	ratio := l.Transform.Scale / carousel.CenterScale
	turn := math.Abs(math.Cos(l.Transform.RotateY * math.Pi / 180))

	cols := max(2, int(math.Round(float64(g.baseCols)*ratio*turn)))
	rows := max(2, int(math.Round(float64(g.baseRows)*ratio)))

	center := canvasWidth/2 + int(math.Round(l.Transform.TranslateX/g.cellWidthPx))
	x0 := center - cols/2
	y0 := (canvasHeight - 1 - rows) / 2
	return image.Rect(x0, y0, x0+cols, y0+rows)
}

// paint draws cards in ascending stacking order so that higher cards
// cover lower ones.
func paint(width, height int, geo cardGeometry, cards []card, spinnerFrame string) *canvas {
	cv := newCanvas(width, height)

	sorted := make([]card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].layout.Stack < sorted[j].layout.Stack
	})

	for _, c := range sorted {
		r := geo.rect(c.layout, width, height)
		if r.Max.X < 0 || r.Min.X >= width {
			continue
		}
		switch {
		case c.image != nil:
			paintPortrait(cv, r, c)
		default:
			paintPlaceholder(cv, r, c, spinnerFrame)
		}
		if c.layout.Centered {
			paintLabel(cv, r, c)
		}
	}
	return cv
}

func paintPortrait(cv *canvas, r image.Rectangle, c card) {
	b := c.image.Bounds()
	cols, rows := r.Dx(), r.Dy()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			sx := b.Min.X + (2*x+1)*b.Dx()/(2*cols)
			top := b.Min.Y + (4*y+1)*b.Dy()/(4*rows)
			bottom := b.Min.Y + (4*y+3)*b.Dy()/(4*rows)
			cv.set(r.Min.X+x, r.Min.Y+y, cell{
				r:     halfBlock,
				fg:    dim(rgba(c.image.At(sx, top)), c.layout.Opacity),
				bg:    dim(rgba(c.image.At(sx, bottom)), c.layout.Opacity),
				hasBg: true,
				owner: c.layout.Index,
			})
		}
	}
}

func paintPlaceholder(cv *canvas, r image.Rectangle, c card, spinnerFrame string) {
	bg := dim(placeholderColor, c.layout.Opacity)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cv.set(x, y, cell{r: ' ', bg: bg, hasBg: true, owner: c.layout.Index})
		}
	}

	mark, fg := initial(c.artist.Name), dim(initialColor, c.layout.Opacity)
	if c.loading && spinnerFrame != "" {
		mark, fg = spinnerFrame, spinnerColor
	}
	midY := r.Min.Y + r.Dy()/2
	midX := r.Min.X + (r.Dx()-utf8.RuneCountInString(mark))/2
	cv.text(midX, midY, mark, fg, bg, c.layout.Index)
}

func paintLabel(cv *canvas, r image.Rectangle, c card) {
	name := truncate(c.artist.Name, max(r.Dx(), 12))
	x := r.Min.X + (r.Dx()-utf8.RuneCountInString(name))/2
	for _, ch := range name {
		cv.set(x, r.Max.Y, cell{r: ch, fg: labelColor, owner: c.layout.Index})
		x++
	}
}

func initial(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return "?"
	}
	return string(r)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}
