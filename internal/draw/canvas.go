package draw

import (
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
	BlockEmpty     = ' '
)

// cell is what one terminal character shows: a glyph plus its colors.
type cell struct {
	ch rune
	fg color.RGBA
	bg color.RGBA
}

// Canvas is a colored drawing buffer with 2x vertical resolution using
// half-block characters. Game objects draw in logical coordinates that are
// scaled to the actual terminal size. Only cells that changed since the
// previous Render are written.
type Canvas struct {
	termWidth      int          // Actual terminal columns
	termHeight     int          // Actual terminal rows
	subPixelHeight int          // termHeight * 2
	pixels         []color.RGBA // Flat slice: [y * termWidth + x]; alpha 0 means empty
	prev           []cell       // Cells written by the last Render
	dirty          []bool       // Cells overwritten by text since the last Render
	forceRedraw    bool

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets for centering the render area.
	offsetCol int
	offsetRow int

	profile   termenv.Profile
	seqCache  map[color.RGBA]string
	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		profile:       termenv.ANSI256,
		seqCache:      make(map[color.RGBA]string),
	}
	c.allocate(termWidth, termHeight)
	return c
}

func (c *Canvas) allocate(termWidth, termHeight int) {
	if termWidth < 0 {
		termWidth = 0
	}
	if termHeight < 0 {
		termHeight = 0
	}
	c.termWidth = termWidth
	c.termHeight = termHeight
	c.subPixelHeight = termHeight * 2
	c.pixels = make([]color.RGBA, c.subPixelHeight*termWidth)
	c.prev = make([]cell, termHeight*termWidth)
	c.dirty = make([]bool, termHeight*termWidth)
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
	c.forceRedraw = true
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.allocate(termWidth, termHeight)
	}
}

// SetProfile selects the color profile used for escape sequences.
func (c *Canvas) SetProfile(p termenv.Profile) {
	if p != c.profile {
		c.profile = p
		clear(c.seqCache)
		c.forceRedraw = true
	}
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render write every cell.
func (c *Canvas) ForceRedraw() {
	c.forceRedraw = true
}

// MarkTextDirty records that text was written over width cells starting at
// the 1-based canvas position (col, row), so the next Render repaints them.
func (c *Canvas) MarkTextDirty(col, row, width int) {
	if row < 1 || row > c.termHeight {
		return
	}
	for x := col; x < col+width; x++ {
		if x >= 1 && x <= c.termWidth {
			c.dirty[(row-1)*c.termWidth+x-1] = true
		}
	}
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// FillRect fills a rectangle given in logical coordinates. Every rectangle
// that intersects the canvas covers at least one pixel, so small objects
// never vanish at low terminal resolutions.
func (c *Canvas) FillRect(x, y, w, h float64, col color.RGBA) {
	if col.A == 0 {
		col.A = 0xff
	}
	x0 := int(math.Floor(x * c.scaleX))
	x1 := int(math.Ceil((x + w) * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	y1 := int(math.Ceil((y + h) * c.scaleY))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, c.termWidth)
	y1 = min(y1, c.subPixelHeight)

	for py := y0; py < y1; py++ {
		row := c.pixels[py*c.termWidth : (py+1)*c.termWidth]
		for px := x0; px < x1; px++ {
			row[px] = col
		}
	}
}

// At returns the pixel color at actual pixel coordinates and whether it is set.
func (c *Canvas) At(px, py int) (color.RGBA, bool) {
	if px < 0 || px >= c.termWidth || py < 0 || py >= c.subPixelHeight {
		return color.RGBA{}, false
	}
	p := c.pixels[py*c.termWidth+px]
	return p, p.A != 0
}

// cellAt combines the two sub-pixels of a terminal cell into a glyph.
func (c *Canvas) cellAt(row, col int) cell {
	top := c.pixels[row*2*c.termWidth+col]
	bottom := c.pixels[(row*2+1)*c.termWidth+col]
	hasTop := top.A != 0
	hasBottom := bottom.A != 0

	switch {
	case hasTop && hasBottom && top == bottom:
		return cell{ch: BlockFull, fg: top}
	case hasTop && hasBottom:
		return cell{ch: BlockUpperHalf, fg: top, bg: bottom}
	case hasTop:
		return cell{ch: BlockUpperHalf, fg: top}
	case hasBottom:
		return cell{ch: BlockLowerHalf, fg: bottom}
	default:
		return cell{ch: BlockEmpty}
	}
}

// colorSeq returns the SGR parameters for c in the canvas profile.
func (c *Canvas) colorSeq(col color.RGBA, bg bool) string {
	key := col
	if bg {
		key.A = 0x01 // Distinguish background entries in the cache
	}
	if seq, ok := c.seqCache[key]; ok {
		return seq
	}
	seq := c.profile.FromColor(col).Sequence(bg)
	c.seqCache[key] = seq
	return seq
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render writes every changed cell to w.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			idx := row*c.termWidth + col
			cur := c.cellAt(row, col)
			if !c.forceRedraw && !c.dirty[idx] && c.prev[idx] == cur {
				continue
			}
			c.prev[idx] = cur
			c.dirty[idx] = false
			c.writeCell(row, col, cur)
		}
	}
	c.forceRedraw = false

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

func (c *Canvas) writeCell(row, col int, cur cell) {
	b := &c.renderBuf
	b.WriteString(termenv.CSI)
	b.Write(strconv.AppendInt(c.numBuf[:0], int64(row+1+c.offsetRow), 10))
	b.WriteByte(';')
	b.Write(strconv.AppendInt(c.numBuf[:0], int64(col+1+c.offsetCol), 10))
	b.WriteByte('H')

	if cur.ch == BlockEmpty {
		b.WriteRune(BlockEmpty)
		return
	}

	var params []string
	if seq := c.colorSeq(cur.fg, false); seq != "" {
		params = append(params, seq)
	}
	if cur.bg.A != 0 {
		if seq := c.colorSeq(cur.bg, true); seq != "" {
			params = append(params, seq)
		}
	}
	if len(params) == 0 {
		b.WriteRune(cur.ch)
		return
	}
	b.WriteString(termenv.CSI + strings.Join(params, ";") + "m")
	b.WriteRune(cur.ch)
	b.WriteString(termenv.CSI + termenv.ResetSeq + "m")
}

// LogicalWidth returns the logical width.
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height.
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based terminal position (col, row).
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}
