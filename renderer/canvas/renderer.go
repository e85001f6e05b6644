package canvasrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"strconv"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ByLCY/keylegend/fonts"
	"github.com/ByLCY/keylegend/legend"
	"github.com/ByLCY/keylegend/renderer"
)

// One canvas unit is one millimetre; rasterizing at 1 dot per millimetre
// makes it one pixel.
const (
	mmToPt        = 72.0 / 25.4
	pixelsPerUnit = 1.0
	borderWidth   = 1.0
)

// Format selects the output encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// ParseFormat accepts "png" or "pdf".
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPNG, FormatPDF:
		return Format(s), nil
	default:
		return "", fmt.Errorf("不支持的输出格式 %q（可选 png、pdf）", s)
	}
}

// Renderer draws legend sheets via github.com/tdewolff/canvas.
type Renderer struct {
	format    Format
	fontName  string
	fontBytes []byte

	family *canvas.FontFamily
}

var _ renderer.Renderer = (*Renderer)(nil)

// Options configures the canvas renderer.
type Options struct {
	Format    Format // defaults to PNG
	Font      string // bundled font name, see fonts.Names
	FontBytes []byte // takes precedence over Font
}

// FontLoadError is returned when the legend font cannot be decoded.
type FontLoadError struct {
	Font string
	Err  error
}

func (e *FontLoadError) Error() string {
	return fmt.Sprintf("加载字体 %s 失败: %v", e.Font, e.Err)
}

func (e *FontLoadError) Unwrap() error { return e.Err }

// NewRenderer creates a renderer; the font is loaded on first use.
func NewRenderer(opts Options) *Renderer {
	format := opts.Format
	if format == "" {
		format = FormatPNG
	}
	return &Renderer{
		format:    format,
		fontName:  opts.Font,
		fontBytes: opts.FontBytes,
	}
}

// Render renders the sheet into PNG or PDF bytes.
func (r *Renderer) Render(sheet *legend.Sheet) ([]byte, error) {
	c, err := r.Draw(sheet)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch r.format {
	case FormatPDF:
		writer := pdf.New(&buf, float64(sheet.Width), float64(sheet.Height), nil)
		writer.SetInfo("Keyboard legend", "uid "+strconv.FormatUint(sheet.Source.UID, 10), "vial, keymap", "", "keylegend")
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("写入 PDF 失败: %w", err)
		}
	default:
		if err := png.Encode(&buf, r.rasterize(c)); err != nil {
			return nil, fmt.Errorf("编码 PNG 失败: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// Rasterize draws the sheet into an RGBA image, one pixel per unit.
func (r *Renderer) Rasterize(sheet *legend.Sheet) (*image.RGBA, error) {
	c, err := r.Draw(sheet)
	if err != nil {
		return nil, err
	}
	return r.rasterize(c), nil
}

func (r *Renderer) rasterize(c *canvas.Canvas) *image.RGBA {
	return rasterizer.Draw(c, canvas.DPMM(pixelsPerUnit), canvas.DefaultColorSpace)
}

// Draw builds the vector canvas for a sheet.
func (r *Renderer) Draw(sheet *legend.Sheet) (*canvas.Canvas, error) {
	if sheet == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if sheet.Width <= 0 || sheet.Height <= 0 {
		return nil, fmt.Errorf("画布尺寸无效: %dx%d", sheet.Width, sheet.Height)
	}
	family, err := r.ensureFontFamily()
	if err != nil {
		return nil, err
	}

	w, h := float64(sheet.Width), float64(sheet.Height)
	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与图例保持左上角为原点
	ctx.SetStrokeColor(color.RGBA{0, 0, 0, 0})

	fillRect(ctx, 0, 0, w, h, sheet.Background)
	for _, key := range sheet.Keys {
		drawKey(ctx, key)
		for _, tb := range key.Texts {
			drawText(ctx, family, tb)
		}
	}
	return c, nil
}

// drawKey 绘制内缩 1px 的填充区与四条 1px 边框。
func drawKey(ctx *canvas.Context, key legend.Key) {
	x, y := math.Trunc(key.Rect.X), math.Trunc(key.Rect.Y)
	w, h := math.Trunc(key.Rect.Width), math.Trunc(key.Rect.Height)

	fillRect(ctx, x+borderWidth, y+borderWidth, w-2*borderWidth, h-2*borderWidth, key.Fill)

	fillRect(ctx, x, y, w, borderWidth, key.Border)               // top
	fillRect(ctx, x, y+h-borderWidth, w, borderWidth, key.Border) // bottom
	fillRect(ctx, x, y, borderWidth, h, key.Border)               // left
	fillRect(ctx, x+w-borderWidth, y, borderWidth, h, key.Border) // right
}

func drawText(ctx *canvas.Context, family *canvas.FontFamily, tb legend.TextBox) {
	if tb.Content == "" {
		return
	}
	face := family.Face(tb.Scale*mmToPt, colorFromLegend(tb.Color), canvas.FontRegular, canvas.FontNormal)
	line := canvas.NewTextLine(face, tb.Content, canvas.Left)
	// 基线位置：以行顶部加上字体上升部
	baseline := tb.Y + face.Metrics().Ascent
	ctx.DrawText(tb.X, baseline, line)
}

func fillRect(ctx *canvas.Context, x, y, w, h float64, col legend.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	ctx.SetFillColor(colorFromLegend(col))
	ctx.DrawPath(x, y, canvas.Rectangle(w, h))
}

func (r *Renderer) ensureFontFamily() (*canvas.FontFamily, error) {
	if r.family != nil {
		return r.family, nil
	}
	name := r.fontName
	data := r.fontBytes
	if len(data) == 0 {
		if name == "" {
			name = fonts.Default
		}
		var err error
		if data, err = fonts.Load(name); err != nil {
			return nil, &FontLoadError{Font: name, Err: err}
		}
	} else if name == "" {
		name = "custom"
	}

	family := canvas.NewFontFamily("keylegend")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, &FontLoadError{Font: name, Err: err}
	}
	r.family = family
	return family, nil
}

func colorFromLegend(c legend.Color) color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
