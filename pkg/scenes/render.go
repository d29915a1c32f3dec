package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/blockpuzzle/pkg/board"
	"github.com/decker502/blockpuzzle/pkg/config"
	"github.com/decker502/blockpuzzle/pkg/shapes"
	"github.com/decker502/blockpuzzle/pkg/utils"
)

var (
	backgroundColor = color.White
	textColor       = color.Black
)

// Renderer 场景共用的绘制资源，在 App 初始化时创建一次
type Renderer struct {
	Config *config.GameConfig
	Layout utils.GridLayout
	Fonts  *Fonts // 可为 nil，降级到 ebitenutil 调试字体
	Tiles  *TileCache
}

// NewRenderer 创建绘制资源
func NewRenderer(cfg *config.GameConfig, fonts *Fonts) *Renderer {
	return &Renderer{
		Config: cfg,
		Layout: utils.NewGridLayout(cfg.Grid.Size, cfg.Grid.CellSize),
		Fonts:  fonts,
		Tiles:  NewTileCache(),
	}
}

// RenderContext 一帧的绘制上下文
// 由场景在 Draw 中创建，传给各个绘制函数
type RenderContext struct {
	*Renderer
	Screen *ebiten.Image
}

// Begin 开始一帧绘制：清屏并返回绘制上下文
func (r *Renderer) Begin(screen *ebiten.Image) RenderContext {
	screen.Fill(backgroundColor)
	return RenderContext{Renderer: r, Screen: screen}
}

// DrawBoard 绘制棋盘：空格子白色，已填格子为对应颜色，每格灰色描边
func (ctx RenderContext) DrawBoard(view board.View) {
	size := ctx.Config.Grid.CellSize
	for r := 0; r < view.Size(); r++ {
		for c := 0; c < view.Size(); c++ {
			x, y := ctx.Layout.CellToScreen(r, c)
			ctx.drawTile(view.Cell(r, c), size, x, y)
		}
	}
}

// DrawShape 以 (x, y) 为左上角、cellSize 为格子边长绘制形状
func (ctx RenderContext) DrawShape(shape shapes.Shape, tag shapes.ColorTag, x, y, cellSize int) {
	for _, off := range shape.Cells() {
		ctx.drawTile(tag, cellSize, x+off.Col*cellSize, y+off.Row*cellSize)
	}
}

// DrawDragPreview 在悬停格子处按原尺寸绘制当前形状
// 超出棋盘的部分照常绘制
func (ctx RenderContext) DrawDragPreview(shape shapes.Shape, tag shapes.ColorTag, row, col int) {
	x, y := ctx.Layout.CellToScreen(row, col)
	ctx.DrawShape(shape, tag, x, y, ctx.Config.Grid.CellSize)
}

// DrawNextBlock 在侧边栏以半尺寸绘制当前形状，上方是 "Next Block" 标签
func (ctx RenderContext) DrawNextBlock(shape shapes.Shape, tag shapes.ColorTag) {
	x, y := ctx.Config.PreviewOrigin()
	ctx.DrawShape(shape, tag, x, y, ctx.Config.Grid.CellSize/2)
	ctx.DrawText("Next Block", x, y-ctx.Config.Sidebar.LabelGap)
}

// DrawText 以普通字号在 (x, y) 绘制黑色文字
func (ctx RenderContext) DrawText(s string, x, y int) {
	if ctx.Fonts == nil {
		ebitenutil.DebugPrintAt(ctx.Screen, s, x, y)
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(ctx.Screen, s, ctx.Fonts.Normal, op)
}

// DrawCenteredText 在窗口水平居中绘制文字
//
// 参数：
//   - large: 是否使用标题字号
func (ctx RenderContext) DrawCenteredText(s string, y int, large bool) {
	centerX := ctx.Config.Window.Width / 2
	if ctx.Fonts == nil {
		// 调试字体每个字符 6 像素宽
		ebitenutil.DebugPrintAt(ctx.Screen, s, centerX-len(s)*3, y)
		return
	}

	face := ctx.Fonts.Normal
	if large {
		face = ctx.Fonts.Large
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(centerX), float64(y))
	op.ColorScale.ScaleWithColor(textColor)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(ctx.Screen, s, face, op)
}

func (ctx RenderContext) drawTile(tag shapes.ColorTag, size, x, y int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	ctx.Screen.DrawImage(ctx.Tiles.Tile(tag, size), op)
}
