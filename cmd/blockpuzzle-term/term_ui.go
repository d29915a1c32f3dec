package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/blockpuzzle/pkg/game"
	"github.com/decker502/blockpuzzle/pkg/shapes"
	"github.com/decker502/blockpuzzle/pkg/utils"
)

// 终端布局：每个格子 2 列宽、1 行高
const (
	boardOriginX = 2
	boardOriginY = 2
	cellWidth    = 2
	sidebarGap   = 4
)

var (
	emptyStyle  = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault
	titleStyle  = tcell.StyleDefault.Bold(true)
	cursorStyle = tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorBlack)
)

// termUI 终端前端
//
// 键盘：方向键移动锚点光标，回车或空格放置，q/Esc 退出。
// 鼠标：在棋盘内按下开始拖拽，释放处的格子为锚点。
type termUI struct {
	screen  tcell.Screen
	session *game.Session
	drag    *utils.DragTracker

	cursorRow, cursorCol int

	hold       time.Duration
	gameOverAt time.Time
	now        func() time.Time
}

func newTermUI(screen tcell.Screen, session *game.Session, hold time.Duration) *termUI {
	size := session.Board().Size()
	u := &termUI{
		screen:  screen,
		session: session,
		// 拖拽跟踪器使用逻辑坐标（1 单位 = 1 格），由 cellAt 换算
		drag: utils.NewDragTracker(utils.GridLayout{Size: size, CellSize: 1}),
		hold: hold,
		now:  time.Now,
	}
	session.SetGameOverHandler(func(summary game.Summary) {
		u.gameOverAt = u.now()
		log.Printf("[Term] Game over, score=%d highScore=%d", summary.Score, summary.HighScore)
	})
	return u
}

// cellAt 将终端坐标换算为逻辑格子坐标，棋盘外不截断
func (u *termUI) cellAt(x, y int) (row, col int) {
	return y - boardOriginY, utils.FloorDiv(x-boardOriginX, cellWidth)
}

// handleEvent 处理一个终端事件，返回是否退出
func (u *termUI) handleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventKey:
		return u.handleKey(e)
	case *tcell.EventMouse:
		u.handleMouse(e)
	}
	return false
}

func (u *termUI) handleKey(e *tcell.EventKey) bool {
	if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
		return true
	}
	if e.Key() == tcell.KeyRune && (e.Rune() == 'q' || e.Rune() == 'Q') {
		return true
	}
	if !u.session.Running() {
		return false
	}

	size := u.session.Board().Size()
	switch e.Key() {
	case tcell.KeyUp:
		u.cursorRow = max(u.cursorRow-1, 0)
	case tcell.KeyDown:
		u.cursorRow = min(u.cursorRow+1, size-1)
	case tcell.KeyLeft:
		u.cursorCol = max(u.cursorCol-1, 0)
	case tcell.KeyRight:
		u.cursorCol = min(u.cursorCol+1, size-1)
	case tcell.KeyEnter:
		u.attempt(u.cursorRow, u.cursorCol)
	case tcell.KeyRune:
		if e.Rune() == ' ' {
			u.attempt(u.cursorRow, u.cursorCol)
		}
	}
	return false
}

func (u *termUI) handleMouse(e *tcell.EventMouse) {
	if !u.session.Running() {
		return
	}

	row, col := u.cellAt(e.Position())
	pressed := e.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !u.drag.IsDragging():
		u.drag.Press(col, row)
	case pressed:
		u.drag.Move(col, row)
	case u.drag.IsDragging():
		if r, c, ok := u.drag.Release(col, row); ok {
			u.attempt(r, c)
		}
	}

	if hr, hc, ok := u.drag.Hover(); ok {
		u.cursorRow, u.cursorCol = hr, hc
	}
}

func (u *termUI) attempt(row, col int) {
	out := u.session.Attempt(row, col)
	if out.SaveErr != nil {
		log.Printf("[Term] Warning: high score not saved: %v", out.SaveErr)
	}
}

// done 报告终局画面是否已停留足够时间
func (u *termUI) done() bool {
	return !u.session.Running() && u.now().Sub(u.gameOverAt) >= u.hold
}

// draw 绘制整个画面
func (u *termUI) draw() {
	u.screen.Clear()
	if u.session.Running() {
		u.drawPlay()
	} else {
		u.drawGameOver()
	}
	u.screen.Show()
}

func (u *termUI) drawPlay() {
	view := u.session.Board()
	size := view.Size()

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			u.drawCell(boardOriginX+c*cellWidth, boardOriginY+r, tagStyle(view.Cell(r, c)), ' ')
		}
	}

	// 光标处的形状预览，放不下时用 x 标记
	shape, tag := u.session.Shape(), u.session.Color()
	mark := '#'
	style := tagStyle(tag)
	if !u.session.CanPlace(u.cursorRow, u.cursorCol) {
		mark = 'x'
		style = cursorStyle
	}
	layout := u.drag.Layout()
	for _, off := range shape.Cells() {
		r, c := u.cursorRow+off.Row, u.cursorCol+off.Col
		if layout.CellInGrid(r, c) {
			u.drawCell(boardOriginX+c*cellWidth, boardOriginY+r, style, mark)
		}
	}

	sideX := boardOriginX + size*cellWidth + sidebarGap
	drawText(u.screen, sideX, boardOriginY, "Next Block", titleStyle)
	for _, off := range shape.Cells() {
		u.drawCell(sideX+off.Col*cellWidth, boardOriginY+2+off.Row, tagStyle(tag), ' ')
	}

	labelY := boardOriginY + size + 1
	drawText(u.screen, boardOriginX, labelY, fmt.Sprintf("Score: %d", u.session.Score()), textStyle)
	drawText(u.screen, sideX, labelY, fmt.Sprintf("High Score: %d", u.session.HighScore()), textStyle)
	drawText(u.screen, boardOriginX, labelY+2, "arrows: move  enter/space: place  mouse: drag  q: quit", textStyle)
}

func (u *termUI) drawGameOver() {
	summary, _ := u.session.Summary()
	w, h := u.screen.Size()
	cx, cy := w/2, h/2
	drawCentered(u.screen, cx, cy-2, "Game Over!", titleStyle)
	drawCentered(u.screen, cx, cy, fmt.Sprintf("Your Score: %d", summary.Score), textStyle)
	drawCentered(u.screen, cx, cy+1, fmt.Sprintf("High Score: %d", summary.HighScore), textStyle)
}

func (u *termUI) drawCell(x, y int, style tcell.Style, mark rune) {
	for i := 0; i < cellWidth; i++ {
		u.screen.SetContent(x+i, y, mark, nil, style)
	}
}

// tagStyle 颜色标签对应的背景样式
func tagStyle(tag shapes.ColorTag) tcell.Style {
	if tag == shapes.Empty {
		return emptyStyle
	}
	c := tag.RGBA()
	return tcell.StyleDefault.
		Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Foreground(tcell.ColorBlack)
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}

func drawCentered(s tcell.Screen, cx, cy int, text string, st tcell.Style) {
	drawText(s, cx-len([]rune(text))/2, cy, text, st)
}
