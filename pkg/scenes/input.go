package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/blockpuzzle/pkg/utils"
)

// PointerFrame 一帧内的指针输入
// 统一鼠标左键和触摸，优先触摸
type PointerFrame struct {
	JustPressed  bool // 本帧刚按下
	JustReleased bool // 本帧刚释放
	X, Y         int  // 当前位置；释放帧为释放位置
	IsTouch      bool // 是否为触摸输入
}

// PointerInput 从 ebiten 读取指针输入
//
// 触摸释放的那一帧已经拿不到触摸位置，所以每帧保存最后一次触摸位置。
type PointerInput struct {
	lastTouchX, lastTouchY int
	touchActive            bool
}

// NewPointerInput 创建指针输入读取器
func NewPointerInput() *PointerInput {
	return &PointerInput{}
}

// Poll 读取本帧指针输入，每帧调用一次
func (p *PointerInput) Poll() PointerFrame {
	var frame PointerFrame

	// 首先检查触摸输入（移动设备）
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		frame.JustPressed = true
		frame.IsTouch = true
		frame.X, frame.Y = ebiten.TouchPosition(ids[0])
		p.lastTouchX, p.lastTouchY = frame.X, frame.Y
		p.touchActive = true
		return frame
	}

	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		frame.IsTouch = true
		frame.X, frame.Y = ebiten.TouchPosition(ids[0])
		p.lastTouchX, p.lastTouchY = frame.X, frame.Y
		p.touchActive = true
		return frame
	}

	if p.touchActive && len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		p.touchActive = false
		frame.JustReleased = true
		frame.IsTouch = true
		frame.X, frame.Y = p.lastTouchX, p.lastTouchY
		return frame
	}

	// 其次检查鼠标输入（桌面设备）
	frame.X, frame.Y = ebiten.CursorPosition()
	frame.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	frame.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return frame
}

// Apply 把一帧指针输入喂给拖拽跟踪器
//
// 返回:
//   - row, col: 释放时的锚点格子
//   - released: 本帧是否结束了一次拖拽（需要发起放置尝试）
func (f PointerFrame) Apply(d *utils.DragTracker) (row, col int, released bool) {
	if f.JustPressed {
		d.Press(f.X, f.Y)
	}
	d.Move(f.X, f.Y)
	if f.JustReleased {
		return d.Release(f.X, f.Y)
	}
	return 0, 0, false
}
