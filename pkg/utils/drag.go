package utils

// DragTracker 跟踪当前形状的拖拽放置
//
// 按下点在棋盘内才开始拖拽；释放时把指针位置换算成锚点格子，
// 无论是否在棋盘内都产生一次放置尝试。
// 本类型不读取输入设备，由 PointerInput 或终端前端喂入坐标。
type DragTracker struct {
	layout             GridLayout
	dragging           bool // 按下点在棋盘内且尚未释放
	currentX, currentY int
}

// NewDragTracker 创建拖拽跟踪器
func NewDragTracker(layout GridLayout) *DragTracker {
	return &DragTracker{layout: layout}
}

// Press 处理指针按下，返回是否开始拖拽
func (d *DragTracker) Press(x, y int) bool {
	if !d.layout.InGrid(x, y) {
		return false
	}
	d.dragging = true
	d.currentX, d.currentY = x, y
	return true
}

// Move 更新拖拽中的指针位置，未拖拽时忽略
func (d *DragTracker) Move(x, y int) {
	if !d.dragging {
		return
	}
	d.currentX, d.currentY = x, y
}

// Release 处理指针释放
//
// 返回:
//   - row, col: 释放点对应的锚点格子（可能在棋盘外）
//   - ok: 是否有进行中的拖拽；为 false 时不应产生放置尝试
func (d *DragTracker) Release(x, y int) (row, col int, ok bool) {
	if !d.dragging {
		return 0, 0, false
	}
	d.Reset()
	row, col = d.layout.PointerToCell(x, y)
	return row, col, true
}

// Hover 返回拖拽预览所在格子，仅当拖拽中且指针在棋盘内时 ok 为 true
func (d *DragTracker) Hover() (row, col int, ok bool) {
	if !d.dragging || !d.layout.InGrid(d.currentX, d.currentY) {
		return 0, 0, false
	}
	row, col = d.layout.PointerToCell(d.currentX, d.currentY)
	return row, col, true
}

// Reset 取消拖拽
func (d *DragTracker) Reset() {
	d.dragging = false
	d.currentX, d.currentY = 0, 0
}

// IsDragging 是否正在拖拽
func (d *DragTracker) IsDragging() bool {
	return d.dragging
}

// Layout 返回棋盘布局
func (d *DragTracker) Layout() GridLayout {
	return d.layout
}
