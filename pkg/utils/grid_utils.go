// Package utils 提供棋盘坐标换算、拖拽跟踪和平台相关工具，不依赖 ebiten
package utils

// GridLayout 棋盘在屏幕上的布局
// 棋盘是边长 Size 的正方形，每格 CellSize 像素，左上角位于 (OriginX, OriginY)
type GridLayout struct {
	OriginX  int
	OriginY  int
	Size     int
	CellSize int
}

// NewGridLayout 创建原点在窗口左上角的棋盘布局
func NewGridLayout(size, cellSize int) GridLayout {
	return GridLayout{Size: size, CellSize: cellSize}
}

// Pixels 返回棋盘边长（像素）
func (g GridLayout) Pixels() int {
	return g.Size * g.CellSize
}

// InGrid 检查屏幕坐标是否落在棋盘内
func (g GridLayout) InGrid(x, y int) bool {
	x -= g.OriginX
	y -= g.OriginY
	side := g.Pixels()
	return x >= 0 && x < side && y >= 0 && y < side
}

// PointerToCell 将屏幕坐标转换为格子坐标
// 参数:
//   - x, y: 指针的屏幕坐标
//
// 返回:
//   - row, col: 向下取整得到的格子坐标，棋盘外的坐标不做截断
//     （可能为负数或 >= Size，由调用方决定是否拒绝）
func (g GridLayout) PointerToCell(x, y int) (row, col int) {
	return FloorDiv(y-g.OriginY, g.CellSize), FloorDiv(x-g.OriginX, g.CellSize)
}

// CellToScreen 将格子坐标转换为格子左上角的屏幕坐标
func (g GridLayout) CellToScreen(row, col int) (x, y int) {
	return g.OriginX + col*g.CellSize, g.OriginY + row*g.CellSize
}

// CellInGrid 检查格子坐标是否在棋盘内
func (g GridLayout) CellInGrid(row, col int) bool {
	return row >= 0 && row < g.Size && col >= 0 && col < g.Size
}

// FloorDiv 向下取整除法，负数时与整数截断除法不同（FloorDiv(-1, 50) = -1）
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
