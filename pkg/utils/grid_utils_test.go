package utils

import (
	"testing"
)

// TestPointerToCell 测试屏幕坐标到格子坐标的换算（向下取整）
func TestPointerToCell(t *testing.T) {
	g := NewGridLayout(10, 50)

	tests := []struct {
		name    string
		x, y    int
		wantRow int
		wantCol int
	}{
		{"原点", 0, 0, 0, 0},
		{"第一格内部", 49, 49, 0, 0},
		{"第二列", 50, 0, 0, 1},
		{"行列不同", 120, 260, 5, 2},
		{"最后一格", 499, 499, 9, 9},
		{"右侧棋盘外", 510, 20, 0, 10},
		{"侧边栏", 700, 100, 2, 14},
		{"负坐标向下取整", -1, -50, -1, -1},
		{"负坐标整格", -51, -100, -2, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col := g.PointerToCell(tt.x, tt.y)
			if row != tt.wantRow || col != tt.wantCol {
				t.Errorf("PointerToCell(%d, %d) = (%d, %d), want (%d, %d)",
					tt.x, tt.y, row, col, tt.wantRow, tt.wantCol)
			}
		})
	}
}

// TestInGrid 测试棋盘范围判断
func TestInGrid(t *testing.T) {
	g := NewGridLayout(10, 50)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"左上角", 0, 0, true},
		{"右下角最后一个像素", 499, 499, true},
		{"右边缘", 500, 10, false},
		{"下边缘", 10, 500, false},
		{"负坐标", -1, 10, false},
		{"分数标签区域", 10, 510, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.InGrid(tt.x, tt.y); got != tt.want {
				t.Errorf("InGrid(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// TestGridLayoutWithOrigin 测试带偏移的棋盘布局
func TestGridLayoutWithOrigin(t *testing.T) {
	g := GridLayout{OriginX: 100, OriginY: 40, Size: 4, CellSize: 20}

	if g.Pixels() != 80 {
		t.Errorf("Pixels() = %d, want 80", g.Pixels())
	}
	if g.InGrid(99, 50) || !g.InGrid(100, 40) || g.InGrid(180, 50) {
		t.Error("InGrid does not respect the origin")
	}

	row, col := g.PointerToCell(95, 45)
	if row != 0 || col != -1 {
		t.Errorf("PointerToCell(95, 45) = (%d, %d), want (0, -1)", row, col)
	}

	x, y := g.CellToScreen(2, 3)
	if x != 160 || y != 80 {
		t.Errorf("CellToScreen(2, 3) = (%d, %d), want (160, 80)", x, y)
	}
}

// TestCellInGrid 测试格子坐标范围判断
func TestCellInGrid(t *testing.T) {
	g := NewGridLayout(3, 10)

	for _, c := range [][2]int{{0, 0}, {2, 2}, {1, 0}} {
		if !g.CellInGrid(c[0], c[1]) {
			t.Errorf("CellInGrid(%d, %d) = false, want true", c[0], c[1])
		}
	}
	for _, c := range [][2]int{{-1, 0}, {0, 3}, {3, 3}} {
		if g.CellInGrid(c[0], c[1]) {
			t.Errorf("CellInGrid(%d, %d) = true, want false", c[0], c[1])
		}
	}
}
