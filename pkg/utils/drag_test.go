package utils

import (
	"testing"
)

func TestDragTrackerInitialState(t *testing.T) {
	d := NewDragTracker(NewGridLayout(10, 50))

	if d.IsDragging() {
		t.Error("Expected IsDragging to be false initially")
	}
	if _, _, ok := d.Hover(); ok {
		t.Error("Expected no hover cell initially")
	}
	if _, _, ok := d.Release(10, 10); ok {
		t.Error("Release without a press must not produce an attempt")
	}
}

// TestDragTrackerPressOutsideGrid 按下点在棋盘外不开始拖拽
func TestDragTrackerPressOutsideGrid(t *testing.T) {
	d := NewDragTracker(NewGridLayout(10, 50))

	if d.Press(600, 100) {
		t.Error("Press in the sidebar should not start a drag")
	}
	if d.IsDragging() {
		t.Error("Expected IsDragging to be false")
	}

	// 移动到棋盘内再释放，也不产生放置尝试
	d.Move(10, 10)
	if _, _, ok := d.Release(10, 10); ok {
		t.Error("Release after a press outside the grid must not produce an attempt")
	}
}

// TestDragTrackerPlacement 按下、移动、释放得到锚点格子
func TestDragTrackerPlacement(t *testing.T) {
	d := NewDragTracker(NewGridLayout(10, 50))

	if !d.Press(25, 25) {
		t.Fatal("Press inside the grid should start a drag")
	}

	d.Move(130, 260)
	row, col, ok := d.Hover()
	if !ok || row != 5 || col != 2 {
		t.Errorf("Hover() = (%d, %d, %v), want (5, 2, true)", row, col, ok)
	}

	row, col, ok = d.Release(130, 260)
	if !ok || row != 5 || col != 2 {
		t.Errorf("Release() = (%d, %d, %v), want (5, 2, true)", row, col, ok)
	}
	if d.IsDragging() {
		t.Error("Expected drag to end after release")
	}
}

// TestDragTrackerReleaseOutsideGrid 在棋盘外释放仍产生越界的放置尝试
func TestDragTrackerReleaseOutsideGrid(t *testing.T) {
	d := NewDragTracker(NewGridLayout(10, 50))
	d.Press(10, 10)
	d.Move(650, 120)

	if _, _, ok := d.Hover(); ok {
		t.Error("Hover should not report a cell while the pointer is outside the grid")
	}

	row, col, ok := d.Release(650, 120)
	if !ok {
		t.Fatal("Release outside the grid should still produce an attempt")
	}
	if row != 2 || col != 13 {
		t.Errorf("Release() = (%d, %d), want (2, 13)", row, col)
	}
}

func TestDragTrackerReset(t *testing.T) {
	d := NewDragTracker(NewGridLayout(10, 50))
	d.Press(100, 100)
	d.Move(150, 150)

	d.Reset()

	if d.IsDragging() {
		t.Error("Expected no drag after reset")
	}
	if _, _, ok := d.Hover(); ok {
		t.Error("Expected no hover cell after reset")
	}
	if _, _, ok := d.Release(150, 150); ok {
		t.Error("Release after reset must not produce an attempt")
	}
}
