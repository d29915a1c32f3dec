package config

import (
	"testing"
)

// TestDefaultLayout 测试默认布局与窗口尺寸一致
func TestDefaultLayout(t *testing.T) {
	cfg := DefaultGameConfig()

	tests := []struct {
		name  string
		gotX  int
		gotY  int
		wantX int
		wantY int
	}{
		{"预览区起点", 0, 0, 520, 50},
		{"当前分数标签", 0, 0, 10, 510},
		{"最高分标签", 0, 0, 600, 510},
	}
	tests[0].gotX, tests[0].gotY = cfg.PreviewOrigin()
	tests[1].gotX, tests[1].gotY = cfg.ScoreLabelPos()
	tests[2].gotX, tests[2].gotY = cfg.HighScoreLabelPos()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.gotX != tt.wantX || tt.gotY != tt.wantY {
				t.Errorf("got (%d, %d), want (%d, %d)", tt.gotX, tt.gotY, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestDefaultGridFitsWindow 默认棋盘放得下窗口
func TestDefaultGridFitsWindow(t *testing.T) {
	endY := GridSize * CellSize
	if endY != 500 {
		t.Errorf("grid side = %d, want 500", endY)
	}

	// 棋盘必须放得下默认窗口，并在下方留出分数标签
	if endY+LabelGapBelowGrid >= ScreenHeight {
		t.Errorf("score labels at y=%d fall outside window height %d", endY+LabelGapBelowGrid, ScreenHeight)
	}
}
