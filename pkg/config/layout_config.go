package config

// 布局配置常量
// 本文件定义了棋盘、侧边栏和文字标签的默认布局参数
// 所有坐标为屏幕坐标，原点在窗口左上角

// Grid Configuration (棋盘网格配置)
const (
	// GridSize 是棋盘边长（格子数）
	GridSize = 10

	// CellSize 是每个格子的边长（像素）
	CellSize = 50

	// GridLineGray 是格子描边的灰度值
	GridLineGray = 200
)

// Window Configuration (窗口配置)
const (
	// ScreenWidth 是窗口宽度（像素）
	ScreenWidth = 800

	// ScreenHeight 是窗口高度（像素）
	ScreenHeight = 700

	// WindowTitle 是窗口标题
	WindowTitle = "Block Puzzle Game"
)

// Sidebar Configuration (侧边栏“下一个方块”预览配置)
const (
	// PreviewMarginX 是预览区距棋盘右边缘的水平间距
	// 预览区起点 X = GridSize * CellSize + PreviewMarginX = 520
	PreviewMarginX = 20

	// PreviewOffsetY 是预览区起点 Y 坐标
	PreviewOffsetY = 50

	// PreviewLabelGap 是 "Next Block" 标签在预览区上方的距离
	PreviewLabelGap = 30
)

// Label Configuration (分数标签配置)
const (
	// ScoreLabelX 是当前分数标签的 X 坐标
	ScoreLabelX = 10

	// LabelGapBelowGrid 是分数标签距棋盘下边缘的距离
	// 标签 Y = GridSize * CellSize + LabelGapBelowGrid = 510
	LabelGapBelowGrid = 10

	// HighScoreRightInset 是最高分标签距窗口右边缘的距离
	// 标签 X = ScreenWidth - HighScoreRightInset = 600
	HighScoreRightInset = 200
)

// Game Over Screen Configuration (终局画面配置)
const (
	// GameOverTitleY 是 "Game Over!" 标题的 Y 坐标
	GameOverTitleY = 100

	// GameOverScoreY 是 "Your Score" 的 Y 坐标
	GameOverScoreY = 200

	// GameOverHighScoreY 是 "High Score" 的 Y 坐标
	GameOverHighScoreY = 250

	// GameOverHoldSeconds 是终局画面停留时间（秒），之后程序退出
	GameOverHoldSeconds = 3.0
)

// Font Configuration (字号配置)
const (
	// FontSize 是普通文字字号
	FontSize = 24.0

	// LargeFontSize 是标题字号
	LargeFontSize = 32.0
)
