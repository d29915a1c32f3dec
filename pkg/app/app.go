// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/blockpuzzle/pkg/config"
	"github.com/decker502/blockpuzzle/pkg/embedded"
	"github.com/decker502/blockpuzzle/pkg/game"
	"github.com/decker502/blockpuzzle/pkg/scenes"
	"github.com/decker502/blockpuzzle/pkg/shapes"
	"github.com/decker502/blockpuzzle/pkg/utils"
)

// ConfigPath 嵌入配置文件路径
const ConfigPath = "data/config.yaml"

// LoadConfig 读取嵌入的 data/config.yaml
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func LoadConfig() (*config.GameConfig, error) {
	data, err := embedded.ReadFile(ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ConfigPath, err)
	}
	cfg, err := config.ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ConfigPath, err)
	}
	return cfg, nil
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg                      *config.GameConfig
	sceneManager             *scenes.SceneManager
	session                  *game.Session
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 参数：
//   - cfg: 游戏配置（LoadConfig 的结果）
//   - store: 最高分存储，nil 时按 cfg.Storage 打开默认存储
func NewApp(cfg *config.GameConfig, store game.ScoreStore) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("game config is required")
	}

	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if store == nil {
		store = game.OpenScoreStore(cfg.Storage.AppName, cfg.Storage.Object, cfg.Storage.Property, cfg.Storage.FallbackFile)
	}

	var source shapes.Source
	if cfg.Seed != 0 {
		source = shapes.NewRandomSource(cfg.Seed)
		log.Printf("[App] Using seeded shape source (seed=%d)", cfg.Seed)
	}
	session := game.NewSession(cfg.Grid.Size, source, store)

	fonts, err := scenes.LoadFonts(config.FontSize, config.LargeFontSize)
	if err != nil {
		// 字体加载失败时降级到调试字体
		log.Printf("[App] Warning: %v (using debug font)", err)
		fonts = nil
	}

	sceneManager := scenes.NewSceneManager()
	renderer := scenes.NewRenderer(cfg, fonts)
	sceneManager.SwitchTo(scenes.NewPlayScene(session, sceneManager, renderer))

	log.Printf("[App] Started: grid=%dx%d, cell=%dpx, window=%dx%d",
		cfg.Grid.Size, cfg.Grid.Size, cfg.Grid.CellSize, cfg.Window.Width, cfg.Window.Height)

	return &App{
		cfg:          cfg,
		sceneManager: sceneManager,
		session:      session,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（main 中设为每秒 30 次）
// 场景请求退出后返回 ebiten.Termination，RunGame 以 nil 错误返回
func (a *App) Update() error {
	if a.sceneManager.QuitRequested() {
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.cfg.Window.Width, a.cfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端无窗口）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *scenes.SceneManager {
	return a.sceneManager
}

// Session 返回本局会话
func (a *App) Session() *game.Session {
	return a.session
}

// Config 返回游戏配置
func (a *App) Config() *config.GameConfig {
	return a.cfg
}
