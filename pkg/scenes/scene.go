// Package scenes 实现方块拼图的两个画面：棋盘场景和终局场景
//
// 场景只读取 game.Session 的状态并把放置尝试交给它，
// 不直接修改棋盘。绘制所需的状态通过 RenderContext 显式传入。
package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个游戏画面（棋盘、终局总结）
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 将场景绘制到 screen
	Draw(screen *ebiten.Image)
}
