package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 持有当前场景，并转发 Update/Draw
//
// 任一时刻只有一个场景处于活动状态。场景通过 RequestQuit 通知外层游戏循环结束。
type SceneManager struct {
	current       Scene
	quitRequested bool
}

// NewSceneManager 创建没有活动场景的管理器，用 SwitchTo 设置初始场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换活动场景，从下一次 Update 开始生效
func (sm *SceneManager) SwitchTo(scene Scene) {
	log.Printf("[SceneManager] Switch %T -> %T", sm.current, scene)
	sm.current = scene
}

// GetCurrentScene 返回当前活动场景，没有时为 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.current
}

// RequestQuit 请求在下一次 Update 结束游戏循环，重复调用无副作用
func (sm *SceneManager) RequestQuit() {
	if sm.quitRequested {
		return
	}
	log.Printf("[SceneManager] Quit requested by %T", sm.current)
	sm.quitRequested = true
}

// QuitRequested 报告是否已请求退出
func (sm *SceneManager) QuitRequested() bool {
	return sm.quitRequested
}

// Update 更新活动场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.current == nil {
		return
	}
	sm.current.Update(deltaTime)
}

// Draw 绘制活动场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.current == nil {
		return
	}
	sm.current.Draw(screen)
}
