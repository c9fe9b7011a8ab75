package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneID 场景标识
type SceneID string

const (
	SceneGameplay SceneID = "gameplay"
	SceneResult   SceneID = "result"
)

// SceneFactory 场景工厂函数类型
// 用于按 ID 创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(id SceneID, result RunResult) Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Load to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is closed if it implements Closer.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if closer, ok := sm.currentScene.(Closer); ok && sm.currentScene != scene {
		closer.Close()
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Load 通过工厂创建并切换到指定场景
func (sm *SceneManager) Load(id SceneID, result RunResult) {
	log.Printf("[SceneManager] 切换场景: %s", id)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory(id, result)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", id)
		return
	}
	sm.SwitchTo(newScene)
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
