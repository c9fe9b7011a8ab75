package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	closed       bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// Close records that the scene was switched away from.
func (m *MockScene) Close() {
	m.closed = true
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 1.0 / 60.0
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerNoScene verifies that Update and Draw handle a nil scene gracefully.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(nil)
	if sm.GetCurrentScene() != nil {
		t.Error("Expected no current scene")
	}
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Draw(nil)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerSwitchClosesPrevious verifies switching closes the outgoing scene.
func TestSceneManagerSwitchClosesPrevious(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	sm.SwitchTo(scene1)
	sm.Update(0.016)
	sm.SwitchTo(scene2)
	sm.Update(0.016)

	if !scene1.closed {
		t.Error("Scene1 should be closed after switching away")
	}
	if scene2.closed {
		t.Error("Scene2 should still be open")
	}
	if !scene2.updateCalled {
		t.Error("Scene2's Update was not called after switching")
	}
}

// TestSceneManagerLoad verifies factory-based scene creation.
func TestSceneManagerLoad(t *testing.T) {
	sm := NewSceneManager()

	// 未设置工厂时不切换
	sm.Load(SceneGameplay, RunResult{})
	if sm.GetCurrentScene() != nil {
		t.Fatal("Load without factory should not switch scenes")
	}

	var gotID SceneID
	var gotResult RunResult
	created := &MockScene{}
	sm.SetSceneFactory(func(id SceneID, result RunResult) Scene {
		gotID = id
		gotResult = result
		return created
	})

	sm.Load(SceneResult, RunResult{Score: 1200, Victory: true})
	if sm.GetCurrentScene() != created {
		t.Error("Load should switch to the created scene")
	}
	if gotID != SceneResult || gotResult.Score != 1200 || !gotResult.Victory {
		t.Errorf("factory received unexpected arguments: %s %+v", gotID, gotResult)
	}
}
