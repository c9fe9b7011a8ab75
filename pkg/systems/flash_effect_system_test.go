package systems

import (
	"testing"

	"github.com/decker502/deepdive/pkg/components"
	"github.com/decker502/deepdive/pkg/ecs"
)

func TestFlashEffectExpires(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	StartFlash(em, id, 0.1, 0.5)
	sys := NewFlashEffectSystem(em)

	sys.Update(0.05)
	flash, ok := ecs.GetComponent[*components.FlashEffectComponent](em, id)
	if !ok {
		t.Fatal("flash removed too early")
	}
	if a := flash.CurrentAlpha(); a < 0.5 || a > 1 {
		t.Errorf("alpha = %v, want within [0.5, 1]", a)
	}

	// 再次受击重新开始计时
	StartFlash(em, id, 0.1, 0.5)
	sys.Update(0.06)
	if !ecs.HasComponent[*components.FlashEffectComponent](em, id) {
		t.Fatal("restarted flash removed too early")
	}

	sys.Update(0.05)
	if ecs.HasComponent[*components.FlashEffectComponent](em, id) {
		t.Error("flash should be removed after its duration")
	}
}
