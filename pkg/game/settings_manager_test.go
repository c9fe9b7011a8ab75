package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestStorage 在临时目录下打开 gdata 存储
func openTestStorage(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", tempDir)

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.SoundVolume != 0.6 {
		t.Errorf("SoundVolume: got %v, want 0.6", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if !settings.ScreenShake {
		t.Error("ScreenShake: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestSettingsSaveAndReload 测试设置的保存与重新加载
func TestSettingsSaveAndReload(t *testing.T) {
	m := openTestStorage(t, "deepdive_test_settings")

	sm := NewSettingsManager(m)
	sm.SetSoundVolume(0.25)
	sm.ToggleSound()
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded := NewSettingsManager(m)
	got := reloaded.GetSettings()
	if got.SoundVolume != 0.25 || got.SoundEnabled || !got.Fullscreen {
		t.Errorf("reloaded settings mismatch: %+v", got)
	}
}

// TestSettingsDegradedMode 测试 gdata 不可用时仅在内存中生效
func TestSettingsDegradedMode(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetSoundVolume(2.0)
	if sm.GetSettings().SoundVolume != 1.0 {
		t.Errorf("volume should clamp to 1.0, got %v", sm.GetSettings().SoundVolume)
	}
	sm.SetSoundVolume(-1)
	if sm.GetSettings().SoundVolume != 0 {
		t.Errorf("volume should clamp to 0, got %v", sm.GetSettings().SoundVolume)
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save in degraded mode should not fail, got %v", err)
	}
}
