package scenes

import (
	"math"
	"testing"

	"github.com/decker502/deepdive/pkg/types"
)

func TestEffectLayerExpiresEffects(t *testing.T) {
	var l effectLayer
	l.spawnEffect(types.EffectExplosion, 10, 20, 1)
	l.spawnEffect(types.EffectHitSpark, 30, 40, 1)

	l.update(hitSparkLifetime + 0.01)
	if len(l.effects) != 1 {
		t.Fatalf("expected 1 effect after hit spark expired, got %d", len(l.effects))
	}
	if l.effects[0].kind != types.EffectExplosion {
		t.Errorf("remaining effect = %s, want explosion", l.effects[0].kind)
	}

	l.update(explosionLifetime)
	if len(l.effects) != 0 {
		t.Errorf("expected all effects expired, got %d", len(l.effects))
	}
}

func TestEffectLayerBannerReplacesBanner(t *testing.T) {
	var l effectLayer
	l.showText(400, 150, "SHIELD!", types.TextBanner)
	l.showText(100, 100, "+10", types.TextPopup)
	l.showText(400, 150, "SPEED BOOST!", types.TextBanner)

	if len(l.texts) != 2 {
		t.Fatalf("expected popup and newest banner, got %d texts", len(l.texts))
	}
	banners := 0
	for _, txt := range l.texts {
		if txt.style == types.TextBanner {
			banners++
			if txt.content != "SPEED BOOST!" {
				t.Errorf("banner = %q, want newest", txt.content)
			}
		}
	}
	if banners != 1 {
		t.Errorf("banner count = %d, want 1", banners)
	}
}

func TestFloatingTextAlpha(t *testing.T) {
	tests := []struct {
		name    string
		style   types.TextStyle
		elapsed float64
		want    float64
	}{
		{name: "popup start", style: types.TextPopup, elapsed: 0, want: 1},
		{name: "popup half", style: types.TextPopup, elapsed: popupLifetime / 2, want: 0.5},
		{name: "banner early", style: types.TextBanner, elapsed: 0.1, want: 1},
		{name: "banner fading", style: types.TextBanner, elapsed: bannerLifetime * 0.9, want: 0.5},
		{name: "warning on", style: types.TextWarning, elapsed: 0.1, want: 1},
		{name: "warning off", style: types.TextWarning, elapsed: 0.35, want: 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := &floatingText{style: tt.style, elapsed: tt.elapsed, life: textLifetime(tt.style)}
			if got := ft.alpha(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("alpha() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPopupRises(t *testing.T) {
	ft := &floatingText{style: types.TextPopup, life: popupLifetime, elapsed: popupLifetime}
	if got := ft.offsetY(30); got != -30 {
		t.Errorf("offsetY at end = %v, want -30", got)
	}
	banner := &floatingText{style: types.TextBanner, life: bannerLifetime, elapsed: 1}
	if got := banner.offsetY(30); got != 0 {
		t.Errorf("banner offsetY = %v, want 0", got)
	}
}

func TestCameraShake(t *testing.T) {
	var c cameraShake
	if x, y := c.offset(800); x != 0 || y != 0 {
		t.Fatal("idle shake should not offset")
	}

	c.start(0.2, 0.015)
	c.start(0.05, 0.003) // 较弱较短的震动不会削弱当前震动
	if c.remaining != 0.2 || c.intensity != 0.015 {
		t.Errorf("shake = (%v, %v), want (0.2, 0.015)", c.remaining, c.intensity)
	}

	c.update(0.1)
	x, y := c.offset(800)
	limit := 0.015 * 800
	if math.Abs(x) > limit || math.Abs(y) > limit {
		t.Errorf("offset (%v, %v) exceeds amplitude %v", x, y, limit)
	}

	c.update(0.2)
	if c.remaining != 0 || c.intensity != 0 {
		t.Errorf("shake should be finished, got remaining=%v intensity=%v", c.remaining, c.intensity)
	}
}

func TestParallaxOffset(t *testing.T) {
	tests := []struct {
		scroll, factor, spacing, want float64
	}{
		{scroll: 0, factor: 0.5, spacing: 100, want: 0},
		{scroll: 150, factor: 0.5, spacing: 100, want: 75},
		{scroll: 500, factor: 0.5, spacing: 100, want: 50},
		{scroll: -40, factor: 1, spacing: 100, want: 60},
	}
	for _, tt := range tests {
		if got := parallaxOffset(tt.scroll, tt.factor, tt.spacing); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("parallaxOffset(%v, %v, %v) = %v, want %v", tt.scroll, tt.factor, tt.spacing, got, tt.want)
		}
	}
}
