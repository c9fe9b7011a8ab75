package game

import (
	"bytes"
	"testing"

	"github.com/decker502/deepdive/pkg/types"
)

func TestSynthesizeTone(t *testing.T) {
	ts := DefaultTones[types.SoundExplosion]
	pcm := SynthesizeTone(48000, ts)

	wantLen := int(48000*ts.Duration) * 4
	if len(pcm) != wantLen {
		t.Fatalf("expected %d bytes of stereo 16-bit PCM, got %d", wantLen, len(pcm))
	}

	// 相同参数生成相同数据
	if !bytes.Equal(pcm, SynthesizeTone(48000, ts)) {
		t.Error("synthesis should be deterministic")
	}

	if SynthesizeTone(48000, ToneSpec{Duration: 0}) != nil {
		t.Error("zero-length tone should produce no data")
	}
}

func TestEverySoundHasTone(t *testing.T) {
	for _, id := range []types.SoundID{
		types.SoundExplosion, types.SoundPickup, types.SoundHit, types.SoundHurt, types.SoundWarning,
	} {
		if _, ok := DefaultTones[id]; !ok {
			t.Errorf("sound %s has no tone", id)
		}
	}
}

func TestAudioManagerWithoutContext(t *testing.T) {
	am := NewAudioManager(nil, NewSettingsManager(nil))
	if am.PlaySound(types.SoundHit) {
		t.Error("PlaySound without audio context should report not played")
	}
}
