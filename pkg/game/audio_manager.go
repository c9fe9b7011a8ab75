package game

import (
	"encoding/binary"
	"math"

	"github.com/decker502/deepdive/pkg/types"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// ToneSpec 一段合成音效: 从 StartFreq 滑到 EndFreq 的方波/正弦混合,线性衰减
type ToneSpec struct {
	StartFreq float64 // 起始频率(Hz)
	EndFreq   float64 // 结束频率(Hz)
	Duration  float64 // 时长(秒)
	Noise     float64 // 噪声成分 0~1,爆炸类音效使用
}

// DefaultTones 每个音效的合成参数
var DefaultTones = map[types.SoundID]ToneSpec{
	types.SoundExplosion: {StartFreq: 180, EndFreq: 40, Duration: 0.35, Noise: 0.7},
	types.SoundPickup:    {StartFreq: 660, EndFreq: 1320, Duration: 0.12},
	types.SoundHit:       {StartFreq: 520, EndFreq: 300, Duration: 0.08},
	types.SoundHurt:      {StartFreq: 300, EndFreq: 90, Duration: 0.25, Noise: 0.2},
	types.SoundWarning:   {StartFreq: 440, EndFreq: 440, Duration: 0.6},
}

// SynthesizeTone 生成 16 位有符号小端双声道 PCM
// 噪声使用固定种子的线性同余序列,同一参数总是得到同一段数据
func SynthesizeTone(sampleRate int, ts ToneSpec) []byte {
	frames := int(float64(sampleRate) * ts.Duration)
	if frames <= 0 {
		return nil
	}
	buf := make([]byte, frames*4)
	phase := 0.0
	lcg := uint32(0x2545F491)
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames)
		freq := ts.StartFreq + (ts.EndFreq-ts.StartFreq)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)

		tone := math.Sin(phase)
		lcg = lcg*1664525 + 1013904223
		noise := float64(int32(lcg)) / math.MaxInt32
		sample := (tone*(1-ts.Noise) + noise*ts.Noise) * (1 - t) * 0.5

		v := int16(sample * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}

// AudioManager 音效管理器
// 音效在首次播放时合成并缓存;音量与开关读取 SettingsManager
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager
	pcm             map[types.SoundID][]byte
}

// NewAudioManager 创建音效管理器
//
// 参数：
//   - ctx: ebiten 音频上下文,可为 nil(静音)
//   - sm: SettingsManager 实例,可为 nil
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		pcm:             make(map[types.SoundID][]byte),
	}
}

// PlaySound 播放音效,返回是否实际播放
func (am *AudioManager) PlaySound(id types.SoundID) bool {
	if am.context == nil {
		return false
	}
	volume := 0.6
	if am.settingsManager != nil {
		settings := am.settingsManager.GetSettings()
		if !settings.SoundEnabled {
			return false
		}
		volume = settings.SoundVolume
	}

	data, ok := am.pcm[id]
	if !ok {
		ts, known := DefaultTones[id]
		if !known {
			return false
		}
		data = SynthesizeTone(am.context.SampleRate(), ts)
		am.pcm[id] = data
	}

	// 同一音效可能重叠播放,每次新建播放器
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(volume)
	player.Play()
	return true
}
