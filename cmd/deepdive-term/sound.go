package main

import (
	"math"
	"time"

	"github.com/decker502/deepdive/pkg/game"
	"github.com/decker502/deepdive/pkg/types"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// toneGenerator 频率线性滑动、振幅线性衰减的音效,参数与 ebiten 前端共用
type toneGenerator struct {
	spec  game.ToneSpec
	total int
	pos   int
	phase float64
	noise uint32
}

func newToneGenerator(spec game.ToneSpec) *toneGenerator {
	return &toneGenerator{
		spec:  spec,
		total: sampleRate.N(time.Duration(spec.Duration * float64(time.Second))),
		noise: 0x2545F491,
	}
}

// Stream 实现 beep.Streamer
func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.total)
		freq := g.spec.StartFreq + (g.spec.EndFreq-g.spec.StartFreq)*t
		g.phase += 2 * math.Pi * freq / float64(sampleRate)

		g.noise = g.noise*1664525 + 1013904223
		noise := float64(int32(g.noise)) / math.MaxInt32
		sample := (math.Sin(g.phase)*(1-g.spec.Noise) + noise*g.spec.Noise) * (1 - t) * 0.3

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// Err 实现 beep.Streamer
func (g *toneGenerator) Err() error {
	return nil
}

// soundPlayer 终端版音效,speaker 初始化失败时静音
type soundPlayer struct {
	enabled bool
}

func newSoundPlayer() (*soundPlayer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &soundPlayer{}, err
	}
	return &soundPlayer{enabled: true}, nil
}

// play 播放一个音效,未知 ID 退化为短促的提示音
func (p *soundPlayer) play(id types.SoundID) {
	if !p.enabled {
		return
	}
	if spec, ok := game.DefaultTones[id]; ok {
		speaker.Play(newToneGenerator(spec))
		return
	}
	sine, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(50*time.Millisecond), sine))
}

func (p *soundPlayer) close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}
