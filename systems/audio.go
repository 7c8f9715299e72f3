package systems

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/automoto/rpgplayer/components"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

const (
	// SampleRate of the shared audio context
	SampleRate = 44100
	// maxPendingSFX drops sounds nobody plays, such as without an audio device
	maxPendingSFX = 16
)

// tone describes a generated sound effect
type tone struct {
	freq     float64 // Hz, a second frequency makes a two note blip
	freq2    float64
	duration float64 // seconds
	volume   float64 // relative to SoundVolume
}

var tones = [components.SoundCount]tone{
	components.SoundCursor:   {freq: 880, duration: 0.04, volume: 0.35},
	components.SoundDecision: {freq: 660, freq2: 990, duration: 0.08, volume: 0.4},
	components.SoundCancel:   {freq: 520, freq2: 390, duration: 0.08, volume: 0.4},
	components.SoundBuzzer:   {freq: 140, duration: 0.12, volume: 0.5},
}

// Global audio state, created once and shared across scenes
var (
	globalAudioContext *audio.Context
	globalSFX          [components.SoundCount][]byte
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(SampleRate)
		for id, t := range tones {
			globalSFX[id] = synthesize(t, SampleRate)
		}
	})
}

// UpdateAudio plays the sound effects queued since the last frame at the
// configured volume.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}
	initGlobalAudio()

	a := getEngine(e).Config().Audio
	volume := float64(a.SoundVolume.Get()) / 100
	if a.IsHidden() {
		volume = 0
	}
	for _, id := range audioData.PendingSFX {
		playSFX(id, volume)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(id components.SoundID, volume float64) {
	if volume <= 0 || id < 0 || id >= components.SoundCount {
		return
	}
	player := globalAudioContext.NewPlayerFromBytes(globalSFX[id])
	player.SetVolume(volume * tones[id].volume)
	player.Play()
}

// PlaySFX queues a sound effect for the next audio update.
func PlaySFX(e *ecs.ECS, id components.SoundID) {
	audioData := getOrCreateAudio(e)
	if len(audioData.PendingSFX) >= maxPendingSFX {
		return
	}
	audioData.PendingSFX = append(audioData.PendingSFX, id)
}

// synthesize renders t as 16-bit little endian stereo PCM, fading out to
// avoid a click at the end.
func synthesize(t tone, rate int) []byte {
	n := int(t.duration * float64(rate))
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		freq := t.freq
		if t.freq2 > 0 && i >= n/2 {
			freq = t.freq2
		}
		env := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(rate)) * env
		s := uint16(int16(v * math.MaxInt16 * 0.8))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf
}

// getOrCreateAudio returns the singleton Audio component, creating if needed
func getOrCreateAudio(ecs *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Audio))
	}
	return components.Audio.Get(entry)
}
