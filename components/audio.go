package components

import (
	"github.com/yohamta/donburi"
)

// SoundID names a generated sound effect
type SoundID int

const (
	SoundCursor SoundID = iota
	SoundDecision
	SoundCancel
	SoundBuzzer
	SoundCount
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	PendingSFX []SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
