// Package sound plays the phase-end chimes. Playback is best effort:
// a machine without an audio device gets a silent timer, not an error.
package sound

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"pomodoro/resources"
)

// Effect selects which chime to play.
type Effect int

const (
	WorkComplete Effect = iota
	BreakComplete
)

// Player holds decoded chime buffers.
type Player struct {
	buffers map[Effect]*beep.Buffer
	enabled bool
}

// NewPlayer decodes the embedded chimes and initializes the speaker.
// On any failure it returns a disabled player and the error; the
// caller may log it and keep going.
func NewPlayer() (*Player, error) {
	player := &Player{buffers: make(map[Effect]*beep.Buffer)}

	sounds := map[Effect]string{
		WorkComplete:  "work_complete.wav",
		BreakComplete: "break_complete.wav",
	}

	initialized := false
	for effect, name := range sounds {
		data, err := resources.Sound(name)
		if err != nil {
			return player, err
		}
		streamer, format, err := wav.Decode(io.NopCloser(bytes.NewReader(data)))
		if err != nil {
			return player, fmt.Errorf("decode %s: %w", name, err)
		}
		if !initialized {
			if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
				streamer.Close()
				return player, fmt.Errorf("init speaker: %w", err)
			}
			initialized = true
		}
		buffer := beep.NewBuffer(format)
		buffer.Append(streamer)
		streamer.Close()
		player.buffers[effect] = buffer
	}

	player.enabled = true
	return player, nil
}

// SetEnabled toggles playback without tearing down the speaker.
func (player *Player) SetEnabled(enabled bool) {
	if player == nil {
		return
	}
	player.enabled = enabled
}

// Play starts the chime and returns immediately.
func (player *Player) Play(effect Effect) {
	if player == nil || !player.enabled {
		return
	}
	buffer, ok := player.buffers[effect]
	if !ok {
		return
	}
	speaker.Play(buffer.Streamer(0, buffer.Len()))
}
