package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/l1jgo/quadscene/internal/config"
	"github.com/l1jgo/quadscene/internal/core/event"
)

// Player gives audible feedback for scene changes.
type Player interface {
	Spawn()
	Despawn()
	Close()
}

// NewPlayer returns a speaker-backed player, or a silent one when audio is
// disabled or the speaker cannot be opened. Audio failures are never fatal.
func NewPlayer(cfg config.AudioConfig, log *zap.Logger) Player {
	if !cfg.Enabled {
		return Silent{}
	}
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		log.Warn("audio disabled", zap.Error(err))
		return Silent{}
	}

	p := &tonePlayer{log: log}
	var err error
	if p.spawn, err = Tone(rate, cfg.ToneHz, cfg.ToneLength); err != nil {
		log.Warn("audio disabled", zap.Error(err))
		speaker.Close()
		return Silent{}
	}
	if p.despawn, err = Tone(rate, cfg.ToneHz/2, cfg.ToneLength); err != nil {
		log.Warn("audio disabled", zap.Error(err))
		speaker.Close()
		return Silent{}
	}
	return p
}

// Subscribe plays p's tones for spawn and despawn events on bus.
func Subscribe(bus *event.Bus, p Player) {
	event.Subscribe(bus, func(event.EntitySpawned) { p.Spawn() })
	event.Subscribe(bus, func(event.EntityDespawned) { p.Despawn() })
}

// Tone renders a short, quiet sine tone into a buffer that can be
// replayed without regenerating it.
func Tone(rate beep.SampleRate, hz float64, length time.Duration) (*beep.Buffer, error) {
	sine, err := generators.SineTone(rate, hz)
	if err != nil {
		return nil, fmt.Errorf("sine tone %gHz: %w", hz, err)
	}
	quiet := &effects.Volume{Streamer: sine, Base: 2, Volume: -3}

	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(beep.Take(rate.N(length), quiet))
	return buf, nil
}

type tonePlayer struct {
	spawn   *beep.Buffer
	despawn *beep.Buffer
	log     *zap.Logger
}

func (p *tonePlayer) Spawn() {
	speaker.Play(p.spawn.Streamer(0, p.spawn.Len()))
}

func (p *tonePlayer) Despawn() {
	speaker.Play(p.despawn.Streamer(0, p.despawn.Len()))
}

func (p *tonePlayer) Close() {
	speaker.Clear()
	speaker.Close()
}

// Silent is a Player that does nothing.
type Silent struct{}

func (Silent) Spawn()   {}
func (Silent) Despawn() {}
func (Silent) Close()   {}
