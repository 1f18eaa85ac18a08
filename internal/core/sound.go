package core

// Sound identifies an audio cue a game can request.
type Sound int

const (
	SoundShoot     Sound = iota // player fired
	SoundKill                   // player shot hit something
	SoundExplosion              // player cannon destroyed
	SoundAmbient                // looping background march
	SoundPickup                 // pickup collected
)

// String returns the cue name.
func (s Sound) String() string {
	switch s {
	case SoundShoot:
		return "shoot"
	case SoundKill:
		return "kill"
	case SoundExplosion:
		return "explosion"
	case SoundAmbient:
		return "ambient"
	case SoundPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// AudioSink receives fire-and-forget audio cues.
// Implementations must never block the simulation and never report failure.
type AudioSink interface {
	Play(s Sound)
	Stop(s Sound)
}

// Mute is an AudioSink that discards every cue.
type Mute struct{}

// Play implements AudioSink.
func (Mute) Play(Sound) {}

// Stop implements AudioSink.
func (Mute) Stop(Sound) {}
