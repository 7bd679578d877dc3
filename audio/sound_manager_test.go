package audio

import "testing"

// TestSoundManagerGracefulDegradation verifies operations are safe without a device
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for st := SoundType(0); st < soundTypeCount; st++ {
		if sm.Play(st) {
			t.Errorf("Expected %s not to play before Initialize", st)
		}
	}
	sm.Close()
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager()
	sm.SetMuted(true)
	if !sm.Muted() {
		t.Error("Expected muted")
	}
	if sm.Play(SoundPickup) {
		t.Error("Expected muted manager not to play")
	}
}

func TestSilentPlayer(t *testing.T) {
	var p Player = &Silent{}
	if p.Play(SoundGameOver) {
		t.Error("Expected silent player never to play")
	}
	p.SetMuted(true)
	if !p.Muted() {
		t.Error("Expected mute state to be kept")
	}
	p.Close()
}
