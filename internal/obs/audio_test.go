package obs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputNames(t *testing.T) {
	s := newSession(newFakeProtocol())

	names, err := s.InputNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Mic", "Music", "Desktop Audio", "Camera", "Overlay"}, names)
}

func TestInputInfo(t *testing.T) {
	s := newSession(newFakeProtocol())

	info, err := s.InputInfo("Music")
	require.NoError(t, err)
	assert.Equal(t, InputInfo{Name: "Music", Kind: "ffmpeg_source", Muted: true}, info)
}

func TestInputInfoNonAudio(t *testing.T) {
	s := newSession(newFakeProtocol())

	info, err := s.InputInfo("Overlay")
	require.NoError(t, err)
	assert.False(t, info.Muted, "inputs without audio report muted as false")
	assert.Equal(t, "image_source", info.Kind)
}

func TestInputInfoNotFound(t *testing.T) {
	s := newSession(newFakeProtocol())

	_, err := s.InputInfo("Nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestIsAudioInput(t *testing.T) {
	s := newSession(newFakeProtocol())

	tests := []struct {
		name string
		want bool
	}{
		{"Mic", true},
		{"Music", true},
		{"Desktop Audio", true},
		{"Camera", false},
		{"Overlay", false},
		{"Nope", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.IsAudioInput(tt.name))
		})
	}
}

func TestMuteAndUnmuteInput(t *testing.T) {
	fake := newFakeProtocol()
	s := newSession(fake)

	require.NoError(t, s.MuteInput("Mic"))
	assert.True(t, fake.muted["Mic"])

	require.NoError(t, s.UnmuteInput("Mic"))
	assert.False(t, fake.muted["Mic"])
}

func TestMuteInputNonAudio(t *testing.T) {
	s := newSession(newFakeProtocol())

	require.ErrorIs(t, s.MuteInput("Overlay"), ErrNotFound)
	require.ErrorIs(t, s.UnmuteInput("Nope"), ErrNotFound)
}

func TestToggleInputMute(t *testing.T) {
	fake := newFakeProtocol()
	s := newSession(fake)

	muted, err := s.ToggleInputMute("Music")
	require.NoError(t, err)
	assert.False(t, muted, "Music starts muted, the first toggle unmutes")
	assert.False(t, fake.muted["Music"])

	muted, err = s.ToggleInputMute("Music")
	require.NoError(t, err)
	assert.True(t, muted)
	assert.True(t, fake.muted["Music"])
}

func TestToggleInputMuteNotFound(t *testing.T) {
	s := newSession(newFakeProtocol())

	_, err := s.ToggleInputMute("Camera")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMuteAllAudio(t *testing.T) {
	fake := newFakeProtocol()
	s := newSession(fake)

	require.NoError(t, s.MuteAllAudio())
	assert.Equal(t, map[string]bool{
		"Mic":           true,
		"Music":         true,
		"Desktop Audio": true,
	}, fake.muted)
}

func TestUnmuteAllAudio(t *testing.T) {
	fake := newFakeProtocol()
	s := newSession(fake)

	require.NoError(t, s.UnmuteAllAudio())
	assert.Equal(t, map[string]bool{
		"Mic":           false,
		"Music":         false,
		"Desktop Audio": false,
	}, fake.muted)
}

func TestMuteAllAudioSkipsFailingInput(t *testing.T) {
	fake := newFakeProtocol()
	fake.failMute["Music"] = true
	s := newSession(fake)

	require.NoError(t, s.MuteAllAudio(), "best-effort sweeps never fail on a single input")
	assert.True(t, fake.muted["Mic"])
	assert.True(t, fake.muted["Desktop Audio"])
	assert.True(t, fake.muted["Music"], "Music was already muted and stays untouched")
}

func TestMuteAllBut(t *testing.T) {
	fake := newFakeProtocol()
	s := newSession(fake)

	require.NoError(t, s.MuteAllBut("Music"))
	assert.Equal(t, map[string]bool{
		"Mic":           true,
		"Music":         false,
		"Desktop Audio": true,
	}, fake.muted, "the kept input ends unmuted even if it was muted before")
}

func TestUnmuteOnly(t *testing.T) {
	fake := newFakeProtocol()
	fake.muted = map[string]bool{"Mic": false, "Music": false, "Desktop Audio": false}
	s := newSession(fake)

	require.NoError(t, s.UnmuteOnly("Mic"))
	assert.Equal(t, map[string]bool{
		"Mic":           false,
		"Music":         true,
		"Desktop Audio": true,
	}, fake.muted)
}

func TestUnmuteOnlyMatchesManualSequence(t *testing.T) {
	direct := newFakeProtocol()
	require.NoError(t, newSession(direct).UnmuteOnly("Desktop Audio"))

	manual := newFakeProtocol()
	s := newSession(manual)
	require.NoError(t, s.MuteAllAudio())
	require.NoError(t, s.UnmuteInput("Desktop Audio"))

	assert.Equal(t, manual.muted, direct.muted,
		"UnmuteOnly produces the same mute-state vector as the two-step sequence")
}
