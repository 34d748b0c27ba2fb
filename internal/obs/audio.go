package obs

// Inputs returns every input OBS knows about, audio-capable or not.
func (s *Session) Inputs() ([]Input, error) {
	return s.rpc.InputList()
}

// InputNames returns the names of all inputs.
func (s *Session) InputNames() ([]string, error) {
	inputs, err := s.rpc.InputList()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(inputs))
	for _, input := range inputs {
		names = append(names, input.Name)
	}
	return names, nil
}

// InputInfo returns the kind and mute state of the named input. Inputs that
// carry no audio report Muted as false. Returns ErrNotFound for unknown
// names.
func (s *Session) InputInfo(name string) (InputInfo, error) {
	inputs, err := s.rpc.InputList()
	if err != nil {
		return InputInfo{}, err
	}
	for _, input := range inputs {
		if input.Name != name {
			continue
		}
		info := InputInfo{Name: input.Name, Kind: input.Kind}
		if muted, err := s.rpc.InputMuted(name); err == nil {
			info.Muted = muted
		}
		return info, nil
	}
	return InputInfo{}, notFound("input", name)
}

// IsAudioInput reports whether the named input carries audio. It probes the
// mute state: OBS answers for audio-capable inputs and rejects the request
// for everything else, including unknown names. The rejection is not
// surfaced.
func (s *Session) IsAudioInput(name string) bool {
	_, err := s.rpc.InputMuted(name)
	return err == nil
}

// MuteInput mutes the named audio input. Returns ErrNotFound when the input
// does not exist or carries no audio.
func (s *Session) MuteInput(name string) error {
	return s.setMute(name, true)
}

// UnmuteInput unmutes the named audio input. Returns ErrNotFound when the
// input does not exist or carries no audio.
func (s *Session) UnmuteInput(name string) error {
	return s.setMute(name, false)
}

func (s *Session) setMute(name string, muted bool) error {
	if !s.IsAudioInput(name) {
		return notFound("audio input", name)
	}
	return s.rpc.SetInputMute(name, muted)
}

// ToggleInputMute reads the current mute state and writes the inverse,
// returning the new state. Two round trips instead of the protocol's atomic
// toggle, so the intermediate state stays observable.
func (s *Session) ToggleInputMute(name string) (bool, error) {
	muted, err := s.rpc.InputMuted(name)
	if err != nil {
		return false, notFound("audio input", name)
	}
	next := !muted
	if err := s.rpc.SetInputMute(name, next); err != nil {
		return false, err
	}
	return next, nil
}

// MuteAllAudio mutes every audio-capable input. Best effort: inputs without
// audio are skipped and individual failures do not abort the sweep.
func (s *Session) MuteAllAudio() error {
	return s.sweepMute(func(string) bool { return true })
}

// UnmuteAllAudio unmutes every audio-capable input, best effort.
func (s *Session) UnmuteAllAudio() error {
	return s.sweepMute(func(string) bool { return false })
}

// MuteAllBut mutes every audio-capable input except name, which is ensured
// unmuted.
func (s *Session) MuteAllBut(name string) error {
	return s.sweepMute(func(input string) bool { return input != name })
}

// UnmuteOnly unmutes name and mutes every other audio-capable input. Same
// end state as MuteAllAudio followed by UnmuteInput(name).
func (s *Session) UnmuteOnly(name string) error {
	return s.sweepMute(func(input string) bool { return input != name })
}

// sweepMute applies wantMuted to every audio-capable input. Not atomic: an
// interrupted or partially failing sweep leaves earlier inputs changed and
// later ones untouched.
func (s *Session) sweepMute(wantMuted func(name string) bool) error {
	names, err := s.InputNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		if !s.IsAudioInput(name) {
			continue
		}
		_ = s.rpc.SetInputMute(name, wantMuted(name))
	}
	return nil
}
