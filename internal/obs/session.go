package obs

import (
	"fmt"
	"slices"
)

// Version returns a two-line human-readable summary of the OBS and
// obs-websocket versions.
func (s *Session) Version() (string, error) {
	obsVersion, wsVersion, err := s.rpc.Version()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("OBS version: %s\nobs-websocket version: %s", obsVersion, wsVersion), nil
}

// Scenes returns all scene names in the order OBS reports them.
func (s *Session) Scenes() ([]string, error) {
	return s.rpc.SceneList()
}

// CurrentScene returns the name of the current program scene.
func (s *Session) CurrentScene() (string, error) {
	return s.rpc.CurrentProgramScene()
}

// ChangeScene switches the program scene to name. It returns ErrNotFound
// without touching the current scene when name is unknown.
func (s *Session) ChangeScene(name string) error {
	scenes, err := s.rpc.SceneList()
	if err != nil {
		return err
	}
	if !slices.Contains(scenes, name) {
		return notFound("scene", name)
	}
	return s.rpc.SetCurrentProgramScene(name)
}

// StartRecord starts recording. OBS rejects the request if a recording is
// already running; that error passes through verbatim.
func (s *Session) StartRecord() error {
	return s.rpc.StartRecord()
}

// StopRecord stops the running recording.
func (s *Session) StopRecord() error {
	return s.rpc.StopRecord()
}

// StartStream starts streaming.
func (s *Session) StartStream() error {
	return s.rpc.StartStream()
}

// StopStream stops the running stream.
func (s *Session) StopStream() error {
	return s.rpc.StopStream()
}
