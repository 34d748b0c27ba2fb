// Package obs wraps a single obs-websocket session behind a small facade.
//
// The wire protocol (auth handshake, JSON framing, request IDs, timeouts) is
// handled entirely by github.com/andreykaipov/goobs; this package only decides
// which requests to issue and how to post-process their responses.
package obs

import (
	"errors"
	"fmt"

	"obsctl/internal/config"
)

// ErrNotFound marks a scene, source, or input name that the connected OBS
// instance does not know about. Callers classify with errors.Is.
var ErrNotFound = errors.New("not found")

// Source is a scene item that lives inside a group in the current scene.
type Source struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// Input is any OBS input, audio-capable or not.
type Input struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// InputInfo is an Input plus its current mute state. Muted is always false
// for inputs that carry no audio.
type InputInfo struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Muted bool   `json:"muted"`
}

type sceneItem struct {
	Name string
	Kind string
	ID   int
}

// protocol is the slice of the obs-websocket request surface the facade
// needs. The goobs client satisfies it via the adapter in client.go; tests
// substitute an in-memory fake.
type protocol interface {
	Version() (obsVersion, websocketVersion string, err error)
	SceneList() ([]string, error)
	CurrentProgramScene() (string, error)
	SetCurrentProgramScene(name string) error

	SceneItems(scene string) ([]sceneItem, error)
	GroupItems(group string) ([]sceneItem, error)
	SceneItemEnabled(scene string, id int) (bool, error)
	SetSceneItemEnabled(scene string, id int, enabled bool) error

	InputList() ([]Input, error)
	InputMuted(name string) (bool, error)
	SetInputMute(name string, muted bool) error

	StartRecord() error
	StopRecord() error
	StartStream() error
	StopStream() error

	Disconnect() error
}

// Session holds exactly one open connection to OBS. It is not safe for
// concurrent use; it issues one in-flight request at a time.
type Session struct {
	rpc protocol
}

// Connect dials the obs-websocket endpoint described by cfg and
// authenticates. Any dial or auth failure is returned immediately.
func Connect(cfg config.Config) (*Session, error) {
	rpc, err := dial(cfg)
	if err != nil {
		return nil, err
	}
	return &Session{rpc: rpc}, nil
}

func newSession(rpc protocol) *Session {
	return &Session{rpc: rpc}
}

// Close tears down the websocket connection.
func (s *Session) Close() error {
	return s.rpc.Disconnect()
}

func notFound(what, name string) error {
	return fmt.Errorf("%s %q: %w", what, name, ErrNotFound)
}
