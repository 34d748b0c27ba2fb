package obs

import (
	"errors"
	"fmt"
	"slices"
)

type itemKey struct {
	scene string
	id    int
}

// fakeProtocol is an in-memory stand-in for the obs-websocket client. Inputs
// present in muted are audio-capable; everything else rejects mute requests
// the way OBS rejects them for non-audio sources.
type fakeProtocol struct {
	obsVersion string
	wsVersion  string

	scenes  []string
	current string

	items   map[string][]sceneItem // scene -> top-level items
	groups  map[string][]sceneItem // group -> children
	enabled map[itemKey]bool

	inputs   []Input
	muted    map[string]bool
	failMute map[string]bool

	recording bool
	streaming bool
	closed    bool
}

// newFakeProtocol returns a fixture with two scenes, two groups holding two
// sources each, one ungrouped top-level source, and a mix of audio and
// non-audio inputs.
func newFakeProtocol() *fakeProtocol {
	return &fakeProtocol{
		obsVersion: "30.1.2",
		wsVersion:  "5.4.2",
		scenes:     []string{"Main", "BRB"},
		current:    "Main",
		items: map[string][]sceneItem{
			"Main": {
				{Name: "Audio", Kind: "group"},
				{Name: "Video", Kind: "group"},
				{Name: "Background", Kind: "image_source"},
			},
			"BRB": {},
		},
		groups: map[string][]sceneItem{
			"Audio": {
				{Name: "Mic", Kind: "coreaudio_input_capture", ID: 4},
				{Name: "Music", Kind: "ffmpeg_source", ID: 5},
			},
			"Video": {
				{Name: "Camera", Kind: "av_capture_input", ID: 7},
				{Name: "Overlay", Kind: "image_source", ID: 8},
			},
		},
		enabled: map[itemKey]bool{
			{"Audio", 4}: true,
			{"Audio", 5}: true,
			{"Video", 7}: true,
			{"Video", 8}: false,
		},
		inputs: []Input{
			{Name: "Mic", Kind: "coreaudio_input_capture"},
			{Name: "Music", Kind: "ffmpeg_source"},
			{Name: "Desktop Audio", Kind: "coreaudio_output_capture"},
			{Name: "Camera", Kind: "av_capture_input"},
			{Name: "Overlay", Kind: "image_source"},
		},
		muted: map[string]bool{
			"Mic":           false,
			"Music":         true,
			"Desktop Audio": false,
		},
		failMute: map[string]bool{},
	}
}

func (f *fakeProtocol) Version() (string, string, error) {
	return f.obsVersion, f.wsVersion, nil
}

func (f *fakeProtocol) SceneList() ([]string, error) {
	return slices.Clone(f.scenes), nil
}

func (f *fakeProtocol) CurrentProgramScene() (string, error) {
	return f.current, nil
}

func (f *fakeProtocol) SetCurrentProgramScene(name string) error {
	if !slices.Contains(f.scenes, name) {
		return fmt.Errorf("no scene named %q", name)
	}
	f.current = name
	return nil
}

func (f *fakeProtocol) SceneItems(scene string) ([]sceneItem, error) {
	items, ok := f.items[scene]
	if !ok {
		return nil, fmt.Errorf("no scene named %q", scene)
	}
	return slices.Clone(items), nil
}

func (f *fakeProtocol) GroupItems(group string) ([]sceneItem, error) {
	children, ok := f.groups[group]
	if !ok {
		return nil, fmt.Errorf("source %q is not a group", group)
	}
	return slices.Clone(children), nil
}

func (f *fakeProtocol) SceneItemEnabled(scene string, id int) (bool, error) {
	enabled, ok := f.enabled[itemKey{scene, id}]
	if !ok {
		return false, fmt.Errorf("no scene item %d in %q", id, scene)
	}
	return enabled, nil
}

func (f *fakeProtocol) SetSceneItemEnabled(scene string, id int, enabled bool) error {
	if _, ok := f.enabled[itemKey{scene, id}]; !ok {
		return fmt.Errorf("no scene item %d in %q", id, scene)
	}
	f.enabled[itemKey{scene, id}] = enabled
	return nil
}

func (f *fakeProtocol) InputList() ([]Input, error) {
	return slices.Clone(f.inputs), nil
}

func (f *fakeProtocol) InputMuted(name string) (bool, error) {
	muted, ok := f.muted[name]
	if !ok {
		return false, fmt.Errorf("input %q does not support audio", name)
	}
	return muted, nil
}

func (f *fakeProtocol) SetInputMute(name string, muted bool) error {
	if f.failMute[name] {
		return fmt.Errorf("input %q rejected the request", name)
	}
	if _, ok := f.muted[name]; !ok {
		return fmt.Errorf("input %q does not support audio", name)
	}
	f.muted[name] = muted
	return nil
}

func (f *fakeProtocol) StartRecord() error {
	if f.recording {
		return errors.New("the output is already active")
	}
	f.recording = true
	return nil
}

func (f *fakeProtocol) StopRecord() error {
	if !f.recording {
		return errors.New("the output is not active")
	}
	f.recording = false
	return nil
}

func (f *fakeProtocol) StartStream() error {
	if f.streaming {
		return errors.New("the output is already active")
	}
	f.streaming = true
	return nil
}

func (f *fakeProtocol) StopStream() error {
	if !f.streaming {
		return errors.New("the output is not active")
	}
	f.streaming = false
	return nil
}

func (f *fakeProtocol) Disconnect() error {
	f.closed = true
	return nil
}
