package obs

import (
	"fmt"

	"github.com/andreykaipov/goobs"
	"github.com/andreykaipov/goobs/api/requests/inputs"
	"github.com/andreykaipov/goobs/api/requests/sceneitems"
	"github.com/andreykaipov/goobs/api/requests/scenes"

	"obsctl/internal/config"
)

// goobsProtocol adapts *goobs.Client to the protocol interface. It is the
// only place in the repository that touches goobs request/response types.
type goobsProtocol struct {
	client *goobs.Client
}

var _ protocol = (*goobsProtocol)(nil)

func dial(cfg config.Config) (*goobsProtocol, error) {
	client, err := goobs.New(
		fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		goobs.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to obs-websocket at %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	return &goobsProtocol{client: client}, nil
}

func (p *goobsProtocol) Version() (string, string, error) {
	v, err := p.client.General.GetVersion()
	if err != nil {
		return "", "", err
	}
	return v.ObsVersion, v.ObsWebSocketVersion, nil
}

func (p *goobsProtocol) SceneList() ([]string, error) {
	resp, err := p.client.Scenes.GetSceneList()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(resp.Scenes))
	for _, scene := range resp.Scenes {
		names = append(names, scene.SceneName)
	}
	return names, nil
}

func (p *goobsProtocol) CurrentProgramScene() (string, error) {
	resp, err := p.client.Scenes.GetCurrentProgramScene()
	if err != nil {
		return "", err
	}
	return resp.CurrentProgramSceneName, nil
}

func (p *goobsProtocol) SetCurrentProgramScene(name string) error {
	_, err := p.client.Scenes.SetCurrentProgramScene(
		scenes.NewSetCurrentProgramSceneParams().WithSceneName(name),
	)
	return err
}

func (p *goobsProtocol) SceneItems(scene string) ([]sceneItem, error) {
	resp, err := p.client.SceneItems.GetSceneItemList(
		sceneitems.NewGetSceneItemListParams().WithSceneName(scene),
	)
	if err != nil {
		return nil, err
	}
	items := make([]sceneItem, 0, len(resp.SceneItems))
	for _, item := range resp.SceneItems {
		items = append(items, sceneItem{
			Name: item.SourceName,
			Kind: item.InputKind,
			ID:   item.SceneItemID,
		})
	}
	return items, nil
}

func (p *goobsProtocol) GroupItems(group string) ([]sceneItem, error) {
	resp, err := p.client.SceneItems.GetGroupSceneItemList(
		sceneitems.NewGetGroupSceneItemListParams().WithSceneName(group),
	)
	if err != nil {
		return nil, err
	}
	items := make([]sceneItem, 0, len(resp.SceneItems))
	for _, item := range resp.SceneItems {
		items = append(items, sceneItem{
			Name: item.SourceName,
			Kind: item.InputKind,
			ID:   item.SceneItemID,
		})
	}
	return items, nil
}

func (p *goobsProtocol) SceneItemEnabled(scene string, id int) (bool, error) {
	resp, err := p.client.SceneItems.GetSceneItemEnabled(
		sceneitems.NewGetSceneItemEnabledParams().
			WithSceneName(scene).
			WithSceneItemId(id),
	)
	if err != nil {
		return false, err
	}
	return resp.SceneItemEnabled, nil
}

func (p *goobsProtocol) SetSceneItemEnabled(scene string, id int, enabled bool) error {
	_, err := p.client.SceneItems.SetSceneItemEnabled(
		sceneitems.NewSetSceneItemEnabledParams().
			WithSceneName(scene).
			WithSceneItemId(id).
			WithSceneItemEnabled(enabled),
	)
	return err
}

func (p *goobsProtocol) InputList() ([]Input, error) {
	resp, err := p.client.Inputs.GetInputList(inputs.NewGetInputListParams())
	if err != nil {
		return nil, err
	}
	list := make([]Input, 0, len(resp.Inputs))
	for _, input := range resp.Inputs {
		list = append(list, Input{
			Name: input.InputName,
			Kind: input.InputKind,
		})
	}
	return list, nil
}

func (p *goobsProtocol) InputMuted(name string) (bool, error) {
	resp, err := p.client.Inputs.GetInputMute(
		inputs.NewGetInputMuteParams().WithInputName(name),
	)
	if err != nil {
		return false, err
	}
	return resp.InputMuted, nil
}

func (p *goobsProtocol) SetInputMute(name string, muted bool) error {
	_, err := p.client.Inputs.SetInputMute(
		inputs.NewSetInputMuteParams().
			WithInputName(name).
			WithInputMuted(muted),
	)
	return err
}

func (p *goobsProtocol) StartRecord() error {
	_, err := p.client.Record.StartRecord()
	return err
}

func (p *goobsProtocol) StopRecord() error {
	_, err := p.client.Record.StopRecord()
	return err
}

func (p *goobsProtocol) StartStream() error {
	_, err := p.client.Stream.StartStream()
	return err
}

func (p *goobsProtocol) StopStream() error {
	_, err := p.client.Stream.StopStream()
	return err
}

func (p *goobsProtocol) Disconnect() error {
	return p.client.Disconnect()
}
