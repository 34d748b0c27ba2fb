package obs

// Sources returns every source nested inside a group in the current scene,
// in the order OBS reports them.
//
// Top-level items that are not groups are skipped on purpose: this wrapper
// assumes all sources of interest live inside named groups (folders), so
// ungrouped sources are invisible to Sources and to every method built on
// it. A group is detected by asking OBS for its children; the request fails
// for anything that is not a group.
func (s *Session) Sources() ([]Source, error) {
	scene, err := s.rpc.CurrentProgramScene()
	if err != nil {
		return nil, err
	}
	items, err := s.rpc.SceneItems(scene)
	if err != nil {
		return nil, err
	}

	var sources []Source
	for _, item := range items {
		children, err := s.rpc.GroupItems(item.Name)
		if err != nil {
			// Not a group.
			continue
		}
		for _, child := range children {
			sources = append(sources, Source{Name: child.Name, Kind: child.Kind})
		}
	}
	return sources, nil
}

// ToggleSource inverts the visibility of a grouped source in the current
// scene. It returns ErrNotFound when no group contains a source with that
// name.
func (s *Session) ToggleSource(name string) error {
	group, id, err := s.findGroupedItem(name)
	if err != nil {
		return err
	}
	enabled, err := s.rpc.SceneItemEnabled(group, id)
	if err != nil {
		return err
	}
	return s.rpc.SetSceneItemEnabled(group, id, !enabled)
}

// findGroupedItem locates name inside the groups of the current scene and
// returns the enclosing group plus the scene-item id, which set-visibility
// requests are addressed by.
func (s *Session) findGroupedItem(name string) (group string, id int, err error) {
	scene, err := s.rpc.CurrentProgramScene()
	if err != nil {
		return "", 0, err
	}
	items, err := s.rpc.SceneItems(scene)
	if err != nil {
		return "", 0, err
	}

	for _, item := range items {
		children, err := s.rpc.GroupItems(item.Name)
		if err != nil {
			continue
		}
		for _, child := range children {
			if child.Name == name {
				return item.Name, child.ID, nil
			}
		}
	}
	return "", 0, notFound("source", name)
}
