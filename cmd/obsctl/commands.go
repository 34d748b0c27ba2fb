package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"obsctl/internal/obs"
	"obsctl/internal/setup"
)

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the OBS and obs-websocket versions",
		Args:  noArgs,
		RunE: a.withSession(func(s *obs.Session, _ []string) error {
			v, err := s.Version()
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.out.EmitJSON(map[string]any{"version": v})
			}
			a.out.Print(v)
			return nil
		}),
	}
}

// statusCommand prints the same overview the tool's predecessor printed at
// startup: versions, scenes, grouped sources, and input names.
func (a *app) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show versions, scenes, sources, and inputs at a glance",
		Args:  noArgs,
		RunE: a.withSession(func(s *obs.Session, _ []string) error {
			v, err := s.Version()
			if err != nil {
				return err
			}
			scenes, err := s.Scenes()
			if err != nil {
				return err
			}
			current, err := s.CurrentScene()
			if err != nil {
				return err
			}
			sources, err := s.Sources()
			if err != nil {
				return err
			}
			inputs, err := s.InputNames()
			if err != nil {
				return err
			}

			if a.jsonOut {
				return a.out.EmitJSON(map[string]any{
					"version":      v,
					"scenes":       scenes,
					"currentScene": current,
					"sources":      sources,
					"inputs":       inputs,
				})
			}

			a.out.Print(v)
			a.out.Print("Current scene: " + a.out.Bold(current))
			a.out.Print("Scenes found: " + strings.Join(scenes, ", "))
			names := make([]string, 0, len(sources))
			for _, src := range sources {
				names = append(names, src.Name)
			}
			a.out.Print("Video sources found: " + strings.Join(names, ", "))
			a.out.Print("Audio inputs found: " + strings.Join(inputs, ", "))
			return nil
		}),
	}
}

func (a *app) sceneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scene",
		Short: "List and switch scenes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all scenes",
		Args:  noArgs,
		RunE: a.withSession(func(s *obs.Session, _ []string) error {
			scenes, err := s.Scenes()
			if err != nil {
				return err
			}
			current, err := s.CurrentScene()
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.out.EmitJSON(map[string]any{"scenes": scenes, "currentScene": current})
			}
			a.out.Print(a.out.Bold("Scenes:"))
			for _, scene := range scenes {
				marker := "  "
				if scene == current {
					marker = "* "
				}
				a.out.Print(marker + scene)
			}
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "current",
		Short: "Show the current program scene",
		Args:  noArgs,
		RunE: a.withSession(func(s *obs.Session, _ []string) error {
			current, err := s.CurrentScene()
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.out.EmitJSON(map[string]any{"currentScene": current})
			}
			a.out.Print(current)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <name>",
		Short: "Switch the program scene",
		Args:  exactArgs(1),
		RunE: a.withSession(func(s *obs.Session, args []string) error {
			name := args[0]
			if err := s.ChangeScene(name); err != nil {
				return err
			}
			if a.jsonOut {
				return a.out.EmitJSON(map[string]any{"action": "scene", "scene": name})
			}
			a.out.Success("Switched to scene: " + name)
			return nil
		}),
	})

	return cmd
}

func (a *app) sourceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "source",
		Short: "List and toggle grouped sources in the current scene",
		Long: "List and toggle sources in the current scene.\n\n" +
			"Only sources nested inside a group (folder) are visible to these\n" +
			"commands; ungrouped top-level sources are not enumerated.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List grouped sources",
		Args:  noArgs,
		RunE: a.withSession(func(s *obs.Session, _ []string) error {
			sources, err := s.Sources()
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.out.EmitJSON(map[string]any{"sources": sources})
			}
			a.out.Print(a.out.Bold("Sources:"))
			for _, src := range sources {
				a.out.Print("  " + src.Name + " " + a.out.Gray("("+src.Kind+")"))
			}
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <name>",
		Short: "Invert the visibility of a grouped source",
		Args:  exactArgs(1),
		RunE: a.withSession(func(s *obs.Session, args []string) error {
			name := args[0]
			if err := s.ToggleSource(name); err != nil {
				return err
			}
			if a.jsonOut {
				return a.out.EmitJSON(map[string]any{"action": "toggle", "source": name})
			}
			a.out.Success("Toggled source: " + name)
			return nil
		}),
	})

	return cmd
}

func (a *app) inputCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "input",
		Short: "Inspect and mute inputs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all inputs",
		Args:  noArgs,
		RunE: a.withSession(func(s *obs.Session, _ []string) error {
			inputs, err := s.Inputs()
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.out.EmitJSON(map[string]any{"inputs": inputs})
			}
			a.out.Print(a.out.Bold("Inputs:"))
			for _, input := range inputs {
				a.out.Print("  " + input.Name + " " + a.out.Gray("("+input.Kind+")"))
				if a.verbose && s.IsAudioInput(input.Name) {
					info, err := s.InputInfo(input.Name)
					if err == nil {
						a.out.Detail(fmt.Sprintf("    muted: %t", info.Muted))
					}
				}
			}
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "info <name>",
		Short: "Show kind and mute state of an input",
		Args:  exactArgs(1),
		RunE: a.withSession(func(s *obs.Session, args []string) error {
			info, err := s.InputInfo(args[0])
			if err != nil {
				return err
			}
			if a.jsonOut {
				return a.out.EmitJSON(info)
			}
			a.out.Print("Name:  " + info.Name)
			a.out.Print("Kind:  " + info.Kind)
			a.out.Print(fmt.Sprintf("Muted: %t", info.Muted))
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "mute <name>",
		Short: "Mute an audio input",
		Args:  exactArgs(1),
		RunE: a.withSession(func(s *obs.Session, args []string) error {
			name := args[0]
			if err := s.MuteInput(name); err != nil {
				return err
			}
			return a.reportMute(name, true)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "unmute <name>",
		Short: "Unmute an audio input",
		Args:  exactArgs(1),
		RunE: a.withSession(func(s *obs.Session, args []string) error {
			name := args[0]
			if err := s.UnmuteInput(name); err != nil {
				return err
			}
			return a.reportMute(name, false)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <name>",
		Short: "Invert the mute state of an audio input",
		Args:  exactArgs(1),
		RunE: a.withSession(func(s *obs.Session, args []string) error {
			name := args[0]
			muted, err := s.ToggleInputMute(name)
			if err != nil {
				return err
			}
			return a.reportMute(name, muted)
		}),
	})

	return cmd
}

func (a *app) reportMute(name string, muted bool) error {
	if a.jsonOut {
		return a.out.EmitJSON(map[string]any{"input": name, "muted": muted})
	}
	if muted {
		a.out.Success("Muted input: " + name)
	} else {
		a.out.Success("Unmuted input: " + name)
	}
	return nil
}

func (a *app) audioCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audio",
		Short: "Bulk mute policies over all audio inputs",
		Long: "Bulk mute policies over all audio-capable inputs.\n\n" +
			"These sweeps are best-effort: inputs without audio are skipped and\n" +
			"an input that fails to change does not abort the rest.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "mute-all",
		Short: "Mute every audio input",
		Args:  noArgs,
		RunE: a.withSession(func(s *obs.Session, _ []string) error {
			if err := s.MuteAllAudio(); err != nil {
				return err
			}
			return a.reportSweep("mute-all", "")
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "unmute-all",
		Short: "Unmute every audio input",
		Args:  noArgs,
		RunE: a.withSession(func(s *obs.Session, _ []string) error {
			if err := s.UnmuteAllAudio(); err != nil {
				return err
			}
			return a.reportSweep("unmute-all", "")
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "mute-all-but <name>",
		Short: "Mute every audio input except one",
		Args:  exactArgs(1),
		RunE: a.withSession(func(s *obs.Session, args []string) error {
			if err := s.MuteAllBut(args[0]); err != nil {
				return err
			}
			return a.reportSweep("mute-all-but", args[0])
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "solo <name>",
		Short: "Unmute one audio input and mute all others",
		Args:  exactArgs(1),
		RunE: a.withSession(func(s *obs.Session, args []string) error {
			if err := s.UnmuteOnly(args[0]); err != nil {
				return err
			}
			return a.reportSweep("solo", args[0])
		}),
	})

	return cmd
}

func (a *app) reportSweep(action, keep string) error {
	if a.jsonOut {
		payload := map[string]any{"action": action}
		if keep != "" {
			payload["except"] = keep
		}
		return a.out.EmitJSON(payload)
	}
	switch action {
	case "mute-all":
		a.out.Success("Muted all audio inputs")
	case "unmute-all":
		a.out.Success("Unmuted all audio inputs")
	case "mute-all-but":
		a.out.Success("Muted all audio inputs except: " + keep)
	case "solo":
		a.out.Success("Soloed audio input: " + keep)
	}
	return nil
}

func (a *app) recordCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Start and stop recording",
	}
	cmd.AddCommand(a.outputControlCommand("start", "Start recording", "Recording started",
		func(s *obs.Session) error { return s.StartRecord() }))
	cmd.AddCommand(a.outputControlCommand("stop", "Stop recording", "Recording stopped",
		func(s *obs.Session) error { return s.StopRecord() }))
	return cmd
}

func (a *app) streamCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Start and stop streaming",
	}
	cmd.AddCommand(a.outputControlCommand("start", "Start streaming", "Stream started",
		func(s *obs.Session) error { return s.StartStream() }))
	cmd.AddCommand(a.outputControlCommand("stop", "Stop streaming", "Stream stopped",
		func(s *obs.Session) error { return s.StopStream() }))
	return cmd
}

// outputControlCommand builds the fire-and-forget record/stream commands,
// which differ only in the call and the confirmation line.
func (a *app) outputControlCommand(use, short, confirmation string, fn func(*obs.Session) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  noArgs,
		RunE: a.withSession(func(s *obs.Session, _ []string) error {
			if err := fn(s); err != nil {
				return err
			}
			if a.jsonOut {
				return a.out.EmitJSON(map[string]any{"action": use, "status": "ok"})
			}
			a.out.Success(confirmation)
			return nil
		}),
	}
}

func (a *app) initCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the obsctl config file",
		Args:  noArgs,
		RunE: func(*cobra.Command, []string) error {
			return setup.Run(a.out, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}
