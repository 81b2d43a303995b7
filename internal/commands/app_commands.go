// Package commands registers the built-in ':' commands.
package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/inkpad/internal/core"
	"github.com/bethropolis/inkpad/internal/logger"
	"github.com/bethropolis/inkpad/internal/plugin"
	"github.com/bethropolis/inkpad/internal/types"
)

var errNoSelection = errors.New("no annotation selected")

// RegisterAppCommands registers every built-in command on api.
func RegisterAppCommands(api plugin.AnnotatorAPI) {
	RegisterAnnotationCommands(api)
	RegisterDocumentCommands(api)
	RegisterThemeCommands(api)
}

func register(api plugin.AnnotatorAPI, cmds map[string]plugin.CommandFunc) {
	for name, fn := range cmds {
		if err := api.RegisterCommand(name, fn); err != nil {
			logger.Warnf("Failed to register ':%s' command: %v", name, err)
		}
	}
}

// selectionEdit runs cmd against the current annotation.
func selectionEdit(api plugin.AnnotatorAPI, cmd core.Command) error {
	if _, _, ok := api.Selected(); !ok {
		return errNoSelection
	}
	if !api.Execute(cmd) {
		api.SetStatusMessage("No change")
	}
	return nil
}

// RegisterAnnotationCommands registers add, font, size, align, the style
// toggles, delete, undo and redo.
func RegisterAnnotationCommands(api plugin.AnnotatorAPI) {
	register(api, map[string]plugin.CommandFunc{
		"add": func(args []string) error {
			text := strings.Join(args, " ")
			if !api.Execute(core.Command{Kind: core.CmdAdd, Text: text}) {
				return errors.New("usage: add <text>")
			}
			return nil
		},
		"font": func(args []string) error {
			if len(args) == 0 {
				a, _, ok := api.Selected()
				if !ok {
					return errNoSelection
				}
				api.SetStatusMessage("Font: %s", a.Font)
				return nil
			}
			return selectionEdit(api, core.Command{Kind: core.CmdSetFont, Font: strings.Join(args, " ")})
		},
		"size": func(args []string) error {
			if len(args) != 1 {
				return errors.New("usage: size <n>")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return fmt.Errorf("invalid size '%s'", args[0])
			}
			return selectionEdit(api, core.Command{Kind: core.CmdSetFontSize, Size: n})
		},
		"align": func(args []string) error {
			if len(args) != 1 {
				return errors.New("usage: align <left|center|right>")
			}
			a, err := types.ParseAlignment(args[0])
			if err != nil {
				return err
			}
			return selectionEdit(api, core.Command{Kind: core.CmdAlign, Alignment: a})
		},
		"bold": func([]string) error {
			return selectionEdit(api, core.Command{Kind: core.CmdToggleBold})
		},
		"italic": func([]string) error {
			return selectionEdit(api, core.Command{Kind: core.CmdToggleItalic})
		},
		"underline": func([]string) error {
			return selectionEdit(api, core.Command{Kind: core.CmdToggleUnderline})
		},
		"delete": func([]string) error {
			return selectionEdit(api, core.Command{Kind: core.CmdDelete})
		},
		"undo": func([]string) error {
			if !api.Execute(core.Command{Kind: core.CmdUndo}) {
				api.SetStatusMessage("Nothing to undo")
			}
			return nil
		},
		"redo": func([]string) error {
			if !api.Execute(core.Command{Kind: core.CmdRedo}) {
				api.SetStatusMessage("Nothing to redo")
			}
			return nil
		},
	})
}

// RegisterDocumentCommands registers w, e, export, copy, paste, q and q!.
func RegisterDocumentCommands(api plugin.AnnotatorAPI) {
	register(api, map[string]plugin.CommandFunc{
		"w": func(args []string) error {
			if err := api.SaveDocument(strings.Join(args, " ")); err != nil {
				return err
			}
			api.SetStatusMessage("Saved %s", api.FilePath())
			return nil
		},
		"e": func(args []string) error {
			if len(args) == 0 {
				return errors.New("usage: e <path>")
			}
			if api.IsModified() {
				return errors.New("unsaved changes, save with :w first")
			}
			path := strings.Join(args, " ")
			if err := api.LoadDocument(path); err != nil {
				return err
			}
			api.SetStatusMessage("Opened %s (%d annotations)", path, len(api.Annotations()))
			return nil
		},
		"export": func(args []string) error {
			if len(args) == 0 {
				return errors.New("usage: export <file.png>")
			}
			path := strings.Join(args, " ")
			if err := api.ExportPNG(path); err != nil {
				return err
			}
			api.SetStatusMessage("Exported %s", path)
			return nil
		},
		"copy": func([]string) error {
			a, _, ok := api.Selected()
			if !ok {
				return errNoSelection
			}
			if err := api.CopyText(a.Text); err != nil {
				return err
			}
			api.SetStatusMessage("Copied %q", a.Text)
			return nil
		},
		"paste": func([]string) error {
			text, err := api.PasteText()
			if err != nil {
				return err
			}
			// Annotations are single-line labels.
			text = strings.Join(strings.Fields(text), " ")
			if !api.Execute(core.Command{Kind: core.CmdAdd, Text: text}) {
				return errors.New("clipboard has no text")
			}
			return nil
		},
		"q": func([]string) error {
			api.RequestQuit(false)
			return nil
		},
		"q!": func([]string) error {
			api.RequestQuit(true)
			return nil
		},
	})
}
