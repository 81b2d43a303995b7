package commands

import (
	"fmt"
	"strings"

	"github.com/bethropolis/inkpad/internal/plugin"
)

// RegisterThemeCommands registers :theme and :themes.
func RegisterThemeCommands(api plugin.AnnotatorAPI) {
	register(api, map[string]plugin.CommandFunc{
		"theme": func(args []string) error {
			if len(args) == 0 {
				api.SetStatusMessage("Current theme: %s", api.GetTheme().Name)
				return nil
			}
			themeName := strings.Join(args, " ")
			if err := api.SetTheme(themeName); err != nil {
				return fmt.Errorf("theme '%s' not found. Available: %s", themeName, strings.Join(api.ListThemes(), ", "))
			}
			api.SetStatusMessage("Theme set to: %s", themeName)
			return nil
		},
		"themes": func([]string) error {
			api.SetStatusMessage("Available themes: %s", strings.Join(api.ListThemes(), ", "))
			return nil
		},
	})
}
