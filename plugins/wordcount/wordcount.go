// Package wordcount adds the :wc command.
package wordcount

import (
	"fmt"
	"strings"

	"github.com/bethropolis/inkpad/internal/plugin"
	"github.com/bethropolis/inkpad/internal/types"
	"github.com/rivo/uniseg"
)

// Ensure WordCount implements plugin.Plugin
var _ plugin.Plugin = (*WordCount)(nil)

// WordCount counts annotations, words and characters.
type WordCount struct {
	api plugin.AnnotatorAPI
}

// New creates a new instance of the WordCount plugin.
func New() plugin.Plugin {
	return &WordCount{}
}

// Name returns the unique name of the plugin.
func (p *WordCount) Name() string {
	return "wordcount"
}

// Initialize registers :wc.
func (p *WordCount) Initialize(api plugin.AnnotatorAPI) error {
	p.api = api
	if err := api.RegisterCommand("wc", p.executeWordCount); err != nil {
		return fmt.Errorf("failed to register 'wc' command: %w", err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this simple plugin).
func (p *WordCount) Shutdown() error {
	return nil
}

// Stats are the totals reported by :wc.
type Stats struct {
	Annotations int
	Words       int
	Characters  int // grapheme clusters
}

// Count totals list.
func Count(list []types.Annotation) Stats {
	s := Stats{Annotations: len(list)}
	for _, a := range list {
		s.Words += len(strings.Fields(a.Text))
		s.Characters += uniseg.GraphemeClusterCount(a.Text)
	}
	return s
}

func (p *WordCount) executeWordCount(args []string) error {
	if p.api == nil {
		return fmt.Errorf("wordcount plugin not initialized with API")
	}
	s := Count(p.api.Annotations())
	p.api.SetStatusMessage("Annotations: %d, Words: %d, Characters: %d", s.Annotations, s.Words, s.Characters)
	return nil
}
