// Package document reads and writes annotation lists as TOML files.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/inkpad/internal/core"
	"github.com/bethropolis/inkpad/internal/logger"
	"github.com/bethropolis/inkpad/internal/types"
)

// Version is the document format written by Save.
const Version = 1

// ErrUnsupportedVersion is returned when a file declares a newer format.
var ErrUnsupportedVersion = errors.New("unsupported document version")

type file struct {
	Version     int                `toml:"version"`
	Annotations []types.Annotation `toml:"annotation"`
}

// Encode returns the TOML form of list.
func Encode(list []types.Annotation) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(file{Version: Version, Annotations: list}); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a document. A missing version is read as version 1.
// Annotations with blank text are dropped and a missing font or
// non-positive size falls back to the editor defaults.
func Decode(data []byte) ([]types.Annotation, error) {
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if !md.IsDefined("version") {
		f.Version = Version
	}
	if f.Version < 1 || f.Version > Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, f.Version)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Document: ignoring unknown keys %v", undecoded)
	}
	return normalize(f.Annotations), nil
}

func normalize(list []types.Annotation) []types.Annotation {
	defaults := core.DefaultDefaults()
	var out []types.Annotation
	for i, a := range list {
		if strings.TrimSpace(a.Text) == "" {
			logger.Warnf("Document: skipping annotation %d with blank text", i)
			continue
		}
		if strings.TrimSpace(a.Font) == "" {
			logger.Warnf("Document: annotation %d has no font, using '%s'", i, defaults.Font)
			a.Font = defaults.Font
		}
		if a.FontSize <= 0 {
			logger.Warnf("Document: annotation %d has font size %d, using %d", i, a.FontSize, defaults.FontSize)
			a.FontSize = defaults.FontSize
		}
		out = append(out, a)
	}
	return out
}

// Load reads the document at path.
func Load(path string) ([]types.Annotation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read '%s': %w", path, err)
	}
	list, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", path, err)
	}
	logger.Debugf("Document: loaded %d annotation(s) from '%s'", len(list), path)
	return list, nil
}

// Save writes list to path through a temporary file in the same directory,
// so a failed write leaves the old file intact.
func Save(path string, list []types.Annotation) error {
	data, err := Encode(list)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("save '%s': %w", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save '%s': %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save '%s': %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save '%s': %w", path, err)
	}
	logger.Debugf("Document: saved %d annotation(s) to '%s'", len(list), path)
	return nil
}
