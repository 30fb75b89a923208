// Package charfile loads character documents from disk and bundles a sample
// document.
//
// Documents are JSON; files with a .yaml or .yml extension are converted to
// JSON before the rest of the pipeline sees them.
package charfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/personakit/personakit/pkg/personaerrors"
)

// Load reads one character document and returns its JSON text.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", personaerrors.ErrFileNotFound, path)
		}

		return nil, fmt.Errorf("%w: %w", personaerrors.ErrReadFile, err)
	}

	if isYAMLFile(path) {
		jsonData, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", personaerrors.ErrInvalidYAML, err)
		}

		return jsonData, nil
	}

	return data, nil
}

func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))

	return ext == ".yaml" || ext == ".yml"
}
