package cities

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Load picks a loader by file extension: .yaml/.yml, or .osm/.xml/.pbf.
func Load(ctx context.Context, path string) (*Registry, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".osm", ".xml", ".pbf":
		return LoadOSM(ctx, path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}
