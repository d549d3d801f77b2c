package artifact

import (
	"io/fs"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// Locator discovers runtime control programs under a directory tree.
type Locator struct {
	root string
	log  *zap.Logger
}

// NewLocator creates a locator searching recursively from root.
func NewLocator(root string, log *zap.Logger) *Locator {
	return &Locator{root: root, log: log}
}

// Find walks the tree and returns every matching artifact, ordered
// ascending by group id. Files with the same group id in different
// subdirectories are all kept, in traversal order relative to each other.
// A traversal failure returns an error and no artifacts; callers decide
// whether that is fatal.
func (l *Locator) Find() ([]*Info, error) {
	var artifacts []*Info

	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		groupID, ok := ParseName(d.Name())
		if !ok {
			return nil
		}

		info := NewInfo(path, groupID)
		artifacts = append(artifacts, info)

		l.log.Debug("found ASM file",
			zap.String("path", info.Path),
			zap.Int("group", info.GroupID),
			zap.Int("uc", info.ControllerIndex),
			zap.Int("colStart", info.ColumnStart),
			zap.Int("colEnd", info.ColumnEnd))

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(artifacts, func(i, j int) bool {
		return artifacts[i].GroupID < artifacts[j].GroupID
	})

	return artifacts, nil
}
