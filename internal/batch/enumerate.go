package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/farzanhk9/Story-Post-Square/internal/domain"
)

// extensionOrder fixes the order extension groups are processed in. Files
// sort lexically inside their group and the groups concatenate in this
// order, so a rerun over the same folder always sees the same sequence.
var extensionOrder = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

// ListInputs returns the full paths of every supported image directly under
// dir. Subdirectories are not descended into; extension matching ignores
// case.
func ListInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input folder: %w", err)
	}

	groups := make(map[string][]string, len(extensionOrder))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		groups[ext] = append(groups[ext], entry.Name())
	}

	var files []string
	for _, ext := range extensionOrder {
		names := groups[ext]
		sort.Strings(names)
		for _, name := range names {
			files = append(files, filepath.Join(dir, name))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", domain.ErrNoInputs, dir)
	}
	return files, nil
}
