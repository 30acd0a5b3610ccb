package corpus

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SiblingSpecialists returns the sibling specialist directory names for a
// specialist skill document, plus the specialist's own name. The sibling
// set is the other subdirectories of the same skills/ parent, computed on
// demand and returned sorted. A path with no skills segment, or where the
// segment after skills/ is the file itself, yields no siblings and an
// empty name.
func SiblingSpecialists(path string) ([]string, string) {
	parts := strings.Split(filepath.ToSlash(path), "/")

	skillsIdx := -1
	for i, part := range parts {
		if part == "skills" {
			skillsIdx = i
			break
		}
	}
	if skillsIdx == -1 || skillsIdx+1 >= len(parts)-1 {
		return nil, ""
	}

	name := parts[skillsIdx+1]
	parent := strings.Join(parts[:skillsIdx+1], "/")

	entries, err := os.ReadDir(filepath.FromSlash(parent))
	if err != nil {
		return nil, name
	}

	var siblings []string
	for _, entry := range entries {
		if entry.IsDir() && entry.Name() != name {
			siblings = append(siblings, entry.Name())
		}
	}
	sort.Strings(siblings)
	return siblings, name
}
