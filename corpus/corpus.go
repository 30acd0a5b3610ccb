// Package corpus models the shape of a skill-document repository: which
// role each file plays, where the repository root is, and how skill
// suites, specialists, and reference material relate on disk.
//
// A corpus is organized as a shallow hierarchy:
//
//	writing-skill/SKILL.md                 standalone skill
//	review-skill/SKILL.md                  coordinator (has skills/ below)
//	review-skill/skills/style/SKILL.md     specialist
//	review-skill/skills/style/references/  specialist reference material
//	shared-references/**/*.md              shared reference material
//
// Classification is a pure function of path shape plus local filesystem
// probes; no state is persisted between calls.
package corpus

import (
	"os"
	"path/filepath"
)

// SkillFileName is the canonical skill-document filename.
const SkillFileName = "SKILL.md"

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// IsSuite reports whether dir is a skill suite: a directory holding a
// skill document plus a skills/ subdirectory of specialists.
func IsSuite(dir string) bool {
	return isFile(filepath.Join(dir, SkillFileName)) && isDir(filepath.Join(dir, "skills"))
}
