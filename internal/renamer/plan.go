package renamer

import (
	"path/filepath"

	"github.com/backmassage/assetseq/internal/naming"
)

// Record is one planned or attempted rename.
type Record struct {
	Dir       string `yaml:"dir"`
	OldPath   string `yaml:"old_path"`
	NewPath   string `yaml:"new_path"`
	Seq       int    `yaml:"seq"`
	Collision bool   `yaml:"collision,omitempty"` // NewPath held another entry when this rename ran.
	Unchanged bool   `yaml:"unchanged,omitempty"` // The file already had its target name.
	DryRun    bool   `yaml:"dry_run,omitempty"`
}

// PlanDir numbers the listing's eligible files from 1 in order. Collisions
// are judged against the directory as it would look after each earlier rename
// of the same plan, so a dry run reports what a real run would hit.
func PlanDir(l Listing) []Record {
	occ := naming.NewOccupancy(l.Occupied)
	recs := make([]Record, 0, len(l.Eligible))
	for i, name := range l.Eligible {
		seq := i + 1
		target := naming.TargetName(seq, name)
		recs = append(recs, Record{
			Dir:       l.Dir,
			OldPath:   filepath.Join(l.Dir, name),
			NewPath:   filepath.Join(l.Dir, target),
			Seq:       seq,
			Collision: occ.Collides(name, target),
			Unchanged: name == target,
		})
		occ.Move(name, target)
	}
	return recs
}
