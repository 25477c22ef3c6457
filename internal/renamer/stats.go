package renamer

// RunStats tracks aggregate counters across a run.
type RunStats struct {
	Directories int `yaml:"directories"`
	Files       int `yaml:"files"`     // Eligible files attempted.
	Renamed     int `yaml:"renamed"`   // Attempts whose name changed.
	Unchanged   int `yaml:"unchanged"` // Files already carrying their target name.
	Hidden      int `yaml:"hidden"`    // Dotfiles skipped.
	Collisions  int `yaml:"collisions"`
}

// add folds one attempted record into the counters.
func (s *RunStats) add(rec Record) {
	s.Files++
	if rec.Unchanged {
		s.Unchanged++
	} else {
		s.Renamed++
	}
	if rec.Collision {
		s.Collisions++
	}
}
