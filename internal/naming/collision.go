package naming

// Occupancy tracks which names of one directory are taken while a sequence of
// renames is applied to it. It observes collisions but never resolves them:
// callers rename regardless, and on POSIX systems the rename replaces the
// occupant.
type Occupancy struct {
	names map[string]bool
}

// NewOccupancy seeds the tracker with every name present in the directory,
// including hidden files and subdirectories.
func NewOccupancy(names []string) *Occupancy {
	o := &Occupancy{names: make(map[string]bool, len(names))}
	for _, n := range names {
		o.names[n] = true
	}
	return o
}

// Collides reports whether newName is held by something other than oldName.
func (o *Occupancy) Collides(oldName, newName string) bool {
	return oldName != newName && o.names[newName]
}

// Move records that oldName now lives at newName.
func (o *Occupancy) Move(oldName, newName string) {
	delete(o.names, oldName)
	o.names[newName] = true
}
