// Package naming derives sequence filenames and observes target collisions.
//
// A file named "<stem><ext>" at position n of its directory's sorted listing
// is renamed to "<n><ext>". Hidden files (leading ".") never take part.
//
// Collision handling is observation only: [Occupancy] reports when a target is
// already occupied by a different file, and callers rename anyway. A run over
// names like "0.jpg" and "1.jpg" therefore overwrites "1.jpg" with "0.jpg"
// before "1.jpg" itself is moved on. Renumbering an already-numbered
// directory of ten or more files clobbers files for the same reason, since
// "10.jpg" sorts before "2.jpg".
//
// Files: sequence.go (split, hidden rule, target names), collision.go.
package naming
