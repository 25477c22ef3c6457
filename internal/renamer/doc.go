// Package renamer walks a root directory and renumbers the files of every
// directory it visits.
//
// For each directory: take a snapshot listing, drop hidden files, sort the
// remaining file names by byte order, then rename the n-th name to
// "<n><ext>". The counter restarts at 1 in every directory. Subdirectories
// are descended into (hidden ones included) but never renamed; symlinks to
// directories are neither renamed nor followed.
//
// Every attempted rename yields a [Record]. [Run] returns the records
// produced so far together with the first error, which aborts the walk and
// leaves the tree partially renamed. Nothing is rolled back. Collisions are
// recorded and logged, never prevented (see package naming).
//
// Files: discover.go (directory listing), plan.go (records), runner.go (walk
// and apply), stats.go.
package renamer
