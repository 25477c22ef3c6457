package renamer

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"github.com/backmassage/assetseq/internal/naming"
)

// Listing is a snapshot of one directory taken before any rename in it.
type Listing struct {
	Dir      string
	Eligible []string // Non-hidden file names, byte-order sorted.
	Hidden   []string // Hidden file names, byte-order sorted.
	Occupied []string // Every name in the directory, subdirectories included.
}

// ListDir reads dir and classifies its entries. A symlink counts as a
// directory when its target is one; broken links count as files.
func ListDir(dir string) (Listing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Listing{}, errors.Wrapf(err, "list %s", dir)
	}

	l := Listing{Dir: dir, Occupied: make([]string, 0, len(entries))}
	for _, e := range entries {
		name := e.Name()
		l.Occupied = append(l.Occupied, name)
		if isDir(dir, e) {
			continue
		}
		if naming.IsHidden(name) {
			l.Hidden = append(l.Hidden, name)
			continue
		}
		l.Eligible = append(l.Eligible, name)
	}
	sort.Strings(l.Eligible)
	sort.Strings(l.Hidden)
	return l, nil
}

func isDir(dir string, e fs.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && fi.IsDir()
}
