package naming

import (
	"strconv"
	"strings"
)

// IsHidden reports whether name is a dotfile.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// SplitExt splits a base filename into stem and extension. The extension
// starts at the last "." and includes it. Leading dots belong to the stem, so
// ".bashrc" and "..." have no extension while "a." has extension ".".
func SplitExt(name string) (stem, ext string) {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return name, ""
	}
	if strings.TrimLeft(name[:dot], ".") == "" {
		return name, ""
	}
	return name[:dot], name[dot:]
}

// SequenceName returns the target name for the seq-th eligible file of a
// directory, keeping only the original extension.
func SequenceName(seq int, ext string) string {
	return strconv.Itoa(seq) + ext
}

// TargetName is SequenceName applied to the extension of name.
func TargetName(seq int, name string) string {
	_, ext := SplitExt(name)
	return SequenceName(seq, ext)
}
