package domain

import "path"

// EntryType classifies a repository listing entry
type EntryType int

const (
	EntryTypeOther EntryType = iota // Symlinks, submodules and anything else
	EntryTypeFile
	EntryTypeDirectory
)

// String returns the lowercase name used in logs
func (t EntryType) String() string {
	switch t {
	case EntryTypeFile:
		return "file"
	case EntryTypeDirectory:
		return "dir"
	default:
		return "other"
	}
}

// RepositoryEntry is one child returned by a directory listing
type RepositoryEntry struct {
	Name string    // Base name, e.g. "index.js"
	Path string    // Path from the repository root, e.g. "src/index.js"
	Size int64     // Size in bytes (0 for directories)
	Type EntryType // File, directory or other
}

// IsFile reports whether the entry is a regular file
func (e RepositoryEntry) IsFile() bool {
	return e.Type == EntryTypeFile
}

// IsDir reports whether the entry is a directory
func (e RepositoryEntry) IsDir() bool {
	return e.Type == EntryTypeDirectory
}

// Extension returns the exact extension of the entry name, including the dot
func (e RepositoryEntry) Extension() string {
	return path.Ext(e.Name)
}
