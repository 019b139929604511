package photoserver

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// ImagesDirName holds overview photos, ReportsDirName the per-item
	// evidence folders named <id>_<name>.
	ImagesDirName  = "images"
	ReportsDirName = "reports"
)

// Item is one report folder the phone can target.
type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Project is the directory tree uploads land in.
type Project struct {
	Name string
	Root string
}

// ImagesDir returns the overview photo directory.
func (p Project) ImagesDir() string {
	return filepath.Join(p.Root, ImagesDirName)
}

// ReportsDir returns the per-item report directory.
func (p Project) ReportsDir() string {
	return filepath.Join(p.Root, ReportsDirName)
}

// Items scans reports/ for <id>_<name> subdirectories. A missing reports
// directory yields an empty list, not an error.
func (p Project) Items() []Item {
	entries, err := os.ReadDir(p.ReportsDir())
	if err != nil {
		return []Item{}
	}
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		id, name, ok := strings.Cut(e.Name(), "_")
		if !ok || id == "" || name == "" {
			continue
		}
		items = append(items, Item{ID: id, Name: name})
	}
	return items
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Sanitize folds every run of characters outside [A-Za-z0-9_-] into a
// single underscore, so any phone-supplied text is safe as a path element.
func Sanitize(name string) string {
	return unsafeChars.ReplaceAllString(name, "_")
}
