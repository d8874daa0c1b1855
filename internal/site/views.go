// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package site

import (
	"io/fs"
	"path/filepath"
	"strings"
)

const (
	// MenuMarker is replaced in every page by the content of the menu fragment.
	MenuMarker = "<!--MENU-->"

	menuFile       = "menu.html"
	stylesheetFile = "styles.css"
)

// Views reads the site files from a filesystem. Nothing is cached: every call
// reads the file again.
type Views struct {
	fsys fs.FS
	root string
}

// NewViews returns Views reading from fsys. root is only used to build the
// file paths reported in events and logs.
func NewViews(fsys fs.FS, root string) *Views {
	return &Views{fsys: fsys, root: root}
}

// Path returns the path of name as reported to the outside.
func (v *Views) Path(name string) string {
	return filepath.Join(v.root, name)
}

// Read returns the content of name.
func (v *Views) Read(name string) ([]byte, error) {
	return fs.ReadFile(v.fsys, name)
}

// Page returns the content of the page name with the first menu marker
// replaced by the menu fragment. When a file cannot be read the name of the
// failing file is returned with the error; the menu is read first.
func (v *Views) Page(name string) (string, string, error) {
	menu, err := v.Read(menuFile)
	if err != nil {
		return "", menuFile, err
	}

	page, err := v.Read(name)
	if err != nil {
		return "", name, err
	}

	return InjectMenu(string(page), string(menu)), name, nil
}

// Stylesheet returns the content of the site stylesheet.
func (v *Views) Stylesheet() ([]byte, error) {
	return v.Read(stylesheetFile)
}

// InjectMenu replaces the first occurrence of MenuMarker in page with menu.
func InjectMenu(page, menu string) string {
	return strings.Replace(page, MenuMarker, menu, 1)
}
