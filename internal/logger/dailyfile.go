// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

const (
	dailyFileExtension = ".log"
	dailyFileDirMode   = 0o755
	dailyFileMode      = 0o644
)

// DailyFile is an io.Writer that appends every write to a file named after the
// calendar day of the write, inside a directory created on first use.
// The file is opened in append mode and closed again for every write, so a
// write after midnight starts a new file and leaves the previous one untouched.
// Failures are reported on the console writer and never returned to the caller.
type DailyFile struct {
	dir     string
	console io.Writer
	now     func() time.Time
}

// NewDailyFile returns a DailyFile writing inside dir and reporting failures on console.
func NewDailyFile(dir string, console io.Writer) *DailyFile {
	return &DailyFile{
		dir:     dir,
		console: console,
		now:     time.Now,
	}
}

// WithClock replaces the wall clock used to pick the file name.
func (d *DailyFile) WithClock(now func() time.Time) *DailyFile {
	d.now = now
	return d
}

// FileName returns the file name used for writes happening at t.
func FileName(t time.Time) string {
	return t.Format(time.DateOnly) + dailyFileExtension
}

// Path returns the full path of the file that the next write would append to.
func (d *DailyFile) Path() string {
	return filepath.Join(d.dir, FileName(d.now()))
}

// Write appends p to the file of the current day. It always reports the whole
// buffer as written so it can sit behind an io.MultiWriter next to the console.
func (d *DailyFile) Write(p []byte) (int, error) {
	if err := d.write(p); err != nil {
		fmt.Fprintf(d.console, "error writing log file: %s\n", err)
	}
	return len(p), nil
}

func (d *DailyFile) write(p []byte) error {
	if err := os.MkdirAll(d.dir, dailyFileDirMode); err != nil {
		return err
	}

	file, err := os.OpenFile(d.Path(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, dailyFileMode)
	if err != nil {
		return err
	}

	if _, err := file.Write(p); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
