package reader

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/coreos/pkg/capnslog"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/lang", "reader")

const DefaultSuffix = ".lang"

const maxLineLength = 1 << 20

// IsSourceFile reports whether path names a source file by the default
// suffix.
func IsSourceFile(path string) bool {
	return HasSuffix(path, DefaultSuffix)
}

// HasSuffix matches suffix case-insensitively.
func HasSuffix(path, suffix string) bool {
	return len(path) >= len(suffix) && strings.EqualFold(path[len(path)-len(suffix):], suffix)
}

// LineReader yields the lines of a file without their line terminators.
type LineReader struct {
	file    *os.File
	scanner *bufio.Scanner
	line    string
	first   bool
}

func Open(path string) (*LineReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return &LineReader{file: file, scanner: scanner, first: true}, nil
}

// Next advances to the next line. It returns false at the end of the file
// or on an error, which Err reports.
func (r *LineReader) Next() bool {
	if !r.scanner.Scan() {
		return false
	}
	r.line = strings.TrimSuffix(r.scanner.Text(), "\r")
	if r.first {
		r.line = strings.TrimPrefix(r.line, "\ufeff")
		r.first = false
	}
	return true
}

func (r *LineReader) Line() string {
	return r.line
}

func (r *LineReader) Err() error {
	if err := r.scanner.Err(); err != nil {
		return tracerr.Wrap(err)
	}
	return nil
}

// Lines reads all remaining lines.
func (r *LineReader) Lines() ([]string, error) {
	var lines []string
	for r.Next() {
		lines = append(lines, r.line)
	}
	return lines, r.Err()
}

func (r *LineReader) Close() error {
	return tracerr.Wrap(r.file.Close())
}

// ReadLines opens path and reads all of its lines.
func ReadLines(path string) ([]string, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return r.Lines()
}

// Discover lists the source files directly inside dir, sorted by name.
func Discover(dir string) ([]string, error) {
	return DiscoverSuffix(dir, DefaultSuffix)
}

func DiscoverSuffix(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}

	var ret []string
	for _, entry := range entries {
		if entry.IsDir() || !HasSuffix(entry.Name(), suffix) {
			continue
		}
		ret = append(ret, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(ret)

	plog.Debugf("found %d source files in %s", len(ret), dir)
	return ret, nil
}
