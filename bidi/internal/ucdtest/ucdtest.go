// Package ucdtest adapts the line-oriented UCD test-file reader this
// module's teacher carries in internal/ucdparse (OpenTestFile/Scan/
// Text/Comment) to the semicolon-delimited row format used by
// BidiTest.txt and BidiCharacterTest.txt: comment lines (leading '#')
// and blank lines are skipped, and the comment suffix of a data line
// (after '#') is split off and made available separately.
package ucdtest

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// TestFile is a line-oriented reader over one UCD conformance test
// file, skipping full-line comments and blank lines.
type TestFile struct {
	in      *os.File
	scanner *bufio.Scanner
	text    string
	comment string
	lineNo  int
}

// OpenTestFile opens filename for reading as a UCD test file. If t is
// non-nil, a failure to open is reported via t.Errorf; otherwise it is
// printed to stderr.
func OpenTestFile(filename string, t interface{ Errorf(string, ...interface{}) }) *TestFile {
	f, err := os.Open(filename)
	if err != nil {
		if t != nil {
			t.Errorf("ucdtest: ERROR loading %s: %v", filename, err)
		} else {
			fmt.Fprintf(os.Stderr, "ucdtest: ERROR loading %s: %v\n", filename, err)
		}
		return nil
	}
	return &TestFile{in: f, scanner: bufio.NewScanner(f)}
}

// Scan advances to the next non-comment, non-blank line. It returns
// false at end of file or on a read error (check Err).
func (tf *TestFile) Scan() bool {
	for tf.scanner.Scan() {
		tf.lineNo++
		line := strings.TrimSpace(tf.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			tf.text, tf.comment = strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
		} else {
			tf.text, tf.comment = line, ""
		}
		return true
	}
	return false
}

// Text returns the data portion (before any trailing '#' comment) of
// the current line.
func (tf *TestFile) Text() string {
	return tf.text
}

// Comment returns the trailing '#' comment of the current line, if any.
func (tf *TestFile) Comment() string {
	return tf.comment
}

// LineNo returns the 1-based source line number of the current line,
// for attributing a failing conformance row back to its fixture.
func (tf *TestFile) LineNo() int {
	return tf.lineNo
}

// Err returns the first non-EOF error encountered by Scan.
func (tf *TestFile) Err() error {
	return tf.scanner.Err()
}

// Close releases the underlying file.
func (tf *TestFile) Close() {
	tf.in.Close()
}
