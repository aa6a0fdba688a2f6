// This file is part of Gossim.
//
// Gossim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gossim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gossim.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log for the project. Log entries are tagged
// with the name of the subsystem they originate from and are kept in memory
// until asked for with Write() or Tail().
//
// For interactive use the log can echo every new entry to an io.Writer as it
// arrives, via SetEcho().
package logger

import (
	"fmt"
	"io"
	"strings"
)

const maxCentral = 256

// Logger is a capped list of log entries.
type Logger struct {
	entries    []entry
	maxEntries int
	echo       io.Writer
}

type entry struct {
	tag    string
	detail string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s\n", e.tag, e.detail)
}

// NewLogger is the preferred method of initialisation for the Logger type.
// entries beyond maxEntries are dropped oldest first.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
	}
}

// Log adds a new entry.
func (l *Logger) Log(tag string, detail string) {
	// multi-line details become multiple entries with the same tag
	for _, d := range strings.Split(detail, "\n") {
		if d == "" {
			continue
		}

		e := entry{tag: tag, detail: d}
		l.entries = append(l.entries, e)
		if l.maxEntries > 0 && len(l.entries) > l.maxEntries {
			l.entries = l.entries[len(l.entries)-l.maxEntries:]
		}

		if l.echo != nil {
			io.WriteString(l.echo, e.String())
		}
	}
}

// Logf adds a new formatted entry.
func (l *Logger) Logf(tag string, format string, args ...interface{}) {
	l.Log(tag, fmt.Sprintf(format, args...))
}

// Write copies the entire log to the io.Writer.
func (l *Logger) Write(w io.Writer) {
	if w == nil {
		return
	}
	for _, e := range l.entries {
		io.WriteString(w, e.String())
	}
}

// Tail copies the last n entries of the log to the io.Writer. asking for
// more entries than exist is not an error.
func (l *Logger) Tail(w io.Writer, n int) {
	if w == nil {
		return
	}
	s := len(l.entries) - n
	if s < 0 {
		s = 0
	}
	for _, e := range l.entries[s:] {
		io.WriteString(w, e.String())
	}
}

// SetEcho instructs the logger to echo new entries to the io.Writer as they
// arrive. a nil writer stops the echoing.
func (l *Logger) SetEcho(w io.Writer) {
	l.echo = w
}

// Clear empties the log.
func (l *Logger) Clear() {
	l.entries = l.entries[:0]
}

// central is the logger used by the package level functions. most code in
// the project logs through this.
var central = NewLogger(maxCentral)

// Log adds a new entry to the central logger.
func Log(tag string, detail string) {
	central.Log(tag, detail)
}

// Logf adds a new formatted entry to the central logger.
func Logf(tag string, format string, args ...interface{}) {
	central.Logf(tag, format, args...)
}

// Write copies the central log to the io.Writer.
func Write(w io.Writer) {
	central.Write(w)
}

// Tail copies the last n entries of the central log to the io.Writer.
func Tail(w io.Writer, n int) {
	central.Tail(w, n)
}

// SetEcho instructs the central logger to echo new entries to the io.Writer.
func SetEcho(w io.Writer) {
	central.SetEcho(w)
}

// Clear empties the central log.
func Clear() {
	central.Clear()
}
