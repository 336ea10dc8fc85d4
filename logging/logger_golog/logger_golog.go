//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package logger_golog

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"time"

	json "github.com/couchbase/go_json"

	"github.com/couchbase/nullpred/logging"
)

var _ logging.Logger = (*goLogger)(nil)

type goLogger struct {
	logger         *log.Logger
	level          logging.Level
	entryFormatter formatter
}

const (
	_LEVEL = "_level"
	_MSG   = "_msg"
	_TIME  = "_time"
)

func NewLogger(out io.Writer, lvl logging.Level, jsonLogging bool) *goLogger {
	logger := &goLogger{
		logger: log.New(out, "", 0),
		level:  lvl,
	}
	if jsonLogging {
		logger.entryFormatter = &jsonFormatter{}
	} else {
		logger.entryFormatter = &textFormatter{}
	}
	return logger
}

func (gl *goLogger) loga(level logging.Level, f func() string) {
	if gl.logger == nil {
		return
	}
	if level <= gl.level {
		gl.log(newLogEntry(f(), level))
	}
}

func (gl *goLogger) Debuga(f func() string) {
	gl.loga(logging.DEBUG, f)
}

func (gl *goLogger) Warna(f func() string) {
	gl.loga(logging.WARN, f)
}

func (gl *goLogger) logf(level logging.Level, format string, args ...interface{}) {
	if gl.logger == nil {
		return
	}
	if level <= gl.level {
		e := newLogEntry(fmt.Sprintf(format, args...), level)
		gl.log(e)
	}
}

func (gl *goLogger) Debugf(format string, args ...interface{}) {
	gl.logf(logging.DEBUG, format, args...)
}

func (gl *goLogger) Tracef(format string, args ...interface{}) {
	gl.logf(logging.TRACE, format, args...)
}

func (gl *goLogger) Infof(format string, args ...interface{}) {
	gl.logf(logging.INFO, format, args...)
}

func (gl *goLogger) Severef(format string, args ...interface{}) {
	gl.logf(logging.SEVERE, format, args...)
}

func (gl *goLogger) Level() logging.Level {
	return gl.level
}

func (gl *goLogger) SetLevel(level logging.Level) {
	gl.level = level
}

func (gl *goLogger) log(newEntry *logEntry) {
	s := gl.entryFormatter.format(newEntry)
	gl.logger.Print(s)
}

type logEntry struct {
	Time    string
	Level   logging.Level
	Message string
}

func newLogEntry(msg string, level logging.Level) *logEntry {
	return &logEntry{
		Time:    time.Now().Format("2006-01-02T15:04:05.000-07:00"), // time.RFC3339 with milliseconds
		Level:   level,
		Message: msg,
	}
}

type formatter interface {
	format(*logEntry) string
}

type textFormatter struct {
}

func (*textFormatter) format(newEntry *logEntry) string {
	b := &bytes.Buffer{}
	appendKeyValue(b, _TIME, newEntry.Time)
	appendKeyValue(b, _LEVEL, newEntry.Level.String())
	appendKeyValue(b, _MSG, newEntry.Message)
	b.WriteByte('\n')
	return b.String()
}

func appendKeyValue(b *bytes.Buffer, key, value interface{}) {
	if _, ok := value.(string); ok {
		fmt.Fprintf(b, "%v=%s ", key, value)
	} else {
		fmt.Fprintf(b, "%v=%v ", key, value)
	}
}

type jsonFormatter struct {
}

func (*jsonFormatter) format(newEntry *logEntry) string {
	data := map[string]interface{}{
		_TIME:  newEntry.Time,
		_LEVEL: newEntry.Level.String(),
		_MSG:   newEntry.Message,
	}
	serialized, _ := json.Marshal(data)
	return string(append(serialized, '\n'))
}
