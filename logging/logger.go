//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

package logging

import (
	fmtpkg "fmt"
	"path"
	"runtime"
	"strings"
	"sync"
)

type Level int

const (
	NONE   = Level(iota) // Disable all logging
	FATAL                // System is in severe error state and has to terminate
	SEVERE               // System is in severe error state and cannot recover reliably
	ERROR                // System is in error state but can recover and continue reliably
	WARN                 // System approaching error state, or is in a correct but undesirable state
	INFO                 // System-level events and status, in correct states
	DEBUG                // Debug
	TRACE                // Trace detailed system execution, e.g. function entry / exit
)

func (level Level) String() string {
	return _LEVEL_NAMES[level]
}

var _LEVEL_NAMES = []string{
	DEBUG:  "DEBUG",
	TRACE:  "TRACE",
	INFO:   "INFO",
	WARN:   "WARN",
	ERROR:  "ERROR",
	SEVERE: "SEVERE",
	FATAL:  "FATAL",
	NONE:   "NONE",
}

var _LEVEL_MAP = map[string]Level{
	"debug":  DEBUG,
	"trace":  TRACE,
	"info":   INFO,
	"warn":   WARN,
	"error":  ERROR,
	"severe": SEVERE,
	"fatal":  FATAL,
	"none":   NONE,
}

// cache logging enablement to improve runtime performance (reduces from multiple tests to a single test on each call)
var (
	cachedDebug  bool
	cachedTrace  bool
	cachedInfo   bool
	cachedWarn   bool
	cachedSevere bool
)

// maintain the cached logging state
func cacheLoggingChange() {
	cachedDebug = !skipLogging(DEBUG)
	cachedTrace = !skipLogging(TRACE)
	cachedInfo = !skipLogging(INFO)
	cachedWarn = !skipLogging(WARN)
	cachedSevere = !skipLogging(SEVERE)
}

func ParseLevel(name string) (level Level, ok bool) {
	level, ok = _LEVEL_MAP[strings.ToLower(strings.TrimSpace(name))]
	return
}

// Logger provides a common interface for logging libraries
type Logger interface {
	// Higher performance
	Debuga(f func() string)
	Warna(f func() string)

	// Printf style
	Debugf(fmt string, args ...interface{})
	Tracef(fmt string, args ...interface{})
	Infof(fmt string, args ...interface{})
	Severef(fmt string, args ...interface{})

	/*
		These APIs control the logging level
	*/
	SetLevel(Level) // Set the logging level
	Level() Level   // Get the current logging level
}

var logger Logger = nil
var curLevel Level = DEBUG // initially set to never skip

var loggerMutex sync.RWMutex

// Callers check the cached level before taking the mutex, so the
// majority of entries (those below the current level) never lock.
func skipLogging(level Level) bool {
	if logger == nil {
		return true
	}
	return level > curLevel
}

func SetLogger(newLogger Logger) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	logger = newLogger
	if logger == nil {
		curLevel = NONE
	} else {
		curLevel = newLogger.Level()
	}
	cacheLoggingChange()
}

// " (function|file:line)" of the caller of a package level function
func callerSuffix() string {
	pc, fname, lineno, ok := runtime.Caller(2)
	if !ok {
		return ""
	}
	fnc := runtime.FuncForPC(pc)
	if fnc == nil {
		return fmtpkg.Sprintf(" (%s:%d)", path.Base(fname), lineno)
	}
	n := fnc.Name()
	i := strings.LastIndexByte(n, '(')
	if i == -1 {
		i = strings.LastIndexByte(n, '.')
		if i != -1 {
			i++
		}
	}
	if i < 0 {
		i = 0
	}
	return fmtpkg.Sprintf(" (%s|%s:%d)", n[i:], path.Base(fname), lineno)
}

// anonymous function variants

func Debuga(f func() string) {
	if !cachedDebug {
		return
	}
	fl := callerSuffix()
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	logger.Debuga(func() string { return f() + fl })
}

func Warna(f func() string) {
	if !cachedWarn {
		return
	}
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	logger.Warna(f)
}

// printf-style variants

func Debugf(fmt string, args ...interface{}) {
	if !cachedDebug {
		return
	}
	fmt = fmt + callerSuffix()
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	logger.Debugf(fmt, args...)
}

func Tracef(fmt string, args ...interface{}) {
	if !cachedTrace {
		return
	}
	fmt = fmt + callerSuffix()
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	logger.Tracef(fmt, args...)
}

func Infof(fmt string, args ...interface{}) {
	if !cachedInfo {
		return
	}
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	logger.Infof(fmt, args...)
}

func Severef(fmt string, args ...interface{}) {
	if !cachedSevere {
		return
	}
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	logger.Severef(fmt, args...)
}

func SetLevel(level Level) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	if logger == nil {
		return
	}
	logger.SetLevel(level)
	curLevel = level
	cacheLoggingChange()
}

func LogLevel() Level {
	loggerMutex.RLock()
	defer loggerMutex.RUnlock()
	if logger == nil {
		return NONE
	}
	return logger.Level()
}
