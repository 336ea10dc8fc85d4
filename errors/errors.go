//  Copyright 2014-Present Couchbase, Inc.
//
//  Use of this software is governed by the Business Source License included
//  in the file licenses/BSL-Couchbase.txt.  As of the Change Date specified
//  in that file, in accordance with the Business Source License, use of this
//  software will be governed by the Apache License, Version 2.0, included in
//  the file licenses/APL2.txt.

/*
Package errors provides user-visible errors and warnings. These errors
include error codes, a translation key and the internal cause.
*/
package errors

import (
	"errors"
	"fmt"
	"path"
	"runtime"
	"strings"

	json "github.com/couchbase/go_json"
)

const (
	EXCEPTION = iota
	ERROR
	WARNING
	NOTICE
	INFO
	LOG
	DEBUG
)

type ErrorCode int32

const (
	E_INTERNAL ErrorCode = 5000
)

// Error includes code, message key, and internal error object (cause)
// and message
type Error interface {
	error
	Code() ErrorCode
	TranslationKey() string
	Level() int
	Object() map[string]interface{}
	HasICause(ErrorCode) bool
	ContainsText(text string) bool
}

func NewError(e error, internalMsg string) Error {
	switch e := e.(type) {
	case Error: // if given error is already an Error, just return it:
		return e
	default:
		return &err{level: EXCEPTION, ICode: E_INTERNAL, IKey: "Internal Error", ICause: e,
			InternalMsg: internalMsg, InternalCaller: CallerN(1)}
	}
}

type err struct {
	ICode          ErrorCode
	IKey           string
	ICause         error
	InternalMsg    string
	InternalCaller string
	level          int
}

func (e *err) Error() string {
	switch {
	default:
		return "Unspecified error."
	case e.InternalMsg != "" && e.ICause != nil:
		return e.InternalMsg + " - cause: " + e.ICause.Error()
	case e.InternalMsg != "":
		return e.InternalMsg
	case e.ICause != nil:
		return e.ICause.Error()
	}
}

func (e *err) Object() map[string]interface{} {
	m := map[string]interface{}{
		// only use standard data types in the object
		"code":    int32(e.ICode),
		"key":     e.IKey,
		"message": e.InternalMsg,
	}
	if e.ICause != nil {
		m["icause"] = e.ICause.Error()
	}
	return m
}

func (e *err) MarshalJSON() ([]byte, error) {
	m := e.Object()
	if e.InternalCaller != "" &&
		!strings.HasPrefix(e.InternalCaller, "unknown:") {
		m["caller"] = e.InternalCaller
	}
	return json.Marshal(m)
}

func (e *err) UnmarshalJSON(body []byte) error {
	var _unmarshalled struct {
		Caller  string `json:"caller"`
		Code    int32  `json:"code"`
		ICause  string `json:"icause"`
		Key     string `json:"key"`
		Message string `json:"message"`
	}

	unmarshalErr := json.Unmarshal(body, &_unmarshalled)
	if unmarshalErr != nil {
		return unmarshalErr
	}

	e.ICode = ErrorCode(_unmarshalled.Code)
	e.IKey = _unmarshalled.Key
	e.InternalMsg = _unmarshalled.Message
	e.InternalCaller = _unmarshalled.Caller
	if _unmarshalled.ICause != "" {
		e.ICause = errors.New(_unmarshalled.ICause)
	}
	return nil
}

func (e *err) Level() int {
	return e.level
}

func (e *err) Code() ErrorCode {
	return e.ICode
}

func (e *err) TranslationKey() string {
	return e.IKey
}

// Unwrap lets the standard errors package see the internal cause.
func (e *err) Unwrap() error {
	return e.ICause
}

// search the error text and the internal cause chain for the given string
func (e *err) ContainsText(text string) bool {
	if strings.Contains(e.Error(), text) {
		return true
	}
	if ie, ok := e.ICause.(Error); ok {
		return ie.ContainsText(text)
	}
	return false
}

func (e *err) HasICause(code ErrorCode) bool {
	c := e.ICause

	for c != nil {
		icse, ok := c.(Error)
		if !ok {
			return false
		}
		if icse.Code() == code {
			return true
		}
		c = errors.Unwrap(icse)
	}
	return false
}

// Returns "FileName:LineNum" of the Nth caller on the call stack,
// where level of 0 is the caller of CallerN.
func CallerN(level int) string {
	_, fname, lineno, ok := runtime.Caller(1 + level)
	if !ok {
		return "unknown:0"
	}
	return fmt.Sprintf("%s:%d",
		strings.Split(path.Base(fname), ".")[0], lineno)
}
