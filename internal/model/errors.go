package model

import "errors"

var ErrNoRecord = errors.New("no record")
var ErrNoSession = errors.New("no active session")
