package validator

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	EmailRX = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")
	HexRX   = regexp.MustCompile("^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$")
	TimeRX  = regexp.MustCompile("^([01][0-9]|2[0-3]):[0-5][0-9]$")
)

type Validator struct {
	Errors map[string]string
}

func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError keeps the first message reported for a key.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Err returns nil when valid, an *Error carrying the messages otherwise.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}

	return &Error{Errors: v.Errors}
}

func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}

type Error struct {
	Errors map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e.Errors[k])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}
