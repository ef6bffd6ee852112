package keys

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrNoKey        = errors.New("no key specified")
	ErrMultipleKeys = errors.New("multiple non-modifier keys")
)

// UnrecognizedTokenError reports a token that is neither a modifier nor a key.
type UnrecognizedTokenError struct {
	Token string
}

func (e *UnrecognizedTokenError) Error() string {
	return "unrecognized token: " + e.Token
}

// Combination is a parsed key chord: any number of modifiers plus one key.
type Combination struct {
	Mods Modifier
	Key  KeyCode
}

func (c Combination) String() string {
	if c.Mods == 0 {
		return Name(c.Key)
	}
	return c.Mods.String() + "+" + Name(c.Key)
}

// StripSpace removes every whitespace character from s.
func StripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Parse parses a '+' separated combination such as "Ctrl+Shift+M".
// Whitespace must already be stripped; empty segments are rejected as
// unrecognized tokens.
func (r Resolver) Parse(s string) (Combination, error) {
	var c Combination
	for _, token := range strings.Split(s, "+") {
		if mod := ModifierBit(token); mod != 0 {
			c.Mods |= mod
			continue
		}
		if c.Key != 0 {
			return Combination{}, fmt.Errorf("%w: %s", ErrMultipleKeys, token)
		}
		if c.Key = r.Key(token); c.Key == 0 {
			return Combination{}, &UnrecognizedTokenError{Token: token}
		}
	}
	if c.Key == 0 {
		return Combination{}, ErrNoKey
	}
	return c, nil
}

// Parse parses s with the system keyboard layout.
func Parse(s string) (Combination, error) {
	return Resolver{}.Parse(s)
}
