// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedInput marks a token that is neither a key nor a command.
// The read loop recovers from it by diagnosing and prompting again.
var ErrMalformedInput = errors.New("malformed input")

// KeyKind selects the key type of the tree a front-end works with.
type KeyKind string

const (
	KeyInt    KeyKind = "int"
	KeyFloat  KeyKind = "float"
	KeyString KeyKind = "string"
)

// ParseKeyKind validates a key type name coming from flags or config.
func ParseKeyKind(s string) (KeyKind, error) {
	switch k := KeyKind(strings.ToLower(strings.TrimSpace(s))); k {
	case KeyInt, KeyFloat, KeyString:
		return k, nil
	case "":
		return KeyInt, nil
	}
	return "", fmt.Errorf("unsupported key type %q (use int, float or string)", s)
}

// TypeName is the name shown to the user in the tip text.
func (k KeyKind) TypeName() string {
	switch k {
	case KeyFloat:
		return "float64"
	case KeyString:
		return "string"
	}
	return "int"
}

func parseIntKey(token string) (int, error) {
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, token)
	}
	return v, nil
}

func parseFloatKey(token string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrMalformedInput, token)
	}
	// NaN is unordered
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not a finite number", ErrMalformedInput, token)
	}
	return v, nil
}

func parseStringKey(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("%w: empty key", ErrMalformedInput)
	}
	return token, nil
}
