package controllers

import (
	"errors"
	"strings"
)

var (
	errInvalidIdentifier = errors.New("invalid identifier")
	errInvalidSnapshot   = errors.New("invalid snapshot")
)

const maxIdentifierLength = 36

// normalizeIdentifier accepts generated UUIDs as well as the numeric IDs
// carried by imported snapshots.
func normalizeIdentifier(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || len(trimmed) > maxIdentifierLength {
		return "", errInvalidIdentifier
	}
	for _, r := range trimmed {
		if !isIdentifierRune(r) {
			return "", errInvalidIdentifier
		}
	}
	return trimmed, nil
}

func isIdentifierRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r == '-', r == '_':
		return true
	}
	return false
}

func normalizeIdentifiers(values []string) ([]string, error) {
	out := make([]string, 0, len(values))
	for _, v := range values {
		id, err := normalizeIdentifier(v)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
