package guest

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrInvalidID    = errors.New("guest id must be a non-empty number")
	ErrInvalidName  = errors.New("guest name must not be empty")
	ErrInvalidPhone = errors.New("guest phone must be numeric with at least 10 digits")
)

const MinPhoneLength = 10

type ID struct {
	value string
}

func NewID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" || !isDigits(s) {
		return ID{}, ErrInvalidID
	}
	return ID{value: s}, nil
}

func (id ID) Value() string {
	return id.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if len(s) < MinPhoneLength || !isDigits(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string {
	return p.value
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
