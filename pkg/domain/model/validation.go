package model

import (
	"strings"
	"unicode"
)

const (
	ErrMsgInvalidCustomerName = "Invalid name: Please correct and try again"
	ErrMsgInvalidOrderNotes   = "Invalid notes: please correct and try again"
	ErrMsgSubmitBlocked       = "Please fix errors before submitting"
)

const orderNotesPunctuation = ".,!?"

// ValidateCustomerName accepts ASCII letters and whitespace only. The empty
// string is valid.
func ValidateCustomerName(name string) bool {
	for _, r := range name {
		if !isASCIILetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// ValidateOrderNotes accepts ASCII letters and digits, whitespace and . , ! ?
func ValidateOrderNotes(notes string) bool {
	for _, r := range notes {
		switch {
		case isASCIILetter(r), isASCIIDigit(r), unicode.IsSpace(r):
		case strings.ContainsRune(orderNotesPunctuation, r):
		default:
			return false
		}
	}
	return true
}

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// SanitizeInput strips markup brackets.
func SanitizeInput(input string) string {
	return strings.NewReplacer("<", "", ">", "").Replace(input)
}
