// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package form

import (
	"errors"
	"fmt"
)

// ValidationError reports a rejected field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is matches validation errors by field, so errors.Is(err, ErrEmptyName) works
// on any error produced for the name field.
func (e *ValidationError) Is(target error) bool {
	var t *ValidationError
	if !errors.As(target, &t) {
		return false
	}
	return t.Field == e.Field
}

var (
	ErrEmptyName          = &ValidationError{Field: "name", Message: "is required"}
	ErrEmptyImage         = &ValidationError{Field: "image", Message: "is required"}
	ErrMissingBillTotal   = &ValidationError{Field: "bill_total", Message: "is required"}
	ErrMissingUserExpense = &ValidationError{Field: "user_expense", Message: "is required"}

	// ErrInvalidAmount is returned by ParseAmount for text that is not a number.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrExpenseExceedsBill is returned when the user expense is greater than the bill.
	ErrExpenseExceedsBill = errors.New("expense exceeds bill total")
)
