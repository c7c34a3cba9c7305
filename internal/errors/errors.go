// Package errors provides centralized error definitions and error handling utilities
// for ShopZone. It defines the storefront's sentinel errors, semantic error types,
// constructors with context wrapping, and classification helpers used by the
// terminal and HTTP surfaces to decide what to show the shopper.
//
// # Error Types
//
// Domain-specific errors:
//   - CartError: a cart operation referenced a line or product that is not there
//   - CheckoutError: an order could not be placed
//
// Semantic errors:
//   - NotFoundError: resource not found (product, cart line, shopper)
//   - ValidationError: a required form field is missing or a value is unknown
//
// # Usage
//
//	err := errors.NewCartError("update quantity", errors.ErrLineNotFound).WithProductID(7)
//
//	if errors.Is(err, errors.ErrLineNotFound) { ... }
//
//	var verr *errors.ValidationError
//	if errors.As(err, &verr) {
//	    highlight(verr.Field)
//	}
//
// Form validation reports every missing field at once by joining
// ValidationErrors with [Join]; [Fields] recovers the field names.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityInfo is for conditions the shopper caused and can fix.
	SeverityInfo Severity = iota
	// SeverityWarning is for rejected operations.
	SeverityWarning
	// SeverityError is for internal failures.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Catalog sentinel errors
var (
	// ErrProductNotFound indicates that no catalog product has the requested id.
	ErrProductNotFound = New("product not found")
	// ErrUnknownCategory indicates a category name outside the fixed set.
	ErrUnknownCategory = New("unknown category")
)

// Cart sentinel errors
var (
	// ErrLineNotFound indicates that the cart holds no line for the product.
	ErrLineNotFound = New("cart line not found")
	// ErrCartEmpty indicates an operation that needs at least one cart line.
	ErrCartEmpty = New("cart is empty")
)

// Form and order sentinel errors
var (
	// ErrIncompleteForm indicates that a required form field was left blank.
	ErrIncompleteForm = New("required field missing")
	// ErrNoOrder indicates that no order has been placed yet.
	ErrNoOrder = New("no order placed")
	// ErrOrderPending indicates a placed order that has not been dismissed.
	ErrOrderPending = New("order already placed")
	// ErrShopperNotFound indicates an unknown shopper id on the API.
	ErrShopperNotFound = New("shopper not found")
	// ErrShopperLimit indicates the API is already serving its maximum number
	// of shoppers.
	ErrShopperLimit = New("too many active shoppers")
	// ErrInvalidMode indicates an auth mode other than login or signup.
	ErrInvalidMode = New("invalid auth mode")
)

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// StoreError is implemented by every error type in this package.
type StoreError interface {
	error
	Unwrap() error
	Severity() Severity
	IsUserFacing() bool
}

type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Unwrap() error {
	return e.cause
}

func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsUserFacing returns whether the error is safe to show shoppers.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// CartError represents a rejected cart operation.
//
// Example:
//
//	err := errors.NewCartError("remove line", errors.ErrLineNotFound).WithProductID(3)
//	fmt.Println(err) // "cart error [product=3]: remove line: cart line not found"
type CartError struct {
	baseError
	ProductID int
}

// NewCartError creates a new CartError.
func NewCartError(message string, cause error) *CartError {
	return &CartError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithProductID adds the product id to the error context.
func (e *CartError) WithProductID(id int) *CartError {
	e.ProductID = id
	return e
}

// Error returns the formatted error message.
func (e *CartError) Error() string {
	prefix := "cart error"
	if e.ProductID != 0 {
		prefix = fmt.Sprintf("cart error [product=%d]", e.ProductID)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *CartError) Is(target error) bool {
	if _, ok := target.(*CartError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// CheckoutError represents an order that could not be placed.
type CheckoutError struct {
	baseError
	ItemCount int
}

// NewCheckoutError creates a new CheckoutError.
func NewCheckoutError(message string, cause error) *CheckoutError {
	return &CheckoutError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithItemCount records how many items were in the cart.
func (e *CheckoutError) WithItemCount(n int) *CheckoutError {
	e.ItemCount = n
	return e
}

// Error returns the formatted error message.
func (e *CheckoutError) Error() string {
	prefix := fmt.Sprintf("checkout error [items=%d]", e.ItemCount)
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *CheckoutError) Is(target error) bool {
	if _, ok := target.(*CheckoutError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("product", "42")
//	fmt.Println(err) // "product '42' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:   SeverityWarning,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents a missing form field or an unknown value.
//
// Example:
//
//	err := errors.NewValidationError("email", "is required")
//	fmt.Println(err) // "validation error [field=email]: is required: required field missing"
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a ValidationError for a required field.
// The error wraps ErrIncompleteForm unless WithCause replaces it.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			cause:      ErrIncompleteForm,
			severity:   SeverityInfo,
			userFacing: true,
		},
		Field: field,
	}
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause replaces the wrapped cause.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsUserFacing returns true if the error message is safe to display to shoppers.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	var storeErr StoreError
	if As(err, &storeErr) {
		return storeErr.IsUserFacing()
	}
	return false
}

// IsNotFound reports whether err denotes a missing product, line or shopper.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var nf *NotFoundError
	if As(err, &nf) {
		return true
	}
	return Is(err, ErrProductNotFound) || Is(err, ErrLineNotFound) || Is(err, ErrShopperNotFound)
}

// IsValidation reports whether err carries at least one ValidationError.
func IsValidation(err error) bool {
	if err == nil {
		return false
	}
	var verr *ValidationError
	return As(err, &verr)
}

// Fields returns the field names of every ValidationError in err, including
// those joined with Join, in the order they were reported.
func Fields(err error) []string {
	var fields []string
	collectFields(err, &fields)
	return fields
}

func collectFields(err error, fields *[]string) {
	if err == nil {
		return
	}
	if verr, ok := err.(*ValidationError); ok {
		if verr.Field != "" {
			*fields = append(*fields, verr.Field)
		}
		return
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			collectFields(e, fields)
		}
		return
	}
	collectFields(Unwrap(err), fields)
}

// GetSeverity returns the severity of err, SeverityError for foreign errors.
func GetSeverity(err error) Severity {
	var storeErr StoreError
	if As(err, &storeErr) {
		return storeErr.Severity()
	}
	return SeverityError
}

// UserMessage returns a message suitable for the status line: the error text
// for user-facing errors, a generic message otherwise.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if Is(err, ErrIncompleteForm) {
		if fields := Fields(err); len(fields) > 0 {
			return fmt.Sprintf("Please fill in: %s", strings.Join(fields, ", "))
		}
	}
	switch {
	case Is(err, ErrCartEmpty):
		return "Your cart is empty"
	case Is(err, ErrOrderPending):
		return "Your order is already placed"
	case Is(err, ErrLineNotFound):
		return "That item is no longer in your cart"
	case Is(err, ErrProductNotFound):
		return "That product does not exist"
	case Is(err, ErrUnknownCategory):
		return "Unknown category"
	case Is(err, ErrNoOrder):
		return "There is no order to dismiss"
	case Is(err, ErrShopperLimit):
		return "The store is busy, please try again later"
	}
	if IsUserFacing(err) {
		return err.Error()
	}
	return "Something went wrong"
}
