package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User with this email already exists",
	http.StatusBadRequest,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// --- Verification gates ---

var ErrEmailNotVerified = New(
	CodeForbidden,
	"verification",
	"Email verification required. Please verify your email to continue.",
	http.StatusForbidden,
)

var ErrIDNotVerified = New(
	CodeForbidden,
	"verification",
	"ID verification required. Please complete identity verification to create services.",
	http.StatusForbidden,
)

var ErrVerificationTokenUsed = New(
	CodeInvalidToken,
	"verification",
	"Verification token has already been used",
	http.StatusBadRequest,
)

var ErrVerificationTokenExpired = New(
	CodeTokenExpired,
	"verification",
	"Verification token has expired",
	http.StatusBadRequest,
)

var ErrAlreadyVerified = New(
	CodeInvalidOperation,
	"verification",
	"Email is already verified",
	http.StatusBadRequest,
)

// --- Bookings ---

var ErrInvalidBookingTransition = New(
	CodeInvalidStatus,
	"booking",
	"Invalid booking status transition",
	http.StatusBadRequest,
)

var ErrBookingNotActionable = New(
	CodeForbidden,
	"booking",
	"Only the assigned caregiver can perform this action",
	http.StatusForbidden,
)

var ErrBookingNotParticipant = New(
	CodeForbidden,
	"booking",
	"You are not a participant of this booking",
	http.StatusForbidden,
)

var ErrServiceStartTooEarly = New(
	CodeInvalidOperation,
	"booking",
	"Service can only be started within 30 minutes of the scheduled start time",
	http.StatusBadRequest,
)

var ErrCancelCompletedBooking = New(
	CodeInvalidOperation,
	"booking",
	"A completed booking cannot be cancelled",
	http.StatusBadRequest,
)

var ErrPetHasActiveBookings = New(
	CodeConflict,
	"pet",
	"Cannot remove a pet with active bookings",
	http.StatusBadRequest,
)

// --- Reviews ---

var ErrBookingNotCompleted = New(
	CodeInvalidOperation,
	"review",
	"Reviews can only be left for completed bookings",
	http.StatusBadRequest,
)

var ErrReviewAlreadyExists = New(
	CodeAlreadyExists,
	"review",
	"A review for this booking already exists",
	http.StatusBadRequest,
)

// --- Uploads ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"upload",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

// --- Payments ---

var ErrPaymentProvider = New(
	CodeExternalServiceError,
	"payment",
	"Payment provider error",
	http.StatusServiceUnavailable,
)
