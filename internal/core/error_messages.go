package core

// # Error Codes Reference
//
// Every error shown to a vendor or operator carries a code so support can find
// the matching log line quickly.
//
//	VND001  Vendor not found            unknown or malformed vendor id
//	VAL003  Required field              legal name or email left empty
//	VAL006  Invalid document kind       upload part outside the four kinds
//	AUTH001 Unauthorized                missing or wrong X-API-Key
//	CERT001 Not verified                certificate requested before verification
//	FILE001 File too large              request body over UPLOAD_MAX_FILE_SIZE
//	FILE002 Invalid form                multipart body could not be parsed
//	FILE003 Storage failure             document could not be written to disk
//	DB004   Connection refused          datastore unreachable
//	DB006   Timeout                     datastore or request timed out
//	UPL002  System busy                 all document write slots taken
//	UPL004  Request cancelled           client went away
//	RATE001 Rate limited                too many requests from one IP
//	ERR000  Unknown                     anything else; check the logs
//
// Sentinel errors are matched with errors.Is first. Errors that only surface
// as text (driver errors, net/http errors) fall back to case-insensitive
// substring patterns, first match wins.

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrVendorNotFound is returned when a vendor id is unknown or malformed.
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrMissingRequired is returned by Intake when legal name or email is empty.
	ErrMissingRequired = errors.New("required field missing")

	// ErrInvalidKind is returned when a document kind is not one of RequiredKinds.
	ErrInvalidKind = errors.New("invalid document kind")

	// ErrUnauthorized is returned when the admin secret does not match.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotVerified is returned when a certificate is requested for an unverified vendor.
	ErrNotVerified = errors.New("not verified yet")

	// ErrStorage wraps failures writing documents to disk.
	ErrStorage = errors.New("document storage failed")
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

var (
	msgVendorNotFound = UserMessage{
		Message: "Vendor not found",
		Action:  "Check the link or start a new application",
		Code:    "VND001",
	}
	msgMissingRequired = UserMessage{
		Message: "Legal name and email are required",
		Action:  "Fill in both fields and submit again",
		Code:    "VAL003",
	}
	msgInvalidKind = UserMessage{
		Message: "Unknown document type",
		Action:  "Upload insurance, license, W-9 or policy documents",
		Code:    "VAL006",
	}
	msgUnauthorized = UserMessage{
		Message: "unauthorized",
		Action:  "Send the admin key in the X-API-Key header",
		Code:    "AUTH001",
	}
	msgNotVerified = UserMessage{
		Message: "Not verified yet",
		Action:  "Upload all documents and wait for payment confirmation",
		Code:    "CERT001",
	}
	msgStorage = UserMessage{
		Message: "Your documents could not be saved",
		Action:  "Please try again in a few moments",
		Code:    "FILE003",
	}
	msgTooManyUploads = UserMessage{
		Message: "System is busy processing other uploads",
		Action:  "Please wait a moment and try again",
		Code:    "UPL002",
	}
)

// sentinels maps wrapped sentinel errors to messages; checked before patterns.
var sentinels = []struct {
	err error
	msg UserMessage
}{
	{ErrVendorNotFound, msgVendorNotFound},
	{ErrMissingRequired, msgMissingRequired},
	{ErrInvalidKind, msgInvalidKind},
	{ErrUnauthorized, msgUnauthorized},
	{ErrNotVerified, msgNotVerified},
	{ErrTooManyUploads, msgTooManyUploads},
	{ErrStorage, msgStorage},
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error text (lowercase) to user messages.
// Specific patterns must come before general ones.
var errorPatterns = []errorPattern{
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "Upload exceeds the maximum size",
			Action:  "Upload smaller files or fewer at once",
			Code:    "FILE001",
		},
	},
	{
		pattern: "multipart",
		msg: UserMessage{
			Message: "The upload form could not be read",
			Action:  "Reload the page and try again",
			Code:    "FILE002",
		},
	},
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to database",
			Action:  "Please try again in a few moments",
			Code:    "DB004",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Please try again",
			Code:    "DB006",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Operation timed out",
			Action:  "Please try again later",
			Code:    "DB006",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "UPL004",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
//
//	msg := MapError(fmt.Errorf("load vendor: %w", ErrVendorNotFound))
//	// msg.Code == "VND001"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, s := range sentinels {
		if errors.Is(err, s.err) {
			return s.msg
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific message rather than ERR000.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
