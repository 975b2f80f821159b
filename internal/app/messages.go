// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-books-api handlers, services and validators.
//
// All Msg* constants are message catalog keys. Handlers translate them into
// the negotiated locale before writing the response envelope; a key missing
// from every catalog is written verbatim. Keeping them in one place ensures
// consistent wording throughout the API.
package app

const (
	// MsgSuccess is the generic success message for reads.
	MsgSuccess = "api.success"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "api.error.internal"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "api.error.invalid.body"

	// MsgInvalidID is returned when a path id is not a positive integer.
	// Parameter {0} is the raw id.
	MsgInvalidID = "api.error.invalid.id"

	// MsgNotFound is returned for unknown routes and unsupported methods.
	MsgNotFound = "api.error.notfound"

	// MsgRateLimitExceeded is the fixed rate limit message. It is never
	// translated because admission runs before locale negotiation.
	MsgRateLimitExceeded = "Rate limit exceeded. Please try again later."
)

// Book messages.
const (
	MsgBookListEmpty = "book.list.empty"
	MsgBookCreated   = "book.created"
	MsgBookUpdated   = "book.updated"
	MsgBookDeleted   = "book.deleted"
	// MsgBookNotFound takes the requested id as parameter {0}.
	MsgBookNotFound = "book.notfound"
	// MsgBookPreconditionFailed is returned when If-Match does not match the
	// current representation.
	MsgBookPreconditionFailed = "book.precondition.failed"
)

// Auth messages.
const (
	MsgRegistered = "auth.registered"
	MsgLoggedIn   = "auth.login.success"

	// MsgInvalidLoginPassword is returned for an unknown user, a wrong
	// password and a disabled account alike.
	MsgInvalidLoginPassword = "auth.invalid.credentials"

	// MsgUnauthorized is returned when a protected route is called without a
	// valid bearer token.
	MsgUnauthorized = "auth.unauthorized"

	MsgUsernameTaken = "auth.username.taken"
	MsgEmailTaken    = "auth.email.taken"
)

// Validation messages. Length limits are passed as parameter {0}.
const (
	MsgEmailEmpty   = "validation.email.empty"
	MsgEmailInvalid = "validation.email.invalid"
	MsgEmailTooLong = "validation.email.toolong"

	MsgPasswordEmpty     = "validation.password.empty"
	MsgPasswordTooShort  = "validation.password.tooshort"
	MsgPasswordTooLong   = "validation.password.toolong"
	MsgPasswordNoLetter  = "validation.password.letter"
	MsgPasswordNoDigit   = "validation.password.digit"
	MsgPasswordTooCommon = "validation.password.common"

	MsgUsernameEmpty    = "validation.username.empty"
	MsgUsernameTooShort = "validation.username.tooshort"
	MsgUsernameTooLong  = "validation.username.toolong"
	MsgUsernameChars    = "validation.username.chars"

	MsgBookTitleRequired = "validation.book.title.required"
	MsgBookTitleTooLong  = "validation.book.title.toolong"
	MsgBookYearNegative  = "validation.book.year.negative"
	MsgBookPriceNegative = "validation.book.price.negative"
)
