package domain

import "errors"

var (
	// ErrActorNotFound is returned when an identifier resolves to no actor
	// in any actor table (or is not a well-formed id at all)
	ErrActorNotFound = errors.New("actor not found")

	// ErrPacketNotFound is returned when a packet number is unknown
	ErrPacketNotFound = errors.New("packet not found")

	// ErrHistoryNotFound is returned when a packet has no custody chain yet.
	// Kept distinct from ErrPacketNotFound: a packet can exist with zero transfers.
	ErrHistoryNotFound = errors.New("custody history not found")

	// ErrNotAuthorized is returned when the requester's scope does not cover
	// the requested resource
	ErrNotAuthorized = errors.New("not authorized")

	// ErrPurchaseNotFound is returned when a purchase id is unknown
	ErrPurchaseNotFound = errors.New("purchase not found")

	// ErrPurchaseFull is returned when adding packets would exceed the
	// purchase's declared piece count
	ErrPurchaseFull = errors.New("purchase piece count exceeded")

	// ErrDuplicatePacketNo is returned when a packet number already exists
	ErrDuplicatePacketNo = errors.New("packet number already exists")

	// ErrDuplicateTransactionNo is returned when a transfer number already exists
	ErrDuplicateTransactionNo = errors.New("transaction number already exists")

	// ErrDuplicateJanganNo is returned when a purchase lot number already exists
	ErrDuplicateJanganNo = errors.New("jangan number already exists")

	// ErrDuplicateLookupValue is returned when a lookup value name is already taken
	ErrDuplicateLookupValue = errors.New("lookup value already exists")

	// ErrDuplicateEmail is returned when an actor email is already taken
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrInvalidCredentials is returned on a failed login
	ErrInvalidCredentials = errors.New("invalid credentials")
)
