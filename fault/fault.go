// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type AuthorizationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	AlreadyListed                = ExistsError("already listed")
	AlreadySold                  = ExistsError("already sold")
	AmountOverflow               = InvalidError("amount exceeds 128 bit range")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	FeeMismatch                  = InvalidError("attached payment does not match the listing fee")
	InvalidAddress               = InvalidError("invalid address")
	InvalidAmount                = InvalidError("invalid amount")
	InvalidContent               = InvalidError("invalid content pointer")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidIpAddress             = InvalidError("invalid ip address")
	InvalidPrice                 = InvalidError("invalid price")
	InvalidRecipient             = InvalidError("invalid fee recipient")
	ItemNotFound                 = NotFoundError("item not found")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	ListingNotFound              = NotFoundError("listing not found")
	MissingParameters            = InvalidError("missing parameters")
	NotAdmin                     = AuthorizationError("not the marketplace administrator")
	NotAuthorized                = AuthorizationError("not authorized to transfer")
	NotInitialised               = ProcessError("not initialised")
	NotOwner                     = AuthorizationError("not the current owner")
	PriceMismatch                = InvalidError("attached payment does not match the listing price")
	RateLimiting                 = ProcessError("rate limiting")
	TransactionInUse             = ProcessError("transaction already in use")
	TransferFailed               = ProcessError("ownership transfer failed")
	WrongRecordLength            = ProcessError("wrong record length")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorizationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
