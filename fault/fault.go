// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type ForbiddenError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type UnauthorisedError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	AssetNotFound                = NotFoundError("asset not found")
	CertificateExpired           = InvalidError("certificate has expired")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	DatabaseVersion              = ProcessError("database version is newer than this program")
	FileAlreadyExists            = ExistsError("file already exists")
	FileNotFound                 = NotFoundError("file not found")
	FileTooLarge                 = InvalidError("file too large")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidPrincipal             = InvalidError("invalid principal")
	InvalidSeller                = InvalidError("seller is not the current owner of the asset")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingParameters            = InvalidError("missing parameters")
	NotForSale                   = InvalidError("asset is not for sale")
	NotInitialised               = NotFoundError("not initialised")
	NotOwner                     = ForbiddenError("only the owner can modify the asset")
	RateLimiting                 = InvalidError("rate limiting")
	Unauthorised                 = UnauthorisedError("anonymous callers cannot upload")
	UnsupportedFileStore         = InvalidError("unsupported file store type")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string       { return string(e) }
func (e ForbiddenError) Error() string    { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e ProcessError) Error() string      { return string(e) }
func (e UnauthorisedError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool       { _, ok := e.(ExistsError); return ok }
func IsErrForbidden(e error) bool    { _, ok := e.(ForbiddenError); return ok }
func IsErrInvalid(e error) bool      { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool     { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool      { _, ok := e.(ProcessError); return ok }
func IsErrUnauthorised(e error) bool { _, ok := e.(UnauthorisedError); return ok }

// errors that may be returned to an RPC client
var remote = []error{
	AssetNotFound,
	FileAlreadyExists,
	FileNotFound,
	FileTooLarge,
	InvalidCount,
	InvalidPrincipal,
	InvalidSeller,
	MissingParameters,
	NotForSale,
	NotOwner,
	RateLimiting,
	Unauthorised,
}

// Lookup - convert a message received from a server back to the
// matching error instance
//
// unknown messages are returned as a ProcessError
func Lookup(message string) error {
	for _, e := range remote {
		if e.Error() == message {
			return e
		}
	}
	return ProcessError(message)
}
