// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Carbon Ledger
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type AuthorizationError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type ProtocolError GenericError
type StateError GenericError
type ValidationError GenericError

// common errors - keep in alphabetic order
var (
	AdminOnly                 = AuthorizationError("admin only")
	AlreadyInitialised        = ProcessError("already initialised")
	AssetNotFound             = NotFoundError("asset not found")
	AssetNotHeldBySender      = ProtocolError("asset not held by sender")
	BusinessNotFound          = NotFoundError("business not found")
	BusinessNotVerified       = AuthorizationError("business not verified")
	CannotDecodeAccount       = ValidationError("cannot decode account")
	CertificateFileExists     = ProcessError("certificate file already exists")
	ChecksumMismatch          = ValidationError("checksum mismatch")
	CompanionAmountMismatch   = ProtocolError("companion amount mismatch")
	CompanionAssetMismatch    = ProtocolError("companion asset mismatch")
	CompanionReceiverMismatch = ProtocolError("companion receiver mismatch")
	CompanionSenderMismatch   = ProtocolError("companion sender mismatch")
	CreditExpired             = StateError("credit has expired")
	InsufficientFunds         = ValidationError("insufficient funds")
	InvalidApplicationCall    = ProtocolError("invalid application call")
	InvalidAssetQuantity      = ProtocolError("must send exactly one asset unit")
	InvalidCarbonTonnage      = ValidationError("must represent carbon tonnage")
	InvalidCount              = ProcessError("invalid count")
	InvalidKeyLength          = ValidationError("key length is invalid")
	InvalidListingPrice       = ValidationError("price must be greater than zero")
	InvalidMinimumQuantity    = ValidationError("minimum quantity must be greater than zero")
	InvalidRecord             = ProcessError("invalid record")
	InvalidSignature          = ValidationError("invalid signature")
	InvalidVintageYear        = ValidationError("invalid vintage year")
	InvalidYearsValid         = ValidationError("years valid out of range")
	IssuerNotFound            = NotFoundError("issuer not found")
	IssuerNotVerified         = AuthorizationError("issuer not verified")
	KeyFileExists             = ProcessError("key file already exists")
	ListingExpired            = StateError("listing has expired")
	ListingNotActive          = StateError("listing is not active")
	ListingNotFound           = NotFoundError("listing not found")
	MarketplaceAlreadyCreated = StateError("marketplace already created")
	MarketplaceNotCreated     = StateError("marketplace not created")
	MinimumQuantityTooLarge   = ValidationError("minimum quantity exceeds total tonnage")
	MissingCompanion          = ProtocolError("missing companion transaction")
	NotInitialised            = ProcessError("not initialised")
	OnlySellerCanCancel       = AuthorizationError("only seller can cancel")
	ProjectAlreadyExists      = StateError("project id already exists")
	ProjectNotFound           = NotFoundError("project not found")
	RateLimiting              = ProcessError("rate limiting")
	RegistryAlreadyCreated    = StateError("registry already created")
	RegistryNotCreated        = StateError("registry not created")
	StringTooLong             = ValidationError("string is too long")
	TransactionInUse          = ProcessError("transaction already in use")
	WrongCompanionKind        = ProtocolError("wrong companion transaction kind")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorizationError) Error() string { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e ProtocolError) Error() string      { return string(e) }
func (e StateError) Error() string         { return string(e) }
func (e ValidationError) Error() string    { return string(e) }

// determine the class of an error
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrProtocol(e error) bool      { _, ok := e.(ProtocolError); return ok }
func IsErrState(e error) bool         { _, ok := e.(StateError); return ok }
func IsErrValidation(e error) bool    { _, ok := e.(ValidationError); return ok }
