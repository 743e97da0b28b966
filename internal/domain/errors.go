package domain

import "errors"

// Sentinel errors for store operations. Every failure is recovered at
// the store boundary: the operation leaves state untouched, emits a
// notification where the contract calls for one, and returns one of
// these.
var (
	// ErrNoActiveSession indicates the operation requires a logged-in user
	ErrNoActiveSession = errors.New("no active session")

	// ErrDuplicateUser indicates the email address is already registered
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidCredentials indicates no account matches email and password
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPasswordMismatch indicates the supplied current password is wrong
	ErrPasswordMismatch = errors.New("current password is incorrect")

	// ErrUserNotFound indicates the requested user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrVideoNotFound indicates the requested video does not exist
	ErrVideoNotFound = errors.New("video not found")

	// ErrOwnerMissing indicates a video's owner account no longer exists
	ErrOwnerMissing = errors.New("video owner not found")

	// ErrPlaylistNotFound indicates the requested playlist does not exist
	ErrPlaylistNotFound = errors.New("playlist not found")

	// ErrCommentNotFound indicates the requested comment does not exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrHistoryNotFound indicates the requested history entry does not exist
	ErrHistoryNotFound = errors.New("history item not found")

	// ErrNotOwner indicates the caller does not own the record
	ErrNotOwner = errors.New("record is owned by another user")

	// ErrNotAuthor indicates the caller did not write the comment
	ErrNotAuthor = errors.New("comment was written by another user")

	// ErrAuthorMismatch indicates the claimed author is not the session user
	ErrAuthorMismatch = errors.New("author does not match session user")

	// ErrEmptyComment indicates a blank or whitespace-only comment body
	ErrEmptyComment = errors.New("comment cannot be empty")
)
