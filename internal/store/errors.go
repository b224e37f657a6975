package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCredentialNotFound is returned when a query, update or delete targets
	// a credential (identified by id and user_id) that does not exist in the
	// database. Ownership mismatches are indistinguishable from absence.
	ErrCredentialNotFound = errors.New("credential was not found")

	// ErrCredentialNotSaved is returned when an INSERT completes without error
	// but the number of affected rows is zero, indicating that no data was
	// actually persisted.
	ErrCredentialNotSaved = errors.New("credential was not saved")

	// ErrNothingToUpdate is returned when a partial update request carries no
	// fields to change.
	ErrNothingToUpdate = errors.New("no fields to update")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
