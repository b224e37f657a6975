package store

import "github.com/safepass/safepass/internal/logger"

// Repositories bundles every repository backed by the shared database
// connection.
type Repositories struct {
	UserRepository       UserRepository
	CredentialRepository CredentialRepository
}

// NewRepositories constructs all repositories over one connection pool.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db, log),
		CredentialRepository: NewCredentialRepository(db, log),
	}
}
