package store

import (
	"context"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CountEnrollments returns the number of mirrored enrollments for a course
	CountEnrollments(ctx context.Context, courseSlug string) (int64, error)

	// UpsertEnrollment records an enrollment mirror row. Repeated calls for
	// the same (courseSlug, address) pair are no-ops.
	UpsertEnrollment(ctx context.Context, courseSlug, address, method string, txHash *string) error

	// UpsertModuleCompletion records a module completion mirror row.
	// Idempotent like UpsertEnrollment.
	UpsertModuleCompletion(ctx context.Context, courseSlug, address string, moduleIndex uint32, txHash *string) error

	// IsEnrollmentMirrored checks whether an enrollment mirror row exists
	IsEnrollmentMirrored(ctx context.Context, courseSlug, address string) (bool, error)

	// GetValue retrieves a key-value entry; returns ("", nil) when absent
	GetValue(ctx context.Context, key string) (string, error)

	// SetValue stores a key-value entry, overwriting any existing value
	SetValue(ctx context.Context, key, value string) error

	// SetValueOnce stores a key-value entry only if the key is absent and
	// returns the value that ended up persisted
	SetValueOnce(ctx context.Context, key, value string) (string, error)

	// DeleteValue removes a key-value entry; absent keys are not an error
	DeleteValue(ctx context.Context, key string) error
}
