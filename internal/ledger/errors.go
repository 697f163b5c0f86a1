package ledger

import "errors"

// Every failed operation returns one of these sentinel values and leaves all
// ledger state untouched. There are no transient errors; each operation is a
// discrete user-initiated action and callers surface failures directly.
var (
	ErrInvalidName       = errors.New("zombie name must not be empty")
	ErrNotFound          = errors.New("zombie not found")
	ErrAlreadyOwnsZombie = errors.New("principal already owns a zombie")
	ErrNotOwner          = errors.New("caller does not own this zombie")
	ErrNotAuthorized     = errors.New("caller is neither owner nor approved for this zombie")
	ErrOwnershipMismatch = errors.New("zombie is not owned by the stated principal")
	ErrOnCooldown        = errors.New("zombie is still cooling down")
)
