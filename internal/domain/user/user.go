package user

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arkagme/meeting-room-api/internal/domain"
)

// User is the aggregate root for a person who books rooms. Users are upserted
// on login by email and never deleted.
type User struct {
	id        uuid.UUID
	name      string
	email     string
	createdAt time.Time
}

// NewUser creates a User with validated fields. The email is normalized to
// lower case so it can act as the upsert key.
func NewUser(name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, domain.NewValidationError("name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.NewValidationError("a valid email is required")
	}

	return &User{
		id:        uuid.New(),
		name:      name,
		email:     email,
		createdAt: time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a User from persistence data (no validation).
func Reconstruct(id uuid.UUID, name, email string, createdAt time.Time) *User {
	return &User{id: id, name: name, email: email, createdAt: createdAt}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// Rename updates the display name. Login refreshes the stored name when it
// changed.
func (u *User) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.NewValidationError("name is required")
	}
	u.name = name
	return nil
}
