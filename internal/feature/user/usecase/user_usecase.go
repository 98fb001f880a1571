package usecase

import (
	"context"
	"fmt"

	"account_backend/internal/feature/user/domain/entity"
	"account_backend/internal/platform/password"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 6
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists if a user with the same email exists.
	Create(ctx context.Context, user *entity.User) error

	// FindAll retrieves every user, ordered by ID.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete permanently removes a user from the storage.
	Delete(ctx context.Context, user *entity.User) error
}

// UserUpdate carries the set of fields a client is allowed to change.
// Nil fields are left untouched; anything outside this allow-list is
// never applied to the stored record.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

// userUsecase implements the account management business logic.
type userUsecase struct {
	users UserRepository
}

// NewUserUsecase creates a new instance of userUsecase.
func NewUserUsecase(users UserRepository) *userUsecase {
	return &userUsecase{users: users}
}

// validatePassword checks that the password meets the minimum requirements.
func validatePassword(pw string) error {
	if len(pw) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// List returns all registered users.
func (u *userUsecase) List(ctx context.Context) ([]*entity.User, error) {
	return u.users.FindAll(ctx)
}

// Signup registers a new user with a freshly salted password hash.
func (u *userUsecase) Signup(ctx context.Context, name, email, pw string) error {
	if err := validatePassword(pw); err != nil {
		return err
	}

	salt, err := password.GenerateSalt()
	if err != nil {
		return err
	}
	hashed, err := password.Hash(pw, salt)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:           name,
		Email:          email,
		HashedPassword: hashed,
		Salt:           salt,
	}
	return u.users.Create(ctx, user)
}

// FindByID returns the user with the given ID.
func (u *userUsecase) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Update applies the allow-listed fields to the user and persists the result.
// A password change generates a new salt and hash.
func (u *userUsecase) Update(ctx context.Context, user *entity.User, upd UserUpdate) (*entity.User, error) {
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.Password != nil {
		if err := validatePassword(*upd.Password); err != nil {
			return nil, err
		}
		salt, err := password.GenerateSalt()
		if err != nil {
			return nil, err
		}
		hashed, err := password.Hash(*upd.Password, salt)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Salt = salt
		user.HashedPassword = hashed
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete permanently removes the user. There is no soft delete.
func (u *userUsecase) Delete(ctx context.Context, user *entity.User) error {
	return u.users.Delete(ctx, user)
}
