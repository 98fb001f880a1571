package usecase

import (
	"context"
	"fmt"

	"account_backend/internal/feature/user/domain/entity"
	"account_backend/internal/platform/password"
)

// UserRepository abstracts the user lookup needed for sign-in.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// FindByEmail retrieves a user matching the specified email address.
	// It returns an error if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// JWTGenerator defines the interface for issuing signed tokens.
type JWTGenerator interface {
	// GenerateToken creates a signed JWT token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// dummySalt and dummyHash feed the password check when the user does not
// exist, so a sign-in against an unknown email costs the same as a real one.
var dummySalt, dummyHash = func() (string, string) {
	salt, _ := password.GenerateSalt()
	hash, _ := password.Hash("timing-equalizer", salt)
	return salt, hash
}()

// authUsecase implements the sign-in business logic.
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
	}
}

// SignIn verifies the credential pair and returns a signed token plus the
// matched user. ErrUserNotFound and ErrInvalidCredentials distinguish the
// two failure modes for the handler.
func (u *authUsecase) SignIn(ctx context.Context, email, pw string) (string, *entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// Always run the hash comparison so unknown emails are not
	// distinguishable by response time.
	salt, hash := dummySalt, dummyHash
	if err == nil {
		salt, hash = user.Salt, user.HashedPassword
	}
	match := password.Verify(pw, salt, hash)

	if err != nil {
		return "", nil, ErrUserNotFound
	}
	if !match {
		return "", nil, ErrInvalidCredentials
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, user, nil
}
