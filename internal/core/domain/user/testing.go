package user

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	c "pagecms/internal/core/domain/common"
	"sync"
	"time"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeTokenGenerator struct {
	Tokens []TokenValue
	ix     int
	lock   sync.Mutex
}

// NewFakeTokenGenerator yields the given tokens in order and keeps
// repeating the last one.
func NewFakeTokenGenerator(tokens ...string) *FakeTokenGenerator {
	g := &FakeTokenGenerator{Tokens: make([]TokenValue, 0, len(tokens))}
	for _, t := range tokens {
		g.Tokens = append(g.Tokens, TokenValue(t))
	}
	return g
}

func (g *FakeTokenGenerator) GenerateToken() TokenValue {
	g.lock.Lock()
	defer g.lock.Unlock()
	t := g.Tokens[g.ix]
	if g.ix < len(g.Tokens)-1 {
		g.ix++
	}
	return t
}

type FakeSessionTokenGenerator struct {
	Token string
}

func NewFakeSessionTokenGenerator(token string) *FakeSessionTokenGenerator {
	return &FakeSessionTokenGenerator{Token: token}
}

func (g *FakeSessionTokenGenerator) GenerateToken() SessionToken {
	return SessionToken(g.Token)
}

type SentValidationToken struct {
	User  User
	Token TokenValue
}

type FakeValidationTokenSender struct {
	Sent        []SentValidationToken
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeValidationTokenSender() *FakeValidationTokenSender {
	return &FakeValidationTokenSender{}
}

func (s *FakeValidationTokenSender) SendValidationToken(ctx context.Context, user User, token TokenValue) error {
	if s.ReturnError {
		return fmt.Errorf("could not send validation token for user %d", user.ID)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, SentValidationToken{User: user, Token: token})
	return nil
}

func (s *FakeValidationTokenSender) SentCount() int {
	return len(s.Sent)
}

type FakePasswordResetTokenSender struct {
	Sent        []SentValidationToken
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePasswordResetTokenSender() *FakePasswordResetTokenSender {
	return &FakePasswordResetTokenSender{}
}

func (s *FakePasswordResetTokenSender) SendPasswordResetToken(ctx context.Context, user User, token TokenValue) error {
	if s.ReturnError {
		return fmt.Errorf("could not send password reset token for user %d", user.ID)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, SentValidationToken{User: user, Token: token})
	return nil
}

func (s *FakePasswordResetTokenSender) SentCount() int {
	return len(s.Sent)
}

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		maxID = u.ID
	}
	u = User{
		ID:           maxID + 1,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         input.Role,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) List(ctx context.Context) ([]User, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	users := make([]User, len(r.Users))
	copy(users, r.Users)
	return users, nil
}

func (r *FakeUserRepository) Activate(ctx context.Context, id ID, at time.Time) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not activate user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].ActivatedAt = c.NewOptional(at, true)
			r.Users[ix].UpdatedAt = c.NewOptional(at, true)
			return r.Users[ix], nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetPassword(ctx context.Context, id ID, password PasswordHash, at time.Time) error {
	if r.ReturnError {
		return fmt.Errorf("could not set password for user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].PasswordHash = password
			r.Users[ix].UpdatedAt = c.NewOptional(at, true)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) Update(ctx context.Context, input UpdateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not update user %d", input.ID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID != input.ID {
			continue
		}
		if input.DoEmailUpdate {
			r.Users[ix].Email = input.Email
		}
		if input.DoFirstNameUpdate {
			r.Users[ix].FirstName = input.FirstName
		}
		if input.DoLastNameUpdate {
			r.Users[ix].LastName = input.LastName
		}
		if input.DoRoleUpdate {
			r.Users[ix].Role = input.Role
		}
		if input.DoActiveUpdate {
			if input.IsActive {
				r.Users[ix].ActivatedAt = c.NewOptional(input.UpdatedAt, true)
			} else {
				r.Users[ix].ActivatedAt = c.NewOptional(time.Time{}, false)
			}
		}
		r.Users[ix].UpdatedAt = c.NewOptional(input.UpdatedAt, true)
		return r.Users[ix], nil
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) Delete(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users = append(r.Users[:ix], r.Users[ix+1:]...)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

type FakeTokenRepository struct {
	Tokens      []Token
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeTokenRepository() *FakeTokenRepository {
	return &FakeTokenRepository{Tokens: make([]Token, 0, 10)}
}

func (r *FakeTokenRepository) Create(ctx context.Context, input CreateTokenInput) (t Token, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not create token for user %d", input.UserID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	t = Token{
		Value:     input.Value,
		UserID:    input.UserID,
		Purpose:   input.Purpose,
		ExpiresAt: input.ExpiresAt,
		CreatedAt: input.CreatedAt,
	}
	r.Tokens = append(r.Tokens, t)
	return t, nil
}

func (r *FakeTokenRepository) GetValid(
	ctx context.Context,
	value TokenValue,
	purpose TokenPurpose,
	now time.Time,
) (t Token, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, t := range r.Tokens {
		if t.Value == value && t.Purpose == purpose && !t.IsExpired(now) {
			return t, nil
		}
	}
	return t, ErrInvalidOrExpiredToken
}

func (r *FakeTokenRepository) Delete(ctx context.Context, value TokenValue) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, t := range r.Tokens {
		if t.Value == value {
			r.Tokens = append(r.Tokens[:ix], r.Tokens[ix+1:]...)
			return nil
		}
	}
	return ErrInvalidOrExpiredToken
}

func (r *FakeTokenRepository) DeleteByUserAndPurpose(ctx context.Context, userID ID, purpose TokenPurpose) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete tokens for user %d", userID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	kept := r.Tokens[:0]
	for _, t := range r.Tokens {
		if t.UserID != userID || t.Purpose != purpose {
			kept = append(kept, t)
		}
	}
	r.Tokens = kept
	return nil
}

func (r *FakeTokenRepository) TokenCount() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.Tokens)
}

type FakeSessionRepository struct {
	UserIdByToken  map[SessionToken]ID
	UserRepository UserRepository
	ReturnError    bool
	lock           sync.Mutex
}

func NewFakeSessionRepository(userRepository UserRepository) *FakeSessionRepository {
	return &FakeSessionRepository{
		UserIdByToken:  make(map[SessionToken]ID),
		UserRepository: userRepository,
	}
}

func (r *FakeSessionRepository) Create(ctx context.Context, input CreateSessionInput) error {
	if r.ReturnError {
		return fmt.Errorf("could not create session %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.UserIdByToken[input.Token] = input.UserID
	return nil
}

func (r *FakeSessionRepository) GetUserByToken(ctx context.Context, token SessionToken) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	userId, ok := r.UserIdByToken[token]
	if !ok {
		return u, ErrUserDoesNotExist
	}
	return r.UserRepository.GetByID(ctx, userId)
}

func (r *FakeSessionRepository) Delete(ctx context.Context, token SessionToken) (ID, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	userID, ok := r.UserIdByToken[token]
	if !ok {
		return ID(0), ErrSessionDoesNotExist
	}
	delete(r.UserIdByToken, token)
	return userID, nil
}
