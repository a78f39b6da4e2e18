package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/c0d3g3n/codegen-api/internal/model"
	"github.com/c0d3g3n/codegen-api/internal/repository"
)

// fakeUserRepo is an in-memory UserRepository enforcing the same uniqueness
// guarantees as the database.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, username, email, passwordHash string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return nil, repository.ErrDuplicateIdentity
		}
	}

	r.nextID++
	user := &model.User{
		ID:           r.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	r.users[user.ID] = user

	copied := *user

	return &copied, nil
}

func (r *fakeUserRepo) Get(_ context.Context, id int64) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	copied := *user

	return &copied, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) UpdatePasswordHash(_ context.Context, id int64, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}

	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now()

	return nil
}

func (r *fakeUserRepo) SetAdmin(_ context.Context, id int64, isAdmin bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}

	user.IsAdmin = isAdmin
	user.UpdatedAt = time.Now()

	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}

	delete(r.users, id)

	return nil
}

// fakeResetTokenRepo is an in-memory PasswordResetTokenRepository keyed by JTI.
type fakeResetTokenRepo struct {
	mu     sync.Mutex
	nextID int64
	tokens map[string]*model.PasswordResetToken
}

func newFakeResetTokenRepo() *fakeResetTokenRepo {
	return &fakeResetTokenRepo{tokens: make(map[string]*model.PasswordResetToken)}
}

func (r *fakeResetTokenRepo) Create(
	_ context.Context,
	token *model.PasswordResetToken,
) (*model.PasswordResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	token.ID = r.nextID
	token.CreatedAt = time.Now()
	token.UpdatedAt = time.Now()

	copied := *token
	r.tokens[token.JTI] = &copied

	return token, nil
}

func (r *fakeResetTokenRepo) GetByJTI(_ context.Context, jti string) (*model.PasswordResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.tokens[jti]
	if !ok {
		return nil, repository.ErrNotFound
	}

	copied := *token

	return &copied, nil
}

func (r *fakeResetTokenRepo) MarkUsed(_ context.Context, jti string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.tokens[jti]
	if !ok {
		return repository.ErrNotFound
	}

	token.Used = true
	token.UpdatedAt = time.Now()

	return nil
}

func (r *fakeResetTokenRepo) InvalidateUserTokens(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, token := range r.tokens {
		if token.UserID == userID && !token.Used {
			token.Used = true
		}
	}

	return nil
}

func (r *fakeResetTokenRepo) DeleteExpired(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for jti, token := range r.tokens {
		if token.ExpiresAt.Before(time.Now()) {
			delete(r.tokens, jti)
			deleted++
		}
	}

	return deleted, nil
}

// fakeConversionRepo is an in-memory ConversionRepository.
type fakeConversionRepo struct {
	mu          sync.Mutex
	nextID      int64
	conversions []model.Conversion
}

func (r *fakeConversionRepo) Create(_ context.Context, c *model.Conversion) (*model.Conversion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	c.ID = r.nextID
	c.CreatedAt = time.Now()
	r.conversions = append(r.conversions, *c)

	return c, nil
}

func (r *fakeConversionRepo) ListByUser(_ context.Context, userID int64) ([]model.Conversion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []model.Conversion
	for _, c := range r.conversions {
		if c.UserID == userID {
			out = append(out, c)
		}
	}

	return out, nil
}

// fakeFeedbackRepo is an in-memory FeedbackRepository.
type fakeFeedbackRepo struct {
	mu      sync.Mutex
	nextID  int64
	entries []model.Feedback
}

func (r *fakeFeedbackRepo) Create(_ context.Context, f *model.Feedback) (*model.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	f.ID = r.nextID
	f.CreatedAt = time.Now()
	r.entries = append(r.entries, *f)

	return f, nil
}

func (r *fakeFeedbackRepo) ListByUser(_ context.Context, userID int64) ([]model.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []model.Feedback
	for _, f := range r.entries {
		if f.UserID == userID {
			out = append(out, f)
		}
	}

	return out, nil
}

// fakeMailer records sent email instead of delivering it.
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentEmail
}

type sentEmail struct {
	to      []string
	subject string
	body    string
}

func (m *fakeMailer) SendHTML(to []string, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, sentEmail{to: to, subject: subject, body: htmlBody})

	return nil
}
