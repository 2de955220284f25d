package store

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/AlexZinkM/pagekit/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var emailRe = regexp.MustCompile(`^[a-z0-9.\-_]+@[a-z0-9\-_]+(\.[a-z0-9\-_]+){1,4}$`)

type userRecord struct {
	user model.User
	hash []byte
}

// UserStore keeps registered users in memory
type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]*userRecord
	byEmail map[string]*userRecord
	now     func() time.Time
	cost    int
}

// NewUserStore creates an empty store
func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[string]*userRecord),
		byEmail: make(map[string]*userRecord),
		now:     time.Now,
		cost:    bcrypt.DefaultCost,
	}
}

// ValidateRegistration checks the registration form field by field.
// The returned error names the first offending field.
func ValidateRegistration(req model.RegisterRequest) *model.APIError {
	if strings.TrimSpace(req.Name) == "" {
		return model.ValueError("name", "Name cannot be empty.")
	}
	if !emailRe.MatchString(strings.ToLower(strings.TrimSpace(req.Email))) {
		return model.ValueError("email", "Invalid email.")
	}
	if req.Password == "" {
		return model.ValueError("password", "Password cannot be empty.")
	}
	return nil
}

// Register validates the form and stores a new user.
// Application errors are returned as *model.APIError.
func (s *UserStore) Register(req model.RegisterRequest) (model.User, error) {
	if apiErr := ValidateRegistration(req); apiErr != nil {
		return model.User{}, apiErr
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return model.User{}, model.ValueError("email", "Email is already in use.")
	}

	rec := &userRecord{
		user: model.User{
			ID:        uuid.NewString(),
			Name:      strings.TrimSpace(req.Name),
			Email:     email,
			CreatedAt: s.now().UTC(),
		},
		hash: hash,
	}
	s.byID[rec.user.ID] = rec
	s.byEmail[email] = rec
	return rec.user, nil
}

// Authenticate checks the credentials and returns the matching user
func (s *UserStore) Authenticate(req model.AuthenticateRequest) (model.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return model.User{}, model.AuthError("email", "Invalid email.")
	}
	if req.Password == "" {
		return model.User{}, model.AuthError("password", "Invalid password.")
	}

	s.mu.RLock()
	rec, ok := s.byEmail[email]
	s.mu.RUnlock()
	if !ok {
		return model.User{}, model.AuthError("email", "Invalid email.")
	}

	err := bcrypt.CompareHashAndPassword(rec.hash, []byte(req.Password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return model.User{}, model.AuthError("password", "Invalid password.")
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to compare password: %w", err)
	}
	return rec.user, nil
}

// Get returns the user with the given id
func (s *UserStore) Get(id string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[id]
	if !ok {
		return model.User{}, model.NotFoundError("id", "User not found.")
	}
	return rec.user, nil
}

// List returns one page of users, newest first
func (s *UserStore) List(pageIndex, pageSize int) model.UsersResponse {
	s.mu.RLock()
	users := make([]model.User, 0, len(s.byID))
	for _, rec := range s.byID {
		users = append(users, rec.user)
	}
	s.mu.RUnlock()

	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID > users[j].ID
		}
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})

	page := model.NewPage(len(users), pageIndex, pageSize)
	end := min(page.Offset+page.Limit, len(users))
	return model.UsersResponse{
		Page:  page,
		Users: users[page.Offset:end],
	}
}

// Len returns the number of registered users
func (s *UserStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
