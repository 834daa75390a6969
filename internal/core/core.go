package core

import (
	"context"
	"errors"
	"feedbacker/internal/repository"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials error = errors.New("invalid username/password combination")
	ErrDuplicateUsername  error = errors.New("username already taken")
	ErrDuplicateEmail     error = errors.New("email already registered")
	ErrUserNotFound       error = errors.New("user not found")
	ErrFeedbackNotFound   error = errors.New("feedback not found")
	ErrUnauthorized       error = errors.New("login required")
	// ErrForbidden matches ErrUnauthorized under errors.Is.
	ErrForbidden error = fmt.Errorf("resource belongs to another user: %w", ErrUnauthorized)
)

// Board implements registration, authentication and ownership-checked
// feedback management on top of a Repository.
type Board struct {
	logs      *zap.SugaredLogger
	repo      Repository
	hashCost  int
	dummyHash []byte
}

// NewBoard is a constructor function for the Board type.
func NewBoard(logger *zap.SugaredLogger, repo Repository) *Board {
	// compared against when the username is unknown so both failure paths cost one bcrypt comparison
	dummyHash, _ := bcrypt.GenerateFromPassword([]byte("feedbacker-dummy-password"), bcrypt.DefaultCost)

	return &Board{
		logs:      logger,
		repo:      repo,
		hashCost:  bcrypt.DefaultCost,
		dummyHash: dummyHash,
	}
}

// Register hashes the password and stores a new user.
func (b *Board) Register(ctx context.Context, msg RegisterMessage) (UserRecord, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), b.hashCost)
	if err != nil {
		return UserRecord{}, fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		Username:  msg.Username,
		Password:  repository.PasswordHash(hash),
		Email:     msg.Email,
		FirstName: msg.FirstName,
		LastName:  msg.LastName,
	}

	err = b.repo.CreateUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return UserRecord{}, ErrDuplicateUsername
		case errors.Is(err, repository.ErrDuplicateEmail):
			return UserRecord{}, ErrDuplicateEmail
		}
		return UserRecord{}, fmt.Errorf("create user: %w", err)
	}

	b.logs.Infow("user registered", "username", user.Username)

	return toUserRecord(user), nil
}

// Authenticate checks the provided username and password against the stored
// bcrypt hash. An unknown user and a wrong password both yield
// ErrInvalidCredentials.
func (b *Board) Authenticate(ctx context.Context, msg AuthMessage) (UserRecord, error) {
	user, err := b.repo.GetUser(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(b.dummyHash, []byte(msg.Password))
			return UserRecord{}, ErrInvalidCredentials
		}
		return UserRecord{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(msg.Password)); err != nil {
		return UserRecord{}, ErrInvalidCredentials
	}

	return toUserRecord(user), nil
}

// GetUserPage returns the profile of username with all feedback it owns.
// Only the owner may view it.
func (b *Board) GetUserPage(ctx context.Context, actor, username string) (UserPage, error) {
	if err := authorize(actor, username); err != nil {
		return UserPage{}, err
	}

	user, err := b.repo.GetUser(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserPage{}, ErrUserNotFound
		}
		return UserPage{}, fmt.Errorf("get user: %w", err)
	}

	feedback, err := b.repo.ListFeedback(ctx, username)
	if err != nil {
		return UserPage{}, fmt.Errorf("list feedback: %w", err)
	}

	records := make([]FeedbackRecord, 0, len(feedback))
	for _, f := range feedback {
		records = append(records, toFeedbackRecord(f))
	}

	return UserPage{
		User:     toUserRecord(user),
		Feedback: records,
	}, nil
}

// DeleteUser removes the owner's account together with all of its feedback.
func (b *Board) DeleteUser(ctx context.Context, actor, username string) error {
	if err := authorize(actor, username); err != nil {
		return err
	}

	err := b.repo.DeleteUser(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	b.logs.Infow("user deleted", "username", username)
	return nil
}

func (b *Board) AddFeedback(ctx context.Context, actor, owner string, msg FeedbackMessage) (FeedbackRecord, error) {
	if err := authorize(actor, owner); err != nil {
		return FeedbackRecord{}, err
	}

	feedback, err := b.repo.CreateFeedback(ctx, repository.Feedback{
		Title:    msg.Title,
		Content:  msg.Content,
		Username: owner,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return FeedbackRecord{}, ErrUserNotFound
		}
		return FeedbackRecord{}, fmt.Errorf("create feedback: %w", err)
	}

	b.logs.Infow("feedback created", "username", owner, "feedback_id", feedback.ID)
	return toFeedbackRecord(feedback), nil
}

// GetFeedbackForEdit loads a feedback row for its owner. The row must exist before
// ownership is checked.
func (b *Board) GetFeedbackForEdit(ctx context.Context, actor string, id uint) (FeedbackRecord, error) {
	feedback, err := b.loadOwnedFeedback(ctx, actor, id)
	if err != nil {
		return FeedbackRecord{}, err
	}
	return toFeedbackRecord(feedback), nil
}

// EditFeedback replaces title and content of an owned feedback row. Concurrent
// edits are last-write-wins.
func (b *Board) EditFeedback(ctx context.Context, actor string, id uint, msg FeedbackMessage) (FeedbackRecord, error) {
	feedback, err := b.loadOwnedFeedback(ctx, actor, id)
	if err != nil {
		return FeedbackRecord{}, err
	}

	feedback.Title = msg.Title
	feedback.Content = msg.Content

	err = b.repo.UpdateFeedback(ctx, feedback)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return FeedbackRecord{}, ErrFeedbackNotFound
		}
		return FeedbackRecord{}, fmt.Errorf("update feedback: %w", err)
	}

	b.logs.Infow("feedback updated", "username", feedback.Username, "feedback_id", feedback.ID)
	return toFeedbackRecord(feedback), nil
}

// DeleteFeedback removes an owned feedback row and returns what was deleted.
func (b *Board) DeleteFeedback(ctx context.Context, actor string, id uint) (FeedbackRecord, error) {
	feedback, err := b.loadOwnedFeedback(ctx, actor, id)
	if err != nil {
		return FeedbackRecord{}, err
	}

	err = b.repo.DeleteFeedback(ctx, feedback.ID, feedback.Username)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return FeedbackRecord{}, ErrFeedbackNotFound
		}
		return FeedbackRecord{}, fmt.Errorf("delete feedback: %w", err)
	}

	b.logs.Infow("feedback deleted", "username", feedback.Username, "feedback_id", feedback.ID)
	return toFeedbackRecord(feedback), nil
}

func (b *Board) loadOwnedFeedback(ctx context.Context, actor string, id uint) (repository.Feedback, error) {
	if actor == "" {
		return repository.Feedback{}, ErrUnauthorized
	}

	feedback, err := b.repo.GetFeedback(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return repository.Feedback{}, ErrFeedbackNotFound
		}
		return repository.Feedback{}, fmt.Errorf("get feedback: %w", err)
	}

	if err := authorize(actor, feedback.Username); err != nil {
		return repository.Feedback{}, err
	}

	return feedback, nil
}

// authorize is the ownership guard: an anonymous actor is unauthorized, an
// actor other than the owner is forbidden.
func authorize(actor, owner string) error {
	if actor == "" {
		return ErrUnauthorized
	}
	if actor != owner {
		return ErrForbidden
	}
	return nil
}

func toUserRecord(user repository.User) UserRecord {
	return UserRecord{
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func toFeedbackRecord(feedback repository.Feedback) FeedbackRecord {
	return FeedbackRecord{
		ID:       feedback.ID,
		Title:    feedback.Title,
		Content:  feedback.Content,
		Username: feedback.Username,
	}
}
