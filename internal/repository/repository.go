package repository

import (
	"context"
	"errors"
	"feedbacker/internal/db"
	"fmt"
	"strings"
)

var (
	ErrUserNotFound      error = errors.New("user not found")
	ErrFeedbackNotFound  error = errors.New("feedback not found")
	ErrDuplicateUsername error = errors.New("username already taken")
	ErrDuplicateEmail    error = errors.New("email already registered")
)

type BoardRepository struct {
	db Storage
}

func NewBoardRepository(db Storage) *BoardRepository {
	return &BoardRepository{
		db: db,
	}
}

func (r *BoardRepository) Migrate() error {
	err := r.db.MigrateModels(&User{}, &Feedback{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *BoardRepository) CreateUser(ctx context.Context, user User) error {
	err := r.db.Create(ctx, &user)
	if err != nil {
		var dupErr *db.DuplicateKeyError
		if errors.As(err, &dupErr) {
			if strings.Contains(dupErr.Constraint, "email") {
				return ErrDuplicateEmail
			}
			return ErrDuplicateUsername
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *BoardRepository) GetUser(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

// DeleteUser removes the user and every feedback row it owns in a single
// transaction. The foreign key cascades as well; deleting explicitly keeps the
// invariant even where the constraint was never migrated.
func (r *BoardRepository) DeleteUser(ctx context.Context, username string) error {
	err := r.db.InTransaction(ctx, func(ctx context.Context) error {
		_, err := r.db.DeleteWhere(ctx, &Feedback{}, map[string]any{"username": username})
		if err != nil {
			return fmt.Errorf("delete user feedback: %w", err)
		}

		deleted, err := r.db.DeleteWhere(ctx, &User{}, map[string]any{"username": username})
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		if deleted == 0 {
			return ErrUserNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user transaction: %w", err)
	}

	return nil
}

func (r *BoardRepository) CreateFeedback(ctx context.Context, feedback Feedback) (Feedback, error) {
	err := r.db.Create(ctx, &feedback)
	if err != nil {
		if errors.Is(err, db.ErrForeignKeyViolation) {
			return Feedback{}, ErrUserNotFound
		}
		return Feedback{}, fmt.Errorf("create feedback: %w", err)
	}

	return feedback, nil
}

func (r *BoardRepository) GetFeedback(ctx context.Context, id uint) (Feedback, error) {
	var feedback Feedback

	err := r.db.GetOneBy(ctx, "id", id, &feedback)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Feedback{}, ErrFeedbackNotFound
		}
		return Feedback{}, fmt.Errorf("get feedback by id: %w", err)
	}

	return feedback, nil
}

func (r *BoardRepository) ListFeedback(ctx context.Context, username string) ([]Feedback, error) {
	feedback := []Feedback{}
	err := r.db.GetAllBy(ctx, "username", username, &feedback)
	if err != nil {
		return feedback, fmt.Errorf("get feedback by username: %w", err)
	}

	return feedback, nil
}

// UpdateFeedback rewrites title and content of the row matching both the id
// and the owning username.
func (r *BoardRepository) UpdateFeedback(ctx context.Context, feedback Feedback) error {
	updated, err := r.db.UpdateWhere(ctx, &Feedback{},
		map[string]any{"id": feedback.ID, "username": feedback.Username},
		map[string]any{"title": feedback.Title, "content": feedback.Content},
	)
	if err != nil {
		return fmt.Errorf("update feedback: %w", err)
	}
	if updated == 0 {
		return ErrFeedbackNotFound
	}

	return nil
}

func (r *BoardRepository) DeleteFeedback(ctx context.Context, id uint, username string) error {
	deleted, err := r.db.DeleteWhere(ctx, &Feedback{}, map[string]any{"id": id, "username": username})
	if err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	if deleted == 0 {
		return ErrFeedbackNotFound
	}

	return nil
}
