package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateModels(models ...any) error
	Create(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entities any) error
	UpdateWhere(ctx context.Context, model any, conditions map[string]any, values map[string]any) (int64, error)
	DeleteWhere(ctx context.Context, model any, conditions map[string]any) (int64, error)
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
