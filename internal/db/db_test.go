package db_test

import (
	"context"
	"database/sql"
	"errors"
	"feedbacker/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.GormDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.GormDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateModels", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})

		It("should migrate the table successfully", func() {
			Expect(testDB.MigrateModels(&Test{})).To(Succeed())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Create", func() {
		When("the insert succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests" \("username"\) VALUES \(\$1\) RETURNING "id"$`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
				mock.ExpectCommit()
			})

			It("should fill the generated primary key", func() {
				record := Test{Username: "Alice"}
				Expect(testDB.Create(ctx, &record)).To(Succeed())
				Expect(record.ID).To(Equal(uint(7)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a unique constraint is violated", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests".*`).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_tests_username"})
				mock.ExpectRollback()
			})

			It("should return a duplicate key error naming the constraint", func() {
				err := testDB.Create(ctx, &Test{Username: "Alice"})
				Expect(err).To(MatchError(db.ErrDuplicateKey))

				var dupErr *db.DuplicateKeyError
				Expect(errors.As(err, &dupErr)).To(BeTrue())
				Expect(dupErr.Constraint).To(Equal("idx_tests_username"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a foreign key is violated", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`^INSERT INTO "tests".*`).
					WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "fk_users_feedback"})
				mock.ExpectRollback()
			})

			It("should return a foreign key error", func() {
				err := testDB.Create(ctx, &Test{Username: "Ghost"})
				Expect(err).To(MatchError(db.ErrForeignKeyViolation))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllBy", func() {
		When("multiple records are found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id"`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice").
						AddRow(2, "Alice"))
			})

			It("should return all matching records in key order", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "username", "Alice", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].ID).To(Equal(uint(1)))
				Expect(results[1].ID).To(Equal(uint(2)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username.*`).
					WithArgs("Invalid").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "username", "Invalid", &results)
				Expect(err).To(MatchError(ContainSubstring("getting records by")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("UpdateWhere", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`^UPDATE "tests" SET "username"=\$1 WHERE .*id.* = \$2$`).
				WithArgs("Bob", 3).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()
		})

		It("should report the affected rows", func() {
			n, err := testDB.UpdateWhere(ctx, &Test{}, map[string]any{"id": 3}, map[string]any{"username": "Bob"})
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(1)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("DeleteWhere", func() {
		When("rows match", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^DELETE FROM "tests" WHERE .*username.* = \$1$`).
					WithArgs("Alice").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectCommit()
			})

			It("should report the deleted rows", func() {
				n, err := testDB.DeleteWhere(ctx, &Test{}, map[string]any{"username": "Alice"})
				Expect(err).NotTo(HaveOccurred())
				Expect(n).To(Equal(int64(2)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the delete fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^DELETE FROM "tests".*`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should return an error", func() {
				_, err := testDB.DeleteWhere(ctx, &Test{}, map[string]any{"username": "Alice"})
				Expect(err).To(MatchError(ContainSubstring("delete records")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("InTransaction", func() {
		When("the function succeeds", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^DELETE FROM "tests".*`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`^DELETE FROM "tests".*`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should run every statement in one committed transaction", func() {
				err := testDB.InTransaction(ctx, func(ctx context.Context) error {
					if _, err := testDB.DeleteWhere(ctx, &Test{}, map[string]any{"username": "Alice"}); err != nil {
						return err
					}
					_, err := testDB.DeleteWhere(ctx, &Test{}, map[string]any{"id": 1})
					return err
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the function fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^DELETE FROM "tests".*`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectRollback()
			})

			It("should roll back and return the error", func() {
				fnErr := errors.New("fn failed")
				err := testDB.InTransaction(ctx, func(ctx context.Context) error {
					if _, err := testDB.DeleteWhere(ctx, &Test{}, map[string]any{"username": "Alice"}); err != nil {
						return err
					}
					return fnErr
				})
				Expect(err).To(MatchError(fnErr))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
