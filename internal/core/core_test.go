package core_test

import (
	"context"
	"errors"
	"usersvc/internal/core"
	"usersvc/internal/core/fake"
	"usersvc/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("UserService", func() {
	var (
		fakeRepo   *fake.Repository
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		service *core.UserService

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		service = core.NewUserService(fakeLogger, fakeRepo)

		fakeErr = errors.New("fake error")
	})

	Describe("ListUsers", func() {
		var (
			records []core.UserRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = service.ListUsers(ctx)
		})

		When("users exist", func() {
			BeforeEach(func() {
				fakeRepo.ListUsersReturns([]repository.User{
					{ID: 1, Username: "foo_1", Password: "foo_1", Email: "foo_1"},
					{ID: 2, Username: "foo_2", Password: "foo_2", Email: "foo_2"},
				}, nil)
			})

			It("should map every row to a record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(Equal([]core.UserRecord{
					{ID: 1, Username: "foo_1", Password: "foo_1", Email: "foo_1"},
					{ID: 2, Username: "foo_2", Password: "foo_2", Email: "foo_2"},
				}))
				Expect(fakeRepo.ListUsersCallCount()).To(Equal(1))
			})
		})

		When("the repository returns nil", func() {
			BeforeEach(func() {
				fakeRepo.ListUsersReturns(nil, nil)
			})

			It("should return an empty, non-nil slice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).NotTo(BeNil())
				Expect(records).To(BeEmpty())
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.ListUsersReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUser", func() {
		var (
			record core.UserRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = service.GetUser(ctx, 1)
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{ID: 1, Username: "foo_1", Password: "foo_1", Email: "foo_1"}, nil)
			})

			It("should return the record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record).To(Equal(core.UserRecord{ID: 1, Username: "foo_1", Password: "foo_1", Email: "foo_1"}))
				_, id := fakeRepo.GetUserByIDArgsForCall(0)
				Expect(id).To(Equal(int64(1)))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("the id matches several rows", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{}, repository.ErrMultipleUsers)
			})

			It("should return ambiguous user error", func() {
				Expect(err).To(MatchError(core.ErrAmbiguousUser))
				Expect(err).To(MatchError(repository.ErrMultipleUsers))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByIDReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(core.ErrUserNotFound))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			msg    core.NewUserMessage
			record core.UserRecord
			err    error
		)

		BeforeEach(func() {
			msg = core.NewUserMessage{
				Username: "foo_5",
				Password: "foo_5",
				Email:    "foo_5",
			}
		})

		JustBeforeEach(func() {
			record, err = service.CreateUser(ctx, msg)
		})

		When("the insert succeeds", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{ID: 1, Username: "foo_5", Password: "foo_5", Email: "foo_5"}, nil)
			})

			It("should return the created record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record).To(Equal(core.UserRecord{ID: 1, Username: "foo_5", Password: "foo_5", Email: "foo_5"}))

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, username, password, email := fakeRepo.CreateUserArgsForCall(0)
				Expect(username).To(Equal(msg.Username))
				Expect(password).To(Equal(msg.Password))
				Expect(email).To(Equal(msg.Email))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(record).To(BeZero())
			})
		})
	})

	Describe("DeleteUser", func() {
		var (
			deleted int64
			err     error
		)

		JustBeforeEach(func() {
			deleted, err = service.DeleteUser(ctx, 1)
		})

		When("a row is deleted", func() {
			BeforeEach(func() {
				fakeRepo.DeleteUserReturns(1, nil)
			})

			It("should return the count", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(deleted).To(Equal(int64(1)))
				_, id := fakeRepo.DeleteUserArgsForCall(0)
				Expect(id).To(Equal(int64(1)))
			})
		})

		When("nothing matches", func() {
			BeforeEach(func() {
				fakeRepo.DeleteUserReturns(0, nil)
			})

			It("should return zero without error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(deleted).To(BeZero())
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.DeleteUserReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
