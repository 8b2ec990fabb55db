package service

import (
	"context"
	"testing"

	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/domain"
	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func validStudent() domain.CreateStudentInput {
	return domain.CreateStudentInput{
		Email:      "alice@college.edu",
		Password:   "s3cret-pass",
		Name:       "Alice",
		RollNumber: "CS2021001",
		Branch:     "CSE",
		Year:       "TE",
		Division:   "A",
	}
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	var gotHash string
	repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ *domain.StudentUser, passwordHash string) {
			gotHash = passwordHash
		}).
		Return(nil)

	user, err := svc.Create(context.Background(), validStudent())

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "s3cret-pass", gotHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(gotHash), []byte("s3cret-pass")))
}

func TestUserService_Create_ShortPassword(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	input := validStudent()
	input.Password = "short"

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Create(context.Background(), validStudent())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_List(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().List(mock.Anything).Return([]*domain.StudentUser{{ID: "u1"}}, nil)

	res, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, res, 1)
}
