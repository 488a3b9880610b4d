package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/etraffic/internal/models"
	"github.com/shenikar/etraffic/internal/service"
	"github.com/shenikar/etraffic/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAccountService(t *testing.T) (service.AccountService, *mocks.MockUserRepository, *mocks.MockTokenManager) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	tokens := mocks.NewMockTokenManager(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return service.NewAccountService(users, tokens, logger), users, tokens
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister_HashesPasswordAndNormalizesEmail(t *testing.T) {
	svc, users, _ := newTestAccountService(t)
	ctx := context.Background()

	users.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.Equal(t, "abebe@example.com", u.Email)
			assert.Equal(t, models.UserRoleUser, u.Role)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")))
			u.ID = uuid.New()
			return nil
		})

	user, err := svc.Register(ctx, service.RegisterInput{
		Email:    "  Abebe@Example.com ",
		Username: "abebe",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestRegister_Duplicate(t *testing.T) {
	svc, users, _ := newTestAccountService(t)
	ctx := context.Background()

	users.EXPECT().Create(ctx, gomock.Any()).Return(service.ErrUserAlreadyExists)

	_, err := svc.Register(ctx, service.RegisterInput{Email: "a@b.c", Username: "ab", Password: "password1"})
	assert.ErrorIs(t, err, service.ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().Add(time.Hour)

	tests := []struct {
		name      string
		user      *models.User
		repoErr   error
		password  string
		wantErr   error
		wantToken bool
	}{
		{
			name:      "valid credentials",
			user:      &models.User{ID: userID, PasswordHash: hashPassword(t, "correct")},
			password:  "correct",
			wantToken: true,
		},
		{
			name:     "wrong password",
			user:     &models.User{ID: userID, PasswordHash: hashPassword(t, "correct")},
			password: "wrong",
			wantErr:  service.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			repoErr:  service.ErrUserNotFound,
			password: "correct",
			wantErr:  service.ErrInvalidCredentials,
		},
		{
			name:     "banned user",
			user:     &models.User{ID: userID, PasswordHash: hashPassword(t, "correct"), IsBanned: true},
			password: "correct",
			wantErr:  service.ErrBanned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, tokens := newTestAccountService(t)
			users.EXPECT().GetByEmail(ctx, "user@example.com").Return(tt.user, tt.repoErr)
			if tt.wantToken {
				tokens.EXPECT().GenerateAccessToken(userID).Return("token", expiresAt, nil)
			}

			result, err := svc.Login(ctx, "User@example.com", tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token", result.Token)
			assert.Equal(t, expiresAt, result.ExpiresAt)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	svc, users, tokens := newTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	tokens.EXPECT().ParseUserID("good").Return(userID, nil)
	users.EXPECT().GetByID(ctx, userID).Return(&models.User{ID: userID}, nil)

	user, err := svc.Authenticate(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)

	tokens.EXPECT().ParseUserID("bad").Return(uuid.Nil, errors.New("invalid token"))
	_, err = svc.Authenticate(ctx, "bad")
	assert.Error(t, err)
}
