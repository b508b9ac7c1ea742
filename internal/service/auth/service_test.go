package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/akilima/akilima/internal/domain/apperr"
	"github.com/akilima/akilima/internal/domain/models"
	"github.com/akilima/akilima/internal/repository/mongodb"
)

type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) Insert(_ context.Context, user models.User) (models.User, error) {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return models.User{}, mongodb.ErrDuplicateEmail
		}
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, apperr.ErrNotFound
}

func (f *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, apperr.ErrNotFound
}

func (f *fakeUserRepo) UpdateCrops(_ context.Context, id primitive.ObjectID, crops []string) error {
	for i, user := range f.users {
		if user.ID == id {
			f.users[i].Crops = crops
			return nil
		}
	}
	return apperr.ErrNotFound
}

const testSecret = "test-secret"

func registerRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Name:     "Nyaboke Moraa",
		Email:    "Nyaboke@Example.com",
		Phone:    "+254700000000",
		Password: "hunter22",
		Crops:    []string{"Tea", "bananas"},
	}
}

func TestRegister(t *testing.T) {
	t.Run("hashes password and normalizes fields", func(t *testing.T) {
		svc := NewService(&fakeUserRepo{}, testSecret, nil)

		user, err := svc.Register(context.Background(), registerRequest())
		require.NoError(t, err)

		assert.Equal(t, "nyaboke@example.com", user.Email)
		assert.Equal(t, models.RoleFarmer, user.Role)
		assert.Equal(t, []string{"tea", "bananas"}, user.Crops)
		assert.NotEqual(t, "hunter22", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		svc := NewService(&fakeUserRepo{}, testSecret, nil)

		_, err := svc.Register(context.Background(), registerRequest())
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), registerRequest())
		assert.ErrorIs(t, err, mongodb.ErrDuplicateEmail)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		svc := NewService(&fakeUserRepo{}, testSecret, nil)

		req := registerRequest()
		req.Role = "county_governor"
		_, err := svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestLogin(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewService(repo, testSecret, nil)

	registered, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	t.Run("valid credentials yield a parseable token", func(t *testing.T) {
		token, user, err := svc.Login(context.Background(), models.LoginRequest{
			Email:    "nyaboke@example.com",
			Password: "hunter22",
		})
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)

		uid, err := svc.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, registered.ID, uid)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), models.LoginRequest{
			Email:    "nyaboke@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email indistinguishable from wrong password", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), models.LoginRequest{
			Email:    "nobody@example.com",
			Password: "hunter22",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestParseToken(t *testing.T) {
	svc := NewService(&fakeUserRepo{}, testSecret, nil)

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := svc.ParseToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		past := NewService(&fakeUserRepo{}, testSecret, nil)
		past.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

		token, err := past.TokenFor(primitive.NewObjectID())
		require.NoError(t, err)

		_, err = svc.ParseToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with another secret rejected", func(t *testing.T) {
		other := NewService(&fakeUserRepo{}, "other-secret", nil)
		token, err := other.TokenFor(primitive.NewObjectID())
		require.NoError(t, err)

		_, err = svc.ParseToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestUpdateCrops(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewService(repo, testSecret, nil)

	registered, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateCrops(context.Background(), registered.ID, []string{"Coffee", "AVOCADOS"})
	require.NoError(t, err)
	assert.Equal(t, []string{"coffee", "avocados"}, updated.Crops)
}
