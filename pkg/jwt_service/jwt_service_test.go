package jwtservice_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/limbo/habitual/internal/api"
	errorvalues "github.com/limbo/habitual/internal/error_values"
	"github.com/limbo/habitual/pkg/entity"
	jwtservice "github.com/limbo/habitual/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	s := jwtservice.New("secret", time.Minute)
	user := &entity.User{ID: uuid.New(), Name: "test_user"}

	token, err := s.GenerateToken(user)
	require.NoError(t, err)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Name, claims.Username)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 2*time.Second)
}

func TestParseInvalidTokens(t *testing.T) {
	s := jwtservice.New("secret", time.Minute)
	user := &entity.User{ID: uuid.New(), Name: "test_user"}
	foreign, err := jwtservice.New("another_secret", time.Minute).GenerateToken(user)
	require.NoError(t, err)

	expiredClaims := &api.JWTClaims{
		UserID: user.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "habitual",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("secret"))
	require.NoError(t, err)

	testCases := []struct {
		Desc  string
		Token string
	}{
		{Desc: "garbage", Token: "not.a.token"},
		{Desc: "foreign signature", Token: foreign},
		{Desc: "expired", Token: expired},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := s.ParseToken(tc.Token)
			assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
		})
	}
}
