package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService("test-secret", 1*time.Hour)
}

func TestGenerateToken(t *testing.T) {
	service := newTestService()
	subjectID := uuid.New()

	token, err := service.GenerateToken(subjectID, SubjectWorker)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateToken_RoundTrip(t *testing.T) {
	service := newTestService()

	t.Run("Worker Token", func(t *testing.T) {
		subjectID := uuid.New()
		token, err := service.GenerateToken(subjectID, SubjectWorker)
		require.NoError(t, err)

		claims, err := service.ValidateToken(token, SubjectWorker)
		require.NoError(t, err)
		assert.Equal(t, subjectID, claims.SubjectID)
		assert.Equal(t, SubjectWorker, claims.SubjectType)
	})

	t.Run("Facility Token", func(t *testing.T) {
		subjectID := uuid.New()
		token, err := service.GenerateToken(subjectID, SubjectFacility)
		require.NoError(t, err)

		claims, err := service.ValidateToken(token, SubjectFacility)
		require.NoError(t, err)
		assert.Equal(t, subjectID, claims.SubjectID)
		assert.Equal(t, SubjectFacility, claims.SubjectType)
	})
}

func TestValidateToken_WrongSubjectType(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateToken(uuid.New(), SubjectWorker)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token, SubjectFacility)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "invalid token type")
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service := newTestService()
	other := NewService("other-secret", 1*time.Hour)

	token, err := service.GenerateToken(uuid.New(), SubjectWorker)
	require.NoError(t, err)

	claims, err := other.ValidateToken(token, SubjectWorker)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	service := NewService("test-secret", -1*time.Minute)

	token, err := service.GenerateToken(uuid.New(), SubjectWorker)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token, SubjectWorker)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, service.IsTokenExpired(token))
}

func TestValidateToken_Garbage(t *testing.T) {
	service := newTestService()

	claims, err := service.ValidateToken("not-a-token", SubjectWorker)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.False(t, service.IsTokenExpired("not-a-token"))
}
