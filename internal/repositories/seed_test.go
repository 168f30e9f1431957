package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsfi_backend/internal/models"
)

func TestSeed_PopulatesEmptyStore(t *testing.T) {
	store := newTestStore(t)
	jobRepo := NewJobRepository(store)
	applicationRepo := NewApplicationRepository(store)

	require.NoError(t, Seed(store, jobRepo, applicationRepo))

	jobs, err := jobRepo.FindAll()
	require.NoError(t, err)
	require.Len(t, jobs, 6)
	assert.Equal(t, "Senior Solidity Developer", jobs[0].Title)

	applications, err := applicationRepo.FindAll()
	require.NoError(t, err)
	require.Len(t, applications, 4)
	for _, application := range applications {
		assert.Equal(t, models.ApplicationStatusPending, application.Status)
	}
}

func TestSeed_DoesNotOverwriteExistingData(t *testing.T) {
	store := newTestStore(t)
	jobRepo := NewJobRepository(store)
	applicationRepo := NewApplicationRepository(store)

	require.NoError(t, jobRepo.SaveAll([]models.Job{{ID: 42, Title: "Mine"}}))

	require.NoError(t, Seed(store, jobRepo, applicationRepo))

	jobs, err := jobRepo.FindAll()
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Mine", jobs[0].Title)

	// Ключ откликов отсутствовал - он засеивается независимо
	applications, err := applicationRepo.FindAll()
	require.NoError(t, err)
	assert.Len(t, applications, 4)
}
