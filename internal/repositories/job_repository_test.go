package repositories

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsfi_backend/internal/models"
	"jobsfi_backend/internal/storage"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return store
}

func TestJobRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewJobRepository(newTestStore(t))

	// 1. Пустая коллекция: первый id = 1
	first := &models.Job{Title: "Solidity Developer", IsOpen: true}
	require.NoError(t, repo.Create(first))
	assert.Equal(t, 1, first.ID)

	// 2. Следующий id = max+1
	second := &models.Job{Title: "UI Designer", IsOpen: true}
	require.NoError(t, repo.Create(second))
	assert.Equal(t, 2, second.ID)
}

func TestJobRepository_CreateUsesMaxPlusOne(t *testing.T) {
	repo := NewJobRepository(newTestStore(t))

	// id назначается от максимума, а не от длины коллекции
	require.NoError(t, repo.SaveAll([]models.Job{
		{ID: 3, Title: "A"},
		{ID: 7, Title: "B"},
		{ID: 2, Title: "C"},
	}))

	job := &models.Job{Title: "D"}
	require.NoError(t, repo.Create(job))
	assert.Equal(t, 8, job.ID)
}

func TestJobRepository_CreatePrepends(t *testing.T) {
	repo := NewJobRepository(newTestStore(t))

	require.NoError(t, repo.Create(&models.Job{Title: "Old"}))
	require.NoError(t, repo.Create(&models.Job{Title: "New"}))

	jobs, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	// Порядок newest-first
	assert.Equal(t, "New", jobs[0].Title)
	assert.Equal(t, "Old", jobs[1].Title)
}

func TestJobRepository_RoundTrip(t *testing.T) {
	repo := NewJobRepository(newTestStore(t))

	job := &models.Job{
		Title:           "Smart Contract Developer",
		Company:         "ApeDAO",
		Location:        "Remote",
		Salary:          "5000-8000 APE",
		Description:     "Build and audit staking contracts",
		Employer:        "ApeDAO Core",
		Category:        "Development",
		IsOpen:          true,
		PostedAt:        "2026-08-30",
		CreatedByWallet: "0xCREATOR",
	}
	require.NoError(t, repo.Create(job))

	got, err := repo.FindByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, job, got)
}

func TestJobRepository_SaveReplacesByID(t *testing.T) {
	repo := NewJobRepository(newTestStore(t))

	job := &models.Job{Title: "Before", IsOpen: true}
	require.NoError(t, repo.Create(job))

	job.Title = "After"
	job.IsOpen = false
	require.NoError(t, repo.Save(job))

	got, err := repo.FindByID(job.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Title)
	assert.False(t, got.IsOpen)

	// Сохранение несуществующего id
	err = repo.Save(&models.Job{ID: 99, Title: "Ghost"})
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestJobRepository_Delete(t *testing.T) {
	repo := NewJobRepository(newTestStore(t))

	job := &models.Job{Title: "Doomed"}
	require.NoError(t, repo.Create(job))
	require.NoError(t, repo.Delete(job.ID))

	_, err := repo.FindByID(job.ID)
	assert.ErrorIs(t, err, ErrJobNotFound)

	assert.ErrorIs(t, repo.Delete(job.ID), ErrJobNotFound)
}

func TestJobRepository_FindByWallet(t *testing.T) {
	repo := NewJobRepository(newTestStore(t))

	require.NoError(t, repo.Create(&models.Job{Title: "Mine", CreatedByWallet: "0xME"}))
	require.NoError(t, repo.Create(&models.Job{Title: "Theirs", CreatedByWallet: "0xOTHER"}))
	require.NoError(t, repo.Create(&models.Job{Title: "Mine too", CreatedByWallet: "0xME"}))

	jobs, err := repo.FindByWallet("0xME")
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	for _, job := range jobs {
		assert.Equal(t, "0xME", job.CreatedByWallet)
	}
}

func TestJobRepository_MalformedDocumentFallsBackToEmpty(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Put(storage.KeyJobs, []byte("{not json")))

	repo := NewJobRepository(store)
	jobs, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, jobs)

	// Поврежденный документ считается пустым, id начинаются заново
	job := &models.Job{Title: "Fresh"}
	require.NoError(t, repo.Create(job))
	assert.Equal(t, 1, job.ID)
}
