package repositories

import (
	"encoding/json"
	"errors"
	"time"

	"jobsfi_backend/internal/logger"
	"jobsfi_backend/internal/models"
	"jobsfi_backend/internal/storage"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

type JobRepository interface {
	FindAll() ([]models.Job, error)
	FindByID(id int) (*models.Job, error)
	FindByWallet(walletAddress string) ([]models.Job, error)
	// Create присваивает новый id (max+1, или 1 для пустой коллекции)
	// и добавляет вакансию в начало списка.
	Create(job *models.Job) error
	// Save заменяет вакансию с тем же id. ErrJobNotFound, если ее нет.
	Save(job *models.Job) error
	// Delete удаляет вакансию. ErrJobNotFound, если ее нет.
	Delete(id int) error
	// SaveAll перезаписывает коллекцию целиком (seed, тесты).
	SaveAll(jobs []models.Job) error
}

type jobRepository struct {
	store storage.Store
}

func NewJobRepository(store storage.Store) JobRepository {
	return &jobRepository{store: store}
}

func (r *jobRepository) load() ([]models.Job, error) {
	raw, err := r.store.Get(storage.KeyJobs)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []models.Job{}, nil
		}
		return nil, err
	}

	var jobs []models.Job
	if err := json.Unmarshal(raw, &jobs); err != nil {
		// Поврежденный документ не пробрасывается: читатель
		// откатывается к пустой коллекции.
		logger.Warn("malformed jobs document, falling back to empty", "error", err)
		return []models.Job{}, nil
	}
	return jobs, nil
}

func (r *jobRepository) persist(jobs []models.Job) error {
	raw, err := json.Marshal(jobs)
	if err != nil {
		return err
	}
	return r.store.Put(storage.KeyJobs, raw)
}

func (r *jobRepository) FindAll() ([]models.Job, error) {
	return r.load()
}

func (r *jobRepository) FindByID(id int) (*models.Job, error) {
	jobs, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].ID == id {
			job := jobs[i]
			return &job, nil
		}
	}
	return nil, ErrJobNotFound
}

func (r *jobRepository) FindByWallet(walletAddress string) ([]models.Job, error) {
	jobs, err := r.load()
	if err != nil {
		return nil, err
	}
	var result []models.Job
	for _, job := range jobs {
		if job.CreatedByWallet == walletAddress {
			result = append(result, job)
		}
	}
	return result, nil
}

func (r *jobRepository) Create(job *models.Job) error {
	jobs, err := r.load()
	if err != nil {
		return err
	}

	job.ID = nextJobID(jobs)

	// Новая вакансия встает в начало списка (порядок newest-first)
	jobs = append([]models.Job{*job}, jobs...)
	return r.persist(jobs)
}

func (r *jobRepository) Save(job *models.Job) error {
	jobs, err := r.load()
	if err != nil {
		return err
	}
	for i := range jobs {
		if jobs[i].ID == job.ID {
			jobs[i] = *job
			return r.persist(jobs)
		}
	}
	return ErrJobNotFound
}

func (r *jobRepository) Delete(id int) error {
	jobs, err := r.load()
	if err != nil {
		return err
	}
	for i := range jobs {
		if jobs[i].ID == id {
			jobs = append(jobs[:i], jobs[i+1:]...)
			return r.persist(jobs)
		}
	}
	return ErrJobNotFound
}

func (r *jobRepository) SaveAll(jobs []models.Job) error {
	return r.persist(jobs)
}

func nextJobID(jobs []models.Job) int {
	max := 0
	for _, job := range jobs {
		if job.ID > max {
			max = job.ID
		}
	}
	return max + 1
}

// FormatDate форматирует дату в хранимый вид "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}
