package repositories

import (
	"encoding/json"
	"errors"

	"jobsfi_backend/internal/logger"
	"jobsfi_backend/internal/models"
	"jobsfi_backend/internal/storage"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
)

type ApplicationRepository interface {
	FindAll() ([]models.JobApplication, error)
	FindByID(id int) (*models.JobApplication, error)
	FindByJobID(jobID int) ([]models.JobApplication, error)
	FindByApplicant(walletAddress string) ([]models.JobApplication, error)
	// Create присваивает новый id (max+1 в рамках откликов)
	// и добавляет отклик в начало списка.
	Create(application *models.JobApplication) error
	// Save заменяет отклик с тем же id. ErrApplicationNotFound, если его нет.
	Save(application *models.JobApplication) error
	// DeleteByJobID удаляет все отклики на вакансию (каскад при удалении вакансии).
	DeleteByJobID(jobID int) error
	// SaveAll перезаписывает коллекцию целиком (seed, тесты).
	SaveAll(applications []models.JobApplication) error
}

type applicationRepository struct {
	store storage.Store
}

func NewApplicationRepository(store storage.Store) ApplicationRepository {
	return &applicationRepository{store: store}
}

func (r *applicationRepository) load() ([]models.JobApplication, error) {
	raw, err := r.store.Get(storage.KeyApplications)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []models.JobApplication{}, nil
		}
		return nil, err
	}

	var applications []models.JobApplication
	if err := json.Unmarshal(raw, &applications); err != nil {
		logger.Warn("malformed applications document, falling back to empty", "error", err)
		return []models.JobApplication{}, nil
	}
	return applications, nil
}

func (r *applicationRepository) persist(applications []models.JobApplication) error {
	raw, err := json.Marshal(applications)
	if err != nil {
		return err
	}
	return r.store.Put(storage.KeyApplications, raw)
}

func (r *applicationRepository) FindAll() ([]models.JobApplication, error) {
	return r.load()
}

func (r *applicationRepository) FindByID(id int) (*models.JobApplication, error) {
	applications, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range applications {
		if applications[i].ID == id {
			application := applications[i]
			return &application, nil
		}
	}
	return nil, ErrApplicationNotFound
}

func (r *applicationRepository) FindByJobID(jobID int) ([]models.JobApplication, error) {
	applications, err := r.load()
	if err != nil {
		return nil, err
	}
	var result []models.JobApplication
	for _, application := range applications {
		if application.JobID == jobID {
			result = append(result, application)
		}
	}
	return result, nil
}

func (r *applicationRepository) FindByApplicant(walletAddress string) ([]models.JobApplication, error) {
	applications, err := r.load()
	if err != nil {
		return nil, err
	}
	var result []models.JobApplication
	for _, application := range applications {
		if application.Applicant == walletAddress {
			result = append(result, application)
		}
	}
	return result, nil
}

func (r *applicationRepository) Create(application *models.JobApplication) error {
	applications, err := r.load()
	if err != nil {
		return err
	}

	max := 0
	for _, a := range applications {
		if a.ID > max {
			max = a.ID
		}
	}
	application.ID = max + 1

	applications = append([]models.JobApplication{*application}, applications...)
	return r.persist(applications)
}

func (r *applicationRepository) Save(application *models.JobApplication) error {
	applications, err := r.load()
	if err != nil {
		return err
	}
	for i := range applications {
		if applications[i].ID == application.ID {
			applications[i] = *application
			return r.persist(applications)
		}
	}
	return ErrApplicationNotFound
}

func (r *applicationRepository) DeleteByJobID(jobID int) error {
	applications, err := r.load()
	if err != nil {
		return err
	}
	remaining := applications[:0]
	for _, application := range applications {
		if application.JobID != jobID {
			remaining = append(remaining, application)
		}
	}
	return r.persist(remaining)
}

func (r *applicationRepository) SaveAll(applications []models.JobApplication) error {
	return r.persist(applications)
}
