package services

import (
	"errors"
	"time"

	"jobsfi_backend/internal/logger"
	"jobsfi_backend/internal/models"
	"jobsfi_backend/internal/repositories"
	"jobsfi_backend/internal/services/dto"
	"jobsfi_backend/pkg/apperrors"
)

type JobService interface {
	GetJobs() ([]models.Job, error)
	GetJob(id int) (*models.Job, error)
	// GetVisibleJobs возвращает вакансии, видимые данному кошельку,
	// с учетом раннего доступа и подписки. Порядок коллекции сохраняется.
	GetVisibleJobs(walletAddress string) ([]models.Job, error)
	AddJob(walletAddress string, req *dto.CreateJobRequest) (int, error)
	UpdateJob(id int, req *dto.UpdateJobRequest) error
	DeleteJob(id int) error
	CloseJob(id int) error
	ApplyToJob(walletAddress string, jobID int, req *dto.ApplyToJobRequest) (*models.JobApplication, error)
	UpdateApplicationStatus(id int, status models.ApplicationStatus) error
	GetJobApplications(jobID int) ([]models.JobApplication, error)
	GetUserApplications(walletAddress string) ([]models.JobApplication, error)
	GetUserJobs(walletAddress string) ([]models.Job, error)
}

type jobService struct {
	jobRepo          repositories.JobRepository
	applicationRepo  repositories.ApplicationRepository
	subscriptionRepo repositories.SubscriptionRepository
	notificationRepo repositories.NotificationRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	notificationRepo repositories.NotificationRepository,
) JobService {
	return &jobService{
		jobRepo:          jobRepo,
		applicationRepo:  applicationRepo,
		subscriptionRepo: subscriptionRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *jobService) GetJobs() ([]models.Job, error) {
	return s.jobRepo.FindAll()
}

func (s *jobService) GetJob(id int) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

func (s *jobService) GetVisibleJobs(walletAddress string) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindAll()
	if err != nil {
		return nil, err
	}

	var subscription *models.Subscription
	if walletAddress != "" {
		subscription, err = s.subscriptionRepo.Find(walletAddress)
		if err != nil && !errors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, err
		}
	}
	isSubscribed := subscription != nil && subscription.IsActive

	now := time.Now()
	visible := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		// Вне раннего доступа вакансия видна всем
		if !job.IsEarlyAccess {
			visible = append(visible, job)
			continue
		}
		// Дата публичного релиза прошла - видна всем
		if job.Released(now) {
			visible = append(visible, job)
			continue
		}
		// Ранний доступ требует активной подписки,
		// покрывающей категорию вакансии (или сентинел "all")
		if isSubscribed && subscription.CoversCategory(job.Category) {
			visible = append(visible, job)
		}
	}
	return visible, nil
}

func (s *jobService) AddJob(walletAddress string, req *dto.CreateJobRequest) (int, error) {
	now := time.Now()
	job := &models.Job{
		Title:           req.Title,
		Company:         req.Company,
		Location:        req.Location,
		Salary:          req.Salary,
		Description:     req.Description,
		Employer:        req.Employer,
		Category:        req.Category,
		IsOpen:          true,
		PostedAt:        repositories.FormatDate(now),
		CreatedByWallet: walletAddress,
	}

	// Вакансия с категорией публикуется в режиме раннего доступа:
	// подписчики видят ее сразу, остальные - через 3 дня
	if req.Category != "" {
		release := now.AddDate(0, 0, models.EarlyAccessDays)
		job.IsEarlyAccess = true
		job.PublicReleaseDate = &release
	}

	if err := s.jobRepo.Create(job); err != nil {
		return 0, err
	}

	if job.IsEarlyAccess {
		s.notifySubscribers(job)
	}

	return job.ID, nil
}

// notifySubscribers рассылает ранний алерт всем кошелькам с активной
// подпиской на категорию вакансии. Best-effort: запись вакансии уже
// состоялась, потерянный алерт не откатывает ее.
func (s *jobService) notifySubscribers(job *models.Job) {
	subscriptions, err := s.subscriptionRepo.FindActiveForCategory(job.Category)
	if err != nil {
		logger.Warn("failed to list subscribers for early access alert",
			"category", job.Category, "error", err)
		return
	}

	logger.Info("sending early access notifications",
		"category", job.Category, "job_id", job.ID, "subscribers", len(subscriptions))

	for _, subscription := range subscriptions {
		if err := s.notificationRepo.CreateEarlyAccessJobNotification(
			subscription.WalletAddress, job.Category, job.Title, job.ID); err != nil {
			logger.Warn("failed to enqueue early access alert",
				"wallet_address", subscription.WalletAddress, "error", err)
		}
	}
}

func (s *jobService) UpdateJob(id int, req *dto.UpdateJobRequest) error {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			// Обновление несуществующей вакансии - молчаливый no-op
			return nil
		}
		return err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Employer != nil {
		job.Employer = *req.Employer
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.IsOpen != nil {
		job.IsOpen = *req.IsOpen
	}

	return s.jobRepo.Save(job)
}

func (s *jobService) DeleteJob(id int) error {
	if err := s.jobRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil
		}
		return err
	}
	// Каскад: отклики удаленной вакансии удаляются вместе с ней
	return s.applicationRepo.DeleteByJobID(id)
}

func (s *jobService) CloseJob(id int) error {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil
		}
		return err
	}
	job.IsOpen = false
	return s.jobRepo.Save(job)
}

func (s *jobService) ApplyToJob(walletAddress string, jobID int, req *dto.ApplyToJobRequest) (*models.JobApplication, error) {
	application := &models.JobApplication{
		JobID:         jobID,
		Applicant:     walletAddress,
		ApplicantName: req.ApplicantName,
		ResumeIPFS:    req.ResumeIPFS,
		Message:       req.Message,
		Status:        models.ApplicationStatusPending,
		AppliedAt:     repositories.FormatDate(time.Now()),
	}

	if err := s.applicationRepo.Create(application); err != nil {
		return nil, err
	}

	// Владелец вакансии получает уведомление об отклике. Запись отклика
	// и запись уведомления - независимые операции без атомарности.
	job, err := s.jobRepo.FindByID(jobID)
	if err == nil && job.CreatedByWallet != "" {
		if err := s.notificationRepo.CreateApplicationNotification(
			job.CreatedByWallet, application.ApplicantName, job.Title,
			job.ID, application.ID); err != nil {
			logger.Warn("failed to enqueue application notification",
				"job_id", job.ID, "error", err)
		}
	}

	return application, nil
}

func (s *jobService) UpdateApplicationStatus(id int, status models.ApplicationStatus) error {
	if status != models.ApplicationStatusAccepted && status != models.ApplicationStatusRejected {
		return apperrors.NewBadRequestError("Status must be either 'accepted' or 'rejected'")
	}

	application, err := s.applicationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			// Неизвестный отклик - молчаливый no-op
			return nil
		}
		return err
	}

	// Сначала уведомление соискателю, затем смена статуса
	job, err := s.jobRepo.FindByID(application.JobID)
	if err == nil {
		if err := s.notificationRepo.CreateApplicationStatusNotification(
			application.Applicant, job.Title, job.ID, application.ID, status); err != nil {
			logger.Warn("failed to enqueue status notification",
				"application_id", application.ID, "error", err)
		}
	}

	application.Status = status
	return s.applicationRepo.Save(application)
}

func (s *jobService) GetJobApplications(jobID int) ([]models.JobApplication, error) {
	return s.applicationRepo.FindByJobID(jobID)
}

func (s *jobService) GetUserApplications(walletAddress string) ([]models.JobApplication, error) {
	return s.applicationRepo.FindByApplicant(walletAddress)
}

func (s *jobService) GetUserJobs(walletAddress string) ([]models.Job, error) {
	return s.jobRepo.FindByWallet(walletAddress)
}
