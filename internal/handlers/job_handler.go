package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobsfi_backend/internal/middleware"
	"jobsfi_backend/internal/models"
	"jobsfi_backend/internal/services"
	"jobsfi_backend/internal/services/dto"
	"jobsfi_backend/pkg/apperrors"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	{
		// Листинг фильтруется по видимости кошелька, поэтому кошелек опционален
		jobs.GET("", h.GetJobs)
		jobs.GET("/:jobId", h.GetJob)

		protected := jobs.Group("")
		protected.Use(middleware.RequireWallet())
		{
			protected.POST("", h.CreateJob)
			protected.PUT("/:jobId", h.UpdateJob)
			protected.DELETE("/:jobId", h.DeleteJob)
			protected.PUT("/:jobId/close", h.CloseJob)
			protected.GET("/:jobId/applications", h.GetJobApplications)
			protected.POST("/:jobId/apply", h.ApplyToJob)
		}
	}

	my := r.Group("/my")
	my.Use(middleware.RequireWallet())
	{
		my.GET("/jobs", h.GetMyJobs)
		my.GET("/applications", h.GetMyApplications)
	}

	applications := r.Group("/applications")
	applications.Use(middleware.RequireWallet())
	{
		applications.PUT("/:applicationId/status", h.UpdateApplicationStatus)
	}
}

// GetJobs возвращает вакансии, видимые текущему кошельку.
func (h *JobHandler) GetJobs(c *gin.Context) {
	jobs, err := h.jobService.GetVisibleJobs(h.GetWallet(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.JobListResponse{
		Jobs:  jobs,
		Total: len(jobs),
	})
}

func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, err := ParseParamInt(c, "jobId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	job, err := h.jobService.GetJob(jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	jobID, err := h.jobService.AddJob(wallet, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": jobID})
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	jobID, err := ParseParamInt(c, "jobId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.jobService.UpdateJob(jobID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job updated successfully"})
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	jobID, err := ParseParamInt(c, "jobId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.jobService.DeleteJob(jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

func (h *JobHandler) CloseJob(c *gin.Context) {
	jobID, err := ParseParamInt(c, "jobId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.jobService.CloseJob(jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job closed successfully"})
}

func (h *JobHandler) ApplyToJob(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	jobID, err := ParseParamInt(c, "jobId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.ApplyToJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.jobService.ApplyToJob(wallet, jobID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (h *JobHandler) UpdateApplicationStatus(c *gin.Context) {
	applicationID, err := ParseParamInt(c, "applicationId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.jobService.UpdateApplicationStatus(applicationID, models.ApplicationStatus(req.Status)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application status updated successfully"})
}

func (h *JobHandler) GetJobApplications(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	jobID, err := ParseParamInt(c, "jobId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Список откликов доступен только владельцу вакансии
	job, err := h.jobService.GetJob(jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if job.CreatedByWallet != "" && job.CreatedByWallet != wallet {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Only the job creator can view applications"))
		return
	}

	applications, err := h.jobService.GetJobApplications(jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ApplicationListResponse{
		Applications: applications,
		Total:        len(applications),
	})
}

func (h *JobHandler) GetMyJobs(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.GetUserJobs(wallet)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.JobListResponse{
		Jobs:  jobs,
		Total: len(jobs),
	})
}

func (h *JobHandler) GetMyApplications(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	applications, err := h.jobService.GetUserApplications(wallet)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ApplicationListResponse{
		Applications: applications,
		Total:        len(applications),
	})
}
