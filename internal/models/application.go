package models

// JobApplication - отклик на вакансию. JSON-теги соответствуют документам
// в ключе "jobsfi_applications".
type JobApplication struct {
	ID            int               `json:"id"`
	JobID         int               `json:"jobId"`
	Applicant     string            `json:"applicant"` // Адрес кошелька соискателя
	ApplicantName string            `json:"applicantName"`
	ResumeIPFS    string            `json:"resumeIpfs"` // Content-addressed указатель на резюме
	Message       string            `json:"message"`
	Status        ApplicationStatus `json:"status"`
	AppliedAt     string            `json:"appliedAt"`
}
