package domain

import (
	"time"

	"github.com/google/uuid"

	"resume-wizard/internal/model"
)

type ExportStatus string

const (
	ExportPending   ExportStatus = "pending"
	ExportCompleted ExportStatus = "completed"
	ExportFailed    ExportStatus = "failed"
)

// ExportJob is the command handed from the wizard to the export side. It
// carries its own snapshot, so the wizard may keep changing (or be reset)
// while the job runs.
type ExportJob struct {
	ID         uuid.UUID
	Data       model.ResumeData
	Template   model.TemplateID
	FileName   string
	Status     ExportStatus
	OutputPath string
	Attempts   int
	Err        error
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Failed reports whether the job finished unsuccessfully.
func (j *ExportJob) Failed() bool { return j.Status == ExportFailed }
