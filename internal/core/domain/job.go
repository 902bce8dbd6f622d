package domain

import "time"

// DefaultJobStatus is assigned to jobs created without an explicit stage.
const DefaultJobStatus = "applied"

// Job is a tracked job application. PipelineID and CustomerID are plain
// references; deleting the referenced record leaves them dangling (no
// cascade is performed anywhere in the system).
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	URL         string    `json:"url,omitempty"`
	Salary      string    `json:"salary,omitempty"`
	Status      string    `json:"status"`
	PipelineID  string    `json:"pipeline_id,omitempty"`
	CustomerID  string    `json:"customer_id,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
