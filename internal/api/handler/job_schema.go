package handler

type createJobRequest struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	URL         string `json:"url,omitempty" validate:"omitempty,url"`
	Salary      string `json:"salary,omitempty"`
	Status      string `json:"status,omitempty"`
	PipelineID  string `json:"pipeline_id,omitempty"`
	CustomerID  string `json:"customer_id,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type updateJobRequest struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	URL         string `json:"url,omitempty" validate:"omitempty,url"`
	Salary      string `json:"salary,omitempty"`
	Status      string `json:"status,omitempty"`
	PipelineID  string `json:"pipeline_id,omitempty"`
	CustomerID  string `json:"customer_id,omitempty"`
	Notes       string `json:"notes,omitempty"`
}
