package handler

type createPipelineRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description,omitempty"`
	Stages      []string `json:"stages,omitempty"`
}

// updatePipelineRequest is a partial update. A nil Stages slice keeps the
// stored stages; an explicit empty array clears them.
type updatePipelineRequest struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Stages      []string `json:"stages,omitempty"`
}
