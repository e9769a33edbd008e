package request_models

type CreatePlanRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type ListPlansQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}
