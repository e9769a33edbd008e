package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripagent/internal/models/request_models"
	"tripagent/internal/models/response_models"
	"tripagent/internal/services"
	"tripagent/pkg/utils"
)

const defaultListLimit = 20

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// POST /api/plans
func (p *PlanController) CreatePlanHandler(c *gin.Context) {
	var req request_models.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	state, err := p.planService.CreatePlan(c.Request.Context(), req.Prompt)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp := response_models.NewPlanResponse(state)
	if resp.Success {
		utils.RespondSuccess(c, resp, "Trip booked successfully")
		return
	}
	// a failed plan is still a valid result
	utils.RespondSuccess(c, resp, state.ErrorMessage)
}

// GET /api/plans/:id
func (p *PlanController) GetPlanHandler(c *gin.Context) {
	state, err := p.planService.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewPlanResponse(state), "")
}

// GET /api/plans?limit=N
func (p *PlanController) ListPlansHandler(c *gin.Context) {
	var q request_models.ListPlansQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "limit must be between 1 and 100")
		return
	}
	if q.Limit == 0 {
		q.Limit = defaultListLimit
	}

	plans := p.planService.ListPlans(c.Request.Context(), q.Limit)
	summaries := make([]response_models.PlanSummary, 0, len(plans))
	for _, s := range plans {
		summaries = append(summaries, response_models.NewPlanSummary(s))
	}
	utils.RespondSuccess(c, summaries, "")
}
