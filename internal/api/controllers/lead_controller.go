package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"drivestyle/internal/models/request_models"
	"drivestyle/internal/models/response_models"
	"drivestyle/internal/services"
	"drivestyle/pkg/utils"
)

type LeadController struct {
	leadService services.LeadServiceInterface
}

func NewLeadController(leadService services.LeadServiceInterface) *LeadController {
	return &LeadController{leadService: leadService}
}

// SubmitLead handles POST /api/lead.
func (l *LeadController) SubmitLead(c *gin.Context) {
	var req request_models.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	res, err := l.leadService.ForwardLead(c.Request.Context(), req)
	if err != nil {
		utils.RespondRelayError(c, err)
		return
	}

	respondRelay(c, res)
}

// SubmitRouteFinder handles POST /api/route.
func (l *LeadController) SubmitRouteFinder(c *gin.Context) {
	var req request_models.RouteFinderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	res, err := l.leadService.ForwardRouteFinder(c.Request.Context(), req)
	if err != nil {
		utils.RespondRelayError(c, err)
		return
	}

	respondRelay(c, res)
}

// respondRelay maps the relay outcome: a trapped submission gets the bare
// acknowledgement, a forwarded one gets 200 when upstream accepted and 502
// when it rejected, always with both upstream fields attached.
func respondRelay(c *gin.Context, res *response_models.RelayResponse) {
	if res.Honeypot {
		c.JSON(http.StatusOK, response_models.HoneypotAck{OK: true})
		return
	}

	status := http.StatusOK
	if !res.OK {
		status = http.StatusBadGateway
	}
	c.JSON(status, res)
}
