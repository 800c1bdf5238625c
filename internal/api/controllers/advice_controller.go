package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"drivestyle/internal/models/request_models"
	"drivestyle/internal/services"
	"drivestyle/pkg/utils"
)

type AdviceController struct {
	adviceService services.AdviceServiceInterface
}

func NewAdviceController(adviceService services.AdviceServiceInterface) *AdviceController {
	return &AdviceController{adviceService: adviceService}
}

// GenerateAdvice handles POST /api/advice. The payload may be partially
// missing or malformed; normalization turns whatever arrives into a valid
// brief, so a bad body still produces a best-effort shortlist.
func (a *AdviceController) GenerateAdvice(c *gin.Context) {
	// Decode loosely so a mistyped field only defaults itself; binding the
	// struct directly would abort at the first type mismatch and drop every
	// field that decoded before it.
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		raw = nil
	}
	req := request_models.AdviceRequestFromRaw(raw)

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Advice generation failed: %v", r)
			utils.RespondError(c, http.StatusInternalServerError, "Advice generation failed.")
		}
	}()

	brief := a.adviceService.NormalizeBrief(req)
	advice := a.adviceService.GenerateAdvice(brief)

	c.JSON(http.StatusOK, advice)
}
