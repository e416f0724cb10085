package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pathwise/internal/models/request_models"
	"pathwise/internal/models/response_models"
	"pathwise/internal/services"
	"pathwise/pkg/middleware"
	"pathwise/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
	logger      *zap.Logger
}

func NewTripController(tripService services.TripServiceInterface, logger *zap.Logger) *TripController {
	return &TripController{
		tripService: tripService,
		logger:      logger,
	}
}

// GenerateTripHandler godoc
// @Summary Generate a trip plan
// @Description Plans an itinerary and cost estimate and starts (or replaces) the caller's session
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.GenerateTripRequest true "Trip parameters"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/trips/generate [post]
func (tc *TripController) GenerateTripHandler(c *gin.Context) {
	var req request_models.GenerateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "destination and trip_length are required")
		return
	}

	plan, err := tc.tripService.Generate(c.Request.Context(), middleware.SessionID(c), req)
	if err != nil {
		utils.HandleServiceError(c, tc.logger, err)
		return
	}

	utils.RespondSuccess(c, plan, "Trip generated successfully")
}

// RefineTripHandler godoc
// @Summary Refine the current trip
// @Description Rewrites the session's itinerary from free-text feedback
// @Tags Trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.RefineTripRequest true "Feedback"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/trips/refine [post]
func (tc *TripController) RefineTripHandler(c *gin.Context) {
	var req request_models.RefineTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "feedback is required")
		return
	}

	plan, err := tc.tripService.Refine(c.Request.Context(), middleware.SessionID(c), req)
	if err != nil {
		utils.HandleServiceError(c, tc.logger, err)
		return
	}

	utils.RespondSuccess(c, plan, "Trip refined successfully")
}

func (tc *TripController) GetSessionHandler(c *gin.Context) {
	plan, err := tc.tripService.GetSession(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		utils.HandleServiceError(c, tc.logger, err)
		return
	}
	utils.RespondSuccess(c, plan, "Fetched trip session")
}

func (tc *TripController) EndSessionHandler(c *gin.Context) {
	if err := tc.tripService.EndSession(c.Request.Context(), middleware.SessionID(c)); err != nil {
		utils.HandleServiceError(c, tc.logger, err)
		return
	}
	utils.RespondSuccess(c, nil, "Trip session ended")
}

// DetectLocationHandler godoc
// @Summary Detect the caller's city
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/location [get]
func (tc *TripController) DetectLocationHandler(c *gin.Context) {
	city := tc.tripService.DetectLocation(c.Request.Context())
	utils.RespondSuccess(c, response_models.LocationResponse{City: city}, "Location detected")
}
