package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pathwise/internal/models/db_models"
	"pathwise/internal/models/request_models"
	"pathwise/internal/models/response_models"
	"pathwise/internal/repositories"
	"pathwise/pkg/metrics"
	"pathwise/pkg/utils"
)

// Completion kinds, used as the metrics label.
const (
	completionItinerary = "itinerary"
	completionCost      = "cost"
	completionRefine    = "refine"
)

type TripServiceInterface interface {
	// Generate plans a new trip. sessionID may be uuid.Nil; an existing
	// session is overwritten.
	Generate(ctx context.Context, sessionID uuid.UUID, req request_models.GenerateTripRequest) (*response_models.TripPlanResponse, error)
	Refine(ctx context.Context, sessionID uuid.UUID, req request_models.RefineTripRequest) (*response_models.TripPlanResponse, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*response_models.TripPlanResponse, error)
	EndSession(ctx context.Context, sessionID uuid.UUID) error
	DetectLocation(ctx context.Context) string
}

type TripService struct {
	completion CompletionClient
	location   LocationServiceInterface
	sessions   repositories.TripSessionRepositoryInterface
	tokens     *utils.SessionTokens
	metrics    *metrics.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

func NewTripService(
	completion CompletionClient,
	location LocationServiceInterface,
	sessions repositories.TripSessionRepositoryInterface,
	tokens *utils.SessionTokens,
	m *metrics.Metrics,
	logger *zap.Logger,
) TripServiceInterface {
	return &TripService{
		completion: completion,
		location:   location,
		sessions:   sessions,
		tokens:     tokens,
		metrics:    m,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *TripService) Generate(ctx context.Context, sessionID uuid.UUID, req request_models.GenerateTripRequest) (*response_models.TripPlanResponse, error) {
	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		return nil, fmt.Errorf("%w: destination is required", utils.ErrInvalidInput)
	}

	tripLength := strings.TrimSpace(req.TripLength)
	days, err := utils.ParseTripLength(tripLength)
	if err != nil {
		return nil, err
	}
	departure, err := utils.ParseDate(req.DepartureDate, s.now())
	if err != nil {
		return nil, err
	}

	origin := strings.TrimSpace(req.Origin)
	if origin == "" {
		origin = s.location.ResolveLocation(ctx)
	}

	itinerary, err := s.complete(ctx, completionItinerary, PlannerSystemPrompt,
		GenerationPrompt(destination, tripLength, req.Interest))
	if err != nil {
		return nil, err
	}
	cost, err := s.complete(ctx, completionCost, BudgetSystemPrompt,
		CostPrompt(itinerary, destination, tripLength, req.Interest))
	if err != nil {
		return nil, err
	}

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		session = &db_models.TripSession{}
	}
	session.Destination = destination
	session.TripLength = tripLength
	session.Interest = req.Interest
	session.Origin = origin
	session.DepartureDate = departure
	session.ReturnDate = utils.ReturnDate(departure, days)
	session.Itinerary = itinerary
	session.Cost = cost

	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Error("failed to save trip session", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	s.logger.Info("trip generated",
		zap.String("session_id", session.ID.String()),
		zap.String("destination", destination),
		zap.Int("days", days),
	)
	return s.buildPlan(session, true)
}

func (s *TripService) Refine(ctx context.Context, sessionID uuid.UUID, req request_models.RefineTripRequest) (*response_models.TripPlanResponse, error) {
	feedback := strings.TrimSpace(req.Feedback)
	if feedback == "" {
		return nil, fmt.Errorf("%w: feedback is required", utils.ErrInvalidInput)
	}

	session, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	updated, err := s.complete(ctx, completionRefine, PlannerSystemPrompt,
		RefinementPrompt(session.Itinerary, feedback))
	if err != nil {
		return nil, err
	}

	cost := session.Cost
	if req.ReestimateCost {
		cost, err = s.complete(ctx, completionCost, BudgetSystemPrompt,
			CostPrompt(updated, session.Destination, session.TripLength, session.Interest))
		if err != nil {
			return nil, err
		}
	}

	session.Itinerary = updated
	session.Cost = cost
	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Error("failed to save trip session", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	s.logger.Info("trip refined",
		zap.String("session_id", session.ID.String()),
		zap.Bool("reestimated_cost", req.ReestimateCost),
	)
	return s.buildPlan(session, true)
}

func (s *TripService) GetSession(ctx context.Context, sessionID uuid.UUID) (*response_models.TripPlanResponse, error) {
	session, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.buildPlan(session, false)
}

func (s *TripService) EndSession(ctx context.Context, sessionID uuid.UUID) error {
	if sessionID == uuid.Nil {
		return utils.ErrSessionNotFound
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		s.logger.Error("failed to delete trip session", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) DetectLocation(ctx context.Context) string {
	return s.location.ResolveLocation(ctx)
}

func (s *TripService) complete(ctx context.Context, kind, systemPrompt, userPrompt string) (string, error) {
	started := time.Now()
	text, err := s.completion.Complete(ctx, systemPrompt, userPrompt)
	s.metrics.ObserveCompletion(kind, started, err)
	if err != nil {
		s.logger.Error("completion failed",
			zap.String("kind", kind),
			zap.String("model", s.completion.Model()),
			zap.Error(err),
		)
		if errors.Is(err, utils.ErrCompletionFailed) || errors.Is(err, utils.ErrEmptyCompletion) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", utils.ErrCompletionFailed, err)
	}
	return text, nil
}

func (s *TripService) loadSession(ctx context.Context, sessionID uuid.UUID) (*db_models.TripSession, error) {
	if sessionID == uuid.Nil {
		return nil, nil
	}
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		s.logger.Error("failed to load trip session", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return session, nil
}

func (s *TripService) requireSession(ctx context.Context, sessionID uuid.UUID) (*db_models.TripSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}
	return session, nil
}

// buildPlan derives links and day routes from the stored text. A fresh token
// is issued after every write so the client's expiry follows the session's.
func (s *TripService) buildPlan(session *db_models.TripSession, issueToken bool) (*response_models.TripPlanResponse, error) {
	report := InspectItinerary(session.Itinerary)
	s.metrics.ObserveParsedDays(report.Routes.Len())

	dayRoutes := BuildDayRoutes(report.Routes, session.Destination)
	plan := &response_models.TripPlanResponse{
		Destination:   session.Destination,
		TripLength:    session.TripLength,
		Interest:      session.Interest,
		Origin:        session.Origin,
		DepartureDate: utils.FormatDate(session.DepartureDate),
		ReturnDate:    utils.FormatDate(session.ReturnDate),
		Itinerary:     session.Itinerary,
		Cost:          session.Cost,
		Links: response_models.TripLinks{
			Flights: BuildFlightsLink(session.Origin, session.Destination, session.DepartureDate, session.ReturnDate),
			Route:   BuildRouteLink(session.Origin, session.Destination),
		},
		DayRoutes: make([]response_models.DayRoute, 0, len(dayRoutes)),
		Warnings:  make([]response_models.ParseWarning, 0, len(report.Warnings)),
	}
	for _, r := range dayRoutes {
		plan.DayRoutes = append(plan.DayRoutes, response_models.DayRoute{Day: r.Day, Places: r.Places, MapsURL: r.MapsURL})
	}
	for _, w := range report.Warnings {
		plan.Warnings = append(plan.Warnings, response_models.ParseWarning{Kind: w.Kind, Line: w.Line, Text: w.Text})
	}

	if issueToken {
		token, err := s.tokens.CreateToken(session.ID)
		if err != nil {
			s.logger.Error("failed to sign session token", zap.Error(err))
			return nil, err
		}
		plan.SessionToken = token
	}
	return plan, nil
}
