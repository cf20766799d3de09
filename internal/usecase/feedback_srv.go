package usecase

import (
	"context"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/dto/response"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type FeedbackService interface {
	GetFeedback(ctx context.Context) ([]response.FeedbackResponse, error)
	GetMovieFeedback(ctx context.Context, movieID int64) ([]response.FeedbackResponse, error)
	GetCustomerFeedback(ctx context.Context, customerID int64) ([]response.FeedbackResponse, error)
	CreateFeedback(ctx context.Context, req *request.FeedbackRequest) (*response.FeedbackResponse, error)
	UpdateFeedback(ctx context.Context, feedbackID int64, req *request.FeedbackUpdateRequest) (*response.FeedbackResponse, error)
	DeleteFeedback(ctx context.Context, feedbackID int64) error
	GetMovieRating(ctx context.Context, movieID int64) (*response.MovieRatingResponse, error)
}

type feedbackService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFeedbackService(repo *repository.Repository, log *zap.Logger) FeedbackService {
	return &feedbackService{
		repo: repo,
		log:  log.With(zap.String("service", "feedback")),
	}
}

func toFeedbackResponses(list []*entity.Feedback) []response.FeedbackResponse {
	result := make([]response.FeedbackResponse, len(list))
	for i, feedback := range list {
		result[i] = response.FeedbackToResponse(feedback)
	}
	return result
}

func (s *feedbackService) GetFeedback(ctx context.Context) ([]response.FeedbackResponse, error) {
	list, err := s.repo.Feedback.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get feedback: %w", err)
	}
	return toFeedbackResponses(list), nil
}

func (s *feedbackService) GetMovieFeedback(ctx context.Context, movieID int64) ([]response.FeedbackResponse, error) {
	list, err := s.repo.Feedback.FindByMovie(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get feedback of movie %d: %w", movieID, err)
	}
	return toFeedbackResponses(list), nil
}

func (s *feedbackService) GetCustomerFeedback(ctx context.Context, customerID int64) ([]response.FeedbackResponse, error) {
	list, err := s.repo.Feedback.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get feedback of customer %d: %w", customerID, err)
	}
	return toFeedbackResponses(list), nil
}

func (s *feedbackService) findFeedback(ctx context.Context, feedbackID int64) (*response.FeedbackResponse, error) {
	feedback, err := s.repo.Feedback.FindByID(ctx, feedbackID)
	if err != nil {
		return nil, fmt.Errorf("get feedback %d: %w", feedbackID, err)
	}
	if feedback == nil {
		return nil, fmt.Errorf("feedback %d: %w", feedbackID, repository.ErrFeedbackNotFound)
	}

	resp := response.FeedbackToResponse(feedback)
	return &resp, nil
}

func (s *feedbackService) CreateFeedback(ctx context.Context, req *request.FeedbackRequest) (*response.FeedbackResponse, error) {
	if err := utils.ValidationError("feedback.create", req); err != nil {
		s.log.Warn("Create feedback validation failed", zap.Error(err))
		return nil, err
	}

	feedback := &entity.Feedback{
		CustomerID: req.CustomerID,
		MovieID:    req.MovieID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := s.repo.Feedback.Create(ctx, feedback); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}

	s.log.Info("Feedback created",
		zap.Int64("feedback_id", feedback.ID),
		zap.Int64("movie_id", feedback.MovieID),
		zap.Int("rating", feedback.Rating),
	)

	return s.findFeedback(ctx, feedback.ID)
}

func (s *feedbackService) UpdateFeedback(ctx context.Context, feedbackID int64, req *request.FeedbackUpdateRequest) (*response.FeedbackResponse, error) {
	if err := utils.ValidationError("feedback.update", req); err != nil {
		return nil, err
	}

	feedback := &entity.Feedback{
		BaseSimple: entity.BaseSimple{ID: feedbackID},
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.repo.Feedback.Update(ctx, feedback); err != nil {
		return nil, fmt.Errorf("update feedback %d: %w", feedbackID, err)
	}

	s.log.Info("Feedback updated", zap.Int64("feedback_id", feedbackID))

	return s.findFeedback(ctx, feedbackID)
}

func (s *feedbackService) DeleteFeedback(ctx context.Context, feedbackID int64) error {
	if err := s.repo.Feedback.Delete(ctx, feedbackID); err != nil {
		return fmt.Errorf("delete feedback %d: %w", feedbackID, err)
	}

	s.log.Info("Feedback deleted", zap.Int64("feedback_id", feedbackID))
	return nil
}

func (s *feedbackService) GetMovieRating(ctx context.Context, movieID int64) (*response.MovieRatingResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie %d: %w", movieID, err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %d: %w", movieID, repository.ErrMovieNotFound)
	}

	stats, err := s.repo.Feedback.GetMovieStats(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get rating of movie %d: %w", movieID, err)
	}

	resp := response.MovieRatingToResponse(stats)
	return &resp, nil
}
