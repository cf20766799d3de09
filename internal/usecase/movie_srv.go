package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/dto/response"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID int64) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID int64, req *request.MovieRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID int64) error

	GetGenres(ctx context.Context) ([]response.GenreResponse, error)
	CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}

	result := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		result[i] = response.MovieToResponse(movie)
	}

	return result, nil
}

func (s *movieService) findMovie(ctx context.Context, movieID int64) (*entity.Movie, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie %d: %w", movieID, err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %d: %w", movieID, repository.ErrMovieNotFound)
	}
	return movie, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID int64) (*response.MovieResponse, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if err := utils.ValidationError("movie.create", req); err != nil {
		s.log.Warn("Create movie validation failed", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:           req.Title,
		GenreID:         req.GenreID,
		DurationMinutes: req.DurationMinutes,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	// Reload for the joined genre name
	created, err := s.findMovie(ctx, movie.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", created.ID),
		zap.String("title", created.Title),
	)

	resp := response.MovieToResponse(created)
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID int64, req *request.MovieRequest) (*response.MovieResponse, error) {
	if err := utils.ValidationError("movie.update", req); err != nil {
		return nil, err
	}

	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	movie.Title = req.Title
	movie.GenreID = req.GenreID
	movie.DurationMinutes = req.DurationMinutes
	movie.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		return nil, fmt.Errorf("update movie %d: %w", movieID, err)
	}

	updated, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	s.log.Info("Movie updated", zap.Int64("movie_id", movieID))

	resp := response.MovieToResponse(updated)
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID int64) error {
	if err := s.repo.Movie.Delete(ctx, movieID); err != nil {
		return fmt.Errorf("delete movie %d: %w", movieID, err)
	}

	s.log.Info("Movie deleted", zap.Int64("movie_id", movieID))
	return nil
}

func (s *movieService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.Genre.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}

	result := make([]response.GenreResponse, len(genres))
	for i, genre := range genres {
		result[i] = response.GenreToResponse(genre)
	}

	return result, nil
}

func (s *movieService) CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	if err := utils.ValidationError("genre.create", req); err != nil {
		return nil, err
	}

	genre := &entity.Genre{Name: req.Name}
	if err := s.repo.Genre.Create(ctx, genre); err != nil {
		return nil, fmt.Errorf("create genre: %w", err)
	}

	s.log.Info("Genre created", zap.Int64("genre_id", genre.ID), zap.String("name", genre.Name))

	resp := response.GenreToResponse(genre)
	return &resp, nil
}
