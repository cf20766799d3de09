package adaptor

import (
	"net/http"

	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetMovies(r.Context())
	if err != nil {
		writeError(w, h.log, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		writeError(w, h.log, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// CreateMovie handles POST /api/movies (admin only)
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created", movie)
}

// UpdateMovie handles PUT /api/movies/{id} (admin only)
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.MovieRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), movieID, &req)
	if err != nil {
		writeError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "Movie updated", movie)
}

// DeleteMovie handles DELETE /api/movies/{id} (admin only)
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteMovie(r.Context(), movieID); err != nil {
		writeError(w, h.log, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "Movie deleted", nil)
}

// GetGenres handles GET /api/genres
func (h *MovieHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.GetGenres(r.Context())
	if err != nil {
		writeError(w, h.log, err, "get genres")
		return
	}

	utils.ResponseSuccess(w, "success", genres)
}

// CreateGenre handles POST /api/genres (admin only)
func (h *MovieHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	genre, err := h.service.CreateGenre(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err, "create genre")
		return
	}

	utils.ResponseCreated(w, "Genre created", genre)
}
