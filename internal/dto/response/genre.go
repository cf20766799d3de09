package response

import "cinema-manager/internal/data/entity"

type GenreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		ID:   genre.ID,
		Name: genre.Name,
	}
}
