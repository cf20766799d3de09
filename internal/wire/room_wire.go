package wire

import (
	"cinema-manager/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRoom(r chi.Router, roomHandler *adaptor.RoomHandler, g guards) {
	r.Route("/api/rooms", func(r chi.Router) {
		r.Use(g.auth)

		// Reads for every operator
		r.With(g.staff).Get("/", roomHandler.GetRooms)
		r.With(g.staff).Get("/{id}", roomHandler.GetRoomByID)

		// Mutations for admins
		r.Group(func(r chi.Router) {
			r.Use(g.admin)
			r.Post("/", roomHandler.CreateRoom)
			r.Put("/{id}", roomHandler.UpdateRoom)
			r.Delete("/{id}", roomHandler.DeleteRoom)
		})
	})
}
