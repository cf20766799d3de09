package repository

import (
	"context"
	"errors"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id int64) (*entity.Room, error)
	FindAll(ctx context.Context) ([]*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, id int64) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

var roomDeleteConstraints = map[string]error{
	"screenings_room_id_fkey": ErrStillReferenced,
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (name, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	result, err := r.db.Run(ctx, query, room.Name, room.Capacity, room.CreatedAt, room.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("name", room.Name),
		)
		return fmt.Errorf("create room %s: %w", room.Name, err)
	}

	room.ID = result.LastInsertID
	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id int64) (*entity.Room, error) {
	query := `
		SELECT id, name, capacity, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.Int64("room_id", id),
		)
		return nil, fmt.Errorf("find room by ID %d: %w", id, err)
	}

	return &room, nil
}

func (r *roomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	query := `
		SELECT id, name, capacity, created_at, updated_at
		FROM rooms
		ORDER BY name, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find rooms", zap.Error(err))
		return nil, fmt.Errorf("find rooms: %w", err)
	}
	defer rows.Close()

	rooms := make([]*entity.Room, 0)
	for rows.Next() {
		var room entity.Room
		err := rows.Scan(
			&room.ID,
			&room.Name,
			&room.Capacity,
			&room.CreatedAt,
			&room.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rooms: %w", err)
	}

	return rooms, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET name = $2, capacity = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Run(ctx, query, room.ID, room.Name, room.Capacity, room.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.Int64("room_id", room.ID),
		)
		return fmt.Errorf("update room %d: %w", room.ID, err)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("room %d: %w", room.ID, ErrRoomNotFound)
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM rooms WHERE id = $1`

	result, err := r.db.Run(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.Int64("room_id", id),
		)
		return fmt.Errorf("delete room %d: %w", id, translate("room.delete", err, roomDeleteConstraints))
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("room %d: %w", id, ErrRoomNotFound)
	}

	r.log.Info("Room deleted", zap.Int64("room_id", id))
	return nil
}
