package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/dto/response"
	"cinema-manager/pkg/apperror"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type RoomService interface {
	GetRooms(ctx context.Context) ([]response.RoomResponse, error)
	GetRoomByID(ctx context.Context, roomID int64) (*response.RoomResponse, error)
	CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomID int64, req *request.RoomRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, roomID int64) error
}

type roomService struct {
	repo        repository.RoomRepository
	maxCapacity int
	log         *zap.Logger
}

func NewRoomService(repo repository.RoomRepository, config *utils.Config, log *zap.Logger) RoomService {
	columns := entity.DefaultSeatColumns
	if config != nil && config.Booking.SeatColumns > 0 {
		columns = config.Booking.SeatColumns
	}

	return &roomService{
		repo:        repo,
		maxCapacity: entity.MaxSeatRows * columns,
		log:         log.With(zap.String("service", "room")),
	}
}

// validate checks the request and that every seat of the capacity fits the
// layout.
func (s *roomService) validate(op string, req *request.RoomRequest) error {
	if err := utils.ValidationError(op, req); err != nil {
		return err
	}
	if req.Capacity > s.maxCapacity {
		return apperror.Validation(op, map[string]string{
			"Capacity": fmt.Sprintf("Must be at most %d", s.maxCapacity),
		})
	}
	return nil
}

func (s *roomService) GetRooms(ctx context.Context) ([]response.RoomResponse, error) {
	rooms, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get rooms: %w", err)
	}

	result := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		result[i] = response.RoomToResponse(room)
	}

	return result, nil
}

func (s *roomService) GetRoomByID(ctx context.Context, roomID int64) (*response.RoomResponse, error) {
	room, err := s.repo.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room %d: %w", roomID, err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %d: %w", roomID, repository.ErrRoomNotFound)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error) {
	if err := s.validate("room.create", req); err != nil {
		s.log.Warn("Create room validation failed", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		Capacity: req.Capacity,
	}

	if err := s.repo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.Int64("room_id", room.ID),
		zap.String("name", room.Name),
		zap.Int("capacity", room.Capacity),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID int64, req *request.RoomRequest) (*response.RoomResponse, error) {
	if err := s.validate("room.update", req); err != nil {
		return nil, err
	}

	room, err := s.repo.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room %d: %w", roomID, err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %d: %w", roomID, repository.ErrRoomNotFound)
	}

	room.Name = req.Name
	room.Capacity = req.Capacity
	room.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("update room %d: %w", roomID, err)
	}

	s.log.Info("Room updated", zap.Int64("room_id", roomID))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID int64) error {
	if err := s.repo.Delete(ctx, roomID); err != nil {
		return fmt.Errorf("delete room %d: %w", roomID, err)
	}

	s.log.Info("Room deleted", zap.Int64("room_id", roomID))
	return nil
}
