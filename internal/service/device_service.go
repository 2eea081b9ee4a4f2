package service

import (
	"time"

	"wayfare-sync-server/internal/domain"
	"wayfare-sync-server/internal/repository"

	"github.com/google/uuid"
)

type DeviceService struct {
	repo repository.DeviceRepository
}

func NewDeviceService(repo repository.DeviceRepository) *DeviceService {
	return &DeviceService{
		repo: repo,
	}
}

func (s *DeviceService) Register(userID string, req *domain.RegisterDeviceRequest) (*domain.DeviceResponse, error) {
	device := &domain.Device{
		ID:         uuid.New().String(),
		UserID:     userID,
		Name:       req.Name,
		Platform:   req.Platform,
		AppVersion: req.AppVersion,
		CreatedAt:  time.Now(),
		IsRevoked:  false,
	}

	if err := s.repo.Create(device); err != nil {
		return nil, err
	}

	return toDeviceResponse(device), nil
}

func (s *DeviceService) List(userID string) ([]*domain.DeviceResponse, error) {
	devices, err := s.repo.List(userID)
	if err != nil {
		return nil, err
	}

	var responses []*domain.DeviceResponse
	for _, d := range devices {
		responses = append(responses, toDeviceResponse(d))
	}

	return responses, nil
}

func (s *DeviceService) Revoke(userID, deviceID string) error {
	// Verify device belongs to user
	device, err := s.repo.FindByID(deviceID)
	if err != nil {
		return err
	}

	if device.UserID != userID {
		return ErrUnauthorized
	}

	return s.repo.Revoke(deviceID)
}

func toDeviceResponse(d *domain.Device) *domain.DeviceResponse {
	return &domain.DeviceResponse{
		ID:           d.ID,
		Name:         d.Name,
		Platform:     d.Platform,
		LastBackupAt: d.LastBackupAt,
		IsRevoked:    d.IsRevoked,
	}
}
