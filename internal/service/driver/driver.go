package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlekSi/pointer"
	"golang.org/x/crypto/bcrypt"
	"dispatch/internal/entities"
)

type Driver struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Driver {
	return &Driver{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Driver) CreateDriver(ctx context.Context, name, login, pin string) (int64, error) {
	if name == "" || login == "" || pin == "" {
		return 0, ErrMissingRequiredFields
	}
	if !isValidName(name) {
		return 0, ErrInvalidName
	}
	if !isValidLogin(login) {
		return 0, ErrInvalidLogin
	}
	if !isValidPin(pin) {
		return 0, ErrInvalidPin
	}

	pinHash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash pin: %w", err)
	}

	id, err := s.repository.Create(ctx, entities.DriverModify{
		Name:    pointer.To(name),
		Login:   pointer.To(login),
		PinHash: pointer.To(string(pinHash)),
		Status:  pointer.To(entities.DefaultDriverStatus),
	})
	if err != nil {
		return 0, fmt.Errorf("create driver: %w", err)
	}

	return id, nil
}

// Authenticate проверяет логин и PIN. Неактивные водители не проходят,
// несуществующий логин и неверный PIN неразличимы для вызывающего.
func (s *Driver) Authenticate(ctx context.Context, login, pin string) (*entities.Driver, error) {
	if login == "" || pin == "" {
		return nil, ErrMissingRequiredFields
	}

	found, err := s.repository.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, ErrDriverNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get driver by login: %w", err)
	}

	if !found.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PinHash), []byte(pin)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return found, nil
}

func (s *Driver) UpdateDriverStatus(ctx context.Context, driverID int64, status entities.DriverStatusType) (*entities.Driver, error) {
	if !isValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	updated, err := s.repository.Update(ctx, entities.DriverModify{
		ID:     pointer.To(driverID),
		Status: pointer.To(status),
	})
	if err != nil {
		return nil, fmt.Errorf("update driver status: %w", err)
	}

	return updated, nil
}

func (s *Driver) GetDriver(ctx context.Context, id int64) (*entities.Driver, error) {
	found, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}

	return found, nil
}
