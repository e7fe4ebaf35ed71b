package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	dbm "tiffinbox/internal/models/db_models"
	req "tiffinbox/internal/models/request_models"
	"tiffinbox/internal/repositories"
	"tiffinbox/pkg/utils"
)

type AddressService interface {
	Create(ctx context.Context, userID uint, request req.AddressRequest) (*dbm.Address, error)
	Update(ctx context.Context, userID, id uint, request req.AddressRequest) (*dbm.Address, error)
	Delete(ctx context.Context, userID, id uint) error
	List(ctx context.Context, userID uint) ([]dbm.Address, error)
	SetDefault(ctx context.Context, userID, id uint) error
}

type addressService struct {
	addresses repositories.AddressRepository
}

func NewAddressService(addresses repositories.AddressRepository) AddressService {
	return &addressService{addresses: addresses}
}

func (s *addressService) Create(ctx context.Context, userID uint, request req.AddressRequest) (*dbm.Address, error) {
	addr := &dbm.Address{
		UserID:    userID,
		Label:     request.Label,
		Line1:     request.Line1,
		Line2:     request.Line2,
		City:      request.City,
		State:     request.State,
		Pincode:   request.Pincode,
		Phone:     request.Phone,
		IsDefault: request.IsDefault,
	}
	if err := s.addresses.Insert(ctx, addr); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return addr, nil
}

func (s *addressService) Update(ctx context.Context, userID, id uint, request req.AddressRequest) (*dbm.Address, error) {
	addr, err := s.addresses.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if addr == nil {
		return nil, utils.ErrNotFound
	}

	addr.Label = request.Label
	addr.Line1 = request.Line1
	addr.Line2 = request.Line2
	addr.City = request.City
	addr.State = request.State
	addr.Pincode = request.Pincode
	addr.Phone = request.Phone
	if err := s.addresses.Update(ctx, addr); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	// IsDefault moves through SetDefault so the single-default invariant is
	// kept in one place.
	if request.IsDefault && !addr.IsDefault {
		if err := s.SetDefault(ctx, userID, id); err != nil {
			return nil, err
		}
		addr.IsDefault = true
	}
	return addr, nil
}

func (s *addressService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.addresses.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrNotFound
		}
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func (s *addressService) List(ctx context.Context, userID uint) ([]dbm.Address, error) {
	addrs, err := s.addresses.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return addrs, nil
}

func (s *addressService) SetDefault(ctx context.Context, userID, id uint) error {
	if err := s.addresses.SetDefault(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrNotFound
		}
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}
