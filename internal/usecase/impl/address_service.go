package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/eligibility"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultAddressLabel     = "Home"
	defaultMaxUserAddresses = 10
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager    repository.TransactionManager
	addressRepo  repository.AddressRepository
	sessions     repository.SessionStore
	zoneUC       usecase.ZoneUsecase
	maxAddresses int
	defaultLabel string
	logger       *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Sessions    repository.SessionStore
	ZoneUC      usecase.ZoneUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	maxAddresses := defaultMaxUserAddresses
	defaultLabel := defaultAddressLabel
	if params.Config != nil && params.Config.Address != nil {
		if params.Config.Address.MaxPerUser > 0 {
			maxAddresses = params.Config.Address.MaxPerUser
		}
		if params.Config.Address.DefaultLabel != "" {
			defaultLabel = params.Config.Address.DefaultLabel
		}
	}

	return &addressService{
		txManager:    params.TxManager,
		addressRepo:  params.AddressRepo,
		sessions:     params.Sessions,
		zoneUC:       params.ZoneUC,
		maxAddresses: maxAddresses,
		defaultLabel: defaultLabel,
		logger:       params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAddresses returns the saved addresses. When nothing is selected yet the
// default address (or the oldest one) becomes the session's selection.
func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) (*usecase.AddressBook, error) {
	addresses, err := srv.addressRepo.FindAddressesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	zone := srv.zoneUC.GetZone(ctx)
	session, err := srv.sessions.Update(ctx, userID, func(session *entity.DeliverySession) error {
		if session.SelectedAddressID != nil && containsAddress(addresses, *session.SelectedAddressID) {
			return nil
		}
		if len(addresses) == 0 {
			if session.SelectedAddressID != nil {
				applySelection(session, nil, zone)
			}

			return nil
		}

		// Repository order puts the default first.
		applySelection(session, addresses[0], zone)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update delivery session")
	}

	book := &usecase.AddressBook{
		Addresses:         addresses,
		SelectedAddressID: session.SelectedAddressID,
		Verdict:           entity.VerdictUnknown,
	}
	if session.SelectedAddressID != nil {
		if verdict, ok := session.VerdictFor(*session.SelectedAddressID); ok {
			book.Verdict = verdict
			book.DistanceKm = session.DistanceKm
		}
	}

	return book, nil
}

// AddAddress saves a new address and selects it for delivery.
func (srv *addressService) AddAddress(ctx context.Context, userID uuid.UUID, input *usecase.AddAddressInput) (*usecase.AddressResult, error) {
	fullAddress := strings.TrimSpace(input.FullAddress)
	city := strings.TrimSpace(input.City)
	if fullAddress == "" || city == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "full address and city are required")
	}

	location, err := srv.resolveLocation(ctx, userID, input.Location, input.UseCurrentLocation)
	if err != nil {
		return nil, err
	}

	label := strings.TrimSpace(input.Label)
	if label == "" {
		label = srv.defaultLabel
	}

	now := time.Now()
	address := &entity.Address{
		ID:          uuid.New(),
		UserID:      userID,
		Label:       label,
		FullAddress: fullAddress,
		City:        city,
		Area:        strings.TrimSpace(input.Area),
		Building:    strings.TrimSpace(input.Building),
		Floor:       strings.TrimSpace(input.Floor),
		Landmark:    strings.TrimSpace(input.Landmark),
		Notes:       strings.TrimSpace(input.Notes),
		IsDefault:   input.IsDefault,
		Location:    location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = srv.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		addressRepo := txRepo.NewAddressRepository()

		count, err := addressRepo.CountAddressesByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count addresses")
		}
		if count >= int64(srv.maxAddresses) {
			return errors.Wrapf(domainerrors.ErrAddressLimitExceeded, "limit is %d", srv.maxAddresses)
		}

		if count == 0 {
			address.IsDefault = true
		}
		if address.IsDefault && count > 0 {
			if err := addressRepo.ClearDefaultAddress(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear default address")
			}
		}

		if err := addressRepo.CreateAddress(ctx, address); err != nil {
			return mapAddressWriteError(err, "failed to create address")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	zone := srv.zoneUC.GetZone(ctx)
	if _, err := srv.sessions.Update(ctx, userID, func(session *entity.DeliverySession) error {
		applySelection(session, address, zone)

		return nil
	}); err != nil {
		srv.log(ctx).Warn("Failed to select new address", slog.Any("error", err))
	}

	return srv.result(address, zone), nil
}

// UpdateAddress applies a partial update. When the address is the session's
// selection its verdict is recomputed.
func (srv *addressService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *usecase.UpdateAddressInput) (*usecase.AddressResult, error) {
	address, err := findOwnedAddress(ctx, srv.addressRepo, userID, addressID)
	if err != nil {
		return nil, err
	}

	if err := applyAddressUpdates(address, input, srv.defaultLabel); err != nil {
		return nil, err
	}

	switch {
	case input.ClearLocation:
		address.Location = nil
	case input.Location != nil || input.UseCurrentLocation:
		location, err := srv.resolveLocation(ctx, userID, input.Location, input.UseCurrentLocation)
		if err != nil {
			return nil, err
		}
		address.Location = location
	}
	address.UpdatedAt = time.Now()

	if err := srv.addressRepo.UpdateAddress(ctx, address); err != nil {
		return nil, mapAddressWriteError(err, "failed to update address")
	}

	zone := srv.zoneUC.GetZone(ctx)
	if _, err := srv.sessions.Update(ctx, userID, func(session *entity.DeliverySession) error {
		if session.IsSelected(address.ID) {
			applySelection(session, address, zone)
		}

		return nil
	}); err != nil {
		srv.log(ctx).Warn("Failed to refresh delivery verdict", slog.Any("error", err))
	}

	return srv.result(address, zone), nil
}

// DeleteAddress removes an address. If it was the default and others remain,
// the oldest remaining address becomes the default.
func (srv *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	var next *entity.Address

	err := srv.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		addressRepo := txRepo.NewAddressRepository()

		address, err := findOwnedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}

		if err := addressRepo.DeleteAddress(ctx, address.ID); err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "delete address")
			}

			return errors.Wrap(err, "failed to delete address")
		}

		if !address.IsDefault {
			next, err = addressRepo.FindDefaultAddressByUser(ctx, userID)
			if err != nil && !errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(err, "failed to find default address")
			}

			return nil
		}

		remaining, err := addressRepo.FindAddressesByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list remaining addresses")
		}
		if len(remaining) == 0 {
			return nil
		}

		next = remaining[0]
		next.IsDefault = true
		next.UpdatedAt = time.Now()
		if err := addressRepo.UpdateAddress(ctx, next); err != nil {
			return mapAddressWriteError(err, "failed to promote default address")
		}

		srv.log(ctx).Info("Promoted address to default",
			slog.String("deletedAddressID", address.ID.String()),
			slog.String("defaultAddressID", next.ID.String()),
		)

		return nil
	})
	if err != nil {
		return err
	}

	zone := srv.zoneUC.GetZone(ctx)
	if _, err := srv.sessions.Update(ctx, userID, func(session *entity.DeliverySession) error {
		if session.IsSelected(addressID) {
			applySelection(session, next, zone)
		}

		return nil
	}); err != nil {
		srv.log(ctx).Warn("Failed to reset delivery selection", slog.Any("error", err))
	}

	return nil
}

// SetDefaultAddress flags the address as default and clears the flag everywhere else.
func (srv *addressService) SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error) {
	var address *entity.Address

	err := srv.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		addressRepo := txRepo.NewAddressRepository()

		var err error
		address, err = findOwnedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}
		if address.IsDefault {
			return nil
		}

		if err := addressRepo.ClearDefaultAddress(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear default address")
		}

		address.IsDefault = true
		address.UpdatedAt = time.Now()
		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return mapAddressWriteError(err, "failed to set default address")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return address, nil
}

// SelectAddress makes the address the delivery target and caches its verdict.
func (srv *addressService) SelectAddress(ctx context.Context, userID, addressID uuid.UUID) (*usecase.EligibilityStatus, error) {
	address, err := findOwnedAddress(ctx, srv.addressRepo, userID, addressID)
	if err != nil {
		return nil, err
	}

	zone := srv.zoneUC.GetZone(ctx)
	session, err := srv.sessions.Update(ctx, userID, func(session *entity.DeliverySession) error {
		applySelection(session, address, zone)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update delivery session")
	}

	return buildStatus(session, address, zone), nil
}

// resolveLocation validates explicit coordinates or copies the session's last fix.
func (srv *addressService) resolveLocation(ctx context.Context, userID uuid.UUID, explicit *entity.GeoPoint, useCurrent bool) (*entity.GeoPoint, error) {
	if useCurrent {
		session, err := srv.sessions.Get(ctx, userID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load delivery session")
		}
		if session.LastFix == nil {
			return nil, errors.Wrap(domainerrors.ErrNoLocationFix, "use current location")
		}

		return session.LastFix.Point.Ptr(), nil
	}

	if explicit == nil {
		return nil, nil
	}
	if !explicit.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidCoordinates, "address coordinates")
	}

	return explicit.Ptr(), nil
}

func (srv *addressService) result(address *entity.Address, zone entity.DeliveryZone) *usecase.AddressResult {
	eval := eligibility.EvaluateAddress(address, zone)

	return &usecase.AddressResult{
		Address:    address,
		Evaluation: eval,
		Warning:    eligibility.IsOutsideWarning(eval),
	}
}

// applyAddressUpdates applies the text fields of input to address.
func applyAddressUpdates(address *entity.Address, input *usecase.UpdateAddressInput, defaultLabel string) error {
	if input.Label != nil {
		address.Label = strings.TrimSpace(*input.Label)
	}
	if input.FullAddress != nil {
		address.FullAddress = strings.TrimSpace(*input.FullAddress)
	}
	if input.City != nil {
		address.City = strings.TrimSpace(*input.City)
	}
	if input.Area != nil {
		address.Area = strings.TrimSpace(*input.Area)
	}
	if input.Building != nil {
		address.Building = strings.TrimSpace(*input.Building)
	}
	if input.Floor != nil {
		address.Floor = strings.TrimSpace(*input.Floor)
	}
	if input.Landmark != nil {
		address.Landmark = strings.TrimSpace(*input.Landmark)
	}
	if input.Notes != nil {
		address.Notes = strings.TrimSpace(*input.Notes)
	}

	if address.FullAddress == "" || address.City == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "full address and city are required")
	}
	if address.Label == "" {
		address.Label = defaultLabel
	}

	return nil
}

func mapAddressWriteError(err error, message string) error {
	if errors.Is(err, repository.ErrDefaultAddressConflict) {
		return errors.Wrap(domainerrors.ErrDefaultAddressConflict, message)
	}
	if errors.Is(err, repository.ErrAddressNotFound) {
		return errors.Wrap(domainerrors.ErrAddressNotFound, message)
	}

	return errors.Wrap(err, message)
}

func containsAddress(addresses []*entity.Address, id uuid.UUID) bool {
	return slices.ContainsFunc(addresses, func(address *entity.Address) bool {
		return address.ID == id
	})
}
