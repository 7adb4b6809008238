package services

import (
	"context"
	"errors"

	"eggslist_backend/internal/logger"
	"eggslist_backend/internal/repositories"
	"eggslist_backend/internal/services/dto"
	"eggslist_backend/internal/session"
	"eggslist_backend/pkg/apperrors"
)

type LocationService interface {
	ListStates(ctx context.Context) ([]dto.StateView, error)
	ListCities(ctx context.Context, stateSlug string) ([]dto.CityView, error)
	ListZipCodes(ctx context.Context, citySlug string) ([]dto.ZipCodeView, error)

	// ViewerLocation resolves the viewer's current location: the user
	// record for signed-in viewers, the session store for anonymous
	// ones. (nil, nil) means no location is known, which is not an
	// error.
	ViewerLocation(ctx context.Context, viewer dto.ViewerContext) (*dto.Location, error)

	// SetViewerLocation records a location choice. For signed-in viewers
	// it is written to the user record; for anonymous viewers it lives
	// only as long as the session.
	SetViewerLocation(ctx context.Context, viewer dto.ViewerContext, zipSlug string) (*dto.Location, error)
}

type LocationServiceImpl struct {
	locations repositories.LocationRepository
	users     repositories.UserRepository
	sessions  session.LocationStore
}

func NewLocationService(
	locations repositories.LocationRepository,
	users repositories.UserRepository,
	sessions session.LocationStore,
) LocationService {
	return &LocationServiceImpl{
		locations: locations,
		users:     users,
		sessions:  sessions,
	}
}

func (s *LocationServiceImpl) ListStates(ctx context.Context) ([]dto.StateView, error) {
	states, err := s.locations.ListStates()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.StateView, 0, len(states))
	for _, state := range states {
		views = append(views, dto.StateView{Name: state.Name, Slug: state.Slug})
	}
	return views, nil
}

func (s *LocationServiceImpl) ListCities(ctx context.Context, stateSlug string) ([]dto.CityView, error) {
	cities, err := s.locations.ListCitiesByState(stateSlug)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.CityView, 0, len(cities))
	for _, city := range cities {
		view := dto.CityView{Name: city.Name, Slug: city.Slug}
		if city.State != nil {
			view.State = city.State.Name
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *LocationServiceImpl) ListZipCodes(ctx context.Context, citySlug string) ([]dto.ZipCodeView, error) {
	zips, err := s.locations.ListZipCodesByCity(citySlug)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.ZipCodeView, 0, len(zips))
	for _, zip := range zips {
		view := dto.ZipCodeView{Name: zip.Name, Slug: zip.Slug}
		if zip.City != nil {
			view.City = zip.City.Name
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *LocationServiceImpl) ViewerLocation(ctx context.Context, viewer dto.ViewerContext) (*dto.Location, error) {
	if viewer.IsAuthenticated() {
		user, err := s.users.FindByID(viewer.UserID)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return nil, nil
			}
			return nil, apperrors.InternalError(err)
		}
		return dto.NewLocation(user.ZipCode), nil
	}

	if viewer.SessionID == "" {
		return nil, nil
	}

	zipSlug, err := s.sessions.GetLocation(ctx, viewer.SessionID)
	if err != nil {
		// The session store is a cache: a read failure degrades to "no
		// location", it never fails the request.
		logger.CtxWarn(ctx, "session location read failed", "error", err)
		return nil, nil
	}
	if zipSlug == "" {
		return nil, nil
	}

	zip, err := s.locations.FindZipBySlug(zipSlug)
	if err != nil {
		if errors.Is(err, repositories.ErrZipCodeNotFound) {
			// A stale slug pointing at removed reference data.
			return nil, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewLocation(zip), nil
}

func (s *LocationServiceImpl) SetViewerLocation(ctx context.Context, viewer dto.ViewerContext, zipSlug string) (*dto.Location, error) {
	zip, err := s.locations.FindZipBySlug(zipSlug)
	if err != nil {
		if errors.Is(err, repositories.ErrZipCodeNotFound) {
			return nil, apperrors.ErrZipCodeNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if viewer.IsAuthenticated() {
		if err := s.users.UpdateLocation(viewer.UserID, zip.ID); err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
		return dto.NewLocation(zip), nil
	}

	if viewer.SessionID == "" {
		return nil, apperrors.NewBadRequestError("No session to store the location on")
	}

	if err := s.sessions.SetLocation(ctx, viewer.SessionID, zip.Slug); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewLocation(zip), nil
}
