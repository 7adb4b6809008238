package services

import (
	"context"
	"testing"

	"eggslist_backend/internal/models"
	"eggslist_backend/internal/repositories"
	"eggslist_backend/internal/services/dto"
	"eggslist_backend/internal/session"
	"eggslist_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLocations struct {
	repositories.LocationRepository

	zips map[string]*models.LocationZipCode
}

func (s *stubLocations) FindZipBySlug(slug string) (*models.LocationZipCode, error) {
	zip, ok := s.zips[slug]
	if !ok {
		return nil, repositories.ErrZipCodeNotFound
	}
	return zip, nil
}

type locationRecordingUsers struct {
	stubUsers
	updates map[string]string
}

func (s *locationRecordingUsers) UpdateLocation(userID, zipCodeID string) error {
	if _, ok := s.byID[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	s.updates[userID] = zipCodeID
	return nil
}

func newZip(id, name, slug, city, state string) *models.LocationZipCode {
	zip := &models.LocationZipCode{
		Name: name,
		Slug: slug,
		City: &models.LocationCity{
			Name:  city,
			State: &models.LocationState{Name: state},
		},
	}
	zip.ID = id
	return zip
}

func newLocationFixture(user *models.User) (LocationService, *locationRecordingUsers, session.LocationStore) {
	locations := &stubLocations{zips: map[string]*models.LocationZipCode{
		"97202": newZip("zip-1", "97202", "97202", "Portland", "Oregon"),
	}}
	users := &locationRecordingUsers{updates: map[string]string{}}
	if user != nil {
		users.byID = map[string]*models.User{user.ID: user}
	} else {
		users.byID = map[string]*models.User{}
	}
	sessions := session.NewMemoryLocationStore(session.DefaultTTL)
	return NewLocationService(locations, users, sessions), users, sessions
}

func TestAnonymousViewerLocationRoundTrip(t *testing.T) {
	svc, _, _ := newLocationFixture(nil)
	viewer := dto.ViewerContext{SessionID: "sess-1"}

	// Nothing known yet: nil location, no error.
	location, err := svc.ViewerLocation(context.Background(), viewer)
	require.NoError(t, err)
	assert.Nil(t, location)

	stored, err := svc.SetViewerLocation(context.Background(), viewer, "97202")
	require.NoError(t, err)
	assert.Equal(t, "Portland", stored.City)

	location, err = svc.ViewerLocation(context.Background(), viewer)
	require.NoError(t, err)
	require.NotNil(t, location)
	assert.Equal(t, "97202", location.Zipcode)
	assert.Equal(t, "Oregon", location.State)
}

func TestAnonymousLocationIsPerSession(t *testing.T) {
	svc, _, _ := newLocationFixture(nil)

	_, err := svc.SetViewerLocation(context.Background(), dto.ViewerContext{SessionID: "sess-1"}, "97202")
	require.NoError(t, err)

	location, err := svc.ViewerLocation(context.Background(), dto.ViewerContext{SessionID: "sess-2"})
	require.NoError(t, err)
	assert.Nil(t, location)
}

func TestAuthenticatedLocationWritesUserRecord(t *testing.T) {
	user := newTestUser("u-1", "buyer@example.com")
	svc, users, _ := newLocationFixture(user)
	viewer := dto.ViewerContext{UserID: "u-1"}

	stored, err := svc.SetViewerLocation(context.Background(), viewer, "97202")
	require.NoError(t, err)
	assert.Equal(t, "Portland", stored.City)
	assert.Equal(t, "zip-1", users.updates["u-1"])
}

func TestAuthenticatedViewerLocationReadsUserRecord(t *testing.T) {
	user := newTestUser("u-1", "buyer@example.com")
	user.ZipCode = newZip("zip-1", "97202", "97202", "Portland", "Oregon")
	svc, _, _ := newLocationFixture(user)

	location, err := svc.ViewerLocation(context.Background(), dto.ViewerContext{UserID: "u-1"})
	require.NoError(t, err)
	require.NotNil(t, location)
	assert.Equal(t, "Portland", location.City)
}

func TestSetLocationUnknownZip(t *testing.T) {
	svc, _, _ := newLocationFixture(nil)

	_, err := svc.SetViewerLocation(context.Background(), dto.ViewerContext{SessionID: "sess-1"}, "00000")
	assert.ErrorIs(t, err, apperrors.ErrZipCodeNotFound)
}
