// Package fixture is an in-memory implementation of the repository
// interfaces, seeded with a small demo data set. Tests use it in place of
// MySQL.
package fixture

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"reservoria/internal/domain"
	"reservoria/internal/domain/models"
	"reservoria/internal/repositories"
	"reservoria/internal/utils"
)

// Store holds the data behind a mutex; Create is the only mutation.
type Store struct {
	mu           sync.RWMutex
	facilities   []models.Facility
	rooms        []models.Room
	reservations []models.Reservation
	users        []models.User
}

var (
	_ repositories.ReservationSource = (*Store)(nil)
	_ repositories.FacilitySource    = (*Store)(nil)
	_ repositories.UserStore         = (*Store)(nil)
)

// Credential is a seeded login, exposed so tests can sign in.
type Credential struct {
	Email    string
	Password string
}

var SeedCredentials = []Credential{
	{Email: "admin@reservoria.com", Password: "admin123"},
	{Email: "manager@reservoria.com", Password: "manager123"},
	{Email: "staff@reservoria.com", Password: "staff123"},
	{Email: "test@reservoria.com", Password: "test123"},
}

// New returns a store seeded with demo data.
func New() *Store {
	created := time.Date(2025, time.November, 18, 0, 0, 0, 0, time.UTC)
	s := &Store{
		facilities: []models.Facility{
			{ID: "1", Name: "Test-2", City: "Antalya", Country: "Türkiye", CreatedAt: created, Status: models.FacilityActive},
			{ID: "2", Name: "Test-1", City: "izmir", Country: "Türkiye", CreatedAt: created, Status: models.FacilityActive},
			{ID: "3", Name: "deneme", City: "İstanbul", Country: "Türkiye", CreatedAt: created, Status: models.FacilityActive},
		},
		rooms: []models.Room{
			{ID: "1", FacilityID: "1", FacilityName: "Test-2", Name: "Deluxe Suite", Type: "suite", Capacity: 2, Price: 4600, Status: models.FacilityActive},
			{ID: "2", FacilityID: "1", FacilityName: "Test-2", Name: "Standard Room", Type: "standard", Capacity: 2, Price: 2300, Status: models.FacilityActive},
			{ID: "3", FacilityID: "2", FacilityName: "Test-1", Name: "Economy Room", Type: "economy", Capacity: 1, Price: 800, Status: models.FacilityActive},
			{ID: "4", FacilityID: "2", FacilityName: "Test-1", Name: "Family Room", Type: "family", Capacity: 4, Price: 1600, Status: models.FacilityActive},
		},
		reservations: []models.Reservation{
			seedReservation("1", "1", "Test-2", "1", "Deluxe Suite", "John Doe", "2025-11-03", "2025-11-07", models.ReservationConfirmed, 2, 0, 23000, "Airbnb"),
			seedReservation("2", "1", "Test-2", "2", "Standard Room", "Jane Smith", "2025-11-15", "2025-11-18", models.ReservationConfirmed, 2, 1, 23000, "Booking.com"),
			seedReservation("3", "2", "Test-1", "3", "Economy Room", "Bob Johnson", "2025-11-15", "2025-11-20", models.ReservationPending, 1, 0, 4000, "Booking.com"),
			seedReservation("4", "2", "Test-1", "4", "Family Room", "Alice Williams", "2025-11-28", "2025-12-02", models.ReservationConfirmed, 2, 2, 4000, "Direct"),
			seedReservation("5", "1", "Test-2", "1", "Deluxe Suite", "Mehmet Yılmaz", "2025-11-16", "2025-11-17", models.ReservationCancelled, 2, 0, 9200, "Airbnb"),
		},
	}

	seedUsers := []struct {
		id, name, email, role string
	}{
		{"1", "Admin User", "admin@reservoria.com", models.RoleAdmin},
		{"2", "Manager User", "manager@reservoria.com", models.RoleManager},
		{"3", "Staff User", "staff@reservoria.com", models.RoleStaff},
		{"4", "Test User", "test@reservoria.com", models.RoleAdmin},
	}
	for i, u := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(SeedCredentials[i].Password), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		s.users = append(s.users, models.User{
			ID: u.id, Name: u.name, Email: u.email, Role: u.role, Status: "active",
			PasswordHash: string(hash), CreatedAt: created,
		})
	}
	return s
}

// WithReservations replaces the reservation set. Useful for targeted tests.
func (s *Store) WithReservations(rs ...models.Reservation) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = append([]models.Reservation(nil), rs...)
	return s
}

func seedReservation(id, facilityID, facilityName, roomID, roomName, guest, in, out string, status models.ReservationStatus, adults, children int, total float64, source string) models.Reservation {
	return models.Reservation{
		ID: id, FacilityID: facilityID, FacilityName: facilityName, RoomID: roomID, RoomName: roomName,
		GuestName: guest, CheckIn: models.MustParseDate(in), CheckOut: models.MustParseDate(out),
		Status: status, AdultCount: adults, ChildCount: children, TotalPrice: total, Source: source,
	}
}

func (s *Store) ListReservations(_ context.Context, f repositories.ReservationFilter) ([]models.Reservation, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Reservation{}
	for _, r := range repositories.KeepUsable(s.reservations) {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CheckIn.Before(out[j].CheckIn) })
	return out, nil
}

func (s *Store) GetReservation(_ context.Context, id string) (models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reservations {
		if r.ID == id {
			if err := r.Validate(); err != nil {
				return models.Reservation{}, domain.InternalError{Msg: "stored reservation " + id + " is invalid", Err: err}
			}
			return r, nil
		}
	}
	return models.Reservation{}, domain.NotFoundError{Resource: "reservation", ID: id}
}

func (s *Store) ListFacilities(context.Context) ([]models.Facility, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Facility{}, s.facilities...), nil
}

func (s *Store) GetFacility(_ context.Context, id string) (models.Facility, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.facilities {
		if f.ID == id {
			return f, nil
		}
	}
	return models.Facility{}, domain.NotFoundError{Resource: "facility", ID: id}
}

func (s *Store) ListRooms(_ context.Context, facilityID string) ([]models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Room{}
	for _, r := range s.rooms {
		if facilityID == "" || r.FacilityID == facilityID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) FindByEmail(_ context.Context, email string) (models.User, error) {
	email = utils.NormalizeEmail(email)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if utils.NormalizeEmail(u.Email) == email {
			return u, nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "user"}
}

func (s *Store) FindByID(_ context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "user", ID: id}
}

func (s *Store) Create(_ context.Context, u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.Email = utils.NormalizeEmail(u.Email)
	for _, existing := range s.users {
		if utils.NormalizeEmail(existing.Email) == u.Email {
			return models.User{}, domain.ConflictError{Resource: "user", Msg: "email already registered"}
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	s.users = append(s.users, u)
	return u, nil
}

func (s *Store) List(context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User{}, s.users...), nil
}
