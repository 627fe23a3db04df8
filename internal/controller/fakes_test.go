package controller

import (
	"strconv"

	"starhaven/internal/domain"
)

// Hand-written fakes per store interface. Each method delegates to the
// optional func field and counts calls; a nil field returns zero values.

type fakeSettingStore struct {
	allFn    func() ([]domain.Setting, error)
	findFn   func(key string) (*domain.Setting, error)
	upsertFn func(s *domain.Setting) error
	deleteFn func(key string) (*domain.Setting, error)

	upsertCalls int
}

func (f *fakeSettingStore) All() ([]domain.Setting, error) {
	if f.allFn != nil {
		return f.allFn()
	}
	return nil, nil
}

func (f *fakeSettingStore) FindByKey(key string) (*domain.Setting, error) {
	if f.findFn != nil {
		return f.findFn(key)
	}
	return nil, nil
}

func (f *fakeSettingStore) Upsert(s *domain.Setting) error {
	f.upsertCalls++
	if f.upsertFn != nil {
		return f.upsertFn(s)
	}
	return nil
}

func (f *fakeSettingStore) Delete(key string) (*domain.Setting, error) {
	if f.deleteFn != nil {
		return f.deleteFn(key)
	}
	return nil, nil
}

type fakeAvailabilityStore struct {
	findFn    func(typ, userID string) ([]domain.Availability, error)
	findOneFn func(typ, userID string) (*domain.Availability, error)
	upsertFn  func(a *domain.Availability) error
	deleteFn  func(typ, userID string) (*domain.Availability, error)

	upsertCalls int
	lastUpsert  *domain.Availability
}

func (f *fakeAvailabilityStore) Find(typ, userID string) ([]domain.Availability, error) {
	if f.findFn != nil {
		return f.findFn(typ, userID)
	}
	return nil, nil
}

func (f *fakeAvailabilityStore) FindOne(typ, userID string) (*domain.Availability, error) {
	if f.findOneFn != nil {
		return f.findOneFn(typ, userID)
	}
	return nil, nil
}

func (f *fakeAvailabilityStore) Upsert(a *domain.Availability) error {
	f.upsertCalls++
	f.lastUpsert = a
	if f.upsertFn != nil {
		return f.upsertFn(a)
	}
	return nil
}

func (f *fakeAvailabilityStore) Delete(typ, userID string) (*domain.Availability, error) {
	if f.deleteFn != nil {
		return f.deleteFn(typ, userID)
	}
	return nil, nil
}

// memAvailabilityStore upserts into a map keyed on (type, userId), the
// same uniqueness the real store enforces.
type memAvailabilityStore struct {
	records map[[2]string]domain.Availability
}

func newMemAvailabilityStore() *memAvailabilityStore {
	return &memAvailabilityStore{records: map[[2]string]domain.Availability{}}
}

func (m *memAvailabilityStore) Find(typ, userID string) ([]domain.Availability, error) {
	var out []domain.Availability
	for k, a := range m.records {
		if k[0] != typ {
			continue
		}
		if userID != "" && k[1] != userID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *memAvailabilityStore) FindOne(typ, userID string) (*domain.Availability, error) {
	if a, ok := m.records[[2]string{typ, userID}]; ok {
		return &a, nil
	}
	return nil, nil
}

// Upsert mirrors the conflict semantics of the real store: an existing
// (type, userId) row keeps its id and createdAt, only dates and role
// are overwritten.
func (m *memAvailabilityStore) Upsert(a *domain.Availability) error {
	k := [2]string{a.Type, a.UserID}
	rec := *a
	if prev, ok := m.records[k]; ok {
		rec.ID = prev.ID
		rec.CreatedAt = prev.CreatedAt
	} else if rec.ID == "" {
		rec.ID = "avail-" + strconv.Itoa(len(m.records)+1)
	}
	m.records[k] = rec
	return nil
}

func (m *memAvailabilityStore) Delete(typ, userID string) (*domain.Availability, error) {
	k := [2]string{typ, userID}
	if a, ok := m.records[k]; ok {
		delete(m.records, k)
		return &a, nil
	}
	return nil, nil
}

type fakeBookingStore struct {
	allFn          func() ([]domain.Booking, error)
	findByIDFn     func(id string) (*domain.Booking, error)
	findByUserFn   func(userID string) ([]domain.Booking, error)
	findByDateFn   func(date string) ([]domain.Booking, error)
	findByStatusFn func(status string) ([]domain.Booking, error)
	createFn       func(b *domain.Booking) error
	updateFn       func(id string, fields map[string]any) (*domain.Booking, error)
	deleteFn       func(id string) (*domain.Booking, error)

	createCalls int
	updateCalls int
	lastUpdate  map[string]any
}

func (f *fakeBookingStore) All() ([]domain.Booking, error) {
	if f.allFn != nil {
		return f.allFn()
	}
	return nil, nil
}

func (f *fakeBookingStore) FindByID(id string) (*domain.Booking, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(id)
	}
	return nil, nil
}

func (f *fakeBookingStore) FindByUserID(userID string) ([]domain.Booking, error) {
	if f.findByUserFn != nil {
		return f.findByUserFn(userID)
	}
	return nil, nil
}

func (f *fakeBookingStore) FindByDate(date string) ([]domain.Booking, error) {
	if f.findByDateFn != nil {
		return f.findByDateFn(date)
	}
	return nil, nil
}

func (f *fakeBookingStore) FindByStatus(status string) ([]domain.Booking, error) {
	if f.findByStatusFn != nil {
		return f.findByStatusFn(status)
	}
	return nil, nil
}

func (f *fakeBookingStore) Create(b *domain.Booking) error {
	f.createCalls++
	if f.createFn != nil {
		return f.createFn(b)
	}
	return nil
}

func (f *fakeBookingStore) Update(id string, fields map[string]any) (*domain.Booking, error) {
	f.updateCalls++
	f.lastUpdate = fields
	if f.updateFn != nil {
		return f.updateFn(id, fields)
	}
	return nil, nil
}

func (f *fakeBookingStore) Delete(id string) (*domain.Booking, error) {
	if f.deleteFn != nil {
		return f.deleteFn(id)
	}
	return nil, nil
}

type fakeUserStore struct {
	allFn         func() ([]domain.User, error)
	findByIDFn    func(id string) (*domain.User, error)
	findByEmailFn func(email string) (*domain.User, error)
	createFn      func(u *domain.User) error
	updateFn      func(id string, fields map[string]any) (*domain.User, error)
	deleteFn      func(id string) (*domain.User, error)

	findByEmailCalls int
	createCalls      int
	lastUpdate       map[string]any
}

func (f *fakeUserStore) All() ([]domain.User, error) {
	if f.allFn != nil {
		return f.allFn()
	}
	return nil, nil
}

func (f *fakeUserStore) FindByID(id string) (*domain.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(id)
	}
	return nil, nil
}

func (f *fakeUserStore) FindByEmail(email string) (*domain.User, error) {
	f.findByEmailCalls++
	if f.findByEmailFn != nil {
		return f.findByEmailFn(email)
	}
	return nil, nil
}

func (f *fakeUserStore) Create(u *domain.User) error {
	f.createCalls++
	if f.createFn != nil {
		return f.createFn(u)
	}
	return nil
}

func (f *fakeUserStore) Update(id string, fields map[string]any) (*domain.User, error) {
	f.lastUpdate = fields
	if f.updateFn != nil {
		return f.updateFn(id, fields)
	}
	return nil, nil
}

func (f *fakeUserStore) Delete(id string) (*domain.User, error) {
	if f.deleteFn != nil {
		return f.deleteFn(id)
	}
	return nil, nil
}

// memUserStore backs the create/authenticate round-trip tests.
type memUserStore struct {
	users map[string]domain.User // by id

	findByEmailCalls int
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]domain.User{}}
}

func (m *memUserStore) All() ([]domain.User, error) {
	out := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memUserStore) FindByID(id string) (*domain.User, error) {
	if u, ok := m.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (m *memUserStore) FindByEmail(email string) (*domain.User, error) {
	m.findByEmailCalls++
	for _, u := range m.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memUserStore) Create(u *domain.User) error {
	if u.ID == "" {
		u.ID = "u" + string(rune('0'+len(m.users)))
	}
	m.users[u.ID] = *u
	return nil
}

func (m *memUserStore) Update(id string, fields map[string]any) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	for k, v := range fields {
		switch k {
		case "name":
			u.Name = v.(string)
		case "email":
			u.Email = v.(string)
		case "password_hash":
			u.PasswordHash = v.(string)
		case "role":
			u.Role = v.(string)
		case "status":
			u.Status = v.(string)
		}
	}
	m.users[id] = u
	return &u, nil
}

func (m *memUserStore) Delete(id string) (*domain.User, error) {
	if u, ok := m.users[id]; ok {
		delete(m.users, id)
		return &u, nil
	}
	return nil, nil
}
