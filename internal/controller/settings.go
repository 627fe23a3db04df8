package controller

import (
	"starhaven/internal/domain"
)

// Settings brokers configuration key/value pairs and calendar
// availability records. It validates inputs and normalizes store
// failures; it never touches the database directly.
type Settings struct {
	settings     domain.SettingStore
	availability domain.AvailabilityStore
}

func NewSettings(settings domain.SettingStore, availability domain.AvailabilityStore) *Settings {
	return &Settings{settings: settings, availability: availability}
}

func (c *Settings) GetAllSettings() ([]domain.Setting, error) {
	out, err := c.settings.All()
	if err != nil {
		return nil, opFailed("get all settings", err)
	}
	return out, nil
}

// GetSettingByKey returns nil when the key is absent. The key itself is
// not validated here; lookups on a bad key just miss.
func (c *Settings) GetSettingByKey(key string) (*domain.Setting, error) {
	s, err := c.settings.FindByKey(key)
	if err != nil {
		return nil, opFailed("get setting by key", err)
	}
	return s, nil
}

func (c *Settings) CreateOrUpdateSetting(key string, value domain.JSON, description string) (*domain.Setting, error) {
	const op = "create/update setting"
	if key == "" {
		return nil, invalid(op, "Setting key is required")
	}
	s := &domain.Setting{Key: key, Value: value, Description: description}
	if err := c.settings.Upsert(s); err != nil {
		return nil, opFailed(op, err)
	}
	// on conflict the store keeps the original row's timestamps, so the
	// candidate record is not what was persisted; re-read it
	stored, err := c.settings.FindByKey(key)
	if err != nil {
		return nil, opFailed(op, err)
	}
	if stored != nil {
		return stored, nil
	}
	return s, nil
}

func (c *Settings) DeleteSetting(key string) (*domain.Setting, error) {
	s, err := c.settings.Delete(key)
	if err != nil {
		return nil, opFailed("delete setting", err)
	}
	return s, nil
}

// GetAvailability returns records of the given type, narrowed to one
// user when userID is non-empty.
func (c *Settings) GetAvailability(typ, userID string) ([]domain.Availability, error) {
	out, err := c.availability.Find(typ, userID)
	if err != nil {
		return nil, opFailed("get availability", err)
	}
	return out, nil
}

func (c *Settings) GetAllAvailabilitiesByType(typ string) ([]domain.Availability, error) {
	out, err := c.availability.Find(typ, "")
	if err != nil {
		return nil, opFailed("get availabilities by type", err)
	}
	return out, nil
}

func (c *Settings) CreateOrUpdateAvailability(typ, userID string, dates []string, role string) (*domain.Availability, error) {
	const op = "create/update availability"
	if typ == "" || userID == "" {
		return nil, invalid(op, "Type and userId are required")
	}
	if typ != domain.AvailabilityHosting && typ != domain.AvailabilityObs {
		return nil, invalid(op, "Invalid type. Must be hosting or obs")
	}
	a := &domain.Availability{Type: typ, UserID: userID, Dates: dates, Role: role}
	if err := c.availability.Upsert(a); err != nil {
		return nil, opFailed(op, err)
	}
	// on conflict the store keeps the original row's id and createdAt,
	// not the freshly minted ones; re-read the surviving record
	stored, err := c.availability.FindOne(typ, userID)
	if err != nil {
		return nil, opFailed(op, err)
	}
	if stored != nil {
		return stored, nil
	}
	return a, nil
}

func (c *Settings) DeleteAvailability(typ, userID string) (*domain.Availability, error) {
	a, err := c.availability.Delete(typ, userID)
	if err != nil {
		return nil, opFailed("delete availability", err)
	}
	return a, nil
}

// Sugar for the two calendar types. Each delegates to the general
// operation and relabels failures with its own name.

func (c *Settings) GetObsAvailability() ([]domain.Availability, error) {
	out, err := c.GetAllAvailabilitiesByType(domain.AvailabilityObs)
	if err != nil {
		return nil, relabel(err, "get observatory availability")
	}
	return out, nil
}

func (c *Settings) UpdateObsAvailability(userID string, dates []string, role string) (*domain.Availability, error) {
	a, err := c.CreateOrUpdateAvailability(domain.AvailabilityObs, userID, dates, role)
	if err != nil {
		return nil, relabel(err, "update observatory availability")
	}
	return a, nil
}

func (c *Settings) GetHostingAvailability() ([]domain.Availability, error) {
	out, err := c.GetAllAvailabilitiesByType(domain.AvailabilityHosting)
	if err != nil {
		return nil, relabel(err, "get hosting availability")
	}
	return out, nil
}

func (c *Settings) UpdateHostingAvailability(userID string, dates []string, role string) (*domain.Availability, error) {
	a, err := c.CreateOrUpdateAvailability(domain.AvailabilityHosting, userID, dates, role)
	if err != nil {
		return nil, relabel(err, "update hosting availability")
	}
	return a, nil
}
