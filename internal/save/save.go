// Package save persists game states. A save is the JSON encoding of a
// model.GameState plus a small preview for listing and a BLAKE2b checksum
// of the payload.
package save

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	"github.com/rahidmondal/life-at-dev-sub000/internal/data"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/calendar"
	"github.com/rahidmondal/life-at-dev-sub000/internal/model"
)

var (
	ErrNotFound        = errors.New("save not found")
	ErrStaleSave       = errors.New("save is older than the stored copy")
	ErrChecksum        = errors.New("save checksum mismatch")
	ErrUnsupported     = errors.New("unsupported save version")
	ErrInvalidSaveData = errors.New("invalid save data")
)

// Preview is the listing summary of a save.
type Preview struct {
	PlayerName string       `json:"playerName"`
	JobTitle   string       `json:"jobTitle"`
	Year       int          `json:"year"`
	Week       int          `json:"week"`
	Age        int          `json:"age"`
	Money      float64      `json:"money"`
	Stress     int          `json:"stress"`
	Status     model.Status `json:"status"`
}

// Save is one stored game.
type Save struct {
	ID        uuid.UUID
	State     model.GameState
	Preview   Preview
	Checksum  string
	UpdatedAt time.Time
}

// Store keeps saves by id. Put rejects a save whose UpdatedAt is older than
// the stored copy with ErrStaleSave; re-putting the identical save is a no-op.
type Store interface {
	Put(ctx context.Context, sv Save) error
	Get(ctx context.Context, id uuid.UUID) (Save, error)
	List(ctx context.Context) ([]Save, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Encode serializes a state.
func Encode(s model.GameState) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding game state: %w", err)
	}
	return b, nil
}

// Decode restores a state written by Encode. Nil collections come back
// empty so a decoded state equals a freshly built one.
func Decode(b []byte) (model.GameState, error) {
	var s model.GameState
	if err := json.Unmarshal(b, &s); err != nil {
		return model.GameState{}, fmt.Errorf("%w: %w", ErrInvalidSaveData, err)
	}
	if s.Meta.Version > model.StateVersion {
		return model.GameState{}, fmt.Errorf("%w: %d", ErrUnsupported, s.Meta.Version)
	}
	if s.Flags.Cooldowns == nil {
		s.Flags.Cooldowns = map[string]int{}
	}
	if s.Flags.PurchasedInvestments == nil {
		s.Flags.PurchasedInvestments = []string{}
	}
	if s.Flags.ActiveBuffs == nil {
		s.Flags.ActiveBuffs = []model.ActiveBuff{}
	}
	if s.Career.JobHistory == nil {
		s.Career.JobHistory = []model.JobHistoryEntry{}
	}
	if s.EventLog == nil {
		s.EventLog = []model.EventLogEntry{}
	}
	return s, nil
}

// Checksum returns the hex BLAKE2b-256 digest of an encoded state.
func Checksum(payload []byte) string {
	sum := blake2b.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// Verify decodes payload after checking it against checksum.
func Verify(payload []byte, checksum string) (model.GameState, error) {
	if Checksum(payload) != checksum {
		return model.GameState{}, ErrChecksum
	}
	return Decode(payload)
}

// NewPreview summarizes s. Unknown job ids show the raw id.
func NewPreview(reg *data.Registry, s model.GameState) Preview {
	title := s.Career.CurrentJobID
	if j, ok := reg.Job(s.Career.CurrentJobID); ok {
		title = j.Title
	}
	d := calendar.DateFromTick(s.Meta.Tick)
	return Preview{
		PlayerName: s.Meta.PlayerName,
		JobTitle:   title,
		Year:       d.Year,
		Week:       d.Week,
		Age:        calendar.Age(s.Meta.StartAge, s.Meta.Tick),
		Money:      s.Resources.Money,
		Stress:     s.Resources.Stress,
		Status:     s.Status,
	}
}

// New builds a save for s stamped at now. A zero id gets a fresh one.
func New(reg *data.Registry, id uuid.UUID, s model.GameState, now time.Time) (Save, error) {
	payload, err := Encode(s)
	if err != nil {
		return Save{}, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return Save{
		ID:        id,
		State:     s.Clone(),
		Preview:   NewPreview(reg, s),
		Checksum:  Checksum(payload),
		UpdatedAt: now,
	}, nil
}

// CheckWrite applies the Put rules of a Store against the stored copy.
// It reports whether the write can be skipped.
func CheckWrite(stored, incoming Save) (skip bool, err error) {
	if incoming.UpdatedAt.Before(stored.UpdatedAt) {
		return false, fmt.Errorf("%w: %s", ErrStaleSave, incoming.ID)
	}
	return incoming.UpdatedAt.Equal(stored.UpdatedAt) && incoming.Checksum == stored.Checksum, nil
}
