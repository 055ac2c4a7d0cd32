package models

import (
	"errors"
	"time"
)

// MatchStatus representa los estados del partido, según el ENUM en la BD.
type MatchStatus string

const (
	MatchStatusScheduled  MatchStatus = "SCHEDULED"
	MatchStatusInProgress MatchStatus = "IN_PROGRESS"
	MatchStatusFinished   MatchStatus = "FINISHED"
	MatchStatusCancelled  MatchStatus = "CANCELLED"
)

// Winner is the decided outcome of a match. It stays WinnerPending until the
// match is finished.
type Winner string

const (
	WinnerTeamA   Winner = "TEAM_A"
	WinnerTeamB   Winner = "TEAM_B"
	WinnerDraw    Winner = "DRAW"
	WinnerPending Winner = "PENDING"
)

// IsValid reports whether w is an outcome a match can be finished with.
// WinnerPending is deliberately excluded: a finish call must decide the match.
func (w Winner) IsValid() bool {
	switch w {
	case WinnerTeamA, WinnerTeamB, WinnerDraw:
		return true
	}
	return false
}

// IsDecisive reports whether w names a winning team (draws and pending
// outcomes do not count towards the winners ranking).
func (w Winner) IsDecisive() bool {
	return w == WinnerTeamA || w == WinnerTeamB
}

var (
	ErrMatchFinished  = errors.New("a finished match cannot be modified")
	ErrMatchCancelled = errors.New("a cancelled match cannot be started or finished")
)

type Match struct {
	ID        int         `json:"id" db:"id"`
	KickoffAt time.Time   `json:"kickoff_at" db:"kickoff_at"`
	Venue     string      `json:"venue" db:"venue"`
	Status    MatchStatus `json:"status" db:"status"`
	Winner    Winner      `json:"winner" db:"winner"`
	TeamAName string      `json:"team_a_name" db:"team_a_name"`
	TeamBName string      `json:"team_b_name" db:"team_b_name"`

	// Solo se completa en la vista de detalle del partido.
	Participations []ParticipationDetail `json:"participations,omitempty" db:"-"`
}

// NewMatch returns a match in its initial state: scheduled, winner pending.
func NewMatch(kickoffAt time.Time, venue, teamAName, teamBName string) *Match {
	return &Match{
		KickoffAt: kickoffAt,
		Venue:     venue,
		Status:    MatchStatusScheduled,
		Winner:    WinnerPending,
		TeamAName: teamAName,
		TeamBName: teamBName,
	}
}

// EnsureMutable guards every mutation of the match or of its participations.
func (m *Match) EnsureMutable() error {
	if m.Status == MatchStatusFinished {
		return ErrMatchFinished
	}
	return nil
}

// MatchUpdate carries the optional fields of a partial match update. A nil
// field leaves the current value untouched.
type MatchUpdate struct {
	KickoffAt *time.Time `json:"kickoff_at"`
	Venue     *string    `json:"venue"`
	TeamAName *string    `json:"team_a_name"`
	TeamBName *string    `json:"team_b_name"`
}

func (u MatchUpdate) IsEmpty() bool {
	return u.KickoffAt == nil && u.Venue == nil && u.TeamAName == nil && u.TeamBName == nil
}

// ApplyDetails overwrites only the fields present in the update.
func (m *Match) ApplyDetails(u MatchUpdate) error {
	if err := m.EnsureMutable(); err != nil {
		return err
	}
	if u.KickoffAt != nil {
		m.KickoffAt = *u.KickoffAt
	}
	if u.Venue != nil {
		m.Venue = *u.Venue
	}
	if u.TeamAName != nil {
		m.TeamAName = *u.TeamAName
	}
	if u.TeamBName != nil {
		m.TeamBName = *u.TeamBName
	}
	return nil
}

func (m *Match) Start() error {
	if err := m.EnsureMutable(); err != nil {
		return err
	}
	if m.Status == MatchStatusCancelled {
		return ErrMatchCancelled
	}
	m.Status = MatchStatusInProgress
	return nil
}

// Finish moves the match to its terminal FINISHED state and records the
// winner. The caller validates the winner value beforehand.
func (m *Match) Finish(winner Winner) error {
	if err := m.EnsureMutable(); err != nil {
		return err
	}
	if m.Status == MatchStatusCancelled {
		return ErrMatchCancelled
	}
	m.Status = MatchStatusFinished
	m.Winner = winner
	return nil
}

func (m *Match) Cancel() error {
	if err := m.EnsureMutable(); err != nil {
		return err
	}
	m.Status = MatchStatusCancelled
	return nil
}
