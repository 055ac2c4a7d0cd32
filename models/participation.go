package models

import "time"

// Team is the side a player is assigned to within a match.
type Team string

const (
	TeamA Team = "TEAM_A"
	TeamB Team = "TEAM_B"
)

func (t Team) IsValid() bool {
	return t == TeamA || t == TeamB
}

// ParticipationStatus representa los estados de participación, según el ENUM en la BD.
type ParticipationStatus string

const (
	ParticipationPresent   ParticipationStatus = "PRESENT"
	ParticipationWithdrawn ParticipationStatus = "WITHDRAWN"
)

// Participation is a player's enrollment record in one match. At most one row
// exists per (match, player) pair; the pair is never deleted, only toggled
// between PRESENT and WITHDRAWN.
type Participation struct {
	ID          int                 `json:"id" db:"id"`
	PlayerID    int                 `json:"player_id" db:"player_id"`
	MatchID     int                 `json:"match_id" db:"match_id"`
	Team        Team                `json:"team" db:"team"`
	Status      ParticipationStatus `json:"status" db:"status"`
	JoinedAt    time.Time           `json:"joined_at" db:"joined_at"`
	WithdrawnAt *time.Time          `json:"withdrawn_at,omitempty" db:"withdrawn_at"`
	Comment     *string             `json:"comment,omitempty" db:"comment"`
}

// NewParticipation enrolls a player as present on the given team.
func NewParticipation(playerID, matchID int, team Team, joinedAt time.Time, comment *string) *Participation {
	return &Participation{
		PlayerID: playerID,
		MatchID:  matchID,
		Team:     team,
		Status:   ParticipationPresent,
		JoinedAt: joinedAt,
		Comment:  comment,
	}
}

// Withdraw marks the player as withdrawn. Invariant: WithdrawnAt is set iff
// the status is WITHDRAWN.
func (p *Participation) Withdraw(at time.Time, comment *string) {
	p.Status = ParticipationWithdrawn
	p.WithdrawnAt = &at
	if comment != nil {
		p.Comment = comment
	}
}

// Reactivate puts a withdrawn player back on the roster, optionally on a
// different team. Calling it on an already-present participation re-applies
// the same state.
func (p *Participation) Reactivate(team *Team, comment *string) {
	p.Status = ParticipationPresent
	p.WithdrawnAt = nil
	if team != nil {
		p.Team = *team
	}
	if comment != nil {
		p.Comment = comment
	}
}

// ChangeTeam reassigns the side without touching the status or timestamps.
func (p *Participation) ChangeTeam(team Team) {
	p.Team = team
}

// ParticipationDetail enriches a participation with the player's display name
// for the match detail view.
type ParticipationDetail struct {
	Participation
	PlayerFirstName string `json:"player_first_name" db:"player_first_name"`
	PlayerLastName  string `json:"player_last_name" db:"player_last_name"`
}
