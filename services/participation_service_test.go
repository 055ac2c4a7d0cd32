package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AldereteMatias1/Asistencia-Futbol/models"
	"github.com/jonboulle/clockwork"
)

type participationFixture struct {
	service *ParticipationService
	players *fakePlayerRepo
	matches *fakeMatchRepo
	clock   *clockwork.FakeClock
	notify  *recordingNotifier

	match  *models.Match
	player *models.Player
}

func newParticipationFixture() *participationFixture {
	players := newFakePlayerRepo()
	matches := newFakeMatchRepo()
	participations := newFakeParticipationRepo(players)
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 12, 20, 0, 0, 0, time.UTC))
	notify := &recordingNotifier{}

	return &participationFixture{
		service: NewParticipationService(stubTxRunner{}, participations, matches, players, clock, notify),
		players: players,
		matches: matches,
		clock:   clock,
		notify:  notify,
		match:   scheduledMatch(matches),
		player:  players.add("Matías", "Alderete", true),
	}
}

func (f *participationFixture) register(t *testing.T, team models.Team) *models.Participation {
	t.Helper()
	p, err := f.service.Register(context.Background(), f.match.ID, RegisterInput{PlayerID: f.player.ID, Team: team})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return p
}

func TestParticipationServiceRegister(t *testing.T) {
	f := newParticipationFixture()

	p := f.register(t, models.TeamA)

	if p.ID == 0 {
		t.Error("created participation has no ID")
	}
	if p.Status != models.ParticipationPresent {
		t.Errorf("Status = %q, want %q", p.Status, models.ParticipationPresent)
	}
	if !p.JoinedAt.Equal(f.clock.Now().UTC()) {
		t.Errorf("JoinedAt = %v, want %v", p.JoinedAt, f.clock.Now().UTC())
	}
	if len(f.notify.participations) != 1 {
		t.Errorf("notifications = %d, want 1", len(f.notify.participations))
	}
}

func TestParticipationServiceRegisterTwice(t *testing.T) {
	f := newParticipationFixture()
	f.register(t, models.TeamA)

	_, err := f.service.Register(context.Background(), f.match.ID, RegisterInput{PlayerID: f.player.ID, Team: models.TeamB})
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("second Register() error = %v, want %v", err, ErrAlreadyRegistered)
	}
}

// Un jugador dado de baja sigue registrado: re-anotarse es conflicto, el
// camino correcto es la reactivación.
func TestParticipationServiceRegisterAfterWithdraw(t *testing.T) {
	f := newParticipationFixture()
	f.register(t, models.TeamA)

	if _, err := f.service.Withdraw(context.Background(), f.match.ID, WithdrawInput{PlayerID: f.player.ID}); err != nil {
		t.Fatalf("Withdraw() error = %v", err)
	}

	_, err := f.service.Register(context.Background(), f.match.ID, RegisterInput{PlayerID: f.player.ID, Team: models.TeamA})
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("Register() after withdraw error = %v, want %v", err, ErrAlreadyRegistered)
	}
}

func TestParticipationServiceRegisterErrors(t *testing.T) {
	f := newParticipationFixture()

	tests := []struct {
		name    string
		matchID int
		input   RegisterInput
		wantErr error
	}{
		{"missing player id", f.match.ID, RegisterInput{Team: models.TeamA}, ErrValidationFailed},
		{"invalid team", f.match.ID, RegisterInput{PlayerID: f.player.ID, Team: models.Team("MIXTO")}, ErrInvalidTeam},
		{"unknown match", 99, RegisterInput{PlayerID: f.player.ID, Team: models.TeamA}, ErrMatchNotFound},
		{"unknown player", f.match.ID, RegisterInput{PlayerID: 99, Team: models.TeamA}, ErrPlayerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.service.Register(context.Background(), tt.matchID, tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParticipationServiceFinishedMatchGuard(t *testing.T) {
	f := newParticipationFixture()
	f.register(t, models.TeamA)

	stored := f.matches.matches[f.match.ID]
	stored.Status = models.MatchStatusFinished
	stored.Winner = models.WinnerTeamA
	f.matches.matches[f.match.ID] = stored

	ctx := context.Background()
	other := f.players.add("Juan", "Gómez", true)

	if _, err := f.service.Register(ctx, f.match.ID, RegisterInput{PlayerID: other.ID, Team: models.TeamB}); !errors.Is(err, models.ErrMatchFinished) {
		t.Errorf("Register() error = %v, want %v", err, models.ErrMatchFinished)
	}
	if _, err := f.service.Withdraw(ctx, f.match.ID, WithdrawInput{PlayerID: f.player.ID}); !errors.Is(err, models.ErrMatchFinished) {
		t.Errorf("Withdraw() error = %v, want %v", err, models.ErrMatchFinished)
	}
	if _, err := f.service.ChangeTeam(ctx, f.match.ID, ChangeTeamInput{PlayerID: f.player.ID, Team: models.TeamB}); !errors.Is(err, models.ErrMatchFinished) {
		t.Errorf("ChangeTeam() error = %v, want %v", err, models.ErrMatchFinished)
	}
}

func TestParticipationServiceWithdrawAndReactivate(t *testing.T) {
	f := newParticipationFixture()
	f.register(t, models.TeamA)
	ctx := context.Background()

	f.clock.Advance(time.Hour)
	withdrawTime := f.clock.Now().UTC()
	reason := "lesionado"

	p, err := f.service.Withdraw(ctx, f.match.ID, WithdrawInput{PlayerID: f.player.ID, Comment: &reason})
	if err != nil {
		t.Fatalf("Withdraw() error = %v", err)
	}
	if p.Status != models.ParticipationWithdrawn {
		t.Errorf("Status = %q, want %q", p.Status, models.ParticipationWithdrawn)
	}
	if p.WithdrawnAt == nil || !p.WithdrawnAt.Equal(withdrawTime) {
		t.Errorf("WithdrawnAt = %v, want %v", p.WithdrawnAt, withdrawTime)
	}
	if p.Comment == nil || *p.Comment != reason {
		t.Errorf("Comment = %v, want %q", p.Comment, reason)
	}

	team := models.TeamB
	p, err = f.service.Reactivate(ctx, f.match.ID, ReactivateInput{PlayerID: f.player.ID, Team: &team})
	if err != nil {
		t.Fatalf("Reactivate() error = %v", err)
	}
	if p.Status != models.ParticipationPresent || p.WithdrawnAt != nil {
		t.Errorf("reactivated state = %q / %v", p.Status, p.WithdrawnAt)
	}
	if p.Team != models.TeamB {
		t.Errorf("Team = %q, want %q", p.Team, models.TeamB)
	}

	if len(f.notify.participations) != 3 {
		t.Errorf("notifications = %d, want 3", len(f.notify.participations))
	}
}

func TestParticipationServiceMutateNotRegistered(t *testing.T) {
	f := newParticipationFixture()
	ctx := context.Background()

	if _, err := f.service.Withdraw(ctx, f.match.ID, WithdrawInput{PlayerID: f.player.ID}); !errors.Is(err, ErrParticipationNotFound) {
		t.Errorf("Withdraw() error = %v, want %v", err, ErrParticipationNotFound)
	}
	if _, err := f.service.Reactivate(ctx, f.match.ID, ReactivateInput{PlayerID: f.player.ID}); !errors.Is(err, ErrParticipationNotFound) {
		t.Errorf("Reactivate() error = %v, want %v", err, ErrParticipationNotFound)
	}
}

func TestParticipationServiceChangeTeam(t *testing.T) {
	f := newParticipationFixture()
	f.register(t, models.TeamA)

	p, err := f.service.ChangeTeam(context.Background(), f.match.ID, ChangeTeamInput{PlayerID: f.player.ID, Team: models.TeamB})
	if err != nil {
		t.Fatalf("ChangeTeam() error = %v", err)
	}
	if p.Team != models.TeamB {
		t.Errorf("Team = %q, want %q", p.Team, models.TeamB)
	}
	if p.Status != models.ParticipationPresent || p.WithdrawnAt != nil {
		t.Errorf("ChangeTeam touched status: %q / %v", p.Status, p.WithdrawnAt)
	}

	if _, err := f.service.ChangeTeam(context.Background(), f.match.ID, ChangeTeamInput{PlayerID: f.player.ID, Team: models.Team("X")}); !errors.Is(err, ErrInvalidTeam) {
		t.Errorf("invalid team error = %v, want %v", err, ErrInvalidTeam)
	}
}
