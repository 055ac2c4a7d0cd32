package services

import (
	"context"

	"github.com/AldereteMatias1/Asistencia-Futbol/db"
	"github.com/AldereteMatias1/Asistencia-Futbol/models"
	"github.com/AldereteMatias1/Asistencia-Futbol/repositories"
)

// stubTxRunner runs the unit of work directly, without a database. The fake
// repositories below ignore the executor, so nil is fine.
type stubTxRunner struct{}

func (stubTxRunner) RunInTx(_ context.Context, fn func(exec db.Executor) error) error {
	return fn(nil)
}

type fakePlayerRepo struct {
	players map[int]models.Player
	nextID  int
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: make(map[int]models.Player), nextID: 1}
}

func (r *fakePlayerRepo) add(firstName, lastName string, active bool) *models.Player {
	player := models.Player{ID: r.nextID, FirstName: firstName, LastName: lastName, Active: active}
	r.players[player.ID] = player
	r.nextID++
	return &player
}

func (r *fakePlayerRepo) Create(_ context.Context, player *models.Player) error {
	player.ID = r.nextID
	r.nextID++
	r.players[player.ID] = *player
	return nil
}

func (r *fakePlayerRepo) List(_ context.Context) ([]*models.Player, error) {
	players := make([]*models.Player, 0, len(r.players))
	for id := 1; id < r.nextID; id++ {
		if player, ok := r.players[id]; ok {
			copied := player
			players = append(players, &copied)
		}
	}
	return players, nil
}

func (r *fakePlayerRepo) GetByID(_ context.Context, _ repositories.SQLExecutor, id int) (*models.Player, error) {
	player, ok := r.players[id]
	if !ok {
		return nil, repositories.ErrPlayerNotFound
	}
	copied := player
	return &copied, nil
}

func (r *fakePlayerRepo) Update(_ context.Context, player *models.Player) error {
	if _, ok := r.players[player.ID]; !ok {
		return repositories.ErrPlayerNotFound
	}
	r.players[player.ID] = *player
	return nil
}

type fakeMatchRepo struct {
	matches map[int]models.Match
	nextID  int
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{matches: make(map[int]models.Match), nextID: 1}
}

func (r *fakeMatchRepo) add(match models.Match) *models.Match {
	match.ID = r.nextID
	r.matches[match.ID] = match
	r.nextID++
	return &match
}

func (r *fakeMatchRepo) Create(_ context.Context, match *models.Match) error {
	match.ID = r.nextID
	r.nextID++
	r.matches[match.ID] = *match
	return nil
}

func (r *fakeMatchRepo) List(_ context.Context) ([]*models.Match, error) {
	matches := make([]*models.Match, 0, len(r.matches))
	for id := r.nextID - 1; id >= 1; id-- {
		if match, ok := r.matches[id]; ok {
			copied := match
			matches = append(matches, &copied)
		}
	}
	return matches, nil
}

func (r *fakeMatchRepo) GetByID(_ context.Context, _ repositories.SQLExecutor, id int) (*models.Match, error) {
	match, ok := r.matches[id]
	if !ok {
		return nil, repositories.ErrMatchNotFound
	}
	copied := match
	return &copied, nil
}

func (r *fakeMatchRepo) Update(_ context.Context, _ repositories.SQLExecutor, match *models.Match) error {
	if _, ok := r.matches[match.ID]; !ok {
		return repositories.ErrMatchNotFound
	}
	r.matches[match.ID] = *match
	return nil
}

type participationKey struct {
	matchID  int
	playerID int
}

type fakeParticipationRepo struct {
	participations map[participationKey]models.Participation
	players        *fakePlayerRepo
	nextID         int
}

func newFakeParticipationRepo(players *fakePlayerRepo) *fakeParticipationRepo {
	return &fakeParticipationRepo{
		participations: make(map[participationKey]models.Participation),
		players:        players,
		nextID:         1,
	}
}

func (r *fakeParticipationRepo) Create(_ context.Context, _ repositories.SQLExecutor, p *models.Participation) error {
	key := participationKey{matchID: p.MatchID, playerID: p.PlayerID}
	if _, ok := r.participations[key]; ok {
		return repositories.ErrParticipationConflict
	}
	p.ID = r.nextID
	r.nextID++
	r.participations[key] = *p
	return nil
}

func (r *fakeParticipationRepo) Update(_ context.Context, _ repositories.SQLExecutor, p *models.Participation) error {
	key := participationKey{matchID: p.MatchID, playerID: p.PlayerID}
	if _, ok := r.participations[key]; !ok {
		return repositories.ErrParticipationNotFound
	}
	r.participations[key] = *p
	return nil
}

func (r *fakeParticipationRepo) FindByMatchAndPlayer(_ context.Context, _ repositories.SQLExecutor, matchID, playerID int) (*models.Participation, error) {
	p, ok := r.participations[participationKey{matchID: matchID, playerID: playerID}]
	if !ok {
		return nil, repositories.ErrParticipationNotFound
	}
	copied := p
	return &copied, nil
}

func (r *fakeParticipationRepo) ListDetailByMatch(_ context.Context, _ repositories.SQLExecutor, matchID int) ([]models.ParticipationDetail, error) {
	var details []models.ParticipationDetail
	for id := 1; id < r.nextID; id++ {
		for key, p := range r.participations {
			if p.ID != id || key.matchID != matchID {
				continue
			}
			detail := models.ParticipationDetail{Participation: p}
			if player, ok := r.players.players[p.PlayerID]; ok {
				detail.PlayerFirstName = player.FirstName
				detail.PlayerLastName = player.LastName
			}
			details = append(details, detail)
		}
	}
	return details, nil
}

// recordingNotifier captures every push so tests can assert what would have
// reached the dashboard.
type recordingNotifier struct {
	matches        []*models.Match
	participations []*models.Participation
}

func (n *recordingNotifier) MatchUpdated(match *models.Match) {
	n.matches = append(n.matches, match)
}

func (n *recordingNotifier) ParticipationUpdated(_ int, p *models.Participation) {
	n.participations = append(n.participations, p)
}
