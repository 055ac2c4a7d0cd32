package services

import (
	"context"
	"errors"
	"testing"
)

func newPlayerService(repo *fakePlayerRepo) *PlayerService {
	return NewPlayerService(stubTxRunner{}, repo)
}

func TestPlayerServiceCreate(t *testing.T) {
	tests := []struct {
		name    string
		input   CreatePlayerInput
		wantErr error
	}{
		{"valid", CreatePlayerInput{FirstName: "Matías", LastName: "Alderete"}, nil},
		{"trims whitespace", CreatePlayerInput{FirstName: "  Matías  ", LastName: " Alderete "}, nil},
		{"missing first name", CreatePlayerInput{LastName: "Alderete"}, ErrValidationFailed},
		{"blank last name", CreatePlayerInput{FirstName: "Matías", LastName: "   "}, ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newPlayerService(newFakePlayerRepo())
			player, err := service.Create(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Create() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if player.ID == 0 {
				t.Error("created player has no ID")
			}
			if !player.Active {
				t.Error("new player must start active")
			}
			if player.FirstName != "Matías" || player.LastName != "Alderete" {
				t.Errorf("names not trimmed: %q %q", player.FirstName, player.LastName)
			}
		})
	}
}

func TestPlayerServiceGetByIDNotFound(t *testing.T) {
	service := newPlayerService(newFakePlayerRepo())

	if _, err := service.GetByID(context.Background(), 42); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("GetByID() error = %v, want %v", err, ErrPlayerNotFound)
	}
}

func TestPlayerServiceUpdate(t *testing.T) {
	repo := newFakePlayerRepo()
	existing := repo.add("Matías", "Alderete", true)
	service := newPlayerService(repo)

	newLast := "Gómez"
	player, err := service.Update(context.Background(), existing.ID, PlayerUpdate{LastName: &newLast})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if player.LastName != "Gómez" {
		t.Errorf("LastName = %q, want %q", player.LastName, "Gómez")
	}
	if player.FirstName != "Matías" {
		t.Errorf("FirstName changed to %q on a partial update", player.FirstName)
	}
}

func TestPlayerServiceUpdateErrors(t *testing.T) {
	repo := newFakePlayerRepo()
	existing := repo.add("Matías", "Alderete", true)
	service := newPlayerService(repo)

	blank := "  "
	name := "Juan"

	tests := []struct {
		name    string
		id      int
		update  PlayerUpdate
		wantErr error
	}{
		{"no fields", existing.ID, PlayerUpdate{}, ErrNoFieldsToUpdate},
		{"blank first name", existing.ID, PlayerUpdate{FirstName: &blank}, ErrValidationFailed},
		{"unknown player", 99, PlayerUpdate{FirstName: &name}, ErrPlayerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.Update(context.Background(), tt.id, tt.update); !errors.Is(err, tt.wantErr) {
				t.Errorf("Update() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPlayerServiceDeactivate(t *testing.T) {
	repo := newFakePlayerRepo()
	existing := repo.add("Matías", "Alderete", true)
	service := newPlayerService(repo)

	player, err := service.Deactivate(context.Background(), existing.ID)
	if err != nil {
		t.Fatalf("Deactivate() error = %v", err)
	}
	if player.Active {
		t.Error("player still active after deactivation")
	}

	// Repetir la baja no falla y devuelve el mismo estado.
	player, err = service.Deactivate(context.Background(), existing.ID)
	if err != nil {
		t.Fatalf("second Deactivate() error = %v", err)
	}
	if player.Active {
		t.Error("player reactivated by a repeated deactivation")
	}
}
