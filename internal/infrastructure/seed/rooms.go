// Package seed loads reference data from YAML files.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/opsportal/opsportal/internal/domain/room"
	"github.com/opsportal/opsportal/internal/shared/logger"
)

type RoomSeed struct {
	Name            string `yaml:"name"`
	Capacity        int    `yaml:"capacity"`
	Seating         string `yaml:"seating"`
	HasPresentation bool   `yaml:"has_presentation"`
	Image           string `yaml:"image"`
}

type roomFile struct {
	Rooms []RoomSeed `yaml:"rooms"`
}

func LoadRoomsFile(path string) ([]RoomSeed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open room seed file: %w", err)
	}
	defer f.Close()
	return DecodeRooms(f)
}

func DecodeRooms(r io.Reader) ([]RoomSeed, error) {
	var doc roomFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse room seed file: %w", err)
	}
	return doc.Rooms, nil
}

type SeedResult struct {
	Created int
	Updated int
}

// ApplyRooms creates missing rooms and updates existing ones matched by name.
// Every entry is validated before anything is written.
func ApplyRooms(ctx context.Context, repo room.Repository, seeds []RoomSeed, log logger.Interface) (*SeedResult, error) {
	rooms := make([]*room.Room, 0, len(seeds))
	for i, s := range seeds {
		r, err := room.NewRoom(s.Name, s.Capacity, room.Seating(s.Seating), s.HasPresentation, s.Image)
		if err != nil {
			return nil, fmt.Errorf("room seed #%d (%s): %w", i+1, s.Name, err)
		}
		rooms = append(rooms, r)
	}

	result := &SeedResult{}
	for i, r := range rooms {
		existing, err := repo.GetByName(ctx, r.Name())
		if err != nil {
			return result, err
		}
		if existing == nil {
			if err := repo.Create(ctx, r); err != nil {
				return result, err
			}
			result.Created++
			continue
		}

		s := seeds[i]
		if err := existing.Update(s.Name, s.Capacity, room.Seating(s.Seating), s.HasPresentation, s.Image); err != nil {
			return result, err
		}
		if err := repo.Update(ctx, existing); err != nil {
			return result, err
		}
		result.Updated++
	}

	log.Infow("rooms seeded", "created", result.Created, "updated", result.Updated)
	return result, nil
}
