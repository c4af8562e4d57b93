package podcast

import (
	"context"

	"github.com/google/uuid"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/shared/upload"
)

type Service interface {
	List(ctx context.Context) ([]EpisodeDTO, error)
	ListActive(ctx context.Context) ([]EpisodeDTO, error)

	// Create requires a media file and infers the episode kind from its
	// MIME prefix. A thumbnail is accepted for video episodes only.
	Create(ctx context.Context, req SaveEpisodeRequest, media, thumbnail *upload.File) (*EpisodeDTO, error)

	// Update keeps the current media when no new file is sent. Sending a
	// new file may flip the episode kind.
	Update(ctx context.Context, id uuid.UUID, req SaveEpisodeRequest, media, thumbnail *upload.File) (*EpisodeDTO, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
