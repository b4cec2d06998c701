package notification

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/skopia/astrodaily/internal/domain"
)

// Service fans notifications out to every configured channel. Discord is the
// only channel today.
type Service struct {
	discord *DiscordService
}

func NewService(log zerolog.Logger, webhookURL string) domain.NotificationService {
	var discord *DiscordService
	if webhookURL != "" {
		discord = NewDiscordService(log, webhookURL)
	}

	return &Service{
		discord: discord,
	}
}

func (s *Service) SendNewEntry(ctx context.Context, entry domain.Entry, actualDate domain.Date) error {
	if s.discord != nil {
		if err := s.discord.SendNewEntry(ctx, entry, actualDate); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) SendError(ctx context.Context, err error) error {
	if s.discord != nil {
		if err := s.discord.SendError(ctx, err); err != nil {
			return err
		}
	}
	return nil
}
