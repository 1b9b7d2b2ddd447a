package service

import (
	"context"
	"time"

	"blockplan/internal/domain"
	"blockplan/internal/repository"
)

type configService struct {
	config repository.UserConfigRepo
}

func NewConfigService(config repository.UserConfigRepo) ConfigService {
	return &configService{config: config}
}

func (s *configService) Get(ctx context.Context) (*domain.UserConfig, error) {
	return s.config.Get(ctx)
}

func (s *configService) Update(ctx context.Context, c *domain.UserConfig) error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.UpdatedAt = time.Now().UTC()
	return s.config.Update(ctx, c)
}
