package services

import (
	"encoding/json"
	"fmt"

	"github.com/l3montree-dev/threadline/database/models"
	"github.com/l3montree-dev/threadline/shared"
)

// ConfigService stores small JSON documents in the config table.
// The leader election lease lives here.
type ConfigService struct {
	repository shared.ConfigRepository
}

var _ shared.ConfigService = ConfigService{}

func NewConfigService(repository shared.ConfigRepository) ConfigService {
	return ConfigService{
		repository: repository,
	}
}

func (service ConfigService) GetJSONConfig(key string, v any) error {
	var config models.Config
	if err := service.repository.GetDB(nil).Where("key = ?", key).First(&config).Error; err != nil {
		return notFoundOr("read config", err)
	}
	if err := json.Unmarshal([]byte(config.Val), v); err != nil {
		return fmt.Errorf("config %q is not valid json: %w", key, err)
	}
	return nil
}

func (service ConfigService) SetJSONConfig(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return service.repository.Save(nil, &models.Config{
		Key: key,
		Val: string(b),
	})
}
