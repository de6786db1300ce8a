package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/m04kA/SMC-DentalScheduling/internal/domain"
	"github.com/m04kA/SMC-DentalScheduling/internal/integrations/clinicapi"
)

// Catalog каталог услуг клиники: сначала кэш, затем бэкенд
// Ошибки кэша не прерывают запрос, а только логируются
type Catalog struct {
	client  ClinicClient
	cache   Cache
	group   singleflight.Group
	metrics Metrics
	logger  Logger
}

// NewCatalog создает каталог услуг
func NewCatalog(client ClinicClient, cache Cache, metrics Metrics, logger Logger) *Catalog {
	if cache == nil {
		cache = NoopCache{}
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &Catalog{
		client:  client,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

// GetServices возвращает каталог услуг
func (c *Catalog) GetServices(ctx context.Context) ([]domain.Service, error) {
	services, found, err := c.cache.Get(ctx)
	switch {
	case err != nil:
		c.metrics.IncCacheLookup("error")
		c.logger.Warn("ServiceCatalog: cache read failed, falling back to backend: %v", err)
	case found:
		c.metrics.IncCacheLookup("hit")
		return services, nil
	default:
		c.metrics.IncCacheLookup("miss")
	}

	// Одновременные промахи выполняют один запрос к бэкенду
	result, err, _ := c.group.Do("services", func() (interface{}, error) {
		apiServices, err := c.client.GetServices(ctx)
		if err != nil {
			return nil, err
		}

		loaded := clinicapi.ToDomainServices(apiServices)
		if err := c.cache.Set(ctx, loaded); err != nil {
			c.logger.Warn("ServiceCatalog: cache write failed: %v", err)
		}

		c.logger.Info("ServiceCatalog: loaded %d services from backend", len(loaded))
		return loaded, nil
	})
	if err != nil {
		c.logger.Error("ServiceCatalog: failed to load services: %v", err)
		return nil, fmt.Errorf("service catalog: %w", err)
	}

	return result.([]domain.Service), nil
}
