package minio

import (
	"context"
	"sync"

	config "github.com/lumera-shop/catalog-backend/internal/cfg"
	"github.com/lumera-shop/catalog-backend/pkg/logger"
)

// ObjectPresigner выдаёт подписанные ссылки на чтение объектов хранилища.
type ObjectPresigner interface {
	PresignGet(ctx context.Context, key string) (string, error)
}

// MediaInfra разрешает ключи превью товаров в подписанные ссылки.
// Разрешение best-effort: ошибка по одному ключу не срывает выдачу,
// для такого ключа ссылки в результате не будет.
type MediaInfra struct {
	presigner ObjectPresigner
	logger    logger.Logger
	cfg       *config.MinIOCfg
}

func NewMediaInfra(presigner ObjectPresigner, logger logger.Logger, cfg *config.MinIOCfg) *MediaInfra {
	return &MediaInfra{
		presigner: presigner,
		logger:    logger,
		cfg:       cfg,
	}
}

// ResolveThumbnails подписывает ключи параллельно с ограничением
// одновременных запросов к хранилищу.
func (m *MediaInfra) ResolveThumbnails(ctx context.Context, keys []string) map[string]string {
	if len(keys) == 0 {
		return map[string]string{}
	}

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result = make(map[string]string, len(keys))
		sem    = make(chan struct{}, m.cfg.PresignConcurrency)
	)

	for _, key := range keys {
		wg.Add(1)
		sem <- struct{}{}

		go func(key string) {
			defer wg.Done()
			defer func() { <-sem }()

			link, err := m.presigner.PresignGet(ctx, key)
			if err != nil {
				m.logger.Warnf("Failed to presign thumbnail %s: %v", key, err)
				return
			}

			mu.Lock()
			result[key] = link
			mu.Unlock()
		}(key)
	}

	wg.Wait()
	return result
}
