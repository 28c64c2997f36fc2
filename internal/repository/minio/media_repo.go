package minio

import (
	"context"
	"net/url"

	"github.com/jimlawless/whereami"
	config "github.com/lumera-shop/catalog-backend/internal/cfg"
	"github.com/lumera-shop/catalog-backend/pkg/e"
	"github.com/minio/minio-go/v7"
)

// MediaRepo реализует репозиторий медиафайлов каталога поверх MinIO.
type MediaRepo struct {
	mc  *minio.Client
	cfg *config.MinIOCfg
}

func NewMediaRepo(mc *minio.Client, cfg *config.MinIOCfg) *MediaRepo {
	return &MediaRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// PresignGet возвращает подписанную ссылку на чтение объекта
// со временем жизни из конфигурации.
func (m *MediaRepo) PresignGet(ctx context.Context, key string) (string, error) {
	link, err := m.mc.PresignedGetObject(ctx, m.cfg.BucketName, key, m.cfg.PresignTTL, url.Values{})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return link.String(), nil
}
