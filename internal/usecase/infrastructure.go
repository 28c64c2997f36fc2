package usecase

import "context"

type MediaInfra interface {
	// ResolveThumbnails превращает ключи объектов медиахранилища в публичные ссылки.
	// Работает по принципу best effort: ключи, которые не удалось подписать,
	// в результате отсутствуют.
	ResolveThumbnails(ctx context.Context, keys []string) map[string]string
}

type AnalyticsProducer interface {
	PublishListingViewed(ctx context.Context, event *ListingViewedEvent) error
}
