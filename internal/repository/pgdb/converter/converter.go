//go:generate goverter gen github.com/lumera-shop/catalog-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/lumera-shop/catalog-backend/internal/domain"
)

// ProductConverter преобразует строки каталога между моделью PostgreSQL и domain.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerString
// goverter:extend ConvertMetadata
type ProductConverter interface {
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []ProductModel) []domain.Product
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertPointerString(s *string) *string {
	return s
}

// ConvertMetadata разбирает сырые метаданные JSONB в типизированную проекцию.
func ConvertMetadata(raw map[string]any) *domain.Metadata {
	return domain.ParseMetadata(raw)
}
