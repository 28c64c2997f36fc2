package domain

import "github.com/shopspring/decimal"

// Известные ключи мешка метаданных товара.
const (
	MetaKeyPrice         = "price"
	MetaKeyDiscountPrice = "discount_price"
	MetaKeyIsSale        = "is_sale"
	MetaKeyIsNew         = "is_new"
	MetaKeyIsFeatured    = "is_featured"
	MetaKeyPopularity    = "popularity"
)

// Metadata — типизированное представление мешка метаданных товара.
// Известные ключи вынесены в поля, остальные строковые атрибуты
// попадают в Attributes и используются фильтрами по атрибутам.
type Metadata struct {
	Price         int64 // Цена хранится в копейках; отсутствие цены трактуется как 0
	DiscountPrice *int64
	IsSale        bool
	IsNew         bool
	IsFeatured    bool
	Popularity    *int64 // ранг популярности, больше — популярнее
	Attributes    map[string]string
}

// ParseMetadata разбирает сырой JSONB-мешок метаданных в типизированную структуру.
// Значения неожиданных типов у известных ключей игнорируются, не вызывая ошибку.
func ParseMetadata(raw map[string]any) *Metadata {
	meta := &Metadata{}
	if len(raw) == 0 {
		return meta
	}

	for key, value := range raw {
		switch key {
		case MetaKeyPrice:
			if cents, ok := toCents(value); ok {
				meta.Price = cents
			}
		case MetaKeyDiscountPrice:
			if cents, ok := toCents(value); ok {
				meta.DiscountPrice = &cents
			}
		case MetaKeyIsSale:
			meta.IsSale = toBool(value)
		case MetaKeyIsNew:
			meta.IsNew = toBool(value)
		case MetaKeyIsFeatured:
			meta.IsFeatured = toBool(value)
		case MetaKeyPopularity:
			if rank, ok := toInt64(value); ok {
				meta.Popularity = &rank
			}
		default:
			if s, ok := value.(string); ok {
				if meta.Attributes == nil {
					meta.Attributes = make(map[string]string)
				}
				meta.Attributes[key] = s
			}
		}
	}

	return meta
}

// HasAttributes проверяет, что каждый из требуемых атрибутов совпадает по равенству.
func (m *Metadata) HasAttributes(required map[string]string) bool {
	for key, want := range required {
		got, ok := m.Attributes[key]
		if !ok || got != want {
			return false
		}
	}

	return true
}

// PriceInRange проверяет попадание цены в границы [min, max] включительно.
// nil-граница означает её отсутствие.
func (m *Metadata) PriceInRange(min, max *int64) bool {
	if min != nil && m.Price < *min {
		return false
	}
	if max != nil && m.Price > *max {
		return false
	}

	return true
}

// toCents конвертирует JSON-число с ценой (в денежных единицах) в копейки.
// Отрицательные значения отбрасываются: цена по контракту неотрицательна.
func toCents(value any) (int64, bool) {
	f, ok := value.(float64)
	if !ok {
		return 0, false
	}

	d := decimal.NewFromFloat(f)
	if d.LessThan(decimal.Zero) {
		return 0, false
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), true
}

func toInt64(value any) (int64, bool) {
	f, ok := value.(float64)
	if !ok {
		return 0, false
	}

	return int64(f), true
}

func toBool(value any) bool {
	b, ok := value.(bool)
	return ok && b
}
