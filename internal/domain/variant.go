package domain

// VariantOption — одна пара «опция → значение» у варианта товара
// (развёрнутая цепочка вариант → назначение → значение опции → опция).
type VariantOption struct {
	Option string // заголовок опции, например "Color"
	Value  string // значение, например "Red"
}

// Variant описывает вариант товара вместе с его опциями.
type Variant struct {
	ID        int64
	ProductID int64
	Options   []VariantOption
}

// MatchesOptions проверяет, что вариант удовлетворяет каждой требуемой паре
// «опция → значение» одновременно. Сравнение строгое, с учётом регистра.
func (v *Variant) MatchesOptions(required map[string]string) bool {
	for option, want := range required {
		found := false
		for _, assigned := range v.Options {
			if assigned.Option == option && assigned.Value == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
