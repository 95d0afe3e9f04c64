package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ProductCategory is the closed set of menu sections
type ProductCategory int

const (
	CategoryPastesSalados    ProductCategory = 0
	CategoryEmpanadasSaladas ProductCategory = 1
	CategoryEmpanadasDulces  ProductCategory = 2
	CategoryBebidas          ProductCategory = 3
	CategoryPromociones      ProductCategory = 4
)

var categoryNames = [...]string{
	"Pastes Salados",
	"Empanadas Saladas",
	"Empanadas Dulces",
	"Bebidas",
	"Promociones",
}

func (c ProductCategory) String() string {
	if int(c) < 0 || int(c) >= len(categoryNames) {
		return categoryNames[0]
	}
	return categoryNames[c]
}

// Categories returns every menu section in display order.
func Categories() []ProductCategory {
	return []ProductCategory{
		CategoryPastesSalados,
		CategoryEmpanadasSaladas,
		CategoryEmpanadasDulces,
		CategoryBebidas,
		CategoryPromociones,
	}
}

// ParseProductCategory converts a display name to a ProductCategory.
// Unknown values report false.
func ParseProductCategory(s string) (ProductCategory, bool) {
	for i, name := range categoryNames {
		if name == s {
			return ProductCategory(i), true
		}
	}
	return CategoryPastesSalados, false
}

func (c ProductCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ProductCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = ProductCategory(i)
		return nil
	}
	if parsed, ok := ParseProductCategory(str); ok {
		*c = parsed
	}
	return nil
}

func (c ProductCategory) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *ProductCategory) Scan(value interface{}) error {
	if value == nil {
		*c = CategoryPastesSalados
		return nil
	}
	switch v := value.(type) {
	case int64:
		*c = ProductCategory(v)
	case int:
		*c = ProductCategory(v)
	}
	return nil
}
