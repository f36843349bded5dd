package model

// Catalog is an ordered product list with lookup helpers. Order matters:
// averages in the search are reported in catalog order, and imports append.
type Catalog struct {
	Products []ProductUnit `json:"products"`
}

// Add appends a product to the catalog.
func (c *Catalog) Add(p ProductUnit) {
	c.Products = append(c.Products, p)
}

// Remove deletes the product with the given ID. Returns true if found.
func (c *Catalog) Remove(id string) bool {
	for i, p := range c.Products {
		if p.ID == id {
			c.Products = append(c.Products[:i], c.Products[i+1:]...)
			return true
		}
	}
	return false
}

// FindBySKU returns the first product with the given SKU.
func (c *Catalog) FindBySKU(sku string) (ProductUnit, bool) {
	for _, p := range c.Products {
		if p.SKU == sku {
			return p, true
		}
	}
	return ProductUnit{}, false
}

// SampleCatalog returns a small demonstration catalog. It is built fresh
// on every call so callers can mutate their copy freely; nothing in the
// engine ever reads it implicitly.
func SampleCatalog() Catalog {
	mug := NewProductUnit("MUG-11OZ", 4.5, 3.5, 4.0, 0.9)
	mug.Baseline = 24
	mug.Notes = "Boxed ceramic mug"

	tumbler := NewProductUnit("TUM-20OZ", 3.2, 3.2, 7.1, 0.75)
	tumbler.Baseline = 12

	frame := NewProductUnit("FRM-8X10", 10.8, 8.8, 1.1, 1.1)
	frame.Baseline = 36
	frame.Notes = "Flat pack, crushable sleeve"

	candle := NewProductUnit("CDL-3WICK", 4.1, 4.1, 3.6, 1.4)

	return Catalog{Products: []ProductUnit{mug, tumbler, frame, candle}}
}
