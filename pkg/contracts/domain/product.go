package domain

// ProductRecord represents one row of the furniture dataset. The raw
// columns are kept as text; the cleaning step fills the typed fields.
// Pointer fields distinguish "missing" from a legitimate zero.
type ProductRecord struct {
	ProductTitle string `json:"product_title" csv:"productTitle"`

	// Raw cell text as loaded from the CSV, before cleaning.
	RawOriginalPrice string `json:"-"`
	RawPrice         string `json:"-"`
	RawSold          string `json:"-"`

	OriginalPrice *float64 `json:"original_price,omitempty" csv:"originalPrice"`
	Price         *float64 `json:"price,omitempty" csv:"price"`
	Sold          *int64   `json:"sold,omitempty" csv:"sold"`
	TagText       *string  `json:"tag_text,omitempty" csv:"tagText"`
}

// Dataset is the ordered collection of product records together with
// the parse failures recorded while cleaning it. The pipeline creates
// it once, cleans it in place and treats it as read-only afterwards.
type Dataset struct {
	Records []ProductRecord `json:"records"`

	// ParseFailures counts cells per column that could not be parsed
	// into a numeric value after stripping currency formatting.
	ParseFailures map[string]int `json:"parse_failures,omitempty"`

	// Cleaned is set once the cleaning step has run.
	Cleaned bool `json:"cleaned"`
}

// Column names of the furniture dataset, in canonical header order.
const (
	ColumnProductTitle  = "productTitle"
	ColumnOriginalPrice = "originalPrice"
	ColumnPrice         = "price"
	ColumnSold          = "sold"
	ColumnTagText       = "tagText"
)

// Columns returns the expected header columns in canonical order.
func Columns() []string {
	return []string{
		ColumnProductTitle,
		ColumnOriginalPrice,
		ColumnPrice,
		ColumnSold,
		ColumnTagText,
	}
}

// Len returns the number of records in the dataset.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// IsEmpty reports whether the dataset holds no records.
func (d *Dataset) IsEmpty() bool {
	return len(d.Records) == 0
}

// PricePairs returns the (price, sold) observations where both values
// are present, preserving record order.
func (d *Dataset) PricePairs() (prices []float64, sold []float64) {
	for _, r := range d.Records {
		if r.Price == nil || r.Sold == nil {
			continue
		}
		prices = append(prices, *r.Price)
		sold = append(sold, float64(*r.Sold))
	}
	return prices, sold
}
