package export

// combinations.go defines the combination bulk-import format. The
// "default" column inverts intuition on purpose: the legacy tooling emits
// "0" when a default_on element is present and "1" when it is absent, and
// the importer has been fed that way for years.

func init() {
	Register(Definition{
		Key:      "combinations",
		Label:    "Combinations",
		FileBase: "combinations",
		Fields: []Field{
			{Column: "product id", Path: "id_product", Kind: RuleElement},
			{Column: "product reference", Path: "product_reference", Kind: RuleElement},
			{Column: "attribute (name:type:position)", Path: "attribute", Kind: RuleElement},
			{Column: "value (value:position)", Path: "attribute_value", Kind: RuleElement},
			{Column: "supplier reference", Path: "supplier_reference", Kind: RuleElement},
			{Column: "reference", Path: "reference", Kind: RuleElement},
			{Column: "ean13", Path: "ean13", Kind: RuleElement},
			{Column: "upc"},
			{Column: "wholesale price", Path: "wholesale_price", Kind: RuleElement},
			{Column: "impact on price", Path: "price_impact", Kind: RuleElement},
			{Column: "ecotax"},
			{Column: "quantity", Path: "quantity", Kind: RuleElement},
			{Column: "minimal quantity"},
			{Column: "low stock level"},
			{Column: "impact on weight", Path: "weight_impact", Kind: RuleElement},
			{Column: "default (0 = No, 1 = Yes)", Path: "default_on", Kind: RuleAbsenceFlag},
			{Column: "combination available date"},
			{Column: "image position"},
			{Column: "image URLs"},
			{Column: "image alt texts"},
			{Column: "shop id/name", Path: "shop", Kind: RuleElement},
			{Column: "warehouse"},
		},
	})
}
