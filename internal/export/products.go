package export

// products.go defines the product bulk-import format. The column list and
// extraction rules are transcribed from the legacy conversion tooling and
// locked in by the downstream importer; column names that carry no rule
// (including the three "(0 = No, 1 = Yes)" columns, which the legacy tool
// never populated) deliberately emit empty strings.

func init() {
	Register(Definition{
		Key:      "products",
		Label:    "Products",
		FileBase: "products",
		Fields: []Field{
			{Column: "id"},
			{Column: "active", Path: "active", Kind: RuleFlagElement},
			{Column: "name", Path: "name", Kind: RuleRequiredElement},
			{Column: "categories", Path: "category", Kind: RuleElement},
			{Column: "price tax excluded", Path: "price_tin", Kind: RuleElement},
			{Column: "tax rules id", Path: "id_tax_rules_group", Kind: RuleElement},
			{Column: "wholesale price", Path: "wholesale_price", Kind: RuleElement},
			{Column: "on sale", Path: "on_sale", Kind: RuleFlagElement},
			{Column: "discount amount", Path: "reduction_price", Kind: RuleElement},
			{Column: "discount percent", Path: "reduction_percent", Kind: RuleElement},
			{Column: "discount from"},
			{Column: "discount to"},
			{Column: "reference", Path: "reference", Kind: RuleElement},
			{Column: "supplier reference", Path: "supplier_reference", Kind: RuleElement},
			{Column: "supplier", Path: "supplier", Kind: RuleElement},
			{Column: "manufacturer", Path: "manufacturer", Kind: RuleElement},
			{Column: "ean13", Path: "ean13", Kind: RuleElement},
			{Column: "upc"},
			{Column: "ecotax"},
			{Column: "width"},
			{Column: "height"},
			{Column: "depth"},
			{Column: "weight", Path: "weight", Kind: RuleElement},
			{Column: "delivery time in-stock"},
			{Column: "delivery time out-of-stock"},
			{Column: "quantity", Path: "quantity", Kind: RuleElement},
			{Column: "minimal quantity"},
			{Column: "low stock level"},
			{Column: "send email when quantity < level"},
			{Column: "visibility"},
			{Column: "additional shipping cost"},
			{Column: "unity"},
			{Column: "unit price"},
			{Column: "summary", Path: "description_short", Kind: RuleElement},
			{Column: "description", Path: "description", Kind: RuleElement},
			{Column: "tags"},
			{Column: "meta title", Path: "meta_title", Kind: RuleElement},
			{Column: "meta keywords", Path: "meta_keywords", Kind: RuleElement},
			{Column: "meta description", Path: "meta_description", Kind: RuleElement},
			{Column: "URL rewritten", Path: "link_rewrite", Kind: RuleElement},
			{Column: "text when in stock"},
			{Column: "text when backorder allowed"},
			{Column: "available for order", Path: "available_for_order", Kind: RuleFlagElement},
			{Column: "available date"},
			{Column: "creation date"},
			{Column: "show price", Path: "show_price", Kind: RuleFlagElement},
			{Column: "image URLs"},
			{Column: "image alt texts"},
			{Column: "delete existing images", Path: "delete_existing_images", Kind: RuleFlagElement},
			{Column: "feature", Path: "features", Kind: RuleElement},
			{Column: "online only", Path: "online_only", Kind: RuleFlagElement},
			{Column: "condition"},
			{Column: "customizable (0 = No, 1 = Yes)"},
			{Column: "uploadable files (0 = No, 1 = Yes)"},
			{Column: "text fields (0 = No, 1 = Yes)"},
			{Column: "out of stock action"},
			{Column: "virtual product"},
			{Column: "file URL"},
			{Column: "allowed downloads"},
			{Column: "expiration date"},
			{Column: "number of days"},
			{Column: "shop id/name", Path: "shop", Kind: RuleElement},
			{Column: "advanced stock management"},
			{Column: "depends On Stock"},
			{Column: "warehouse"},
			{Column: "acessories"},
		},
	})
}
