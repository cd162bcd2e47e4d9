package pshop

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopops/psbridge/internal/catalog"
)

func TestReadSourceRecords(t *testing.T) {
	records, err := ReadSourceRecords(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatalf("ReadSourceRecords() error = %v", err)
	}

	want := []catalog.SourceRecord{
		{Reference: "LAMP-01", Price: "24.90", Quantity: "5"},
		{Reference: "LAMP-01", Price: "26.00", Quantity: "2"},
		{Reference: "CHAIR-07", Price: "99.00", Quantity: "12"},
	}
	if len(records) != len(want) {
		t.Fatalf("ReadSourceRecords() = %d records, want %d", len(records), len(want))
	}
	for i, rec := range records {
		if rec != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, rec, want[i])
		}
	}
}

func TestReadSourceRecords_Invalid(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{
			name: "missing reference",
			xml: `<export><twinPrestaShop5>
				<price_tin>10</price_tin><quantity>1</quantity>
			</twinPrestaShop5></export>`,
		},
		{
			name: "non-decimal price",
			xml: `<export><twinPrestaShop5>
				<reference>A</reference><price_tin>abc</price_tin><quantity>1</quantity>
			</twinPrestaShop5></export>`,
		},
		{
			name: "non-integer quantity",
			xml: `<export><twinPrestaShop5>
				<reference>A</reference><price_tin>10</price_tin><quantity>2.5</quantity>
			</twinPrestaShop5></export>`,
		},
		{
			name: "empty quantity",
			xml: `<export><twinPrestaShop5>
				<reference>A</reference><price_tin>10</price_tin>
			</twinPrestaShop5></export>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSourceRecords(strings.NewReader(tt.xml))
			var mfe *MissingFieldError
			if !errors.As(err, &mfe) {
				t.Errorf("ReadSourceRecords() error = %v, want *MissingFieldError", err)
			}
		})
	}
}

func TestReadSourceRecords_MalformedXML(t *testing.T) {
	_, err := ReadSourceRecords(strings.NewReader("not xml at all <"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Errorf("ReadSourceRecords() error = %v, want *ParseError", err)
	}
}

func TestReadPrimaryCatalog(t *testing.T) {
	input := strings.Join([]string{
		"id;imageUrl;name;reference;category;priceTex;priceTin;quantity;active;position",
		"1;http://img/1.jpg;Lamp;LAMP-01;Home;20.58;24.90;5;1;3",
		"2;;Chair;CHAIR-07;Home;81.82;99.00;12;1;4",
	}, "\n")

	records, err := ReadPrimaryCatalog(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadPrimaryCatalog() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("ReadPrimaryCatalog() = %d records, want 2", len(records))
	}

	want := catalog.PrimaryRecord{
		ID: "1", ImageURL: "http://img/1.jpg", Name: "Lamp", Reference: "LAMP-01",
		Category: "Home", PriceTex: "20.58", PriceTin: "24.90", Quantity: "5",
		Active: "1", Position: "3",
	}
	if records[0] != want {
		t.Errorf("first record = %+v, want %+v", records[0], want)
	}
}

func TestReadPrimaryCatalog_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty file",
			input: "",
		},
		{
			name:  "wrong column order",
			input: "id;name;imageUrl;reference;category;priceTex;priceTin;quantity;active;position\n",
		},
		{
			name:  "missing columns",
			input: "id;reference;priceTin\n1;A;10\n",
		},
		{
			name:  "ragged data row",
			input: "id;imageUrl;name;reference;category;priceTex;priceTin;quantity;active;position\n1;2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadPrimaryCatalog(strings.NewReader(tt.input))
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("ReadPrimaryCatalog() error = %v, want *ParseError", err)
			}
		})
	}
}
