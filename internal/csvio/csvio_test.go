package csvio

import (
	"reflect"
	"strings"
	"testing"
)

func TestWriteReport(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		rows   [][]string
		want   string
	}{
		{
			name:   "header only",
			header: []string{"reference", "price"},
			want:   "\"reference\";\"price\"\n",
		},
		{
			name:   "every field quoted",
			header: []string{"reference", "price"},
			rows:   [][]string{{"A-1", "12.50"}},
			want:   "\"reference\";\"price\"\n\"A-1\";\"12.50\"\n",
		},
		{
			name:   "embedded quotes are doubled",
			header: []string{"name"},
			rows:   [][]string{{`He said "hi"`}},
			want:   "\"name\"\n\"He said \"\"hi\"\"\"\n",
		},
		{
			name:   "empty fields stay quoted",
			header: []string{"a", "b"},
			rows:   [][]string{{"", "x"}},
			want:   "\"a\";\"b\"\n\"\";\"x\"\n",
		},
		{
			name:   "semicolons inside fields survive quoting",
			header: []string{"desc"},
			rows:   [][]string{{"red; blue"}},
			want:   "\"desc\"\n\"red; blue\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			if err := WriteReport(&b, tt.header, tt.rows); err != nil {
				t.Fatalf("WriteReport() error = %v", err)
			}
			if b.String() != tt.want {
				t.Errorf("WriteReport() = %q, want %q", b.String(), tt.want)
			}
		})
	}
}

func TestRead(t *testing.T) {
	input := "\"id\";\"name\"\n\"1\";\"Lamp\"\n\"2\";\"Chair\"\n"

	rows, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := [][]string{
		{"id", "name"},
		{"1", "Lamp"},
		{"2", "Chair"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Read() = %v, want %v", rows, want)
	}
}

func TestRead_RaggedRows(t *testing.T) {
	input := "a;b;c\n1;2\n"

	if _, err := Read(strings.NewReader(input)); err == nil {
		t.Error("Read() accepted a row with the wrong field count")
	}
}

func TestRead_RoundTripsWrittenReport(t *testing.T) {
	var b strings.Builder
	header := []string{"reference", "note"}
	rows := [][]string{{"A", `contains "quotes" and ; delimiter`}}

	if err := WriteReport(&b, header, rows); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}

	got, err := Read(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !reflect.DeepEqual(got[1], rows[0]) {
		t.Errorf("round trip = %v, want %v", got[1], rows[0])
	}
}
