// pkg/product/product_test.go

package product

import "testing"

func TestCleanValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"LENOVO", "LENOVO"},
		{"  Dell Inc.  ", "Dell Inc."},
		{"To be filled by O.E.M.", ""},
		{"Default string", ""},
		{"System manufacturer", ""},
		{"None", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := cleanValue(tt.in); got != tt.want {
			t.Errorf("cleanValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestComposeProduct(t *testing.T) {
	tests := []struct {
		name    string
		vendor  string
		family  string
		prod    string
		version string
		want    string
	}{
		{
			name:   "distinct fields",
			vendor: "Dell Inc.", prod: "XPS 13 9310",
			want: "Dell Inc. XPS 13 9310",
		},
		{
			name:   "duplicate family and version",
			vendor: "LENOVO", family: "ThinkPad X1 Carbon Gen 9",
			prod: "ThinkPad X1 Carbon", version: "ThinkPad X1 Carbon Gen 9",
			want: "LENOVO ThinkPad X1 Carbon Gen 9",
		},
		{
			name:   "placeholders dropped",
			vendor: "System manufacturer", prod: "System Product Name",
			want: "",
		},
		{
			name: "empty", want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := composeProduct(tt.vendor, tt.family, tt.prod, tt.version)
			if got != tt.want {
				t.Errorf("composeProduct = %q, want %q", got, tt.want)
			}
		})
	}
}
