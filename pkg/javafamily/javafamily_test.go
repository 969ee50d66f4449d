package javafamily

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDottedPath(t *testing.T) {
	tests := []struct {
		name string
		rel  string
		want string
	}{
		{
			name: "reverse_domain_com_trimmed",
			rel:  "src/com/acme/Widget.java",
			want: "com.acme.Widget",
		},
		{
			name: "reverse_domain_org_trimmed",
			rel:  "src/org/acme/Widget.java",
			want: "org.acme.Widget",
		},
		{
			name: "com_wins_over_org",
			rel:  "src/org/x/com/acme/Widget.java",
			want: "com.acme.Widget",
		},
		{
			name: "no_domain_segment",
			rel:  "src/acme/Widget.java",
			want: "src.acme.Widget",
		},
		{
			name: "leading_com_not_trimmed",
			rel:  "com/acme/Widget.java",
			want: "com.acme.Widget",
		},
		{
			name: "substring_heuristic_fires_mid_path",
			rel:  "src/telecom/acme/Widget.java",
			want: "src.telecom.acme.Widget",
		},
		{
			name: "windows_separators",
			rel:  `src\com\acme\Widget.java`,
			want: "com.acme.Widget",
		},
		{
			name: "class_in_root",
			rel:  "Widget.java",
			want: "Widget",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DottedPath(tt.rel))
		})
	}
}

func TestImportStatement(t *testing.T) {
	assert.Equal(t, "import com.acme.Widget;", ImportStatement("src/com/acme/Widget.java"))
	assert.Equal(t, "import src.acme.Widget;", ImportStatement("src/acme/Widget.java"))
}

func TestPackageStatement(t *testing.T) {
	tests := []struct {
		name string
		rel  string
		want string
	}{
		{
			name: "package_drops_class_name",
			rel:  "src/com/acme/Widget.java",
			want: "package com.acme;",
		},
		{
			name: "no_domain_segment",
			rel:  "src/acme/Widget.java",
			want: "package src.acme;",
		},
		{
			name: "class_in_root_has_empty_package",
			rel:  "Widget.java",
			want: "package ;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PackageStatement(tt.rel))
		})
	}
}
