package match

import (
	"reflect"
	"testing"

	"github.com/chainsight/riskgraph/backend/pkg/common"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Lowercase", "Foxconn", "foxconn"},
		{"CollapseSpaces", "  Bosch   China  ", "bosch china"},
		{"Tabs", "ITC\tLimited", "itc limited"},
		{"Empty", "", ""},
		{"OnlySpaces", "   ", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			if got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name   string
		hay    string
		needle string
		want   bool
	}{
		{"Exact", "Foxconn", "Foxconn", true},
		{"CaseInsensitive", "Foxconn", "foxconn", true},
		{"Substring", "ITC Limited", "ITC", true},
		{"NoMatch", "ITC Limited", "Unrelated Co", false},
		{"EmptyNeedle", "Foxconn", "", false},
		{"EmptyNeedleWhitespace", "Foxconn", "   ", false},
		{"EmptyHay", "", "Foxconn", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Contains(tc.hay, tc.needle)
			if got != tc.want {
				t.Fatalf("Contains(%q, %q) = %v, want %v", tc.hay, tc.needle, got, tc.want)
			}
		})
	}
}

func TestSupplierMatches(t *testing.T) {
	supplier := common.SupplierRef{
		ID:      "S1",
		Name:    "ITC Limited",
		Aliases: []string{"Indian Tobacco Company"},
	}

	tests := []struct {
		name   string
		entity string
		want   bool
	}{
		{"NameSubstring", "ITC", true},
		{"FullName", "ITC Limited", true},
		{"AliasSubstring", "Indian Tobacco", true},
		{"CaseMismatch", "itc limited", true},
		{"NoMatch", "Unrelated Co", false},
		{"EmptyEntity", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SupplierMatches(supplier, tc.entity)
			if got != tc.want {
				t.Fatalf("SupplierMatches(%q) = %v, want %v", tc.entity, got, tc.want)
			}
		})
	}
}

func TestLinkEntities(t *testing.T) {
	suppliers := []common.SupplierRef{
		{ID: "S1", Name: "Foxconn", Aliases: []string{"Hon Hai"}},
		{ID: "S2", Name: "Bosch China", Aliases: []string{}},
		{ID: "S3", Name: "Unrelated Co", Aliases: []string{}},
	}

	got := LinkEntities(suppliers, []string{"Foxconn", "Bosch"})
	want := []string{"S1", "S2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("LinkEntities = %v, want %v", got, want)
	}
}

func TestLinkEntities_AliasMatch(t *testing.T) {
	suppliers := []common.SupplierRef{
		{ID: "S1", Name: "Foxconn", Aliases: []string{"Hon Hai"}},
	}

	got := LinkEntities(suppliers, []string{"Hon Hai"})
	if len(got) != 1 || got[0] != "S1" {
		t.Fatalf("expected [S1], got %v", got)
	}
}

func TestLinkEntities_DeduplicatesSupplier(t *testing.T) {
	suppliers := []common.SupplierRef{
		{ID: "S1", Name: "Foxconn", Aliases: []string{"Hon Hai"}},
	}

	// Both entities match the same supplier; the id must appear once.
	got := LinkEntities(suppliers, []string{"Foxconn", "Hon Hai"})
	if len(got) != 1 || got[0] != "S1" {
		t.Fatalf("expected [S1], got %v", got)
	}
}

func TestLinkEntities_NoEntities(t *testing.T) {
	suppliers := []common.SupplierRef{
		{ID: "S1", Name: "Foxconn"},
	}

	got := LinkEntities(suppliers, nil)
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}
