package postgres

import "testing"

func TestSortDirection(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":       "ASC",
		"asc":    "ASC",
		"desc":   "DESC",
		"DESC":   "DESC",
		" Desc ": "DESC",
		"drop":   "ASC",
	}
	for in, want := range cases {
		if got := SortDirection(in); got != want {
			t.Errorf("SortDirection(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSearchPattern_EscapesWildcards(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"shoe":    "%shoe%",
		"50%":     `%50\%%`,
		"a_b":     `%a\_b%`,
		`back\sl`: `%back\\sl%`,
	}
	for in, want := range cases {
		if got := SearchPattern(in); got != want {
			t.Errorf("SearchPattern(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuilder_DollarPlaceholders(t *testing.T) {
	t.Parallel()

	sql, args, err := Builder().Select("id").From("categories").Where("id = ?", 5).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if sql != "SELECT id FROM categories WHERE id = $1" {
		t.Errorf("unexpected SQL: %s", sql)
	}
	if len(args) != 1 || args[0] != 5 {
		t.Errorf("unexpected args: %v", args)
	}
}
