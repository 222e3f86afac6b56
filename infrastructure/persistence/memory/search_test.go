package memory

import (
	"context"
	"testing"
	"time"

	"catalog/domain/category"
	"catalog/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(items []*category.Category) []string {
	out := make([]string, len(items))
	for i, c := range items {
		out[i] = c.Name()
	}
	return out
}

func seed(t *testing.T, repo category.Repository, items []*category.Category) {
	t.Helper()
	require.NoError(t, repo.BulkInsert(context.Background(), items))
}

func withNames(ns ...string) []*category.Category {
	return category.Fake().Many(len(ns)).WithNameFunc(func(i int) string { return ns[i] }).Build()
}

func search(t *testing.T, repo category.Repository, in category.SearchInput) category.SearchResult {
	t.Helper()
	res, err := repo.Search(context.Background(), category.NewSearchParams(in))
	require.NoError(t, err)
	return res
}

func filter(s string) *string { return &s }

func TestSearchDoesNotFilterWithoutFilter(t *testing.T) {
	calls := 0
	repo := NewSearchableRepository(SearchConfig[*category.Category, string]{
		Kind: category.Kind,
		Filter: func(ctx context.Context, items []*category.Category, f string) ([]*category.Category, error) {
			calls++
			return items, nil
		},
	})
	seed(t, repo, category.Fake().Many(3).Build())

	res, err := repo.Search(context.Background(), shared.DefaultSearchParams[string]())
	require.NoError(t, err)

	assert.Equal(t, 0, calls)
	assert.Equal(t, 3, res.Total())

	_, err = repo.Search(context.Background(), category.NewSearchParams(category.SearchInput{Filter: filter("x")}))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestSearchDefaultPaginationAndOrder(t *testing.T) {
	repo := NewCategoryRepository()
	items := category.Fake().Many(16).Build()
	seed(t, repo, items)

	res := search(t, repo, category.SearchInput{})

	assert.Equal(t, 16, res.Total())
	assert.Equal(t, 1, res.CurrentPage())
	assert.Equal(t, 15, res.PerPage())
	assert.Equal(t, 2, res.LastPage())
	require.Len(t, res.Items(), 15)
	// newest first
	assert.Equal(t, items[15], res.Items()[0])
	assert.Equal(t, items[1], res.Items()[14])

	res = search(t, repo, category.SearchInput{Page: 2})
	assert.Equal(t, []*category.Category{items[0]}, res.Items())
	assert.Equal(t, 16, res.Total())
}

func TestSearchSortsByName(t *testing.T) {
	repo := NewCategoryRepository()
	seed(t, repo, withNames("b", "a", "d", "e", "c"))

	tests := []struct {
		page int
		dir  string
		want []string
	}{
		{1, "asc", []string{"a", "b"}},
		{2, "asc", []string{"c", "d"}},
		{3, "asc", []string{"e"}},
		{1, "desc", []string{"e", "d"}},
		{2, "desc", []string{"c", "b"}},
		{3, "desc", []string{"a"}},
	}

	for _, tt := range tests {
		res := search(t, repo, category.SearchInput{Page: tt.page, PerPage: 2, Sort: "name", SortDir: tt.dir})
		assert.Equal(t, tt.want, names(res.Items()), "page %d %s", tt.page, tt.dir)
		assert.Equal(t, 5, res.Total())
		assert.Equal(t, 3, res.LastPage())
	}
}

func TestSearchFilterAndSortByName(t *testing.T) {
	repo := NewCategoryRepository()
	seed(t, repo, withNames("test", "a", "TEST", "e", "TeSt"))

	res := search(t, repo, category.SearchInput{Page: 1, PerPage: 2, Sort: "name", Filter: filter("TEST")})
	assert.Equal(t, []string{"TEST", "TeSt"}, names(res.Items()))
	assert.Equal(t, 3, res.Total())

	res = search(t, repo, category.SearchInput{Page: 2, PerPage: 2, Sort: "name", Filter: filter("TEST")})
	assert.Equal(t, []string{"test"}, names(res.Items()))
	assert.Equal(t, 3, res.Total())
}

func TestSearchFilterWithDefaultOrder(t *testing.T) {
	repo := NewCategoryRepository()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ns := []string{"test", "a", "TEST", "e", "TeSt"}
	seed(t, repo, category.Fake().Many(len(ns)).
		WithNameFunc(func(i int) string { return ns[i] }).
		WithCreatedAtFunc(func(i int) time.Time { return base.Add(-time.Duration(i) * time.Second) }).
		Build())

	res := search(t, repo, category.SearchInput{Page: 1, PerPage: 2, Filter: filter("TEST")})
	assert.Equal(t, []string{"test", "TEST"}, names(res.Items()))
	assert.Equal(t, 3, res.Total())
	assert.Equal(t, 2, res.LastPage())

	res = search(t, repo, category.SearchInput{Page: 2, PerPage: 2, Filter: filter("TEST")})
	assert.Equal(t, []string{"TeSt"}, names(res.Items()))
}

func TestSearchIgnoresUnsupportedSort(t *testing.T) {
	repo := NewCategoryRepository()
	seed(t, repo, withNames("b", "a", "c"))

	res := search(t, repo, category.SearchInput{Sort: "description", SortDir: "desc"})

	assert.Equal(t, []string{"b", "a", "c"}, names(res.Items()))
}

func TestSearchStableForTies(t *testing.T) {
	repo := NewCategoryRepository()
	items := withNames("a", "a", "a")
	seed(t, repo, items)

	res := search(t, repo, category.SearchInput{Sort: "name"})

	assert.Equal(t, items, res.Items())
}

func TestSearchPageOutOfRange(t *testing.T) {
	repo := NewCategoryRepository()
	seed(t, repo, category.Fake().Many(3).Build())

	res := search(t, repo, category.SearchInput{Page: 10, PerPage: 2})

	assert.Empty(t, res.Items())
	assert.Equal(t, 3, res.Total())
	assert.Equal(t, 10, res.CurrentPage())
	assert.Equal(t, 2, res.LastPage())
}

func TestSearchEmptyRepository(t *testing.T) {
	res := search(t, NewCategoryRepository(), category.SearchInput{})

	assert.NotNil(t, res.Items())
	assert.Empty(t, res.Items())
	assert.Equal(t, 0, res.Total())
	assert.Equal(t, 0, res.LastPage())
}

func TestSortableFields(t *testing.T) {
	repo := NewCategoryRepository()

	fields := repo.SortableFields()
	assert.Equal(t, []string{"name", "created_at"}, fields)

	fields[0] = "changed"
	assert.Equal(t, []string{"name", "created_at"}, repo.SortableFields())
}

func TestCompareValues(t *testing.T) {
	now := time.Now()

	assert.Equal(t, -1, compareValues("A", "a"))
	assert.Equal(t, 1, compareValues(2, 1))
	assert.Equal(t, 0, compareValues(int64(3), int64(3)))
	assert.Equal(t, -1, compareValues(1.5, 2.5))
	assert.Equal(t, 1, compareValues(now.Add(time.Second), now))
	assert.Equal(t, -1, compareValues(false, true))
	assert.Equal(t, 0, compareValues("a", 1))
	assert.Equal(t, 0, compareValues(nil, nil))
}
