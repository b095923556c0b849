package catalog_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahAagam369/New-Clothing-Website/internal/catalog"
)

func fixture() []catalog.Product {
	return []catalog.Product{
		{ID: "p1", Title: "Linen Shirt", Category: "men", Price: 1599, Sizes: []string{"S", "M"},
			Colors: []catalog.Color{{Name: "Navy", Hex: "#0a2a6c"}}, Tags: []string{"linen", "summer"},
			Description: "Lightweight linen shirt"},
		{ID: "p2", Title: "Chinos", Category: "men", Price: 1899, Sizes: []string{"M", "L"},
			Colors: []catalog.Color{{Name: "Khaki", Hex: "#c3b091"}}, Tags: []string{"cotton"},
			Description: "Premium chinos"},
		{ID: "p3", Title: "Blazer", Category: "women", Price: 4999, Sizes: []string{"L"},
			Colors: []catalog.Color{{Name: "Black", Hex: "#000000"}}, Tags: []string{"formal"},
			Description: "Tailored blazer"},
		{ID: "p4", Title: "Polo", Category: "men", Price: 999, Sizes: []string{"XL"},
			Colors: []catalog.Color{{Name: "White", Hex: "#ffffff"}}, Tags: []string{"casual"},
			Description: "Cotton polo"},
	}
}

func TestSearch(t *testing.T) {
	t.Run("PriceAscending", func(t *testing.T) {
		res := catalog.Search(fixture(), catalog.QuerySpec{Sort: catalog.SortPriceAsc})
		var prices []int64
		for _, p := range res.Items {
			prices = append(prices, p.Price)
		}
		assert.Equal(t, []int64{999, 1599, 1899, 4999}, prices)
	})

	t.Run("PriceDescending", func(t *testing.T) {
		res := catalog.Search(fixture(), catalog.QuerySpec{Sort: catalog.SortPriceDesc})
		require.Len(t, res.Items, 4)
		assert.Equal(t, int64(4999), res.Items[0].Price)
		assert.Equal(t, int64(999), res.Items[3].Price)
	})

	t.Run("FeaturedKeepsCatalogOrder", func(t *testing.T) {
		res := catalog.Search(fixture(), catalog.QuerySpec{})
		var ids []string
		for _, p := range res.Items {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, ids)
	})

	t.Run("CategoryAndSizeCompose", func(t *testing.T) {
		// A(men, S/M), B(men, M/L), C(women, L): men + L is exactly B.
		res := catalog.Search(fixture(), catalog.QuerySpec{
			Category: "men",
			Sizes:    []string{"L"},
		})
		require.Len(t, res.Items, 1)
		assert.Equal(t, "p2", res.Items[0].ID)
	})

	t.Run("SizesAreORMatched", func(t *testing.T) {
		res := catalog.Search(fixture(), catalog.QuerySpec{Sizes: []string{"S", "XL"}})
		require.Len(t, res.Items, 2)
		assert.Equal(t, "p1", res.Items[0].ID)
		assert.Equal(t, "p4", res.Items[1].ID)
	})

	t.Run("ColorsMatchByName", func(t *testing.T) {
		res := catalog.Search(fixture(), catalog.QuerySpec{Colors: []string{"Black", "White"}})
		require.Len(t, res.Items, 2)
		assert.Equal(t, "p3", res.Items[0].ID)
		assert.Equal(t, "p4", res.Items[1].ID)
	})

	t.Run("FreeTextMatchesTitleDescriptionTags", func(t *testing.T) {
		byTitle := catalog.Search(fixture(), catalog.QuerySpec{Query: "BLAZER"})
		require.Len(t, byTitle.Items, 1)
		assert.Equal(t, "p3", byTitle.Items[0].ID)

		byTag := catalog.Search(fixture(), catalog.QuerySpec{Query: "summer"})
		require.Len(t, byTag.Items, 1)
		assert.Equal(t, "p1", byTag.Items[0].ID)

		byDesc := catalog.Search(fixture(), catalog.QuerySpec{Query: "premium"})
		require.Len(t, byDesc.Items, 1)
		assert.Equal(t, "p2", byDesc.Items[0].ID)
	})

	t.Run("PriceRangeInclusive", func(t *testing.T) {
		res := catalog.Search(fixture(), catalog.QuerySpec{MinPrice: 1599, MaxPrice: 1899})
		require.Len(t, res.Items, 2)
		assert.Equal(t, "p1", res.Items[0].ID)
		assert.Equal(t, "p2", res.Items[1].ID)
	})

	t.Run("Pagination", func(t *testing.T) {
		var products []catalog.Product
		for i := 1; i <= 12; i++ {
			products = append(products, catalog.Product{ID: fmt.Sprintf("p%02d", i), Price: int64(i)})
		}

		page1 := catalog.Search(products, catalog.QuerySpec{Page: 1, PageSize: 8})
		assert.Len(t, page1.Items, 8)
		assert.Equal(t, "p01", page1.Items[0].ID)
		assert.Equal(t, 12, page1.TotalCount)
		assert.Equal(t, 2, page1.PageCount)

		page2 := catalog.Search(products, catalog.QuerySpec{Page: 2, PageSize: 8})
		assert.Len(t, page2.Items, 4)
		assert.Equal(t, "p09", page2.Items[0].ID)

		page3 := catalog.Search(products, catalog.QuerySpec{Page: 3, PageSize: 8})
		assert.Empty(t, page3.Items)
		assert.Equal(t, 2, page3.PageCount)
	})

	t.Run("EmptyResultHasOnePage", func(t *testing.T) {
		res := catalog.Search(fixture(), catalog.QuerySpec{Category: "kids"})
		assert.Zero(t, res.TotalCount)
		assert.Equal(t, 1, res.PageCount)
		assert.Empty(t, res.Items)
	})

	t.Run("NameSortIsStableForEqualTitles", func(t *testing.T) {
		products := []catalog.Product{
			{ID: "a", Title: "Polo", Price: 1},
			{ID: "b", Title: "Polo", Price: 2},
			{ID: "c", Title: "Blazer", Price: 3},
		}
		res := catalog.Search(products, catalog.QuerySpec{Sort: catalog.SortNameAsc})
		require.Len(t, res.Items, 3)
		assert.Equal(t, "c", res.Items[0].ID)
		assert.Equal(t, "a", res.Items[1].ID)
		assert.Equal(t, "b", res.Items[2].ID)
	})

	t.Run("InputIsNeverReordered", func(t *testing.T) {
		products := fixture()
		_ = catalog.Search(products, catalog.QuerySpec{Sort: catalog.SortPriceAsc})
		var ids []string
		for _, p := range products {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, ids)
	})

	t.Run("DeterministicForSameInputs", func(t *testing.T) {
		spec := catalog.QuerySpec{Category: "men", Sort: catalog.SortPriceDesc, Page: 1, PageSize: 2}
		first := catalog.Search(fixture(), spec)
		second := catalog.Search(fixture(), spec)
		assert.Equal(t, first, second)
	})
}
