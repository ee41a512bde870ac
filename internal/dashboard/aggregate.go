package dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/perfectbooks/stock-api/pkg/db/models"
)

// fallbackCategory is where blank categories are folded during aggregation.
const fallbackCategory = "Uncategorized"

// chartPalette cycles when there are more categories than colors.
var chartPalette = []string{
	"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF", "#FF9F40",
}

// CategoryCount is one category's share of the inventory, by total quantity.
type CategoryCount struct {
	Category string
	Quantity int
}

// CategoryDistribution sums book quantities per category in first-seen
// order. Blank categories fold into the Uncategorized bucket.
func CategoryDistribution(books []models.Book) []CategoryCount {
	index := map[string]int{}
	var dist []CategoryCount
	for _, book := range books {
		category := book.Category
		if category == "" {
			category = fallbackCategory
		}
		pos, ok := index[category]
		if !ok {
			pos = len(dist)
			index[category] = pos
			dist = append(dist, CategoryCount{Category: category})
		}
		dist[pos].Quantity += book.Quantity
	}
	return dist
}

// RankDistribution orders categories by quantity descending and folds
// everything past topN into an Others bucket. Ties keep first-seen order.
func RankDistribution(dist []CategoryCount, topN int) []CategoryCount {
	ranked := make([]CategoryCount, len(dist))
	copy(ranked, dist)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})

	if topN <= 0 || len(ranked) <= topN {
		return ranked
	}

	others := CategoryCount{Category: "Others"}
	for _, entry := range ranked[topN:] {
		others.Quantity += entry.Quantity
	}
	return append(ranked[:topN:topN], others)
}

// PaletteColors returns n chart colors, cycling the palette as needed.
func PaletteColors(n int) []string {
	colors := make([]string, 0, n)
	for i := 0; i < n; i++ {
		colors = append(colors, chartPalette[i%len(chartPalette)])
	}
	return colors
}

// TimeAgo renders a coarse human-readable age for a feed entry. offset
// shifts the rendered age for deployments whose DB clock is skewed from
// the display timezone.
func TimeAgo(ts, now time.Time, offset time.Duration) string {
	elapsed := now.Sub(ts) + offset
	minutes := int(elapsed.Milliseconds() / 1000 / 60)
	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return pluralize(minutes, "minute")
	case minutes < 60*24:
		return pluralize(minutes/60, "hour")
	default:
		return pluralize(minutes/(60*24), "day")
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
