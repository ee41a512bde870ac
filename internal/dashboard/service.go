package dashboard

import (
	"context"
	"time"

	"github.com/perfectbooks/stock-api/pkg/config"
	"github.com/perfectbooks/stock-api/pkg/db/models"
	pkgerrors "github.com/perfectbooks/stock-api/pkg/errors"
)

const chartDatasetLabel = "Number of Books per Category"

// ChartData is the Chart.js-ready category distribution payload.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label           string   `json:"label"`
	Data            []int    `json:"data"`
	BackgroundColor []string `json:"backgroundColor"`
}

// Summary is the dashboard headline card payload.
type Summary struct {
	TotalBooks  int `json:"totalBooks"`
	LowStock    int `json:"lowStock"`
	TotalOrders int `json:"totalOrders"`
}

// ActivityEntry is one row of the recent-activity feed.
type ActivityEntry struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	TimeAgo   string    `json:"timeAgo"`
}

// BookSource lists the inventory the aggregates are computed from.
type BookSource interface {
	List(ctx context.Context) ([]models.Book, error)
}

// OrderSource lists the orders counted by the summary.
type OrderSource interface {
	List(ctx context.Context) ([]models.Order, error)
}

// ActivitySource feeds the recent-activity list.
type ActivitySource interface {
	ListRecent(ctx context.Context, limit int) ([]models.Activity, error)
}

// Service computes the dashboard aggregates, with a cache-aside layer in
// front of the two expensive ones.
type Service interface {
	ChartData(ctx context.Context) (*ChartData, error)
	Summary(ctx context.Context) (*Summary, error)
	Activities(ctx context.Context) ([]ActivityEntry, error)
}

type service struct {
	books      BookSource
	orders     OrderSource
	activities ActivitySource
	cache      *Cache
	cfg        config.DashboardConfig
	now        func() time.Time
}

// NewService wires the dashboard service. cache may be nil when Redis is
// disabled; aggregates are then computed on every request.
func NewService(books BookSource, orders OrderSource, activities ActivitySource, cache *Cache, cfg config.DashboardConfig) Service {
	return &service{
		books:      books,
		orders:     orders,
		activities: activities,
		cache:      cache,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (s *service) ChartData(ctx context.Context) (*ChartData, error) {
	var cached ChartData
	if s.cache.Get(ctx, chartDataCacheName, &cached) {
		return &cached, nil
	}

	books, err := s.books.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing books for chart data")
	}

	ranked := RankDistribution(CategoryDistribution(books), s.cfg.ChartTopCategories)
	data := &ChartData{
		Labels: make([]string, 0, len(ranked)),
		Datasets: []Dataset{{
			Label:           chartDatasetLabel,
			Data:            make([]int, 0, len(ranked)),
			BackgroundColor: PaletteColors(len(ranked)),
		}},
	}
	for _, entry := range ranked {
		data.Labels = append(data.Labels, entry.Category)
		data.Datasets[0].Data = append(data.Datasets[0].Data, entry.Quantity)
	}

	s.cache.Set(ctx, chartDataCacheName, data)
	return data, nil
}

func (s *service) Summary(ctx context.Context) (*Summary, error) {
	var cached Summary
	if s.cache.Get(ctx, summaryCacheName, &cached) {
		return &cached, nil
	}

	books, err := s.books.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing books for summary")
	}
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing orders for summary")
	}

	summary := &Summary{TotalOrders: len(orders)}
	for _, book := range books {
		summary.TotalBooks += book.Quantity
		if book.Quantity < s.cfg.LowStockThreshold {
			summary.LowStock++
		}
	}

	s.cache.Set(ctx, summaryCacheName, summary)
	return summary, nil
}

// Activities is never cached: the feed must reflect a mutation made a
// moment ago.
func (s *service) Activities(ctx context.Context) ([]ActivityEntry, error) {
	entries, err := s.activities.ListRecent(ctx, s.cfg.ActivityFeedLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing activities")
	}

	now := s.now()
	feed := make([]ActivityEntry, 0, len(entries))
	for _, entry := range entries {
		feed = append(feed, ActivityEntry{
			ID:        entry.ID,
			Type:      entry.Type.String(),
			Message:   entry.Message,
			CreatedAt: entry.CreatedAt,
			TimeAgo:   TimeAgo(entry.CreatedAt, now, s.cfg.TimeAgoOffset),
		})
	}
	return feed, nil
}
