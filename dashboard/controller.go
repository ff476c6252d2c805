package dashboard

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/status-im/market-dashboard/events"
	"github.com/status-im/market-dashboard/interfaces"
	"github.com/status-im/market-dashboard/metrics"
	"github.com/status-im/market-dashboard/scheduler"
	"github.com/status-im/market-dashboard/viewstate"
)

// Controller is the single writer of dashboard state. HTTP handlers call its
// transitions; the refresh scheduler calls LoadMarketData.
type Controller struct {
	client    interfaces.IMarketDataClient
	favorites interfaces.IFavoritesStore
	perPage   int
	scheduler *scheduler.Scheduler

	mu           sync.RWMutex
	runCtx       context.Context
	state        viewstate.State
	coins        []interfaces.CoinSummary
	loading      bool
	errorMessage string
	lastUpdated  time.Time

	// startedSeq numbers every load; appliedSeq is the newest load whose result was stored
	startedSeq uint64
	appliedSeq uint64

	listeners            events.Listeners
	unsubscribeFavorites func()
}

// NewController creates a controller that fetches perPage coins every refreshInterval
func NewController(client interfaces.IMarketDataClient, favorites interfaces.IFavoritesStore, perPage int, refreshInterval time.Duration) *Controller {
	c := &Controller{
		client:    client,
		favorites: favorites,
		perPage:   perPage,
		state:     viewstate.Default(),
		loading:   true,
	}
	c.scheduler = scheduler.New(refreshInterval, func(ctx context.Context) {
		c.LoadMarketData(ctx)
	})
	return c
}

// Start subscribes to favorites changes and starts the refresh loop with an
// immediate first fetch.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	c.runCtx = ctx
	c.mu.Unlock()

	c.unsubscribeFavorites = c.favorites.Subscribe(c.onFavoritesChanged)

	log.Printf("Dashboard: Refreshing %d coins every %s", c.perPage, c.scheduler.Interval())
	c.scheduler.Start(ctx, true)
	return nil
}

// Stop ends the refresh loop and the favorites subscription
func (c *Controller) Stop() {
	c.scheduler.Stop()
	if c.unsubscribeFavorites != nil {
		c.unsubscribeFavorites()
	}
}

// OnChange registers cb to run after every state change. It returns the unsubscribe function.
func (c *Controller) OnChange(cb func()) func() {
	return c.listeners.Add(cb)
}

// LoadMarketData fetches the current page. A response is dropped when a newer
// load has already been applied, so a slow request cannot overwrite fresher data.
func (c *Controller) LoadMarketData(ctx context.Context) {
	c.mu.Lock()
	c.startedSeq++
	seq := c.startedSeq
	page := c.state.Page
	c.loading = true
	c.errorMessage = ""
	c.mu.Unlock()

	start := time.Now()
	result := c.client.FetchMarketData(ctx, page, c.perPage)
	metrics.RecordDataFetchCycle(time.Since(start))

	if !result.IsOk() && errors.Is(ctx.Err(), context.Canceled) {
		// superseded by a restart or shutdown; the next load owns the state
		return
	}

	c.mu.Lock()
	if seq < c.appliedSeq {
		c.mu.Unlock()
		metrics.RecordStaleResponse()
		log.Printf("Dashboard: Dropping stale response for page %d", page)
		return
	}
	c.appliedSeq = seq
	c.loading = seq < c.startedSeq

	if result.IsOk() {
		c.coins = result.Value
		c.lastUpdated = time.Now()
	} else {
		log.Printf("Dashboard: %v", result.Err)
		c.errorMessage = result.Err.Message
	}
	c.mu.Unlock()

	c.notify()
}

// SetTab switches between the market and favorites lists
func (c *Controller) SetTab(tab viewstate.Tab) {
	c.update(func(s *viewstate.State) { s.Tab = tab })
}

// SetQuery sets the search text
func (c *Controller) SetQuery(query string) {
	c.update(func(s *viewstate.State) { s.Query = query })
}

// ToggleSort selects field or flips its direction
func (c *Controller) ToggleSort(field viewstate.SortField) {
	c.update(func(s *viewstate.State) { s.ToggleSort(field) })
}

// NextPage moves to the next page and restarts the refresh loop, which fetches it immediately
func (c *Controller) NextPage() {
	c.update(func(s *viewstate.State) { s.NextPage() })
	c.restart()
}

// PrevPage moves to the previous page; on the first page it does nothing
func (c *Controller) PrevPage() {
	changed := false
	c.update(func(s *viewstate.State) { changed = s.PrevPage() })
	if changed {
		c.restart()
	}
}

// ToggleFavorite flips the favorite state of id and returns the new state.
// The controller learns about the change through its favorites subscription.
func (c *Controller) ToggleFavorite(id string) bool {
	return c.favorites.ToggleFavorite(id)
}

// ClearFavorites removes every favorite
func (c *Controller) ClearFavorites() {
	c.favorites.ClearFavorites()
}

// SelectCoin fetches the details of id for the page being rendered. The modal
// lives only in that render, so every tab keeps its own and no listener is notified.
func (c *Controller) SelectCoin(ctx context.Context, id string) DetailSnapshot {
	detail := DetailSnapshot{CoinID: id}

	result := c.client.FetchCoinDetail(ctx, id)
	if !result.IsOk() {
		log.Printf("Dashboard: %v", result.Err)
		detail.Error = result.Err.Message
		return detail
	}

	coin := result.Value
	detail.Coin = &coin
	return detail
}

// SnapshotWithDetail returns Snapshot with the detail modal of id open
func (c *Controller) SnapshotWithDetail(ctx context.Context, id string) Snapshot {
	detail := c.SelectCoin(ctx, id)
	snapshot := c.Snapshot()
	snapshot.Detail = &detail
	return snapshot
}

// Refresh reloads the current page on the controller's own context, so the
// load completes even if the request that asked for it goes away.
func (c *Controller) Refresh() {
	c.mu.RLock()
	ctx := c.runCtx
	c.mu.RUnlock()

	if ctx == nil {
		ctx = context.Background()
	}
	c.LoadMarketData(ctx)
}

// Snapshot returns a copy of the current state with the derived list. Favorites
// are read from the store on every call.
func (c *Controller) Snapshot() Snapshot {
	favoriteIDs := c.favorites.GetFavorites()

	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := Snapshot{
		State:          c.state,
		Coins:          c.state.Apply(c.coins, favoriteIDs),
		LoadedCount:    len(c.coins),
		Loading:        c.loading,
		Error:          c.errorMessage,
		Favorites:      favoriteIDs,
		ShowPagination: c.state.ShowPagination(),
		PerPage:        c.perPage,
		LastUpdated:    c.lastUpdated,
	}

	return snapshot
}

func (c *Controller) onFavoritesChanged() {
	c.notify()
}

func (c *Controller) update(fn func(s *viewstate.State)) {
	c.mu.Lock()
	fn(&c.state)
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) restart() {
	c.mu.RLock()
	ctx := c.runCtx
	c.mu.RUnlock()

	if ctx == nil {
		return
	}
	c.scheduler.Restart(ctx, true)
}

func (c *Controller) notify() {
	c.listeners.Notify()
}
