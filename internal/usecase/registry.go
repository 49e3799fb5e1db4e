package usecase

import (
	"sync"
	"time"

	"earnhub/internal/adapter/repository"
	"earnhub/internal/domain/entity"
	"earnhub/internal/infrastructure/platform"
)

// Sessions abandoned without a logout (opaque token, browser just closed)
// are swept once their mirrors have sat unused this long.
const sessionIdleTTL = 12 * time.Hour

// ContextSet bundles the domain contexts of one authenticated session. All
// four share the same bearer credential; exactly one identity is
// authoritative for the whole set at any time.
type ContextSet struct {
	Data     *DataUseCase
	Products *ProductUseCase
	Ratings  *RatingUseCase
	Fund     *FundUseCase
	User     *UserUseCase
	Admin    *AdminUseCase
}

// ContextRegistry builds and caches a ContextSet per session token, so page
// loads within one session reuse the same local mirrors. Logout invalidates
// the whole set: no domain data survives a session change.
type ContextRegistry struct {
	base     *platform.Client
	notifier TicketNotifier
	mu       sync.Mutex
	sets     map[string]*registryEntry
}

type registryEntry struct {
	set      *ContextSet
	lastUsed time.Time
}

func NewContextRegistry(base *platform.Client, notifier TicketNotifier) *ContextRegistry {
	r := &ContextRegistry{
		base:     base,
		notifier: notifier,
		sets:     make(map[string]*registryEntry),
	}

	go r.cleanup()

	return r
}

// For returns the context set for the given session, building it on first
// use. Each context receives its credential source and remote client by
// construction rather than through any ambient state.
func (r *ContextRegistry) For(bearer string, user entity.Identity) *ContextSet {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.sets[bearer]; ok {
		entry.lastUsed = time.Now()
		return entry.set
	}

	client := r.base.WithToken(platform.StaticToken(bearer))

	set := &ContextSet{
		Data: NewDataUseCase(
			repository.NewRestAdRepository(client),
			repository.NewRestTransactionRepository(client),
			repository.NewRestTicketRepository(client),
			r.notifier,
			user,
		),
		Products: NewProductUseCase(repository.NewRestProductRepository(client), user),
		Ratings:  NewRatingUseCase(repository.NewRestRatingRepository(client), user),
		Fund: NewFundUseCase(
			repository.NewRestPayoutRepository(client),
			repository.NewRestFundRepository(client),
			user,
		),
		User:  NewUserUseCase(repository.NewRestUserRepository(client)),
		Admin: NewAdminUseCase(repository.NewRestAdminRepository(client)),
	}

	r.sets[bearer] = &registryEntry{set: set, lastUsed: time.Now()}
	return set
}

func (r *ContextRegistry) cleanup() {
	for {
		time.Sleep(time.Hour)
		r.evictIdle(time.Now())
	}
}

// evictIdle drops mirrors that no request has touched within the TTL. A
// swept session is not signed out: its next request rebuilds the set.
func (r *ContextRegistry) evictIdle(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for bearer, entry := range r.sets {
		if now.Sub(entry.lastUsed) > sessionIdleTTL {
			delete(r.sets, bearer)
		}
	}
}

// Invalidate drops every cached mirror belonging to the session token.
func (r *ContextRegistry) Invalidate(bearer string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sets, bearer)
}

// Active reports how many sessions currently hold cached mirrors.
func (r *ContextRegistry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sets)
}
