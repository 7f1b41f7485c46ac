package client

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpath/reflect-client/internal/cache"
	"github.com/nurpath/reflect-client/internal/countdown"
	"github.com/nurpath/reflect-client/internal/rules"
	"github.com/nurpath/reflect-client/internal/types"
)

// Engine is the reflection progress engine. It owns the in-memory profile
// and session, drives the countdown, and reconciles the local cache with the
// backend after every mutating action. The backend is the source of truth
// post-hydration; the cache only bridges the gap until the next fetch.
//
// Engine methods are safe for concurrent use, but mutating operations
// (StartReflection, MarkAsRead, SetWeeklyGoal) reject - not queue -
// overlapping calls with ErrOperationInProgress.
type Engine struct {
	api    *Client
	store  cache.Store
	events Events
	log    zerolog.Logger
	cfg    Config
	now    func() time.Time

	mu      sync.Mutex
	profile types.Profile
	session types.Session
	gen     uint64 // session generation; stale countdown callbacks are dropped
	timer   *countdown.Timer

	busy       uint32 // one mutating operation at a time
	closedOnce uint32
}

// NewEngine constructs an Engine over an API client and a cache store.
// The caller keeps ownership of the store and closes it after the engine.
func NewEngine(api *Client, store cache.Store, opts ...EngineOption) *Engine {
	if api == nil {
		panic("api client cannot be nil")
	}
	if store == nil {
		panic("cache store cannot be nil")
	}
	e := &Engine{
		api:    api,
		store:  store,
		events: NopEvents{},
		log:    zerolog.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.cfg.TickInterval <= 0 {
		e.cfg.TickInterval = time.Second
	}
	return e
}

// Profile returns a snapshot of the current profile.
func (e *Engine) Profile() Profile {
	e.mu.Lock()
	defer e.mu.Unlock()
	p := e.profile
	p.CompletedSummaryIDs = append([]string(nil), e.profile.CompletedSummaryIDs...)
	return p
}

// Session returns a snapshot of the current session.
func (e *Engine) Session() Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// MaxAllowedGoal returns the weekly-goal ceiling for the hydrated archive size.
func (e *Engine) MaxAllowedGoal() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return rules.MaxAllowedGoal(e.profile.KhutbahCount)
}

// Hydrate loads cached profile fields into memory immediately, then fetches
// the authoritative stats and overwrites every field, re-persisting the
// cache. A remote failure is non-fatal: the cached values stay in effect and
// the classified error is returned for the consumer to surface.
func (e *Engine) Hydrate(ctx context.Context, userID string) error {
	if err := types.ValidateUserID(userID); err != nil {
		return err
	}

	// Cached snapshot first so the consumer can render instantly.
	if vals, err := e.store.GetMany(ctx, cache.Keys()); err != nil {
		e.log.Warn().Err(err).Msg("hydrate: cache read failed, starting from zero values")
	} else {
		e.mu.Lock()
		e.applyCached(userID, vals)
		e.mu.Unlock()
	}

	khutbahs, err := e.api.ListKhutbahs(ctx, userID)
	if err != nil {
		hydrationFailuresTotal.Inc()
		e.log.Warn().Err(err).Str("user_id", userID).Msg("hydrate: archive fetch failed, cached values remain")
		return err
	}
	stats, err := e.api.UserStats(ctx, userID)
	if err != nil {
		hydrationFailuresTotal.Inc()
		e.log.Warn().Err(err).Str("user_id", userID).Msg("hydrate: stats fetch failed, cached values remain")
		return err
	}
	refl, err := e.api.ReflectionsCount(ctx, userID)
	if err != nil {
		hydrationFailuresTotal.Inc()
		e.log.Warn().Err(err).Str("user_id", userID).Msg("hydrate: reflections fetch failed, cached values remain")
		return err
	}

	e.mu.Lock()
	p := &e.profile
	p.UserID = userID
	p.KhutbahCount = len(khutbahs)
	p.ReflectionsCount = refl.ReflectionsCount
	p.WeeklyProgress = stats.WeeklyProgress
	if stats.WeeklyBest != nil {
		p.WeeklyBest = *stats.WeeklyBest
	}
	p.NurbitCount = stats.Nurbits
	p.CurrentGoal = stats.CurrentGoal
	p.CompletedSummaryIDs = append([]string(nil), stats.Completed...)
	p.LastGoalSet = stats.LastGoalSet
	p.GoalReached = stats.GoalReached

	completed, _ := json.Marshal(p.CompletedSummaryIDs)
	kvs := map[string]string{
		cache.KeyWeeklyProgress:     strconv.Itoa(p.WeeklyProgress),
		cache.KeyNurbitCount:        strconv.Itoa(p.NurbitCount),
		cache.KeyCurrentGoal:        strconv.Itoa(p.CurrentGoal),
		cache.KeyCompletedSummaries: string(completed),
		cache.KeyLastGoalSet:        p.LastGoalSet,
	}
	if stats.WeeklyBest != nil {
		kvs[cache.KeyWeeklyBest] = strconv.Itoa(p.WeeklyBest)
	}
	e.mu.Unlock()

	if err := e.store.SetMany(ctx, kvs); err != nil {
		e.log.Error().Err(err).Msg("hydrate: cache persist failed")
	}
	hydrationsTotal.Inc()
	return nil
}

// StartReflection requests a reflection prompt and, on a timed reply, starts
// the countdown. Local rejections (no user, empty archive, session already
// counting or awaiting acknowledgement) happen without a network call.
func (e *Engine) StartReflection(ctx context.Context) error {
	if !e.begin() {
		return types.ErrOperationInProgress
	}
	defer e.end()

	e.mu.Lock()
	userID := e.profile.UserID
	khutbahCount := e.profile.KhutbahCount
	state := e.session.State
	e.mu.Unlock()

	if err := types.ValidateUserID(userID); err != nil {
		return err
	}
	if khutbahCount == 0 {
		// Nothing to reflect on until a khutbah is uploaded.
		return types.ErrNoContent
	}
	if state == types.SessionCounting || state == types.SessionAwaitingAck {
		return types.ErrOperationInProgress
	}

	resp, err := e.api.StartReflection(ctx, userID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.profile.GoalReached = resp.GoalReached

	if resp.Placeholder {
		e.gen++
		e.session = types.Session{
			State:       types.SessionPlaceholder,
			SummaryID:   resp.SummaryID,
			SummaryText: resp.Summary,
			Placeholder: true,
		}
		s := e.session
		e.mu.Unlock()
		e.events.SessionChanged(s)
		return nil
	}

	if resp.Summary == "" || resp.Timer <= 0 {
		e.mu.Unlock()
		return types.ErrIncompleteResponse
	}

	e.gen++
	gen := e.gen
	e.session = types.Session{
		State:            types.SessionCounting,
		SummaryID:        resp.SummaryID,
		SummaryText:      resp.Summary,
		RemainingSeconds: resp.Timer,
	}
	e.timer = countdown.Start(resp.Timer, e.cfg.TickInterval, e.now,
		func(remaining int) { e.onTick(gen, remaining) },
		func() { e.onCountdownDone(gen) },
	)
	s := e.session
	e.mu.Unlock()

	reflectionsStartedTotal.Inc()
	e.events.SessionChanged(s)
	return nil
}

// MarkAsRead acknowledges the finished reflection and submits it for reward
// accrual. The completed-summary append is optimistic and is not rolled back
// on a failed submission; the session stays AwaitingAck so the user can
// retry. RewardGranted fires exactly once per submission whose nurbit total
// strictly increased.
func (e *Engine) MarkAsRead(ctx context.Context) error {
	if !e.begin() {
		return types.ErrOperationInProgress
	}
	defer e.end()

	e.mu.Lock()
	if e.session.State != types.SessionAwaitingAck || e.session.Placeholder {
		e.mu.Unlock()
		return types.ErrNoPendingReflection
	}
	userID := e.profile.UserID
	summaryID := e.session.SummaryID
	summaryText := e.session.SummaryText
	prevNurbits := e.profile.NurbitCount
	if !e.profile.HasCompleted(summaryID) {
		e.profile.CompletedSummaryIDs = append(e.profile.CompletedSummaryIDs, summaryID)
	}
	completed, _ := json.Marshal(e.profile.CompletedSummaryIDs)
	e.mu.Unlock()

	if err := e.store.Set(ctx, cache.KeyCompletedSummaries, string(completed)); err != nil {
		e.log.Error().Err(err).Msg("mark as read: cache persist failed")
	}

	resp, err := e.api.SaveReflection(ctx, types.SaveReflectionRequest{
		UserID:     userID,
		SummaryID:  summaryID,
		Reflection: summaryText,
	}, uuid.NewString())
	if err != nil {
		submissionFailuresTotal.Inc()
		return err
	}

	e.mu.Lock()
	p := &e.profile
	p.WeeklyProgress = resp.WeeklyProgress
	p.CurrentGoal = resp.Goal
	p.NurbitCount = resp.Nurbits
	p.ReflectionsCount = resp.TotalReflection
	p.GoalReached = p.CurrentGoal > 0 && p.WeeklyProgress >= p.CurrentGoal
	e.gen++
	e.session = types.Session{}
	s := e.session
	kvs := map[string]string{
		cache.KeyWeeklyProgress: strconv.Itoa(p.WeeklyProgress),
		cache.KeyNurbitCount:    strconv.Itoa(p.NurbitCount),
		cache.KeyCurrentGoal:    strconv.Itoa(p.CurrentGoal),
	}
	e.mu.Unlock()

	if err := e.store.SetMany(ctx, kvs); err != nil {
		e.log.Error().Err(err).Msg("mark as read: counter persist failed")
	}
	reflectionsCompletedTotal.Inc()
	e.events.SessionChanged(s)
	if resp.Nurbits > prevNurbits {
		rewardsGrantedTotal.Inc()
		e.events.RewardGranted(resp.Nurbits, resp.Nurbits-prevNurbits)
	}
	return nil
}

// SetWeeklyGoal validates and records the weekly reflections goal.
// Validation failures never reach the network.
func (e *Engine) SetWeeklyGoal(ctx context.Context, goal int) error {
	if !e.begin() {
		return types.ErrOperationInProgress
	}
	defer e.end()

	e.mu.Lock()
	userID := e.profile.UserID
	khutbahCount := e.profile.KhutbahCount
	e.mu.Unlock()

	if err := types.ValidateUserID(userID); err != nil {
		return err
	}
	if goal <= 0 {
		return types.ErrInvalidGoal
	}
	if !rules.InSettingWindow(e.now()) {
		return types.ErrOutsideSettingWindow
	}
	if goal > rules.MaxAllowedGoal(khutbahCount) {
		return types.ErrGoalExceedsMaximum
	}

	if _, err := e.api.SetIntention(ctx, userID, goal); err != nil {
		return err
	}

	setAt := e.now().UTC().Format(time.RFC3339)
	e.mu.Lock()
	e.profile.CurrentGoal = goal
	e.profile.LastGoalSet = setAt
	e.mu.Unlock()

	kvs := map[string]string{
		cache.KeyCurrentGoal: strconv.Itoa(goal),
		cache.KeyLastGoalSet: setAt,
	}
	if err := e.store.SetMany(ctx, kvs); err != nil {
		e.log.Error().Err(err).Msg("set weekly goal: cache persist failed")
	}
	return nil
}

// Abandon discards any in-flight session without contacting the server.
// The countdown is released; no mark-as-read opportunity is emitted.
func (e *Engine) Abandon() {
	e.mu.Lock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	changed := e.session.State != types.SessionIdle
	if changed {
		e.gen++
		e.session = types.Session{}
	}
	s := e.session
	e.mu.Unlock()

	if changed {
		e.events.SessionChanged(s)
	}
}

// Reset clears all local state on logout: the session is discarded, the
// profile zeroed and the cache wiped. The server is not contacted.
func (e *Engine) Reset(ctx context.Context) error {
	e.Abandon()
	e.mu.Lock()
	e.profile = types.Profile{}
	e.mu.Unlock()
	return e.store.Clear(ctx)
}

// Close releases the countdown timer (if any). Safe to call multiple times.
func (e *Engine) Close() error {
	if !atomic.CompareAndSwapUint32(&e.closedOnce, 0, 1) {
		return nil
	}
	e.Abandon()
	return nil
}

// ------------------------- internals -------------------------

// begin claims the single mutating-operation slot.
func (e *Engine) begin() bool {
	return atomic.CompareAndSwapUint32(&e.busy, 0, 1)
}

func (e *Engine) end() {
	atomic.StoreUint32(&e.busy, 0)
}

// applyCached fills the profile from cached values. Missing or malformed
// entries keep their zero values; the authoritative fetch corrects them.
func (e *Engine) applyCached(userID string, vals map[string]string) {
	p := &e.profile
	p.UserID = userID
	if n, err := strconv.Atoi(vals[cache.KeyWeeklyProgress]); err == nil {
		p.WeeklyProgress = n
	}
	if n, err := strconv.Atoi(vals[cache.KeyNurbitCount]); err == nil {
		p.NurbitCount = n
	}
	if n, err := strconv.Atoi(vals[cache.KeyCurrentGoal]); err == nil {
		p.CurrentGoal = n
	}
	if n, err := strconv.Atoi(vals[cache.KeyWeeklyBest]); err == nil {
		p.WeeklyBest = n
	}
	if v, ok := vals[cache.KeyCompletedSummaries]; ok {
		var ids []string
		if err := json.Unmarshal([]byte(v), &ids); err == nil {
			p.CompletedSummaryIDs = ids
		}
	}
	if v, ok := vals[cache.KeyLastGoalSet]; ok {
		p.LastGoalSet = v
	}
}

// onTick runs on the countdown goroutine once per tick.
func (e *Engine) onTick(gen uint64, remaining int) {
	e.mu.Lock()
	if gen != e.gen || e.session.State != types.SessionCounting {
		e.mu.Unlock()
		return
	}
	e.session.RemainingSeconds = remaining
	s := e.session
	e.mu.Unlock()
	e.events.SessionChanged(s)
}

// onCountdownDone transitions Counting to AwaitingAck exactly once.
func (e *Engine) onCountdownDone(gen uint64) {
	e.mu.Lock()
	if gen != e.gen || e.session.State != types.SessionCounting {
		e.mu.Unlock()
		return
	}
	e.session.State = types.SessionAwaitingAck
	e.session.RemainingSeconds = 0
	e.timer = nil
	s := e.session
	e.mu.Unlock()
	e.events.SessionChanged(s)
}
