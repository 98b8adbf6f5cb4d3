package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"supplier_report/internal/adapter/navigation"
	"supplier_report/internal/adapter/notification"
	"supplier_report/internal/domain/entities"
	"supplier_report/internal/logger"
	"supplier_report/internal/usecase/interfaces"
)

var (
	ErrSessionNotFound   = errors.New("report session not found")
	ErrInvalidSessionID  = errors.New("invalid session_id")
	ErrUnknownAction     = errors.New("unknown report action")
	ErrNoHistoryEntry    = errors.New("no history entry in that direction")
	ErrInvalidProviderID = errors.New("invalid provider_id")
	ErrInvalidDebtID     = errors.New("invalid debt_id")
	ErrInvalidPaymentID  = errors.New("invalid payment_id")
)

// IReportSessionUseCase drives payment report sessions. Every call that
// changes a session waits (bounded by the wait timeout) for the loads it
// triggered and returns the resulting session.
type IReportSessionUseCase interface {
	Open(ctx context.Context, initial url.Values) (entities.ReportSession, error)
	Get(ctx context.Context, sessionID string) (entities.ReportSession, error)
	Navigate(ctx context.Context, sessionID string, query url.Values) (entities.ReportSession, error)
	Back(ctx context.Context, sessionID string) (entities.ReportSession, error)
	Forward(ctx context.Context, sessionID string) (entities.ReportSession, error)
	Apply(ctx context.Context, sessionID string, action entities.SessionAction) (entities.ReportSession, error)
	Export(ctx context.Context, sessionID string) (entities.ExportFile, error)
	DeletePayment(ctx context.Context, sessionID string, paymentID int64, reason string) (entities.ReportSession, error)
	SharePayment(ctx context.Context, sessionID string, paymentID int64) (entities.SharedPayment, error)
	DeleteDebt(ctx context.Context, sessionID string, debtID int64) error
	Close(ctx context.Context, sessionID string) error
}

type SessionConfig struct {
	PageSize    int
	Location    *time.Location
	WaitTimeout time.Duration
}

type reportSession struct {
	id        string
	createdAt time.Time
	loop      *ReconciliationLoop
	history   *navigation.History
	notes     *notification.Buffer
	stop      func()
}

type ReportSessionUseCase struct {
	gateway interfaces.IReportGateway
	cfg     SessionConfig
	now     func() time.Time
	log     zerolog.Logger
	loopOpt []LoopOption

	mu       sync.RWMutex
	sessions map[string]*reportSession
}

var _ IReportSessionUseCase = (*ReportSessionUseCase)(nil)

func NewReportSessionUseCase(gateway interfaces.IReportGateway, cfg SessionConfig, opts ...LoopOption) *ReportSessionUseCase {
	if cfg.PageSize <= 0 {
		cfg.PageSize = entities.DefaultPageSize
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.WaitTimeout <= 0 {
		cfg.WaitTimeout = 5 * time.Second
	}
	return &ReportSessionUseCase{
		gateway:  gateway,
		cfg:      cfg,
		now:      time.Now,
		log:      logger.WithComponent("report-session"),
		loopOpt:  opts,
		sessions: map[string]*reportSession{},
	}
}

func (u *ReportSessionUseCase) Open(ctx context.Context, initial url.Values) (entities.ReportSession, error) {
	if initial == nil {
		initial = url.Values{}
	}
	id := uuid.NewString()
	log := logger.WithSession("report-loop", id)
	notes := notification.NewBuffer(notification.DefaultCapacity, log)
	history := navigation.NewHistory(initial)
	store := NewReportStateStore(u.cfg.PageSize, u.cfg.Location)

	opts := append([]LoopOption{WithLogger(log), WithClock(u.now)}, u.loopOpt...)
	loop := NewReconciliationLoop(store, u.gateway, history, notes, opts...)
	unsubscribe := history.Subscribe(loop.HandleNavigation)

	s := &reportSession{
		id:        id,
		createdAt: u.now(),
		loop:      loop,
		history:   history,
		notes:     notes,
		stop: func() {
			unsubscribe()
			loop.Close()
		},
	}

	u.mu.Lock()
	u.sessions[id] = s
	u.mu.Unlock()

	u.log.Info().Str("session_id", id).Str("query", initial.Encode()).Msg("report session opened")
	loop.Start(ctx, initial)
	return u.settle(ctx, s), nil
}

func (u *ReportSessionUseCase) Get(ctx context.Context, sessionID string) (entities.ReportSession, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.ReportSession{}, err
	}
	return u.settle(ctx, s), nil
}

// Navigate is an external navigation to query (a history push).
func (u *ReportSessionUseCase) Navigate(ctx context.Context, sessionID string, query url.Values) (entities.ReportSession, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.ReportSession{}, err
	}
	if err := s.history.Push(ctx, query); err != nil {
		return entities.ReportSession{}, fmt.Errorf("report_session.Navigate: %w", err)
	}
	return u.settle(ctx, s), nil
}

func (u *ReportSessionUseCase) Back(ctx context.Context, sessionID string) (entities.ReportSession, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.ReportSession{}, err
	}
	if !s.history.Back(ctx) {
		return entities.ReportSession{}, ErrNoHistoryEntry
	}
	return u.settle(ctx, s), nil
}

func (u *ReportSessionUseCase) Forward(ctx context.Context, sessionID string) (entities.ReportSession, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.ReportSession{}, err
	}
	if !s.history.Forward(ctx) {
		return entities.ReportSession{}, ErrNoHistoryEntry
	}
	return u.settle(ctx, s), nil
}

func (u *ReportSessionUseCase) Apply(ctx context.Context, sessionID string, action entities.SessionAction) (entities.ReportSession, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.ReportSession{}, err
	}
	loop := s.loop

	switch action.Kind {
	case entities.ActionChangeProvider:
		if action.ID < 0 {
			return entities.ReportSession{}, ErrInvalidProviderID
		}
		loop.ChangeProvider(ctx, action.ID)
	case entities.ActionChangeDebt:
		if action.ID < 0 {
			return entities.ReportSession{}, ErrInvalidDebtID
		}
		if err := loop.ChangeDebt(ctx, action.ID); err != nil {
			return entities.ReportSession{}, err
		}
	case entities.ActionChangePage:
		loop.ChangePage(ctx, action.Page)
	case entities.ActionChangePageSize:
		loop.ChangePageSize(ctx, action.Page)
	case entities.ActionChangeDateRange:
		loop.ChangeDateRange(ctx, action.DateRange)
	case entities.ActionChangePeriod:
		loop.ChangePeriod(ctx, action.Period)
	case entities.ActionChangeDeleteFilter:
		loop.ChangeDeleteFilter(ctx, action.DeleteFilter)
	case entities.ActionClearFilters:
		loop.ClearFilters(ctx)
	case entities.ActionRefresh:
		if err := loop.Refresh(ctx); err != nil {
			return entities.ReportSession{}, err
		}
	default:
		return entities.ReportSession{}, ErrUnknownAction
	}
	return u.settle(ctx, s), nil
}

func (u *ReportSessionUseCase) Export(ctx context.Context, sessionID string) (entities.ExportFile, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return entities.ExportFile{}, err
	}
	return s.loop.Export(ctx)
}

func (u *ReportSessionUseCase) DeletePayment(ctx context.Context, sessionID string, paymentID int64, reason string) (entities.ReportSession, error) {
	if paymentID <= 0 {
		return entities.ReportSession{}, ErrInvalidPaymentID
	}
	s, err := u.session(sessionID)
	if err != nil {
		return entities.ReportSession{}, err
	}
	if err := s.loop.DeletePayment(ctx, paymentID, reason); err != nil {
		return entities.ReportSession{}, err
	}
	return u.settle(ctx, s), nil
}

func (u *ReportSessionUseCase) SharePayment(ctx context.Context, sessionID string, paymentID int64) (entities.SharedPayment, error) {
	if paymentID <= 0 {
		return entities.SharedPayment{}, ErrInvalidPaymentID
	}
	s, err := u.session(sessionID)
	if err != nil {
		return entities.SharedPayment{}, err
	}
	return s.loop.SharePayment(ctx, paymentID)
}

func (u *ReportSessionUseCase) DeleteDebt(ctx context.Context, sessionID string, debtID int64) error {
	if debtID <= 0 {
		return ErrInvalidDebtID
	}
	s, err := u.session(sessionID)
	if err != nil {
		return err
	}
	return s.loop.DeleteDebt(ctx, debtID)
}

func (u *ReportSessionUseCase) Close(_ context.Context, sessionID string) error {
	id := strings.TrimSpace(sessionID)
	if id == "" {
		return ErrInvalidSessionID
	}
	u.mu.Lock()
	s, ok := u.sessions[id]
	delete(u.sessions, id)
	u.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	s.stop()
	u.log.Info().Str("session_id", id).Msg("report session closed")
	return nil
}

// CloseAll stops every open session.
func (u *ReportSessionUseCase) CloseAll() {
	u.mu.Lock()
	sessions := u.sessions
	u.sessions = map[string]*reportSession{}
	u.mu.Unlock()
	for _, s := range sessions {
		s.stop()
	}
	u.log.Info().Int("sessions", len(sessions)).Msg("report sessions closed")
}

// Len is the number of open sessions.
func (u *ReportSessionUseCase) Len() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.sessions)
}

func (u *ReportSessionUseCase) session(sessionID string) (*reportSession, error) {
	id := strings.TrimSpace(sessionID)
	if id == "" {
		return nil, ErrInvalidSessionID
	}
	u.mu.RLock()
	s, ok := u.sessions[id]
	u.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// settle waits for in-flight loads (up to the wait timeout) and renders the
// session. A timeout is not an error: the view then reports loading flags.
func (u *ReportSessionUseCase) settle(ctx context.Context, s *reportSession) entities.ReportSession {
	waitCtx, cancel := context.WithTimeout(ctx, u.cfg.WaitTimeout)
	defer cancel()
	if err := s.loop.WaitIdle(waitCtx); err != nil {
		u.log.Warn().Err(err).Str("session_id", s.id).Msg("report session still loading")
	}

	notes := s.notes.Drain()
	if notes == nil {
		notes = []entities.Notification{}
	}
	idx := s.history.Index()
	return entities.ReportSession{
		ID:            s.id,
		View:          s.loop.Store().View(u.now()),
		Notifications: notes,
		CanGoBack:     idx > 0,
		CanGoForward:  idx < s.history.Len()-1,
		CreatedAt:     s.createdAt,
	}
}
