package bot

import (
	"context"
	"errors"
	"strings"

	"github.com/americanglobalgroup/parcel-tracker/internal/broadcast"
	"github.com/americanglobalgroup/parcel-tracker/internal/i18n"
	"github.com/americanglobalgroup/parcel-tracker/internal/service"
	"github.com/americanglobalgroup/parcel-tracker/internal/store"
	"github.com/americanglobalgroup/parcel-tracker/internal/tracking"
	"github.com/americanglobalgroup/parcel-tracker/pkg/metrics"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultConcurrentUpdates = 16
	workerQueueSize          = 64
)

// Tracker answers waybill lookups.
type Tracker interface {
	Lookup(ctx context.Context, route tracking.Route, code string, lang i18n.Language) (service.LookupResult, error)
}

// Recorder appends user actions to the audit trail.
type Recorder interface {
	Record(ctx context.Context, action string, userID int64, details string)
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, string, int64, string) {}

type Option func(b *Bot)

func WithCatalog(c *i18n.Catalog) Option {
	return func(b *Bot) {
		b.catalog = c
	}
}

// WithRules sets the rules the example codes are read from.
func WithRules(r *tracking.RuleSet) Option {
	return func(b *Bot) {
		b.rules = r
	}
}

func WithRecorder(r Recorder) Option {
	return func(b *Bot) {
		b.recorder = r
	}
}

func WithDispatcher(d *broadcast.Dispatcher) Option {
	return func(b *Bot) {
		b.dispatcher = d
	}
}

// WithAdmins sets the users allowed to broadcast next to the admins table.
func WithAdmins(ids []int64) Option {
	return func(b *Bot) {
		b.admins = ids
	}
}

// WithVerboseErrors controls whether lookup failures show their cause.
func WithVerboseErrors(verbose bool) Option {
	return func(b *Bot) {
		b.verbose = verbose
	}
}

func WithConcurrentUpdates(n int) Option {
	return func(b *Bot) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// Bot is the Telegram conversation: it routes every update to its handler.
type Bot struct {
	messenger   Messenger
	tracker     Tracker
	store       store.Store
	catalog     *i18n.Catalog
	rules       *tracking.RuleSet
	recorder    Recorder
	dispatcher  *broadcast.Dispatcher
	admins      []int64
	verbose     bool
	concurrency int
	sessions    *sessions
}

func New(m Messenger, tracker Tracker, s store.Store, opts ...Option) *Bot {
	b := &Bot{
		messenger:   m,
		tracker:     tracker,
		store:       s,
		catalog:     i18n.DefaultCatalog(),
		rules:       tracking.DefaultRules(nil),
		recorder:    nopRecorder{},
		verbose:     true,
		concurrency: defaultConcurrentUpdates,
		sessions:    newSessions(),
	}
	for _, o := range opts {
		o(b)
	}
	if b.dispatcher == nil {
		b.dispatcher = broadcast.NewDispatcher(s, NewClient(m), 0)
	}
	return b
}

// Commands returns the command menu of the bot.
func (b *Bot) Commands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: commandStart, Description: b.catalog.Message(i18n.KeyCommandStart, i18n.Secondary)},
		{Command: commandSetLanguage, Description: b.catalog.Message(i18n.KeyCommandSetLanguage, i18n.Secondary)},
		{Command: commandSubscribe, Description: b.catalog.Message(i18n.KeyCommandSubscribe, i18n.Secondary)},
		{Command: commandBroadcast, Description: b.catalog.Message(i18n.KeyCommandBroadcast, i18n.Secondary)},
	}
}

// Run handles updates until ctx is done or updates is closed. Updates of one
// user are handled in arrival order on the same worker; different users are
// spread over the workers so a slow lookup does not hold the others.
func (b *Bot) Run(ctx context.Context, updates <-chan tgbotapi.Update) error {
	if err := RegisterCommands(b.messenger, b.Commands()); err != nil {
		zap.S().Named("bot").Warnw("failed to register the command menu", "error", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	queues := make([]chan tgbotapi.Update, b.concurrency)
	for i := range queues {
		queue := make(chan tgbotapi.Update, workerQueueSize)
		queues[i] = queue
		g.Go(func() error {
			for update := range queue {
				b.Handle(gctx, update)
			}
			return nil
		})
	}
	stop := func() error {
		for _, queue := range queues {
			close(queue)
		}
		return g.Wait()
	}

	zap.S().Named("bot").Infow("bot started", "workers", len(queues))
	defer zap.S().Named("bot").Info("bot stopped")

	for {
		select {
		case <-ctx.Done():
			return stop()
		case update, ok := <-updates:
			if !ok {
				return stop()
			}
			select {
			case queues[workerIndex(senderID(update), len(queues))] <- update:
			case <-ctx.Done():
				return stop()
			}
		}
	}
}

// senderID returns the user an update comes from, or 0 when it has none.
func senderID(update tgbotapi.Update) int64 {
	switch {
	case update.CallbackQuery != nil && update.CallbackQuery.From != nil:
		return update.CallbackQuery.From.ID
	case update.Message != nil && update.Message.From != nil:
		return update.Message.From.ID
	}
	return 0
}

func workerIndex(userID int64, workers int) int {
	i := userID % int64(workers)
	if i < 0 {
		i = -i
	}
	return int(i)
}

// Handle processes one update.
func (b *Bot) Handle(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			zap.S().Named("bot").Errorw("update handler panicked", "update_id", update.UpdateID, "error", r)
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		metrics.UniqueUsersPerDay.Observe(update.CallbackQuery.From.ID)
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.From != nil:
		metrics.UniqueUsersPerDay.Observe(update.Message.From.ID)
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	switch {
	case msg.Contact != nil:
		b.handleContact(ctx, msg)
	case msg.IsCommand():
		switch msg.Command() {
		case commandStart:
			b.handleStart(ctx, msg)
		case commandSetLanguage:
			b.handleSetLanguagePrompt(ctx, msg)
		case commandSubscribe:
			b.handleSubscribe(ctx, msg)
		case commandBroadcast:
			b.handleBroadcast(ctx, msg)
		}
	case msg.Text != "":
		b.handleWaybill(ctx, msg)
	}
}

func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if _, err := b.messenger.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		zap.S().Named("bot").Debugw("failed to answer callback", "error", err)
	}
	if query.Message == nil || query.Message.Chat == nil {
		return
	}

	switch data := query.Data; {
	case strings.HasPrefix(data, callbackSetLanguagePrefix):
		b.handleSetLanguage(ctx, query)
	case data == callbackWhereToFind:
		b.handleWhereToFind(ctx, query)
	case data == callbackChangeDirection:
		b.handleChangeDirection(ctx, query)
	default:
		route, ok := tracking.ParseRoute(data)
		if !ok {
			zap.S().Named("bot").Warnw("unknown callback", "data", data, "user_id", query.From.ID)
			return
		}
		b.handleDirection(ctx, query, route)
	}
}

// language returns the display language of a user: the session one, else the
// stored one, else the primary language.
func (b *Bot) language(ctx context.Context, userID int64) i18n.Language {
	if sess, ok := b.sessions.get(userID); ok && sess.language != "" {
		return sess.language
	}

	lang := i18n.Primary
	user, err := b.store.User().Get(ctx, userID)
	switch {
	case err == nil:
		lang = i18n.ParseLanguage(user.Language)
	case !errors.Is(err, store.ErrRecordNotFound):
		zap.S().Named("bot").Warnw("failed to read user language", "user_id", userID, "error", err)
	}

	b.sessions.setLanguage(userID, lang)
	return lang
}

func (b *Bot) isAdmin(ctx context.Context, userID int64) bool {
	if funk.ContainsInt64(b.admins, userID) {
		return true
	}
	ok, err := b.store.Admin().IsAdmin(ctx, userID)
	if err != nil {
		zap.S().Named("bot").Errorw("failed to check admin", "user_id", userID, "error", err)
		return false
	}
	return ok
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.messenger.Send(c); err != nil {
		zap.S().Named("bot").Errorw("failed to send message", "error", err)
	}
}

func (b *Bot) reply(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	b.send(msg)
}
