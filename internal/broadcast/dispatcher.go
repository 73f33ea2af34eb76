package broadcast

import (
	"context"
	"sync"

	"github.com/americanglobalgroup/parcel-tracker/internal/i18n"
	"github.com/americanglobalgroup/parcel-tracker/internal/store"
	"github.com/americanglobalgroup/parcel-tracker/internal/store/model"
	"github.com/americanglobalgroup/parcel-tracker/pkg/metrics"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 8

// Sender delivers messages to a chat.
type Sender interface {
	SendText(ctx context.Context, chatID int64, text string) error
	SendPhoto(ctx context.Context, chatID int64, photoURL string, caption string) error
}

type Result struct {
	Delivered []int64
	Failed    []int64
	Broadcast *model.Broadcast
}

type recipient struct {
	id   int64
	lang i18n.Language
}

// Dispatcher sends broadcasts to the users of the store.
type Dispatcher struct {
	store   store.Store
	sender  Sender
	workers int
}

func NewDispatcher(s store.Store, sender Sender, workers int) *Dispatcher {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Dispatcher{store: s, sender: sender, workers: workers}
}

// Dispatch sends req to its audience. A failed delivery is logged and counted
// and never stops the others. The broadcast is stored with the recipients
// that got it.
func (d *Dispatcher) Dispatch(ctx context.Context, adminID int64, req Request) (*Result, error) {
	recipients, err := d.recipients(ctx, req.Audience)
	if err != nil {
		return nil, err
	}

	logger := zap.S().Named("broadcast")
	logger.Infow("starting broadcast", "admin_id", adminID, "audience", req.Audience.String(), "recipients", len(recipients))

	var (
		lock   sync.Mutex
		result = &Result{Delivered: []int64{}, Failed: []int64{}}
	)

	g := new(errgroup.Group)
	g.SetLimit(d.workers)
	for _, r := range recipients {
		g.Go(func() error {
			err := d.send(ctx, r, req)

			lock.Lock()
			defer lock.Unlock()
			if err != nil {
				logger.Warnw("failed to deliver broadcast", "user_id", r.id, "error", err)
				metrics.IncreaseBroadcastDeliveriesMetric("failed")
				result.Failed = append(result.Failed, r.id)
				return nil
			}
			metrics.IncreaseBroadcastDeliveriesMetric("delivered")
			result.Delivered = append(result.Delivered, r.id)
			return nil
		})
	}
	_ = g.Wait()

	b, err := d.store.Broadcast().Create(ctx, model.Broadcast{
		AdminID:    adminID,
		MessageHy:  req.Message.Primary,
		MessageEn:  req.Message.Secondary,
		ImageURL:   req.ImageURL,
		Audience:   req.Audience.String(),
		Recipients: result.Delivered,
	})
	if err != nil {
		return result, err
	}
	result.Broadcast = b

	logger.Infow("broadcast completed", "broadcast_id", b.ID, "delivered", len(result.Delivered), "failed", len(result.Failed))

	return result, nil
}

func (d *Dispatcher) send(ctx context.Context, r recipient, req Request) error {
	text := req.Message.In(r.lang)
	if req.ImageURL != "" {
		return d.sender.SendPhoto(ctx, r.id, req.ImageURL, text)
	}
	return d.sender.SendText(ctx, r.id, text)
}

func (d *Dispatcher) recipients(ctx context.Context, audience Audience) ([]recipient, error) {
	filter := store.NewUserQueryFilter()
	switch audience.Kind {
	case AudienceLanguage:
		filter = filter.ByLanguage(audience.Language.String())
	case AudienceUsers:
		filter = filter.ByIDs(audience.UserIDs)
	}

	users, err := d.store.User().List(ctx, filter)
	if err != nil {
		return nil, err
	}

	recipients := make([]recipient, 0, len(users))
	for _, u := range users {
		recipients = append(recipients, recipient{id: u.ID, lang: i18n.ParseLanguage(u.Language)})
	}

	// explicit ids that never talked to the bot get the primary text
	if audience.Kind == AudienceUsers {
		known := users.IDs()
		for _, id := range audience.UserIDs {
			if !funk.ContainsInt64(known, id) {
				recipients = append(recipients, recipient{id: id, lang: i18n.Primary})
			}
		}
	}

	return recipients, nil
}
