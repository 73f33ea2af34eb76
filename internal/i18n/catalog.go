package i18n

import "fmt"

// Key identifies a message in the Catalog.
type Key string

const (
	KeyStart                 Key = "start"
	KeyChooseRoute           Key = "choose_route"
	KeyLanguagePrompt        Key = "language_prompt"
	KeyLanguageSet           Key = "language_set"
	KeyError                 Key = "error"
	KeySelectWaybillFirst    Key = "select_waybill_first"
	KeyRouteNotActive        Key = "route_not_active"
	KeyMissingWaybillColumn  Key = "missing_waybill_column"
	KeyEnterWaybill          Key = "enter_waybill"
	KeySharePhone            Key = "share_phone"
	KeyShare                 Key = "share"
	KeyPhoneSaved            Key = "phone_saved"
	KeyWhereToFindButton     Key = "where_to_find_button"
	KeySelectedDirection     Key = "selected_direction"
	KeyChangeDirection       Key = "change_direction"
	KeyUnknownDirection      Key = "unknown_direction"
	KeyUnsupportedRoute      Key = "unsupported_route"
	KeyOrderDate             Key = "order_date"
	KeyHomeDeliveryOrdered   Key = "home_delivery_ordered"
	KeyHomeDeliveryNotOrder  Key = "home_delivery_not_ordered"
	KeyReceivedByCustomer    Key = "received_by_customer"
	KeyParcelStatus          Key = "parcel_status"
	KeyEstimatedDeliveryUS   Key = "estimated_delivery_us"
	KeyEstimatedDeliveryAM   Key = "estimated_delivery_am"
	KeyBroadcastForbidden    Key = "broadcast_forbidden"
	KeyBroadcastUsage        Key = "broadcast_usage"
	KeyBroadcastDone         Key = "broadcast_done"
	KeyCommandStart          Key = "command_start"
	KeyCommandSetLanguage    Key = "command_setlanguage"
	KeyCommandBroadcast      Key = "command_broadcast"
	KeyCommandSubscribe      Key = "command_subscribe"
	KeyWhereToFind           Key = "where_to_find"
	KeyNotFound              Key = "not_found"
	KeyRouteName             Key = "route_name"
	KeyLanguageNamePrimary   Key = "language_name_hy"
	KeyLanguageNameSecondary Key = "language_name_en"
)

// Catalog is the immutable table of every user facing text of the bot.
// It is built once at startup and shared read-only.
type Catalog struct {
	messages map[Key]Text
	// route keyed messages, indexed by the route code.
	routed map[Key]map[string]Text
}

// Message returns the text for key in lang. A missing key renders as its name
// so that a gap in the table is visible instead of an empty reply.
func (c *Catalog) Message(key Key, lang Language) string {
	t, ok := c.messages[key]
	if !ok {
		return string(key)
	}
	return t.In(lang)
}

// Text returns the bilingual pair registered under key.
func (c *Catalog) Text(key Key) (Text, bool) {
	t, ok := c.messages[key]
	return t, ok
}

// RouteMessage returns the route specific text for key.
func (c *Catalog) RouteMessage(key Key, route string, lang Language) (string, bool) {
	byRoute, ok := c.routed[key]
	if !ok {
		return "", false
	}
	t, ok := byRoute[route]
	if !ok {
		return "", false
	}
	return t.In(lang), true
}

// Messagef formats the text for key with args.
func (c *Catalog) Messagef(key Key, lang Language, args ...any) string {
	return fmt.Sprintf(c.Message(key, lang), args...)
}

// NewCatalog builds a catalog from explicit tables. The maps are copied.
func NewCatalog(messages map[Key]Text, routed map[Key]map[string]Text) *Catalog {
	c := &Catalog{
		messages: make(map[Key]Text, len(messages)),
		routed:   make(map[Key]map[string]Text, len(routed)),
	}
	for k, v := range messages {
		c.messages[k] = v
	}
	for k, byRoute := range routed {
		m := make(map[string]Text, len(byRoute))
		for r, t := range byRoute {
			m[r] = t
		}
		c.routed[k] = m
	}
	return c
}
