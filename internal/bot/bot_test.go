package bot_test

import (
	"context"
	"errors"
	"time"

	"github.com/americanglobalgroup/parcel-tracker/internal/bot"
	"github.com/americanglobalgroup/parcel-tracker/internal/config"
	"github.com/americanglobalgroup/parcel-tracker/internal/events"
	"github.com/americanglobalgroup/parcel-tracker/internal/i18n"
	"github.com/americanglobalgroup/parcel-tracker/internal/service"
	"github.com/americanglobalgroup/parcel-tracker/internal/sheet"
	"github.com/americanglobalgroup/parcel-tracker/internal/store"
	"github.com/americanglobalgroup/parcel-tracker/internal/tracking"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

func inboundTable() sheet.Table {
	header := make([]string, 25)
	header[0] = "waybill"
	row := make([]string, 25)
	row[0] = "AM00017664US"
	row[2] = "2024-04-20"
	row[17] = "1"
	row[21] = "ՀՀ գրասենյակում"
	return sheet.NewTable([][]string{header, row})
}

var _ = Describe("bot", Ordered, func() {
	var (
		s         store.Store
		gormdb    *gorm.DB
		messenger *fakeMessenger
		provider  *fakeProvider
		recorder  *fakeRecorder
		b         *bot.Bot
		ctx       context.Context
	)

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())
		gormdb = db
		s = store.NewStore(db)
		Expect(s.InitialMigration()).To(Succeed())
	})

	AfterAll(func() {
		s.Close()
	})

	BeforeEach(func() {
		ctx = context.TODO()
		messenger = newFakeMessenger()
		recorder = &fakeRecorder{}
		provider = &fakeProvider{tables: map[string]sheet.Table{
			"Air USA to AM":   inboundTable(),
			"Ocean USA to AM": sheet.NewTable([][]string{{"code"}, {"1"}}),
		}}
		extractor := tracking.NewExtractor(tracking.DefaultRules(nil), i18n.DefaultCatalog())
		b = bot.New(messenger, service.NewTrackingService(provider, extractor), s,
			bot.WithRecorder(recorder),
			bot.WithAdmins([]int64{1000}),
		)
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM users;")
		gormdb.Exec("DELETE FROM admins;")
		gormdb.Exec("DELETE FROM broadcasts;")
	})

	Context("start", func() {
		It("registers the user and shows the routes", func() {
			b.Handle(ctx, commandUpdate(1, "start", ""))

			msg, ok := messenger.last(1)
			Expect(ok).To(BeTrue())
			Expect(msg.Text).To(HavePrefix("Բարի գալուստ"))

			keyboard, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
			Expect(ok).To(BeTrue())
			Expect(keyboard.InlineKeyboard).To(HaveLen(3))
			Expect(*keyboard.InlineKeyboard[0][0].CallbackData).To(Equal("Air AM to USA"))
			Expect(keyboard.InlineKeyboard[0][0].Text).To(Equal("Օդային առաքում Հայաստանից ԱՄՆ"))

			u, err := s.User().Get(ctx, 1)
			Expect(err).To(BeNil())
			Expect(u.Username).To(Equal("user1"))
			Expect(recorder.actions(1)).To(Equal([]string{events.ActionStart}))
		})
	})

	Context("language", func() {
		It("offers both languages", func() {
			b.Handle(ctx, commandUpdate(2, "setlanguage", ""))

			msg, _ := messenger.last(2)
			Expect(msg.Text).To(Equal("Ընտրեք լեզուն / Choose your language:"))
			keyboard := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
			Expect(*keyboard.InlineKeyboard[1][0].CallbackData).To(Equal("set_lang_en"))
		})

		It("stores the selected language", func() {
			b.Handle(ctx, callbackUpdate(2, "set_lang_en"))

			Expect(messenger.lastText(2)).To(Equal("Language set to English."))
			Expect(messenger.requested()).NotTo(BeEmpty())

			u, err := s.User().Get(ctx, 2)
			Expect(err).To(BeNil())
			Expect(u.Language).To(Equal("en"))
		})

		It("reads the stored language in a new session", func() {
			Expect(s.User().SetLanguage(ctx, 3, "en")).To(Succeed())

			b.Handle(ctx, callbackUpdate(3, "change_direction"))
			Expect(messenger.lastText(3)).To(Equal("Select a shipping route."))
		})
	})

	Context("route selection", func() {
		It("asks for a waybill with an example", func() {
			b.Handle(ctx, callbackUpdate(4, "Air AM to USA"))

			msg, _ := messenger.last(4)
			Expect(msg.Text).To(HaveSuffix("10500009346"))
			keyboard := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
			Expect(*keyboard.InlineKeyboard[0][0].CallbackData).To(Equal("where_to_find"))
			Expect(recorder.actions(4)).To(Equal([]string{events.ActionSelectRoute}))
		})

		It("explains where to find the code of the selected route", func() {
			b.Handle(ctx, callbackUpdate(5, "where_to_find"))
			Expect(messenger.lastText(5)).To(Equal("Խնդրում ենք նախ ընտրել ուղղությունը։"))

			b.Handle(ctx, callbackUpdate(5, "set_lang_en"))
			b.Handle(ctx, callbackUpdate(5, "Air USA to AM"))
			b.Handle(ctx, callbackUpdate(5, "where_to_find"))
			Expect(messenger.lastText(5)).To(ContainSubstring("12-digit"))
		})

		It("ignores unknown callbacks", func() {
			b.Handle(ctx, callbackUpdate(6, "Rail AM to GE"))
			_, ok := messenger.last(6)
			Expect(ok).To(BeFalse())
		})
	})

	Context("waybill lookup", func() {
		It("asks for a route first", func() {
			b.Handle(ctx, textUpdate(7, "AM00017664US"))

			msg, _ := messenger.last(7)
			Expect(msg.Text).To(Equal("Խնդրում ենք նախ ընտրել ուղղությունը։"))
			Expect(msg.ReplyMarkup).To(BeAssignableToTypeOf(tgbotapi.InlineKeyboardMarkup{}))
		})

		It("replies with the report and the social links", func() {
			b.Handle(ctx, callbackUpdate(8, "set_lang_en"))
			b.Handle(ctx, callbackUpdate(8, "Air USA to AM"))
			b.Handle(ctx, textUpdate(8, "  AM00017664US "))

			msg, _ := messenger.last(8)
			Expect(msg.Text).To(ContainSubstring("Order Date: 2024-04-20"))
			Expect(msg.Text).To(ContainSubstring("Parcel Status: In the Armenian Office"))
			keyboard := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
			Expect(keyboard.InlineKeyboard[0]).To(HaveLen(3))
			Expect(*keyboard.InlineKeyboard[0][0].URL).To(Equal("https://www.facebook.com/AGGArmenia"))
			Expect(recorder.actions(8)).To(ContainElement(events.ActionLookup))
		})

		It("explains unknown waybills", func() {
			b.Handle(ctx, callbackUpdate(9, "set_lang_en"))
			b.Handle(ctx, callbackUpdate(9, "Air USA to AM"))
			b.Handle(ctx, textUpdate(9, "AM00000000US"))

			msg, _ := messenger.last(9)
			Expect(msg.Text).To(HavePrefix("Dear customer"))
			Expect(msg.Text).To(ContainSubstring(tracking.ContactInfo))
			Expect(msg.Text).To(ContainSubstring("Selected direction: Air Shipments from the USA to Armenia\n\nChange a direction"))
			Expect(msg.ReplyMarkup).To(BeAssignableToTypeOf(tgbotapi.InlineKeyboardMarkup{}))
		})

		It("reports tables without a waybill column", func() {
			b.Handle(ctx, callbackUpdate(10, "Ocean USA to AM"))
			b.Handle(ctx, textUpdate(10, "1"))
			Expect(messenger.lastText(10)).To(Equal("Սխալ: 'waybill' սյունը բացակայում է աղյուսակում։"))
		})

		It("reports inactive routes", func() {
			b.Handle(ctx, callbackUpdate(11, "Air AM to USA"))
			b.Handle(ctx, textUpdate(11, "10500009346"))
			Expect(messenger.lastText(11)).To(Equal("Տվյալ ուղղությունը դեռևս ակտիվ չէ։"))
		})

		It("shows the cause of fetch failures", func() {
			provider.fail(errors.New("quota exceeded"))
			b.Handle(ctx, callbackUpdate(12, "set_lang_en"))
			b.Handle(ctx, callbackUpdate(12, "Air USA to AM"))
			b.Handle(ctx, textUpdate(12, "AM00017664US"))

			Expect(messenger.lastText(12)).To(HavePrefix("An error occurred: "))
			Expect(messenger.lastText(12)).To(ContainSubstring("quota exceeded"))
		})
	})

	Context("subscription", func() {
		It("asks for the phone number", func() {
			b.Handle(ctx, commandUpdate(13, "subscribe", ""))

			msg, _ := messenger.last(13)
			keyboard, ok := msg.ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
			Expect(ok).To(BeTrue())
			Expect(keyboard.Keyboard[0][0].RequestContact).To(BeTrue())
		})

		It("saves the shared phone number", func() {
			b.Handle(ctx, contactUpdate(14, 14, "+37443334444"))
			Expect(messenger.lastText(14)).To(Equal("Շնորհակալություն։"))

			u, err := s.User().Get(ctx, 14)
			Expect(err).To(BeNil())
			Expect(*u.PhoneNumber).To(Equal("+37443334444"))
			Expect(recorder.actions(14)).To(Equal([]string{events.ActionShareContact}))
		})

		It("ignores the contact of another user", func() {
			b.Handle(ctx, contactUpdate(15, 16, "+10000000000"))
			_, err := s.User().Get(ctx, 15)
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("broadcast", func() {
		BeforeEach(func() {
			en := "en"
			for _, u := range []store.UserUpsert{{ID: 20}, {ID: 21, Language: &en}} {
				_, err := s.User().Upsert(ctx, u)
				Expect(err).To(BeNil())
			}
		})

		It("is refused to other users", func() {
			b.Handle(ctx, commandUpdate(20, "broadcast", "hello"))
			Expect(messenger.lastText(20)).To(Equal("You are not allowed to use this command."))
		})

		It("shows the usage on a bad command", func() {
			b.Handle(ctx, commandUpdate(1000, "broadcast", ""))
			Expect(messenger.lastText(1000)).To(HavePrefix("Please provide the broadcast text."))
		})

		It("sends the broadcast for configured admins", func() {
			b.Handle(ctx, commandUpdate(1000, "broadcast", "Բարև || Hello"))

			Expect(messenger.lastText(20)).To(Equal("Բարև"))
			Expect(messenger.lastText(21)).To(Equal("Hello"))
			Expect(messenger.lastText(1000)).To(Equal("Broadcast completed: 2 delivered, 0 failed."))
			Expect(recorder.actions(1000)).To(Equal([]string{events.ActionBroadcast}))
		})

		It("accepts admins of the admins table", func() {
			Expect(s.Admin().Add(ctx, 2000)).To(Succeed())
			messenger.failFor[21] = true

			b.Handle(ctx, commandUpdate(2000, "broadcast", "@all Hi"))
			Expect(messenger.lastText(2000)).To(Equal("Broadcast completed: 1 delivered, 1 failed."))
		})
	})

	It("registers the command menu and stops with the context", func() {
		runCtx, cancel := context.WithCancel(context.TODO())
		updates := make(chan tgbotapi.Update, 1)
		done := make(chan error, 1)
		go func() {
			done <- b.Run(runCtx, updates)
		}()

		updates <- commandUpdate(30, "setlanguage", "")
		Eventually(func() string { return messenger.lastText(30) }).WithTimeout(time.Second).ShouldNot(BeEmpty())

		cancel()
		Eventually(done).WithTimeout(time.Second).Should(Receive(BeNil()))

		var commands tgbotapi.SetMyCommandsConfig
		for _, r := range messenger.requested() {
			if c, ok := r.(tgbotapi.SetMyCommandsConfig); ok {
				commands = c
			}
		}
		Expect(commands.Commands).To(HaveLen(4))
		Expect(commands.Commands[0].Command).To(Equal("start"))
	})

	It("handles the updates of one user in order", func() {
		messenger.delay = 100 * time.Millisecond
		runCtx, cancel := context.WithCancel(context.TODO())
		defer cancel()
		updates := make(chan tgbotapi.Update, 3)
		updates <- callbackUpdate(77, "set_lang_en")
		updates <- callbackUpdate(77, "Air USA to AM")
		updates <- textUpdate(77, "AM00017664US")
		close(updates)

		Expect(b.Run(runCtx, updates)).To(Succeed())

		msg, _ := messenger.last(77)
		Expect(msg.Text).To(ContainSubstring("Parcel Status: In the Armenian Office"))
		Expect(recorder.actions(77)).To(ContainElement(events.ActionLookup))
	})

	It("keeps serving other users while one is busy", func() {
		messenger.delay = 50 * time.Millisecond
		updates := make(chan tgbotapi.Update, 4)
		updates <- callbackUpdate(78, "Air USA to AM")
		updates <- textUpdate(78, "AM00017664US")
		updates <- callbackUpdate(79, "Air USA to AM")
		updates <- textUpdate(79, "AM00017664US")
		close(updates)

		Expect(b.Run(context.TODO(), updates)).To(Succeed())

		for _, id := range []int64{78, 79} {
			Expect(recorder.actions(id)).To(Equal([]string{events.ActionSelectRoute, events.ActionLookup}))
		}
	})
})
