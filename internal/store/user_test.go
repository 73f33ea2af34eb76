package store_test

import (
	"context"

	"github.com/americanglobalgroup/parcel-tracker/internal/config"
	"github.com/americanglobalgroup/parcel-tracker/internal/store"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("user store", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
	)

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration()).To(Succeed())
	})

	AfterAll(func() {
		s.Close()
	})

	Context("Upsert", func() {
		It("creates a user with the primary language by default", func() {
			user, err := s.User().Upsert(context.TODO(), store.UserUpsert{ID: 100, Username: "aram", FirstName: "Aram"})
			Expect(err).To(BeNil())
			Expect(user.ID).To(Equal(int64(100)))
			Expect(user.Language).To(Equal("hy"))
			Expect(user.PhoneNumber).To(BeNil())
			Expect(user.LastSeenAt).NotTo(BeZero())
		})

		It("updates the profile and keeps the stored phone and language", func() {
			phone := "+37499000000"
			en := "en"
			_, err := s.User().Upsert(context.TODO(), store.UserUpsert{ID: 100, Username: "aram", PhoneNumber: &phone, Language: &en})
			Expect(err).To(BeNil())

			user, err := s.User().Upsert(context.TODO(), store.UserUpsert{ID: 100, Username: "aram_new", LastName: "Petrosyan"})
			Expect(err).To(BeNil())
			Expect(user.Username).To(Equal("aram_new"))
			Expect(user.LastName).To(Equal("Petrosyan"))
			Expect(user.PhoneNumber).NotTo(BeNil())
			Expect(*user.PhoneNumber).To(Equal(phone))
			Expect(user.Language).To(Equal("en"))
		})
	})

	Context("Get", func() {
		It("returns ErrRecordNotFound for unknown users", func() {
			_, err := s.User().Get(context.TODO(), 404)
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("SetLanguage", func() {
		It("registers unknown users", func() {
			Expect(s.User().SetLanguage(context.TODO(), 200, "en")).To(Succeed())

			user, err := s.User().Get(context.TODO(), 200)
			Expect(err).To(BeNil())
			Expect(user.Language).To(Equal("en"))
		})

		It("changes the language of known users", func() {
			_, err := s.User().Upsert(context.TODO(), store.UserUpsert{ID: 201, Username: "ani"})
			Expect(err).To(BeNil())
			Expect(s.User().SetLanguage(context.TODO(), 201, "en")).To(Succeed())

			user, err := s.User().Get(context.TODO(), 201)
			Expect(err).To(BeNil())
			Expect(user.Language).To(Equal("en"))
			Expect(user.Username).To(Equal("ani"))
		})
	})

	Context("SetPhone", func() {
		It("stores the phone number", func() {
			_, err := s.User().Upsert(context.TODO(), store.UserUpsert{ID: 300})
			Expect(err).To(BeNil())
			Expect(s.User().SetPhone(context.TODO(), 300, "+14243334444")).To(Succeed())

			user, err := s.User().Get(context.TODO(), 300)
			Expect(err).To(BeNil())
			Expect(*user.PhoneNumber).To(Equal("+14243334444"))
		})

		It("fails for unknown users", func() {
			Expect(s.User().SetPhone(context.TODO(), 301, "1")).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("List", func() {
		BeforeEach(func() {
			en := "en"
			for _, id := range []int64{1, 2, 3} {
				_, err := s.User().Upsert(context.TODO(), store.UserUpsert{ID: id})
				Expect(err).To(BeNil())
			}
			_, err := s.User().Upsert(context.TODO(), store.UserUpsert{ID: 4, Language: &en})
			Expect(err).To(BeNil())
		})

		It("lists all users ordered by id", func() {
			users, err := s.User().List(context.TODO(), nil)
			Expect(err).To(BeNil())
			Expect(users.IDs()).To(Equal([]int64{1, 2, 3, 4}))
		})

		It("filters by language", func() {
			users, err := s.User().List(context.TODO(), store.NewUserQueryFilter().ByLanguage("en"))
			Expect(err).To(BeNil())
			Expect(users.IDs()).To(Equal([]int64{4}))
		})

		It("filters by ids", func() {
			users, err := s.User().List(context.TODO(), store.NewUserQueryFilter().ByIDs([]int64{2, 4, 99}))
			Expect(err).To(BeNil())
			Expect(users.IDs()).To(Equal([]int64{2, 4}))
		})
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM users;")
	})
})
