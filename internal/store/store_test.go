package store_test

import (
	"context"
	"errors"

	"github.com/americanglobalgroup/parcel-tracker/internal/config"
	st "github.com/americanglobalgroup/parcel-tracker/internal/store"
	"github.com/americanglobalgroup/parcel-tracker/internal/store/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("Store", Ordered, func() {
	var (
		store  st.Store
		gormDB *gorm.DB
	)

	BeforeAll(func() {
		db, err := st.InitDB(config.NewDefault())
		Expect(err).To(BeNil())
		gormDB = db

		store = st.NewStore(db)
		Expect(store).ToNot(BeNil())
		Expect(store.InitialMigration()).To(Succeed())
	})

	AfterAll(func() {
		store.Close()
	})

	Context("transaction", func() {
		It("insert a user successfully", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			user, err := store.User().Upsert(ctx, st.UserUpsert{ID: 1, Username: "aram"})
			Expect(err).To(BeNil())
			Expect(user).ToNot(BeNil())

			_, cerr := st.Commit(ctx)
			Expect(cerr).To(BeNil())

			count := 0
			err = gormDB.Raw("SELECT COUNT(*) from users;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(1))
		})

		It("rollback a user successfully", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			_, err = store.User().Upsert(ctx, st.UserUpsert{ID: 2, Username: "ani"})
			Expect(err).To(BeNil())
			Expect(store.Log().Create(ctx, model.Log{Action: "start"})).To(Succeed())

			_, rerr := st.Rollback(ctx)
			Expect(rerr).To(BeNil())

			count := 0
			err = gormDB.Raw("SELECT COUNT(*) from users;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(0))

			err = gormDB.Raw("SELECT COUNT(*) from logs;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(0))
		})

		It("reuses the transaction of the context", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())
			nested, err := store.NewTransactionContext(ctx)
			Expect(err).To(BeNil())
			Expect(st.FromContext(nested)).To(BeIdenticalTo(st.FromContext(ctx)))

			_, err = st.Rollback(ctx)
			Expect(err).To(BeNil())
		})

		It("commits with WithTx", func() {
			err := st.WithTx(context.TODO(), store, func(ctx context.Context) error {
				if err := store.Admin().Add(ctx, 7); err != nil {
					return err
				}
				return store.Admin().Add(ctx, 8)
			})
			Expect(err).To(BeNil())

			admins, err := store.Admin().List(context.TODO())
			Expect(err).To(BeNil())
			Expect(admins).To(HaveLen(2))
		})

		It("rolls back with WithTx when the function fails", func() {
			boom := errors.New("boom")
			err := st.WithTx(context.TODO(), store, func(ctx context.Context) error {
				if err := store.Admin().Add(ctx, 9); err != nil {
					return err
				}
				return boom
			})
			Expect(errors.Is(err, boom)).To(BeTrue())

			isAdmin, err := store.Admin().IsAdmin(context.TODO(), 9)
			Expect(err).To(BeNil())
			Expect(isAdmin).To(BeFalse())
		})

		AfterEach(func() {
			gormDB.Exec("DELETE FROM admins;")
			gormDB.Exec("DELETE FROM logs;")
			gormDB.Exec("DELETE FROM users;")
		})
	})

	Context("statistics", func() {
		It("counts users per language", func() {
			en := "en"
			_, err := store.User().Upsert(context.TODO(), st.UserUpsert{ID: 10})
			Expect(err).To(BeNil())
			_, err = store.User().Upsert(context.TODO(), st.UserUpsert{ID: 11, Language: &en})
			Expect(err).To(BeNil())
			_, err = store.User().Upsert(context.TODO(), st.UserUpsert{ID: 12, Language: &en})
			Expect(err).To(BeNil())

			counts, err := store.Statistics(context.TODO())
			Expect(err).To(BeNil())
			Expect(counts).To(ConsistOf(
				model.LanguageCount{Language: "en", Count: 2},
				model.LanguageCount{Language: "hy", Count: 1},
			))
		})

		AfterEach(func() {
			gormDB.Exec("DELETE FROM users;")
		})
	})
})
