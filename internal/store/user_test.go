package store_test

import (
	"context"
	"fmt"

	"github.com/fieldserve/fieldserve/internal/config"
	"github.com/fieldserve/fieldserve/internal/store"
	"github.com/fieldserve/fieldserve/internal/store/model"
	"github.com/google/uuid"
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
		cfg := config.NewDefault()
		db, err := store.InitDB(cfg)
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration()).To(Succeed())
	})

	AfterEach(func() {
		gormdb.Exec("DELETE from users;")
	})

	AfterAll(func() {
		s.Close()
	})

	Context("get", func() {
		It("successfully gets a user", func() {
			userID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertUserStm, userID, "WORKER", "worker@example.com"))
			Expect(tx.Error).To(BeNil())

			user, err := s.User().Get(context.TODO(), userID)
			Expect(err).To(BeNil())
			Expect(user.ID).To(Equal(userID))
			Expect(user.Role).To(Equal(model.RoleWorker))
			Expect(user.Email).To(Equal("worker@example.com"))
		})

		It("fails to get a user -- user does not exist", func() {
			_, err := s.User().Get(context.TODO(), uuid.New())
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("create", func() {
		It("successfully creates a user", func() {
			user, err := s.User().Create(context.TODO(), model.User{
				ID:    uuid.New(),
				Role:  model.RoleCustomer,
				Email: "customer@example.com",
				Phone: "+910000000001",
			})
			Expect(err).To(BeNil())
			Expect(user).NotTo(BeNil())

			count := 0
			err = gormdb.Raw("SELECT COUNT(*) from users;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(1))
		})

		It("fails to create a user -- duplicate id", func() {
			userID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertUserStm, userID, "CUSTOMER", "customer@example.com"))
			Expect(tx.Error).To(BeNil())

			_, err := s.User().Create(context.TODO(), model.User{
				ID:    userID,
				Role:  model.RoleCustomer,
				Email: "customer@example.com",
			})
			Expect(err).To(MatchError(store.ErrDuplicateKey))
		})
	})
})
