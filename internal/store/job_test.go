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

const (
	insertUserStm         = "INSERT INTO users (id, role, email) VALUES ('%s', '%s', '%s');"
	insertJobStm          = "INSERT INTO jobs (id, customer_id, worker_id, status, charge) VALUES ('%s', '%s', '%s', '%s', %d);"
	insertJobWithOrderStm = "INSERT INTO jobs (id, customer_id, worker_id, status, charge, payment_order_id) VALUES ('%s', '%s', '%s', '%s', %d, '%s');"
)

var _ = Describe("job store", Ordered, func() {
	var (
		s          store.Store
		gormdb     *gorm.DB
		customerID uuid.UUID
		workerID   uuid.UUID
	)

	BeforeAll(func() {
		cfg := config.NewDefault()
		db, err := store.InitDB(cfg)
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration()).To(Succeed())
	})

	BeforeEach(func() {
		customerID = uuid.New()
		workerID = uuid.New()
		tx := gormdb.Exec(fmt.Sprintf(insertUserStm, customerID, "CUSTOMER", "customer@example.com"))
		Expect(tx.Error).To(BeNil())
		tx = gormdb.Exec(fmt.Sprintf(insertUserStm, workerID, "WORKER", "worker@example.com"))
		Expect(tx.Error).To(BeNil())
	})

	AfterEach(func() {
		gormdb.Exec("DELETE from jobs;")
		gormdb.Exec("DELETE from users;")
	})

	AfterAll(func() {
		s.Close()
	})

	Context("get", func() {
		It("successfully gets a job with its relations preloaded", func() {
			jobID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertJobStm, jobID, customerID, workerID, "PENDING", 500))
			Expect(tx.Error).To(BeNil())

			job, err := s.Job().Get(context.TODO(), jobID)
			Expect(err).To(BeNil())
			Expect(job.ID).To(Equal(jobID))
			Expect(job.Status).To(Equal(model.JobStatusPending))
			Expect(job.Charge).To(Equal(int64(500)))
			Expect(job.Customer.Email).To(Equal("customer@example.com"))
			Expect(job.Worker.Email).To(Equal("worker@example.com"))
		})

		It("fails to get a job -- job does not exist", func() {
			_, err := s.Job().Get(context.TODO(), uuid.New())
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})

		It("gets a job for update inside a transaction", func() {
			jobID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertJobStm, jobID, customerID, workerID, "ACCEPTED", 500))
			Expect(tx.Error).To(BeNil())

			ctx, err := s.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			job, err := s.Job().GetForUpdate(ctx, jobID)
			Expect(err).To(BeNil())
			Expect(job.Status).To(Equal(model.JobStatusAccepted))

			_, err = store.Commit(ctx)
			Expect(err).To(BeNil())
		})
	})

	Context("list", func() {
		It("successfully lists all the jobs", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertJobStm, uuid.New(), customerID, workerID, "PENDING", 100))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertJobStm, uuid.New(), customerID, workerID, "ACCEPTED", 200))
			Expect(tx.Error).To(BeNil())

			jobs, err := s.Job().List(context.TODO())
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(2))
		})

		It("lists all the jobs -- no jobs to be found in the db", func() {
			jobs, err := s.Job().List(context.TODO())
			Expect(err).To(BeNil())
			Expect(jobs).To(HaveLen(0))
		})
	})

	Context("create", func() {
		It("successfully creates a job", func() {
			job, err := s.Job().Create(context.TODO(), model.Job{
				ID:         uuid.New(),
				CustomerID: customerID,
				WorkerID:   workerID,
				Status:     model.JobStatusPending,
				Charge:     750,
			})
			Expect(err).To(BeNil())
			Expect(job).NotTo(BeNil())

			count := 0
			err = gormdb.Raw("SELECT COUNT(*) from jobs;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(1))
		})

		It("fails to create a job -- duplicate id", func() {
			jobID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertJobStm, jobID, customerID, workerID, "PENDING", 100))
			Expect(tx.Error).To(BeNil())

			_, err := s.Job().Create(context.TODO(), model.Job{
				ID:         jobID,
				CustomerID: customerID,
				WorkerID:   workerID,
				Status:     model.JobStatusPending,
				Charge:     100,
			})
			Expect(err).To(MatchError(store.ErrDuplicateKey))
		})
	})

	Context("update", func() {
		It("updates only the selected fields", func() {
			jobID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertJobStm, jobID, customerID, workerID, "PENDING", 500))
			Expect(tx.Error).To(BeNil())

			job, err := s.Job().Get(context.TODO(), jobID)
			Expect(err).To(BeNil())

			job.Status = model.JobStatusAccepted
			job.Charge = 999
			updated, err := s.Job().Update(context.TODO(), *job, "status")
			Expect(err).To(BeNil())
			Expect(updated.Status).To(Equal(model.JobStatusAccepted))

			// charge was not selected for update
			reread, err := s.Job().Get(context.TODO(), jobID)
			Expect(err).To(BeNil())
			Expect(reread.Status).To(Equal(model.JobStatusAccepted))
			Expect(reread.Charge).To(Equal(int64(500)))
		})

		It("updates the payment fields", func() {
			jobID := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertJobStm, jobID, customerID, workerID, "IN_PROGRESS", 500))
			Expect(tx.Error).To(BeNil())

			job, err := s.Job().Get(context.TODO(), jobID)
			Expect(err).To(BeNil())

			orderID := "order_xyz"
			paymentStatus := "processing"
			job.PaymentOrderID = &orderID
			job.PaymentStatus = &paymentStatus
			_, err = s.Job().Update(context.TODO(), *job, "payment_order_id", "payment_status")
			Expect(err).To(BeNil())

			reread, err := s.Job().Get(context.TODO(), jobID)
			Expect(err).To(BeNil())
			Expect(reread.PaymentOrderID).NotTo(BeNil())
			Expect(*reread.PaymentOrderID).To(Equal("order_xyz"))
			Expect(reread.Status).To(Equal(model.JobStatusInProgress))
		})

		It("fails to update a job -- job does not exist", func() {
			job := model.NewJobFromId(uuid.New())
			job.Status = model.JobStatusAccepted
			_, err := s.Job().Update(context.TODO(), *job, "status")
			Expect(err).To(MatchError(store.ErrRecordNotFound))
		})
	})
})
