package store_test

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fieldserve/fieldserve/internal/config"
	"github.com/fieldserve/fieldserve/internal/store"
	"github.com/fieldserve/fieldserve/internal/store/model"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

const insertJobLogStm = "INSERT INTO job_logs (job_id, from_status, to_status, action, performed_by) VALUES ('%s', '%s', '%s', '%s', '%s');"

var _ = Describe("job log store", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		jobID  uuid.UUID
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
		customerID := uuid.New()
		workerID := uuid.New()
		tx := gormdb.Exec(fmt.Sprintf(insertUserStm, customerID, "CUSTOMER", "customer@example.com"))
		Expect(tx.Error).To(BeNil())
		tx = gormdb.Exec(fmt.Sprintf(insertUserStm, workerID, "WORKER", "worker@example.com"))
		Expect(tx.Error).To(BeNil())

		jobID = uuid.New()
		tx = gormdb.Exec(fmt.Sprintf(insertJobStm, jobID, customerID, workerID, "PENDING", 500))
		Expect(tx.Error).To(BeNil())
	})

	AfterEach(func() {
		gormdb.Exec("DELETE from job_logs;")
		gormdb.Exec("DELETE from jobs;")
		gormdb.Exec("DELETE from users;")
	})

	AfterAll(func() {
		s.Close()
	})

	Context("create", func() {
		It("successfully creates an audit row", func() {
			metadata, err := json.Marshal(map[string]any{"reason": "changed my mind"})
			Expect(err).To(BeNil())

			entry, err := s.JobLog().Create(context.TODO(), model.JobLog{
				JobID:       jobID,
				FromStatus:  model.JobStatusPending,
				ToStatus:    model.JobStatusCancelled,
				Action:      model.LogActionJobCancelled,
				PerformedBy: uuid.New(),
				Metadata:    metadata,
			})
			Expect(err).To(BeNil())
			Expect(entry.ID).NotTo(BeZero())

			count := 0
			err = gormdb.Raw("SELECT COUNT(*) from job_logs;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(1))
		})
	})

	Context("list", func() {
		It("lists the rows of one job in insertion order", func() {
			performedBy := uuid.New()
			for _, action := range []string{model.LogActionWorkerAccepted, model.LogActionWorkStarted, model.LogActionPaymentInitiated} {
				_, err := s.JobLog().Create(context.TODO(), model.JobLog{
					JobID:       jobID,
					FromStatus:  model.JobStatusPending,
					ToStatus:    model.JobStatusAccepted,
					Action:      action,
					PerformedBy: performedBy,
				})
				Expect(err).To(BeNil())
			}

			// rows of another job must not show up
			otherJob := uuid.New()
			tx := gormdb.Exec(fmt.Sprintf(insertJobLogStm, otherJob, "PENDING", "CANCELLED", model.LogActionJobCancelled, performedBy))
			Expect(tx.Error).To(BeNil())

			logs, err := s.JobLog().List(context.TODO(), jobID)
			Expect(err).To(BeNil())
			Expect(logs).To(HaveLen(3))
			Expect(logs[0].Action).To(Equal(model.LogActionWorkerAccepted))
			Expect(logs[1].Action).To(Equal(model.LogActionWorkStarted))
			Expect(logs[2].Action).To(Equal(model.LogActionPaymentInitiated))
		})

		It("lists the rows of one job -- no rows found", func() {
			logs, err := s.JobLog().List(context.TODO(), jobID)
			Expect(err).To(BeNil())
			Expect(logs).To(HaveLen(0))
		})
	})
})
