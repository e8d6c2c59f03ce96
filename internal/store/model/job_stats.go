package model

// JobStats feeds the prometheus collector with the number of jobs per
// lifecycle stage and the number of gateway orders issued.
type JobStats struct {
	TotalByStatus map[JobStatus]int64
	TotalJobs     int64
	TotalOrders   int64
}

func NewJobStats(jobs JobList) JobStats {
	stats := JobStats{TotalByStatus: map[JobStatus]int64{}}
	for _, job := range jobs {
		stats.TotalJobs++
		stats.TotalByStatus[job.Status]++
		if job.PaymentOrderID != nil {
			stats.TotalOrders++
		}
	}
	return stats
}
