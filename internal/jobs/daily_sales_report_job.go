package jobs

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// DailySalesReportJob builds the previous day's sales report shortly after
// midnight and logs the summary figures. Each run carries a generated run id
// so overlapping log lines can be correlated.
type DailySalesReportJob struct {
	handler queries.GetSalesReportQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDailySalesReportJob creates the nightly report job.
func NewDailySalesReportJob(handler queries.GetSalesReportQueryHandler, logger *slog.Logger) *DailySalesReportJob {
	return &DailySalesReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "daily_sales_report_job"),
	}
}

// Start schedules the job for five minutes past midnight every day.
func (j *DailySalesReportJob) Start() error {
	_, err := j.cron.AddFunc("5 0 * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily sales report job started (running at 00:05)")
	return nil
}

// Stop stops the nightly report job.
func (j *DailySalesReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily sales report job stopped")
}

func (j *DailySalesReportJob) run() {
	ctx := context.Background()
	runID := uuid.NewString()
	reportDay := time.Now().AddDate(0, 0, -1)

	query, err := queries.NewDailySalesReportQuery(reportDay)
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily sales report job failed to build query",
			"run_id", runID, "error", err)
		return
	}

	report, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily sales report job failed",
			"run_id", runID, "report_day", reportDay.Format("2006-01-02"), "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Daily sales report",
		"run_id", runID,
		"report_day", reportDay.Format("2006-01-02"),
		"order_count", report.OrderCount,
		"revenue", report.Revenue.String(),
	)
}
