package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

type Export struct {
	stats    StatsService
	activity ActivityService
}

func NewExport(stats StatsService, activity ActivityService) Export {
	return Export{
		stats:    stats,
		activity: activity,
	}
}

// Dashboard writes an xlsx workbook with the stats summary and the
// recent activity feed.
func (h Export) Dashboard(w http.ResponseWriter, r *http.Request) error {
	now := time.Now()
	summary, err := h.stats.Summary(r.Context(), now)
	if err != nil {
		return errors.WithMessage(err, "stats summary")
	}
	activities, err := h.activity.Recent(r.Context())
	if err != nil {
		return errors.WithMessage(err, "recent activity")
	}

	file := excelize.NewFile()
	defer file.Close()

	statsSheet := "Stats"
	err = file.SetSheetName("Sheet1", statsSheet)
	if err != nil {
		return errors.WithMessage(err, "rename sheet")
	}
	statsRows := [][]any{
		{"Metric", "Value"},
		{"Total visits", summary.TotalVisits},
		{"Total downloads", summary.TotalDownloads},
		{"Today visits", summary.TodayVisits},
		{"Successful downloads", summary.SuccessfulDownloads},
		{},
		{"Day", "Visits"},
	}
	for i, label := range summary.VisitsData.Labels {
		statsRows = append(statsRows, []any{label, summary.VisitsData.Data[i]})
	}
	err = writeRows(file, statsSheet, statsRows)
	if err != nil {
		return err
	}

	activitySheet := "Activity"
	_, err = file.NewSheet(activitySheet)
	if err != nil {
		return errors.WithMessage(err, "new sheet")
	}
	activityRows := [][]any{
		{"Time", "Action", "Details"},
	}
	for _, activity := range activities {
		details := ""
		if activity.Details != nil {
			details = *activity.Details
		}
		activityRows = append(activityRows, []any{
			activity.Timestamp.Format(time.RFC3339), activity.Action, details,
		})
	}
	err = writeRows(file, activitySheet, activityRows)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("dashboard_export_%s.xlsx", now.Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	err = file.Write(w)
	if err != nil {
		return errors.WithMessage(err, "write workbook")
	}
	return nil
}

func writeRows(file *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.WithMessage(err, "cell name")
		}
		err = file.SetSheetRow(sheet, cell, &row)
		if err != nil {
			return errors.WithMessage(err, "set sheet row")
		}
	}
	return nil
}
