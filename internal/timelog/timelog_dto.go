package timelog

import (
	"fmt"
	"time"
)

const (
	StatusWorking    = "Working"
	StatusNotWorking = "Not Working"
)

type TimeLogResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Date         string  `json:"date"`
	TimeIn       string  `json:"time_in"`
	TimeOut      *string `json:"time_out,omitempty"`
	TimeInLabel  string  `json:"time_in_label"`
	TimeOutLabel string  `json:"time_out_label"`
	TotalHours   string  `json:"total_hours"`
}

type TodayResponse struct {
	Status  string           `json:"status"`
	TimeLog *TimeLogResponse `json:"time_log,omitempty"`
}

// FormatTotalHours renders the elapsed time as floored whole hours and
// remaining minutes. An open log or a non-positive span renders as "-".
func FormatTotalHours(timeIn time.Time, timeOut *time.Time) string {
	if timeOut == nil {
		return "-"
	}
	diff := timeOut.Sub(timeIn)
	if diff <= 0 {
		return "-"
	}
	hours := int(diff / time.Hour)
	mins := int(diff/time.Minute) % 60
	return fmt.Sprintf("%dh %dm", hours, mins)
}

func mapToResponse(t TimeLog) TimeLogResponse {
	resp := TimeLogResponse{
		ID:           t.ID.String(),
		UserID:       t.UserID.String(),
		Date:         t.TimeIn.Local().Format("2006-01-02"),
		TimeIn:       t.TimeIn.Format(time.RFC3339),
		TimeInLabel:  t.TimeIn.Local().Format("3:04:05 PM"),
		TimeOutLabel: "-",
		TotalHours:   FormatTotalHours(t.TimeIn, t.TimeOut),
	}
	if t.TimeOut != nil {
		v := t.TimeOut.Format(time.RFC3339)
		resp.TimeOut = &v
		resp.TimeOutLabel = t.TimeOut.Local().Format("3:04:05 PM")
	}
	return resp
}

func mapToListResponse(rows []TimeLog) []TimeLogResponse {
	res := make([]TimeLogResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
