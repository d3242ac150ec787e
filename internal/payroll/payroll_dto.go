package payroll

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	englishPrinter = message.NewPrinter(language.English)
	statusCaser    = cases.Title(language.English)
)

type PayrollResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	AmountCents     int64  `json:"amount_cents"`
	AmountFormatted string `json:"amount_formatted"`
	Status          string `json:"status"`
	StatusLabel     string `json:"status_label"`
	CreatedAt       string `json:"created_at"`
}

type SummaryResponse struct {
	EmployeeCount    int64  `json:"employee_count"`
	TotalAmountCents int64  `json:"total_amount_cents"`
	TotalFormatted   string `json:"total_formatted"`
	PendingCount     int64  `json:"pending_count"`
}

// FormatAmount renders minor units as a grouped-digit decimal, e.g.
// 1234550 -> "12,345.50".
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return englishPrinter.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

func mapToResponse(p *Payroll) PayrollResponse {
	return PayrollResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		AmountCents:     p.AmountCents,
		AmountFormatted: FormatAmount(p.AmountCents),
		Status:          p.Status,
		StatusLabel:     statusCaser.String(p.Status),
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
}
