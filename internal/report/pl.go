package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/rentledger-dev/rentledger/internal/finance"
	"github.com/rentledger-dev/rentledger/internal/model"
)

type plData struct {
	PropertyName string
	DateRange    string
	Periods      int

	Rent           string
	ConvenienceFee string
	ManagementFee  string
	TotalRevenue   string
	TotalExpenses  string
	NetIncome      string

	Categories  []plCategory
	GeneratedOn string
}

type plCategory struct {
	Label   string
	Total   string
	Entries []lineItem
}

var plTemplate = template.Must(template.New("pl").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.PropertyName}} - P&amp;L Report</title>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; padding: 20px; }
h1 { color: #2c3e50; border-bottom: 2px solid #eee; padding-bottom: 10px; }
h2 { color: #3498db; margin-top: 25px; padding-bottom: 5px; border-bottom: 1px solid #eee; }
table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
table tr td:first-child { width: 70%; }
table tr td:last-child { width: 30%; text-align: right; }
table tr.section-total { font-weight: bold; border-top: 1px solid #ddd; }
table tr.detail td { padding-left: 2em; color: #555; }
.footer { margin-top: 30px; font-size: 0.9em; text-align: center; color: #7f8c8d; }
@media print { body { padding: 0; margin: 15mm; } }
</style>
</head>
<body>
<h1>{{.PropertyName}} - Profit &amp; Loss</h1>
<p><strong>Period:</strong> {{.DateRange}} ({{.Periods}} payment period{{if ne .Periods 1}}s{{end}})</p>

<h2>Revenue</h2>
<table>
<tr><td>Rent</td><td>{{.Rent}}</td></tr>
<tr><td>Convenience Fee</td><td>{{.ConvenienceFee}}</td></tr>
<tr class="section-total"><td>Total Revenue</td><td>{{.TotalRevenue}}</td></tr>
</table>

<h2>Expenses</h2>
<table>
<tr><td>Management Fee</td><td>{{.ManagementFee}}</td></tr>
<tr><td>Convenience Fee</td><td>{{.ConvenienceFee}}</td></tr>
{{range .Categories}}<tr><td>{{.Label}}</td><td>{{.Total}}</td></tr>
{{range .Entries}}<tr class="detail"><td>{{.Label}}</td><td>{{.Amount}}</td></tr>
{{end}}{{end}}<tr class="section-total"><td>Total Expenses</td><td>{{.TotalExpenses}}</td></tr>
</table>

<h2>Net Income</h2>
<table>
<tr class="section-total"><td>Owner Payout</td><td>{{.NetIncome}}</td></tr>
</table>

<div class="footer">Report generated on {{.GeneratedOn}}</div>
</body>
</html>
`))

// ProfitAndLoss renders a printable HTML P&L statement.
func (f *Formatter) ProfitAndLoss(pl finance.PL, generatedOn string) (string, error) {
	data := plData{
		PropertyName:   pl.PropertyName,
		DateRange:      fmt.Sprintf("%s to %s", model.FormatDate(pl.StartDate), model.FormatDate(pl.EndDate)),
		Periods:        pl.Periods,
		Rent:           f.Amount(pl.Rent),
		ConvenienceFee: f.Amount(pl.ConvenienceFee),
		ManagementFee:  f.Amount(pl.ManagementFee),
		TotalRevenue:   f.Amount(pl.TotalRevenue),
		TotalExpenses:  f.Amount(pl.TotalExpenses),
		NetIncome:      f.Amount(pl.NetIncome),
		GeneratedOn:    generatedOn,
	}
	for _, label := range pl.CategoryOrder {
		cat := pl.Categories[label]
		pc := plCategory{Label: label, Total: f.Amount(cat.Total)}
		for _, e := range cat.Entries {
			pc.Entries = append(pc.Entries, lineItem{Label: model.FormatDate(e.Date), Amount: f.Amount(e.Amount)})
		}
		data.Categories = append(data.Categories, pc)
	}

	var buf bytes.Buffer
	if err := plTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering P&L report: %w", err)
	}
	return buf.String(), nil
}
