package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/rentledger-dev/rentledger/internal/finance"
	"github.com/rentledger-dev/rentledger/internal/model"
)

// propertyData is the flattened view handed to the property template; all
// amounts arrive pre-formatted.
type propertyData struct {
	Name           string
	PaymentDate    string
	Rent           string
	ConvenienceFee string
	FeePercentage  string
	ManagementFee  string
	Expenses       []lineItem
	TotalRevenue   string
	TotalExpenses  string
	OwnerPayout    string
	GeneratedOn    string
}

type lineItem struct {
	Label  string
	Amount string
}

var propertyTemplate = template.Must(template.New("property").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.Name}} - Property Report</title>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; padding: 20px; }
h1 { color: #2c3e50; border-bottom: 2px solid #eee; padding-bottom: 10px; }
h2 { color: #3498db; margin-top: 25px; padding-bottom: 5px; border-bottom: 1px solid #eee; }
table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
table tr td:first-child { width: 70%; }
table tr td:last-child { width: 30%; text-align: right; }
table tr.section-total { font-weight: bold; border-top: 1px solid #ddd; }
.footer { margin-top: 30px; font-size: 0.9em; text-align: center; color: #7f8c8d; }
@media print { body { padding: 0; margin: 15mm; } }
</style>
</head>
<body>
<h1>{{.Name}} - Property Report</h1>
<p><strong>Payment Date:</strong> {{.PaymentDate}}</p>

<h2>Revenue</h2>
<table>
<tr><td>Rent</td><td>{{.Rent}}</td></tr>
<tr><td>Convenience Fee</td><td>{{.ConvenienceFee}}</td></tr>
<tr class="section-total"><td>Total Revenue</td><td>{{.TotalRevenue}}</td></tr>
</table>

<h2>Expenses</h2>
<table>
<tr><td>Management Fee ({{.FeePercentage}}%)</td><td>{{.ManagementFee}}</td></tr>
<tr><td>Convenience Fee</td><td>{{.ConvenienceFee}}</td></tr>
{{range .Expenses}}<tr><td>{{.Label}}</td><td>{{.Amount}}</td></tr>
{{end}}<tr class="section-total"><td>Total Expenses</td><td>{{.TotalExpenses}}</td></tr>
</table>

<h2>Net Income</h2>
<table>
<tr class="section-total"><td>Owner Payout</td><td>{{.OwnerPayout}}</td></tr>
</table>

<div class="footer">Report generated on {{.GeneratedOn}}</div>
</body>
</html>
`))

// Property renders a self-contained printable HTML report for one property.
func (f *Formatter) Property(p model.Property, generatedOn string) (string, error) {
	data := propertyData{
		Name:           p.Name,
		PaymentDate:    model.FormatDate(p.PaymentDate),
		Rent:           f.Amount(p.Rent),
		ConvenienceFee: f.Amount(p.ConvenienceFee),
		FeePercentage:  p.ManagementFeePercentage.String(),
		ManagementFee:  f.Amount(finance.ManagementFee(p)),
		TotalRevenue:   f.Amount(finance.TotalRevenue(p)),
		TotalExpenses:  f.Amount(finance.TotalExpenses(p)),
		OwnerPayout:    f.Amount(finance.OwnerPayout(p)),
		GeneratedOn:    generatedOn,
	}
	for _, e := range p.Expenses {
		if !e.Amount.IsPositive() {
			continue
		}
		data.Expenses = append(data.Expenses, lineItem{Label: e.Description, Amount: f.Amount(e.Amount)})
	}

	var buf bytes.Buffer
	if err := propertyTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering property report: %w", err)
	}
	return buf.String(), nil
}
