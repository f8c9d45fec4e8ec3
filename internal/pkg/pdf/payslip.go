package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type PayslipData struct {
	UnitName     string
	UnitCode     string
	EmployeeName string
	Period       string

	BaseSalary  string
	OvertimePay string
	Deductions  string
	NetPay      string

	Status   string
	SignedAt string
}

// Generator renders payslip PDFs for download by employees.
type Generator interface {
	GeneratePayslip(ctx context.Context, data PayslipData) (io.Reader, error)
}

type generatorImpl struct{}

func NewGenerator() Generator {
	return &generatorImpl{}
}

func (g *generatorImpl) GeneratePayslip(ctx context.Context, data PayslipData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, "Payslip", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(24,
		col.New(6).Add(
			text.New(data.UnitName, props.Text{Style: fontstyle.Bold}),
			text.New("Business unit: "+data.UnitCode, props.Text{Top: 5}),
		),
		col.New(6).Add(
			text.New("Employee: "+data.EmployeeName, props.Text{}),
			text.New("Period: "+data.Period, props.Text{Top: 5}),
		),
	)

	m.AddRow(10,
		text.NewCol(8, "Component", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(4, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	rows := []struct {
		label  string
		amount string
	}{
		{"Base salary", data.BaseSalary},
		{"Overtime pay", data.OvertimePay},
		{"Deductions", data.Deductions},
	}
	for _, row := range rows {
		m.AddRow(9,
			text.NewCol(8, row.label, props.Text{Size: 9}),
			text.NewCol(4, row.amount, props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(12,
		text.NewCol(8, "Net pay", props.Text{Style: fontstyle.Bold, Size: 11}),
		text.NewCol(4, data.NetPay, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right}),
	)

	m.AddRow(16,
		col.New(12).Add(
			text.New("Status: "+data.Status, props.Text{Size: 9, Top: 4}),
			text.New("Signed at: "+data.SignedAt, props.Text{Size: 9, Top: 9}),
		),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
