// Package pdf gera a versão impressa dos relatórios de estoque.
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"estocando/internal/domain"
)

var (
	colorPrimary = &props.Color{Red: 33, Green: 82, Blue: 140}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 190, Green: 30, Blue: 45}
)

// StockLevelsGenerator monta o PDF do relatório de níveis de estoque.
type StockLevelsGenerator struct {
	now func() time.Time
}

// NewStockLevelsGenerator cria o gerador.
func NewStockLevelsGenerator() *StockLevelsGenerator {
	return &StockLevelsGenerator{now: time.Now}
}

// Generate devolve os bytes do PDF com uma linha por item (já ordenados pelo chamador).
// Itens zerados aparecem em destaque.
func (g *StockLevelsGenerator) Generate(items []domain.Item) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estocando - Níveis de estoque", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.now(), len(items)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range itemRows(items) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar relatório de estoque: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(generatedAt time.Time, count int) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Estocando", props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1}),
			text.New("Relatório de níveis de estoque", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(generatedAt.Format("02/01/2006 15:04"), props.Text{Size: 8, Align: align.Right, Top: 2, Color: colorGray}),
			text.New(fmt.Sprintf("%d itens", count), props.Text{Size: 8, Align: align.Right, Top: 9, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Item", 5, align.Left),
		h("Descrição", 5, align.Left),
		h("Quantidade", 2, align.Right),
	)
}

func itemRows(items []domain.Item) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		qtyProps := props.Text{Size: 9, Align: align.Right, Top: 1}
		if it.Quantity == 0 {
			qtyProps.Style = fontstyle.Bold
			qtyProps.Color = colorAlert
		}
		desc := "-"
		if it.Description != nil && *it.Description != "" {
			desc = *it.Description
		}
		rows = append(rows, row.New(7).Add(
			col.New(5).Add(text.New(it.Name, props.Text{Size: 9, Top: 1})),
			col.New(5).Add(text.New(desc, props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(strconv.Itoa(it.Quantity), qtyProps)),
		))
	}
	return rows
}

func totalRow(items []domain.Item) core.Row {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return row.New(9).Add(
		col.New(10).Add(text.New("Total de unidades", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2})),
		col.New(2).Add(text.New(strconv.Itoa(total), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2})),
	)
}
