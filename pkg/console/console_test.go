package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diillson/customer-analytics-dashboard-go/internal/shared/types"
)

func TestRenderBarsScalesToLargestValue(t *testing.T) {
	out := RenderBars(types.BarChart{
		XAxisLabel: "단위: 만원",
		YAxisLabel: "구매 수",
		Bars: []types.Bar{
			{Label: "0~1", Value: 10},
			{Label: "1~2", Value: 5},
			{Label: "2~3", Value: 0},
		},
	})

	assert.Contains(t, out, "단위: 만원")
	assert.Contains(t, out, "구매 수")
	assert.Contains(t, out, "0~1")
	assert.Contains(t, out, "2~3")
	assert.Equal(t, barWidth+barWidth/2, strings.Count(out, "█"))
}

func TestRenderBarsTinyValuesStillVisible(t *testing.T) {
	out := RenderBars(types.BarChart{
		Bars: []types.Bar{
			{Label: "a", Value: 1000},
			{Label: "b", Value: 1},
		},
	})

	assert.Equal(t, barWidth+1, strings.Count(out, "█"))
}

func TestTableRenderIncludesHeaderAndRows(t *testing.T) {
	table := NewConsole().CreateTable()
	table.AddColumn("ID")
	table.AddColumn("이름")
	table.AddRow(1, "Kim")

	out := table.Render()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "이름")
	assert.Contains(t, out, "Kim")
}
