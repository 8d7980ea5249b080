package godogparam

import (
	"regexp"
	"strings"

	"github.com/cucumber/godog"

	"github.com/lwmacct/251207-go-pkg-gherkinparam/pkg/gherkinparam"
)

var quotedArg = regexp.MustCompile(`"([^"]*)"`)

type argKind int

const (
	argText argKind = iota
	argDocString
	argTable
)

// stepArguments 以 [gherkinparam.Arguments] 形式暴露 godog 步骤的参数。
type stepArguments struct {
	step  *godog.Step
	parts []string // 步骤文本按引号参数切分，参数位于 slots 指向的位置
	slots []int
	kinds []argKind
	args  []any
}

// StepArguments 返回步骤的可变参数列表，顺序为：
//  1. 步骤文本中双引号内的字符串，按出现顺序
//  2. DocString 内容
//  3. 数据表格（[gherkinparam.Table]，Replace 原地写回单元格）
//
// Set 会立即写回 st，字符串类值经 [gherkinparam.Format] 转换。
func StepArguments(st *godog.Step) gherkinparam.Arguments {
	a := &stepArguments{step: st}

	prev := 0
	for _, loc := range quotedArg.FindAllStringSubmatchIndex(st.Text, -1) {
		a.parts = append(a.parts, st.Text[prev:loc[2]])
		a.slots = append(a.slots, len(a.parts))
		a.parts = append(a.parts, st.Text[loc[2]:loc[3]])
		a.kinds = append(a.kinds, argText)
		a.args = append(a.args, st.Text[loc[2]:loc[3]])
		prev = loc[3]
	}
	a.parts = append(a.parts, st.Text[prev:])

	if arg := st.Argument; arg != nil {
		if arg.DocString != nil {
			a.slots = append(a.slots, -1)
			a.kinds = append(a.kinds, argDocString)
			a.args = append(a.args, arg.DocString.Content)
		}
		if arg.DataTable != nil {
			a.slots = append(a.slots, -1)
			a.kinds = append(a.kinds, argTable)
			a.args = append(a.args, dataTable{table: arg.DataTable})
		}
	}

	return a
}

func (a *stepArguments) Len() int { return len(a.args) }

func (a *stepArguments) At(i int) any { return a.args[i] }

func (a *stepArguments) Set(i int, v any) {
	a.args[i] = v

	switch a.kinds[i] {
	case argText:
		a.parts[a.slots[i]] = gherkinparam.Format(v)
		a.step.Text = strings.Join(a.parts, "")
	case argDocString:
		a.step.Argument.DocString.Content = gherkinparam.Format(v)
	case argTable:
		// dataTable.Replace 已原地写回
	}
}

// dataTable 包装 godog 表格，实现 [gherkinparam.Table]。
type dataTable struct {
	table *godog.Table
}

func (d dataTable) Rows() [][]string {
	rows := make([][]string, len(d.table.Rows))
	for i, row := range d.table.Rows {
		rows[i] = make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			rows[i][j] = cell.Value
		}
	}

	return rows
}

func (d dataTable) Replace(rows [][]any) gherkinparam.Table {
	for i, row := range d.table.Rows {
		for j, cell := range row.Cells {
			cell.Value = gherkinparam.Format(rows[i][j])
		}
	}

	return d
}
