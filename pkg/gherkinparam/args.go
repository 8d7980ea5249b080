package gherkinparam

// Arguments 宿主框架暴露的可变步骤参数列表。
//
// 宿主在步骤执行前交出参数，解析器原地改写，宿主随后用改写后的参数执行步骤。
type Arguments interface {
	Len() int
	At(i int) any
	Set(i int, v any)
}

// Args 基于切片的 [Arguments] 实现。
type Args []any

// Len 实现 [Arguments]。
func (a Args) Len() int { return len(a) }

// At 实现 [Arguments]。
func (a Args) At(i int) any { return a[i] }

// Set 实现 [Arguments]。
func (a Args) Set(i int, v any) { a[i] = v }

// Table 表格形式的步骤参数。
//
// Rows 按行、列顺序返回单元格；Replace 用解析后的单元格构造同类表格，
// 保证下游仍然拿到表格类型。
type Table interface {
	Rows() [][]string
	Replace(rows [][]any) Table
}

// Grid 内存中的二维表格，实现 [Table]。
type Grid [][]any

// NewGrid 由字符串单元格构造 Grid。
func NewGrid(rows [][]string) Grid {
	g := make(Grid, len(rows))
	for i, row := range rows {
		g[i] = make([]any, len(row))
		for j, cell := range row {
			g[i][j] = cell
		}
	}

	return g
}

// Rows 实现 [Table]，非字符串单元格经 [Format] 转换。
func (g Grid) Rows() [][]string {
	rows := make([][]string, len(g))
	for i, row := range g {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			rows[i][j] = Format(cell)
		}
	}

	return rows
}

// Replace 实现 [Table]。
func (g Grid) Replace(rows [][]any) Table { return Grid(rows) }
