package main

// hudRows 顶部 HUD 占用的行数
const hudRows = 2

// viewport 场地坐标与终端格子之间的换算
type viewport struct {
	cols, rows int
	fieldW     float64
	fieldH     float64
}

func newViewport(cols, rows int, fieldW, fieldH float64) viewport {
	return viewport{cols: cols, rows: rows, fieldW: fieldW, fieldH: fieldH}
}

// playRows 可用于绘制场地的行数
func (v viewport) playRows() int {
	if v.rows <= hudRows+1 {
		return 1
	}
	return v.rows - hudRows - 1
}

// toCell 场地坐标转格子,第二个返回值表示是否落在屏幕内
func (v viewport) toCell(x, y float64) (int, int, bool) {
	if v.cols <= 0 || v.fieldW <= 0 || v.fieldH <= 0 {
		return 0, 0, false
	}
	col := int(x / v.fieldW * float64(v.cols))
	row := int(y/v.fieldH*float64(v.playRows())) + hudRows
	if x < 0 || y < 0 || col >= v.cols || row >= hudRows+v.playRows() {
		return col, row, false
	}
	return col, row, true
}

// toField 格子中心转场地坐标,超出场地的行被夹到边缘
func (v viewport) toField(col, row int) (float64, float64) {
	if v.cols <= 0 {
		return 0, 0
	}
	r := row - hudRows
	if r < 0 {
		r = 0
	}
	if r >= v.playRows() {
		r = v.playRows() - 1
	}
	x := (float64(col) + 0.5) / float64(v.cols) * v.fieldW
	y := (float64(r) + 0.5) / float64(v.playRows()) * v.fieldH
	return x, y
}

// cellRadius 场地半径换算成的横向格子数,至少为 0
func (v viewport) cellRadius(r float64) int {
	if v.fieldW <= 0 {
		return 0
	}
	return int(r / v.fieldW * float64(v.cols))
}
