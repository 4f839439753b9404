package calendar

// GridSize is six full weeks.
const GridSize = 42

// BuildMonthGrid returns the 42 days shown for anchor's month, starting on
// the Sunday on or before the 1st.
func BuildMonthGrid(anchor Date) []Date {
	first := NewDate(anchor.Year, anchor.Month, 1)
	start := first.AddDays(-int(first.Weekday()))

	cells := make([]Date, GridSize)
	for i := range cells {
		cells[i] = start.AddDays(i)
	}

	return cells
}

// InMonth reports whether cell belongs to anchor's month. Cells outside it
// are shown de-emphasised but stay interactive.
func InMonth(cell, anchor Date) bool {
	return cell.Year == anchor.Year && cell.Month == anchor.Month
}

// MonthBounds returns the first and last day of anchor's month.
func MonthBounds(anchor Date) (Date, Date) {
	first := NewDate(anchor.Year, anchor.Month, 1)
	last := DateOf(first.Time().AddDate(0, 1, -1))
	return first, last
}

// Weeks splits grid cells into rows of seven.
func Weeks(cells []Date) [][]Date {
	var res [][]Date
	for i := 0; i < len(cells); i += 7 {
		end := i + 7
		if end > len(cells) {
			end = len(cells)
		}
		res = append(res, cells[i:end])
	}

	return res
}
