package prediction

// TeamPrediction is a team's chance of finishing first, as a percentage rounded to one decimal.
type TeamPrediction struct {
	TeamID      int64
	TeamName    string
	ShortName   string
	Probability float64
}
