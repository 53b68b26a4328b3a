package report

// GridPoint is one row of a parameter sweep's results.
type GridPoint struct {
	Label    string  `json:"label"`
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"`
}

// LOOCVReport is loocv-tool's output: the full grid plus the selected
// best point.
type LOOCVReport struct {
	Dataset string      `json:"dataset"`
	Family  string      `json:"family"`
	Grid    []GridPoint `json:"grid"`
	Best    GridPoint   `json:"best"`
}

// NNKGridReport is nnk-grid's output: 1-NN accuracy for each measure
// tried against a dataset.
type NNKGridReport struct {
	Dataset string      `json:"dataset"`
	Results []GridPoint `json:"results"`
}
