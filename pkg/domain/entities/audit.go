package entities

// StepInput is one named literal that entered a calculation step.
type StepInput struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

// CalculationStep is the audit unit behind every computed number: the formula
// in symbols, the named inputs, the substituted arithmetic, the display-rounded
// result, and the source citation that lets an advisor verify the figure.
// Result is rounded for display only; dependent steps are always computed from
// the unrounded values.
type CalculationStep struct {
	Name        string            `json:"name"`
	Formula     string            `json:"formula"`
	Inputs      []StepInput       `json:"inputs,omitempty"`
	Calculation string            `json:"calculation,omitempty"`
	Result      float64           `json:"result"`
	Unit        string            `json:"unit,omitempty"`
	Source      string            `json:"source,omitempty"`
	Substeps    []CalculationStep `json:"substeps,omitempty"`
}
