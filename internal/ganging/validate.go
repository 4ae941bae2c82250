package ganging

// Input is the parsed request: options, dollar rate, jobs, machines, and the
// factory-to-printing-sheet cut map.
type Input struct {
	Options       Options
	DollarRate    float64
	Jobs          []Job
	Machines      []Machine
	AvailableCuts []AvailableCutMap
}

// Validate checks the structural invariants spec'd for input validation:
// missing fields, negative dimensions, non-positive quantity, and unknown
// material references all fail the whole request before any solving starts.
func (in Input) Validate() error {
	if len(in.Jobs) == 0 {
		return NewValidationError("jobs", "at least one job is required")
	}
	if len(in.Machines) == 0 {
		return NewValidationError("machines", "at least one machine is required")
	}
	if in.Options.NumberOfSolutions < 1 {
		return NewValidationError("options.numberOfSolutions", "must be >= 1")
	}
	if in.DollarRate <= 0 {
		return NewValidationError("commonDetails.dollarRate", "must be positive")
	}

	seenJobIDs := make(map[string]bool, len(in.Jobs))
	for _, j := range in.Jobs {
		if j.ID == "" {
			return NewValidationError("jobs[].id", "job id must not be empty")
		}
		if seenJobIDs[j.ID] {
			return NewValidationError("jobs[].id", "duplicate job id "+j.ID)
		}
		seenJobIDs[j.ID] = true

		if j.Width <= 0 || j.Length <= 0 {
			return NewValidationError("jobs["+j.ID+"].width/length", "must be positive")
		}
		if j.Quantity <= 0 {
			return NewValidationError("jobs["+j.ID+"].quantity", "must be >= 1")
		}
		if j.FrontInks < 0 || j.BackInks < 0 {
			return NewValidationError("jobs["+j.ID+"].inks", "must be >= 0")
		}
		if j.Material.ID == "" {
			return NewValidationError("jobs["+j.ID+"].material", "unknown material reference")
		}
		if len(j.Material.FactorySizes) == 0 {
			return NewValidationError("jobs["+j.ID+"].material.factorySizes", "material has no factory sizes")
		}
	}

	for _, m := range in.Machines {
		if m.ID == "" {
			return NewValidationError("machines[].id", "machine id must not be empty")
		}
		if m.MaxSheetSize.Width <= 0 || m.MaxSheetSize.Length <= 0 {
			return NewValidationError("machines["+m.ID+"].maxSheetSize", "must be positive")
		}
	}

	return nil
}
