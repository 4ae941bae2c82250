// Package ioadapter translates between the wire JSON request/response shapes
// of spec.md §6 and the internal ganging types. Grounded on
// original_source/api/optimizer.py's parse_input_data and
// format_layout_for_output.
package ioadapter

import (
	"encoding/json"
	"fmt"

	"github.com/piwi3910/ganger/internal/ganging"
)

type requestJSON struct {
	Options struct {
		TimeoutSeconds    int `json:"timeoutSeconds"`
		NumberOfSolutions int `json:"numberOfSolutions"`
		Penalties         struct {
			DifferentPressSheetPenalty   int `json:"differentPressSheetPenalty"`
			DifferentFactorySheetPenalty int `json:"differentFactorySheetPenalty"`
			DifferentMachinePenalty      int `json:"differentMachinePenalty"`
		} `json:"penalties"`
	} `json:"options"`
	CommonDetails struct {
		DollarRate float64 `json:"dollarRate"`
	} `json:"commonDetails"`
	Jobs          []ganging.Job            `json:"jobs"`
	Machines      []ganging.Machine        `json:"machines"`
	AvailableCuts []ganging.AvailableCutMap `json:"availableCuts"`
}

// ParseInput decodes a request body into a ganging.Input. It does
// not call Validate itself; callers run that once, right before solving.
func ParseInput(data []byte) (ganging.Input, error) {
	var req requestJSON
	if err := json.Unmarshal(data, &req); err != nil {
		return ganging.Input{}, fmt.Errorf("decoding request: %w", err)
	}

	return ganging.Input{
		Options: ganging.Options{
			TimeoutSeconds:    req.Options.TimeoutSeconds,
			NumberOfSolutions: req.Options.NumberOfSolutions,
			Penalties: ganging.Penalties{
				DifferentPressSheetPenalty:   req.Options.Penalties.DifferentPressSheetPenalty,
				DifferentFactorySheetPenalty: req.Options.Penalties.DifferentFactorySheetPenalty,
				DifferentMachinePenalty:      req.Options.Penalties.DifferentMachinePenalty,
			},
		},
		DollarRate:    req.CommonDetails.DollarRate,
		Jobs:          req.Jobs,
		Machines:      req.Machines,
		AvailableCuts: req.AvailableCuts,
	}, nil
}
