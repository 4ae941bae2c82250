// Package ganging holds the immutable value types shared by every stage of
// the print-shop ganging pipeline: parsed input (jobs, machines, materials),
// derived layouts, and the final production plan.
package ganging

// Size is a rectangle's footprint in integer millimetres.
type Size struct {
	Width  int `json:"width"`
	Length int `json:"length"`
}

// EqualUnderRotation reports whether two sizes match as a {w,l} multiset,
// i.e. one is the other rotated 90 degrees.
func (s Size) EqualUnderRotation(o Size) bool {
	return (s.Width == o.Width && s.Length == o.Length) ||
		(s.Width == o.Length && s.Length == o.Width)
}

// Area returns width * length.
func (s Size) Area() int {
	return s.Width * s.Length
}

// FactorySize is a stock sheet size available from the mill, priced per ton.
type FactorySize struct {
	Size
	USDPerTon float64 `json:"usdPerTon"`
}

// Material is a paper stock: grammage, special flag, and the factory sheet
// sizes it ships in.
type Material struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Grammage    int           `json:"grammage"`
	IsSpecial   bool          `json:"isSpecial"`
	FactorySizes []FactorySize `json:"factorySizes"`
}

// Job is a single print job: a rectangle, a quantity demand, ink needs, and
// the material it must be printed on.
type Job struct {
	ID                string   `json:"id"`
	Width             int      `json:"width"`
	Length            int      `json:"length"`
	Quantity          int      `json:"quantity"`
	Rotatable         bool     `json:"rotatable"` // unused by packing, see geometry package doc
	Material          Material `json:"material"`
	FrontInks         int      `json:"frontInks"`
	BackInks          int      `json:"backInks"`
	IsDuplex          bool     `json:"isDuplex"`
	SamePlatesForBack bool     `json:"samePlatesForBack"`
}

// Area returns width * length for this job's rectangle.
func (j Job) Area() int {
	return j.Width * j.Length
}

// CostInfo is a priced line item: a unit price plus the unit it's charged per.
type CostInfo struct {
	Price      float64 `json:"price"`
	PerInk     bool    `json:"perInk"`
	PerInkPass bool    `json:"perInkPass"`
}

// ImpressionCostInfo is the impression line item: priced per thousand sheets
// (spec.md §8 E1: `impressionCost.pricePerThousand`), unlike setup/wash which
// are priced flat per passes/plates.
type ImpressionCostInfo struct {
	PricePerThousand float64 `json:"pricePerThousand"`
	PerInk           bool    `json:"perInk"`
	PerInkPass       bool    `json:"perInkPass"`
}

// Overage is the extra printing-sheet count added to a run to absorb makeready waste.
type Overage struct {
	Amount  int  `json:"amount"`
	PerInk  bool `json:"perInk"`
}

// Machine is a press: its ink stations, maximum sheet, and cost structure.
type Machine struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	PrintingBodies       *int               `json:"printingBodies"` // nil means unusable (infinite passes)
	MaxSheetSize         Size               `json:"maxSheetSize"`
	Overage              Overage            `json:"overage"`
	MinImpressionsCharge *int               `json:"minImpressionsCharge"`
	SetupCost            CostInfo           `json:"setupCost"`
	WashCost             CostInfo           `json:"washCost"`
	ImpressionCost       ImpressionCostInfo `json:"impressionCost"`
}

// FitsWithinMaxSheet reports whether sheet fits within the machine's maximum
// sheet size under either orientation (long side vs long side, short vs short).
func (m Machine) FitsWithinMaxSheet(sheet Size) bool {
	maxLong, maxShort := longShort(m.MaxSheetSize)
	sheetLong, sheetShort := longShort(sheet)
	return sheetLong <= maxLong && sheetShort <= maxShort
}

func longShort(s Size) (long, short int) {
	if s.Width >= s.Length {
		return s.Width, s.Length
	}
	return s.Length, s.Width
}

// AvailableCutMap maps a factory paper size to the printing-sheet sizes it
// may legally be cut into.
type AvailableCutMap struct {
	ForPaperSize Size   `json:"forPaperSize"`
	SheetSizes   []Size `json:"sheetSizes"`
}

// Penalties are integer percent-of-total-cost surcharges for each extra
// distinct resource (press sheet, factory sheet, machine) a plan touches.
type Penalties struct {
	DifferentPressSheetPenalty   int `json:"differentPressSheetPenalty"`
	DifferentFactorySheetPenalty int `json:"differentFactorySheetPenalty"`
	DifferentMachinePenalty      int `json:"differentMachinePenalty"`
}

// Options configures the solve: wall-clock budget, how many ranked ganged
// solutions to return, and the diversity penalties.
type Options struct {
	TimeoutSeconds   int       `json:"timeoutSeconds"`
	NumberOfSolutions int      `json:"numberOfSolutions"`
	Penalties        Penalties `json:"penalties"`
}

// Placement is one job's rectangle positioned inside a printing sheet.
type Placement struct {
	JobID  string `json:"id"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Length int    `json:"length"`
}

// Layout is a printing-sheet size plus how many of each job fit per sheet
// and where. Placements are guaranteed non-overlapping and sheet-bounded.
type Layout struct {
	PrintingSheet Size
	CountPerJob   map[string]int
	Placements    []Placement
}

// JobIDs returns the layout's job ids in sorted order (deterministic iteration).
func (l Layout) JobIDs() []string {
	ids := make([]string, 0, len(l.CountPerJob))
	for id := range l.CountPerJob {
		ids = append(ids, id)
	}
	sortStrings(ids)
	return ids
}

func sortStrings(ids []string) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}

// PrintNeeds captures the derived technique/plates/passes for a layout on a machine.
type PrintNeeds struct {
	Technique   string `json:"technique"` // "SIMPLEX" or "DUPLEX"
	TotalPlates int    `json:"totalPlates"`
	Passes      int    `json:"passes"` // large sentinel when the machine is unusable
}

// PrintingCostBreakdown is the per-component cost of running a layout's
// press time (setup + wash + impressions).
type PrintingCostBreakdown struct {
	SetupCost           int `json:"setupCost"` // cents
	WashCost            int `json:"washCost"`
	ImpressionCost      int `json:"impressionCost"`
	TotalPrintingCost   int `json:"totalPrintingCost"`
}

// FactorySheetPlan records which factory size was chosen, how many are
// needed, and the grid-cut plan used to cut printing sheets from it.
type FactorySheetPlan struct {
	Size            FactorySize `json:"size"`
	QuantityNeeded  int         `json:"quantityNeeded"`
	CutsPerSheet    int         `json:"cutsPerSheet"`
}

// MaterialNeeds is the material-cost side of a layout's pricing.
type MaterialNeeds struct {
	TotalMaterialCost int              `json:"totalMaterialCost"` // cents
	FactorySheets     FactorySheetPlan `json:"factorySheets"`
}

// CostBreakdown is the full cost split for a priced layout.
type CostBreakdown struct {
	MaterialCost int                   `json:"materialCost"` // cents
	PrintingCost PrintingCostBreakdown `json:"printingCost"`
}

// PricedLayout is a Layout bound to one machine with a computed cost and
// net print run.
type PricedLayout struct {
	LayoutID      string
	Layout        Layout
	Machine       Machine
	NetSheets     int
	TotalCost     int // cents
	CostBreakdown CostBreakdown
	MaterialNeeds MaterialNeeds
	PrintNeeds    PrintNeeds
}

// Plan is a selected set of priced layouts and their total cost.
type Plan struct {
	Layouts   []PricedLayout
	TotalCost int // cents
}
