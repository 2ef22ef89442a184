package wcag

// Minimum ratios for each success criterion. These are fixed by WCAG 2.0.
const (
	MinAANormal  Ratio = 4.5
	MinAALarge   Ratio = 3.0
	MinAAANormal Ratio = 7.0
	MinAAALarge  Ratio = 4.5
)

// Compliance records which criteria a ratio meets
type Compliance struct {
	AANormal  bool `json:"aa_normal"`
	AALarge   bool `json:"aa_large"`
	AAANormal bool `json:"aaa_normal"`
	AAALarge  bool `json:"aaa_large"`
}

// Evaluate checks a ratio against the four thresholds (inclusive)
func Evaluate(r Ratio) Compliance {
	return Compliance{
		AANormal:  r >= MinAANormal,
		AALarge:   r >= MinAALarge,
		AAANormal: r >= MinAAANormal,
		AAALarge:  r >= MinAAALarge,
	}
}

// Level is the single highest conformance reached
type Level int

const (
	LevelFail Level = iota
	LevelAALarge
	LevelAA
	LevelAAA
)

func (l Level) String() string {
	switch l {
	case LevelAAA:
		return "AAA (excellent)"
	case LevelAA:
		return "AA (good)"
	case LevelAALarge:
		return "AA for large text only (limited)"
	default:
		return "FAIL (insufficient contrast)"
	}
}

// Label returns a short machine-friendly name for the level
func (l Level) Label() string {
	switch l {
	case LevelAAA:
		return "aaa"
	case LevelAA:
		return "aa"
	case LevelAALarge:
		return "aa_large"
	default:
		return "fail"
	}
}

// Level summarizes the record: normal-text levels first, then large text only.
func (c Compliance) Level() Level {
	switch {
	case c.AAANormal:
		return LevelAAA
	case c.AANormal:
		return LevelAA
	case c.AALarge:
		return LevelAALarge
	default:
		return LevelFail
	}
}

// TextSize distinguishes the normal and large text criteria
type TextSize int

const (
	NormalText TextSize = iota
	LargeText
)

// Threshold is one row of the compliance table
type Threshold struct {
	Level   string // "AA" or "AAA"
	Size    TextSize
	Minimum Ratio
}

// Passed reports whether the threshold is met in c
func (t Threshold) Passed(c Compliance) bool {
	switch {
	case t.Level == "AA" && t.Size == NormalText:
		return c.AANormal
	case t.Level == "AA":
		return c.AALarge
	case t.Size == NormalText:
		return c.AAANormal
	default:
		return c.AAALarge
	}
}

// Thresholds returns the four criteria in report order
func Thresholds() []Threshold {
	return []Threshold{
		{Level: "AA", Size: NormalText, Minimum: MinAANormal},
		{Level: "AA", Size: LargeText, Minimum: MinAALarge},
		{Level: "AAA", Size: NormalText, Minimum: MinAAANormal},
		{Level: "AAA", Size: LargeText, Minimum: MinAAALarge},
	}
}
