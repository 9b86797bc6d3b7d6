package pattern

// Kind — номер рисунка босса, 0..8 по кругу.
type Kind int

const (
	FixedCircle Kind = iota
	FastRotation
	SingleSpiral
	Windmill
	Cross
	ComplexSweep
	Rice
	DualSpiral
	VariableRotation

	// количество рисунков
	Count = 9
)

func (k Kind) String() string {
	switch k {
	case FixedCircle:
		return "fixed_circle"
	case FastRotation:
		return "fast_rotation"
	case SingleSpiral:
		return "single_spiral"
	case Windmill:
		return "windmill"
	case Cross:
		return "cross"
	case ComplexSweep:
		return "complex_sweep"
	case Rice:
		return "rice"
	case DualSpiral:
		return "dual_spiral"
	case VariableRotation:
		return "variable_rotation"
	}
	return "unknown"
}

// Next wraps around after the last pattern.
func (k Kind) Next() Kind {
	return (k + 1) % Count
}

// Config — параметры активного рисунка. Каждый рисунок хранит только
// свои поля; конкретный тип выбирается Setup.
type Config interface {
	Kind() Kind
}

type CircleConfig struct {
	Density int
	Radius  float64
}

type FastRotationConfig struct {
	Lines int
	Phase int
}

type SingleSpiralConfig struct {
	MaxDuration int
}

type WindmillConfig struct {
	Arms      int
	ArmLength float64
}

type CrossConfig struct {
	Density int
	Angle   float64 // градусы
}

type SweepConfig struct {
	Angle   float64 // градусы
	Bullets int
}

type RiceConfig struct {
	Layers  int
	Spacing float64
}

// DualSpiralConfig: две фазы вращения в противоположные стороны.
type DualSpiralConfig struct {
	Phase          int
	Duration       int
	Phase1Duration int
	Phase2Duration int
	Direction1     float64
	Direction2     float64
}

// VariableRotationConfig меняет скорость вращения по циклу из 120 шагов.
type VariableRotationConfig struct {
	BaseSpeed    float64
	Acceleration float64
	MaxSpeed     float64
	AccelPhase   int
}

func (*CircleConfig) Kind() Kind           { return FixedCircle }
func (*FastRotationConfig) Kind() Kind     { return FastRotation }
func (*SingleSpiralConfig) Kind() Kind     { return SingleSpiral }
func (*WindmillConfig) Kind() Kind         { return Windmill }
func (*CrossConfig) Kind() Kind            { return Cross }
func (*SweepConfig) Kind() Kind            { return ComplexSweep }
func (*RiceConfig) Kind() Kind             { return Rice }
func (*DualSpiralConfig) Kind() Kind       { return DualSpiral }
func (*VariableRotationConfig) Kind() Kind { return VariableRotation }
