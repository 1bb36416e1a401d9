package config

// DifficultyManager turns score or elapsed ticks into a difficulty level in
// [0, 1] and scales speeds by it.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clamp01(cfg.InitialLevel),
	}
}

func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clamp01(level)
}

func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled reports whether the level moves during play.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level interpolates from the initial level to 1 as score or ticks approach
// the progression's MaxAt.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))
	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	return d.initialLevel + clamp01(progress)*(1-d.initialLevel)
}

// Speed scales base from 1x at level 0 to (1+SpeedMultiplier)x at level 1.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Skill interpolates a CPU skill between cpu.MinSkill and cpu.MaxSkill.
func (d *DifficultyManager) Skill(cpu CPUConfig, score, ticks int) float64 {
	return cpu.MinSkill + d.Level(score, ticks)*(cpu.MaxSkill-cpu.MinSkill)
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
