package ioformat

// NoiseConfig is the noise-backed grid's serialised parameters, including
// the already-resolved (val_limit, cell_limit) thresholds so the solver
// never has to recompute the quantile selection.
type NoiseConfig struct {
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Amplitude   float64 `yaml:"amplitude"`
	Frequency   float64 `yaml:"frequency"`
	CellSize    int     `yaml:"cell_size"`
	ValLimit    uint32  `yaml:"val_limit"`
	CellLimit   int     `yaml:"cell_limit"`
}

// GridConfig carries exactly one of Noise or Custom, never both or
// neither (spec.md §6 "Exactly one ... is non-null").
type GridConfig struct {
	Width     int         `yaml:"width"`
	Height    int         `yaml:"height"`
	Obstacles int         `yaml:"obstacles"`
	Noise     *NoiseConfig `yaml:"noise"`
	Custom    *[][2]int    `yaml:"custom"`
}

// AgentsConfig is the frozen set of scripted agent trajectories.
type AgentsConfig struct {
	Paths [][][2]int `yaml:"paths"`
}

// Instance is the generator-output / solver-input document (spec.md §6).
type Instance struct {
	Kind    string       `yaml:"kind"`
	ID      string       `yaml:"id"`
	Seed    uint64       `yaml:"seed"`
	Greedy  bool         `yaml:"greedy"`
	TimeMax int          `yaml:"time_max"`
	AuxPath string       `yaml:"aux_path,omitempty"`
	Init    [2]int       `yaml:"init"`
	Goal    [2]int       `yaml:"goal"`
	Grid    GridConfig   `yaml:"grid"`
	Agents  AgentsConfig `yaml:"agents"`
}

// PathInfo is the path-shaped part of a Solution document.
type PathInfo struct {
	Path   [][2]int `yaml:"path"`
	Weight float64  `yaml:"weight"`
	Time   int      `yaml:"time"`
	Waits  int      `yaml:"waits"`
}

// Solution is the solver-output document (spec.md §6).
type Solution struct {
	Kind           string   `yaml:"kind"`
	ExpandedStates int      `yaml:"expanded_states"`
	OpenedStates   int      `yaml:"opened_states"`
	PathInfo       PathInfo `yaml:"path_info"`
}

// SizeSettings is the generator settings document's grid size block.
type SizeSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AgentsSettings is the generator settings document's agent-spawning
// parameters.
type AgentsSettings struct {
	Number          int     `yaml:"number"`
	StopProbability float64 `yaml:"stop_probability"`
}

// NoiseSettings is the generator settings document's noise parameters,
// all optional (nil means "use the spec default"), mirroring
// original_source/instance_gen/args.rs::NoiseParams's Option<T> fields.
type NoiseSettings struct {
	Octaves     *int     `yaml:"octaves"`
	Persistence *float64 `yaml:"persistence"`
	Lacunarity  *float64 `yaml:"lacunarity"`
	Amplitude   *float64 `yaml:"amplitude"`
	Frequency   *float64 `yaml:"frequency"`
	CellSize    *int     `yaml:"cell_size"`
}

// Settings is the generator's own input document (kind: settings), not
// part of spec.md §6's documented schemas but required to drive the
// generator from a config file; see DESIGN.md's ioformat entry.
type Settings struct {
	Kind      string          `yaml:"kind"`
	ID        string          `yaml:"id"`
	Seed      *uint64         `yaml:"seed"`
	Size      *SizeSettings   `yaml:"size"`
	Obstacles *int            `yaml:"obstacles"`
	TimeMax   *int            `yaml:"time_max"`
	Greedy    bool            `yaml:"greedy"`
	AuxPath   string          `yaml:"aux_path"`
	Agents    *AgentsSettings `yaml:"agents"`
	Noise     *NoiseSettings  `yaml:"noise"`
}
