package config

type Config struct {
	Stats   Stats   `yaml:"stats"`
	Search  Search  `yaml:"search"`
	Display Display `yaml:"display"`
}

// Stats supplies per-species sprite stats with a fallback for unlisted
// species. Keys of Species are species names ("elf", "goblin").
type Stats struct {
	Defaults Stat            `yaml:"defaults"`
	Species  map[string]Stat `yaml:"species"`
}

type Stat struct {
	HitPoints   int    `yaml:"hit_points"`
	AttackPower int    `yaml:"attack_power"`
	Note        string `yaml:"note"`
}

type Search struct {
	StartPower int `yaml:"start_power"`
	MaxPower   int `yaml:"max_power"`
	Workers    int `yaml:"workers"`
}

type Display struct {
	Speed int    `yaml:"speed"`
	UI    string `yaml:"ui"`
}

const (
	DefaultHitPoints   = 200
	DefaultAttackPower = 3
	DefaultStartPower  = 4
	DefaultMaxPower    = 200
	DefaultWorkers     = 8
	DefaultSpeed       = 1
	MaxSpeed           = 5
)

var UIs = []string{"tea", "tcell", "none"}
