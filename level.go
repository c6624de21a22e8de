package vapesort

// Level describes the rules layered on top of the base game once it is
// reached. A zero FallSpeed leaves item speeds alone. Number must match the
// level's position in the list; zero means "fill it in".
type Level struct {
	Number     int        `yaml:"number"`
	FallSpeed  float64    `yaml:"fall_speed"`
	ExtraItems int        `yaml:"extra_items"`
	SpawnPool  []ItemSpec `yaml:"spawn_pool"`
}

func (l Level) pool(seed []ItemSpec) []ItemSpec {
	if len(l.SpawnPool) > 0 {
		return l.SpawnPool
	}
	return seed
}
