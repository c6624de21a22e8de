package vapesort

type EventType string

const (
	EventPickedUp     EventType = "picked-up"
	EventDecomposed   EventType = "decomposed"
	EventDisposal     EventType = "disposal"
	EventLevelChanged EventType = "level-changed"
	EventItemsSpawned EventType = "items-spawned"
	EventConfigReload EventType = "config-reload"
)

type EventPickedUpData struct {
	Item *Item
}

type EventDecomposedData struct {
	Parent   *Item
	Children []*Item
}

type EventLevelChangedData struct {
	From, To int
}

type EventItemsSpawnedData struct {
	Level int
	Items []*Item
}
