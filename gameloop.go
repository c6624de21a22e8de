package vapesort

import "time"

type LoopData struct {
	Time  time.Time
	Frame int64
	Delta float64
}
