package gobble

type EventType string

const (
	EventSceneEnter EventType = "scene-enter"
	EventSceneLeave EventType = "scene-leave"
	EventClick      EventType = "click"
	EventSound      EventType = "sound"
	EventExplode    EventType = "explode"
	EventRoundStart EventType = "round-start"
	EventGameOver   EventType = "game-over"
)

type EventSceneData struct {
	From, To string
	Payload  any
}
