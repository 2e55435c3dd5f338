package services

type eventDeps struct {
	rt *RealtimeHub
}

var _events eventDeps

func InitEventDeps(rt *RealtimeHub) {
	_events = eventDeps{rt: rt}
}

// EmitEvent pushes a dashboard event to the user's open sockets. Safe to
// call anywhere; a no-op before init (and in tests).
func EmitEvent(userID uint, kind string, payload any) {
	if _events.rt == nil {
		return
	}
	_events.rt.BroadcastEvent(userID, map[string]any{
		"kind": kind,
		"data": payload,
	})
}
