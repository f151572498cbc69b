package workflow

import (
	"hr-support-be/internal/constant"
)

// Router picks the responder for a state after the escalation check. Routing
// is a pure lookup: escalation wins first, then the category table, then the
// default responder. Unknown categories never fail, they fall back.
type Router struct {
	responders map[string]Responder
	fallback   Responder
	escalation Responder
}

func NewRouter(responders map[string]Responder, fallback, escalation Responder) *Router {
	return &Router{
		responders: responders,
		fallback:   fallback,
		escalation: escalation,
	}
}

func (r *Router) Route(state *State) Responder {
	if state.ShouldEscalate {
		return r.escalation
	}
	category := state.Category
	if category == "" {
		category = constant.CategoryGeneral
	}
	if responder, ok := r.responders[category]; ok {
		return responder
	}
	return r.fallback
}
