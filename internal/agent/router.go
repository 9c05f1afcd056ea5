// README: Top-level dispatcher: request shape + declared type -> workflow handler.
package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"aura/internal/modules/classify"
	"aura/internal/modules/knowledge"
	"aura/internal/modules/schedule"
)

// Router inspects the request shape and requested type and dispatches to the
// knowledge workflow or the itinerary synthesizer. A caller-declared type is
// trusted and bypasses classification entirely; only "auto" (or unset) runs
// the classifier. Route always returns a well-typed envelope: the handlers
// below never raise past their own boundary.
type Router struct {
	classifier *classify.Service
	knowledge  *knowledge.Service
	planner    *schedule.Service
}

// NewRouter wires the dispatcher.
func NewRouter(classifier *classify.Service, kb *knowledge.Service, planner *schedule.Service) *Router {
	return &Router{classifier: classifier, knowledge: kb, planner: planner}
}

// Route processes one request and wraps the result in the response envelope.
func (r *Router) Route(ctx context.Context, req QueryRequest) Envelope {
	if req.Structured && req.Data != nil {
		return r.routeStructured(ctx, req)
	}
	return r.routePrompt(ctx, req)
}

// routeStructured dispatches structured-data requests. Declared trip-planner
// requests go straight to the synthesizer; any other declared type falls
// through to the knowledge workflow via a prompt rendering of the payload.
func (r *Router) routeStructured(ctx context.Context, req QueryRequest) Envelope {
	if requestType(req.Type) == TypeTripPlanner {
		sched := r.planner.Synthesize(ctx, req.Data.TripDetails, req.Data.Requirements, req.Data.AvailableActivities)
		return Envelope{Result: sched}
	}
	return Envelope{Result: r.knowledge.Handle(ctx, renderStructuredPrompt(req.Data))}
}

// routePrompt dispatches free-text requests, classifying when type is auto.
func (r *Router) routePrompt(ctx context.Context, req QueryRequest) Envelope {
	query := req.Prompt

	declared := requestType(req.Type)
	if declared == TypeAuto {
		if r.classifier.QueryType(ctx, query) == classify.QueryTypeTripPlanner {
			declared = TypeTripPlanner
		} else {
			declared = TypeDefault
		}
	}

	if declared == TypeTripPlanner {
		return Envelope{Result: r.planner.SynthesizeFromPrompt(ctx, query)}
	}
	return Envelope{Result: r.knowledge.Handle(ctx, query)}
}

// requestType normalizes the declared type; anything unrecognized means auto.
func requestType(t string) string {
	switch t {
	case TypeDefault, TypeTripPlanner:
		return t
	default:
		return TypeAuto
	}
}

// renderStructuredPrompt turns a structured payload into request text for the
// knowledge workflow.
func renderStructuredPrompt(data *RequestData) string {
	raw, err := json.Marshal(data)
	if err != nil {
		// Marshalling request data cannot realistically fail, but the router
		// must still hand the workflow something usable.
		return fmt.Sprintf("Process this structured request: %+v", data)
	}
	return "Process this structured request:\n" + string(raw)
}
