package booking

import "ouiimi/models"

// Actor identifies who is driving a booking state change.
type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorBusiness Actor = "business"
	ActorGateway  Actor = "gateway"
	ActorSystem   Actor = "system"
)

// transition is a single allowed edge in the booking lifecycle.
type transition struct {
	From  models.BookingStatus
	To    models.BookingStatus
	Actor Actor
}

// validTransitions is the authoritative lifecycle definition. Handlers never
// overwrite status fields directly; everything funnels through this table.
var validTransitions = []transition{
	// Deposit payment confirms the booking; only the gateway drives this edge.
	{From: models.BookingPending, To: models.BookingConfirmed, Actor: ActorGateway},

	// Either side can cancel before or after confirmation.
	{From: models.BookingPending, To: models.BookingCancelled, Actor: ActorCustomer},
	{From: models.BookingPending, To: models.BookingCancelled, Actor: ActorBusiness},
	{From: models.BookingConfirmed, To: models.BookingCancelled, Actor: ActorCustomer},
	{From: models.BookingConfirmed, To: models.BookingCancelled, Actor: ActorBusiness},

	// The background worker completes a confirmed booking once its slot elapses.
	{From: models.BookingConfirmed, To: models.BookingCompleted, Actor: ActorSystem},
}

type transitionKey struct {
	From  models.BookingStatus
	To    models.BookingStatus
	Actor Actor
}

var transitionSet = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool, len(validTransitions))
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// CanTransition reports whether the given actor may move a booking between the
// two states. Re-entering the current state is never listed; callers treat
// that case as an idempotent no-op instead.
func CanTransition(from, to models.BookingStatus, actor Actor) bool {
	return transitionSet[transitionKey{from, to, actor}]
}
