package entity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPendingApproval BookingStatus = "pending_approval"
	BookingStatusApproved        BookingStatus = "approved"
	BookingStatusConfirmed       BookingStatus = "confirmed"
	BookingStatusRejected        BookingStatus = "rejected"
	BookingStatusCancelled       BookingStatus = "cancelled"
	BookingStatusCompleted       BookingStatus = "completed"
)

// BookingAction is a requested status change on a booking
type BookingAction string

const (
	BookingActionApprove  BookingAction = "approve"
	BookingActionReject   BookingAction = "reject"
	BookingActionConfirm  BookingAction = "confirm"
	BookingActionComplete BookingAction = "complete"
	BookingActionCancel   BookingAction = "cancel"
)

// ErrActorNotAllowed is returned when the acting user's role or ownership
// does not permit an otherwise legal transition.
var ErrActorNotAllowed = errors.New("actor is not allowed to perform this action on the booking")

// TransitionError reports an attempt to move a booking along an edge that is
// not in the transition table.
type TransitionError struct {
	From   BookingStatus
	Action BookingAction
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a booking in status %q", e.Action, e.From)
}

type transitionKey struct {
	From   BookingStatus
	Action BookingAction
}

type transitionRule struct {
	To    BookingStatus
	Roles []string
	// OwnerOnly requires non-admin actors to own the booking
	// (company matches CompanyID or trainer matches TrainerID).
	OwnerOnly bool
}

// transitionTable encodes the legal booking lifecycle. Any (status, action)
// pair absent from this map is illegal. The legacy "pending" status from the
// pre-rewrite system is unreachable vocabulary and is intentionally not a key.
var transitionTable = map[transitionKey]transitionRule{
	{BookingStatusPendingApproval, BookingActionApprove}: {To: BookingStatusApproved, Roles: []string{RoleAdmin}},
	{BookingStatusPendingApproval, BookingActionReject}:  {To: BookingStatusRejected, Roles: []string{RoleAdmin}},
	{BookingStatusPendingApproval, BookingActionCancel}:  {To: BookingStatusCancelled, Roles: []string{RoleCompany, RoleTrainer}, OwnerOnly: true},
	{BookingStatusApproved, BookingActionConfirm}:        {To: BookingStatusConfirmed, Roles: []string{RoleAdmin, RoleTrainer}, OwnerOnly: true},
	{BookingStatusApproved, BookingActionCancel}:         {To: BookingStatusCancelled, Roles: []string{RoleCompany, RoleTrainer}, OwnerOnly: true},
	{BookingStatusConfirmed, BookingActionComplete}:      {To: BookingStatusCompleted, Roles: []string{RoleAdmin, RoleTrainer}, OwnerOnly: true},
	{BookingStatusConfirmed, BookingActionCancel}:        {To: BookingStatusCancelled, Roles: []string{RoleCompany, RoleTrainer}, OwnerOnly: true},
}

// NonTerminalStatuses are the statuses that occupy a trainer's time slot.
// Only these participate in conflict checks.
func NonTerminalStatuses() []BookingStatus {
	return []BookingStatus{BookingStatusPendingApproval, BookingStatusApproved, BookingStatusConfirmed}
}

// IsTerminal reports whether no further transitions are possible.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingStatusRejected, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPendingApproval, BookingStatusApproved, BookingStatusConfirmed,
		BookingStatusRejected, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// Transition resolves the destination status for action performed by actor on
// booking. Edge legality is checked before authorization, so an illegal
// (status, action) pair surfaces as a *TransitionError regardless of who asks.
func (s BookingStatus) Transition(action BookingAction, actor Actor, booking *Booking) (BookingStatus, error) {
	rule, ok := transitionTable[transitionKey{From: s, Action: action}]
	if !ok {
		return "", &TransitionError{From: s, Action: action}
	}

	roleAllowed := false
	for _, role := range rule.Roles {
		if actor.RoleName() == role {
			roleAllowed = true
			break
		}
	}
	if !roleAllowed {
		return "", ErrActorNotAllowed
	}

	if rule.OwnerOnly && !actor.Owns(booking) {
		return "", ErrActorNotAllowed
	}

	return rule.To, nil
}

// Actor is the acting identity behind a booking mutation. Ownership semantics
// differ per role, so each role carries its own implementation.
type Actor interface {
	RoleName() string
	Owns(booking *Booking) bool
}

// AdminActor acts with full authority; admins own every booking.
type AdminActor struct {
	ID uuid.UUID
}

func (a AdminActor) RoleName() string { return RoleAdmin }

func (a AdminActor) Owns(*Booking) bool { return true }

// TrainerActor owns bookings addressed to the trainer.
type TrainerActor struct {
	ID uuid.UUID
}

func (a TrainerActor) RoleName() string { return RoleTrainer }

func (a TrainerActor) Owns(booking *Booking) bool {
	return booking != nil && booking.TrainerID == a.ID
}

// CompanyActor owns bookings it requested.
type CompanyActor struct {
	ID uuid.UUID
}

func (a CompanyActor) RoleName() string { return RoleCompany }

func (a CompanyActor) Owns(booking *Booking) bool {
	return booking != nil && booking.CompanyID == a.ID
}

// ActorForRole builds the actor for a role id, as carried in JWT claims.
func ActorForRole(roleID int, userID uuid.UUID) (Actor, error) {
	switch roleID {
	case RoleIDAdmin:
		return AdminActor{ID: userID}, nil
	case RoleIDTrainer:
		return TrainerActor{ID: userID}, nil
	case RoleIDCompany:
		return CompanyActor{ID: userID}, nil
	}
	return nil, fmt.Errorf("unknown role id %d", roleID)
}
