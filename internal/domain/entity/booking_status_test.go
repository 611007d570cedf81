package entity

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(companyID, trainerID uuid.UUID, status BookingStatus) *Booking {
	return &Booking{
		ID:        uuid.New(),
		CompanyID: companyID,
		TrainerID: trainerID,
		Status:    status,
	}
}

func TestTransitionLifecycleHappyPath(t *testing.T) {
	companyID := uuid.New()
	trainerID := uuid.New()
	admin := AdminActor{ID: uuid.New()}
	trainer := TrainerActor{ID: trainerID}

	booking := newTestBooking(companyID, trainerID, BookingStatusPendingApproval)

	next, err := booking.Status.Transition(BookingActionApprove, admin, booking)
	require.NoError(t, err)
	assert.Equal(t, BookingStatusApproved, next)
	booking.Status = next

	next, err = booking.Status.Transition(BookingActionConfirm, trainer, booking)
	require.NoError(t, err)
	assert.Equal(t, BookingStatusConfirmed, next)
	booking.Status = next

	next, err = booking.Status.Transition(BookingActionComplete, trainer, booking)
	require.NoError(t, err)
	assert.Equal(t, BookingStatusCompleted, next)
}

func TestTransitionIllegalEdges(t *testing.T) {
	companyID := uuid.New()
	trainerID := uuid.New()
	admin := AdminActor{ID: uuid.New()}

	cases := []struct {
		name   string
		from   BookingStatus
		action BookingAction
	}{
		{"approve an approved booking", BookingStatusApproved, BookingActionApprove},
		{"reject an approved booking", BookingStatusApproved, BookingActionReject},
		{"confirm before approval", BookingStatusPendingApproval, BookingActionConfirm},
		{"complete before confirmation", BookingStatusApproved, BookingActionComplete},
		{"complete a pending booking", BookingStatusPendingApproval, BookingActionComplete},
		{"cancel a completed booking", BookingStatusCompleted, BookingActionCancel},
		{"cancel a cancelled booking", BookingStatusCancelled, BookingActionCancel},
		{"approve a rejected booking", BookingStatusRejected, BookingActionApprove},
		{"confirm a rejected booking", BookingStatusRejected, BookingActionConfirm},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			booking := newTestBooking(companyID, trainerID, tc.from)
			_, err := booking.Status.Transition(tc.action, admin, booking)

			var transitionErr *TransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, tc.from, transitionErr.From)
			assert.Equal(t, tc.action, transitionErr.Action)
		})
	}
}

// Illegal edges must surface as transition errors even for actors whose role
// would never be authorized, so callers can distinguish "impossible" from
// "not yours".
func TestTransitionLegalityCheckedBeforeAuthorization(t *testing.T) {
	booking := newTestBooking(uuid.New(), uuid.New(), BookingStatusCompleted)
	stranger := CompanyActor{ID: uuid.New()}

	_, err := booking.Status.Transition(BookingActionCancel, stranger, booking)

	var transitionErr *TransitionError
	assert.ErrorAs(t, err, &transitionErr)
}

func TestTransitionRoleGates(t *testing.T) {
	companyID := uuid.New()
	trainerID := uuid.New()
	company := CompanyActor{ID: companyID}
	trainer := TrainerActor{ID: trainerID}
	admin := AdminActor{ID: uuid.New()}

	t.Run("only admin approves", func(t *testing.T) {
		booking := newTestBooking(companyID, trainerID, BookingStatusPendingApproval)
		_, err := booking.Status.Transition(BookingActionApprove, company, booking)
		assert.ErrorIs(t, err, ErrActorNotAllowed)
		_, err = booking.Status.Transition(BookingActionApprove, trainer, booking)
		assert.ErrorIs(t, err, ErrActorNotAllowed)
	})

	t.Run("only admin rejects", func(t *testing.T) {
		booking := newTestBooking(companyID, trainerID, BookingStatusPendingApproval)
		_, err := booking.Status.Transition(BookingActionReject, trainer, booking)
		assert.ErrorIs(t, err, ErrActorNotAllowed)
	})

	t.Run("company cannot confirm", func(t *testing.T) {
		booking := newTestBooking(companyID, trainerID, BookingStatusApproved)
		_, err := booking.Status.Transition(BookingActionConfirm, company, booking)
		assert.ErrorIs(t, err, ErrActorNotAllowed)
	})

	t.Run("company cannot complete", func(t *testing.T) {
		booking := newTestBooking(companyID, trainerID, BookingStatusConfirmed)
		_, err := booking.Status.Transition(BookingActionComplete, company, booking)
		assert.ErrorIs(t, err, ErrActorNotAllowed)
	})

	t.Run("admin cannot cancel", func(t *testing.T) {
		for _, from := range []BookingStatus{BookingStatusPendingApproval, BookingStatusApproved, BookingStatusConfirmed} {
			booking := newTestBooking(companyID, trainerID, from)
			_, err := booking.Status.Transition(BookingActionCancel, admin, booking)
			assert.ErrorIs(t, err, ErrActorNotAllowed, "cancel from %s", from)
		}
	})
}

func TestTransitionOwnershipGates(t *testing.T) {
	companyID := uuid.New()
	trainerID := uuid.New()

	t.Run("other company cannot cancel", func(t *testing.T) {
		booking := newTestBooking(companyID, trainerID, BookingStatusPendingApproval)
		_, err := booking.Status.Transition(BookingActionCancel, CompanyActor{ID: uuid.New()}, booking)
		assert.ErrorIs(t, err, ErrActorNotAllowed)
	})

	t.Run("other trainer cannot confirm", func(t *testing.T) {
		booking := newTestBooking(companyID, trainerID, BookingStatusApproved)
		_, err := booking.Status.Transition(BookingActionConfirm, TrainerActor{ID: uuid.New()}, booking)
		assert.ErrorIs(t, err, ErrActorNotAllowed)
	})

	t.Run("owning company cancels", func(t *testing.T) {
		booking := newTestBooking(companyID, trainerID, BookingStatusApproved)
		next, err := booking.Status.Transition(BookingActionCancel, CompanyActor{ID: companyID}, booking)
		require.NoError(t, err)
		assert.Equal(t, BookingStatusCancelled, next)
	})

	t.Run("assigned trainer cancels confirmed session", func(t *testing.T) {
		booking := newTestBooking(companyID, trainerID, BookingStatusConfirmed)
		next, err := booking.Status.Transition(BookingActionCancel, TrainerActor{ID: trainerID}, booking)
		require.NoError(t, err)
		assert.Equal(t, BookingStatusCancelled, next)
	})
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, BookingStatusRejected.IsTerminal())
	assert.True(t, BookingStatusCancelled.IsTerminal())
	assert.True(t, BookingStatusCompleted.IsTerminal())

	assert.False(t, BookingStatusPendingApproval.IsTerminal())
	assert.False(t, BookingStatusApproved.IsTerminal())
	assert.False(t, BookingStatusConfirmed.IsTerminal())

	assert.ElementsMatch(t,
		[]BookingStatus{BookingStatusPendingApproval, BookingStatusApproved, BookingStatusConfirmed},
		NonTerminalStatuses(),
	)
}

// No action may leave a terminal status.
func TestNoTransitionsOutOfTerminalStatuses(t *testing.T) {
	admin := AdminActor{ID: uuid.New()}
	actions := []BookingAction{
		BookingActionApprove, BookingActionReject, BookingActionConfirm,
		BookingActionComplete, BookingActionCancel,
	}

	for _, from := range []BookingStatus{BookingStatusRejected, BookingStatusCancelled, BookingStatusCompleted} {
		for _, action := range actions {
			booking := newTestBooking(uuid.New(), uuid.New(), from)
			_, err := booking.Status.Transition(action, admin, booking)

			var transitionErr *TransitionError
			assert.True(t, errors.As(err, &transitionErr), "%s from %s should be illegal", action, from)
		}
	}
}

func TestActorForRole(t *testing.T) {
	userID := uuid.New()

	actor, err := ActorForRole(RoleIDAdmin, userID)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, actor.RoleName())

	actor, err = ActorForRole(RoleIDTrainer, userID)
	require.NoError(t, err)
	assert.Equal(t, RoleTrainer, actor.RoleName())

	actor, err = ActorForRole(RoleIDCompany, userID)
	require.NoError(t, err)
	assert.Equal(t, RoleCompany, actor.RoleName())

	_, err = ActorForRole(99, userID)
	assert.Error(t, err)
}

func TestAdminOwnsEverything(t *testing.T) {
	admin := AdminActor{ID: uuid.New()}
	assert.True(t, admin.Owns(newTestBooking(uuid.New(), uuid.New(), BookingStatusApproved)))
	assert.True(t, admin.Owns(nil))
}
