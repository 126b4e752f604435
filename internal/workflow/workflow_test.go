package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sahilahmed21/HomeShare/internal/domain"
	portsmocks "github.com/sahilahmed21/HomeShare/internal/service/ports/mocks"
	"github.com/sahilahmed21/HomeShare/internal/workflow/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func juneRange() domain.StayRange {
	return domain.StayRange{
		CheckIn:  time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC),
	}
}

type flowFixture struct {
	mgr     *Manager
	ops     *mocks.MockReservationOps
	gateway *portsmocks.MockPaymentGateway
	users   *portsmocks.MockUserRepo
}

func newFlowFixture(t *testing.T) *flowFixture {
	t.Helper()
	ops := mocks.NewMockReservationOps(t)
	gateway := portsmocks.NewMockPaymentGateway(t)
	users := portsmocks.NewMockUserRepo(t)

	return &flowFixture{
		mgr:     NewManager(ops, gateway, users, newTestLogger(t)),
		ops:     ops,
		gateway: gateway,
		users:   users,
	}
}

// startFlow opens a flow for requester u1 on listing l1.
func (f *flowFixture) startFlow(t *testing.T) Snapshot {
	t.Helper()
	f.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil).Once()

	snap, err := f.mgr.Start(context.Background(), "l1", "u1")
	require.NoError(t, err)
	return snap
}

// reviewFlow drives a fresh flow to the payment review state.
func (f *flowFixture) reviewFlow(t *testing.T) Snapshot {
	t.Helper()
	snap := f.startFlow(t)
	ctx := context.Background()

	f.ops.EXPECT().Quote(mock.Anything, "l1", juneRange()).Return(&domain.Quote{Nights: 3, TotalPrice: 300}, nil).Once()
	f.ops.EXPECT().Hold(mock.Anything, "l1", "u1", juneRange()).Return(&domain.Booking{
		ID:          "b1",
		ListingID:   "l1",
		RequesterID: "u1",
		Status:      domain.BookingStatusPending,
	}, nil).Once()

	_, err := f.mgr.SelectDates(ctx, snap.ID, juneRange())
	require.NoError(t, err)

	snap, err = f.mgr.Review(ctx, snap.ID)
	require.NoError(t, err)
	require.Equal(t, StateReviewingPayment, snap.State)
	return snap
}

func TestManager_Start_RequesterNotFound(t *testing.T) {
	f := newFlowFixture(t)

	f.users.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, err := f.mgr.Start(context.Background(), "l1", "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestManager_Get_UnknownFlow(t *testing.T) {
	f := newFlowFixture(t)

	_, err := f.mgr.Get("nope")

	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestWorkflow_StartsSelectingDates(t *testing.T) {
	f := newFlowFixture(t)

	snap := f.startFlow(t)

	assert.Equal(t, StateSelectingDates, snap.State)
	assert.Equal(t, "l1", snap.ListingID)
	assert.Equal(t, "u1", snap.RequesterID)
	assert.Nil(t, snap.Candidate)
	assert.Nil(t, snap.Quote)
}

func TestWorkflow_SelectDates_StoresCandidate(t *testing.T) {
	f := newFlowFixture(t)
	snap := f.startFlow(t)

	snap, err := f.mgr.SelectDates(context.Background(), snap.ID, juneRange())

	require.NoError(t, err)
	require.NotNil(t, snap.Candidate)
	assert.Equal(t, juneRange(), *snap.Candidate)
}

func TestWorkflow_Review_WithoutDates(t *testing.T) {
	f := newFlowFixture(t)
	snap := f.startFlow(t)

	_, err := f.mgr.Review(context.Background(), snap.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWorkflow_Review_MovesToPaymentReview(t *testing.T) {
	f := newFlowFixture(t)

	snap := f.reviewFlow(t)

	require.NotNil(t, snap.Quote)
	assert.Equal(t, 3, snap.Quote.Nights)
	assert.Equal(t, 300.0, snap.Quote.TotalPrice)
}

func TestWorkflow_Review_RejectionStaysSelecting(t *testing.T) {
	f := newFlowFixture(t)
	snap := f.startFlow(t)
	ctx := context.Background()

	f.ops.EXPECT().Quote(mock.Anything, "l1", juneRange()).Return(nil, domain.ErrOutOfWindow)

	_, err := f.mgr.SelectDates(ctx, snap.ID, juneRange())
	require.NoError(t, err)

	_, err = f.mgr.Review(ctx, snap.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOutOfWindow)

	snap, err = f.mgr.Get(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, StateSelectingDates, snap.State)
	assert.NotNil(t, snap.Candidate, "rejected dates stay entered for correction")
}

func TestWorkflow_Review_ListingGoneAbandons(t *testing.T) {
	f := newFlowFixture(t)
	snap := f.startFlow(t)
	ctx := context.Background()

	f.ops.EXPECT().Quote(mock.Anything, "l1", juneRange()).Return(nil, domain.ErrListingNotFound)

	_, err := f.mgr.SelectDates(ctx, snap.ID, juneRange())
	require.NoError(t, err)

	_, err = f.mgr.Review(ctx, snap.ID)
	require.Error(t, err)

	snap, err = f.mgr.Get(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, StateAbandoned, snap.State)
}

func TestWorkflow_Back_PreservesDatesAndReleasesHold(t *testing.T) {
	f := newFlowFixture(t)
	snap := f.reviewFlow(t)
	ctx := context.Background()

	f.ops.EXPECT().Cancel(mock.Anything, "b1").Return(nil)

	snap, err := f.mgr.Back(ctx, snap.ID)

	require.NoError(t, err)
	assert.Equal(t, StateSelectingDates, snap.State)
	require.NotNil(t, snap.Candidate, "entered dates survive going back")
	assert.Equal(t, juneRange(), *snap.Candidate)
	assert.Nil(t, snap.Quote)
}

func TestWorkflow_Confirm_Success(t *testing.T) {
	f := newFlowFixture(t)
	snap := f.reviewFlow(t)
	ctx := context.Background()

	confirmed := &domain.Booking{
		ID:          "b1",
		ListingID:   "l1",
		RequesterID: "u1",
		Status:      domain.BookingStatusConfirmed,
	}
	f.gateway.EXPECT().Charge(mock.Anything, "u1", 300.0).Return(nil)
	f.ops.EXPECT().Commit(mock.Anything, "b1").Return(confirmed, nil)

	snap, err := f.mgr.Confirm(ctx, snap.ID)

	require.NoError(t, err)
	assert.Equal(t, StateCommitted, snap.State)
	require.NotNil(t, snap.Booking)
	assert.Equal(t, domain.BookingStatusConfirmed, snap.Booking.Status)
}

func TestWorkflow_Confirm_ChargeDeclined(t *testing.T) {
	f := newFlowFixture(t)
	snap := f.reviewFlow(t)
	ctx := context.Background()

	f.gateway.EXPECT().Charge(mock.Anything, "u1", 300.0).Return(errors.New("card declined"))
	f.ops.EXPECT().Cancel(mock.Anything, "b1").Return(nil)

	_, err := f.mgr.Confirm(ctx, snap.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfirmationFailed)

	snap, err = f.mgr.Get(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, StateSelectingDates, snap.State)
	assert.NotNil(t, snap.Candidate, "dates survive a declined charge")
}

func TestWorkflow_Confirm_LosesRace(t *testing.T) {
	f := newFlowFixture(t)
	snap := f.reviewFlow(t)
	ctx := context.Background()

	f.gateway.EXPECT().Charge(mock.Anything, "u1", 300.0).Return(nil)
	// The commit cancels the losing hold itself; no separate Cancel call.
	f.ops.EXPECT().Commit(mock.Anything, "b1").Return(nil, domain.ErrConcurrentConflict)

	_, err := f.mgr.Confirm(ctx, snap.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConcurrentConflict)

	snap, err = f.mgr.Get(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, StateSelectingDates, snap.State)
}

func TestWorkflow_Confirm_AbandonDuringChargeWins(t *testing.T) {
	f := newFlowFixture(t)
	snap := f.reviewFlow(t)
	ctx := context.Background()
	flowID := snap.ID

	// Abandon fires while the charge is in flight. The hold is released by the
	// abandon and the commit must never run.
	f.ops.EXPECT().Cancel(mock.Anything, "b1").Return(nil).Once()
	f.gateway.EXPECT().Charge(mock.Anything, "u1", 300.0).RunAndReturn(
		func(ctx context.Context, requesterID string, amount float64) error {
			require.NoError(t, f.mgr.Abandon(ctx, flowID))
			return nil
		},
	)

	_, err := f.mgr.Confirm(ctx, flowID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = f.mgr.Get(flowID)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestWorkflow_Confirm_ChargeCancelledStaysInReview(t *testing.T) {
	f := newFlowFixture(t)
	snap := f.reviewFlow(t)
	ctx := context.Background()

	f.gateway.EXPECT().Charge(mock.Anything, "u1", 300.0).Return(context.Canceled)

	_, err := f.mgr.Confirm(ctx, snap.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	snap, err = f.mgr.Get(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, StateReviewingPayment, snap.State, "an unresolved charge leaves the flow retryable")
}

func TestWorkflow_Confirm_NotInReview(t *testing.T) {
	f := newFlowFixture(t)
	snap := f.startFlow(t)

	_, err := f.mgr.Confirm(context.Background(), snap.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestWorkflow_SelectDates_AfterCommitRejected(t *testing.T) {
	f := newFlowFixture(t)
	snap := f.reviewFlow(t)
	ctx := context.Background()

	f.gateway.EXPECT().Charge(mock.Anything, "u1", 300.0).Return(nil)
	f.ops.EXPECT().Commit(mock.Anything, "b1").Return(&domain.Booking{
		ID:     "b1",
		Status: domain.BookingStatusConfirmed,
	}, nil)

	_, err := f.mgr.Confirm(ctx, snap.ID)
	require.NoError(t, err)

	_, err = f.mgr.SelectDates(ctx, snap.ID, juneRange())
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestWorkflow_Abandon_ReleasesHold(t *testing.T) {
	f := newFlowFixture(t)
	snap := f.reviewFlow(t)
	ctx := context.Background()

	f.ops.EXPECT().Cancel(mock.Anything, "b1").Return(nil)

	err := f.mgr.Abandon(ctx, snap.ID)

	require.NoError(t, err)

	_, err = f.mgr.Get(snap.ID)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestWorkflow_Abandon_WithoutHold(t *testing.T) {
	f := newFlowFixture(t)
	snap := f.startFlow(t)

	err := f.mgr.Abandon(context.Background(), snap.ID)

	require.NoError(t, err)
}

func TestWorkflow_Abandon_CommittedRejected(t *testing.T) {
	f := newFlowFixture(t)
	snap := f.reviewFlow(t)
	ctx := context.Background()

	f.gateway.EXPECT().Charge(mock.Anything, "u1", 300.0).Return(nil)
	f.ops.EXPECT().Commit(mock.Anything, "b1").Return(&domain.Booking{
		ID:     "b1",
		Status: domain.BookingStatusConfirmed,
	}, nil)

	_, err := f.mgr.Confirm(ctx, snap.ID)
	require.NoError(t, err)

	err = f.mgr.Abandon(ctx, snap.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
