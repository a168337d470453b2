package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"ouiimi/models"

	"github.com/stripe/stripe-go/v76"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeBookingRepo struct {
	booking       *models.Booking
	confirmCalls  int
	writeAttempts int
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) { return f.booking, nil }
func (f *fakeBookingRepo) GetByPaymentIntentID(paymentIntentID string) (*models.Booking, error) {
	return f.booking, nil
}
func (f *fakeBookingRepo) GetByUserID(userID string) ([]models.Booking, error)         { return nil, nil }
func (f *fakeBookingRepo) GetByBusinessID(businessID string) ([]models.Booking, error) { return nil, nil }
func (f *fakeBookingRepo) CreateWithSlotClaim(ctx context.Context, b *models.Booking) error {
	f.writeAttempts++
	return nil
}
func (f *fakeBookingRepo) SetPaymentRefs(id, paymentIntentID, checkoutSessionID string) error {
	f.writeAttempts++
	return nil
}

// ConfirmDeposit reports a performed transition only on the first call,
// mirroring the conditional update in the Mongo implementation.
func (f *fakeBookingRepo) ConfirmDeposit(paymentIntentID string) (*models.Booking, bool, error) {
	f.confirmCalls++
	f.writeAttempts++
	first := f.booking.Status == models.BookingPending
	if first {
		f.booking.Status = models.BookingConfirmed
		f.booking.PaymentStatus = models.PaymentDepositPaid
	}
	return f.booking, first, nil
}

func (f *fakeBookingRepo) Cancel(id string, paymentStatus models.PaymentStatus) (*models.Booking, error) {
	f.writeAttempts++
	return f.booking, nil
}
func (f *fakeBookingRepo) Complete(id string) (*models.Booking, error) {
	f.writeAttempts++
	return f.booking, nil
}
func (f *fakeBookingRepo) PendingRelease(maxDate string) ([]models.Booking, error) { return nil, nil }
func (f *fakeBookingRepo) Release(id string) (*models.Booking, bool, error) {
	f.writeAttempts++
	return f.booking, true, nil
}

type fakeUserRepo struct {
	user *models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error)           { return f.user, nil }
func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error)     { return f.user, nil }
func (f *fakeUserRepo) GetAll() ([]models.User, error)                    { return nil, nil }
func (f *fakeUserRepo) Create(u *models.User) error                       { return nil }
func (f *fakeUserRepo) Update(u *models.User) error                       { return nil }
func (f *fakeUserRepo) UpdateWithDocument(id string, update bson.M) error { return nil }
func (f *fakeUserRepo) Delete(id string) error                            { return nil }
func (f *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return f.user, nil
}
func (f *fakeUserRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.User, error) {
	return f.user, nil
}
func (f *fakeUserRepo) IsAvailable(email, username string) (bool, error) { return true, nil }

type fakeBizRepo struct {
	business *models.Business
}

func (f *fakeBizRepo) GetByID(id string) (*models.Business, error) { return f.business, nil }
func (f *fakeBizRepo) GetByOwnerID(ownerID string) (*models.Business, error) {
	return f.business, nil
}
func (f *fakeBizRepo) GetAll() ([]models.Business, error)                { return nil, nil }
func (f *fakeBizRepo) Create(b *models.Business) error                   { return nil }
func (f *fakeBizRepo) UpdateWithDocument(id string, update bson.M) error { return nil }

type fakeNotifier struct {
	confirmed int
	reminders int
}

func (f *fakeNotifier) SendBookingConfirmed(c *models.User, b *models.Business, bk *models.Booking) {
	f.confirmed++
}
func (f *fakeNotifier) SendBookingCancelledByCustomer(c *models.User, b *models.Business, bk *models.Booking, refund float64) {
}
func (f *fakeNotifier) SendBookingCancelledByBusiness(c *models.User, b *models.Business, bk *models.Booking, refund float64) {
}
func (f *fakeNotifier) SendBookingReminder(c *models.User, b *models.Business, bk *models.Booking) {
	f.reminders++
}
func (f *fakeNotifier) SendPaymentReleased(b *models.Business, bk *models.Booking) {}
func (f *fakeNotifier) SendPasswordReset(u *models.User, resetToken string)        {}

type fakeScheduler struct {
	reminderAt   []time.Time
	completionAt []time.Time
}

func (f *fakeScheduler) ScheduleReminder(bookingID string, at time.Time) error {
	f.reminderAt = append(f.reminderAt, at)
	return nil
}
func (f *fakeScheduler) ScheduleCompletion(bookingID string, at time.Time) error {
	f.completionAt = append(f.completionAt, at)
	return nil
}

func newConfirmTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeNotifier, *fakeScheduler) {
	repo := &fakeBookingRepo{booking: &models.Booking{
		ID:              "bk-1",
		UserID:          "user-1",
		BusinessID:      "biz-1",
		PaymentIntentID: "pi_1",
		Status:          models.BookingPending,
		PaymentStatus:   models.PaymentUnpaid,
		TimeSlot:        models.TimeSlot{Date: "2026-03-15", StartTime: "13:00", EndTime: "14:00"},
	}}
	notifier := &fakeNotifier{}
	scheduler := &fakeScheduler{}
	svc := &DefaultBookingService{
		Repo:         repo,
		UserRepo:     &fakeUserRepo{user: &models.User{ID: "user-1", Email: "c@x.com"}},
		BusinessRepo: &fakeBizRepo{business: &models.Business{ID: "biz-1", OwnerID: "owner-1", Email: "b@x.com"}},
		Notification: notifier,
		Scheduler:    scheduler,
	}
	return svc, repo, notifier, scheduler
}

// The webhook and the synchronous confirm path can both land for the same
// payment; only the call that performs the transition may send the email and
// enqueue the follow-up tasks.
func TestConfirmTwiceFiresSideEffectsOnce(t *testing.T) {
	svc, repo, notifier, scheduler := newConfirmTestService()

	first, err := svc.confirmByIntent("pi_1")
	if err != nil {
		t.Fatalf("first confirm: %v", err)
	}
	if first.Status != models.BookingConfirmed || first.PaymentStatus != models.PaymentDepositPaid {
		t.Fatalf("first confirm left booking %s/%s", first.Status, first.PaymentStatus)
	}

	second, err := svc.confirmByIntent("pi_1")
	if err != nil {
		t.Fatalf("second confirm: %v", err)
	}
	if second.Status != models.BookingConfirmed {
		t.Fatalf("second confirm left booking %s", second.Status)
	}

	if repo.confirmCalls != 2 {
		t.Errorf("ConfirmDeposit called %d times, want 2", repo.confirmCalls)
	}
	if notifier.confirmed != 1 {
		t.Errorf("confirmation email sent %d times, want 1", notifier.confirmed)
	}
	if len(scheduler.reminderAt) != 1 || len(scheduler.completionAt) != 1 {
		t.Errorf("scheduled %d reminders and %d completions, want 1 each",
			len(scheduler.reminderAt), len(scheduler.completionAt))
	}
}

func TestConfirmSchedulesFollowupsAtSlotTimes(t *testing.T) {
	svc, repo, _, scheduler := newConfirmTestService()

	if _, err := svc.confirmByIntent("pi_1"); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	start, err := repo.booking.TimeSlot.StartsAt(time.Local)
	if err != nil {
		t.Fatalf("StartsAt: %v", err)
	}
	end, err := repo.booking.TimeSlot.EndsAt(time.Local)
	if err != nil {
		t.Fatalf("EndsAt: %v", err)
	}

	if got := scheduler.reminderAt[0]; !got.Equal(start.Add(-24 * time.Hour)) {
		t.Errorf("reminder scheduled at %v, want %v", got, start.Add(-24*time.Hour))
	}
	if got := scheduler.completionAt[0]; !got.Equal(end) {
		t.Errorf("completion scheduled at %v, want %v", got, end)
	}
}

// A payment the gateway has not marked succeeded must leave the booking
// untouched: no transition attempt, no email, nothing scheduled.
func TestNonSucceededIntentTouchesNothing(t *testing.T) {
	svc, repo, notifier, scheduler := newConfirmTestService()

	_, err := svc.confirmIntentStatus(stripe.PaymentIntentStatusRequiresPaymentMethod, "pi_1")
	var pnse *PaymentNotSucceededError
	if !errors.As(err, &pnse) {
		t.Fatalf("expected PaymentNotSucceededError, got %v", err)
	}

	if repo.writeAttempts != 0 {
		t.Errorf("repository written %d times, want 0", repo.writeAttempts)
	}
	if repo.booking.Status != models.BookingPending || repo.booking.PaymentStatus != models.PaymentUnpaid {
		t.Errorf("booking mutated to %s/%s", repo.booking.Status, repo.booking.PaymentStatus)
	}
	if notifier.confirmed != 0 || len(scheduler.reminderAt) != 0 || len(scheduler.completionAt) != 0 {
		t.Error("side effects fired for a non-succeeded payment")
	}
}
