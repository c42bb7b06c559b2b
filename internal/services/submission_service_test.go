package services

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"coursepay/internal/domain"
	"coursepay/internal/domain/models"
	"coursepay/internal/repositories"
)

type fakeStore struct {
	saves   int
	lastKey string
	fail    bool
}

func (f *fakeStore) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	f.saves++
	f.lastKey = key
	if f.fail {
		return domain.StorageError{Op: "save", Err: context.DeadlineExceeded}
	}
	_, _ = io.Copy(io.Discard, r)
	return nil
}

func (f *fakeStore) PublicURL(key string) string {
	return "http://files.local/" + key
}

type chanNotifier struct {
	ch chan models.PaymentConfirmation
}

func (n chanNotifier) Dispatch(ctx context.Context, rec models.PaymentConfirmation) {
	n.ch <- rec
}

func validInput() SubmissionInput {
	return SubmissionInput{
		Name:          "Jane Doe",
		Phone:         "5551234567",
		Email:         "jane@x.com",
		Courses:       "React Basics",
		ReceiptNumber: "R100",
		PaymentAmount: "49.99",
		File:          strings.NewReader("png bytes"),
		Filename:      "receipt.png",
		Size:          9,
		ContentType:   "image/png",
	}
}

func TestSubmitMissingFieldHasNoSideEffects(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	store := &fakeStore{}
	svc := SubmissionService{
		Repo:  repositories.ConfirmationRepository{DB: db},
		Store: store,
	}

	in := validInput()
	in.Email = "   "
	if _, err := svc.Submit(context.Background(), in); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	if store.saves != 0 {
		t.Fatalf("store called %d times on invalid input", store.saves)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("database touched on invalid input: %v", err)
	}
}

func TestSubmitMissingFileHasNoSideEffects(t *testing.T) {
	store := &fakeStore{}
	svc := SubmissionService{Store: store}

	in := validInput()
	in.File = nil
	if _, err := svc.Submit(context.Background(), in); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if store.saves != 0 {
		t.Fatalf("store called %d times without a file part", store.saves)
	}
}

func TestSubmitRejectsNonPositiveAmount(t *testing.T) {
	svc := SubmissionService{Store: &fakeStore{}}

	for _, amount := range []string{"0", "-5", "abc"} {
		in := validInput()
		in.PaymentAmount = amount
		if _, err := svc.Submit(context.Background(), in); !domain.IsValidation(err) {
			t.Fatalf("amount %q: expected ValidationError, got %v", amount, err)
		}
	}
}

func TestSubmitRejectsNonFiniteAmount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	store := &fakeStore{}
	svc := SubmissionService{
		Repo:  repositories.ConfirmationRepository{DB: db},
		Store: store,
	}

	// ParseFloat happily produces these with a nil error
	for _, amount := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf"} {
		in := validInput()
		in.PaymentAmount = amount
		if _, err := svc.Submit(context.Background(), in); !domain.IsValidation(err) {
			t.Fatalf("amount %q: expected ValidationError, got %v", amount, err)
		}
	}

	if store.saves != 0 {
		t.Fatalf("store called %d times on non-finite amounts", store.saves)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("database touched on non-finite amounts: %v", err)
	}
}

func TestSubmitStorageFailureAbortsBeforeInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	svc := SubmissionService{
		Repo:  repositories.ConfirmationRepository{DB: db},
		Store: &fakeStore{fail: true},
	}

	_, err = svc.Submit(context.Background(), validInput())
	if !domain.IsStorage(err) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("record inserted despite upload failure: %v", err)
	}
}

func TestSubmitInsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO payment_confirmations").
		WillReturnError(context.DeadlineExceeded)

	svc := SubmissionService{
		Repo:  repositories.ConfirmationRepository{DB: db},
		Store: &fakeStore{},
	}

	_, err = svc.Submit(context.Background(), validInput())
	if !domain.IsPersistence(err) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}

func TestSubmitAcceptedDispatchesOnce(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO payment_confirmations").
		WillReturnResult(sqlmock.NewResult(0, 1))

	notifier := chanNotifier{ch: make(chan models.PaymentConfirmation, 1)}
	fixed := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	store := &fakeStore{}
	svc := SubmissionService{
		Repo:     repositories.ConfirmationRepository{DB: db},
		Store:    store,
		Notifier: notifier,
		Clock:    func() time.Time { return fixed },
	}

	rec, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.ID == "" || rec.Status != models.StatusPending {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.PaymentAmount != 49.99 {
		t.Fatalf("amount = %v", rec.PaymentAmount)
	}
	if !strings.HasSuffix(store.lastKey, "_receipt.png") {
		t.Fatalf("blob key = %q", store.lastKey)
	}
	if rec.ReceiptFileURL != "http://files.local/"+store.lastKey {
		t.Fatalf("file url = %q", rec.ReceiptFileURL)
	}

	select {
	case got := <-notifier.ch:
		if got.ID != rec.ID {
			t.Fatalf("notifier saw %q, want %q", got.ID, rec.ID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was never invoked")
	}
}
