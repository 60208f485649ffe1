package repository

import (
	"testing"
	"time"

	"madinah_tours/internal/domain/entities"
)

func TestPaymentTransactionItemConversion(t *testing.T) {
	created := time.Date(2026, 9, 1, 10, 30, 0, 123456789, time.UTC)
	tx := entities.PaymentTransaction{
		ID:         "tx-1",
		SessionID:  "sess-1",
		BookingID:  "bk-1",
		Amount:     149.90,
		Currency:   "BRL",
		PayerEmail: "ahmed@example.com",
		Metadata:   map[string]string{"booking_id": "bk-1", "site_name": "Quba Mosque"},
		Status:     entities.TransactionStatusPending,
		CreatedAt:  created,
		UpdatedAt:  created,
	}

	it := toPaymentTransactionItem(tx)
	if it.Amount != "149.9" {
		t.Fatalf("expected string amount 149.9, got %q", it.Amount)
	}
	if it.Status != "pending" {
		t.Fatalf("expected pending status, got %q", it.Status)
	}

	back := fromPaymentTransactionItem(it)
	if back.ID != tx.ID || back.SessionID != tx.SessionID || back.BookingID != tx.BookingID {
		t.Fatalf("identifiers changed in round trip: %+v", back)
	}
	if back.Amount != tx.Amount {
		t.Fatalf("amount changed in round trip: %v != %v", back.Amount, tx.Amount)
	}
	if !back.CreatedAt.Equal(tx.CreatedAt) {
		t.Fatalf("created_at changed in round trip: %v != %v", back.CreatedAt, tx.CreatedAt)
	}
	if back.Metadata["site_name"] != "Quba Mosque" {
		t.Fatalf("metadata lost in round trip: %+v", back.Metadata)
	}
}

func TestFloatToString(t *testing.T) {
	cases := map[float64]string{
		150:    "150",
		149.9:  "149.9",
		0.1:    "0.1",
		1234.5: "1234.5",
	}
	for in, want := range cases {
		if got := floatToString(in); got != want {
			t.Fatalf("floatToString(%v) = %q, want %q", in, got, want)
		}
	}
}
