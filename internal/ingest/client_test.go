package ingest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"review_radar/internal/domain"
	"review_radar/internal/ingest"
)

func TestClient_Submit_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			if err := r.ParseForm(); err != nil {
				t.Errorf("parse form: %v", err)
			}
			if r.PostForm.Get("Location") != "Denver, Colorado" {
				t.Errorf("unexpected form: %v", r.PostForm)
			}
			w.WriteHeader(201)
			_ = json.NewEncoder(w).Encode(domain.Review{
				ID:        "id-1",
				Body:      r.PostForm.Get("ReviewBody"),
				Location:  r.PostForm.Get("Location"),
				CreatedAt: domain.Timestamp{Time: time.Now().Truncate(time.Second)},
			})
		}
	}))
	defer ts.Close()

	cl := ingest.NewClient(ts.URL, 100) // high RPS for tests
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got, err := cl.Submit(ctx, "Denver, Colorado", "Great service!")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != "id-1" || got.Body != "Great service!" {
		t.Fatalf("unexpected review: %+v", got)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestClient_Submit_RejectionIsTerminal(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(400)
		_, _ = w.Write([]byte(`{"error":"Invalid Location"}`))
	}))
	defer ts.Close()

	cl := ingest.NewClient(ts.URL, 100)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := cl.Submit(ctx, "Nowhere, Nowhere", "text")
	if !errors.Is(err, ingest.ErrRejected) {
		t.Fatalf("want ErrRejected, got %v", err)
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("400 must not be retried, got %d calls", hits)
	}
}
