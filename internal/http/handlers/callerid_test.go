package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/truecall-backend/internal/callerid"
	"github.com/yungbote/truecall-backend/internal/data/repos"
	"github.com/yungbote/truecall-backend/internal/data/repos/testutil"
)

func newCallerIDEngine(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	setGinTestMode()
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	resolver := callerid.NewResolver(
		gdb,
		log,
		repos.NewContactRepo(gdb, log),
		repos.NewSpamRepo(gdb, log),
		repos.NewCallLogRepo(gdb, log),
	)
	h := NewCallerIDHandler(log, resolver)
	r := gin.New()
	r.POST("/api/caller-id/lookup", h.Lookup)
	return r, gdb
}

func TestLookupKnownContact(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r, gdb := newCallerIDEngine(t)
	testutil.SeedContact(t, ctx, gdb, "Alice", "9876543210")

	req := httptest.NewRequest(http.MethodPost, "/api/caller-id/lookup", strings.NewReader(`{"phone_number":"9876543210"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d body=%s", rec.Code, rec.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["found"] != true || body["source"] != "contacts" || body["name"] != "Alice" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestLookupUnknownNumberClassifies(t *testing.T) {
	t.Parallel()

	r, _ := newCallerIDEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/api/caller-id/lookup", strings.NewReader(`{"phone_number":"18001234567"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d body=%s", rec.Code, rec.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["found"] != false || body["source"] != "ai_inference" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if body["name"] != "Toll-Free / Business" {
		t.Fatalf("unexpected name: %v", body["name"])
	}
}

func TestLookupRequiresPhoneNumber(t *testing.T) {
	t.Parallel()

	r, _ := newCallerIDEngine(t)

	for _, payload := range []string{`{}`, `{"phone_number":"  "}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/api/caller-id/lookup", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("payload %s: unexpected status: got=%d want=%d", payload, rec.Code, http.StatusBadRequest)
		}
		var body map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["found"] != false {
			t.Fatalf("error responses must carry found=false: %s", rec.Body.String())
		}
	}
}
