package callerid

import (
	"context"
	"testing"
	"time"

	"github.com/yungbote/truecall-backend/internal/data/repos"
	"github.com/yungbote/truecall-backend/internal/data/repos/testutil"
)

func TestResolvePrefersSavedContact(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	resolver := NewResolver(gdb, log, repos.NewContactRepo(gdb, log), repos.NewSpamRepo(gdb, log), repos.NewCallLogRepo(gdb, log))

	testutil.SeedContact(t, ctx, gdb, "Alice", "9876543210")
	// Even a maxed-out registry score must not shadow a saved contact.
	testutil.SeedSpamRecord(t, ctx, gdb, "9876543210", 100, "scam_likely")

	got, err := resolver.Resolve(ctx, "9876543210")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !got.Found {
		t.Fatalf("expected found=true")
	}
	if got.Source != SourceContacts {
		t.Fatalf("unexpected source: got=%q want=%q", got.Source, SourceContacts)
	}
	if got.Name != "Alice" {
		t.Fatalf("unexpected name: got=%q want=%q", got.Name, "Alice")
	}
	if got.IsSpam {
		t.Fatalf("saved contact must not be flagged as spam")
	}
	if got.IsVerified == nil {
		t.Fatalf("expected is_verified to be set for contact hits")
	}
}

func TestResolveSpamRegistryThreshold(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	resolver := NewResolver(gdb, log, repos.NewContactRepo(gdb, log), repos.NewSpamRepo(gdb, log), repos.NewCallLogRepo(gdb, log))

	testutil.SeedSpamRecord(t, ctx, gdb, "1409220001", 50, "telemarketer")
	testutil.SeedSpamRecord(t, ctx, gdb, "1409220002", 49, "telemarketer")

	atThreshold, err := resolver.Resolve(ctx, "1409220001")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !atThreshold.Found || atThreshold.Source != SourceSpamDatabase {
		t.Fatalf("score 50 should resolve via registry: got found=%v source=%q", atThreshold.Found, atThreshold.Source)
	}
	if !atThreshold.IsSpam {
		t.Fatalf("registry hit must set is_spam")
	}
	if atThreshold.Name != SpamLabel {
		t.Fatalf("unexpected name: got=%q want=%q", atThreshold.Name, SpamLabel)
	}
	if atThreshold.SpamScore == nil || *atThreshold.SpamScore != 50 {
		t.Fatalf("expected spam_score=50, got %v", atThreshold.SpamScore)
	}
	if atThreshold.SpamCategory != "telemarketer" {
		t.Fatalf("unexpected category: got=%q", atThreshold.SpamCategory)
	}

	belowThreshold, err := resolver.Resolve(ctx, "1409220002")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if belowThreshold.Source == SourceSpamDatabase {
		t.Fatalf("score 49 must fall through the registry")
	}
	if belowThreshold.IsSpam {
		t.Fatalf("score 49 must not be flagged as spam")
	}
}

func TestResolveCommunityNameFromCallLogs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	resolver := NewResolver(gdb, log, repos.NewContactRepo(gdb, log), repos.NewSpamRepo(gdb, log), repos.NewCallLogRepo(gdb, log))

	now := time.Now()
	testutil.SeedCallLog(t, ctx, gdb, "9123456780", testutil.StrPtr("Old Pizza Place"), now.Add(-2*time.Hour))
	testutil.SeedCallLog(t, ctx, gdb, "9123456780", nil, now.Add(-1*time.Hour))
	testutil.SeedCallLog(t, ctx, gdb, "9123456780", testutil.StrPtr("City Pizza"), now)

	got, err := resolver.Resolve(ctx, "9123456780")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !got.Found || got.Source != SourceCommunity {
		t.Fatalf("expected community hit: got found=%v source=%q", got.Found, got.Source)
	}
	// The newest named entry wins over older names and unnamed entries.
	if got.Name != "City Pizza" {
		t.Fatalf("unexpected name: got=%q want=%q", got.Name, "City Pizza")
	}
	if got.IsVerified == nil || *got.IsVerified {
		t.Fatalf("community names are never verified")
	}
}

func TestResolveFallsBackToClassification(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	resolver := NewResolver(gdb, log, repos.NewContactRepo(gdb, log), repos.NewSpamRepo(gdb, log), repos.NewCallLogRepo(gdb, log))

	got, err := resolver.Resolve(ctx, "9876543210")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.Found {
		t.Fatalf("classification results report found=false")
	}
	if got.Source != SourceAIInference {
		t.Fatalf("unexpected source: got=%q want=%q", got.Source, SourceAIInference)
	}
	if got.Name != "Mobile Number" {
		t.Fatalf("unexpected name: got=%q want=%q", got.Name, "Mobile Number")
	}
}

func TestResolveRejectsEmptyNumber(t *testing.T) {
	t.Parallel()

	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	resolver := NewResolver(gdb, log, repos.NewContactRepo(gdb, log), repos.NewSpamRepo(gdb, log), repos.NewCallLogRepo(gdb, log))

	if _, err := resolver.Resolve(context.Background(), "   "); err == nil {
		t.Fatalf("expected error for blank number")
	}
}

func TestClassifyNumber(t *testing.T) {
	t.Parallel()

	cases := []struct {
		phone string
		want  string
	}{
		{"18001234567", "Toll-Free / Business"},
		{"18601234567", "Toll-Free / Business"},
		{"9876543210", "Mobile Number"},
		{"6000000000", "Mobile Number"},
		{"01123456789", "Landline"},
		{"555", "Unknown"},
		{"5876543210", "Unknown"},
		{"+91 98765 43210", "Unknown"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.phone, func(t *testing.T) {
			t.Parallel()
			if got := ClassifyNumber(tc.phone); got != tc.want {
				t.Fatalf("ClassifyNumber(%q): got=%q want=%q", tc.phone, got, tc.want)
			}
		})
	}
}
